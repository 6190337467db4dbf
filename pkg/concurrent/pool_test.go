package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRunsEveryTask(t *testing.T) {
	pool, err := NewPool(4)
	require.NoError(t, err)
	defer pool.Release()
	assert.Equal(t, 4, pool.Cap())

	out, err := MapOn(context.Background(), pool, []int{1, 2, 3, 4, 5, 6}, func(_ context.Context, v int) (int, error) {
		return v * v, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 9, 16, 25, 36}, out)
}

func TestPoolReturnsFirstError(t *testing.T) {
	pool, err := NewPool(2)
	require.NoError(t, err)
	defer pool.Release()

	boom := errors.New("boom")
	err = pool.Run(context.Background(), 8, func(_ context.Context, i int) error {
		if i == 3 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestPoolRecoversPanics(t *testing.T) {
	pool, err := NewPool(2)
	require.NoError(t, err)
	defer pool.Release()

	err = pool.Run(context.Background(), 1, func(context.Context, int) error {
		panic("bad task")
	})
	assert.ErrorIs(t, err, ErrPanic)
	assert.Contains(t, err.Error(), "bad task")

	// The pool keeps working afterwards.
	var n atomic.Int32
	require.NoError(t, pool.Run(context.Background(), 3, func(context.Context, int) error {
		n.Add(1)
		return nil
	}))
	assert.Equal(t, int32(3), n.Load())
}

func TestPoolAfterRelease(t *testing.T) {
	pool, err := NewPool(1)
	require.NoError(t, err)
	pool.Release()

	err = pool.Run(context.Background(), 1, func(context.Context, int) error { return nil })
	assert.Error(t, err)
}
