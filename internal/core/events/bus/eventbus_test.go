package bus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicPublishSubscribe(t *testing.T) {
	b := New()
	var got []any
	_, err := b.Subscribe("layout.changed", func(e Event) error {
		got = append(got, e.Data())
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, b.Publish(NewEvent("layout.changed", "layout", 1)))
	require.NoError(t, b.Publish(NewEvent("other", "layout", 2)))

	assert.Equal(t, []any{1}, got)
}

func TestSubscribeAllSeesEveryType(t *testing.T) {
	b := New()
	count := 0
	_, err := b.SubscribeAll(func(Event) error { count++; return nil })
	require.NoError(t, err)

	_ = b.Publish(NewEvent("a", "src", nil))
	_ = b.Publish(NewEvent("b", "src", nil))
	assert.Equal(t, 2, count)
}

func TestPublishJoinsHandlerErrors(t *testing.T) {
	b := New()
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	reached := false
	_, _ = b.Subscribe("x", func(Event) error { return errA })
	_, _ = b.Subscribe("x", func(Event) error { return errB })
	_, _ = b.Subscribe("x", func(Event) error { reached = true; return nil })

	err := b.Publish(NewEvent("x", "src", nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.True(t, reached, "a failing handler must not stop delivery")
	assert.Equal(t, uint64(2), b.Metrics().Errors)
}

func TestCancelStopsDelivery(t *testing.T) {
	b := New()
	count := 0
	sub, err := b.Subscribe("x", func(Event) error { count++; return nil })
	require.NoError(t, err)

	_ = b.Publish(NewEvent("x", "src", nil))
	require.NoError(t, b.Unsubscribe(sub))
	require.NoError(t, sub.Cancel())
	_ = b.Publish(NewEvent("x", "src", nil))

	assert.Equal(t, 1, count)
	assert.False(t, sub.IsActive())
	assert.Equal(t, uint64(0), b.Metrics().SubscribersActive)
}

func TestHandlerMayCancelItself(t *testing.T) {
	b := New()
	var sub Subscription
	sub, _ = b.Subscribe("x", func(Event) error { return sub.Cancel() })
	require.NoError(t, b.Publish(NewEvent("x", "src", nil)))
	assert.False(t, sub.IsActive())
}

func TestInvalidArguments(t *testing.T) {
	b := New()
	_, err := b.Subscribe("", func(Event) error { return nil })
	assert.ErrorIs(t, err, ErrEmptyEventType)
	_, err = b.Subscribe("x", nil)
	assert.ErrorIs(t, err, ErrNilHandler)
	assert.ErrorIs(t, b.Publish(nil), ErrNilEvent)
	assert.NoError(t, b.Unsubscribe(nil))
}
