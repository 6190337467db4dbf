package concurrent

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

var ErrPanic = errors.New("task panicked")

// Pool is an Executor backed by a fixed set of long-lived ants workers, for
// fan-outs that repeat every tick.
type Pool struct {
	pool *ants.Pool
}

func NewPool(size int) (*Pool, error) {
	p, err := ants.NewPool(size, ants.WithPreAlloc(true))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	return &Pool{pool: p}, nil
}

func (p *Pool) Cap() int     { return p.pool.Cap() }
func (p *Pool) Running() int { return p.pool.Running() }

// Release stops the workers. Run fails afterwards.
func (p *Pool) Release() { p.pool.Release() }

// Run submits every task and waits. A panicking task is reported as an error
// wrapping ErrPanic.
func (p *Pool) Run(ctx context.Context, n int, task func(context.Context, int) error) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var (
		wg    sync.WaitGroup
		once  sync.Once
		first error
	)
	fail := func(err error) {
		once.Do(func() {
			first = err
			cancel(err)
		})
	}

	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		i := i // per-iteration copy; go directive is 1.21 for the local toolchain
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					fail(fmt.Errorf("%w: %v", ErrPanic, r))
				}
			}()
			if err := task(ctx, i); err != nil {
				fail(err)
			}
		})
		if err != nil {
			wg.Done()
			fail(err)
			break
		}
	}
	wg.Wait()

	if first != nil {
		return first
	}
	return context.Cause(ctx)
}
