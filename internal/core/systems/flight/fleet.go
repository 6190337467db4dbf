// Package flight ticks a set of vehicles, each with its own layout and
// controller, from a host loop.
package flight

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zeusync/fcs/internal/core/control"
	"github.com/zeusync/fcs/internal/core/observability/log"
	"github.com/zeusync/fcs/pkg/concurrent"
)

// FrameSink receives every frame a Fleet produces.
type FrameSink interface {
	Publish(frame control.Frame) error
}

// Metrics summarizes Fleet ticks.
type Metrics struct {
	Vehicles         int
	Ticks            uint64
	FailedTicks      uint64
	LastTickDuration time.Duration
	LastTick         time.Time
}

// Fleet owns vehicles and ticks them. Vehicles are independent, so a tick
// runs them in parallel; each controller is still only driven by one
// goroutine at a time because Tick calls do not overlap.
type Fleet struct {
	mu       sync.RWMutex
	vehicles map[uuid.UUID]*Vehicle
	order    []uuid.UUID

	tickMu      sync.Mutex
	parallelism int
	executor    concurrent.Executor
	metrics     Metrics

	sink   FrameSink
	logger log.Log
}

type Option func(*Fleet)

// WithParallelism caps how many vehicles tick at once. Zero or less means
// one goroutine per vehicle.
func WithParallelism(n int) Option {
	return func(f *Fleet) { f.parallelism = n }
}

// WithWorkerPool ticks vehicles on long-lived pool workers instead of a
// goroutine per vehicle per tick. The caller releases the pool.
func WithWorkerPool(pool *concurrent.Pool) Option {
	return func(f *Fleet) {
		if pool != nil {
			f.executor = pool
		}
	}
}

func WithFrameSink(sink FrameSink) Option {
	return func(f *Fleet) { f.sink = sink }
}

func WithLogger(logger log.Log) Option {
	return func(f *Fleet) {
		if logger != nil {
			f.logger = logger
		}
	}
}

func NewFleet(opts ...Option) *Fleet {
	f := &Fleet{
		vehicles: make(map[uuid.UUID]*Vehicle),
		logger:   log.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.executor == nil {
		f.executor = concurrent.Group{Limit: f.parallelism}
	}
	return f
}

// Register adds v and returns its ID, assigning one if v has none. Names
// are unique within a fleet.
func (f *Fleet) Register(v *Vehicle) (uuid.UUID, error) {
	if !v.valid() {
		return uuid.Nil, ErrInvalidVehicle
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.vehicles[v.ID]; ok {
		return uuid.Nil, fmt.Errorf("%s: %w", v.ID, ErrVehicleExists)
	}
	for _, other := range f.vehicles {
		if other.Name == v.Name {
			return uuid.Nil, fmt.Errorf("%q: %w", v.Name, ErrVehicleExists)
		}
	}

	// The ID is assigned only once the vehicle is accepted.
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	f.vehicles[v.ID] = v
	f.order = append(f.order, v.ID)
	f.logger.Info("vehicle registered", log.String("vehicle", v.Name), log.String("id", v.ID.String()))
	return v.ID, nil
}

func (f *Fleet) Remove(id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.vehicles[id]
	if !ok {
		return fmt.Errorf("%s: %w", id, ErrVehicleNotFound)
	}
	delete(f.vehicles, id)
	for i, other := range f.order {
		if other == id {
			f.order = append(f.order[:i:i], f.order[i+1:]...)
			break
		}
	}
	f.logger.Info("vehicle removed", log.String("vehicle", v.Name))
	return nil
}

func (f *Fleet) Get(id uuid.UUID) (*Vehicle, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.vehicles[id]
	return v, ok
}

// Lookup finds a vehicle by name.
func (f *Fleet) Lookup(name string) (*Vehicle, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, v := range f.vehicles {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// List returns vehicles in registration order.
func (f *Fleet) List() []*Vehicle {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*Vehicle, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.vehicles[id])
	}
	return out
}

func (f *Fleet) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.vehicles)
}

// Tick advances every vehicle by dt and returns their frames in registration
// order. The first controller error aborts the step.
func (f *Fleet) Tick(ctx context.Context, dt float64) ([]control.Frame, error) {
	f.tickMu.Lock()
	defer f.tickMu.Unlock()

	start := time.Now()
	frames, err := concurrent.MapOn(ctx, f.executor, f.List(), func(ctx context.Context, v *Vehicle) (control.Frame, error) {
		if err := ctx.Err(); err != nil {
			return control.Frame{}, err
		}
		frame, err := v.Controller.Tick(v.Source.TickInput(dt))
		if err != nil {
			return control.Frame{}, fmt.Errorf("vehicle %q: %w", v.Name, err)
		}
		if plant, ok := v.Source.(Plant); ok {
			plant.Apply(frame, dt)
		}
		return frame, nil
	})

	f.metrics.Vehicles = f.Len()
	f.metrics.LastTickDuration = time.Since(start)
	f.metrics.LastTick = start
	if err != nil {
		f.metrics.FailedTicks++
		f.logger.Warn("fleet tick failed", log.Error(err))
		return nil, err
	}
	f.metrics.Ticks++

	if f.sink != nil {
		for _, frame := range frames {
			if err := f.sink.Publish(frame); err != nil {
				f.logger.Debug("frame not published", log.String("vehicle", frame.Vehicle), log.Error(err))
			}
		}
	}
	return frames, nil
}

// Run ticks at a fixed step until ctx is done.
func (f *Fleet) Run(ctx context.Context, step time.Duration) error {
	ticker := time.NewTicker(step)
	defer ticker.Stop()

	dt := step.Seconds()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := f.Tick(ctx, dt); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		}
	}
}

func (f *Fleet) Metrics() Metrics {
	f.tickMu.Lock()
	defer f.tickMu.Unlock()
	m := f.metrics
	m.Vehicles = f.Len()
	return m
}
