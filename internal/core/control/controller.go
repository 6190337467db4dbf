// Package control runs the per-tick pipeline: feedforward, feedback trim,
// combine, g-force clamp and thrust realization.
package control

import (
	"sync"
	"time"

	"github.com/zeusync/fcs/internal/core/control/feedback"
	"github.com/zeusync/fcs/internal/core/control/feedforward"
	"github.com/zeusync/fcs/internal/core/control/kinematics"
	"github.com/zeusync/fcs/internal/core/events/bus"
	"github.com/zeusync/fcs/internal/core/observability/log"
	"github.com/zeusync/fcs/internal/core/propulsion"
	"github.com/zeusync/fcs/pkg/axis"
)

// EventSafetyEngaged is published when the g-force clamp changes a command.
const EventSafetyEngaged = "control.safety.engaged"

// SafetyEngaged is the payload of EventSafetyEngaged.
type SafetyEngaged struct {
	Vehicle  string
	Sequence uint64
	Combined axis.Vector6
	Bounded  axis.Vector6
}

// CapabilitySource hands out the current propulsion snapshot. *propulsion.Layout
// implements it.
type CapabilitySource interface {
	Capability() *propulsion.Capability
}

// Controller owns one vehicle's PID memory and configuration. Tick must not
// be called concurrently on the same Controller; Configure, Config and
// Metrics may be called from any goroutine.
type Controller struct {
	name       string
	capability CapabilitySource
	bank       *feedback.Bank

	mu       sync.Mutex
	cfg      Config
	metrics  Metrics
	sequence uint64

	logger log.Log
	events bus.EventBus
	now    func() time.Time
}

type Option func(*Controller)

func WithName(name string) Option {
	return func(c *Controller) { c.name = name }
}

func WithLogger(logger log.Log) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithEventBus(events bus.EventBus) Option {
	return func(c *Controller) { c.events = events }
}

// WithClock replaces time.Now for frame timestamps and tick durations.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

func NewController(cfg Config, capability CapabilitySource, bank *feedback.Bank, opts ...Option) (*Controller, error) {
	if capability == nil {
		return nil, ErrNilCapability
	}
	if bank == nil {
		return nil, ErrNilBank
	}
	c := &Controller{
		name:       "vehicle",
		capability: capability,
		bank:       bank,
		cfg:        cfg,
		logger:     log.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(log.String("vehicle", c.name))
	return c, nil
}

func (c *Controller) Name() string { return c.name }

func (c *Controller) Bank() *feedback.Bank { return c.bank }

// Config returns a copy of the current configuration.
func (c *Controller) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// Configure applies fn to the configuration. The change is seen by the next
// tick.
func (c *Controller) Configure(fn func(*Config)) {
	c.mu.Lock()
	fn(&c.cfg)
	cfg := c.cfg
	c.mu.Unlock()

	c.logger.Info("controller configured",
		log.String("mode", modeName(cfg)),
		log.Stringer("linear_assist", cfg.Feedforward.LinearAssist),
		log.Stringer("rotational_assist", cfg.Feedforward.RotationalAssist),
		log.Stringer("g_safety", cfg.Safety.Toggle),
		log.Stringer("feedback", cfg.Feedback))
}

func (c *Controller) Metrics() Metrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.metrics
}

// Tick runs the whole pipeline once. A tick with a non-positive or
// non-finite delta time is rejected before any stage runs and leaves the PID
// memory as it was.
func (c *Controller) Tick(in TickInput) (Frame, error) {
	start := c.now()

	c.mu.Lock()
	cfg := c.cfg
	c.mu.Unlock()

	if err := kinematics.ValidateDeltaTime(in.DeltaTime); err != nil {
		c.mu.Lock()
		c.metrics.RejectedTicks++
		c.metrics.LastError = err
		c.mu.Unlock()
		c.logger.Warn("tick rejected", log.Error(err))
		return Frame{}, err
	}

	snapshot := c.capability.Capability()
	budget := snapshot.Acceleration

	ff, err := feedforward.Calculate(cfg.Feedforward, feedforward.Input{Pilot: in.Pilot, Goal: in.Goal}, in.State, budget, in.DeltaTime)
	if err != nil {
		return Frame{}, err
	}

	var fb axis.Vector6
	if cfg.Feedback.Enabled() {
		measured := in.State.Velocity
		if cfg.FeedbackTarget == TargetPosition {
			measured = in.State.Position
		}
		fb, err = c.bank.Trim(in.Target, measured, budget, in.DeltaTime)
		if err != nil {
			return Frame{}, err
		}
	}

	combined := Combine(ff, fb)
	bounded, engaged := cfg.Safety.Apply(combined)
	thrust := propulsion.Realize(bounded, snapshot.Mass)

	end := c.now()
	c.mu.Lock()
	c.sequence++
	seq := c.sequence
	c.metrics.observe(end.Sub(start), end)
	if engaged {
		c.metrics.SafetyEngagements++
	}
	c.mu.Unlock()

	frame := Frame{
		Vehicle:           c.name,
		Sequence:          seq,
		Time:              end,
		Mode:              modeName(cfg),
		Feedforward:       ff,
		Feedback:          fb,
		Combined:          combined,
		Bounded:           bounded,
		Thrust:            thrust,
		SafetyEngaged:     engaged,
		CapabilityVersion: snapshot.Version,
	}

	if c.logger.Enabled(log.LevelDebug) {
		c.logger.Debug("tick",
			log.Uint64("seq", seq),
			log.String("mode", frame.Mode),
			log.Any("bounded", bounded),
			log.Any("thrust", thrust),
			log.Bool("safety_engaged", engaged))
	}
	if engaged {
		c.publish(SafetyEngaged{Vehicle: c.name, Sequence: seq, Combined: combined, Bounded: bounded})
	}
	return frame, nil
}

// Reset clears the feedback loops, e.g. after a mode change.
func (c *Controller) Reset() {
	c.bank.Reset()
	c.logger.Info("feedback loops reset")
}

func (c *Controller) publish(data SafetyEngaged) {
	if c.events == nil {
		return
	}
	if err := c.events.Publish(bus.NewEvent(EventSafetyEngaged, c.name, data)); err != nil {
		c.logger.Warn("safety event handler failed", log.Error(err))
	}
}
