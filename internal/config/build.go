package config

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zeusync/fcs/internal/core/control"
	"github.com/zeusync/fcs/internal/core/control/feedback"
	"github.com/zeusync/fcs/internal/core/control/feedforward"
	"github.com/zeusync/fcs/internal/core/control/kinematics"
	"github.com/zeusync/fcs/internal/core/control/safety"
	"github.com/zeusync/fcs/internal/core/events/bus"
	"github.com/zeusync/fcs/internal/core/observability/log"
	"github.com/zeusync/fcs/internal/core/propulsion"
	"github.com/zeusync/fcs/internal/core/systems/flight"
	"github.com/zeusync/fcs/pkg/axis"
	"github.com/zeusync/fcs/pkg/toggle"
)

func (v *Vehicle) mountPoints() ([]propulsion.MountPoint, error) {
	mounts := make([]propulsion.MountPoint, 0, len(v.Mounts))
	for i, m := range v.Mounts {
		mp, err := m.build()
		if err != nil {
			return nil, fmt.Errorf("[%d] %q: %w", i, m.Name, err)
		}
		mounts = append(mounts, mp)
	}
	return mounts, nil
}

func (m Mount) build() (propulsion.MountPoint, error) {
	size, err := propulsion.ParseThrusterSize(m.MaxSize)
	if err != nil {
		return propulsion.MountPoint{}, err
	}
	dirs := make([]propulsion.ThrustDirection, 0, len(m.Directions))
	for _, s := range m.Directions {
		d, err := propulsion.ParseThrustDirection(s)
		if err != nil {
			return propulsion.MountPoint{}, err
		}
		dirs = append(dirs, d)
	}
	loc := r3.Vec{X: m.Location[0], Y: m.Location[1], Z: m.Location[2]}
	mp, err := propulsion.NewMountPoint(m.Name, size, loc, dirs...)
	if err != nil {
		return propulsion.MountPoint{}, err
	}
	if m.Thruster == nil {
		return mp, nil
	}
	tsize, err := propulsion.ParseThrusterSize(m.Thruster.Size)
	if err != nil {
		return propulsion.MountPoint{}, err
	}
	t, err := propulsion.NewThruster(m.Thruster.MaxThrust, tsize)
	if err != nil {
		return propulsion.MountPoint{}, err
	}
	if err := mp.Attach(t); err != nil {
		return propulsion.MountPoint{}, err
	}
	return mp, nil
}

// Layout builds the vehicle's propulsion layout.
func (v *Vehicle) Layout(opts ...propulsion.LayoutOption) (*propulsion.Layout, error) {
	mounts, err := v.mountPoints()
	if err != nil {
		return nil, err
	}
	opts = append([]propulsion.LayoutOption{propulsion.WithLayoutName(v.Name)}, opts...)
	if v.Inertia != nil {
		opts = append(opts, propulsion.WithInertia(*v.Inertia))
	}
	return propulsion.NewLayout(v.Mass, mounts, opts...)
}

// ControlConfig builds the pipeline switches and limits.
func (v *Vehicle) ControlConfig() (control.Config, error) {
	c := v.Control
	autonomous, err := parseMode(c.Mode)
	if err != nil {
		return control.Config{}, err
	}
	target, err := parseTarget(c.Feedback.Target)
	if err != nil {
		return control.Config{}, err
	}

	limits := c.GSafety.Limits
	switch c.GSafety.Unit {
	case "", "mps2":
	case "g":
		limits = safety.LimitsInG(limits)
	default:
		return control.Config{}, fmt.Errorf("unknown g_safety unit %q", c.GSafety.Unit)
	}

	return control.Config{
		Feedforward: feedforward.Config{
			MaxVelocity:      c.MaxVelocity,
			LinearAssist:     toggle.New(c.LinearAssist),
			RotationalAssist: toggle.New(c.RotationalAssist),
			Autonomous:       toggle.New(autonomous),
		},
		Safety:         safety.NewGForce(c.GSafety.Enabled, limits),
		Feedback:       toggle.New(c.Feedback.Enabled),
		FeedbackTarget: target,
	}, nil
}

// Bank builds the feedback loops: linear gains on the three linear slots,
// rotational gains on the rest.
func (v *Vehicle) Bank() (*feedback.Bank, error) {
	fb := v.Control.Feedback
	mode, err := feedback.ParseTrimMode(fb.Trim)
	if err != nil {
		return nil, err
	}
	gains := axis.NewControlAxis(axis.Uniform3(fb.Linear), axis.Uniform3(fb.Rotational))
	return feedback.NewBank(gains, mode)
}

// Build assembles a flight.Vehicle driven by an Integrator plant starting at
// rest.
func (v *Vehicle) Build(logger log.Log, events bus.EventBus) (*flight.Vehicle, *flight.Integrator, error) {
	layout, err := v.Layout(propulsion.WithLayoutLogger(logger), propulsion.WithEventBus(events))
	if err != nil {
		return nil, nil, fmt.Errorf("vehicle %q: %w", v.Name, err)
	}
	cfg, err := v.ControlConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("vehicle %q: %w", v.Name, err)
	}
	bank, err := v.Bank()
	if err != nil {
		return nil, nil, fmt.Errorf("vehicle %q: %w", v.Name, err)
	}
	ctrl, err := control.NewController(cfg, layout, bank,
		control.WithName(v.Name),
		control.WithLogger(logger),
		control.WithEventBus(events))
	if err != nil {
		return nil, nil, fmt.Errorf("vehicle %q: %w", v.Name, err)
	}

	plant := flight.NewIntegrator(kinematics.State{})
	return &flight.Vehicle{
		Name:       v.Name,
		Layout:     layout,
		Controller: ctrl,
		Source:     plant,
	}, plant, nil
}
