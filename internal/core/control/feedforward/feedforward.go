// Package feedforward turns pilot input or an autonomous goal pose into a
// desired acceleration per degree of freedom.
//
// Every function works on one scalar component. There is no coupling between
// components; Calculate runs the selected law six times.
package feedforward

import (
	"math"

	"github.com/zeusync/fcs/internal/core/control/kinematics"
	"github.com/zeusync/fcs/pkg/axis"
	"github.com/zeusync/fcs/pkg/toggle"
)

// Config bundles the limits and switches that pick a feedforward law.
type Config struct {
	// MaxVelocity is the non-negative speed limit per slot.
	MaxVelocity axis.Vector6

	LinearAssist     toggle.Toggle
	RotationalAssist toggle.Toggle
	Autonomous       toggle.Toggle
}

func (c Config) Mode() Mode {
	if c.Autonomous.Enabled() {
		return Autonomous
	}
	return Pilot
}

// Assist reports the pilot assist mode for one group of axes.
func (c Config) Assist(k axis.Kind) AssistMode {
	t := c.LinearAssist
	if k == axis.Rotational {
		t = c.RotationalAssist
	}
	if t.Enabled() {
		return AssistVelocity
	}
	return AssistAcceleration
}

// Input is the intent for one tick. Pilot is read in pilot mode, Goal in
// autonomous mode.
type Input struct {
	Pilot axis.Vector6
	Goal  axis.Vector6
}

// VelocityTracking accelerates toward input*maxVelocity, reaching it in one
// step if the budget allows.
func VelocityTracking(input, maxVelocity, velocity, dt float64, budget axis.Contribution) float64 {
	desired := NormalizeInput(input) * maxVelocity
	return budget.Clamp((desired - velocity) / dt)
}

// DirectAcceleration scales the available acceleration by input. Input
// pushing further past the velocity limit yields zero.
func DirectAcceleration(input, maxVelocity, velocity float64, budget axis.Contribution) float64 {
	input = NormalizeInput(input)
	if (input > 0 && velocity >= maxVelocity) || (input < 0 && velocity <= -maxVelocity) {
		return 0
	}
	return budget.Scale(input)
}

// PositionTracking cascades position error into a velocity target capped at
// maxVelocity, then tracks that velocity within the budget.
func PositionTracking(goal, position, maxVelocity, velocity, dt float64, budget axis.Contribution) float64 {
	desired := clamp((goal-position)/dt, -maxVelocity, maxVelocity)
	return budget.Clamp((desired - velocity) / dt)
}

// Calculate evaluates the law chosen by cfg for every slot. dt must be
// positive and finite.
func Calculate(cfg Config, in Input, state kinematics.State, budget axis.Budget, dt float64) (axis.Vector6, error) {
	if err := kinematics.ValidateDeltaTime(dt); err != nil {
		return axis.Vector6{}, err
	}

	autonomous := cfg.Mode() == Autonomous
	assist := [2]AssistMode{cfg.Assist(axis.Linear), cfg.Assist(axis.Rotational)}

	var out axis.Vector6
	for _, k := range axis.Kinds {
		for _, c := range axis.Components {
			var (
				maxV     = cfg.MaxVelocity.At(k, c)
				velocity = state.Velocity.At(k, c)
				b        = budget.At(k, c)
				v        float64
			)
			switch {
			case autonomous:
				v = PositionTracking(in.Goal.At(k, c), state.Position.At(k, c), maxV, velocity, dt, b)
			case assist[k] == AssistVelocity:
				v = VelocityTracking(in.Pilot.At(k, c), maxV, velocity, dt, b)
			default:
				v = DirectAcceleration(in.Pilot.At(k, c), maxV, velocity, b)
			}
			out = out.With(k, c, v)
		}
	}
	return out, nil
}

// NormalizeInput bounds a stick reading to [-1, 1]. NaN reads as centered.
func NormalizeInput(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return clamp(v, -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
