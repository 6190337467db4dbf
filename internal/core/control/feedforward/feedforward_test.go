package feedforward

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/fcs/internal/core/control/kinematics"
	"github.com/zeusync/fcs/pkg/axis"
	"github.com/zeusync/fcs/pkg/toggle"
)

var asym = axis.MustContribution(10, 4)

func TestVelocityTrackingSign(t *testing.T) {
	for _, velocity := range []float64{-50, -1, 0, 1, 49.9} {
		up := VelocityTracking(1, 50, velocity, 0.1, asym)
		assert.Greater(t, up, 0.0, "velocity=%v", velocity)

		down := VelocityTracking(-1, 50, -velocity, 0.1, asym)
		assert.Less(t, down, 0.0, "velocity=%v", -velocity)
	}
}

func TestVelocityTrackingRespectsBudget(t *testing.T) {
	assert.Equal(t, 10.0, VelocityTracking(1, 100, 0, 0.01, asym))
	assert.Equal(t, -4.0, VelocityTracking(-1, 100, 0, 0.01, asym))
	// Within the budget the rate is exact: (0.5*10 - 4) / 0.5.
	assert.InDelta(t, 2.0, VelocityTracking(0.5, 10, 4, 0.5, asym), 1e-12)
}

func TestVelocityTrackingBrakesOnCenteredStick(t *testing.T) {
	assert.Equal(t, 0.0, VelocityTracking(0, 50, 0, 0.1, asym))
	assert.Equal(t, -4.0, VelocityTracking(0, 50, 20, 0.1, asym))
	assert.Equal(t, 10.0, VelocityTracking(0, 50, -20, 0.1, asym))
}

func TestDirectAccelerationStopsAtLimit(t *testing.T) {
	assert.Equal(t, 0.0, DirectAcceleration(1, 50, 50, asym))
	assert.Equal(t, 0.0, DirectAcceleration(0.3, 50, 80, asym))
	assert.Equal(t, 0.0, DirectAcceleration(-1, 50, -50, asym))
	assert.Equal(t, 0.0, DirectAcceleration(-0.3, 50, -51, asym))

	// Reversing input at the limit is allowed.
	assert.Equal(t, -4.0, DirectAcceleration(-1, 50, 50, asym))
	assert.Equal(t, 10.0, DirectAcceleration(1, 50, -50, asym))
}

func TestDirectAccelerationScalesBySign(t *testing.T) {
	assert.Equal(t, 5.0, DirectAcceleration(0.5, 50, 0, asym))
	assert.Equal(t, -2.0, DirectAcceleration(-0.5, 50, 0, asym))
	assert.Equal(t, 10.0, DirectAcceleration(3, 50, 0, asym))
}

func TestZeroInputIsExactlyZero(t *testing.T) {
	for _, velocity := range []float64{-100, -50, -1, 0, 1, 50, 100} {
		got := DirectAcceleration(0, 50, velocity, asym)
		assert.Equal(t, 0.0, got)
		assert.False(t, math.Signbit(got))
	}
	got := VelocityTracking(0, 50, 0, 0.1, asym)
	assert.Equal(t, 0.0, got)
	assert.False(t, math.Signbit(got))
}

func TestPositionTracking(t *testing.T) {
	// 100 m away at 1 s steps wants 100 m/s, capped at 20, then the budget.
	assert.Equal(t, 10.0, PositionTracking(100, 0, 20, 0, 1, asym))
	// Uncapped: want 2 m/s from 1 m/s in 1 s.
	assert.InDelta(t, 1.0, PositionTracking(2, 0, 20, 1, 1, asym), 1e-12)
	// At the goal and at rest there is nothing to do.
	assert.Equal(t, 0.0, PositionTracking(5, 5, 20, 0, 1, asym))
	// Overshoot moving away brakes with the negative budget.
	assert.Equal(t, -4.0, PositionTracking(0, 1, 20, 5, 0.5, asym))
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, 1.0, NormalizeInput(7))
	assert.Equal(t, -1.0, NormalizeInput(-7))
	assert.Equal(t, 0.25, NormalizeInput(0.25))
	assert.Equal(t, 0.0, NormalizeInput(math.NaN()))
}

func TestModeNames(t *testing.T) {
	assert.Equal(t, "pilot", Pilot.String())
	assert.Equal(t, "autonomous", Autonomous.String())
	assert.Equal(t, "velocity_tracking", AssistVelocity.String())
	assert.Equal(t, "direct_acceleration", AssistAcceleration.String())
}

func TestConfigSelectsLaw(t *testing.T) {
	cfg := Config{
		MaxVelocity:      axis.Uniform6(50),
		LinearAssist:     toggle.New(true),
		RotationalAssist: toggle.New(false),
	}
	assert.Equal(t, Pilot, cfg.Mode())
	assert.Equal(t, AssistVelocity, cfg.Assist(axis.Linear))
	assert.Equal(t, AssistAcceleration, cfg.Assist(axis.Rotational))

	budget := axis.UniformBudget(asym)
	state := kinematics.State{Velocity: axis.Uniform6(20)}
	in := Input{Pilot: axis.Vector6{}}

	out, err := Calculate(cfg, in, state, budget, 0.1)
	require.NoError(t, err)
	// Linear assist brakes toward zero, rotational direct gives nothing.
	assert.Equal(t, axis.Uniform3(-4.0), out.Linear)
	assert.Equal(t, axis.Uniform3(0.0), out.Rotational)

	cfg.Autonomous.Enable()
	assert.Equal(t, Autonomous, cfg.Mode())
	in.Goal = axis.Uniform6(1000)
	out, err = Calculate(cfg, in, kinematics.State{}, budget, 1)
	require.NoError(t, err)
	assert.Equal(t, axis.Uniform6(10), out)
}

func TestCalculateRejectsBadDeltaTime(t *testing.T) {
	_, err := Calculate(Config{}, Input{}, kinematics.State{}, axis.Budget{}, 0)
	assert.ErrorIs(t, err, kinematics.ErrInvalidDeltaTime)
}
