// Package kinematics holds the measured motion state the control pipeline
// reads each tick.
package kinematics

import (
	"fmt"
	"math"

	"github.com/zeusync/fcs/pkg/axis"
)

// State is the vehicle's measured motion, one scalar per degree of freedom.
// Rotational entries are orientation, angular rate and angular acceleration.
type State struct {
	Position     axis.Vector6 `json:"position" yaml:"position"`
	Velocity     axis.Vector6 `json:"velocity" yaml:"velocity"`
	Acceleration axis.Vector6 `json:"acceleration" yaml:"acceleration"`
}

// Sensor supplies the measured State. Implementations belong to the host
// (an IMU model, a physics engine, a replay log).
type Sensor interface {
	State() State
}

// SensorFunc adapts a function to Sensor.
type SensorFunc func() State

func (f SensorFunc) State() State { return f() }

// Static is a Sensor that always reports the same State.
type Static State

func (s Static) State() State { return State(s) }

// ValidateDeltaTime rejects a step that the rate-of-change formulas cannot
// divide by.
func ValidateDeltaTime(dt float64) error {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return fmt.Errorf("%v: %w", dt, ErrInvalidDeltaTime)
	}
	return nil
}

// Integrate advances s by one fixed step of dt under the commanded
// acceleration using semi-implicit Euler. It is a convenience for hosts and
// tests that need a plant, not a physics engine.
func (s State) Integrate(accel axis.Vector6, dt float64) State {
	velocity := s.Velocity.Add(accel.Mul(dt))
	return State{
		Position:     s.Position.Add(velocity.Mul(dt)),
		Velocity:     velocity,
		Acceleration: accel,
	}
}
