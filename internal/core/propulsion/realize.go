package propulsion

import "github.com/zeusync/fcs/pkg/axis"

// Realize converts a bounded acceleration command into the net force the
// thrusters must produce: thrust = mass * acceleration, per slot.
func Realize(acceleration axis.Vector6, mass float64) axis.Vector6 {
	return acceleration.Mul(mass)
}

// RealizeLinear is Realize with the rotational half zeroed, for hosts that
// only drive translation through simulated thrusters.
func RealizeLinear(acceleration axis.Vector6, mass float64) axis.Vector6 {
	return axis.Vector6{Linear: Realize(acceleration, mass).Linear}
}
