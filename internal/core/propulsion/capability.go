package propulsion

import (
	"fmt"
	"math"

	"github.com/zeusync/fcs/pkg/axis"
)

// Capability is a snapshot of what the propulsion layout can deliver. It is
// rebuilt when the layout changes and read, never mutated, on every tick.
type Capability struct {
	// Thrust is the summed max thrust per slot and sign.
	Thrust axis.Budget
	// Acceleration is Thrust divided by mass (linear) or effective
	// inertia (rotational).
	Acceleration axis.Budget

	Mass    float64
	Inertia axis.Dimension3[float64]

	// Fingerprint identifies the layout this snapshot was built from.
	Fingerprint uint64
	// Version increases with every rebuild of the owning Layout.
	Version uint64
}

// IdentityInertia treats rotational thrust as rotational acceleration
// one-to-one. No moment-of-inertia model is applied.
func IdentityInertia() axis.Dimension3[float64] {
	return axis.Uniform3(1.0)
}

// AvailableThrust sums, for every mount with a thruster attached, the
// thruster's max thrust into every direction the mount declares. A thruster
// declaring several directions contributes its full magnitude to each.
func AvailableThrust(mounts []MountPoint) axis.Budget {
	var sum [directionCount]float64
	for _, m := range mounts {
		t, ok := m.Thruster()
		if !ok {
			continue
		}
		for _, d := range m.Directions().Directions() {
			sum[d] += t.MaxThrust()
		}
	}

	var budget axis.Budget
	for _, k := range axis.Kinds {
		for _, c := range axis.Components {
			pos := sum[Direction(k, c, true)]
			neg := sum[Direction(k, c, false)]
			// Sums of validated thrusts are never negative.
			budget = budget.With(k, c, axis.MustContribution(pos, neg))
		}
	}
	return budget
}

// AvailableAcceleration converts a thrust budget into an acceleration budget.
// Linear slots divide by mass. Rotational slots divide by the effective
// inertia of their component.
func AvailableAcceleration(thrust axis.Budget, mass float64, inertia axis.Dimension3[float64]) (axis.Budget, error) {
	if err := validateMass(mass); err != nil {
		return axis.Budget{}, err
	}
	if err := ValidateInertia(inertia); err != nil {
		return axis.Budget{}, err
	}

	var accel axis.Budget
	for _, k := range axis.Kinds {
		for _, c := range axis.Components {
			divisor := mass
			if k == axis.Rotational {
				divisor = inertia.Get(c)
			}
			t := thrust.At(k, c)
			a, err := axis.NewContribution(t.Positive()/divisor, t.Negative()/divisor)
			if err != nil {
				return axis.Budget{}, fmt.Errorf("%s %s: %w", k, c, err)
			}
			accel = accel.With(k, c, a)
		}
	}
	return accel, nil
}

// NewCapability builds a snapshot straight from a set of mounts.
func NewCapability(mounts []MountPoint, mass float64, inertia axis.Dimension3[float64]) (*Capability, error) {
	thrust := AvailableThrust(mounts)
	accel, err := AvailableAcceleration(thrust, mass, inertia)
	if err != nil {
		return nil, err
	}
	return &Capability{
		Thrust:       thrust,
		Acceleration: accel,
		Mass:         mass,
		Inertia:      inertia,
		Fingerprint:  fingerprint(mounts, mass, inertia),
	}, nil
}

func validateMass(mass float64) error {
	if !(mass > 0) || math.IsInf(mass, 0) {
		return fmt.Errorf("%v: %w", mass, ErrInvalidMass)
	}
	return nil
}

// ValidateInertia checks that every component is finite and positive.
func ValidateInertia(inertia axis.Dimension3[float64]) error {
	for _, c := range axis.Components {
		v := inertia.Get(c)
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%s %v: %w", c, v, ErrInvalidInertia)
		}
	}
	return nil
}
