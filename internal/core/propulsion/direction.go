package propulsion

import (
	"fmt"
	"strings"

	"github.com/zeusync/fcs/pkg/axis"
)

// ThrustDirection is one of the twelve directions a mount point can push:
// positive or negative along each linear and each rotational component.
type ThrustDirection uint8

const (
	LinearXPos ThrustDirection = iota
	LinearXNeg
	LinearYPos
	LinearYNeg
	LinearZPos
	LinearZNeg
	RotationalXPos
	RotationalXNeg
	RotationalYPos
	RotationalYNeg
	RotationalZPos
	RotationalZNeg

	directionCount
)

// Direction returns the ThrustDirection for a slot and sign.
func Direction(k axis.Kind, c axis.Component, positive bool) ThrustDirection {
	d := ThrustDirection(uint8(k)*6 + uint8(c)*2)
	if !positive {
		d++
	}
	return d
}

func (d ThrustDirection) Kind() axis.Kind           { return axis.Kind(d / 6) }
func (d ThrustDirection) Component() axis.Component { return axis.Component((d % 6) / 2) }
func (d ThrustDirection) Positive() bool            { return d%2 == 0 }

func (d ThrustDirection) String() string {
	if d >= directionCount {
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
	sign := "pos"
	if !d.Positive() {
		sign = "neg"
	}
	return fmt.Sprintf("%s_%s_%s", d.Kind(), d.Component(), sign)
}

// ParseThrustDirection accepts the String form, e.g. "linear_x_pos".
func ParseThrustDirection(s string) (ThrustDirection, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for d := ThrustDirection(0); d < directionCount; d++ {
		if d.String() == want {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownDirection)
}

// DirectionSet is a bitmask of ThrustDirections.
type DirectionSet uint16

func NewDirectionSet(dirs ...ThrustDirection) DirectionSet {
	var s DirectionSet
	for _, d := range dirs {
		s = s.With(d)
	}
	return s
}

func (s DirectionSet) With(d ThrustDirection) DirectionSet {
	if d >= directionCount {
		return s
	}
	return s | 1<<d
}

func (s DirectionSet) Has(d ThrustDirection) bool {
	return d < directionCount && s&(1<<d) != 0
}

func (s DirectionSet) Empty() bool { return s == 0 }

// Directions lists the members in declaration order.
func (s DirectionSet) Directions() []ThrustDirection {
	out := make([]ThrustDirection, 0, directionCount)
	for d := ThrustDirection(0); d < directionCount; d++ {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (s DirectionSet) String() string {
	dirs := s.Directions()
	names := make([]string, len(dirs))
	for i, d := range dirs {
		names[i] = d.String()
	}
	return "{" + strings.Join(names, ",") + "}"
}
