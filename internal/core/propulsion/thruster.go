package propulsion

import (
	"fmt"
	"math"
	"strings"
)

// ThrusterSize is an ordered size class: Small < Medium < Large.
type ThrusterSize uint8

const (
	Small ThrusterSize = iota
	Medium
	Large
)

func (s ThrusterSize) String() string {
	switch s {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return fmt.Sprintf("size(%d)", uint8(s))
	}
}

func (s ThrusterSize) valid() bool { return s <= Large }

func ParseThrusterSize(s string) (ThrusterSize, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "small":
		return Small, nil
	case "medium":
		return Medium, nil
	case "large":
		return Large, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownSize)
	}
}

// Thruster is a propulsion device. Its max thrust is a magnitude; which axis
// it pushes along comes from the mount point it is attached to.
type Thruster struct {
	maxThrust float64
	size      ThrusterSize
}

func NewThruster(maxThrust float64, size ThrusterSize) (Thruster, error) {
	if maxThrust < 0 || math.IsNaN(maxThrust) || math.IsInf(maxThrust, 0) {
		return Thruster{}, fmt.Errorf("%v: %w", maxThrust, ErrInvalidThrust)
	}
	if !size.valid() {
		return Thruster{}, fmt.Errorf("%v: %w", size, ErrUnknownSize)
	}
	return Thruster{maxThrust: maxThrust, size: size}, nil
}

// MustThruster is NewThruster for literals known to be valid.
func MustThruster(maxThrust float64, size ThrusterSize) Thruster {
	t, err := NewThruster(maxThrust, size)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Thruster) MaxThrust() float64 { return t.maxThrust }
func (t Thruster) Size() ThrusterSize { return t.size }
func (t Thruster) String() string     { return fmt.Sprintf("%s/%gN", t.size, t.maxThrust) }
