package propulsion

import (
	"errors"
	"fmt"
)

var (
	ErrThrusterTooLarge = errors.New("thruster is too large for mount point")
	ErrMountIndex       = errors.New("mount point index out of range")
	ErrInvalidThrust    = errors.New("max thrust must be a finite non-negative number")
	ErrInvalidMass      = errors.New("mass must be a finite positive number")
	ErrInvalidInertia   = errors.New("effective inertia must be a finite positive number")
	ErrNoDirections     = errors.New("mount point declares no thrust directions")
	ErrUnknownSize      = errors.New("unknown thruster size")
	ErrUnknownDirection = errors.New("unknown thrust direction")
)

// SizeError reports an attach that was refused because the thruster's size
// class exceeds what the mount accepts. The mount is left unchanged.
type SizeError struct {
	Mount string
	Max   ThrusterSize
	Got   ThrusterSize
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("mount %q accepts up to %s, got %s: %s", e.Mount, e.Max, e.Got, ErrThrusterTooLarge)
}

func (e *SizeError) Unwrap() error { return ErrThrusterTooLarge }
