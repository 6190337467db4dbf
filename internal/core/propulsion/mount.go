package propulsion

import (
	"fmt"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r3"
)

// MountPoint is a slot on the hull that may hold one thruster. The slot fixes
// which directions an attached thruster contributes to and the largest size
// class it accepts. An empty slot is valid.
type MountPoint struct {
	id         uuid.UUID
	name       string
	directions DirectionSet
	maxSize    ThrusterSize
	location   r3.Vec
	thruster   *Thruster
}

// NewMountPoint builds an empty mount. location is relative to the dry center
// of mass.
func NewMountPoint(name string, maxSize ThrusterSize, location r3.Vec, dirs ...ThrustDirection) (MountPoint, error) {
	set := NewDirectionSet(dirs...)
	if set.Empty() {
		return MountPoint{}, fmt.Errorf("mount %q: %w", name, ErrNoDirections)
	}
	if !maxSize.valid() {
		return MountPoint{}, fmt.Errorf("mount %q: %v: %w", name, maxSize, ErrUnknownSize)
	}
	return MountPoint{
		id:         uuid.New(),
		name:       name,
		directions: set,
		maxSize:    maxSize,
		location:   location,
	}, nil
}

func (m MountPoint) ID() uuid.UUID            { return m.id }
func (m MountPoint) Name() string             { return m.name }
func (m MountPoint) Directions() DirectionSet { return m.directions }
func (m MountPoint) MaxSize() ThrusterSize    { return m.maxSize }
func (m MountPoint) Location() r3.Vec         { return m.location }
func (m MountPoint) Occupied() bool           { return m.thruster != nil }
func (m MountPoint) Accepts(t Thruster) bool  { return t.Size() <= m.maxSize }

// Thruster returns the attached thruster, if any.
func (m MountPoint) Thruster() (Thruster, bool) {
	if m.thruster == nil {
		return Thruster{}, false
	}
	return *m.thruster, true
}

// Attach installs t, replacing whatever was attached. An oversized thruster
// is refused with a *SizeError and the previous attachment stays in place.
func (m *MountPoint) Attach(t Thruster) error {
	if !m.Accepts(t) {
		return &SizeError{Mount: m.name, Max: m.maxSize, Got: t.Size()}
	}
	m.thruster = &t
	return nil
}

// Detach empties the slot and returns what was attached.
func (m *MountPoint) Detach() (Thruster, bool) {
	prev, ok := m.Thruster()
	m.thruster = nil
	return prev, ok
}

// DistanceFromCenter is the lever arm from center to this mount.
func (m MountPoint) DistanceFromCenter(center r3.Vec) float64 {
	return r3.Norm(r3.Sub(m.location, center))
}

func (m MountPoint) String() string {
	t := "empty"
	if m.thruster != nil {
		t = m.thruster.String()
	}
	return fmt.Sprintf("%s%s<=%s:%s", m.name, m.directions, m.maxSize, t)
}
