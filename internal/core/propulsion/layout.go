package propulsion

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/zeusync/fcs/internal/core/events/bus"
	"github.com/zeusync/fcs/internal/core/observability/log"
	"github.com/zeusync/fcs/pkg/axis"
)

// Event types published by a Layout.
const (
	EventLayoutChanged  = "propulsion.layout.changed"
	EventAttachRejected = "propulsion.attach.rejected"
)

// LayoutOp names the mutation behind a LayoutChanged event.
type LayoutOp string

const (
	OpAttach  LayoutOp = "attach"
	OpDetach  LayoutOp = "detach"
	OpReplace LayoutOp = "replace"
	OpMass    LayoutOp = "mass"
)

// LayoutChanged is the payload of EventLayoutChanged. MountID is uuid.Nil
// for changes that are not tied to a mount.
type LayoutChanged struct {
	Layout     string
	Op         LayoutOp
	Mount      int
	MountID    uuid.UUID
	Capability *Capability
}

// AttachRejected is the payload of EventAttachRejected.
type AttachRejected struct {
	Layout  string
	Mount   int
	MountID uuid.UUID
	Err     error
}

// Layout owns a vehicle's mount points and the Capability derived from them.
//
// Mutations take the layout lock, rebuild the Capability and publish it with
// a single atomic store. Readers on the tick path call Capability and get the
// complete old or the complete new snapshot, never a mix.
type Layout struct {
	name    string
	mu      sync.Mutex
	mounts  []MountPoint
	mass    float64
	inertia axis.Dimension3[float64]
	version uint64

	snapshot atomic.Pointer[Capability]

	logger log.Log
	events bus.EventBus
}

type LayoutOption func(*Layout)

func WithLayoutName(name string) LayoutOption {
	return func(l *Layout) { l.name = name }
}

func WithLayoutLogger(logger log.Log) LayoutOption {
	return func(l *Layout) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithEventBus makes the layout publish change and rejection events.
func WithEventBus(events bus.EventBus) LayoutOption {
	return func(l *Layout) { l.events = events }
}

// WithInertia sets the effective rotational inertia per component. The
// default is IdentityInertia.
func WithInertia(inertia axis.Dimension3[float64]) LayoutOption {
	return func(l *Layout) { l.inertia = inertia }
}

// NewLayout takes ownership of mounts and builds the first Capability.
func NewLayout(mass float64, mounts []MountPoint, opts ...LayoutOption) (*Layout, error) {
	l := &Layout{
		name:    "layout",
		mounts:  append([]MountPoint(nil), mounts...),
		mass:    mass,
		inertia: IdentityInertia(),
		logger:  log.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With(log.String("layout", l.name))

	capability, err := NewCapability(l.mounts, l.mass, l.inertia)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", l.name, err)
	}
	l.version = 1
	capability.Version = l.version
	l.snapshot.Store(capability)
	return l, nil
}

func (l *Layout) Name() string { return l.name }

// Capability returns the current snapshot. It never returns nil for a Layout
// built by NewLayout.
func (l *Layout) Capability() *Capability {
	return l.snapshot.Load()
}

// Mounts returns a copy of the mount table.
func (l *Layout) Mounts() []MountPoint {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]MountPoint(nil), l.mounts...)
}

// MountIndex finds the table index of the mount with the given ID.
func (l *Layout) MountIndex(id uuid.UUID) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.mounts {
		if l.mounts[i].ID() == id {
			return i, true
		}
	}
	return -1, false
}

func (l *Layout) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.mounts)
}

func (l *Layout) Mass() float64 {
	return l.Capability().Mass
}

// Attach installs t on mount i, replacing any attached thruster. An oversized
// thruster yields a *SizeError and leaves the mount as it was.
func (l *Layout) Attach(i int, t Thruster) error {
	_, _, err := l.attach(i, t, OpAttach)
	return err
}

// Replace is Attach that also returns the thruster it displaced.
func (l *Layout) Replace(i int, t Thruster) (Thruster, bool, error) {
	return l.attach(i, t, OpReplace)
}

func (l *Layout) attach(i int, t Thruster, op LayoutOp) (Thruster, bool, error) {
	l.mu.Lock()
	if err := l.checkIndexLocked(i); err != nil {
		l.mu.Unlock()
		return Thruster{}, false, err
	}
	id := l.mounts[i].ID()
	prev, had := l.mounts[i].Thruster()
	if err := l.mounts[i].Attach(t); err != nil {
		l.mu.Unlock()
		l.logger.Warn("thruster attach rejected",
			log.Int("mount", i),
			log.Stringer("mount_id", id),
			log.Stringer("thruster", t),
			log.Error(err))
		l.publish(EventAttachRejected, AttachRejected{Layout: l.name, Mount: i, MountID: id, Err: err})
		return Thruster{}, false, err
	}
	capability, changed := l.rebuildLocked()
	l.mu.Unlock()

	l.logger.Info("thruster attached",
		log.String("op", string(op)),
		log.Int("mount", i),
		log.Stringer("mount_id", id),
		log.Stringer("thruster", t),
		log.Bool("capability_changed", changed))
	if changed {
		l.publish(EventLayoutChanged, LayoutChanged{Layout: l.name, Op: op, Mount: i, MountID: id, Capability: capability})
	}
	return prev, had, nil
}

// Detach empties mount i and returns what was attached.
func (l *Layout) Detach(i int) (Thruster, bool, error) {
	l.mu.Lock()
	if err := l.checkIndexLocked(i); err != nil {
		l.mu.Unlock()
		return Thruster{}, false, err
	}
	id := l.mounts[i].ID()
	prev, had := l.mounts[i].Detach()
	capability, changed := l.rebuildLocked()
	l.mu.Unlock()

	if had {
		l.logger.Info("thruster detached", log.Int("mount", i), log.Stringer("mount_id", id), log.Stringer("thruster", prev))
	}
	if changed {
		l.publish(EventLayoutChanged, LayoutChanged{Layout: l.name, Op: OpDetach, Mount: i, MountID: id, Capability: capability})
	}
	return prev, had, nil
}

// SetMass changes the vehicle mass and rebuilds the acceleration budget.
func (l *Layout) SetMass(mass float64) error {
	if err := validateMass(mass); err != nil {
		return err
	}
	l.mu.Lock()
	l.mass = mass
	capability, changed := l.rebuildLocked()
	l.mu.Unlock()

	if changed {
		l.logger.Info("vehicle mass changed", log.Float64("mass", mass))
		l.publish(EventLayoutChanged, LayoutChanged{Layout: l.name, Op: OpMass, Mount: -1, Capability: capability})
	}
	return nil
}

func (l *Layout) checkIndexLocked(i int) error {
	if i < 0 || i >= len(l.mounts) {
		return fmt.Errorf("%d of %d: %w", i, len(l.mounts), ErrMountIndex)
	}
	return nil
}

// rebuildLocked recomputes the Capability unless the fingerprint shows that
// nothing the budget depends on changed.
func (l *Layout) rebuildLocked() (*Capability, bool) {
	current := l.snapshot.Load()
	if fingerprint(l.mounts, l.mass, l.inertia) == current.Fingerprint {
		return current, false
	}
	capability, err := NewCapability(l.mounts, l.mass, l.inertia)
	if err != nil {
		// mass and inertia are validated before they are stored, so this
		// only fires on a programming error.
		panic(fmt.Sprintf("propulsion: rebuild capability: %v", err))
	}
	l.version++
	capability.Version = l.version
	l.snapshot.Store(capability)
	return capability, true
}

func (l *Layout) publish(eventType string, data any) {
	if l.events == nil {
		return
	}
	if err := l.events.Publish(bus.NewEvent(eventType, l.name, data)); err != nil {
		l.logger.Warn("layout event handler failed", log.String("event", eventType), log.Error(err))
	}
}
