package flight

import (
	"sync"

	"github.com/google/uuid"

	"github.com/zeusync/fcs/internal/core/control"
	"github.com/zeusync/fcs/internal/core/control/kinematics"
	"github.com/zeusync/fcs/internal/core/propulsion"
	"github.com/zeusync/fcs/pkg/axis"
)

// Source supplies a vehicle's input for the next tick.
type Source interface {
	TickInput(dt float64) control.TickInput
}

// Plant is notified of every frame its vehicle produced. A Source that also
// implements Plant closes the loop.
type Plant interface {
	Apply(frame control.Frame, dt float64)
}

// Vehicle is one controlled body in a Fleet.
type Vehicle struct {
	ID         uuid.UUID
	Name       string
	Layout     *propulsion.Layout
	Controller *control.Controller
	Source     Source
}

func (v *Vehicle) valid() bool {
	return v != nil && v.Name != "" && v.Layout != nil && v.Controller != nil && v.Source != nil
}

// Integrator is a Source and Plant that integrates bounded acceleration
// into its own state. Hosts without a physics engine use it as the plant.
type Integrator struct {
	mu     sync.Mutex
	state  kinematics.State
	pilot  axis.Vector6
	goal   axis.Vector6
	target axis.Vector6
}

func NewIntegrator(initial kinematics.State) *Integrator {
	return &Integrator{state: initial}
}

// SetPilot sets the stick input read from the next tick on.
func (i *Integrator) SetPilot(v axis.Vector6) {
	i.mu.Lock()
	i.pilot = v
	i.mu.Unlock()
}

func (i *Integrator) SetGoal(v axis.Vector6) {
	i.mu.Lock()
	i.goal = v
	i.mu.Unlock()
}

func (i *Integrator) SetTarget(v axis.Vector6) {
	i.mu.Lock()
	i.target = v
	i.mu.Unlock()
}

// State implements kinematics.Sensor.
func (i *Integrator) State() kinematics.State {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state
}

func (i *Integrator) TickInput(dt float64) control.TickInput {
	i.mu.Lock()
	defer i.mu.Unlock()
	return control.TickInput{
		Pilot:     i.pilot,
		Goal:      i.goal,
		Target:    i.target,
		State:     i.state,
		DeltaTime: dt,
	}
}

func (i *Integrator) Apply(frame control.Frame, dt float64) {
	i.mu.Lock()
	i.state = i.state.Integrate(frame.Bounded, dt)
	i.mu.Unlock()
}
