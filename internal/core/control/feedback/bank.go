// Package feedback computes trim acceleration from six independent PID loops,
// one per degree of freedom.
package feedback

import (
	"fmt"
	"math"

	"github.com/zeusync/fcs/internal/core/control/kinematics"
	"github.com/zeusync/fcs/pkg/axis"
)

// TrimMode says how a loop's correction is fitted to the acceleration budget.
type TrimMode uint8

const (
	// TrimClamp treats the correction as an acceleration and clamps it into
	// the budget.
	TrimClamp TrimMode = iota
	// TrimScale treats the correction as a fraction of the budget: it is
	// clamped to [-1, 1] and multiplied by the magnitude on its side.
	TrimScale
)

func (m TrimMode) String() string {
	if m == TrimScale {
		return "scale"
	}
	return "clamp"
}

func ParseTrimMode(s string) (TrimMode, error) {
	switch s {
	case "", "clamp":
		return TrimClamp, nil
	case "scale":
		return TrimScale, nil
	}
	return 0, fmt.Errorf("unknown trim mode %q", s)
}

// Apply fits a raw correction to one slot's budget. Zero stays exactly zero.
func (m TrimMode) Apply(v float64, budget axis.Contribution) float64 {
	if m == TrimScale {
		return budget.Scale(math.Max(-1, math.Min(1, v)))
	}
	return budget.Clamp(v)
}

// Bank owns the six loops. Like PID it is not safe for concurrent use.
type Bank struct {
	loops axis.ControlAxis[axis.Dimension3[*PID]]
	mode  TrimMode
}

// NewBank builds one loop per slot from gains.
func NewBank(gains axis.ControlAxis[axis.Dimension3[Gains]], mode TrimMode) (*Bank, error) {
	for _, k := range axis.Kinds {
		for _, c := range axis.Components {
			if err := gains.Get(k).Get(c).Validate(); err != nil {
				return nil, fmt.Errorf("%s %s: %w", k, c, err)
			}
		}
	}
	return &Bank{
		loops: axis.Map6(gains, func(_ axis.Kind, _ axis.Component, g Gains) *PID { return NewPID(g) }),
		mode:  mode,
	}, nil
}

// UniformBank uses the same gains on every slot.
func UniformBank(g Gains, mode TrimMode) (*Bank, error) {
	d := axis.Uniform3(g)
	return NewBank(axis.NewControlAxis(d, d), mode)
}

func (b *Bank) Mode() TrimMode { return b.mode }

// Loop exposes one slot's controller.
func (b *Bank) Loop(k axis.Kind, c axis.Component) *PID {
	return b.loops.Get(k).Get(c)
}

// Evaluate runs every loop once and returns the raw corrections, zero for any
// loop that produced no output.
func (b *Bank) Evaluate(goal, measured axis.Vector6, dt float64) (axis.Vector6, error) {
	if err := kinematics.ValidateDeltaTime(dt); err != nil {
		return axis.Vector6{}, err
	}
	var out axis.Vector6
	for _, k := range axis.Kinds {
		for _, c := range axis.Components {
			loop := b.Loop(k, c)
			loop.Evaluate(goal.At(k, c), measured.At(k, c), dt)
			out = out.With(k, c, loop.OutputOrZero())
		}
	}
	return out, nil
}

// Trim evaluates the loops and fits each correction to budget.
func (b *Bank) Trim(goal, measured axis.Vector6, budget axis.Budget, dt float64) (axis.Vector6, error) {
	raw, err := b.Evaluate(goal, measured, dt)
	if err != nil {
		return axis.Vector6{}, err
	}
	return raw.Map(func(k axis.Kind, c axis.Component, v float64) float64 {
		return b.mode.Apply(v, budget.At(k, c))
	}), nil
}

// Outputs reports the last correction of every loop, zero where absent.
func (b *Bank) Outputs() axis.Vector6 {
	return axis.Vector6(axis.Map6(b.loops, func(_ axis.Kind, _ axis.Component, p *PID) float64 {
		return p.OutputOrZero()
	}))
}

// Reset clears every loop.
func (b *Bank) Reset() {
	for _, k := range axis.Kinds {
		for _, c := range axis.Components {
			b.Loop(k, c).Reset()
		}
	}
}
