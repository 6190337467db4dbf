// Package safety bounds commanded acceleration to pilot-set g-force limits.
package safety

import (
	"github.com/zeusync/fcs/pkg/axis"
	"github.com/zeusync/fcs/pkg/toggle"
)

// StandardGravity converts g to m/s^2.
const StandardGravity = 9.80665

// GForce clamps each slot into [-negative, +positive] of Limits while
// enabled. Slots are clamped independently; the vector is never rescaled.
type GForce struct {
	Toggle toggle.Toggle
	Limits axis.Budget
}

func NewGForce(enabled bool, limits axis.Budget) GForce {
	return GForce{Toggle: toggle.New(enabled), Limits: limits}
}

// LimitsInG builds a Budget from limits expressed in g.
func LimitsInG(g axis.Budget) axis.Budget {
	var out axis.Budget
	for _, k := range axis.Kinds {
		for _, c := range axis.Components {
			l := g.At(k, c)
			out = out.With(k, c, axis.MustContribution(l.Positive()*StandardGravity, l.Negative()*StandardGravity))
		}
	}
	return out
}

// Apply returns the bounded acceleration and whether any slot was changed.
// Disabled, it passes accel through.
func (g GForce) Apply(accel axis.Vector6) (axis.Vector6, bool) {
	if !g.Toggle.Enabled() {
		return accel, false
	}
	bounded := g.Limits.Clamp(accel)
	return bounded, bounded != accel
}
