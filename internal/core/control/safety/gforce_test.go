package safety

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeusync/fcs/pkg/axis"
)

func TestGForceClamp(t *testing.T) {
	g := NewGForce(true, axis.UniformBudget(axis.MustContribution(50, 50)))

	tests := []struct {
		name    string
		in      float64
		want    float64
		engaged bool
	}{
		{"above", 55, 50, true},
		{"below", -55, -50, true},
		{"inside", 12.5, 12.5, false},
		{"at limit", 50, 50, false},
		{"zero", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, engaged := g.Apply(axis.Uniform6(tt.in))
			assert.Equal(t, axis.Uniform6(tt.want), out)
			assert.Equal(t, tt.engaged, engaged)
		})
	}
}

func TestGForceBoundsNaN(t *testing.T) {
	g := NewGForce(true, axis.UniformBudget(axis.MustContribution(50, 50)))

	out, engaged := g.Apply(axis.Uniform6(math.NaN()))
	assert.Equal(t, axis.Vector6{}, out)
	assert.True(t, engaged)

	in := axis.NewVector6(axis.NewDimension3(math.NaN(), 10.0, 0.0), axis.Dimension3[float64]{})
	out, engaged = g.Apply(in)
	assert.Equal(t, axis.NewVector6(axis.NewDimension3(0.0, 10.0, 0.0), axis.Dimension3[float64]{}), out)
	assert.True(t, engaged)
}

func TestGForceIsPerComponent(t *testing.T) {
	limits := axis.UniformBudget(axis.MustContribution(50, 20))
	g := NewGForce(true, limits)

	in := axis.NewVector6(axis.NewDimension3(100.0, 1.0, -30.0), axis.NewDimension3(-5.0, 0.0, 70.0))
	out, engaged := g.Apply(in)
	assert.True(t, engaged)
	// No proportional rescale: untouched slots keep their value.
	assert.Equal(t, axis.NewDimension3(50.0, 1.0, -20.0), out.Linear)
	assert.Equal(t, axis.NewDimension3(-5.0, 0.0, 50.0), out.Rotational)
}

func TestGForceDisabledPassesThrough(t *testing.T) {
	g := NewGForce(false, axis.UniformBudget(axis.MustContribution(1, 1)))
	in := axis.Uniform6(1000)
	out, engaged := g.Apply(in)
	assert.Equal(t, in, out)
	assert.False(t, engaged)

	g.Toggle.Flip()
	out, engaged = g.Apply(in)
	assert.Equal(t, axis.Uniform6(1), out)
	assert.True(t, engaged)
}

func TestLimitsInG(t *testing.T) {
	b := LimitsInG(axis.UniformBudget(axis.MustContribution(2, 1)))
	assert.InDelta(t, 2*StandardGravity, b.At(axis.Linear, axis.Z).Positive(), 1e-12)
	assert.InDelta(t, StandardGravity, b.At(axis.Rotational, axis.X).Negative(), 1e-12)
}
