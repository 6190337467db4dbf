package axis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContributionRejectsNegative(t *testing.T) {
	_, err := NewContribution(-1, 2)
	require.ErrorIs(t, err, ErrNegativeMagnitude)

	_, err = NewContribution(1, -2)
	require.ErrorIs(t, err, ErrNegativeMagnitude)

	_, err = NewContribution(math.NaN(), 0)
	require.ErrorIs(t, err, ErrNegativeMagnitude)

	c, err := NewContribution(math.Inf(1), 0)
	require.NoError(t, err)
	assert.Equal(t, 1e12, c.Clamp(1e12))
}

func TestContributionBounds(t *testing.T) {
	c := MustContribution(50, 30)
	assert.Equal(t, 50.0, c.Upper())
	assert.Equal(t, -30.0, c.Lower())
	assert.Equal(t, 30.0, c.Negative(), "negative magnitude is stored unsigned")
}

func TestContributionClamp(t *testing.T) {
	c := MustContribution(50, 50)

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"above", 55, 50},
		{"below", -55, -50},
		{"inside", 12.5, 12.5},
		{"zero", 0, 0},
		{"on upper edge", 50, 50},
		{"nan", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 50},
		{"negative infinity", math.Inf(-1), -50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Clamp(tt.in))
		})
	}
}

func TestContributionScale(t *testing.T) {
	c := MustContribution(10, 4)
	assert.Equal(t, 5.0, c.Scale(0.5))
	assert.Equal(t, -2.0, c.Scale(-0.5))
	assert.Equal(t, 0.0, c.Scale(0))
	assert.False(t, math.Signbit(c.Scale(0)), "zero must not become negative zero")
}

func TestContributionAdd(t *testing.T) {
	sum := MustContribution(1, 2).Add(MustContribution(3, 4))
	assert.Equal(t, MustContribution(4, 6), sum)
}

func TestVector6Add(t *testing.T) {
	a := NewVector6(NewDimension3(1.0, 2, 3), NewDimension3(4.0, 5, 6))
	b := NewVector6(NewDimension3(10.0, 20, 30), NewDimension3(40.0, 50, 60))

	got := a.Add(b)
	assert.Equal(t, NewVector6(NewDimension3(11.0, 22, 33), NewDimension3(44.0, 55, 66)), got)
	assert.Equal(t, a, a.Add(Vector6{}))
	assert.Equal(t, b, Vector6{}.Add(b))
}

func TestVector6SlotAccess(t *testing.T) {
	v := Vector6{}.With(Rotational, Y, 7)
	assert.Equal(t, 7.0, v.At(Rotational, Y))
	assert.Equal(t, 7.0, v.Rotational.Y)
	assert.Equal(t, 0.0, v.At(Linear, Y))
	assert.False(t, v.IsZero())
	assert.True(t, Vector6{}.IsZero())
}

func TestBudgetClampIsPerComponent(t *testing.T) {
	b := UniformBudget(MustContribution(50, 50)).
		With(Linear, Z, MustContribution(5, 1))

	in := NewVector6(NewDimension3(55.0, -55, -3), NewDimension3(1.0, 0, -80))
	got := b.Clamp(in)

	want := NewVector6(NewDimension3(50.0, -50, -1), NewDimension3(1.0, 0, -50))
	assert.Equal(t, want, got)
}

func TestMap6VisitsEverySlot(t *testing.T) {
	seen := map[Kind]map[Component]bool{Linear: {}, Rotational: {}}
	Map6(ControlAxis[Dimension3[int]]{}, func(k Kind, c Component, _ int) int {
		seen[k][c] = true
		return 0
	})
	for _, k := range Kinds {
		for _, c := range Components {
			assert.True(t, seen[k][c], "%s %s not visited", k, c)
		}
	}
}
