package axis

import (
	"fmt"
	"math"
)

// Contribution is an asymmetric pair of magnitudes for one axis component:
// how far the value may go in the positive direction and how far in the
// negative direction.
//
// Both magnitudes are stored as non-negative numbers. The sign lives in the
// field, never in the value: the negative magnitude 5 means a lower bound of
// -5. Use Lower to get the signed bound instead of negating by hand.
type Contribution struct {
	positive float64
	negative float64
}

// NewContribution validates and builds a Contribution. Negative and NaN
// magnitudes are rejected; +Inf is accepted and means unbounded.
func NewContribution(positive, negative float64) (Contribution, error) {
	if positive < 0 || math.IsNaN(positive) {
		return Contribution{}, fmt.Errorf("positive %v: %w", positive, ErrNegativeMagnitude)
	}
	if negative < 0 || math.IsNaN(negative) {
		return Contribution{}, fmt.Errorf("negative %v: %w", negative, ErrNegativeMagnitude)
	}
	return Contribution{positive: positive, negative: negative}, nil
}

// MustContribution is NewContribution for literals known to be valid.
func MustContribution(positive, negative float64) Contribution {
	c, err := NewContribution(positive, negative)
	if err != nil {
		panic(err)
	}
	return c
}

// Symmetric returns a Contribution with the same magnitude on both sides.
func Symmetric(magnitude float64) (Contribution, error) {
	return NewContribution(magnitude, magnitude)
}

func (c Contribution) Positive() float64 { return c.positive }
func (c Contribution) Negative() float64 { return c.negative }

// Upper is the signed upper bound, equal to Positive.
func (c Contribution) Upper() float64 { return c.positive }

// Lower is the signed lower bound, the negated negative magnitude.
func (c Contribution) Lower() float64 { return -c.negative }

// Add sums two contributions side by side.
func (c Contribution) Add(o Contribution) Contribution {
	return Contribution{positive: c.positive + o.positive, negative: c.negative + o.negative}
}

// Clamp saturates v into [Lower, Upper]. NaN clamps to zero.
func (c Contribution) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v > c.positive {
		return c.positive
	}
	if v < -c.negative {
		return -c.negative
	}
	return v
}

// Scale multiplies v by the magnitude on v's side. Zero maps to exactly zero.
func (c Contribution) Scale(v float64) float64 {
	switch {
	case v > 0:
		return v * c.positive
	case v < 0:
		return v * c.negative
	default:
		return 0
	}
}

func (c Contribution) String() string {
	return fmt.Sprintf("[-%g, +%g]", c.negative, c.positive)
}
