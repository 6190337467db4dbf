package feedback

import (
	"fmt"
	"math"
)

// Gains configures one PID loop. A zero limit disables that limit.
type Gains struct {
	Kp float64 `json:"kp" yaml:"kp"`
	Ki float64 `json:"ki" yaml:"ki"`
	Kd float64 `json:"kd" yaml:"kd"`

	// IntegralLimit bounds the accumulated error to +-IntegralLimit.
	IntegralLimit float64 `json:"integral_limit,omitempty" yaml:"integral_limit,omitempty"`
	// OutputLimit bounds the correction to +-OutputLimit.
	OutputLimit float64 `json:"output_limit,omitempty" yaml:"output_limit,omitempty"`
}

// Validate only checks that gains are numbers. Stability is the caller's
// concern: a divergent gain set diverges.
func (g Gains) Validate() error {
	for _, v := range []float64{g.Kp, g.Ki, g.Kd} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%+v: %w", g, ErrInvalidGain)
		}
	}
	if g.IntegralLimit < 0 || g.OutputLimit < 0 || math.IsNaN(g.IntegralLimit) || math.IsNaN(g.OutputLimit) {
		return fmt.Errorf("%+v: %w", g, ErrInvalidLimit)
	}
	return nil
}

// PID is one loop's controller state. It is not safe for concurrent use;
// each degree of freedom owns its own instance.
type PID struct {
	gains Gains

	integral  float64
	prevError float64
	output    float64
	evaluated bool
}

func NewPID(g Gains) *PID {
	return &PID{gains: g}
}

func (p *PID) Gains() Gains { return p.gains }

// Evaluate advances the loop by dt and returns the correction for the error
// goal - measured. The first evaluation has no previous error, so its
// derivative term is zero.
func (p *PID) Evaluate(goal, measured, dt float64) float64 {
	err := goal - measured

	p.integral += err * dt
	if lim := p.gains.IntegralLimit; lim > 0 {
		p.integral = math.Max(-lim, math.Min(lim, p.integral))
	}

	var derivative float64
	if p.evaluated {
		derivative = (err - p.prevError) / dt
	}

	out := p.gains.Kp*err + p.gains.Ki*p.integral + p.gains.Kd*derivative
	if lim := p.gains.OutputLimit; lim > 0 {
		out = math.Max(-lim, math.Min(lim, out))
	}

	p.prevError = err
	p.output = out
	p.evaluated = true
	return out
}

// Output returns the last correction. ok is false until the first Evaluate.
func (p *PID) Output() (out float64, ok bool) {
	return p.output, p.evaluated
}

// OutputOrZero is Output with the neutral value substituted when absent.
func (p *PID) OutputOrZero() float64 {
	if !p.evaluated {
		return 0
	}
	return p.output
}

// Integral reports the accumulated error, for diagnostics.
func (p *PID) Integral() float64 { return p.integral }

// Reset clears integral and derivative memory. Output is absent again.
func (p *PID) Reset() {
	p.integral = 0
	p.prevError = 0
	p.output = 0
	p.evaluated = false
}
