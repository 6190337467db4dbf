package axis

// Vector6 is one scalar per degree of freedom: three linear and three
// rotational components.
type Vector6 ControlAxis[Dimension3[float64]]

// Budget holds one asymmetric Contribution per degree of freedom. It is the
// shape of available thrust, available acceleration and g-safety limits.
type Budget ControlAxis[Dimension3[Contribution]]

func NewVector6(linear, rotational Dimension3[float64]) Vector6 {
	return Vector6{Linear: linear, Rotational: rotational}
}

// Uniform6 returns a Vector6 with every slot set to v.
func Uniform6(v float64) Vector6 {
	return Vector6{Linear: Uniform3(v), Rotational: Uniform3(v)}
}

// At returns the scalar in slot (k, c).
func (v Vector6) At(k Kind, c Component) float64 {
	return ControlAxis[Dimension3[float64]](v).Get(k).Get(c)
}

// With returns a copy of v with slot (k, c) replaced.
func (v Vector6) With(k Kind, c Component, value float64) Vector6 {
	a := ControlAxis[Dimension3[float64]](v)
	a.Ref(k).Set(c, value)
	return Vector6(a)
}

// Map applies fn to each slot.
func (v Vector6) Map(fn func(k Kind, c Component, value float64) float64) Vector6 {
	return Vector6(Map6(ControlAxis[Dimension3[float64]](v), fn))
}

// Add is the elementwise sum.
func (v Vector6) Add(o Vector6) Vector6 {
	return Vector6(Zip6(ControlAxis[Dimension3[float64]](v), ControlAxis[Dimension3[float64]](o),
		func(_ Kind, _ Component, a, b float64) float64 { return a + b }))
}

// Mul scales every slot by k.
func (v Vector6) Mul(k float64) Vector6 {
	return v.Map(func(_ Kind, _ Component, value float64) float64 { return value * k })
}

// IsZero reports whether every slot is exactly zero.
func (v Vector6) IsZero() bool {
	return v == Vector6{}
}

// UniformBudget returns a Budget with c in every slot.
func UniformBudget(c Contribution) Budget {
	return Budget{Linear: Uniform3(c), Rotational: Uniform3(c)}
}

// At returns the Contribution in slot (k, c).
func (b Budget) At(k Kind, c Component) Contribution {
	return ControlAxis[Dimension3[Contribution]](b).Get(k).Get(c)
}

// With returns a copy of b with slot (k, c) replaced.
func (b Budget) With(k Kind, c Component, value Contribution) Budget {
	a := ControlAxis[Dimension3[Contribution]](b)
	a.Ref(k).Set(c, value)
	return Budget(a)
}

// Clamp saturates each slot of v into the matching Contribution.
func (b Budget) Clamp(v Vector6) Vector6 {
	return v.Map(func(k Kind, c Component, value float64) float64 {
		return b.At(k, c).Clamp(value)
	})
}

// Scale multiplies each slot of v by the magnitude on its side.
func (b Budget) Scale(v Vector6) Vector6 {
	return v.Map(func(k Kind, c Component, value float64) float64 {
		return b.At(k, c).Scale(value)
	})
}
