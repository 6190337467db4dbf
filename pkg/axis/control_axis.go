package axis

// Kind separates linear actuation from rotational actuation.
type Kind uint8

const (
	Linear Kind = iota
	Rotational
)

// Kinds lists Linear and Rotational in evaluation order.
var Kinds = [2]Kind{Linear, Rotational}

func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Rotational:
		return "rotational"
	default:
		return "invalid"
	}
}

// ControlAxis pairs a linear value with a rotational value of the same type.
type ControlAxis[T any] struct {
	Linear     T `json:"linear" yaml:"linear"`
	Rotational T `json:"rotational" yaml:"rotational"`
}

func NewControlAxis[T any](linear, rotational T) ControlAxis[T] {
	return ControlAxis[T]{Linear: linear, Rotational: rotational}
}

// Get returns the half named by k. Unknown kinds yield the zero value.
func (a ControlAxis[T]) Get(k Kind) T {
	switch k {
	case Linear:
		return a.Linear
	case Rotational:
		return a.Rotational
	}
	var zero T
	return zero
}

// Ref returns a pointer to the half named by k, or nil for an unknown kind.
func (a *ControlAxis[T]) Ref(k Kind) *T {
	switch k {
	case Linear:
		return &a.Linear
	case Rotational:
		return &a.Rotational
	}
	return nil
}

// Map6 applies fn to each of the six scalar slots of a ControlAxis of Dimension3.
func Map6[T, R any](a ControlAxis[Dimension3[T]], fn func(k Kind, c Component, v T) R) ControlAxis[Dimension3[R]] {
	return ControlAxis[Dimension3[R]]{
		Linear: Map3(a.Linear, func(c Component, v T) R {
			return fn(Linear, c, v)
		}),
		Rotational: Map3(a.Rotational, func(c Component, v T) R {
			return fn(Rotational, c, v)
		}),
	}
}

// Zip6 combines two six-slot values slot by slot.
func Zip6[A, B, R any](a ControlAxis[Dimension3[A]], b ControlAxis[Dimension3[B]], fn func(k Kind, c Component, a A, b B) R) ControlAxis[Dimension3[R]] {
	return ControlAxis[Dimension3[R]]{
		Linear: Zip3(a.Linear, b.Linear, func(c Component, x A, y B) R {
			return fn(Linear, c, x, y)
		}),
		Rotational: Zip3(a.Rotational, b.Rotational, func(c Component, x A, y B) R {
			return fn(Rotational, c, x, y)
		}),
	}
}
