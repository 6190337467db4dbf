package axis

// Component names one of the three spatial components of a Dimension3.
type Component uint8

const (
	X Component = iota
	Y
	Z
)

// Components lists X, Y and Z in evaluation order.
var Components = [3]Component{X, Y, Z}

func (c Component) String() string {
	switch c {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	default:
		return "invalid"
	}
}

// Dimension3 holds three independent components of one control axis.
// Components never influence each other; every helper in this package
// works on them one at a time.
type Dimension3[T any] struct {
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
	Z T `json:"z" yaml:"z"`
}

func NewDimension3[T any](x, y, z T) Dimension3[T] {
	return Dimension3[T]{X: x, Y: y, Z: z}
}

// Uniform3 returns a Dimension3 with every component set to v.
func Uniform3[T any](v T) Dimension3[T] {
	return Dimension3[T]{X: v, Y: v, Z: v}
}

// Get returns the component named by c. Unknown components yield the zero value.
func (d Dimension3[T]) Get(c Component) T {
	switch c {
	case X:
		return d.X
	case Y:
		return d.Y
	case Z:
		return d.Z
	}
	var zero T
	return zero
}

// Set overwrites the component named by c.
func (d *Dimension3[T]) Set(c Component, v T) {
	switch c {
	case X:
		d.X = v
	case Y:
		d.Y = v
	case Z:
		d.Z = v
	}
}

// Map3 applies fn to each component.
func Map3[T, R any](d Dimension3[T], fn func(c Component, v T) R) Dimension3[R] {
	return Dimension3[R]{
		X: fn(X, d.X),
		Y: fn(Y, d.Y),
		Z: fn(Z, d.Z),
	}
}

// Zip3 combines two Dimension3 values component by component.
func Zip3[A, B, R any](a Dimension3[A], b Dimension3[B], fn func(c Component, a A, b B) R) Dimension3[R] {
	return Dimension3[R]{
		X: fn(X, a.X, b.X),
		Y: fn(Y, a.Y, b.Y),
		Z: fn(Z, a.Z, b.Z),
	}
}
