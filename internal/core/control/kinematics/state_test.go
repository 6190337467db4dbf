package kinematics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeusync/fcs/pkg/axis"
)

func TestValidateDeltaTime(t *testing.T) {
	for _, dt := range []float64{0, -0.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.ErrorIs(t, ValidateDeltaTime(dt), ErrInvalidDeltaTime, "dt=%v", dt)
	}
	assert.NoError(t, ValidateDeltaTime(1.0/60))
}

func TestIntegrate(t *testing.T) {
	s := State{}.Integrate(axis.Uniform6(2), 0.5)
	assert.Equal(t, axis.Uniform6(1), s.Velocity)
	assert.Equal(t, axis.Uniform6(0.5), s.Position)
	assert.Equal(t, axis.Uniform6(2), s.Acceleration)
}

func TestSensorAdapters(t *testing.T) {
	want := State{Velocity: axis.Uniform6(3)}
	assert.Equal(t, want, Static(want).State())
	assert.Equal(t, want, SensorFunc(func() State { return want }).State())
}
