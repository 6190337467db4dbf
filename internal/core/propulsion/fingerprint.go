package propulsion

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/zeusync/fcs/pkg/axis"
)

// fingerprint hashes everything the capability math depends on: mass,
// inertia, and for each mount its directions and attached thrust. Names,
// IDs and locations are left out since they do not change the budget.
func fingerprint(mounts []MountPoint, mass float64, inertia axis.Dimension3[float64]) uint64 {
	d := xxhash.New()
	var buf [8]byte
	putFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = d.Write(buf[:])
	}

	putFloat(mass)
	putFloat(inertia.X)
	putFloat(inertia.Y)
	putFloat(inertia.Z)
	for _, m := range mounts {
		binary.LittleEndian.PutUint16(buf[:2], uint16(m.Directions()))
		_, _ = d.Write(buf[:2])
		if t, ok := m.Thruster(); ok {
			putFloat(t.MaxThrust())
		} else {
			putFloat(-1)
		}
	}
	return d.Sum64()
}
