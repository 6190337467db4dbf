package control

import "time"

// Metrics summarizes a controller's ticks.
type Metrics struct {
	TickCount         uint64
	RejectedTicks     uint64
	SafetyEngagements uint64

	LastTickDuration    time.Duration
	AverageTickDuration time.Duration
	MaxTickDuration     time.Duration
	TotalTickDuration   time.Duration

	LastError error
	LastTick  time.Time
}

func (m *Metrics) observe(d time.Duration, at time.Time) {
	m.TickCount++
	m.LastTickDuration = d
	m.TotalTickDuration += d
	m.AverageTickDuration = m.TotalTickDuration / time.Duration(m.TickCount)
	if d > m.MaxTickDuration {
		m.MaxTickDuration = d
	}
	m.LastTick = at
}
