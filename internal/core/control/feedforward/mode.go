package feedforward

// Mode selects where the desired motion comes from.
type Mode uint8

const (
	Pilot Mode = iota
	Autonomous
)

func (m Mode) String() string {
	if m == Autonomous {
		return "autonomous"
	}
	return "pilot"
}

// AssistMode selects how pilot input is read for one group of axes.
type AssistMode uint8

const (
	// AssistVelocity reads input as a fraction of max velocity and
	// accelerates toward it.
	AssistVelocity AssistMode = iota
	// AssistAcceleration reads input as a fraction of the available
	// acceleration.
	AssistAcceleration
)

func (a AssistMode) String() string {
	if a == AssistAcceleration {
		return "direct_acceleration"
	}
	return "velocity_tracking"
}
