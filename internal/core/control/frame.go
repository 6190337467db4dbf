package control

import (
	"time"

	"github.com/zeusync/fcs/internal/core/control/feedforward"
	"github.com/zeusync/fcs/internal/core/control/kinematics"
	"github.com/zeusync/fcs/pkg/axis"
)

// TickInput is everything the host supplies for one step.
type TickInput struct {
	// Pilot is stick input in [-1, 1], read in pilot mode.
	Pilot axis.Vector6 `json:"pilot"`
	// Goal is the goal pose, read in autonomous mode.
	Goal axis.Vector6 `json:"goal"`
	// Target is what the trim loops drive the measured position or
	// velocity toward. Zero holds still.
	Target axis.Vector6 `json:"target"`

	State     kinematics.State `json:"state"`
	DeltaTime float64          `json:"dt"`
}

// Frame is the result of one tick. Every intermediate stage is kept so a
// host or a test can see where the command was shaped.
type Frame struct {
	Vehicle  string    `json:"vehicle"`
	Sequence uint64    `json:"seq"`
	Time     time.Time `json:"time"`
	Mode     string    `json:"mode"`

	Feedforward axis.Vector6 `json:"feedforward"`
	Feedback    axis.Vector6 `json:"feedback"`
	Combined    axis.Vector6 `json:"combined"`
	// Bounded is the acceleration command after the safety clamp.
	Bounded axis.Vector6 `json:"bounded"`
	// Thrust is Bounded realized against the vehicle mass.
	Thrust axis.Vector6 `json:"thrust"`

	SafetyEngaged     bool   `json:"safety_engaged"`
	CapabilityVersion uint64 `json:"capability_version"`
}

func modeName(cfg Config) string {
	if cfg.Feedforward.Mode() == feedforward.Autonomous {
		return feedforward.Autonomous.String()
	}
	return feedforward.Pilot.String()
}
