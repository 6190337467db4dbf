package control

import (
	"github.com/zeusync/fcs/internal/core/control/feedforward"
	"github.com/zeusync/fcs/internal/core/control/safety"
	"github.com/zeusync/fcs/pkg/toggle"
)

// FeedbackTarget selects which measured quantity the trim loops track.
type FeedbackTarget uint8

const (
	TargetVelocity FeedbackTarget = iota
	TargetPosition
)

func (t FeedbackTarget) String() string {
	if t == TargetPosition {
		return "position"
	}
	return "velocity"
}

// Config holds the switches and limits of one vehicle's pipeline. The host
// may change it between ticks through Controller.Configure.
type Config struct {
	Feedforward feedforward.Config
	Safety      safety.GForce

	// Feedback enables the trim stage. Disabled, trim is zero and the PID
	// loops are not advanced.
	Feedback       toggle.Toggle
	FeedbackTarget FeedbackTarget
}
