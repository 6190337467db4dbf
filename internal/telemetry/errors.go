package telemetry

import "errors"

var (
	ErrHubClosed         = errors.New("telemetry hub is closed")
	ErrMaxClientsReached = errors.New("maximum telemetry clients reached")
)
