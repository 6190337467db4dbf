package control

import "errors"

var (
	ErrNilCapability = errors.New("capability source is required")
	ErrNilBank       = errors.New("feedback bank is required")
)
