package feedback

import "errors"

var (
	ErrInvalidGain  = errors.New("pid gains must be finite")
	ErrInvalidLimit = errors.New("pid limits must be non-negative")
)
