package axis

import "errors"

var (
	ErrNegativeMagnitude = errors.New("axis contribution magnitude must be a non-negative number")
)
