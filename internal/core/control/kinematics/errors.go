package kinematics

import "errors"

var ErrInvalidDeltaTime = errors.New("delta time must be a finite positive number")
