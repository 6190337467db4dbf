package flight

import "errors"

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrVehicleExists   = errors.New("vehicle already registered")
	ErrInvalidVehicle  = errors.New("vehicle needs a name, a layout, a controller and an input source")
)
