package economy

import "errors"

var (
	// ErrNegativeCapital is returned when the available capital is below zero
	ErrNegativeCapital = errors.New("capital must be non-negative")

	// ErrNegativeCost is returned when an execution cost is below zero
	ErrNegativeCost = errors.New("cost must be non-negative")

	// ErrInvalidRules is returned when an economy constant is out of range
	ErrInvalidRules = errors.New("invalid economy rules")

	// ErrInvalidTimeMode is returned when a time mode name is not recognised
	ErrInvalidTimeMode = errors.New("invalid time mode")
)
