package grid

import "errors"

var (
	// ErrInvalidDimensions is returned when a board is created with
	// non-positive or over-sized dimensions.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrInvalidShipLength is returned when a ship is created with a
	// non-positive length.
	ErrInvalidShipLength = errors.New("invalid ship length")
)
