package cavegen

import "errors"

var (
	// ErrInvalidConfig reports zero or negative dimensions, a non-positive
	// tile size, or an out-of-range probability. Generation must not proceed.
	ErrInvalidConfig = errors.New("invalid generation config")

	// ErrNoFloorTile is returned when the resolver pass finds no floor tile to
	// place the player on. The level has to be regenerated with other
	// parameters or another seed.
	ErrNoFloorTile = errors.New("no floor tile for player spawn")

	// ErrOutOfBounds is returned by grid accessors for coordinates outside the
	// grid. Callers treat it as "no information", never as a tile state.
	ErrOutOfBounds = errors.New("tile position out of bounds")
)
