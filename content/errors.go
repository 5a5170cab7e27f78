package content

import "errors"

var (
	// ErrUnknownFrame is returned when a frame handle is not owned by the catalog
	ErrUnknownFrame = errors.New("unknown frame")

	// ErrInvalidWave is returned for malformed wave tables
	ErrInvalidWave = errors.New("invalid wave table")
)
