package publication

import "errors"

var (
	ErrNotFound           = errors.New("content not found")
	ErrForbidden          = errors.New("content belongs to another user")
	ErrInvalidDestination = errors.New("unknown publication destination")
	ErrConflict           = errors.New("content was modified concurrently")
)
