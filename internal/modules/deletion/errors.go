package deletion

import "errors"

var (
	ErrNotFound  = errors.New("content not found")
	ErrForbidden = errors.New("caller does not own this content")
	ErrConflict  = errors.New("content was modified concurrently")
)
