package conference

import "errors"

// Domain-specific errors for the conference package.
var (
	ErrConfigNotFound     = errors.New("deadlines file not found or unreadable")
	ErrConfigInvalid      = errors.New("deadlines file is invalid")
	ErrConfigPathRejected = errors.New("deadlines file path outside data directory")
)
