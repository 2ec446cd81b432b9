package extraction

import "errors"

// Domain-specific errors for the extraction package.
var (
	ErrFetchFailed      = errors.New("failed to fetch conference page")
	ErrParseFailed      = errors.New("model output not in expected shape")
	ErrModelUnavailable = errors.New("local model unavailable")
)
