package ollama

import "errors"

var (
	// ErrUnavailable indicates the local model runtime could not be reached.
	ErrUnavailable = errors.New("ollama: model runtime unavailable")

	// ErrModelNotFound indicates the configured model is not present locally.
	ErrModelNotFound = errors.New("ollama: model not found")
)
