package ollama

import "time"

const (
	// DefaultModel is a small instruct model that handles extraction well
	// on CPU-only machines.
	DefaultModel = "llama3.2:3b"

	// DefaultBaseURL is the default local Ollama endpoint.
	DefaultBaseURL = "http://127.0.0.1:11434"

	// DefaultTimeout is the default HTTP client timeout. Generation on CPU
	// is slow; pulls are slower still and use their own request context.
	DefaultTimeout = 5 * time.Minute
)
