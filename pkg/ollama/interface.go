package ollama

import "context"

// IOllama defines the interface for a locally hosted Ollama model runtime.
// Implementations are safe for concurrent use.
type IOllama interface {
	// GenerateContent sends a chat completion request to the local runtime.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Pull downloads the configured model into the local runtime. One-shot;
	// callers decide whether to retry.
	Pull(ctx context.Context) error

	// HasModel reports whether the configured model is present locally.
	HasModel(ctx context.Context) (bool, error)

	// Model returns the model being used.
	Model() string
}

// New creates a new Ollama client with the given configuration.
func New(cfg Config) (IOllama, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOllamaImpl(cfg), nil
}
