package webfetch

import "context"

// IFetcher fetches a webpage and reduces it to plain text.
// Implementations are safe for concurrent use.
type IFetcher interface {
	// FetchText downloads the page at rawURL and returns its visible text,
	// truncated to the configured excerpt size.
	FetchText(ctx context.Context, rawURL string) (string, error)
}

// New creates a new fetcher with the given configuration.
func New(cfg Config) (IFetcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newFetcherImpl(cfg), nil
}
