package webfetch

import (
	"net/http"
)

// Config holds fetcher configuration.
type Config struct {
	UserAgent       string
	MaxExcerptBytes int
	MaxBodyBytes    int64
	HTTPClient      *http.Client
}

// Validate validates the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.MaxExcerptBytes <= 0 {
		c.MaxExcerptBytes = DefaultMaxExcerptBytes
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// fetcherImpl is the internal implementation of IFetcher.
type fetcherImpl struct {
	userAgent       string
	maxExcerptBytes int
	maxBodyBytes    int64
	httpClient      *http.Client
}

func newFetcherImpl(cfg Config) *fetcherImpl {
	return &fetcherImpl{
		userAgent:       cfg.UserAgent,
		maxExcerptBytes: cfg.MaxExcerptBytes,
		maxBodyBytes:    cfg.MaxBodyBytes,
		httpClient:      cfg.HTTPClient,
	}
}
