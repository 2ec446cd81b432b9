package webfetch

import "time"

const (
	// DefaultUserAgent identifies the tracker to conference sites.
	DefaultUserAgent = "Mozilla/5.0 (compatible; ConferenceTracker/1.0)"

	// DefaultMaxExcerptBytes bounds the text handed to the model so it fits
	// a small context window.
	DefaultMaxExcerptBytes = 3000

	// DefaultMaxBodyBytes bounds how much of the response body is read.
	DefaultMaxBodyBytes = 2 << 20 // 2MB

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 10 * time.Second
)
