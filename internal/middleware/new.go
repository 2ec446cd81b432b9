package middleware

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	pkgLog "conference-tracker/pkg/log"
)

const (
	// maxTrackedClients bounds how many client IPs hold a live limiter.
	maxTrackedClients = 1000

	// limiterTTL evicts limiters for clients that went quiet.
	limiterTTL = 5 * time.Minute
)

// Middleware bundles the HTTP middleware used by the server.
type Middleware struct {
	l pkgLog.Logger

	rateLimitPerMin int
	limiters        *expirable.LRU[string, *rate.Limiter]
}

// New creates the middleware set. rateLimitPerMin of 0 disables limiting.
func New(l pkgLog.Logger, rateLimitPerMin int) *Middleware {
	return &Middleware{
		l:               l,
		rateLimitPerMin: rateLimitPerMin,
		limiters:        expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, limiterTTL),
	}
}
