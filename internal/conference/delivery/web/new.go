package web

import (
	"time"

	"github.com/gin-gonic/gin"

	"conference-tracker/internal/conference"
	pkgLog "conference-tracker/pkg/log"
)

// Handler serves the deadline page and its alternate renderings.
type Handler interface {
	Index(c *gin.Context)
	ListConferences(c *gin.Context)
	Calendar(c *gin.Context)
}

type implHandler struct {
	l             pkgLog.Logger
	uc            conference.UseCase
	githubRepoURL string

	// now is injected so rendering is deterministic in tests.
	now func() time.Time
}

var _ Handler = (*implHandler)(nil)

// New creates a new web Handler instance.
func New(l pkgLog.Logger, uc conference.UseCase, githubRepoURL string, now func() time.Time) *implHandler {
	if now == nil {
		now = time.Now
	}
	return &implHandler{
		l:             l,
		uc:            uc,
		githubRepoURL: githubRepoURL,
		now:           now,
	}
}

// RegisterRoutes registers the page routes on the given router group.
func RegisterRoutes(r gin.IRoutes, h Handler) {
	r.GET("/", h.Index)
	r.GET("/api/conferences", h.ListConferences)
	r.GET("/calendar.ics", h.Calendar)
}
