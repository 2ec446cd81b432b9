package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"conference-tracker/pkg/response"
)

// Index renders the deadline page. Config errors surface as a full error
// page rather than a partial render: stale or missing deadline data is
// worse than no page.
func (h *implHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	entries, err := h.uc.ListEntries(ctx, h.now())
	if err != nil {
		h.l.Errorf(ctx, "failed to build deadline entries: %v", err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Message": "The deadlines file could not be loaded. Check the server logs.",
		})
		return
	}

	c.HTML(http.StatusOK, "index.html", pageData{
		Conferences:   toViews(entries),
		GithubRepoURL: h.githubRepoURL,
	})
}

// ListConferences returns the same entries as JSON.
func (h *implHandler) ListConferences(c *gin.Context) {
	ctx := c.Request.Context()

	entries, err := h.uc.ListEntries(ctx, h.now())
	if err != nil {
		h.l.Errorf(ctx, "failed to build deadline entries: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, toViews(entries))
}

// Calendar renders every deadline as an iCalendar feed so the list can be
// subscribed to from a calendar app.
func (h *implHandler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()

	entries, err := h.uc.ListEntries(ctx, h.now())
	if err != nil {
		h.l.Errorf(ctx, "failed to build deadline entries: %v", err)
		response.InternalError(c, err)
		return
	}

	ics, err := buildCalendar(h.now(), entries)
	if err != nil {
		h.l.Errorf(ctx, "failed to encode calendar: %v", err)
		response.InternalError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/calendar; charset=utf-8", ics)
}
