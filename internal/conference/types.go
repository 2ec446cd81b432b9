package conference

import (
	"time"

	"conference-tracker/internal/model"
)

// DeadlineInfo is one deadline of a record annotated with days remaining.
type DeadlineInfo struct {
	Kind string    // Deadline kind label, e.g. "abstract", "paper"
	Date time.Time // Calendar date of the deadline
	Days int       // Whole days from "now"; negative when passed
}

// DisplayEntry is a derived, render-ready view of a Conference annotated
// with computed urgency data. It is rebuilt from the data file on every
// request and never persisted.
type DisplayEntry struct {
	Conference model.Conference

	// NextDeadline is the nearest upcoming deadline, or the most recently
	// passed one when every deadline lies in the past.
	NextDeadline DeadlineInfo

	// AllDeadlines holds every deadline of the record sorted by days
	// remaining, soonest first.
	AllDeadlines []DeadlineInfo

	// ConferenceDays is the number of days until the event itself.
	// Nil when the data file carries no conference_date.
	ConferenceDays *int

	Tier model.UrgencyTier
}
