package conference

import (
	"context"
	"time"

	"conference-tracker/internal/model"
)

// Repository loads conference records from the data file.
// Every call reads the file fresh; there is no cache to invalidate.
type Repository interface {
	Load(ctx context.Context) ([]model.Conference, error)
}

// UseCase produces the sorted, urgency-classified entries for rendering.
type UseCase interface {
	// ListEntries loads the data file and classifies every record against
	// the given reference time.
	ListEntries(ctx context.Context, now time.Time) ([]DisplayEntry, error)
}
