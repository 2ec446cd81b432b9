package usecase

import (
	"context"
	"sort"
	"time"

	"conference-tracker/internal/conference"
	"conference-tracker/internal/model"
)

// Urgency tier thresholds, in whole days remaining. Both are exclusive
// upper bounds: a deadline exactly 7 days away is "soon", exactly 30 days
// away is "normal", and a deadline today (0 days) is "urgent".
const (
	UrgentThresholdDays = 7
	SoonThresholdDays   = 30
)

// pastSortOffset pushes records whose deadlines have all passed behind
// every upcoming record while keeping the most recently passed first.
const pastSortOffset = 10000

// ListEntries loads the data file and classifies every record against now.
func (uc *implUseCase) ListEntries(ctx context.Context, now time.Time) ([]conference.DisplayEntry, error) {
	confs, err := uc.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	entries := BuildEntries(now, confs)
	uc.l.Debugf(ctx, "classified %d conference entries", len(entries))
	return entries, nil
}

// BuildEntries derives a sorted DisplayEntry per record. It is pure: the
// reference time is injected, never read from the system clock, and equal
// sort keys preserve input order.
func BuildEntries(now time.Time, confs []model.Conference) []conference.DisplayEntry {
	entries := make([]conference.DisplayEntry, 0, len(confs))
	for _, conf := range confs {
		entries = append(entries, buildEntry(now, conf))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return sortKey(entries[i]) < sortKey(entries[j])
	})

	return entries
}

func buildEntry(now time.Time, conf model.Conference) conference.DisplayEntry {
	all := make([]conference.DeadlineInfo, 0, len(conf.Deadlines))
	for kind, raw := range conf.Deadlines {
		// Dates were validated at load time.
		date, err := time.Parse(model.DateFormat, raw)
		if err != nil {
			continue
		}
		all = append(all, conference.DeadlineInfo{
			Kind: kind,
			Date: date,
			Days: DaysBetween(now, date),
		})
	}

	// Map iteration order is random; sort by days then kind so rendering
	// the same file twice produces identical output.
	sort.Slice(all, func(i, j int) bool {
		if all[i].Days != all[j].Days {
			return all[i].Days < all[j].Days
		}
		return all[i].Kind < all[j].Kind
	})

	entry := conference.DisplayEntry{
		Conference:   conf,
		AllDeadlines: all,
	}
	if len(all) > 0 {
		entry.NextDeadline = nearestDeadline(all)
		entry.Tier = classify(entry.NextDeadline.Days)
	} else {
		// The loader rejects records without a valid deadline, but callers
		// of BuildEntries are not required to go through it.
		entry.Tier = model.TierPast
	}

	if conf.ConferenceDate != "" {
		if date, err := time.Parse(model.DateFormat, conf.ConferenceDate); err == nil {
			days := DaysBetween(now, date)
			entry.ConferenceDays = &days
		}
	}

	return entry
}

// nearestDeadline picks the soonest upcoming deadline, or the most recently
// passed one when every deadline lies in the past. all must be sorted by
// days ascending.
func nearestDeadline(all []conference.DeadlineInfo) conference.DeadlineInfo {
	for _, d := range all {
		if d.Days >= 0 {
			return d
		}
	}
	if len(all) == 0 {
		return conference.DeadlineInfo{}
	}
	return all[len(all)-1]
}

func classify(days int) model.UrgencyTier {
	switch {
	case days < 0:
		return model.TierPast
	case days < UrgentThresholdDays:
		return model.TierUrgent
	case days < SoonThresholdDays:
		return model.TierSoon
	default:
		return model.TierNormal
	}
}

func sortKey(e conference.DisplayEntry) int {
	days := e.NextDeadline.Days
	if days < 0 {
		return pastSortOffset - days
	}
	return days
}

// DaysBetween counts whole calendar days from the date of now to the given
// date, ignoring time of day. Negative when the date has passed.
func DaysBetween(now, date time.Time) int {
	startOfNow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	startOfDate := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int(startOfDate.Sub(startOfNow) / (24 * time.Hour))
}
