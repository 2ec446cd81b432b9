package web

import (
	"conference-tracker/internal/conference"
	"conference-tracker/internal/model"
)

// DeadlineView is one deadline in template/JSON shape.
type DeadlineView struct {
	Kind string `json:"kind"`
	Date string `json:"date"`
	Days int    `json:"days"`
}

// ConferenceView is the exact shape the template and the JSON listing
// consume. Building it is pure field adaptation; all classification
// happens in the usecase.
type ConferenceView struct {
	Name           string         `json:"name"`
	FullName       string         `json:"full_name"`
	Website        string         `json:"website"`
	NextDeadline   *DeadlineView  `json:"next_deadline"`
	AllDeadlines   []DeadlineView `json:"all_deadlines"`
	ConferenceDate string         `json:"conference_date,omitempty"`
	ConferenceDays *int           `json:"conference_days,omitempty"`
	Tier           string         `json:"tier"`
}

// pageData is the root object handed to the index template.
type pageData struct {
	Conferences   []ConferenceView
	GithubRepoURL string
}

func toViews(entries []conference.DisplayEntry) []ConferenceView {
	views := make([]ConferenceView, 0, len(entries))
	for _, e := range entries {
		views = append(views, toView(e))
	}
	return views
}

func toView(e conference.DisplayEntry) ConferenceView {
	all := make([]DeadlineView, 0, len(e.AllDeadlines))
	for _, d := range e.AllDeadlines {
		all = append(all, DeadlineView{
			Kind: d.Kind,
			Date: d.Date.Format(model.DateFormat),
			Days: d.Days,
		})
	}

	next := DeadlineView{
		Kind: e.NextDeadline.Kind,
		Date: e.NextDeadline.Date.Format(model.DateFormat),
		Days: e.NextDeadline.Days,
	}

	return ConferenceView{
		Name:           e.Conference.Name,
		FullName:       e.Conference.FullName,
		Website:        e.Conference.Website,
		NextDeadline:   &next,
		AllDeadlines:   all,
		ConferenceDate: e.Conference.ConferenceDate,
		ConferenceDays: e.ConferenceDays,
		Tier:           string(e.Tier),
	}
}
