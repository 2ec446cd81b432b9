package web

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"conference-tracker/internal/conference"
)

const (
	icalVersion = "2.0"
	icalProdid  = "-//Conference Tracker//Deadlines//EN"
)

// buildCalendar encodes every deadline of every entry as an all-day VEVENT.
func buildCalendar(now time.Time, entries []conference.DisplayEntry) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, icalVersion)
	cal.Props.SetText(ical.PropProductID, icalProdid)

	stamp := now.UTC()

	for _, e := range entries {
		for _, d := range e.AllDeadlines {
			event := ical.NewEvent()
			event.Props.SetText(ical.PropUID, eventUID(e, d))
			event.Props.SetText(ical.PropSummary,
				fmt.Sprintf("%s %s deadline", e.Conference.Name, d.Kind))
			event.Props.SetText(ical.PropDescription, e.Conference.Website)

			dtStamp := ical.NewProp(ical.PropDateTimeStamp)
			dtStamp.SetDateTime(stamp)
			event.Props.Set(dtStamp)

			dtStart := ical.NewProp(ical.PropDateTimeStart)
			dtStart.SetDate(d.Date)
			event.Props.Set(dtStart)

			cal.Children = append(cal.Children, event.Component)
		}
	}

	// An empty VCALENDAR does not encode; serve a bare stub instead.
	if len(cal.Children) == 0 {
		stub := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + icalProdid + "\r\nEND:VCALENDAR\r\n"
		return []byte(stub), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// eventUID builds a stable UID so calendar apps update events in place
// when deadlines shift instead of duplicating them.
func eventUID(e conference.DisplayEntry, d conference.DeadlineInfo) string {
	host := "conference-tracker.local"
	if u, err := url.Parse(e.Conference.Website); err == nil && u.Hostname() != "" {
		host = u.Hostname()
	}
	name := strings.ToLower(strings.ReplaceAll(e.Conference.Name, " ", "-"))
	kind := strings.ToLower(strings.ReplaceAll(d.Kind, " ", "-"))
	return fmt.Sprintf("%s-%s@%s", name, kind, host)
}
