package model

// Conference represents one entry in the deadlines data file.
type Conference struct {
	Name           string            `yaml:"name"`            // Short acronym, e.g. "NeurIPS"
	FullName       string            `yaml:"full_name"`       // Full display name
	Website        string            `yaml:"website"`         // Conference homepage URL
	Deadlines      map[string]string `yaml:"deadlines"`       // Deadline kind -> YYYY-MM-DD date
	ConferenceDate string            `yaml:"conference_date"` // Date of the event itself, optional
}

// UrgencyTier is a coarse classification of how soon the nearest deadline
// falls, used purely for display styling.
type UrgencyTier string

const (
	// TierUrgent means the nearest deadline is less than 7 days away.
	TierUrgent UrgencyTier = "urgent"
	// TierSoon means the nearest deadline is less than 30 days away.
	TierSoon UrgencyTier = "soon"
	// TierNormal means the nearest deadline is 30 or more days away.
	TierNormal UrgencyTier = "normal"
	// TierPast means every deadline of the record has already passed.
	TierPast UrgencyTier = "past"
)

// DateFormat is the calendar date layout used throughout the data file.
const DateFormat = "2006-01-02"
