package yamlfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"conference-tracker/internal/conference"
	"conference-tracker/internal/model"
)

// document is the top-level shape of the deadlines file.
type document struct {
	Conferences []model.Conference `yaml:"conferences"`
}

// Load reads and validates the deadlines file, returning one record per
// entry in file order. The file is read fresh on every call.
func (r *implRepository) Load(ctx context.Context) ([]model.Conference, error) {
	path, err := r.resolvePath()
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		r.l.Warnf(ctx, "deadlines file unreadable: %v", err)
		return nil, fmt.Errorf("%w: %v", conference.ErrConfigNotFound, err)
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", conference.ErrConfigInvalid, err)
	}

	for i, conf := range doc.Conferences {
		if err := validateRecord(i, conf); err != nil {
			return nil, err
		}
	}

	r.l.Debugf(ctx, "loaded %d conference records from %s", len(doc.Conferences), path)
	return doc.Conferences, nil
}

// resolvePath joins the data dir and file and rejects any path that escapes
// the data dir after resolution.
func (r *implRepository) resolvePath() (string, error) {
	dir, err := filepath.Abs(r.dataDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", conference.ErrConfigPathRejected, err)
	}

	path, err := filepath.Abs(filepath.Join(dir, r.dataFile))
	if err != nil {
		return "", fmt.Errorf("%w: %v", conference.ErrConfigPathRejected, err)
	}

	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q resolves outside %q", conference.ErrConfigPathRejected, r.dataFile, dir)
	}

	return path, nil
}

func validateRecord(idx int, conf model.Conference) error {
	label := conf.Name
	if label == "" {
		label = fmt.Sprintf("entry %d", idx)
	}

	if conf.Name == "" {
		return fmt.Errorf("%w: %s: name is required", conference.ErrConfigInvalid, label)
	}
	if conf.Website == "" {
		return fmt.Errorf("%w: %s: website is required", conference.ErrConfigInvalid, label)
	}
	if len(conf.Deadlines) == 0 {
		return fmt.Errorf("%w: %s: at least one deadline is required", conference.ErrConfigInvalid, label)
	}

	for kind, date := range conf.Deadlines {
		if strings.TrimSpace(kind) == "" {
			return fmt.Errorf("%w: %s: empty deadline kind", conference.ErrConfigInvalid, label)
		}
		if _, err := time.Parse(model.DateFormat, date); err != nil {
			return fmt.Errorf("%w: %s: deadline %q has invalid date %q", conference.ErrConfigInvalid, label, kind, date)
		}
	}

	if conf.ConferenceDate != "" {
		if _, err := time.Parse(model.DateFormat, conf.ConferenceDate); err != nil {
			return fmt.Errorf("%w: %s: invalid conference_date %q", conference.ErrConfigInvalid, label, conf.ConferenceDate)
		}
	}

	return nil
}
