package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"conference-tracker/internal/extraction"
	"conference-tracker/internal/model"
)

// parseResponse turns the model's free-text answer into validated candidate
// records. Malformed output is rejected with ErrParseFailed, never guessed
// at; candidates with invented dates are dropped individually since the
// result is reviewed by a human anyway.
func (uc *implUseCase) parseResponse(ctx context.Context, url, text string) (extraction.Result, error) {
	fragment := stripCodeFences(text)
	if fragment == "" {
		return extraction.Result{}, fmt.Errorf("%w: empty model response", extraction.ErrParseFailed)
	}

	var raw []model.Conference
	if err := yaml.Unmarshal([]byte(fragment), &raw); err != nil {
		uc.l.Warnf(ctx, "model output rejected: %v", err)
		return extraction.Result{}, fmt.Errorf("%w: %v", extraction.ErrParseFailed, err)
	}

	var candidates []model.Conference
	dropped := 0
	for _, cand := range raw {
		if err := validateCandidate(cand); err != nil {
			uc.l.Warnf(ctx, "dropping candidate %q: %v", cand.Name, err)
			dropped++
			continue
		}
		if cand.Website == "" {
			cand.Website = url
		}
		candidates = append(candidates, cand)
	}

	result := extraction.Result{Candidates: candidates, Dropped: dropped}
	if len(candidates) == 0 {
		return result, nil
	}

	suggestion, err := yaml.Marshal(candidates)
	if err != nil {
		return extraction.Result{}, fmt.Errorf("%w: %v", extraction.ErrParseFailed, err)
	}
	result.Suggestion = string(suggestion)
	return result, nil
}

// stripCodeFences removes a surrounding ```yaml ... ``` block if present.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```yaml") {
		text = strings.TrimPrefix(text, "```yaml")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}

	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}

	return strings.TrimSpace(text)
}

func validateCandidate(cand model.Conference) error {
	if cand.Name == "" {
		return fmt.Errorf("missing name")
	}
	if len(cand.Deadlines) == 0 && cand.ConferenceDate == "" {
		return fmt.Errorf("no dates found")
	}
	for kind, date := range cand.Deadlines {
		if _, err := time.Parse(model.DateFormat, date); err != nil {
			return fmt.Errorf("deadline %q has invalid date %q", kind, date)
		}
	}
	if cand.ConferenceDate != "" {
		if _, err := time.Parse(model.DateFormat, cand.ConferenceDate); err != nil {
			return fmt.Errorf("invalid conference_date %q", cand.ConferenceDate)
		}
	}
	return nil
}
