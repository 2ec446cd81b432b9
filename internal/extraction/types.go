package extraction

import "conference-tracker/internal/model"

// Result is the outcome of one extraction run. The output is advisory: it
// is printed for human review and never merged automatically.
type Result struct {
	// Candidates are the structurally valid record fragments the model
	// suggested. Empty when the page carries no discoverable deadlines.
	Candidates []model.Conference

	// Suggestion is the candidates re-marshalled as a clean YAML fragment
	// in the same shape as the deadlines file, ready for copy-paste.
	Suggestion string

	// Dropped counts candidates discarded during validation (for example
	// because the model invented an impossible date).
	Dropped int
}
