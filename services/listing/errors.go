package listing

import (
	"fmt"
	"strings"
)

// ValidationError reports missing required fields or malformed values at
// step-advance time. It blocks progression and is never surfaced as a
// transient notification.
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid values for: "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) empty() bool {
	return len(e.Missing) == 0 && len(e.Invalid) == 0
}

// SubmissionError wraps a failure at one stage of the submission pipeline.
// Uploads already committed before the failing stage are not rolled back.
type SubmissionError struct {
	Stage string
	Err   error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission failed during %s: %v", e.Stage, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
