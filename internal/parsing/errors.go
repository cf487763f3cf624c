package parsing

import (
	"errors"
	"fmt"
)

// ErrEmptyJobDescription is returned when no text could be taken from the job description.
// Without it no skills can be derived, so the run stops before matching.
var ErrEmptyJobDescription = errors.New("job description text is empty")

// PatternError represents a failure compiling a pattern built from a skill label
type PatternError struct {
	Skill string
	Cause error
}

func (e *PatternError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pattern error for skill %q: %v", e.Skill, e.Cause)
	}
	return fmt.Sprintf("pattern error for skill %q", e.Skill)
}

func (e *PatternError) Unwrap() error {
	return e.Cause
}

// SkillListError represents a malformed line in an editable skill list
type SkillListError struct {
	Line    int
	Message string
}

func (e *SkillListError) Error() string {
	return fmt.Sprintf("skill list line %d: %s", e.Line, e.Message)
}
