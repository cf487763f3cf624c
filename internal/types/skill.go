// Package types provides type definitions for structured data used throughout the jd-resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Group is the scoring group a skill belongs to.
type Group string

const (
	// GroupMandatory skills carry 80% of the overall match
	GroupMandatory Group = "mandatory"
	// GroupDesired skills carry the remaining 20%
	GroupDesired Group = "desired"
)

// ParseGroup maps a user-supplied tag onto a Group.
// Unknown or empty tags fall back to GroupDesired.
func ParseGroup(tag string) Group {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "m", "mandatory":
		return GroupMandatory
	default:
		return GroupDesired
	}
}

// Short returns the single-letter prefix used in editable skill lists.
func (g Group) Short() string {
	if g == GroupMandatory {
		return "M"
	}
	return "D"
}

// SkillEntry is a single skill the job description asks for.
type SkillEntry struct {
	Label         string `json:"label"`
	Group         Group  `json:"group"`
	RequiredYears *int   `json:"required_years,omitempty"` // nil means presence-only scoring
}

// Key returns the case-insensitive identity of the entry.
func (s SkillEntry) Key() string {
	return strings.ToLower(s.Label)
}

// SynonymSet maps a lowercased normalized skill label to alternate surface forms.
type SynonymSet map[string][]string

// For returns the synonyms registered for label, or nil.
func (s SynonymSet) For(label string) []string {
	if s == nil {
		return nil
	}
	return s[strings.ToLower(label)]
}

// Forms returns the label followed by its synonyms.
func (s SynonymSet) Forms(label string) []string {
	syns := s.For(label)
	forms := make([]string, 0, len(syns)+1)
	forms = append(forms, label)
	return append(forms, syns...)
}

// JDProfile is the skill view of one uploaded job description.
type JDProfile struct {
	RawText      string          `json:"raw_text"`
	Skills       []SkillEntry    `json:"skills"`
	Requirements map[string]*int `json:"requirements"` // keyed by SkillEntry.Key()
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
