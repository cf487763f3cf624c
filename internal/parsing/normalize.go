package parsing

import (
	"regexp"
	"strings"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/types"
)

var (
	// noiseWordRe matches filler tokens that often leak into skill labels
	// ("Minimum 5 yrs TOSCA experience").
	noiseWordRe = regexp.MustCompile(`(?i)\b(?:exp|experience|expertise|minimum|should|years|yrs|skills)\b`)
	// labelPunctRe matches the punctuation stripped from labels.
	labelPunctRe = regexp.MustCompile(`[()\[\]\-:,/]+`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
)

// NormalizeSkillLabel cleans a raw or extracted skill label.
// Noise words and punctuation are replaced by spaces, so tokens are never glued
// together and normalizing twice yields the same string.
func NormalizeSkillLabel(label string) string {
	if label == "" {
		return ""
	}

	x := noiseWordRe.ReplaceAllString(label, " ")
	x = labelPunctRe.ReplaceAllString(x, " ")
	x = spaceRunRe.ReplaceAllString(x, " ")

	return strings.TrimSpace(x)
}

// DedupeLabels drops empty and case-insensitive duplicate labels, keeping the first occurrence.
func DedupeLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]bool, len(labels))
	for _, label := range labels {
		key := strings.ToLower(strings.TrimSpace(label))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, label)
	}
	return out
}

// NormalizeEntries normalizes every entry label and removes empty or duplicate entries.
// When duplicates collapse, the first entry wins but inherits a requirement it lacked.
func NormalizeEntries(entries []types.SkillEntry) []types.SkillEntry {
	if len(entries) == 0 {
		return entries
	}

	normalized := make([]types.SkillEntry, 0, len(entries))
	seen := make(map[string]int)

	for _, entry := range entries {
		label := NormalizeSkillLabel(entry.Label)
		if label == "" {
			continue
		}
		key := strings.ToLower(label)

		if idx, exists := seen[key]; exists {
			if normalized[idx].RequiredYears == nil && entry.RequiredYears != nil {
				normalized[idx].RequiredYears = entry.RequiredYears
			}
			continue
		}

		group := entry.Group
		if group == "" {
			group = types.GroupDesired
		}
		normalized = append(normalized, types.SkillEntry{
			Label:         label,
			Group:         group,
			RequiredYears: entry.RequiredYears,
		})
		seen[key] = len(normalized) - 1
	}

	return normalized
}
