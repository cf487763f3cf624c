package parsing

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/types"
)

// reqSuffixRe matches the optional "| req:5" suffix of a skill-list line.
var reqSuffixRe = regexp.MustCompile(`(?i)\|\s*req\s*:\s*(.*)$`)

// ParseSkillList parses an editable skill list, one skill per line:
//
//	M: TOSCA | req:5
//	desired: Splunk
//	LoadRunner
//
// Lines without a group prefix are desired. A malformed req suffix is reported
// but the skill is still kept as presence-only.
func ParseSkillList(text string) ([]types.SkillEntry, []error) {
	var entries []types.SkillEntry
	var errs []error

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var required *int
		if m := reqSuffixRe.FindStringSubmatchIndex(line); m != nil {
			value := strings.TrimSpace(line[m[2]:m[3]])
			line = strings.TrimSpace(line[:m[0]])
			required = ParseYearsExpression(value)
			if required == nil && value != "" {
				errs = append(errs, &SkillListError{Line: i + 1, Message: fmt.Sprintf("invalid requirement %q", value)})
			}
		}

		group, content := splitGroupPrefix(line)
		entries = append(entries, types.SkillEntry{
			Label:         content,
			Group:         group,
			RequiredYears: required,
		})
	}

	return NormalizeEntries(entries), errs
}

// splitGroupPrefix strips an "M:", "mandatory:", "D:" or "desired:" prefix.
func splitGroupPrefix(line string) (types.Group, string) {
	lower := strings.ToLower(line)
	for _, prefix := range []string{"mandatory:", "desired:", "m:", "d:"} {
		if strings.HasPrefix(lower, prefix) {
			tag := strings.TrimSuffix(prefix, ":")
			return types.ParseGroup(tag), strings.TrimSpace(line[len(prefix):])
		}
	}
	return types.GroupDesired, line
}

// FormatSkillList renders entries in the format ParseSkillList reads.
func FormatSkillList(entries []types.SkillEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.Group.Short())
		sb.WriteString(": ")
		sb.WriteString(e.Label)
		if e.RequiredYears != nil && *e.RequiredYears > 0 {
			fmt.Fprintf(&sb, " | req:%d", *e.RequiredYears)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
