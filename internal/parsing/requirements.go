package parsing

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/types"
)

const (
	// triggerGap bounds how far after "minimum N years" the skill may appear.
	triggerGap = 80
	// proximityGap bounds the distance between a skill and its years figure.
	proximityGap = 60
)

const triggerExpr = `\b(?:minimum|at least|required|needs?|must have|experience of)\s*(?:of\s+)?`

// labelSeparatorExpr lets "ci cd" match "CI/CD", "ci-cd" or "CI: CD" in the source text.
const labelSeparatorExpr = `[\s\-–_:,/()\[\]]+`

// LabelPattern builds a regex fragment matching a normalized label in lower-cased text.
func LabelPattern(label string) string {
	tokens := strings.Fields(strings.ToLower(label))
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		quoted[i] = regexp.QuoteMeta(tok)
	}
	return strings.Join(quoted, labelSeparatorExpr)
}

// requirementPatterns returns the three requirement patterns for label, in priority order.
func requirementPatterns(label string) ([]*regexp.Regexp, error) {
	skill := LabelPattern(label)
	sources := []string{
		// "minimum 5 years experience in tosca"
		`(?s)` + triggerExpr + yearsExpr + `.{0,` + strconv.Itoa(triggerGap) + `}?` + skill,
		// "tosca: 5+ years"
		`(?s)` + skill + `.{0,` + strconv.Itoa(proximityGap) + `}?` + yearsExpr,
		// "3-5 years of hands-on work with tosca"
		`(?s)` + yearsExpr + `.{0,` + strconv.Itoa(proximityGap) + `}?\b(?:in|with)\s+` + skill,
	}

	patterns := make([]*regexp.Regexp, 0, len(sources))
	for _, src := range sources {
		re, err := regexp.Compile(src)
		if err != nil {
			return nil, &PatternError{Skill: label, Cause: err}
		}
		patterns = append(patterns, re)
	}
	return patterns, nil
}

// ParseRequirement finds the minimum years the job description asks for a skill.
// The first of the three patterns that matches wins; a range resolves to its
// upper bound. Returns nil when the skill is presence-only.
func ParseRequirement(jdText, label string) *int {
	years, err := ParseRequirementE(jdText, label)
	if err != nil {
		return nil
	}
	return years
}

// ParseRequirementE is ParseRequirement with pattern construction errors surfaced.
func ParseRequirementE(jdText, label string) (*int, error) {
	if strings.TrimSpace(jdText) == "" || strings.TrimSpace(label) == "" {
		return nil, nil
	}

	patterns, err := requirementPatterns(label)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(jdText)
	for _, re := range patterns {
		m := re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		if n, ok := resolveYears(m[1], m[2]); ok {
			return &n, nil
		}
	}
	return nil, nil
}

// ParseRequirements computes the requirement map for a skill list, keyed by SkillEntry.Key().
// An explicit RequiredYears on an entry takes precedence over the text.
func ParseRequirements(jdText string, skills []types.SkillEntry) map[string]*int {
	reqs := make(map[string]*int, len(skills))
	for _, s := range skills {
		if s.RequiredYears != nil {
			reqs[s.Key()] = s.RequiredYears
			continue
		}
		reqs[s.Key()] = ParseRequirement(jdText, s.Label)
	}
	return reqs
}
