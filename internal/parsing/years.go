package parsing

import (
	"regexp"
	"strconv"
)

// yearsExpr is the shared "<N>[+] years" / "<A>-<B> years" fragment.
// Group 1 is the lower (or only) number, group 2 the optional range upper bound.
// The unit is not word-bounded, so "year" and "yoe" also count via the leading "y".
const yearsExpr = `(\d+)(?:\s*[-–]\s*(\d+))?\s*\+?\s*(?:years|yrs|y)`

var (
	yearsRe = regexp.MustCompile(yearsExpr)
	// bareRangeRe accepts level strings with no unit such as "3-5" or "3–5".
	bareRangeRe = regexp.MustCompile(`(\d+)\s*[-–]\s*(\d+)`)
	bareNumRe   = regexp.MustCompile(`^\s*(\d+)\s*\+?\s*$`)
)

// resolveYears turns the captured groups of yearsExpr into a single value.
// A range resolves to its upper bound.
func resolveYears(lower, upper string) (int, bool) {
	raw := lower
	if upper != "" {
		raw = upper
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// FindAllYears returns every years value in text, in order of appearance.
func FindAllYears(text string) []int {
	matches := yearsRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	values := make([]int, 0, len(matches))
	for _, m := range matches {
		if n, ok := resolveYears(m[1], m[2]); ok {
			values = append(values, n)
		}
	}
	return values
}

// MaxYears returns the largest years value in text.
func MaxYears(text string) (int, bool) {
	values := FindAllYears(text)
	if len(values) == 0 {
		return 0, false
	}
	best := values[0]
	for _, v := range values[1:] {
		if v > best {
			best = v
		}
	}
	return best, true
}

// ParseYearsExpression parses a free-form level such as "5+ years", "3-5" or "7".
// Returns nil when nothing numeric is found.
func ParseYearsExpression(s string) *int {
	if s == "" {
		return nil
	}
	if m := yearsRe.FindStringSubmatch(s); m != nil {
		if n, ok := resolveYears(m[1], m[2]); ok {
			return &n
		}
	}
	if m := bareRangeRe.FindStringSubmatch(s); m != nil {
		if n, ok := resolveYears(m[1], m[2]); ok {
			return &n
		}
	}
	if m := bareNumRe.FindStringSubmatch(s); m != nil {
		if n, ok := resolveYears(m[1], ""); ok {
			return &n
		}
	}
	return nil
}
