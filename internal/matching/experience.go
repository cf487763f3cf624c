package matching

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/parsing"
)

// DefaultWindow is the number of characters scanned on each side of a skill mention.
const DefaultWindow = 120

// Fallback selects what happens when no years figure sits near any skill mention.
type Fallback string

const (
	// FallbackGlobal scans the whole text and takes the largest years figure
	FallbackGlobal Fallback = "global"
	// FallbackNone reports no experience
	FallbackNone Fallback = "none"
)

// Extractor finds claimed years of experience for a skill already known to be present.
type Extractor struct {
	Window   int
	Fallback Fallback
}

// NewExtractor returns an Extractor, substituting defaults for a non-positive
// window or an unknown fallback.
func NewExtractor(window int, fallback Fallback) Extractor {
	if window <= 0 {
		window = DefaultWindow
	}
	if fallback != FallbackNone {
		fallback = FallbackGlobal
	}
	return Extractor{Window: window, Fallback: fallback}
}

// ExtractYearsNearSkill returns the largest years figure within window characters
// of any mention of forms, falling back to the largest figure in the whole text.
func ExtractYearsNearSkill(text string, forms []string, window int) *int {
	return NewExtractor(window, FallbackGlobal).Extract(text, forms)
}

// Extract returns the largest years figure found near any occurrence of any form
// (label or synonym). Ranges count as their upper bound. Returns nil when nothing
// is found and the fallback finds nothing either.
func (e Extractor) Extract(text string, forms []string) *int {
	years, _ := e.ExtractContext(context.Background(), text, forms)
	return years
}

// ExtractContext is Extract that checks ctx before each mention and returns
// ctx.Err() once it is done.
func (e Extractor) ExtractContext(ctx context.Context, text string, forms []string) (*int, error) {
	if text == "" {
		return nil, nil
	}
	window := e.Window
	if window <= 0 {
		window = DefaultWindow
	}
	lower := strings.ToLower(text)

	best, found := 0, false
	for _, form := range forms {
		form = strings.ToLower(strings.TrimSpace(form))
		if form == "" {
			continue
		}
		re, err := regexp.Compile(parsing.LabelPattern(form))
		if err != nil {
			continue
		}
		for _, loc := range re.FindAllStringIndex(lower, -1) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			from := runesBefore(lower, loc[0], window)
			to := runesAfter(lower, loc[1], window)
			if n, ok := parsing.MaxYears(lower[from:to]); ok && (!found || n > best) {
				best, found = n, true
			}
		}
	}
	if found {
		return &best, nil
	}

	if e.Fallback == FallbackNone {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n, ok := parsing.MaxYears(lower); ok {
		return &n, nil
	}
	return nil, nil
}

// runesBefore returns the byte offset n runes before i, clamped to 0.
func runesBefore(s string, i, n int) int {
	for ; n > 0 && i > 0; n-- {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
	}
	return i
}

// runesAfter returns the byte offset n runes after i, clamped to len(s).
func runesAfter(s string, i, n int) int {
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}
