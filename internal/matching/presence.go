// Package matching decides whether a resume mentions a skill and how many years it claims.
package matching

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Tier identifies which presence check matched.
type Tier int

const (
	// TierNone means the skill was not found
	TierNone Tier = iota
	// TierExact means the label or a synonym occurs as a substring
	TierExact
	// TierToken means every label token occurs as a whole word
	TierToken
	// TierFuzzy means the label partially matches the text above FuzzyThreshold
	TierFuzzy
)

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierToken:
		return "token"
	case TierFuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

const (
	// FuzzyThreshold is the minimum PartialRatio accepted by the fuzzy tier.
	FuzzyThreshold = 85.0
	// fuzzyMinLabelLen is the label length (in runes) a label must exceed to be fuzzy matched.
	fuzzyMinLabelLen = 3
	minTokenLen      = 2
)

// wordSplitRe splits text on anything that is not a letter, digit or underscore.
var wordSplitRe = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// HasSkill reports whether text mentions skill, directly, through a synonym,
// token by token, or (when strict is false) fuzzily.
func HasSkill(text, skill string, synonyms []string, strict bool) bool {
	return Detect(text, skill, synonyms, strict) != TierNone
}

// Detect is HasSkill returning the tier that matched.
func Detect(text, skill string, synonyms []string, strict bool) Tier {
	tier, _ := DetectContext(context.Background(), text, skill, synonyms, strict)
	return tier
}

// DetectContext runs the tiered presence check. The fuzzy tier, the only one whose
// cost grows with label length times text length, stops early when ctx is done.
func DetectContext(ctx context.Context, text, skill string, synonyms []string, strict bool) (Tier, error) {
	skill = strings.TrimSpace(skill)
	if text == "" || skill == "" {
		return TierNone, nil
	}
	lower := strings.ToLower(text)
	lowerSkill := strings.ToLower(skill)

	if containsAnyForm(lower, lowerSkill, synonyms) {
		return TierExact, nil
	}

	if tokensPresent(lower, lowerSkill) {
		return TierToken, nil
	}

	if strict || utf8.RuneCountInString(skill) <= fuzzyMinLabelLen {
		return TierNone, nil
	}

	score, err := partialRatio(ctx, lowerSkill, lower)
	if err != nil {
		return TierNone, err
	}
	if score >= FuzzyThreshold {
		return TierFuzzy, nil
	}
	return TierNone, nil
}

func containsAnyForm(lowerText, lowerSkill string, synonyms []string) bool {
	if strings.Contains(lowerText, lowerSkill) {
		return true
	}
	for _, syn := range synonyms {
		s := strings.ToLower(strings.TrimSpace(syn))
		if s != "" && strings.Contains(lowerText, s) {
			return true
		}
	}
	return false
}

// tokensPresent reports whether every label token of two or more runes is a whole
// word of text, in any order. A label with no such tokens never matches.
func tokensPresent(lowerText, lowerSkill string) bool {
	var tokens []string
	for _, tok := range wordSplitRe.Split(lowerSkill, -1) {
		if utf8.RuneCountInString(tok) >= minTokenLen {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return false
	}

	words := make(map[string]struct{})
	for _, w := range wordSplitRe.Split(lowerText, -1) {
		if w != "" {
			words[w] = struct{}{}
		}
	}

	for _, tok := range tokens {
		if _, ok := words[tok]; !ok {
			return false
		}
	}
	return true
}
