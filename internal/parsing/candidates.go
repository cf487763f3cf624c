package parsing

import (
	"regexp"
	"strings"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/types"
)

// MasterVocabulary is the curated list of skills looked up verbatim in job descriptions.
var MasterVocabulary = []string{
	"TOSCA",
	"CI/CD",
	"Web Application Automation",
	"Mainframe Automation Testing",
	"LoadRunner",
	"Dynatrace",
	"Splunk",
	"VUGen",
	"Selenium",
	"Jenkins",
	"JMeter",
	"Kubernetes",
	"Terraform",
}

const maxPhraseTokens = 4

// capPhraseRe matches runs of capitalized tokens ("Tricentis Tosca", "C++", "Node.js").
var capPhraseRe = regexp.MustCompile(`\b[A-Z][A-Za-z0-9+\-#.]+(?:[ \t]+[A-Z][A-Za-z0-9+\-#.]+){0,3}`)

// CandidateSource says which extraction pass produced a candidate.
type CandidateSource string

const (
	// SourceVocabulary candidates come from MasterVocabulary hits
	SourceVocabulary CandidateSource = "vocabulary"
	// SourceHeuristic candidates come from capitalized-phrase scanning
	SourceHeuristic CandidateSource = "heuristic"
)

// Candidate is one skill proposed from job description text.
type Candidate struct {
	Raw           string          `json:"raw"`
	Normalized    string          `json:"normalized"`
	Source        CandidateSource `json:"source"`
	RequiredYears *int            `json:"required_years,omitempty"`
}

// ExtractCandidates proposes skills from job description text.
// Vocabulary hits come first in vocabulary order, then capitalized phrases in
// text order; duplicates are dropped case-insensitively, first occurrence wins.
// Candidates that normalize to an empty label ("Minimum", "Skills") are skipped.
func ExtractCandidates(jdText string) []Candidate {
	if strings.TrimSpace(jdText) == "" {
		return nil
	}

	var candidates []Candidate
	seen := make(map[string]bool)
	add := func(raw string, source CandidateSource) {
		key := strings.ToLower(raw)
		if raw == "" || seen[key] {
			return
		}
		seen[key] = true
		normalized := NormalizeSkillLabel(raw)
		if normalized == "" {
			return
		}
		candidates = append(candidates, Candidate{
			Raw:        raw,
			Normalized: normalized,
			Source:     source,
		})
	}

	for _, term := range vocabularyHits(jdText) {
		add(term, SourceVocabulary)
	}
	for _, phrase := range capitalizedPhrases(jdText) {
		add(phrase, SourceHeuristic)
	}

	for i := range candidates {
		candidates[i].RequiredYears = ParseRequirement(jdText, candidates[i].Normalized)
	}

	return candidates
}

// vocabularyHits returns every MasterVocabulary term contained in text.
func vocabularyHits(text string) []string {
	lower := strings.ToLower(text)
	var hits []string
	for _, term := range MasterVocabulary {
		if strings.Contains(lower, strings.ToLower(term)) {
			hits = append(hits, term)
		}
	}
	return hits
}

// capitalizedPhrases returns runs of one to four capitalized tokens in text order.
func capitalizedPhrases(text string) []string {
	matches := capPhraseRe.FindAllString(text, -1)
	phrases := make([]string, 0, len(matches))
	for _, m := range matches {
		phrase := strings.TrimRight(m, ".-")
		if len(strings.Fields(phrase)) > maxPhraseTokens || len(phrase) < 2 {
			continue
		}
		phrases = append(phrases, phrase)
	}
	return phrases
}

// CandidatesToSkills turns candidates into an editable skill list.
// Candidates whose raw text mentions a minimum are tagged mandatory.
func CandidatesToSkills(candidates []Candidate) []types.SkillEntry {
	entries := make([]types.SkillEntry, 0, len(candidates))
	for _, c := range candidates {
		group := types.GroupDesired
		lowerRaw := strings.ToLower(c.Raw)
		if strings.Contains(lowerRaw, "minimum") || strings.Contains(lowerRaw, "min") {
			group = types.GroupMandatory
		}
		entries = append(entries, types.SkillEntry{
			Label:         c.Normalized,
			Group:         group,
			RequiredYears: c.RequiredYears,
		})
	}
	return NormalizeEntries(entries)
}
