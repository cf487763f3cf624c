package parsing

import (
	"strings"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/types"
)

// Profile holds a job description, its editable skill list and the requirement cache.
// Requirements are parsed once per label; editing the skill list only drops cache
// entries whose labels changed.
type Profile struct {
	rawText    string
	candidates []Candidate
	skills     []types.SkillEntry
	reqCache   map[string]*int
}

// NewProfile extracts candidate skills from jdText and seeds the skill list with them.
func NewProfile(jdText string) (*Profile, error) {
	if strings.TrimSpace(jdText) == "" {
		return nil, ErrEmptyJobDescription
	}

	candidates := ExtractCandidates(jdText)
	p := &Profile{
		rawText:    jdText,
		candidates: candidates,
		reqCache:   make(map[string]*int),
	}
	for _, c := range candidates {
		p.reqCache[strings.ToLower(c.Normalized)] = c.RequiredYears
	}
	p.skills = CandidatesToSkills(candidates)
	return p, nil
}

// RawText returns the job description text.
func (p *Profile) RawText() string {
	return p.rawText
}

// Candidates returns the auto-extracted candidates.
func (p *Profile) Candidates() []Candidate {
	return p.candidates
}

// Skills returns the current skill list.
func (p *Profile) Skills() []types.SkillEntry {
	return p.skills
}

// SetSkills replaces the skill list. Labels are normalized; cached requirements
// for labels no longer in the list are dropped.
func (p *Profile) SetSkills(entries []types.SkillEntry) {
	p.skills = NormalizeEntries(entries)

	keep := make(map[string]bool, len(p.skills))
	for _, s := range p.skills {
		keep[s.Key()] = true
	}
	for key := range p.reqCache {
		if !keep[key] {
			delete(p.reqCache, key)
		}
	}
}

// Requirement returns the required years for a label, parsing the text on a cache miss.
func (p *Profile) Requirement(label string) *int {
	key := strings.ToLower(NormalizeSkillLabel(label))
	if v, ok := p.reqCache[key]; ok {
		return v
	}
	v := ParseRequirement(p.rawText, key)
	p.reqCache[key] = v
	return v
}

// Build resolves every skill's requirement and returns the profile snapshot.
// An explicit SkillEntry.RequiredYears wins over the parsed value.
func (p *Profile) Build() types.JDProfile {
	reqs := make(map[string]*int, len(p.skills))
	skills := make([]types.SkillEntry, len(p.skills))
	for i, s := range p.skills {
		if s.RequiredYears == nil {
			s.RequiredYears = p.Requirement(s.Label)
		}
		reqs[s.Key()] = s.RequiredYears
		skills[i] = s
	}
	return types.JDProfile{
		RawText:      p.rawText,
		Skills:       skills,
		Requirements: reqs,
	}
}
