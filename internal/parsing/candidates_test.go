package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/types"
)

const sampleJD = "Minimum 5 years experience in TOSCA required. Knowledge of Splunk and CI/CD pipelines. Nice to have: Dynatrace."

func TestExtractCandidates(t *testing.T) {
	candidates := ExtractCandidates(sampleJD)
	require.GreaterOrEqual(t, len(candidates), 4)

	vocab := candidates[:4]
	assert.Equal(t, []string{"TOSCA", "CI/CD", "Dynatrace", "Splunk"}, rawOf(vocab))
	for _, c := range vocab {
		assert.Equal(t, SourceVocabulary, c.Source)
	}
	assert.Equal(t, "CI CD", vocab[1].Normalized)
	require.NotNil(t, vocab[0].RequiredYears)
	assert.Equal(t, 5, *vocab[0].RequiredYears)
	assert.Nil(t, vocab[2].RequiredYears)

	raws := rawOf(candidates)
	assert.Contains(t, raws, "Knowledge")
	assert.NotContains(t, raws, "Minimum", "noise-only phrases are skipped")

	seen := make(map[string]bool)
	for _, c := range candidates {
		assert.NotEmpty(t, c.Normalized)
		key := c.Normalized
		assert.False(t, seen[key], "duplicate candidate %q", key)
		seen[key] = true
	}
}

func TestExtractCandidates_Empty(t *testing.T) {
	assert.Nil(t, ExtractCandidates(""))
	assert.Nil(t, ExtractCandidates("   \n"))
}

func TestCapitalizedPhrases(t *testing.T) {
	got := capitalizedPhrases("We use Tricentis Tosca daily. Also uses Node.js and C++ on Red Hat Enterprise Linux Server Edition.")
	assert.Contains(t, got, "Tricentis Tosca")
	assert.Contains(t, got, "Node.js")
	assert.Contains(t, got, "C++")
	assert.Contains(t, got, "Red Hat Enterprise Linux")
}

func TestCandidatesToSkills(t *testing.T) {
	candidates := []Candidate{
		{Raw: "Minimum TOSCA", Normalized: "TOSCA", Source: SourceHeuristic, RequiredYears: types.IntPtr(5)},
		{Raw: "Splunk", Normalized: "Splunk", Source: SourceVocabulary},
		{Raw: "SPLUNK", Normalized: "SPLUNK", Source: SourceHeuristic},
	}

	got := CandidatesToSkills(candidates)

	assert.Equal(t, []types.SkillEntry{
		{Label: "TOSCA", Group: types.GroupMandatory, RequiredYears: types.IntPtr(5)},
		{Label: "Splunk", Group: types.GroupDesired},
	}, got)
}

func rawOf(candidates []Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Raw
	}
	return out
}
