package matching

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		skill    string
		synonyms []string
		strict   bool
		expected Tier
	}{
		{"Exact label", "Automated regression suites in TOSCA.", "TOSCA", nil, true, TierExact},
		{"Exact is case-insensitive", "built tosca test cases", "TOSCA", nil, true, TierExact},
		{"Synonym substring", "Jenkins pipeline", "CI/CD", []string{"jenkins"}, true, TierExact},
		{"Blank synonyms ignored", "unrelated", "CI/CD", []string{"", "  "}, true, TierNone},
		{"Tokens any order", "testing of mainframe automation jobs", "Automation Testing", nil, true, TierToken},
		{"Normalized label against slash form", "We built CI/CD pipelines", "CI CD", nil, true, TierToken},
		{"Token must be whole word", "golang services", "Go Lang", nil, true, TierNone},
		{"Single-rune tokens ignored", "studio apps", "R Studio", nil, true, TierToken},
		{"Single letter label still exact", "c and r", "C", nil, true, TierExact},
		{"Unicode tokens", "Erfahrung mit Größenänderung und Prüfung", "Prüfung Größenänderung", nil, true, TierToken},
		{"Fuzzy when not strict", "Deployed kubernets clusters", "Kubernetes", nil, false, TierFuzzy},
		{"Strict suppresses fuzzy", "Deployed kubernets clusters", "Kubernetes", nil, true, TierNone},
		{"Short labels never fuzzy", "sequel databases", "SQL", nil, false, TierNone},
		{"Fuzzy below threshold", "Worked on payroll systems", "Kubernetes", nil, false, TierNone},
		{"Empty text", "", "TOSCA", nil, false, TierNone},
		{"Empty skill", "TOSCA", "  ", nil, false, TierNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Detect(tt.text, tt.skill, tt.synonyms, tt.strict))
			assert.Equal(t, tt.expected != TierNone, HasSkill(tt.text, tt.skill, tt.synonyms, tt.strict))
		})
	}
}

func TestHasSkill_LiteralSubstringIgnoresStrict(t *testing.T) {
	cases := []struct{ text, skill string }{
		{"Worked with TOSCA for 3-6 years", "TOSCA"},
		{"LoadRunnerScripts", "LoadRunner"},
		{"ci/cd", "CI/CD"},
		{"xx VUGen xx", "VUGen"},
		{"Go", "Go"},
	}
	for _, c := range cases {
		assert.True(t, HasSkill(c.text, c.skill, nil, true), c.text)
		assert.True(t, HasSkill(c.text, c.skill, nil, false), c.text)
	}
}

func TestDetectContext_CancelledDuringFuzzy(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	text := strings.Repeat("lorem ipsum dolor sit amet ", 200)
	tier, err := DetectContext(ctx, text, "Mainframe Automation Testing", nil, false)

	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, TierNone, tier)
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "exact", TierExact.String())
	assert.Equal(t, "token", TierToken.String())
	assert.Equal(t, "fuzzy", TierFuzzy.String())
	assert.Equal(t, "none", TierNone.String())
}
