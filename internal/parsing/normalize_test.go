package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/types"
)

func TestNormalizeSkillLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain label unchanged", "TOSCA", "TOSCA"},
		{"Slash becomes space", "CI/CD", "CI CD"},
		{"Noise words removed", "Minimum 5 years TOSCA experience", "5 TOSCA"},
		{"Noise is case-insensitive", "SPLUNK Expertise", "SPLUNK"},
		{"Noise only at word boundaries", "Yrsmith experienced", "Yrsmith experienced"},
		{"Abbreviated exp with dot", "exp. LoadRunner", ". LoadRunner"},
		{"Brackets and parentheses", "Dynatrace (APM) [monitoring]", "Dynatrace APM monitoring"},
		{"Hyphen colon comma", "web-app: selenium, cypress", "web app selenium cypress"},
		{"Whitespace collapsed", "  Mainframe \t  Automation\nTesting  ", "Mainframe Automation Testing"},
		{"Skills suffix", "Testing skills", "Testing"},
		{"Only noise", "Should have experience", "have"},
		{"Empty string", "", ""},
		{"Whitespace only", "   ", ""},
		{"Underscore kept", "vu_gen", "vu_gen"},
		{"Plus and hash kept", "C++ and C#", "C++ and C#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSkillLabel(tt.input))
		})
	}
}

func TestNormalizeSkillLabel_Idempotent(t *testing.T) {
	inputs := []string{
		"CI/CD",
		"Minimum 5 yrs (TOSCA)",
		"exp-erience with [JMeter]",
		"years/yrs/skills",
		"Web Application Automation - expertise",
		"a -- b :: c ,, d",
		"(((x)))",
		"éxperience ünit tests",
		"3–5 years Splunk",
		"exp.exp.exp",
		"",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			once := NormalizeSkillLabel(in)
			assert.Equal(t, once, NormalizeSkillLabel(once))
		})
	}
}

func TestDedupeLabels(t *testing.T) {
	got := DedupeLabels([]string{"TOSCA", "Splunk", "tosca", "", "  ", "SPLUNK", "VUGen"})
	assert.Equal(t, []string{"TOSCA", "Splunk", "VUGen"}, got)
}

func TestNormalizeEntries(t *testing.T) {
	tests := []struct {
		name     string
		input    []types.SkillEntry
		expected []types.SkillEntry
	}{
		{
			name: "Labels normalized and empties dropped",
			input: []types.SkillEntry{
				{Label: "CI/CD", Group: types.GroupMandatory},
				{Label: "experience", Group: types.GroupMandatory},
				{Label: "Splunk skills"},
			},
			expected: []types.SkillEntry{
				{Label: "CI CD", Group: types.GroupMandatory},
				{Label: "Splunk", Group: types.GroupDesired},
			},
		},
		{
			name: "Duplicates keep first and inherit requirement",
			input: []types.SkillEntry{
				{Label: "TOSCA", Group: types.GroupMandatory},
				{Label: "tosca", Group: types.GroupDesired, RequiredYears: types.IntPtr(5)},
			},
			expected: []types.SkillEntry{
				{Label: "TOSCA", Group: types.GroupMandatory, RequiredYears: types.IntPtr(5)},
			},
		},
		{
			name:     "Empty input",
			input:    []types.SkillEntry{},
			expected: []types.SkillEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeEntries(tt.input))
		})
	}
}
