package matching

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int {
	return &v
}

var filler = strings.Repeat("lorem ipsum ", 20)

func TestExtractYearsNearSkill(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		forms    []string
		expected *int
	}{
		{
			name:     "Range resolves to upper bound",
			text:     "Worked with TOSCA for 3-6 years on automation",
			forms:    []string{"TOSCA"},
			expected: intp(6),
		},
		{
			name:     "En dash range",
			text:     "TOSCA 3–5 years",
			forms:    []string{"TOSCA"},
			expected: intp(5),
		},
		{
			name:     "Max across occurrences",
			text:     "TOSCA 2 years. " + filler + " Later TOSCA lead for 7 yrs.",
			forms:    []string{"TOSCA"},
			expected: intp(7),
		},
		{
			name:     "Synonym occurrence",
			text:     "Jenkins pipelines for 4 yrs",
			forms:    []string{"CI CD", "jenkins"},
			expected: intp(4),
		},
		{
			name:     "Label matches slash form",
			text:     "CI/CD: 3 years",
			forms:    []string{"CI CD"},
			expected: intp(3),
		},
		{
			name:     "Global fallback when nothing nearby",
			text:     "TOSCA expert. " + filler + " 10 years in banking",
			forms:    []string{"TOSCA"},
			expected: intp(10),
		},
		{
			name:     "No figures at all",
			text:     "TOSCA expert",
			forms:    []string{"TOSCA"},
			expected: nil,
		},
		{
			name:     "Multibyte text around window edge",
			text:     strings.Repeat("é", 130) + " TOSCA 5 years",
			forms:    []string{"TOSCA"},
			expected: intp(5),
		},
		{
			name:     "Empty text",
			text:     "",
			forms:    []string{"TOSCA"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractYearsNearSkill(tt.text, tt.forms, DefaultWindow))
		})
	}
}

func TestExtractor_FallbackNone(t *testing.T) {
	text := "TOSCA expert. " + filler + " 10 years in banking"
	e := NewExtractor(DefaultWindow, FallbackNone)

	assert.Nil(t, e.Extract(text, []string{"TOSCA"}))
	assert.Equal(t, intp(10), NewExtractor(DefaultWindow, FallbackGlobal).Extract(text, []string{"TOSCA"}))
}

func TestExtractor_WindowSize(t *testing.T) {
	text := "Splunk" + strings.Repeat(" ", 30) + "8 years"

	assert.Nil(t, NewExtractor(10, FallbackNone).Extract(text, []string{"Splunk"}))
	assert.Equal(t, intp(8), NewExtractor(40, FallbackNone).Extract(text, []string{"Splunk"}))
}

func TestNewExtractor_Defaults(t *testing.T) {
	e := NewExtractor(0, "bogus")
	assert.Equal(t, DefaultWindow, e.Window)
	assert.Equal(t, FallbackGlobal, e.Fallback)
}

func TestExtractor_ExtractContext(t *testing.T) {
	e := NewExtractor(DefaultWindow, FallbackGlobal)
	text := "TOSCA for 6 years"

	years, err := e.ExtractContext(context.Background(), text, []string{"TOSCA"})
	require.NoError(t, err)
	assert.Equal(t, intp(6), years)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	years, err = e.ExtractContext(ctx, text, []string{"TOSCA"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, years)

	_, err = e.ExtractContext(ctx, "payroll, 10 years", []string{"TOSCA"})
	assert.ErrorIs(t, err, context.Canceled, "the global fallback stops too")
}
