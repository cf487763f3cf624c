package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAllYears(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []int
	}{
		{"Single value", "5 years of TOSCA", []int{5}},
		{"Plus suffix", "7+ yrs Splunk", []int{7}},
		{"Range takes upper bound", "3-5 years", []int{5}},
		{"En dash range", "3–5 years", []int{5}},
		{"Spaced range", "2 - 4 yrs", []int{4}},
		{"Short unit", "6y LoadRunner", []int{6}},
		{"Singular year", "1 year Jenkins", []int{1}},
		{"Several values in order", "5 years TOSCA, 3-5 yrs Splunk, 2y JMeter", []int{5, 5, 2}},
		{"No unit", "version 12 released", nil},
		{"Empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FindAllYears(tt.input))
		})
	}
}

func TestMaxYears(t *testing.T) {
	n, ok := MaxYears("2 years Selenium, 9 yrs TOSCA, 4-6 years JMeter")
	require.True(t, ok)
	assert.Equal(t, 9, n)

	_, ok = MaxYears("no figures here")
	assert.False(t, ok)
}

func TestParseYearsExpression(t *testing.T) {
	tests := []struct {
		input    string
		expected *int
	}{
		{"5+ years", intp(5)},
		{"10 yrs", intp(10)},
		{"3-5", intp(5)},
		{"3–5", intp(5)},
		{"7", intp(7)},
		{" 7+ ", intp(7)},
		{"lots", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseYearsExpression(tt.input))
		})
	}
}

func intp(v int) *int {
	return &v
}
