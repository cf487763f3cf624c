package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartialRatio(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{"Identical", "abc", "abc", 100},
		{"Contained", "abc", "xxabcxx", 100},
		{"Contained with punctuation", "this is a test", "this is a test!", 100},
		{"Equal length uses partial windows", "fuzzy", "wuzzy", 800.0 / 9.0},
		{"Suffix alignment", "abcd", "xxab", 400.0 / 6.0},
		{"Both empty", "", "", 100},
		{"One empty", "abc", "", 0},
		{"Disjoint", "abc", "xyz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PartialRatio(tt.a, tt.b), 0.01)
		})
	}
}

func TestPartialRatio_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"kubernetes", "deployed kubernets clusters"},
		{"abcd", "xxab"},
		{"dynatrace", "monitoring with dynatrce and splunk"},
	}
	for _, p := range pairs {
		assert.InDelta(t, PartialRatio(p[0], p[1]), PartialRatio(p[1], p[0]), 0.0001)
	}
}

func TestPartialRatio_Bounds(t *testing.T) {
	inputs := []string{"", "a", "tosca", "Größe", "mainframe automation testing", "ci/cd pipelines with jenkins"}
	for _, a := range inputs {
		for _, b := range inputs {
			r := PartialRatio(a, b)
			assert.GreaterOrEqual(t, r, 0.0)
			assert.LessOrEqual(t, r, 100.0)
		}
	}
}
