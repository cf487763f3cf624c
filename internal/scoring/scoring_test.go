package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/types"
)

func TestScoreSkill(t *testing.T) {
	tests := []struct {
		name     string
		present  bool
		years    *int
		required *int
		weight   float64
		expected float64
	}{
		{"No requirement, absent", false, nil, nil, 0.6, 0.0},
		{"No requirement, present", true, nil, nil, 0.6, 1.0},
		{"Requirement, absent", false, types.IntPtr(10), types.IntPtr(5), 0.6, 0.0},
		{"Requirement, present without years", true, nil, types.IntPtr(5), 0.6, 0.6},
		{"Requirement met exactly", true, types.IntPtr(5), types.IntPtr(5), 0.6, 1.0},
		{"Requirement exceeded is capped", true, types.IntPtr(6), types.IntPtr(5), 0.6, 1.0},
		{"Partial years", true, types.IntPtr(2), types.IntPtr(4), 0.6, 0.8},
		{"Custom presence weight", true, types.IntPtr(1), types.IntPtr(4), 0.4, 0.55},
		{"Zero requirement is presence-only", true, nil, types.IntPtr(0), 0.6, 1.0},
		{"Weight above range is clamped", true, nil, types.IntPtr(5), 1.5, 0.9},
		{"Weight below range is clamped", true, nil, types.IntPtr(5), 0.1, 0.4},
		{"NaN weight uses default", true, nil, types.IntPtr(5), math.NaN(), 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ScoreSkill(tt.present, tt.years, tt.required, tt.weight), 1e-9)
		})
	}
}

func TestScoreSkill_Bounds(t *testing.T) {
	for _, w := range []float64{0, 0.4, 0.6, 0.9, 2} {
		for _, years := range []*int{nil, types.IntPtr(0), types.IntPtr(3), types.IntPtr(50)} {
			for _, req := range []*int{nil, types.IntPtr(1), types.IntPtr(5)} {
				for _, present := range []bool{true, false} {
					s := ScoreSkill(present, years, req, w)
					assert.GreaterOrEqual(t, s, 0.0)
					assert.LessOrEqual(t, s, 1.0)
				}
			}
		}
	}
}

func TestAggregate(t *testing.T) {
	records := []types.MatchRecord{
		{Skill: "TOSCA", Group: types.GroupMandatory, Score: 1.0},
		{Skill: "LoadRunner", Group: types.GroupMandatory, Score: 0.0},
		{Skill: "Splunk", Group: types.GroupDesired, Score: 1.0},
	}

	b := Aggregate(records)

	assert.InDelta(t, 0.5, b.MandatoryAvg, 1e-9)
	assert.InDelta(t, 1.0, b.DesiredAvg, 1e-9)
	assert.Equal(t, 60.0, b.OverallPercent)
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name      string
		mandatory []float64
		desired   []float64
		expected  float64
	}{
		{"Both groups empty", nil, nil, 0},
		{"Only desired", nil, []float64{1.0}, 20},
		{"Only mandatory", []float64{1.0, 1.0}, nil, 80},
		{"Everything matched", []float64{1}, []float64{1}, 100},
		{"Rounded to two decimals", []float64{1, 0, 0}, []float64{0.6}, 38.67},
		{"Out of range scores clamped", []float64{1.7}, []float64{-2}, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Combine(tt.mandatory, tt.desired).OverallPercent)
		})
	}
}

func TestClampPresenceWeight(t *testing.T) {
	assert.Equal(t, 0.4, ClampPresenceWeight(0))
	assert.Equal(t, 0.9, ClampPresenceWeight(1))
	assert.Equal(t, 0.75, ClampPresenceWeight(0.75))
	assert.Equal(t, DefaultPresenceWeight, ClampPresenceWeight(math.NaN()))
}
