// Package scoring turns per-skill match results into scores and an overall match percentage.
package scoring

import (
	"math"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/types"
)

// Group weights for the overall percentage. Fixed, unlike PresenceWeight.
const (
	MandatoryWeight = 0.8
	DesiredWeight   = 0.2
)

// Bounds and default for the presence weight.
const (
	MinPresenceWeight     = 0.4
	MaxPresenceWeight     = 0.9
	DefaultPresenceWeight = 0.6
)

// ClampPresenceWeight forces w into [MinPresenceWeight, MaxPresenceWeight].
// NaN falls back to DefaultPresenceWeight.
func ClampPresenceWeight(w float64) float64 {
	if math.IsNaN(w) {
		return DefaultPresenceWeight
	}
	return math.Max(MinPresenceWeight, math.Min(MaxPresenceWeight, w))
}

// ScoreSkill scores one skill for one resume, 0 to 1.
//
// Absent skills score 0. Present skills with no requirement score 1. When a
// requirement is set, presence earns presenceWeight and the remainder is earned in
// proportion to yearsFound/required, capped at 1.
func ScoreSkill(present bool, yearsFound, required *int, presenceWeight float64) float64 {
	if !present {
		return 0.0
	}
	if required == nil || *required <= 0 {
		return 1.0
	}

	w := ClampPresenceWeight(presenceWeight)
	if yearsFound == nil {
		return types.Clamp01(w)
	}

	ratio := math.Min(float64(*yearsFound)/float64(*required), 1.0)
	if ratio < 0 {
		ratio = 0
	}
	return types.Clamp01(w + (1-w)*ratio)
}

// Breakdown holds the group averages and overall percentage for one resume.
type Breakdown struct {
	MandatoryAvg   float64 `json:"mandatory_avg"`
	DesiredAvg     float64 `json:"desired_avg"`
	OverallPercent float64 `json:"overall_percent"`
}

// Aggregate averages record scores per group and combines them with the fixed
// group weights. An empty group averages to 0.
func Aggregate(records []types.MatchRecord) Breakdown {
	var mandatory, desired []float64
	for _, r := range records {
		if r.Group == types.GroupMandatory {
			mandatory = append(mandatory, r.Score)
		} else {
			desired = append(desired, r.Score)
		}
	}
	return Combine(mandatory, desired)
}

// Combine computes the breakdown from raw group scores.
func Combine(mandatoryScores, desiredScores []float64) Breakdown {
	m := mean(mandatoryScores)
	d := mean(desiredScores)
	overall := types.Round2((m*MandatoryWeight + d*DesiredWeight) * 100)
	return Breakdown{
		MandatoryAvg:   m,
		DesiredAvg:     d,
		OverallPercent: math.Max(0, math.Min(100, overall)),
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0.0
	}
	total := 0.0
	for _, v := range values {
		total += types.Clamp01(v)
	}
	return total / float64(len(values))
}
