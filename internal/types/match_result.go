// Package types provides type definitions for structured data used throughout the jd-resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"math"
)

// MatchRecord is the outcome of matching one skill against one resume.
type MatchRecord struct {
	Skill         string  `json:"skill"`
	Group         Group   `json:"group"`
	Present       bool    `json:"present"`
	YearsFound    *int    `json:"years_found,omitempty"`
	RequiredYears *int    `json:"required_years,omitempty"`
	Score         float64 `json:"score"`
	Err           string  `json:"error,omitempty"` // set when evaluating the pair failed
}

// ResumeResult is the scored row for one resume.
type ResumeResult struct {
	ResumeID       string        `json:"resume_id"`
	OverallPercent float64       `json:"overall_percent"`
	Records        []MatchRecord `json:"records"`
}

// RecordRow is the display form of a MatchRecord.
type RecordRow struct {
	Skill         string  `json:"skill"`
	Presence      string  `json:"presence"`
	YearsFound    string  `json:"years_found"`
	RequiredYears string  `json:"required_years"`
	ScorePercent  float64 `json:"score_percent"`
}

// Row renders the record the way exporters show it.
func (r MatchRecord) Row() RecordRow {
	presence := "No"
	if r.Present {
		presence = "Yes"
	}
	return RecordRow{
		Skill:         r.Skill,
		Presence:      presence,
		YearsFound:    formatYears(r.YearsFound),
		RequiredYears: formatYears(r.RequiredYears),
		ScorePercent:  Round2(r.Score * 100),
	}
}

func formatYears(v *int) string {
	if v == nil || *v == 0 {
		return ""
	}
	return fmt.Sprintf("%dy", *v)
}

// Clamp01 bounds v to [0, 1].
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
