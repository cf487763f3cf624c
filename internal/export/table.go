// Package export writes match results as CSV, JSON or XLSX tables.
package export

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/types"
)

// Format is an output file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

const (
	// SheetName is the worksheet holding the results table.
	SheetName = "JD Match Analysis"
	// DefaultBaseName is the output file name without extension.
	DefaultBaseName = "jd_match_results"

	resumeColumn = "Resume"
	matchColumn  = "Match %"
)

// ParseFormat accepts csv, json or xlsx in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want csv, json or xlsx)", s)
	}
}

// FormatFromPath infers the format from an output file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Options selects optional column groups. The zero value shows every column.
type Options struct {
	HidePresence bool
	HideYears    bool
}

// Report is a complete run: the resolved skill list and one result per resume.
type Report struct {
	RunID   string               `json:"run_id,omitempty"`
	Skills  []types.SkillEntry   `json:"skills"`
	Results []types.ResumeResult `json:"results"`
}

// Table is the flat results view: one row per resume.
// Cells are strings, except score columns which are float64.
type Table struct {
	Header []string
	Rows   [][]any
}

// BuildTable lays out the report as Resume, then per skill <skill>_presence,
// <skill>_years, <skill>_req and <skill>_score_%, then Match %.
func BuildTable(report Report, opts Options) Table {
	header := []string{resumeColumn}
	for _, s := range report.Skills {
		if !opts.HidePresence {
			header = append(header, s.Label+"_presence")
		}
		if !opts.HideYears {
			header = append(header, s.Label+"_years")
		}
		header = append(header, s.Label+"_req", s.Label+"_score_%")
	}
	header = append(header, matchColumn)

	rows := make([][]any, 0, len(report.Results))
	for _, res := range report.Results {
		byKey := make(map[string]types.MatchRecord, len(res.Records))
		for _, rec := range res.Records {
			byKey[strings.ToLower(rec.Skill)] = rec
		}

		row := make([]any, 0, len(header))
		row = append(row, res.ResumeID)
		for _, s := range report.Skills {
			rec, ok := byKey[s.Key()]
			if !ok {
				rec = types.MatchRecord{Skill: s.Label, Group: s.Group, RequiredYears: s.RequiredYears}
			}
			view := rec.Row()
			if !opts.HidePresence {
				row = append(row, view.Presence)
			}
			if !opts.HideYears {
				row = append(row, view.YearsFound)
			}
			row = append(row, view.RequiredYears, view.ScorePercent)
		}
		row = append(row, res.OverallPercent)
		rows = append(rows, row)
	}

	return Table{Header: header, Rows: rows}
}

// Strings renders every cell as text.
func (t Table) Strings() [][]string {
	out := make([][]string, 0, len(t.Rows)+1)
	out = append(out, t.Header)
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = formatCell(v)
		}
		out = append(out, cells)
	}
	return out
}

func formatCell(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
