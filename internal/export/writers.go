package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/schemas"
	"github.com/nishachandar-bit/jd-resume-matcher/internal/types"
	rootschemas "github.com/nishachandar-bit/jd-resume-matcher/schemas"
)

// WriteCSV writes the table with a header row.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(t.Strings()); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

var resultsSchema = schemas.NewLazy(rootschemas.MatchResultsFile, rootschemas.MatchResults)

// WriteJSON validates the report against the results schema and writes it indented.
func WriteJSON(w io.Writer, report Report) error {
	if report.Skills == nil {
		report.Skills = []types.SkillEntry{}
	}
	results := make([]types.ResumeResult, len(report.Results))
	for i, r := range report.Results {
		if r.Records == nil {
			r.Records = []types.MatchRecord{}
		}
		results[i] = r
	}
	report.Results = results

	if err := resultsSchema.ValidateValue(report); err != nil {
		return fmt.Errorf("results failed schema validation: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

// WriteXLSX writes the table to a workbook with a single "JD Match Analysis" sheet,
// a bold frozen header row and numeric score cells.
func WriteXLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if len(t.Header) > 0 {
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(len(t.Header), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetName, "A1", last, bold); err != nil {
			return err
		}
		if err := f.SetPanes(SheetName, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write XLSX: %w", err)
	}
	return nil
}

// Write renders the report in the given format.
func Write(w io.Writer, format Format, report Report, opts Options) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, BuildTable(report, opts))
	case FormatXLSX:
		return WriteXLSX(w, BuildTable(report, opts))
	case FormatJSON:
		return WriteJSON(w, report)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteFile renders the report to path, creating or truncating it.
func WriteFile(path string, format Format, report Report, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := Write(f, format, report, opts); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
