// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/parsing"
	"github.com/nishachandar-bit/jd-resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow caps per-resume skill lines in the results box
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens a line to the box interior, counting runes.
func truncate(line string) string {
	r := []rune(line)
	if len(r) > boxWidth-4 {
		return string(r[:boxWidth-7]) + "..."
	}
	return line
}

func formatReq(v *int) string {
	if v == nil || *v <= 0 {
		return "-"
	}
	return fmt.Sprintf("%dy", *v)
}

// PrintCandidates lists the skills proposed from a job description.
func (p *Printer) PrintCandidates(candidates []parsing.Candidate) {
	if len(candidates) == 0 {
		p.printBox("CANDIDATE SKILLS", "(none found)")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-28s %-10s %s\n", "Skill", "Source", "Req")
	for _, c := range candidates {
		fmt.Fprintf(&sb, "%-28s %-10s %s\n", c.Normalized, c.Source, formatReq(c.RequiredYears))
	}
	p.printBox(fmt.Sprintf("CANDIDATE SKILLS (%d)", len(candidates)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills lists the resolved skill list grouped as mandatory then desired.
func (p *Printer) PrintSkills(skills []types.SkillEntry) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder
	for _, group := range []types.Group{types.GroupMandatory, types.GroupDesired} {
		var lines []string
		for _, s := range skills {
			if s.Group == group {
				lines = append(lines, fmt.Sprintf("  • %s (req %s)", s.Label, formatReq(s.RequiredYears)))
			}
		}
		if len(lines) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s:\n%s\n", strings.ToUpper(string(group[:1]))+string(group[1:]), strings.Join(lines, "\n"))
	}
	p.printBox("SKILL REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResults outputs each resume's overall match and its per-skill outcome.
func (p *Printer) PrintResults(results []types.ResumeResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	for i, res := range results {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s: %.2f%%\n", res.ResumeID, res.OverallPercent)

		count := min(len(res.Records), maxItemsToShow)
		for _, rec := range res.Records[:count] {
			row := rec.Row()
			mark := "✗"
			if rec.Present {
				mark = "✓"
			}
			years := row.YearsFound
			if years == "" {
				years = "-"
			}
			fmt.Fprintf(&sb, "  %s %-24s %6.2f%%  %s/%s", mark, rec.Skill, row.ScorePercent, years, formatReq(rec.RequiredYears))
			if rec.Err != "" {
				sb.WriteString("  [error]")
			}
			sb.WriteString("\n")
		}
		if len(res.Records) > maxItemsToShow {
			fmt.Fprintf(&sb, "  ... and %d more\n", len(res.Records)-maxItemsToShow)
		}
	}
	p.printBox("MATCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillList writes the editable skill list without a box so it can be copied verbatim.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSkillList(skills []types.SkillEntry) {
	fmt.Fprint(p.out, parsing.FormatSkillList(skills))
}
