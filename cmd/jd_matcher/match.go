package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/config"
	"github.com/nishachandar-bit/jd-resume-matcher/internal/export"
	"github.com/nishachandar-bit/jd-resume-matcher/internal/ingestion"
	"github.com/nishachandar-bit/jd-resume-matcher/internal/observability"
	"github.com/nishachandar-bit/jd-resume-matcher/internal/parsing"
	"github.com/nishachandar-bit/jd-resume-matcher/internal/pipeline"
	"github.com/nishachandar-bit/jd-resume-matcher/internal/synonyms"
	"github.com/nishachandar-bit/jd-resume-matcher/internal/types"
)

type matchOptions struct {
	jd              string
	resumes         []string
	resumeDir       string
	skills          string
	synonyms        string
	replaceSynonyms bool
	presenceWeight  float64
	strict          bool
	workers         int
	useBrowser      bool
	format          string
	out             string
	hidePresence    bool
	hideYears       bool
	verbose         bool
}

func newMatchCmd(a *app) *cobra.Command {
	opts := &matchOptions{}

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Score resumes against a job description's skills",
		Long: "Score every resume against the job description's skill list and write one row per resume. " +
			"Without --skills, skills are extracted from the job description automatically.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMatch(cmd, a, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.jd, "jd", "j", "", "Job description file or URL (required)")
	f.StringSliceVarP(&opts.resumes, "resume", "r", nil, "Resume file; repeat or comma-separate for several")
	f.StringVar(&opts.resumeDir, "resume-dir", "", "Directory of resumes (.txt, .md, .pdf, .docx, .html)")
	f.StringVarP(&opts.skills, "skills", "s", "", "Skill list file as written by extract-skills")
	f.StringVar(&opts.synonyms, "synonyms", "", "JSON or YAML synonym map merged over the defaults")
	f.BoolVar(&opts.replaceSynonyms, "replace-synonyms", false, "Use only the --synonyms map, without the defaults")
	f.Float64Var(&opts.presenceWeight, "presence-weight", 0, "Share of a skill score earned by presence, 0.4 to 0.9 (overrides config)")
	f.BoolVar(&opts.strict, "strict", true, "Disable fuzzy matching (overrides config)")
	f.IntVar(&opts.workers, "workers", 0, "Resumes scored concurrently, 0 for one per CPU (overrides config)")
	f.BoolVar(&opts.useBrowser, "use-browser", false, "Render JavaScript job pages in headless Chrome (overrides config)")
	f.StringVarP(&opts.format, "format", "f", "", "Output format: csv, json or xlsx (default from --out extension, else csv)")
	f.StringVarP(&opts.out, "out", "o", "", "Output file (default stdout; required for xlsx)")
	f.BoolVar(&opts.hidePresence, "hide-presence", false, "Omit the <skill>_presence columns")
	f.BoolVar(&opts.hideYears, "hide-years", false, "Omit the <skill>_years columns")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Print the resolved skills and per-resume results to stderr")
	_ = cmd.MarkFlagRequired("jd")

	return cmd
}

func runMatch(cmd *cobra.Command, a *app, opts *matchOptions) error {
	logger := a.logger
	cfg := a.cfg
	flags := cmd.Flags()
	if flags.Changed("presence-weight") {
		cfg.PresenceWeight = opts.presenceWeight
	}
	if flags.Changed("strict") {
		cfg.StrictMatching = config.BoolPtr(opts.strict)
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("use-browser") {
		cfg.UseBrowser = opts.useBrowser
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := resolveFormat(opts.format, opts.out)
	if err != nil {
		return err
	}

	paths, err := resumePaths(opts.resumes, opts.resumeDir)
	if err != nil {
		return err
	}

	jd, err := ingestion.Load(cmd.Context(), opts.jd, ingestion.URLOptions{UseBrowser: cfg.UseBrowser, Logger: logger})
	if err != nil {
		return fmt.Errorf("failed to load job description: %w", err)
	}

	skills, err := loadSkills(opts.skills, logger)
	if err != nil {
		return err
	}

	syns, err := loadSynonyms(opts.synonyms, opts.replaceSynonyms, logger)
	if err != nil {
		return err
	}

	resumes := make([]pipeline.Resume, 0, len(paths))
	for _, path := range paths {
		resumes = append(resumes, loadResume(path, logger))
	}

	results, summary, err := pipeline.Run(cmd.Context(), pipeline.Input{
		JDText:   jd.Text,
		Resumes:  resumes,
		Skills:   skills,
		Synonyms: syns,
		Config:   cfg,
	}, pipeline.RunOptions{
		Logger: logger,
		OnProgress: func(e pipeline.ProgressEvent) {
			logger.Debug(e.Message, zap.String("step", e.Step))
		},
	})
	if err != nil {
		return err
	}

	if opts.verbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintSkills(summary.Entries)
		printer.PrintResults(results)
	}

	report := export.Report{RunID: summary.RunID, Skills: summary.Entries, Results: results}
	exportOpts := export.Options{HidePresence: opts.hidePresence, HideYears: opts.hideYears}

	if opts.out == "" {
		return export.Write(cmd.OutOrStdout(), format, report, exportOpts)
	}
	if err := export.WriteFile(opts.out, format, report, exportOpts); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d results to %s\n", len(results), opts.out)
	return nil
}

// resolveFormat picks the export format from --format, else the --out extension, else CSV.
func resolveFormat(flag, out string) (export.Format, error) {
	var format export.Format
	var err error
	switch {
	case flag != "":
		format, err = export.ParseFormat(flag)
	case out != "":
		format, err = export.FormatFromPath(out)
	default:
		format = export.FormatCSV
	}
	if err != nil {
		return "", err
	}
	if format == export.FormatXLSX && out == "" {
		return "", errors.New("xlsx output requires --out")
	}
	return format, nil
}

// resumePaths joins --resume files with the supported files of --resume-dir.
func resumePaths(files []string, dir string) ([]string, error) {
	paths := append([]string{}, files...)
	if dir != "" {
		listed, err := ingestion.ListDocuments(dir)
		if err != nil {
			return nil, err
		}
		paths = append(paths, listed...)
	}
	if len(paths) == 0 {
		return nil, errors.New("no resumes given: use --resume or --resume-dir")
	}
	return paths, nil
}

// loadResume extracts a resume's text. A resume that cannot be read is scored
// as empty so that it still gets a row.
func loadResume(path string, logger *zap.Logger) pipeline.Resume {
	id := filepath.Base(path)
	doc, err := ingestion.LoadFile(path)
	if err != nil {
		logger.Warn("could not read resume, scoring it as empty", zap.String("resume", id), zap.Error(err))
		return pipeline.Resume{ID: id}
	}
	if doc.Text == "" {
		logger.Warn("resume has no extractable text", zap.String("resume", id))
	}
	return pipeline.Resume{ID: id, Text: doc.Text}
}

// loadSkills reads an editable skill list. An empty path means skills are extracted from the JD.
func loadSkills(path string, logger *zap.Logger) ([]types.SkillEntry, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read skill list: %w", err)
	}
	skills, lineErrs := parsing.ParseSkillList(string(data))
	for _, e := range lineErrs {
		logger.Warn("skill list line treated as presence-only", zap.Error(e))
	}
	if len(skills) == 0 {
		return nil, fmt.Errorf("skill list %s has no skills", path)
	}
	return skills, nil
}

// loadSynonyms merges a user synonym file over the defaults. Malformed or invalid
// content is reported and skipped; an unreadable file is an error.
func loadSynonyms(path string, replace bool, logger *zap.Logger) (types.SynonymSet, error) {
	if path == "" {
		return synonyms.Default(), nil
	}

	custom, err := synonyms.Load(path)
	var malformed *synonyms.MalformedError
	var invalid *synonyms.InvalidEntriesError
	switch {
	case err == nil:
	case errors.As(err, &malformed):
		logger.Warn("synonym file is malformed, ignoring it", zap.String("path", path), zap.Error(err))
	case errors.As(err, &invalid):
		logger.Warn("ignoring invalid synonym entries", zap.String("path", path), zap.Strings("skills", invalid.Keys))
	default:
		return nil, err
	}

	if replace {
		return custom, nil
	}
	return synonyms.Merge(synonyms.Default(), custom), nil
}
