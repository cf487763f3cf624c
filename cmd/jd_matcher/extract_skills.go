package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/ingestion"
	"github.com/nishachandar-bit/jd-resume-matcher/internal/observability"
	"github.com/nishachandar-bit/jd-resume-matcher/internal/parsing"
)

type extractSkillsOptions struct {
	jd         string
	out        string
	useBrowser bool
	verbose    bool
}

func newExtractSkillsCmd(a *app) *cobra.Command {
	opts := &extractSkillsOptions{}

	cmd := &cobra.Command{
		Use:   "extract-skills",
		Short: "Propose a skill list from a job description",
		Long: "Extract candidate skills and minimum years of experience from a job description file or URL. " +
			"The editable skill list is printed, or written with --out, and can be passed to match --skills.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExtractSkills(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.jd, "jd", "j", "", "Job description file (.txt, .md, .pdf, .docx, .html) or URL (required)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the editable skill list to this file")
	cmd.Flags().BoolVar(&opts.useBrowser, "use-browser", false, "Render JavaScript job pages in headless Chrome (overrides config)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print the job description's source metadata as JSON to stderr")
	_ = cmd.MarkFlagRequired("jd")

	return cmd
}

func runExtractSkills(cmd *cobra.Command, a *app, opts *extractSkillsOptions) error {
	useBrowser := a.cfg.UseBrowser
	if cmd.Flags().Changed("use-browser") {
		useBrowser = opts.useBrowser
	}

	doc, err := ingestion.Load(cmd.Context(), opts.jd, ingestion.URLOptions{
		UseBrowser: useBrowser,
		Logger:     a.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to load job description: %w", err)
	}
	a.logger.Debug("loaded job description",
		zap.String("source", doc.Metadata.Source),
		zap.String("hash", doc.Metadata.Hash),
		zap.Int("chars", doc.Metadata.Chars),
	)
	if opts.verbose {
		meta, err := doc.Metadata.ToJSON()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s\n", meta)
	}

	profile, err := parsing.NewProfile(doc.Text)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	printer.PrintCandidates(profile.Candidates())

	skills := profile.Build().Skills
	if opts.out == "" {
		printer.PrintSkillList(skills)
		return nil
	}

	if err := os.WriteFile(opts.out, []byte(parsing.FormatSkillList(skills)), 0o644); err != nil {
		return fmt.Errorf("failed to write skill list: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d skills to %s\n", len(skills), opts.out)
	return nil
}
