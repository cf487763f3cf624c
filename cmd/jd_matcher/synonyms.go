package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/synonyms"
)

type synonymsOptions struct {
	format string
	check  string
}

func newSynonymsCmd(_ *app) *cobra.Command {
	opts := &synonymsOptions{}

	cmd := &cobra.Command{
		Use:   "synonyms",
		Short: "Print the default synonym map or check a synonym file",
		Long: "Print the built-in synonym map as JSON or YAML, a starting point for a custom --synonyms file. " +
			"With --check, validate a synonym file and report entries that would be ignored.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSynonyms(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVar(&opts.check, "check", "", "Validate this synonym file instead of printing the defaults")

	return cmd
}

func runSynonyms(cmd *cobra.Command, opts *synonymsOptions) error {
	var format synonyms.Format
	switch opts.format {
	case "json":
		format = synonyms.FormatJSON
	case "yaml", "yml":
		format = synonyms.FormatYAML
	default:
		return fmt.Errorf("unsupported format %q (want json or yaml)", opts.format)
	}

	if opts.check != "" {
		set, err := synonyms.Load(opts.check)
		var invalid *synonyms.InvalidEntriesError
		switch {
		case err == nil:
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d skills, all valid\n", opts.check, len(set))
			return nil
		case errors.As(err, &invalid):
			return fmt.Errorf("%s: %d valid skills; %w", opts.check, len(set), err)
		default:
			return err
		}
	}

	out, err := synonyms.Marshal(synonyms.Default(), format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
