// Package main provides the jd_matcher CLI: skill extraction from job descriptions
// and batch scoring of resumes against them.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nishachandar-bit/jd-resume-matcher/internal/config"
	"github.com/nishachandar-bit/jd-resume-matcher/internal/logging"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{})
}

// newRootCmdFor builds the command tree around a. A preset a.logger is kept.
func newRootCmdFor(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "jd_matcher",
		Short: "Match resumes against the skills a job description asks for",
		Long: "jd_matcher extracts skills and minimum years of experience from a job description, " +
			"then scores a batch of resumes by skill presence and tenure.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a JSON or YAML match config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: console or json (overrides config)")

	root.AddCommand(newExtractSkillsCmd(a))
	root.AddCommand(newMatchCmd(a))
	root.AddCommand(newSynonymsCmd(a))
	return root
}

// setup loads the configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = *cfg

	if a.logger == nil {
		logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return err
		}
		a.logger = logger
	}
	return nil
}

func main() {
	_ = config.LoadEnvFile()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
