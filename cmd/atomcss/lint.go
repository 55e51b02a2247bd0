package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/atomcss"
)

// errLintFailed signals a failed lint gate; the findings are already printed.
var errLintFailed = errors.New("lint failed")

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint utility class usage in Go/templ files",
	Long: `Check class strings in Go and templ files for conflicting utilities
(e.g. "p-2 p-4"), utilities no rule compiles and broken design-token
references.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		log := newLogger()
		defer func() { _ = log.Sync() }()
		return runLint(log)
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", nil, "File patterns to scan for class references (default: the generate source paths)")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Float64("threshold", 0.0, "Minimum coverage percentage for strict mode")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (atomcss) suffix on issues")
	f.Bool("report-unknown", true, "Report utilities that no rule compiles")
}

// runLint is shared between `atomcss lint` and `atomcss generate --lint`.
func runLint(log *zap.Logger) error {
	lintConfig := buildLintConfig()
	lintConfig.Logger = log

	lintResult, err := atomcss.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := atomcss.DetermineOutputFormat(outputFormat, quiet)

	// Quiet mode reports through the exit code only
	if !quiet {
		if err := atomcss.WriteOutput(os.Stdout, lintResult, format, lintConfig); err != nil {
			return err
		}
	}

	return lintGate(lintResult, lintConfig, quiet)
}

// lintGate applies the exit code policy. By default only errors fail
// ("soft gate"); strict mode fails on any issue or on low coverage.
func lintGate(result *atomcss.LintResult, config atomcss.LintConfig, quiet bool) error {
	if !config.Strict {
		if result.ErrorCount > 0 {
			return errLintFailed
		}
		return nil
	}

	if len(result.Issues) > 0 {
		return errLintFailed
	}

	if config.Threshold > 0 && result.CoveragePercentage < config.Threshold {
		if !quiet {
			fmt.Fprintf(os.Stderr, "\nStrict mode: coverage %.1f%% is below threshold %.1f%%\n",
				result.CoveragePercentage, config.Threshold)
		}
		return errLintFailed
	}

	return nil
}
