package atomcss

import (
	"fmt"
	"io"
)

// DetermineOutputFormat selects the appropriate output format based on flags and environment
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit -quiet flag wins (exit code only)
	if quiet {
		return OutputIssues
	}

	// Known formats pass through; anything else falls back to the default
	switch OutputFormat(formatFlag) {
	case OutputIssues, OutputSummary, OutputFull, OutputJSON:
		return OutputFormat(formatFlag)
	}

	return DetermineDefaultOutputFormat()
}

// DetermineDefaultOutputFormat returns the default output format
// Following golangci-lint's UX: issues only by default
func DetermineDefaultOutputFormat() OutputFormat {
	return OutputIssues
}

// WriteOutput writes the lint result in the specified format. Only the JSON
// encoder can fail.
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) error {
	switch format {
	case OutputSummary:
		// Statistics and Quick Wins only (no individual issues)
		writeSections(NewVerboseReporter(w, shouldUseColors(config)), result)

	case OutputFull:
		// Issues first, then the sections summary shows
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
		writeSections(NewVerboseReporter(w, reporter.UseColors()), result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON report: %w", err)
		}

	default:
		// Issues only (golangci-lint format)
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}
	return nil
}

// writeSections prints the verbose report sections in display order.
func writeSections(v *VerboseReporter, result *LintResult) {
	v.PrintStatistics(*result)
	v.PrintCoverage(*result)
	v.PrintQuickWins(*result)
	v.PrintWarnings(*result)
}
