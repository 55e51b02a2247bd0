package atomcss

import (
	"fmt"
	"io"
)

// VerboseReporter handles detailed statistics and suggestions
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed linting statistics
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Utility Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------")

	// Token counts are occurrences across all class strings, not unique utilities
	fmt.Fprintf(r.w, "Files Scanned:      %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Class Strings:      %d\n", result.ClassStrings)
	fmt.Fprintf(r.w, "Utility Tokens:     %d\n", result.TokensFound)
	fmt.Fprintf(r.w, "Compiled:           %d (%.1f%%)\n", result.KnownTokens, result.CoveragePercentage)
	fmt.Fprintf(r.w, "Unknown:            %d\n", result.UnknownTokens)
	fmt.Fprintf(r.w, "Conflicts:          %d\n", result.Conflicts)
}

// PrintCoverage shows the share of tokens that compile as a progress bar
func (r *VerboseReporter) PrintCoverage(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Coverage", r.useColors))
	fmt.Fprintln(r.w, "--------")
	printProgressBar(r.w, result.CoveragePercentage)
}

// PrintQuickWins shows the most frequent conflicts and unknown utilities
func (r *VerboseReporter) PrintQuickWins(result LintResult) {
	if len(result.QuickWins.Conflicts) == 0 && len(result.QuickWins.Unknown) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Quick Wins", r.useColors))
	fmt.Fprintln(r.w, "----------")

	// Conflicts first: each has a ready-made merged replacement
	if len(result.QuickWins.Conflicts) > 0 {
		fmt.Fprintln(r.w, "\nConflicting Class Strings (Direct Replace):")
		for i, win := range result.QuickWins.Conflicts {
			fmt.Fprintf(r.w, "%d. %q - %s → Use %q\n",
				i+1, win.ClassName, pluralizeCount(win.Occurrences, "occurrence", "occurrences"), win.Suggestion)
		}
	}

	if len(result.QuickWins.Unknown) > 0 {
		fmt.Fprintln(r.w, "\nUnknown Utilities (No CSS Generated):")
		for i, win := range result.QuickWins.Unknown {
			fmt.Fprintf(r.w, "%d. %q - %s\n",
				i+1, win.ClassName, pluralizeCount(win.Occurrences, "occurrence", "occurrences"))
		}
	}
}

// PrintWarnings shows linter warnings
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}
