package atomcss

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  <div class=\"p-2\">",
			column:     15,
			want:       "              ^", // 14 spaces + caret
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t<button class=\"p-2\">",
			column:     17,
			want:       "\t\t              ^", // 2 tabs + 14 spaces + caret
		},
		{
			name:       "start of line",
			sourceLine: "class=\"p-2\"",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^", // Pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reporter.buildCaretIndicator(tt.sourceLine, tt.column)
			require.Equal(t, tt.want, got)
		})
	}
}

func sampleIssues() []Issue {
	return []Issue{
		{
			FromLinter:  LinterName,
			Text:        `unknown utility "nope"`,
			Severity:    SeverityInfo,
			Category:    CheckUnknown,
			SourceLines: []string{`<div class="p-2 nope">`},
			Pos:         IssuePos{Filename: "b.templ", Line: 3, Column: 17},
		},
		{
			FromLinter:  LinterName,
			Text:        `conflicting utilities "p-2", "p-4" (padding); use "p-4"`,
			Severity:    SeverityWarning,
			Category:    CheckConflict,
			SourceLines: []string{`<div class="p-2 p-4">`},
			Pos:         IssuePos{Filename: "a.templ", Line: 1, Column: 13},
		},
	}
}

func TestReporter_PrintIssues(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, LintConfig{PrintIssuedLines: true, PrintLinterName: true})
	reporter.useColors = false

	issues := sampleIssues()
	reporter.PrintIssues(issues)

	want := "a.templ:1:13: conflicting utilities \"p-2\", \"p-4\" (padding); use \"p-4\" (atomcss)\n" +
		"\t<div class=\"p-2 p-4\">\n" +
		"\t            ^\n" +
		"b.templ:3:17: unknown utility \"nope\" (atomcss)\n" +
		"\t<div class=\"p-2 nope\">\n" +
		"\t                ^\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, "b.templ", issues[0].Pos.Filename, "input order is left alone")
}

func TestReporter_PrintIssuesSuggestedClass(t *testing.T) {
	issue := sampleIssues()[1]
	issue.Replacement = &Replacement{NewText: "p-4", InlineLength: len("p-2 p-4")}

	tests := []struct {
		name       string
		printLines bool
		want       string
	}{
		{
			name:       "with source lines",
			printLines: true,
			want: "a.templ:1:13: conflicting utilities \"p-2\", \"p-4\" (padding); use \"p-4\"\n" +
				"\t<div class=\"p-2 p-4\">\n" +
				"\t            ^\n" +
				"\tsuggested class: \"p-4\"\n",
		},
		{
			name: "compact omits the fix",
			want: "a.templ:1:13: conflicting utilities \"p-2\", \"p-4\" (padding); use \"p-4\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reporter := NewReporter(&buf, LintConfig{PrintIssuedLines: tt.printLines})
			reporter.useColors = false

			reporter.PrintIssues([]Issue{issue})
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestReporter_PrintIssuesCompact(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf, LintConfig{})
	reporter.useColors = false

	reporter.PrintIssues(sampleIssues()[:1])
	assert.Equal(t, "b.templ:3:17: unknown utility \"nope\"\n", buf.String())
}

func TestReporter_PrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		result LintResult
		want   []string
	}{
		{
			name:   "no issues",
			result: LintResult{},
			want:   []string{"0 issues:"},
		},
		{
			name:   "by check",
			result: LintResult{Issues: sampleIssues()},
			want:   []string{"2 issues:", "* conflict: 1", "* unknown: 1", "Hint:"},
		},
		{
			name: "errors and warnings",
			result: LintResult{
				Issues: append(sampleIssues(), Issue{Severity: SeverityError, Category: CheckToken}),
			},
			want: []string{"3 issues (1 error, 1 warning):"},
		},
		{
			name:   "truncated",
			result: LintResult{Issues: sampleIssues()[:1], TruncatedCount: 4},
			want:   []string{"1 issue (4 issues truncated):"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reporter := NewReporter(&buf, LintConfig{})
			reporter.useColors = false

			reporter.PrintSummary(tt.result)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestVerboseReporter(t *testing.T) {
	result := LintResult{
		FilesScanned:       2,
		ClassStrings:       4,
		TokensFound:        10,
		KnownTokens:        8,
		UnknownTokens:      2,
		Conflicts:          1,
		CoveragePercentage: 80,
		Warnings:           []string{"design token colors.a: reference cycle"},
		QuickWins: QuickWinsSummary{
			Conflicts: []QuickWin{{ClassName: "p-2 p-4", Occurrences: 3, Suggestion: "p-4"}},
			Unknown:   []QuickWin{{ClassName: "nope", Occurrences: 1}},
		},
	}

	var buf bytes.Buffer
	reporter := NewVerboseReporter(&buf, false)
	reporter.PrintStatistics(result)
	reporter.PrintCoverage(result)
	reporter.PrintQuickWins(result)
	reporter.PrintWarnings(result)

	out := buf.String()
	assert.Contains(t, out, "Compiled:           8 (80.0%)")
	assert.Contains(t, out, "["+strings.Repeat("█", 16)+strings.Repeat("░", 4)+"] 80.0%")
	assert.Contains(t, out, `1. "p-2 p-4" - 3 occurrences → Use "p-4"`)
	assert.Contains(t, out, `1. "nope" - 1 occurrence`)
	assert.Contains(t, out, "• design token colors.a: reference cycle")
}

func TestVerboseReporter_EmptySections(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewVerboseReporter(&buf, false)
	reporter.PrintQuickWins(LintResult{})
	reporter.PrintWarnings(LintResult{})
	assert.Empty(t, buf.String())
}

func TestRenderStyle(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleRed, "plain", false))
}
