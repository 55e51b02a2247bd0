package atomcss

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string        `json:"version"`
	Timestamp string        `json:"timestamp"`
	Summary   JSONSummary   `json:"summary"`
	Stats     JSONStats     `json:"stats"`
	Issues    []JSONIssue   `json:"issues"`
	QuickWins JSONQuickWins `json:"quick_wins"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains utility coverage statistics
type JSONStats struct {
	ClassStrings       int     `json:"class_strings"`
	TokensFound        int     `json:"tokens_found"`
	KnownTokens        int     `json:"known_tokens"`
	UnknownTokens      int     `json:"unknown_tokens"`
	Conflicts          int     `json:"conflicts"`
	CoveragePercentage float64 `json:"coverage_percentage"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File        string `json:"file"`
	Line        int    `json:"line"`
	Column      int    `json:"column"`
	Severity    string `json:"severity"`
	Category    string `json:"category"`
	Message     string `json:"message"`
	Linter      string `json:"linter"`
	Source      string `json:"source,omitempty"`      // Optional source line
	Replacement string `json:"replacement,omitempty"` // Merged class string
}

// JSONQuickWins contains cleanup opportunities
type JSONQuickWins struct {
	Conflicts []JSONQuickWin `json:"conflicts"`
	Unknown   []JSONQuickWin `json:"unknown"`
}

// JSONQuickWin represents a high-impact cleanup opportunity
type JSONQuickWin struct {
	Class       string `json:"class"`
	Occurrences int    `json:"occurrences"`
	Suggestion  string `json:"suggestion,omitempty"`
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult) JSONOutput {
	var errors, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		replacement := ""
		if issue.Replacement != nil {
			replacement = issue.Replacement.NewText
		}
		jsonIssues[i] = JSONIssue{
			File:        issue.Pos.Filename,
			Line:        issue.Pos.Line,
			Column:      issue.Pos.Column,
			Severity:    issue.Severity,
			Category:    issue.Category,
			Message:     issue.Text,
			Linter:      issue.FromLinter,
			Source:      source,
			Replacement: replacement,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			ClassStrings:       result.ClassStrings,
			TokensFound:        result.TokensFound,
			KnownTokens:        result.KnownTokens,
			UnknownTokens:      result.UnknownTokens,
			Conflicts:          result.Conflicts,
			CoveragePercentage: result.CoveragePercentage,
		},
		Issues: jsonIssues,
		QuickWins: JSONQuickWins{
			Conflicts: jsonQuickWins(result.QuickWins.Conflicts),
			Unknown:   jsonQuickWins(result.QuickWins.Unknown),
		},
	}
}

func jsonQuickWins(wins []QuickWin) []JSONQuickWin {
	out := make([]JSONQuickWin, len(wins))
	for i, win := range wins {
		out[i] = JSONQuickWin{
			Class:       win.ClassName,
			Occurrences: win.Occurrences,
			Suggestion:  win.Suggestion,
		}
	}
	return out
}
