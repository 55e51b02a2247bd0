package atomcss

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// LintConfig holds linting configuration
type LintConfig struct {
	// Patterns to scan (e.g., "internal/web/features/**/*.templ")
	ScanPaths []string `validate:"dive,required"`

	TokensFile    string // optional design-token file, checked for broken references
	TokenPrefix   string
	ReportUnknown bool // report utilities no rule matches
	Verbose       bool
	Strict        bool // Exit with code 1 if issues found

	// Minimum coverage percentage (for -strict mode)
	Threshold float64 `validate:"gte=0,lte=100"`

	// golangci-style configuration; 0 = unlimited (default)
	MaxIssuesPerLinter int `validate:"gte=0"`
	MaxSameIssues      int `validate:"gte=0"`

	ShowStats        bool // Show statistics summary (auto-enabled with Verbose)
	PrintIssuedLines bool // Show source lines with issues (default: true)
	PrintLinterName  bool // Show (atomcss) suffix (default: true)
	UseColors        bool // Enable color output (default: auto-detect)

	Logger *zap.Logger `validate:"-"`
}

// LintResult contains linting analysis results
type LintResult struct {
	// Issues in golangci-lint format
	Issues           []Issue            // All issues found
	IssuesByCategory map[string][]Issue // Grouped by check for stats

	// Statistics
	FilesScanned       int
	ClassStrings       int     // class strings found in sources
	TokensFound        int     // utility token occurrences
	KnownTokens        int     // occurrences that compile
	UnknownTokens      int     // occurrences no rule matches
	Conflicts          int     // class strings with at least one conflict
	CoveragePercentage float64 // KnownTokens / TokensFound
	ErrorCount         int     // Issues with error severity
	TruncatedCount     int     // Issues removed due to limits

	// Summary
	Warnings    []string
	Suggestions []string
	QuickWins   QuickWinsSummary // Most frequent conflicts and unknown utilities
}

// QuickWin represents a high-impact cleanup opportunity
type QuickWin struct {
	ClassName   string // "p-2 p-4"
	Occurrences int    // 45
	Suggestion  string // "p-4"
}

// QuickWinsSummary groups quick wins by kind
type QuickWinsSummary struct {
	Conflicts []QuickWin // class strings Merge would shorten
	Unknown   []QuickWin // utilities no rule matches
}

// Lint scans sources for class strings and reports conflicting utilities,
// unknown utilities and broken design tokens.
func Lint(config LintConfig) (*LintResult, error) {
	if err := checkConfig(config); err != nil {
		return nil, err
	}

	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// Step 1: Build the compiler
	compiler, err := NewCompiler(CompilerOptions{
		TokensFile:  config.TokensFile,
		TokenPrefix: config.TokenPrefix,
		Logger:      log,
	})
	if err != nil {
		return nil, fmt.Errorf("compiler setup failed: %w", err)
	}

	// Step 2: Scan files for class references
	references, stats, err := ScanFiles(config.ScanPaths, log)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}

	// Step 3: Analyze
	result := analyzeReferences(compiler, references, config.ReportUnknown)
	result.FilesScanned = stats.FilesScanned

	tokenIssues := checkTokens(compiler, config.TokensFile)
	for _, issue := range tokenIssues {
		result.Warnings = append(result.Warnings, issue.Text)
	}
	result.Issues = append(tokenIssues, result.Issues...)

	result.IssuesByCategory = make(map[string][]Issue)
	for _, issue := range result.Issues {
		result.IssuesByCategory[issue.Category] = append(result.IssuesByCategory[issue.Category], issue)
		if issue.Severity == SeverityError {
			result.ErrorCount++
		}
	}

	log.Debug("lint finished",
		zap.Int("issues", len(result.Issues)),
		zap.Int("conflicts", result.Conflicts),
		zap.Int("unknown", result.UnknownTokens))

	// Step 4: Generate suggestions
	result.Suggestions = generateSuggestions(result)

	// Step 5: Apply issue limiting if configured
	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	return result, nil
}

// analyzeReferences checks every class string for conflicts and unknown
// utilities.
func analyzeReferences(c *Compiler, refs []ClassReference, reportUnknown bool) *LintResult {
	result := &LintResult{ClassStrings: len(refs)}

	conflictFreq := make(map[string]int)
	unknownFreq := make(map[string]int)
	suggestions := make(map[string]string)

	for _, ref := range refs {
		tokens := ref.Tokens()
		for _, token := range tokens {
			result.TokensFound++
			if c.Known(token) {
				result.KnownTokens++
				continue
			}
			result.UnknownTokens++
			unknownFreq[token]++
			suggestions[token] = ""
			if reportUnknown {
				result.Issues = append(result.Issues, Issue{
					FromLinter:  LinterName,
					Text:        fmt.Sprintf(IssueUnknown, token),
					Severity:    SeverityInfo,
					Category:    CheckUnknown,
					SourceLines: []string{ref.Location.Text},
					Pos:         tokenPos(ref, token),
				})
			}
		}

		conflicts := c.Conflicts(ref.FullClassValue)
		if len(conflicts) == 0 {
			continue
		}
		result.Conflicts++

		merged := c.Merge(ref.FullClassValue)
		conflictFreq[ref.FullClassValue]++
		suggestions[ref.FullClassValue] = merged

		winners := lastByKey(c, tokens)
		keys := make([]string, 0, len(conflicts))
		for key := range conflicts {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			dropped := conflicts[key]
			involved := append(append([]string{}, dropped...), winners[key])
			result.Issues = append(result.Issues, Issue{
				FromLinter:  LinterName,
				Text:        fmt.Sprintf(IssueConflict, quoteList(involved), key, merged),
				Severity:    SeverityWarning,
				Category:    CheckConflict,
				SourceLines: []string{ref.Location.Text},
				Pos:         tokenPos(ref, dropped[0]),
				Replacement: &Replacement{
					NewText:      merged,
					InlineLength: len(ref.FullClassValue),
				},
			})
		}
	}

	if result.TokensFound > 0 {
		result.CoveragePercentage = float64(result.KnownTokens) / float64(result.TokensFound) * 100
	}

	result.QuickWins = QuickWinsSummary{
		Conflicts: sortByFrequency(conflictFreq, suggestions),
		Unknown:   sortByFrequency(unknownFreq, suggestions),
	}
	return result
}

// checkTokens turns design-token validation problems into issues.
func checkTokens(c *Compiler, tokensFile string) []Issue {
	filename := tokensFile
	if filename == "" {
		filename = "<preset>"
	}

	var issues []Issue
	for _, problem := range c.Tokens().Validate() {
		issues = append(issues, Issue{
			FromLinter: LinterName,
			Text:       fmt.Sprintf(IssueInvalidToken, problem),
			Severity:   SeverityError,
			Category:   CheckToken,
			Pos:        IssuePos{Filename: filename},
		})
	}
	return issues
}

// lastByKey maps each conflict key to the last token that claims it.
func lastByKey(c *Compiler, tokens []string) map[string]string {
	last := make(map[string]string)
	for _, token := range tokens {
		if key, ok := c.merger.Key(token); ok {
			last[key] = token
		}
	}
	return last
}

// tokenPos points at token inside the class string of ref.
func tokenPos(ref ClassReference, token string) IssuePos {
	col := ref.Location.Column
	if idx := indexToken(ref.FullClassValue, token); idx > 0 {
		col += idx
	}
	return IssuePos{
		Filename: ref.Location.File,
		Line:     ref.Location.Line,
		Column:   col,
	}
}

func quoteList(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, t := range tokens {
		quoted[i] = strconv.Quote(t)
	}
	return strings.Join(quoted, ", ")
}

// sortByFrequency converts frequency map to sorted QuickWin slice
func sortByFrequency(freq map[string]int, suggestions map[string]string) []QuickWin {
	var wins []QuickWin

	for className, count := range freq {
		wins = append(wins, QuickWin{
			ClassName:   className,
			Occurrences: count,
			Suggestion:  suggestions[className],
		})
	}

	// Sort by occurrences (descending), then name for stable output
	sort.Slice(wins, func(i, j int) bool {
		if wins[i].Occurrences != wins[j].Occurrences {
			return wins[i].Occurrences > wins[j].Occurrences
		}
		return wins[i].ClassName < wins[j].ClassName
	})

	// Limit to top 10
	if len(wins) > 10 {
		wins = wins[:10]
	}

	return wins
}

// generateSuggestions creates actionable suggestions based on lint results
func generateSuggestions(result *LintResult) []string {
	var suggestions []string

	if result.Conflicts > 0 {
		suggestions = append(suggestions, "Collapse conflicting utilities with atomcss.Merge or apply the suggested class strings")
	}

	if result.UnknownTokens > 0 {
		suggestions = append(suggestions, "Add rules for unknown utilities or fix typos (see Quick Wins below)")
	}

	if result.TokensFound > 0 && result.CoveragePercentage < 80 {
		suggestions = append(suggestions, "Low coverage detected - most class tokens will not produce CSS")
	}

	return suggestions
}

// printProgressBar prints a visual progress bar
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	// Apply max-issues-per-linter
	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	// Apply max-same-issues (deduplication by message text)
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	truncatedCount := originalCount - len(issues)
	return issues, truncatedCount
}

// deduplicateSameIssues keeps at most maxSame issues per message text
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
