package atomcss

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

// ClassReference represents a class string found in source code
type ClassReference struct {
	FullClassValue string       // Full attribute: "px-2 py-1 md:px-4"
	Location       FileLocation // Where it was found
	LineContent    string       // The full line for context
	Source         string       // Which pattern found it: "class attribute"
}

// Tokens splits the class string into utility tokens.
func (r ClassReference) Tokens() []string {
	return strings.Fields(r.FullClassValue)
}

// FileLocation tracks where a class reference was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column (exact start of class string)
	Text   string // Full line content, untrimmed so columns line up
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// scanPattern represents a regex pattern for finding class strings
type scanPattern struct {
	name  string
	regex *regexp.Regexp
}

// callPattern matches a call whose string arguments are class strings.
type callPattern struct {
	name      string
	regex     *regexp.Regexp
	firstOnly bool // templ.KV: only the key is a class
}

var (
	// Ordered from most specific to least specific
	patterns = []scanPattern{
		{
			name:  "class attribute",
			regex: regexp.MustCompile(`class="([^"]+)"`),
		},
		{
			name:  "class attribute",
			regex: regexp.MustCompile(`class='([^']+)'`),
		},
		{
			name:  "class expression",
			regex: regexp.MustCompile(`class=\{\s*"([^"]+)"`),
		},
	}

	// Calls with comma-separated arguments, checked before the patterns.
	callPatterns = []callPattern{
		{name: "templ.Classes", regex: regexp.MustCompile(`templ\.Classes\(([^)]+)\)`)},
		{name: "templ.KV", regex: regexp.MustCompile(`templ\.KV\(([^)]+)\)`), firstOnly: true},
		{name: "Merge call", regex: regexp.MustCompile(`\b(?:atomcss|ui)\.(?:Merge|CSS)\(([^)]+)\)`)},
	}

	// Comment patterns to skip
	commentPattern = regexp.MustCompile(`^\s*//`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isTemplGenerated checks if a file is a templ-generated Go file
// Handles both _templ.go and .templ.go suffix variations
func isTemplGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go")
}

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a file should be excluded from scanning
//
// Two-layer filtering:
// 1. Pattern check (fast): Skip *_templ.go files
// 2. Gitignore check: Skip gitignored files (only for relative paths)
func shouldSkipFile(path string) bool {
	if isTemplGenerated(path) {
		return true
	}

	// Absolute paths (like /tmp/...) are outside the project gitignore
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanFiles scans files matching the given patterns for class strings
func ScanFiles(scanPatterns []string, log *zap.Logger) ([]ClassReference, ScanStats, error) {
	if log == nil {
		log = zap.NewNop()
	}

	files, stats, err := expandGlobPatternsWithStats(scanPatterns)
	if err != nil {
		return nil, stats, err
	}

	log.Debug("scanning sources",
		zap.Int("files", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped))

	var allRefs []ClassReference
	for _, file := range files {
		refs, err := scanFile(file)
		if err != nil {
			log.Warn("skipping unreadable file", zap.String("file", file), zap.Error(err))
			continue
		}
		allRefs = append(allRefs, refs...)
	}

	return allRefs, stats, nil
}

// expandGlobPatterns expands glob patterns to actual file paths
func expandGlobPatterns(patterns []string) ([]string, error) {
	files, _, err := expandGlobPatternsWithStats(patterns)
	return files, err
}

// expandGlobPatternsWithStats expands globs and tracks statistics
func expandGlobPatternsWithStats(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single file for class strings
func scanFile(filePath string) ([]ClassReference, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []ClassReference
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		refs = append(refs, extractClassesFromLine(scanner.Text(), lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

// findClassColumn locates the exact column where className starts within line
// For multi-class strings like "p-2 p-4", finds the first token
func findClassColumn(line string, fullClassString string) int {
	tokens := strings.Fields(fullClassString)
	searchTarget := fullClassString
	if len(tokens) > 0 {
		searchTarget = tokens[0]
	}

	// Strategy 1: Look for the class name in a class= attribute first
	classAttrIdx := strings.Index(line, "class=")
	if classAttrIdx != -1 {
		quoteIdx := strings.IndexAny(line[classAttrIdx:], `"'`)
		if quoteIdx != -1 {
			searchStart := classAttrIdx + quoteIdx + 1

			classesStr := line[searchStart:]
			endQuote := strings.IndexAny(classesStr, `"'`)
			if endQuote != -1 {
				classesStr = classesStr[:endQuote]
			}

			if idx := indexToken(classesStr, searchTarget); idx != -1 {
				return searchStart + idx + 1 // 1-based column
			}
		}
	}

	// Strategy 2: Search for pattern in quotes
	if idx := strings.Index(line, `"`+searchTarget); idx != -1 {
		return idx + 2 // +1 for 1-based, +1 to skip quote
	}

	// Strategy 3: Direct search
	if idx := strings.Index(line, searchTarget); idx != -1 {
		return idx + 1
	}

	return 0
}

// indexToken finds token as a whole whitespace-separated word in s.
func indexToken(s, token string) int {
	offset := 0
	for {
		idx := strings.Index(s[offset:], token)
		if idx == -1 {
			return -1
		}
		start := offset + idx
		end := start + len(token)
		before := start == 0 || s[start-1] == ' ' || s[start-1] == '\t'
		after := end == len(s) || s[end] == ' ' || s[end] == '\t'
		if before && after {
			return start
		}
		offset = start + 1
	}
}

// extractClassesFromLine extracts all class strings from a line
func extractClassesFromLine(line string, lineNum int, file string) []ClassReference {
	if commentPattern.MatchString(line) {
		return nil
	}

	var refs []ClassReference
	handledCall := false

	for _, call := range callPatterns {
		for _, match := range call.regex.FindAllStringSubmatchIndex(line, -1) {
			if len(match) < 4 {
				continue
			}
			handledCall = true

			args := splitTemplArgs(line[match[2]:match[3]])
			if call.firstOnly && len(args) > 1 {
				args = args[:1]
			}
			refs = append(refs, parseTemplArguments(args, call.name, lineNum, file, line)...)
		}
	}

	// Calls already contributed their string arguments; matching the
	// attribute patterns again would report them twice.
	if handledCall {
		return refs
	}

	for _, pattern := range patterns {
		for _, match := range pattern.regex.FindAllStringSubmatchIndex(line, -1) {
			if len(match) < 4 {
				continue
			}

			captured := line[match[2]:match[3]]
			refs = append(refs, ClassReference{
				FullClassValue: captured,
				Location: FileLocation{
					File:   file,
					Line:   lineNum,
					Column: match[2] + 1, // 1-indexed start of the class string
					Text:   line,
				},
				LineContent: strings.TrimSpace(line),
				Source:      pattern.name,
			})
		}
	}

	return refs
}

// parseTemplArguments turns string-literal arguments into references.
// Non-literal arguments (variables, nested calls) are ignored.
func parseTemplArguments(args []string, source string, lineNum int, file string, fullLine string) []ClassReference {
	var refs []ClassReference

	for _, part := range args {
		part = strings.TrimSpace(part)
		if len(part) < 2 || !strings.HasPrefix(part, `"`) || !strings.HasSuffix(part, `"`) {
			continue
		}

		classStr := strings.Trim(part, `"`)
		if strings.TrimSpace(classStr) == "" {
			continue
		}
		refs = append(refs, ClassReference{
			FullClassValue: classStr,
			Location: FileLocation{
				File:   file,
				Line:   lineNum,
				Column: strings.Index(fullLine, part) + 2,
				Text:   fullLine,
			},
			LineContent: strings.TrimSpace(fullLine),
			Source:      source,
		})
	}

	return refs
}

// splitTemplArgs splits comma-separated arguments, ignoring commas inside
// parentheses and string literals
func splitTemplArgs(s string) []string {
	var parts []string
	var current strings.Builder
	parenDepth := 0
	inString := false

	for _, r := range s {
		switch {
		case r == '"':
			inString = !inString
			current.WriteRune(r)
		case inString:
			current.WriteRune(r)
		case r == '(':
			parenDepth++
			current.WriteRune(r)
		case r == ')':
			parenDepth--
			current.WriteRune(r)
		case r == ',' && parenDepth == 0:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
