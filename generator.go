package atomcss

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/yacobolo/atomcss/internal/engine"
)

// generatedHeader marks the stylesheet as tool output.
const generatedHeader = "/* Code generated by atomcss. DO NOT EDIT. */\n"

// Generate is the main entry point: scan sources, compile every utility
// they use and write the stylesheet.
func Generate(config Config) (*GenerateResult, error) {
	if err := checkConfig(config); err != nil {
		return nil, err
	}

	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	result := &GenerateResult{}

	// 1. Build the compiler
	darkMode, err := ParseDarkMode(config.DarkMode)
	if err != nil {
		return nil, err
	}
	compiler, err := NewCompiler(CompilerOptions{
		TokensFile:  config.TokensFile,
		TokenPrefix: config.TokenPrefix,
		DarkMode:    darkMode,
		Logger:      log,
	})
	if err != nil {
		return nil, fmt.Errorf("compiler setup failed: %w", err)
	}

	// 2. Scan source files
	refs, stats, err := ScanFiles(config.SourcePaths, log)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = stats.FilesScanned
	result.FilesSkipped = stats.FilesSkipped
	result.ClassStrings = len(refs)

	// 3. Collect unique tokens in first-seen order
	tokens := collectTokens(refs)
	result.TokensFound = len(tokens)

	// 4. Compile
	decls := compiler.Declarations(tokens...)
	result.Utilities = len(decls)
	result.Categories = categorizeDeclarations(decls)
	result.Unknown = unknownTokens(tokens, decls)

	log.Debug("compiled utilities",
		zap.Int("tokens", result.TokensFound),
		zap.Int("utilities", result.Utilities),
		zap.Int("unknown", len(result.Unknown)))

	// 5. Render
	var b strings.Builder
	b.WriteString(generatedHeader)
	if config.Variables {
		if vars := compiler.Variables(""); vars != "" {
			b.WriteString(vars)
		}
	}
	b.WriteString(engine.Render(decls))
	result.CSS = b.String()

	for _, problem := range compiler.Tokens().Validate() {
		result.Warnings = append(result.Warnings, "design token "+problem)
	}

	// 6. Write
	if config.OutputFile == "" {
		return result, nil
	}
	written, err := writeIfChanged(config.OutputFile, []byte(result.CSS))
	if err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}
	result.Written = written

	return result, nil
}

// collectTokens flattens class strings into unique tokens, keeping the
// order in which they were first seen.
func collectTokens(refs []ClassReference) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, ref := range refs {
		for _, token := range ref.Tokens() {
			if !seen[token] {
				seen[token] = true
				tokens = append(tokens, token)
			}
		}
	}
	return tokens
}

// unknownTokens returns the tokens without a declaration, sorted.
func unknownTokens(tokens []string, decls []*Declaration) []string {
	compiled := make(map[string]bool, len(decls))
	for _, d := range decls {
		compiled[d.Token] = true
	}

	var unknown []string
	for _, token := range tokens {
		if !compiled[token] {
			unknown = append(unknown, token)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// writeIfChanged writes data to path unless the file already holds it.
func writeIfChanged(path string, data []byte) (bool, error) {
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, data) {
		return false, nil
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, err
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
