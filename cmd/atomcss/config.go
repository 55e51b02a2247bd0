package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/atomcss"
)

const defaultConfigFile = ".atomcss.yaml"

var k = koanf.New(".")

// Defaults shared by generate and lint.
var (
	defaultSourcePaths = []string{
		"internal/**/*.templ",
		"internal/**/*.go",
	}
	defaultOutputFile = "web/static/atoms.css"
)

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Without a koanf instance the
	// provider only reads flags the user set, so flag defaults never
	// shadow values from the file or the environment.
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", nil), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (ATOMCSS_* prefix)
	if err := k.Load(env.Provider("ATOMCSS_", ".", func(s string) string {
		// ATOMCSS_GENERATE_OUTPUT -> generate.output
		// ATOMCSS_LINT_STRICT -> lint.strict
		// ATOMCSS_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "ATOMCSS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig() atomcss.Config {
	// Compiler keys (tokens, token-prefix, dark-mode) are top-level in the
	// file; generate-only keys live under generate.
	return atomcss.Config{
		SourcePaths: sourcePaths(),
		OutputFile:  getStringWithFallback("output", "generate.output", defaultOutputFile),
		TokensFile:  getStringWithFallback("tokens", "tokens", ""),
		TokenPrefix: getStringWithFallback("token-prefix", "token-prefix", ""),
		DarkMode:    getStringWithFallback("dark-mode", "dark-mode", "class"),
		Variables:   getBoolWithFallback("variables", "generate.variables", false),
		Verbose:     getBoolWithFallback("verbose", "verbose", false),
	}
}

// buildLintConfig constructs the library's LintConfig struct from koanf state.
func buildLintConfig() atomcss.LintConfig {
	// Lint scans the generate sources unless it has paths of its own
	scanPaths := sourcePaths()
	if paths := k.Strings("paths"); len(paths) > 0 {
		scanPaths = paths
	} else if paths := k.Strings("lint.paths"); len(paths) > 0 {
		scanPaths = paths
	}

	return atomcss.LintConfig{
		ScanPaths:          scanPaths,
		TokensFile:         getStringWithFallback("tokens", "tokens", ""),
		TokenPrefix:        getStringWithFallback("token-prefix", "token-prefix", ""),
		ReportUnknown:      getBoolWithFallback("report-unknown", "lint.report-unknown", true),
		Verbose:            getBoolWithFallback("verbose", "verbose", false),
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		Threshold:          getFloat64WithFallback("threshold", "lint.threshold", 0.0),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		ShowStats:          true, // the output format decides what is printed
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
	}
}

// sourcePaths returns the generate globs: flag, then config file, then defaults.
func sourcePaths() []string {
	if paths := k.Strings("source-paths"); len(paths) > 0 {
		return paths
	}
	if paths := k.Strings("generate.source-paths"); len(paths) > 0 {
		return paths
	}
	return append([]string(nil), defaultSourcePaths...)
}

// buildCompilerOptions collects the compiler settings shared by every command.
func buildCompilerOptions() (atomcss.CompilerOptions, error) {
	darkMode, err := atomcss.ParseDarkMode(getStringWithFallback("dark-mode", "dark-mode", "class"))
	if err != nil {
		return atomcss.CompilerOptions{}, err
	}
	return atomcss.CompilerOptions{
		TokensFile:  getStringWithFallback("tokens", "tokens", ""),
		TokenPrefix: getStringWithFallback("token-prefix", "token-prefix", ""),
		DarkMode:    darkMode,
	}, nil
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getFloat64WithFallback checks the flag key first, then the config file key, then returns the default.
func getFloat64WithFallback(flagKey, configKey string, defaultVal float64) float64 {
	if k.Exists(flagKey) {
		return k.Float64(flagKey)
	}
	if k.Exists(configKey) {
		return k.Float64(configKey)
	}
	return defaultVal
}
