package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".atomcss.yaml")
	configContent := `
verbose: true
tokens: design/tokens.yaml
dark-mode: media

generate:
  output: custom/atoms.css
  variables: true

lint:
  strict: true
  threshold: 80.0
  paths:
    - "custom/**/*.templ"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "design/tokens.yaml", k.String("tokens"))
	assert.Equal(t, "media", k.String("dark-mode"))
	assert.Equal(t, "custom/atoms.css", k.String("generate.output"))
	assert.True(t, k.Bool("generate.variables"))
	assert.True(t, k.Bool("lint.strict"))
	assert.InDelta(t, 80.0, k.Float64("lint.threshold"), 0.01)
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config; should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.atomcss.yaml"))

	config := buildGenerateConfig()
	assert.Equal(t, defaultSourcePaths, config.SourcePaths)
	assert.Equal(t, "web/static/atoms.css", config.OutputFile)
	assert.Equal(t, "class", config.DarkMode)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".atomcss.yaml")
	configContent := `
generate:
  output: from-file.css
lint:
  strict: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	// Set env vars that should override config file
	t.Setenv("ATOMCSS_GENERATE_OUTPUT", "from-env.css")
	t.Setenv("ATOMCSS_LINT_STRICT", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.Equal(t, "from-env.css", k.String("generate.output"))
	assert.True(t, k.Bool("lint.strict"))
	assert.Equal(t, "from-env.css", buildGenerateConfig().OutputFile)
}

func TestBuildGenerateConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildGenerateConfig()
	assert.Equal(t, []string{"internal/**/*.templ", "internal/**/*.go"}, config.SourcePaths)
	assert.Equal(t, "web/static/atoms.css", config.OutputFile)
	assert.Empty(t, config.TokensFile)
	assert.Empty(t, config.TokenPrefix)
	assert.Equal(t, "class", config.DarkMode)
	assert.False(t, config.Variables)
	assert.False(t, config.Verbose)
}

func TestBuildLintConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildLintConfig()
	assert.False(t, config.Strict)
	assert.InDelta(t, 0.0, config.Threshold, 0.01)
	assert.Equal(t, 0, config.MaxIssuesPerLinter)
	assert.True(t, config.ReportUnknown)
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintLinterName)
	assert.Equal(t, defaultSourcePaths, config.ScanPaths, "lint scans the generate sources")
}

func TestBuildGenerateConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".atomcss.yaml")
	configContent := `
tokens: tokens.json
token-prefix: ui
generate:
  source-paths:
    - "views/**/*.templ"
  output: gen/atoms.css
  variables: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildGenerateConfig()
	assert.Equal(t, []string{"views/**/*.templ"}, config.SourcePaths)
	assert.Equal(t, "gen/atoms.css", config.OutputFile)
	assert.Equal(t, "tokens.json", config.TokensFile)
	assert.Equal(t, "ui", config.TokenPrefix)
	assert.True(t, config.Variables)

	lint := buildLintConfig()
	assert.Equal(t, []string{"views/**/*.templ"}, lint.ScanPaths)
	assert.Equal(t, "tokens.json", lint.TokensFile)
}

func TestBuildLintConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".atomcss.yaml")
	configContent := `
lint:
  strict: true
  threshold: 75.5
  paths:
    - "src/**/*.go"
  max-issues-per-linter: 10
  print-lines: false
  report-unknown: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildLintConfig()
	assert.True(t, config.Strict)
	assert.InDelta(t, 75.5, config.Threshold, 0.01)
	assert.Equal(t, []string{"src/**/*.go"}, config.ScanPaths)
	assert.Equal(t, 10, config.MaxIssuesPerLinter)
	assert.False(t, config.PrintIssuedLines)
	assert.False(t, config.ReportUnknown)
}

func TestBuildCompilerOptions_InvalidDarkMode(t *testing.T) {
	resetKoanf()
	require.NoError(t, k.Set("dark-mode", "sometimes"))

	_, err := buildCompilerOptions()
	require.Error(t, err)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	chdir(t, t.TempDir())

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".atomcss.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "dark-mode: class")
	assert.Contains(t, string(data), "generate:")
	assert.Contains(t, string(data), "lint:")

	// the generated file loads cleanly and matches the built-in defaults
	resetKoanf()
	require.NoError(t, loadConfigFromPath(".atomcss.yaml"))
	assert.Equal(t, defaultSourcePaths, buildGenerateConfig().SourcePaths)
	assert.Equal(t, defaultOutputFile, buildGenerateConfig().OutputFile)
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile(".atomcss.yaml", []byte("existing"), 0o644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	chdir(t, t.TempDir())

	require.NoError(t, os.WriteFile(".atomcss.yaml", []byte("existing"), 0o644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".atomcss.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "dark-mode: class")
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := rootCmd
	cmd.SetOut(&buf)
	t.Cleanup(func() { cmd.SetOut(nil) })
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "atomcss dev\n", buf.String())
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))

	require.NoError(t, k.Set("config.key", "from-config"))
	assert.Equal(t, "from-config", getStringWithFallback("flag-key", "config.key", "default"))

	require.NoError(t, k.Set("flag-key", "from-flag"))
	assert.Equal(t, "from-flag", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}

func TestGetFloat64WithFallback(t *testing.T) {
	resetKoanf()

	assert.InDelta(t, 3.14, getFloat64WithFallback("flag-key", "config.key", 3.14), 0.01)
}
