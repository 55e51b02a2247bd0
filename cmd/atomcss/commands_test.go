package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yacobolo/atomcss"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetKoanf()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	t.Cleanup(func() { rootCmd.SetOut(nil) })
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestMergeCommand(t *testing.T) {
	out, err := execute(t, "merge", "p-2 text-lg", "p-4")
	require.NoError(t, err)
	assert.Equal(t, "p-4 text-lg\n", out)
}

func TestCSSCommand(t *testing.T) {
	out, err := execute(t, "css", "p-4", "nope")
	require.NoError(t, err)
	assert.Equal(t, ".p-4 {\n  padding: 1rem;\n}\n", out)
}

func TestTokensCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "get follows references", args: []string{"tokens", "get", "colors.primary"}, want: "#2563eb\n"},
		{name: "var", args: []string{"tokens", "var", "colors.primary"}, want: "var(--colors-primary)\n"},
		{name: "var with fallback", args: []string{"tokens", "var", "radius.md", "4px"}, want: "var(--radius-md, 4px)\n"},
		{name: "validate preset", args: []string{"tokens", "validate"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestTokensCommands_Errors(t *testing.T) {
	_, err := execute(t, "tokens", "get", "colors.nope")
	require.Error(t, err)

	tokensFile := filepath.Join(t.TempDir(), "tokens.yaml")
	require.NoError(t, os.WriteFile(tokensFile, []byte("colors:\n  a: \"{colors.gone}\"\n"), 0o644))

	out, err := execute(t, "tokens", "validate", "--tokens", tokensFile)
	require.Error(t, err)
	assert.Contains(t, out, "colors.a")

	// --tokens is sticky on the shared root command
	require.NoError(t, rootCmd.PersistentFlags().Set("tokens", ""))
}

func TestLintGate(t *testing.T) {
	clean := &atomcss.LintResult{CoveragePercentage: 100}
	warnings := &atomcss.LintResult{Issues: []atomcss.Issue{{Severity: atomcss.SeverityWarning}}, CoveragePercentage: 100}
	errs := &atomcss.LintResult{Issues: []atomcss.Issue{{Severity: atomcss.SeverityError}}, ErrorCount: 1}
	lowCoverage := &atomcss.LintResult{CoveragePercentage: 50}

	tests := []struct {
		name   string
		result *atomcss.LintResult
		config atomcss.LintConfig
		fail   bool
	}{
		{name: "clean", result: clean},
		{name: "warnings pass the soft gate", result: warnings},
		{name: "errors fail the soft gate", result: errs, fail: true},
		{name: "strict fails on warnings", result: warnings, config: atomcss.LintConfig{Strict: true}, fail: true},
		{name: "strict threshold", result: lowCoverage, config: atomcss.LintConfig{Strict: true, Threshold: 80}, fail: true},
		{name: "threshold ignored without strict", result: lowCoverage, config: atomcss.LintConfig{Threshold: 80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := lintGate(tt.result, tt.config, true)
			if tt.fail {
				require.ErrorIs(t, err, errLintFailed)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestWatchRoots(t *testing.T) {
	config := atomcss.Config{
		SourcePaths: []string{"internal/**/*.templ", "internal/**/*.go", "views/*.templ"},
		TokensFile:  "design/tokens.yaml",
	}
	assert.Equal(t, []string{"internal", "views", "design"}, watchRoots(config))
}

func TestWatchMatcher(t *testing.T) {
	config := atomcss.Config{
		SourcePaths: []string{"internal/**/*.templ"},
		OutputFile:  "internal/static/atoms.css",
		TokensFile:  "tokens.yaml",
	}
	match := watchMatcher(config, zap.NewNop())

	assert.True(t, match("internal/views/page.templ"))
	assert.True(t, match("tokens.yaml"))
	assert.False(t, match("internal/views/page_templ.go"))
	assert.False(t, match("internal/static/atoms.css"))
}

func TestWatchAndGenerate(t *testing.T) {
	resetKoanf()
	require.NoError(t, k.Set("quiet", true))

	dir := t.TempDir()
	page := filepath.Join(dir, "views", "page.templ")
	require.NoError(t, os.MkdirAll(filepath.Dir(page), 0o755))
	require.NoError(t, os.WriteFile(page, []byte(`<div class="p-4">`), 0o644))
	output := filepath.Join(dir, "atoms.css")

	config := atomcss.Config{
		SourcePaths: []string{filepath.Join(dir, "views", "*.templ")},
		OutputFile:  output,
		Logger:      zap.NewNop(),
	}
	require.NoError(t, generateOnce(config))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- watchAndGenerate(ctx, config, zap.NewNop()) }()

	// give the watcher time to register before editing
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(page, []byte(`<div class="p-4 m-2">`), 0o644))

	assert.Eventually(t, func() bool {
		data, err := os.ReadFile(output)
		return err == nil && bytes.Contains(data, []byte(".m-2 {"))
	}, 3*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "atomcss")

	_, err = execute(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestCompleteTokenPaths(t *testing.T) {
	resetKoanf()

	paths, directive := completeTokenPaths(tokensGetCmd, nil, "colors.prim")
	assert.Equal(t, []string{"colors.primary"}, paths)
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)

	paths, _ = completeTokenPaths(tokensGetCmd, []string{"colors.primary"}, "")
	assert.Empty(t, paths)
}
