package atomcss

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "views", "page.templ"), `templ Page() {
	<div class="p-4 md:p-8 nope">
		<span class="p-4 rounded"></span>
	</div>
}
`)
	output := filepath.Join(dir, "static", "atoms.css")

	config := Config{
		SourcePaths: []string{filepath.Join(dir, "**", "*.templ")},
		OutputFile:  output,
	}

	result, err := Generate(config)
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 2, result.ClassStrings)
	assert.Equal(t, 4, result.TokensFound)
	assert.Equal(t, 3, result.Utilities)
	assert.Equal(t, []string{"nope"}, result.Unknown)
	assert.Equal(t, 2, result.Categories[CategorySpacing])
	assert.Equal(t, 1, result.Categories[CategoryVisual])
	assert.Empty(t, result.Warnings)
	assert.True(t, result.Written)

	assert.True(t, strings.HasPrefix(result.CSS, generatedHeader))
	assert.Equal(t, 1, strings.Count(result.CSS, ".p-4 {"))
	assert.Less(t, strings.Index(result.CSS, ".rounded {"), strings.Index(result.CSS, "@media (min-width: 768px)"),
		"responsive declarations come last")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, result.CSS, string(data))

	t.Run("unchanged output is not rewritten", func(t *testing.T) {
		again, err := Generate(config)
		require.NoError(t, err)
		assert.False(t, again.Written)
		assert.Equal(t, result.CSS, again.CSS)
	})

	t.Run("variables", func(t *testing.T) {
		withVars := config
		withVars.OutputFile = ""
		withVars.Variables = true
		withVars.TokenPrefix = "ui"

		res, err := Generate(withVars)
		require.NoError(t, err)
		assert.False(t, res.Written)
		assert.Contains(t, res.CSS, ":root {\n")
		assert.Contains(t, res.CSS, "  --ui-colors-primary: #2563eb;\n")
		assert.Less(t, strings.Index(res.CSS, ":root {"), strings.Index(res.CSS, ".p-4 {"))
	})
}

func TestGenerate_InvalidDarkMode(t *testing.T) {
	_, err := Generate(Config{DarkMode: "sometimes"})
	require.Error(t, err)
}

func TestGenerate_TokenWarnings(t *testing.T) {
	dir := t.TempDir()
	tokensFile := filepath.Join(dir, "tokens.yaml")
	writeFile(t, tokensFile, `colors:
  brand: "{colors.missing}"
`)
	writeFile(t, filepath.Join(dir, "page.templ"), `<div class="bg-brand p-2">`)

	result, err := Generate(Config{
		SourcePaths: []string{filepath.Join(dir, "*.templ")},
		TokensFile:  tokensFile,
	})
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "colors.brand")
	assert.Equal(t, []string{"bg-brand"}, result.Unknown, "unresolvable references drop the utility")
}

func TestWriteIfChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.css")

	written, err := writeIfChanged(path, []byte("a"))
	require.NoError(t, err)
	assert.True(t, written)

	written, err = writeIfChanged(path, []byte("a"))
	require.NoError(t, err)
	assert.False(t, written)

	written, err = writeIfChanged(path, []byte("b"))
	require.NoError(t, err)
	assert.True(t, written)
}
