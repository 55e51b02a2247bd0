package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/yacobolo/atomcss/internal/tokens"
)

var spacing = map[string]string{
	"0": "0px",
	"2": "0.5rem",
	"4": "1rem",
	"8": "2rem",
}

func testRules() RuleSet {
	return RuleSet{
		Static("rounded", Props("border-radius", "0.25rem")),
		Static("flex", Props("display", "flex")),
		Static("bg-brand", Properties{RefProp("background-color", "colors.brand")}),
		Static("bg-loop", Properties{RefProp("background-color", "colors.loop")}),
		Dynamic(`p-(.+)`, func(m Match) Properties {
			if v, ok := ArbitraryValue(m.Group(1)); ok {
				return Props("padding", v)
			}
			if v, ok := spacing[m.Group(1)]; ok {
				return Props("padding", v)
			}
			return nil
		}),
		Dynamic(`space-x-(?P<n>\d+)`, func(m Match) Properties {
			v, ok := spacing[m.Named("n")]
			if !ok {
				return nil
			}
			return Props("margin-left", v)
		}, WithSelector(func(s string) string {
			return s + " > :not([hidden]) ~ :not([hidden])"
		})),
		Dynamic(`w-(.+)`, func(m Match) Properties {
			v, ok := ArbitraryValue(m.Group(1))
			if !ok {
				return nil
			}
			return Props("width", v)
		}),
	}
}

func testTokens() *tokens.Resolver {
	return tokens.New(map[string]any{
		"colors": map[string]any{
			"base":  "#ff0000",
			"brand": tokens.Ref{Path: "colors.base"},
			"loop":  tokens.Ref{Path: "colors.other"},
			"other": tokens.Ref{Path: "colors.loop"},
		},
	})
}

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	if opts.Tokens == nil {
		opts.Tokens = testTokens()
	}
	eng, err := New(opts, testRules())
	require.NoError(t, err)
	return eng
}

func TestGenerate_RoundedEmittedOnce(t *testing.T) {
	eng := newTestEngine(t, Options{})

	css := eng.Generate([]string{"rounded", "rounded"})

	assert.Equal(t, ".rounded {\n  border-radius: 0.25rem;\n}\n", css)
	assert.Equal(t, 1, strings.Count(css, "border-radius: 0.25rem"))
}

func TestGenerate_BreakpointOrdering(t *testing.T) {
	eng := newTestEngine(t, Options{})

	css := eng.Generate([]string{"lg:p-8", "sm:p-4", "p-2"})

	want := ".p-2 {\n  padding: 0.5rem;\n}\n" +
		"@media (min-width: 640px) {\n  .sm\\:p-4 {\n    padding: 1rem;\n  }\n}\n" +
		"@media (min-width: 1024px) {\n  .lg\\:p-8 {\n    padding: 2rem;\n  }\n}\n"
	assert.Equal(t, want, css)
}

func TestGenerate_EmptyBracketDropped(t *testing.T) {
	eng := newTestEngine(t, Options{})

	css := eng.Generate([]string{"p-[]", "w-[]", "p-[_]"})

	assert.Empty(t, css)
	assert.NotContains(t, css, ": ;")
}

func TestGenerate_UnknownTokensDropped(t *testing.T) {
	eng := newTestEngine(t, Options{})

	css := eng.Generate([]string{"nope", "p-99", "wiggle:p-2", "flex"})

	assert.Equal(t, ".flex {\n  display: flex;\n}\n", css)
}

func TestGenerate_TokenReferences(t *testing.T) {
	eng := newTestEngine(t, Options{})

	t.Run("resolved through chain", func(t *testing.T) {
		d, ok := eng.Compile("bg-brand")
		require.True(t, ok)
		assert.Equal(t, []Property{{Name: "background-color", Value: "#ff0000"}}, d.Properties)
	})

	t.Run("cycle drops declaration", func(t *testing.T) {
		_, ok := eng.Compile("bg-loop")
		assert.False(t, ok)
		assert.Equal(t, ".flex {\n  display: flex;\n}\n", eng.Generate([]string{"bg-loop", "flex"}))
	})

	t.Run("no token source", func(t *testing.T) {
		bare, err := New(Options{}, testRules())
		require.NoError(t, err)
		_, ok := bare.Compile("bg-brand")
		assert.False(t, ok)
	})
}

func TestCompile_Variants(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		token    string
		selector string
		atRules  []string
		bucket   int
	}{
		{
			name:     "pseudo",
			token:    "hover:p-2",
			selector: `.hover\:p-2:hover`,
		},
		{
			name:     "stacked pseudo",
			token:    "focus:hover:p-2",
			selector: `.focus\:hover\:p-2:focus:hover`,
		},
		{
			name:     "dark class mode",
			token:    "dark:p-2",
			selector: `.dark .dark\:p-2`,
		},
		{
			name:     "custom dark selector",
			opts:     Options{DarkSelector: "[data-theme=dark]"},
			token:    "dark:hover:p-2",
			selector: `[data-theme=dark] .dark\:hover\:p-2:hover`,
		},
		{
			name:     "dark media mode",
			opts:     Options{DarkMode: DarkModeMedia},
			token:    "dark:p-2",
			selector: `.dark\:p-2`,
			atRules:  []string{"@media (prefers-color-scheme: dark)"},
		},
		{
			name:     "breakpoint with pseudo",
			token:    "md:hover:p-2",
			selector: `.md\:hover\:p-2:hover`,
			atRules:  []string{"@media (min-width: 768px)"},
			bucket:   2,
		},
		{
			name:     "leading digit breakpoint",
			token:    "2xl:p-2",
			selector: `.\32 xl\:p-2`,
			atRules:  []string{"@media (min-width: 1536px)"},
			bucket:   5,
		},
		{
			name:     "nested breakpoints bucket by largest",
			token:    "lg:sm:p-2",
			selector: `.lg\:sm\:p-2`,
			atRules:  []string{"@media (min-width: 1024px)", "@media (min-width: 640px)"},
			bucket:   3,
		},
		{
			name:     "selector transform runs on the pseudo compound",
			token:    "hover:space-x-4",
			selector: `.hover\:space-x-4:hover > :not([hidden]) ~ :not([hidden])`,
		},
		{
			name:     "arbitrary value with colon",
			token:    "md:w-[calc(100%_-_1rem)]",
			selector: `.md\:w-\[calc\(100\%_-_1rem\)\]`,
			atRules:  []string{"@media (min-width: 768px)"},
			bucket:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := newTestEngine(t, tt.opts)

			d, ok := eng.Compile(tt.token)
			require.True(t, ok)
			assert.Equal(t, tt.token, d.Token)
			assert.Equal(t, tt.selector, d.Selector)
			assert.Equal(t, tt.atRules, d.AtRules)
			assert.Equal(t, tt.bucket, d.Breakpoint)
		})
	}
}

func TestCompile_ArbitraryValueRendered(t *testing.T) {
	eng := newTestEngine(t, Options{})

	d, ok := eng.Compile("w-[calc(100%_-_1rem)]")
	require.True(t, ok)
	assert.Equal(t, "calc(100% - 1rem)", d.Properties[0].Value)

	_, ok = eng.Compile("w-[1px;color:red]")
	assert.False(t, ok)
}

func TestCompile_Memoized(t *testing.T) {
	calls := 0
	eng, err := New(Options{}, RuleSet{
		Dynamic(`m-(\d+)`, func(m Match) Properties {
			calls++
			if m.Group(1) == "0" {
				return nil
			}
			return Props("margin", m.Group(1)+"px")
		}),
	})
	require.NoError(t, err)

	first, ok := eng.Compile("m-4")
	require.True(t, ok)
	second, ok := eng.Compile("m-4")
	require.True(t, ok)
	assert.Same(t, first, second)

	_, ok = eng.Compile("m-0")
	assert.False(t, ok)
	_, ok = eng.Compile("m-0")
	assert.False(t, ok)

	eng.Generate([]string{"m-4", "m-0", "m-4"})
	assert.Equal(t, 2, calls)
}

func TestNew_Precedence(t *testing.T) {
	user := RuleSet{
		Static("rounded", Props("border-radius", "9999px")),
		Dynamic(`p-(\d+)`, func(m Match) Properties {
			if m.Group(1) != "2" {
				return nil
			}
			return Props("padding", "3px")
		}),
	}

	eng, err := New(Options{}, user, testRules())
	require.NoError(t, err)

	assert.Equal(t, ".rounded {\n  border-radius: 9999px;\n}\n", eng.Generate([]string{"rounded"}))
	assert.Equal(t, ".p-2 {\n  padding: 3px;\n}\n", eng.Generate([]string{"p-2"}))
	// the user handler declines p-4, so the next pattern rule answers
	assert.Equal(t, ".p-4 {\n  padding: 1rem;\n}\n", eng.Generate([]string{"p-4"}))
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Options{}, RuleSet{
		Static("", Props("a", "b")),
		Static("empty", nil),
		{Kind: RuleDynamic},
		DynamicProps(`x-(\d+)`, nil),
		Static("ok", Props("a", "b")),
	})
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "rule 0")
	assert.Contains(t, msg, "rule 1")
	assert.Contains(t, msg, "rule 2")
	assert.Contains(t, msg, "rule 3")
	assert.NotContains(t, msg, "rule 4")
}

func TestGenerate_WhitespaceEntries(t *testing.T) {
	eng := newTestEngine(t, Options{})

	css := eng.Generate([]string{"  flex rounded ", "flex"})

	assert.Equal(t, ".flex {\n  display: flex;\n}\n.rounded {\n  border-radius: 0.25rem;\n}\n", css)
}

func TestParseDarkMode(t *testing.T) {
	tests := []struct {
		in      string
		want    DarkMode
		wantErr bool
	}{
		{in: "", want: DarkModeClass},
		{in: "class", want: DarkModeClass},
		{in: "Media", want: DarkModeMedia},
		{in: "auto", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDarkMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	pool := []string{
		"p-2", "p-4", "sm:p-8", "lg:p-2", "hover:p-4", "dark:rounded",
		"rounded", "flex", "md:flex", "bg-brand", "bg-loop", "nope",
		"2xl:space-x-4", "w-[10px]", "p-[]",
	}

	rapid.Check(t, func(t *rapid.T) {
		eng, err := New(Options{Tokens: testTokens()}, testRules())
		if err != nil {
			t.Fatal(err)
		}
		input := rapid.SliceOf(rapid.SampledFrom(pool)).Draw(t, "tokens")

		first := eng.Generate(input)
		second := eng.Generate(input)
		if first != second {
			t.Fatalf("output differs between calls:\n%s\n---\n%s", first, second)
		}
		if strings.Contains(first, ": ;") {
			t.Fatalf("empty declaration emitted:\n%s", first)
		}

		// unwrapped declarations always precede wrapped ones
		decls := eng.Declarations(input)
		last := 0
		for _, d := range decls {
			if d.Breakpoint < last {
				t.Fatalf("breakpoint %d emitted after %d", d.Breakpoint, last)
			}
			last = d.Breakpoint
		}
	})
}
