package atomcss

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yacobolo/atomcss/internal/engine"
	"github.com/yacobolo/atomcss/internal/merge"
	"github.com/yacobolo/atomcss/internal/preset"
	"github.com/yacobolo/atomcss/internal/tokens"
)

// CompilerOptions configures a Compiler. The zero value gives the default
// preset with class-based dark mode.
type CompilerOptions struct {
	Tokens      map[string]any // merged over the preset tokens
	TokensFile  string         // YAML/JSON token file merged over Tokens
	TokenPrefix string         // custom property prefix for Var/Variables
	DarkMode    DarkMode
	Rules       []Rule  // tried before the preset rules
	Groups      []Group // tested before the default conflict groups
	NoPreset    bool    // drop preset rules, tokens and groups
	Logger      *zap.Logger
}

// Compiler bundles a rule engine, a class merger and a token resolver
// that share one configuration. Like the engine, it expects one caller
// at a time.
type Compiler struct {
	engine *engine.Engine
	merger *merge.Resolver
	tokens *tokens.Resolver
	log    *zap.Logger
}

// NewCompiler builds a compiler. It fails when the token file cannot be
// read or a rule is invalid.
func NewCompiler(opts CompilerOptions) (*Compiler, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	tree := map[string]any{}
	if !opts.NoPreset {
		tree = preset.Tokens()
	}
	if opts.Tokens != nil {
		tree = tokens.Merge(tree, opts.Tokens)
	}
	if opts.TokensFile != "" {
		fromFile, err := tokens.LoadFile(opts.TokensFile)
		if err != nil {
			return nil, err
		}
		tree = tokens.Merge(tree, fromFile)
		log.Debug("loaded design tokens", zap.String("file", opts.TokensFile))
	}

	resolver := tokens.New(tree, tokens.WithPrefix(opts.TokenPrefix), tokens.WithLogger(log))

	sources := []engine.RuleSource{engine.RuleSet(opts.Rules)}
	if !opts.NoPreset {
		sources = append(sources, preset.Rules())
	}
	eng, err := engine.New(engine.Options{
		DarkMode: opts.DarkMode,
		Tokens:   resolver,
		Logger:   log,
	}, sources...)
	if err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	groups := append([]Group{}, opts.Groups...)
	if !opts.NoPreset {
		groups = append(groups, merge.DefaultGroups()...)
	}

	return &Compiler{
		engine: eng,
		merger: merge.New(groups...),
		tokens: resolver,
		log:    log,
	}, nil
}

// CSS compiles classes into a stylesheet fragment. Unknown classes are
// skipped; responsive variants come after the base declarations.
func (c *Compiler) CSS(classes ...string) string {
	return c.engine.Generate(classes)
}

// Declarations is CSS in structured form.
func (c *Compiler) Declarations(classes ...string) []*Declaration {
	return c.engine.Declarations(classes)
}

// Known reports whether a single class compiles to a declaration.
func (c *Compiler) Known(class string) bool {
	_, ok := c.engine.Compile(class)
	return ok
}

// Merge flattens values into classes and collapses conflicts, keeping the
// last class of each conflict group.
func (c *Compiler) Merge(values ...any) string {
	return c.merger.Merge(values...)
}

// Conflicts returns, per conflict key, the classes that Merge would drop.
func (c *Compiler) Conflicts(class string) map[string][]string {
	return c.merger.Conflicts(strings.Fields(class))
}

// Tokens returns the design-token resolver.
func (c *Compiler) Tokens() *TokenResolver {
	return c.tokens
}

// Variables renders every resolvable design token as custom properties
// under selector (":root" when empty).
func (c *Compiler) Variables(selector string) string {
	return c.tokens.CSSVariables(selector)
}

var defaultMerger = merge.Default()

// Merge collapses conflicting utility classes with the default conflict
// groups. It is safe for concurrent use.
//
//	atomcss.Merge("p-2 text-sm", atomcss.KV{Key: "p-4", Value: active})
//	// "p-4 text-sm" when active
func Merge(values ...any) string {
	return defaultMerger.Merge(values...)
}
