// Package engine compiles utility tokens such as "md:hover:p-4" into CSS.
//
// An Engine is built from an explicit, ordered list of rule sources. For
// each token it strips the variant prefixes, finds the first matching rule
// (exact rules before pattern rules), resolves design-token references,
// wraps the declaration for its variants and memoizes the result.
//
//	eng, err := engine.New(engine.Options{}, engine.RuleSet{
//		engine.Static("rounded", engine.Props("border-radius", "0.25rem")),
//	})
//	css := eng.Generate([]string{"rounded", "md:rounded"})
package engine

import (
	"errors"
	"fmt"
	"strings"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/atomcss/internal/tokens"
	"github.com/yacobolo/atomcss/internal/variant"
)

// DarkMode selects how the dark variant is expressed.
type DarkMode int

const (
	// DarkModeClass scopes dark declarations under an ancestor selector.
	DarkModeClass DarkMode = iota
	// DarkModeMedia wraps dark declarations in prefers-color-scheme.
	DarkModeMedia
)

// ParseDarkMode maps "class" and "media" to a DarkMode. An empty string
// selects DarkModeClass.
func ParseDarkMode(s string) (DarkMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "class":
		return DarkModeClass, nil
	case "media":
		return DarkModeMedia, nil
	default:
		return DarkModeClass, fmt.Errorf("unknown dark mode %q (want class or media)", s)
	}
}

func (m DarkMode) String() string {
	if m == DarkModeMedia {
		return "media"
	}
	return "class"
}

// TokenSource resolves design-token paths. *tokens.Resolver implements it.
type TokenSource interface {
	Resolve(path string) (any, error)
}

// Options configures an Engine.
type Options struct {
	DarkMode     DarkMode
	DarkSelector string      // ancestor selector for DarkModeClass, default ".dark"
	Tokens       TokenSource // consulted for Ref properties
	Logger       *zap.Logger
}

// ErrNoTokenSource is returned internally when a rule references a design
// token but the engine has no token source.
var ErrNoTokenSource = errors.New("no token source configured")

var errEmptyValue = errors.New("empty property value")

// Engine compiles tokens into declarations. It is not safe for concurrent
// use; the per-token cache lives as long as the engine.
type Engine struct {
	opts    Options
	exact   map[string]Rule
	dynamic []Rule
	cache   *gocache.Cache
	log     *zap.Logger
}

// New builds an engine from rule sources. Earlier rules take precedence:
// a static utility registered twice keeps its first definition and pattern
// rules are tried in registration order. All invalid rules are reported
// together.
func New(opts Options, sources ...RuleSource) (*Engine, error) {
	if opts.DarkSelector == "" {
		opts.DarkSelector = ".dark"
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	e := &Engine{
		opts:  opts,
		exact: make(map[string]Rule),
		cache: gocache.New(gocache.NoExpiration, 0),
		log:   log.Named("engine"),
	}

	var errs error
	for si, src := range sources {
		if src == nil {
			continue
		}
		for i, rule := range src.Rules() {
			if err := rule.validate(); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("source %d, rule %d: %w", si, i, err))
				continue
			}
			if rule.Kind == RuleStatic {
				if _, dup := e.exact[rule.Utility]; dup {
					e.log.Debug("ignoring duplicate static rule", zap.String("utility", rule.Utility))
					continue
				}
				e.exact[rule.Utility] = rule
				continue
			}
			e.dynamic = append(e.dynamic, rule)
		}
	}
	if errs != nil {
		return nil, errs
	}

	e.log.Debug("engine ready",
		zap.Int("static", len(e.exact)),
		zap.Int("dynamic", len(e.dynamic)),
		zap.Stringer("darkMode", opts.DarkMode))
	return e, nil
}

// Compile returns the declaration for a single token. Unknown tokens,
// malformed arbitrary values and unresolvable references all yield false.
// Results, including misses, are memoized by the exact token string.
func (e *Engine) Compile(token string) (*Declaration, bool) {
	if cached, found := e.cache.Get(token); found {
		d, _ := cached.(*Declaration)
		return d, d != nil
	}

	d := e.compile(token)
	e.cache.Set(token, d, gocache.NoExpiration)
	return d, d != nil
}

// Declarations compiles tokens and returns them in emission order:
// unwrapped declarations in input order, then breakpoint groups from the
// smallest breakpoint up, each in input order. Repeated tokens are emitted
// once. Entries containing whitespace are split into several tokens.
func (e *Engine) Declarations(tokens []string) []*Declaration {
	seen := make(map[string]bool)
	var base []*Declaration
	buckets := make([][]*Declaration, len(variant.Breakpoints())+1)

	for _, entry := range tokens {
		for _, token := range strings.Fields(entry) {
			if seen[token] {
				continue
			}
			seen[token] = true

			d, ok := e.Compile(token)
			if !ok {
				continue
			}
			if d.Breakpoint == 0 {
				base = append(base, d)
				continue
			}
			buckets[d.Breakpoint] = append(buckets[d.Breakpoint], d)
		}
	}

	out := base
	for _, bucket := range buckets[1:] {
		out = append(out, bucket...)
	}
	return out
}

// Generate compiles tokens into one CSS text. The output for a given token
// list is byte-identical across calls on the same engine.
func (e *Engine) Generate(tokens []string) string {
	return Render(e.Declarations(tokens))
}

// compile does the uncached work for one token.
func (e *Engine) compile(token string) *Declaration {
	names, base := variant.Split(token)
	if base == "" {
		return nil
	}

	variants := make([]variant.Variant, 0, len(names))
	for _, name := range names {
		v, ok := variant.Lookup(name)
		if !ok {
			e.log.Debug("dropping token with unknown variant",
				zap.String("token", token), zap.String("variant", name))
			return nil
		}
		variants = append(variants, v)
	}

	rule, props, ok := e.match(base)
	if !ok {
		e.log.Debug("no rule matches token", zap.String("token", token))
		return nil
	}

	resolved, err := e.resolve(props)
	if err != nil {
		e.log.Debug("dropping declaration", zap.String("token", token), zap.Error(err))
		return nil
	}

	d := &Declaration{Token: token, Properties: resolved}
	e.wrap(d, rule, variants)
	return d
}

// match finds the rule for a base utility: exact lookup first, then
// pattern rules in registration order. A handler returning no properties
// passes the utility on to the next rule.
func (e *Engine) match(utility string) (Rule, Properties, bool) {
	if rule, ok := e.exact[utility]; ok {
		return rule, rule.Properties, true
	}

	for _, rule := range e.dynamic {
		groups := rule.Pattern.FindStringSubmatch(utility)
		if groups == nil {
			continue
		}

		props := rule.Properties
		if rule.Handler != nil {
			props = rule.Handler(Match{Utility: utility, Groups: groups, pattern: rule.Pattern})
		}
		if len(props) == 0 {
			continue
		}
		return rule, props, true
	}

	return Rule{}, nil, false
}

// resolve substitutes design-token references and rejects empty values.
func (e *Engine) resolve(props Properties) ([]Property, error) {
	out := make([]Property, 0, len(props))
	for _, p := range props {
		value := p.Value
		if p.Ref != "" {
			if e.opts.Tokens == nil {
				return nil, fmt.Errorf("%s: %w", p.Ref, ErrNoTokenSource)
			}
			v, err := e.opts.Tokens.Resolve(p.Ref)
			if err != nil {
				return nil, fmt.Errorf("property %s: %w", p.Name, err)
			}
			value = tokens.Format(v)
		}

		value = strings.TrimSpace(value)
		if p.Name == "" || value == "" {
			return nil, fmt.Errorf("property %q: %w", p.Name, errEmptyValue)
		}
		out = append(out, Property{Name: p.Name, Value: value})
	}
	return out, nil
}

// wrap builds the selector and at-rules for d. Pseudo-states attach to the
// class, the rule's selector transform runs on that compound, and the dark
// ancestor and at-rules wrap the result in variant order.
func (e *Engine) wrap(d *Declaration, rule Rule, variants []variant.Variant) {
	compound := "." + EscapeClass(d.Token)
	dark := false

	for _, v := range variants {
		switch v.Kind {
		case variant.Pseudo:
			compound += ":" + v.Name
		case variant.Dark:
			if e.opts.DarkMode == DarkModeMedia {
				d.AtRules = append(d.AtRules, "@media (prefers-color-scheme: dark)")
			} else {
				dark = true
			}
		case variant.Breakpoint:
			d.AtRules = append(d.AtRules, "@media (min-width: "+v.MinWidth+")")
			if v.Order > d.Breakpoint {
				d.Breakpoint = v.Order
			}
		}
	}

	selector := compound
	if rule.Selector != nil {
		selector = rule.Selector(selector)
	}
	if dark {
		selector = e.opts.DarkSelector + " " + selector
	}
	d.Selector = selector
}
