package engine

import (
	"errors"
	"fmt"
	"regexp"
)

// Property is one CSS property/value pair. When Ref is set the value is
// looked up in the engine's token source instead of using Value.
type Property struct {
	Name  string
	Value string
	Ref   string
}

// Properties is an ordered property table.
type Properties []Property

// Prop returns a fixed property.
func Prop(name, value string) Property {
	return Property{Name: name, Value: value}
}

// RefProp returns a property whose value is the design token at path.
func RefProp(name, path string) Property {
	return Property{Name: name, Ref: path}
}

// Props builds a table from name/value pairs. A trailing name without a
// value is ignored.
func Props(pairs ...string) Properties {
	out := make(Properties, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Prop(pairs[i], pairs[i+1]))
	}
	return out
}

// RuleKind tags how a rule is matched.
type RuleKind int

const (
	// RuleStatic matches one exact base utility.
	RuleStatic RuleKind = iota
	// RuleDynamic matches a regular expression and may capture segments.
	RuleDynamic
)

func (k RuleKind) String() string {
	switch k {
	case RuleStatic:
		return "static"
	case RuleDynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("RuleKind(%d)", int(k))
	}
}

// Match is what a dynamic rule's handler receives.
type Match struct {
	Utility string   // the base utility, variants stripped
	Groups  []string // Groups[0] is the whole match
	pattern *regexp.Regexp
}

// Group returns capture i (1-based), or "" when absent.
func (m Match) Group(i int) string {
	if i < 0 || i >= len(m.Groups) {
		return ""
	}
	return m.Groups[i]
}

// Named returns the named capture, or "" when absent.
func (m Match) Named(name string) string {
	if m.pattern == nil {
		return ""
	}
	return m.Group(m.pattern.SubexpIndex(name))
}

// Handler produces the properties for a dynamic match. Returning an empty
// table means "no match": the engine moves on to the next rule.
type Handler func(Match) Properties

// Rule is one unit of matching knowledge.
type Rule struct {
	Kind       RuleKind
	Utility    string         // RuleStatic: the exact base utility
	Pattern    *regexp.Regexp // RuleDynamic: anchored pattern
	Properties Properties     // fixed table
	Handler    Handler        // computed table (RuleDynamic only)
	Selector   func(string) string
}

// RuleOption adjusts a rule at construction.
type RuleOption func(*Rule)

// WithSelector rewrites the class selector of every declaration the rule
// produces, e.g. to target children.
func WithSelector(fn func(selector string) string) RuleOption {
	return func(r *Rule) {
		r.Selector = fn
	}
}

// Static returns an exact-match rule.
func Static(utility string, props Properties, opts ...RuleOption) Rule {
	r := Rule{Kind: RuleStatic, Utility: utility, Properties: props}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Dynamic returns a pattern rule. The pattern is anchored at both ends and
// compiled immediately; an invalid pattern panics, like regexp.MustCompile.
func Dynamic(pattern string, handler Handler, opts ...RuleOption) Rule {
	r := Rule{
		Kind:    RuleDynamic,
		Pattern: regexp.MustCompile(`^(?:` + pattern + `)$`),
		Handler: handler,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// DynamicProps returns a pattern rule with a fixed property table.
func DynamicProps(pattern string, props Properties, opts ...RuleOption) Rule {
	r := Dynamic(pattern, nil, opts...)
	r.Properties = props
	return r
}

var (
	errNoUtility  = errors.New("static rule without utility")
	errNoPattern  = errors.New("dynamic rule without pattern")
	errAmbiguous  = errors.New("rule sets both properties and handler")
	errNoProducer = errors.New("rule has neither properties nor handler")
)

func (r Rule) validate() error {
	switch r.Kind {
	case RuleStatic:
		if r.Utility == "" {
			return errNoUtility
		}
		if r.Handler != nil {
			return fmt.Errorf("static rule %q: handlers need a dynamic rule", r.Utility)
		}
		if len(r.Properties) == 0 {
			return fmt.Errorf("static rule %q: %w", r.Utility, errNoProducer)
		}
	case RuleDynamic:
		if r.Pattern == nil {
			return errNoPattern
		}
		hasProps := len(r.Properties) > 0
		hasHandler := r.Handler != nil
		if hasProps && hasHandler {
			return fmt.Errorf("dynamic rule %s: %w", r.Pattern, errAmbiguous)
		}
		if !hasProps && !hasHandler {
			return fmt.Errorf("dynamic rule %s: %w", r.Pattern, errNoProducer)
		}
	default:
		return fmt.Errorf("unknown rule kind %v", r.Kind)
	}
	return nil
}

// RuleSource supplies an ordered list of rules to an engine.
type RuleSource interface {
	Rules() []Rule
}

// RuleSet is a RuleSource backed by a slice.
type RuleSet []Rule

// Rules returns the set itself.
func (s RuleSet) Rules() []Rule {
	return s
}
