// Package variant holds the fixed variant vocabulary shared by the rule
// engine and the class merger.
package variant

import "strings"

// Kind classifies a variant segment.
type Kind int

// Variant kinds.
const (
	Pseudo Kind = iota + 1
	Dark
	Breakpoint
)

// Variant describes one known prefix segment such as "hover" or "md".
type Variant struct {
	Name     string
	Kind     Kind
	MinWidth string // Breakpoint only: "768px"
	Order    int    // Breakpoint only: 1 (sm) .. 5 (2xl)
}

// Breakpoints in ascending scale order.
var breakpoints = []Variant{
	{Name: "sm", Kind: Breakpoint, MinWidth: "640px", Order: 1},
	{Name: "md", Kind: Breakpoint, MinWidth: "768px", Order: 2},
	{Name: "lg", Kind: Breakpoint, MinWidth: "1024px", Order: 3},
	{Name: "xl", Kind: Breakpoint, MinWidth: "1280px", Order: 4},
	{Name: "2xl", Kind: Breakpoint, MinWidth: "1536px", Order: 5},
}

var vocabulary = func() map[string]Variant {
	m := map[string]Variant{
		"hover":    {Name: "hover", Kind: Pseudo},
		"focus":    {Name: "focus", Kind: Pseudo},
		"active":   {Name: "active", Kind: Pseudo},
		"disabled": {Name: "disabled", Kind: Pseudo},
		"dark":     {Name: "dark", Kind: Dark},
	}
	for _, bp := range breakpoints {
		m[bp.Name] = bp
	}
	return m
}()

// Lookup returns the variant registered under name.
func Lookup(name string) (Variant, bool) {
	v, ok := vocabulary[name]
	return v, ok
}

// IsKnown reports whether name is part of the variant vocabulary.
func IsKnown(name string) bool {
	_, ok := vocabulary[name]
	return ok
}

// Breakpoints returns the breakpoint table, smallest first.
func Breakpoints() []Variant {
	out := make([]Variant, len(breakpoints))
	copy(out, breakpoints)
	return out
}

// Split separates a token into its variant segments and base utility.
// Colons inside brackets or parentheses belong to the base, so
// "hover:bg-[url(a:b)]" yields ["hover"] and "bg-[url(a:b)]".
func Split(token string) ([]string, string) {
	var segments []string
	depth := 0
	start := 0

	for i := 0; i < len(token); i++ {
		switch token[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case ':':
			if depth == 0 {
				segments = append(segments, token[start:i])
				start = i + 1
			}
		}
	}

	return segments, token[start:]
}

// SplitKnown strips the leading chain of known variants from token and
// returns it as a prefix (including trailing colons) plus the remaining stem.
// Unknown segments stop the chain and stay part of the stem.
func SplitKnown(token string) (prefix, stem string) {
	segments, base := Split(token)

	n := 0
	for n < len(segments) && IsKnown(segments[n]) {
		n++
	}
	if n == 0 {
		return "", token
	}

	prefix = strings.Join(segments[:n], ":") + ":"
	rest := append(append([]string{}, segments[n:]...), base)
	return prefix, strings.Join(rest, ":")
}
