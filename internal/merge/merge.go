// Package merge collapses conflicting utility classes.
//
// Each token is classified into a conflict group ("padding", "bg color",
// ...) after its variant prefixes are stripped. Within one variant prefix
// only the last token of a group survives; tokens outside every group pass
// through untouched.
package merge

import (
	"strings"

	"github.com/yacobolo/atomcss/internal/variant"
)

// Resolver holds an ordered conflict-group table. It keeps no state
// between calls.
type Resolver struct {
	groups []Group
}

// New returns a resolver over groups, tested in order.
func New(groups ...Group) *Resolver {
	return &Resolver{groups: groups}
}

// Default returns a resolver over DefaultGroups.
func Default() *Resolver {
	return New(DefaultGroups()...)
}

// Classify returns the conflict group of the token's stem, or "" when the
// stem matches no group.
func (r *Resolver) Classify(token string) string {
	_, stem := variant.SplitKnown(token)
	return r.groupOf(stem)
}

// Key returns the conflict key of token: its variant prefix chain followed
// by its group name. Ungrouped tokens have no key.
func (r *Resolver) Key(token string) (string, bool) {
	prefix, stem := variant.SplitKnown(token)
	g := r.groupOf(stem)
	if g == "" {
		return "", false
	}
	return prefix + g, true
}

func (r *Resolver) groupOf(stem string) string {
	for _, g := range r.groups {
		if g.Pattern.MatchString(stem) {
			return g.Name
		}
	}
	return ""
}

// Resolve collapses tokens. Grouped survivors come first, in the order
// their key first appeared; ungrouped tokens follow in input order,
// duplicates included. Entries containing whitespace are split.
func (r *Resolver) Resolve(tokens []string) []string {
	var order []string
	winners := make(map[string]string)
	var ungrouped []string

	for _, entry := range tokens {
		for _, token := range strings.Fields(entry) {
			key, ok := r.Key(token)
			if !ok {
				ungrouped = append(ungrouped, token)
				continue
			}
			if _, seen := winners[key]; !seen {
				order = append(order, key)
			}
			winners[key] = token
		}
	}

	out := make([]string, 0, len(order)+len(ungrouped))
	for _, key := range order {
		out = append(out, winners[key])
	}
	return append(out, ungrouped...)
}

// Merge flattens values, resolves the result and joins it with spaces.
func (r *Resolver) Merge(values ...any) string {
	return strings.Join(r.Resolve(Flatten(values...)), " ")
}

// Conflicts reports, for each key that occurs more than once, the tokens
// that were overridden, in input order.
func (r *Resolver) Conflicts(tokens []string) map[string][]string {
	seen := make(map[string][]string)
	for _, entry := range tokens {
		for _, token := range strings.Fields(entry) {
			if key, ok := r.Key(token); ok {
				seen[key] = append(seen[key], token)
			}
		}
	}

	out := make(map[string][]string)
	for key, list := range seen {
		if len(list) > 1 {
			out[key] = list[:len(list)-1]
		}
	}
	return out
}
