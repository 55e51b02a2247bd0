package atomcss

import "github.com/yacobolo/atomcss/internal/engine"

// Tracker remembers which declarations a host has already injected into a
// document, so repeated renders only add new CSS. The host owns the
// tracker; the compiler itself stays free of side effects.
type Tracker struct {
	seen  map[string]bool
	order []string
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[string]bool)}
}

// Take marks decls as injected and returns the CSS of those that were not
// injected before, in the given order.
func (t *Tracker) Take(decls []*Declaration) string {
	var fresh []*Declaration
	for _, d := range decls {
		if d == nil || t.seen[d.Token] {
			continue
		}
		t.seen[d.Token] = true
		t.order = append(t.order, d.Token)
		fresh = append(fresh, d)
	}
	return engine.Render(fresh)
}

// Seen reports whether the declaration for token was already taken.
func (t *Tracker) Seen(token string) bool {
	return t.seen[token]
}

// Tokens returns the injected tokens in injection order.
func (t *Tracker) Tokens() []string {
	return append([]string(nil), t.order...)
}

// Len returns the number of injected declarations.
func (t *Tracker) Len() int {
	return len(t.order)
}

// Reset forgets every injected declaration, e.g. after the host replaced
// its style element.
func (t *Tracker) Reset() {
	t.seen = make(map[string]bool)
	t.order = nil
}
