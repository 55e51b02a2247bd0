// Package tokens resolves design-token trees.
//
// A tree is a nested map whose leaves are strings, numbers, bools, slices of
// those, or references to other paths. References are written as
// {"$ref": "colors.base"} (or the Ref type) and resolved at read time.
//
//	r := tokens.New(map[string]any{
//		"colors": map[string]any{
//			"base":  "#ff0000",
//			"brand": tokens.Ref{Path: "colors.base"},
//		},
//	})
//	v, err := r.Resolve("colors.brand") // "#ff0000"
package tokens

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/zap"
)

const refKey = "$ref"

// Ref points from one token path to another.
type Ref struct {
	Path string
}

// aliasPattern matches the curly-brace alias form: "{colors.base}".
var aliasPattern = regexp.MustCompile(`^\{([^{}\s]+)\}$`)

// AsRef reports whether v is a reference and returns its target path.
func AsRef(v any) (string, bool) {
	switch r := v.(type) {
	case Ref:
		return r.Path, true
	case *Ref:
		if r != nil {
			return r.Path, true
		}
	case map[string]any:
		if len(r) == 1 {
			if p, ok := r[refKey].(string); ok {
				return p, true
			}
		}
	case string:
		if m := aliasPattern.FindStringSubmatch(r); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// Transformer rewrites a resolved value before it is cached.
type Transformer func(path string, value any) any

// Option configures a Resolver.
type Option func(*Resolver)

// WithPrefix sets the custom property prefix used by Var and CSSVariables.
func WithPrefix(prefix string) Option {
	return func(r *Resolver) {
		r.prefix = strings.Trim(prefix, "-")
	}
}

// WithLogger attaches a logger. Faults swallowed by the lenient entry
// points are logged at debug level.
func WithLogger(log *zap.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log.Named("tokens")
		}
	}
}

// Resolver resolves paths in one token tree. It is not safe for concurrent
// use; build one per goroutine or serialize access.
type Resolver struct {
	root         map[string]any
	prefix       string
	log          *zap.Logger
	transformers []Transformer

	cache    map[string]any  // path -> resolved value
	resolved map[string]any  // whole-tree resolution
	inflight map[string]bool // paths currently being resolved
}

// New creates a resolver over tree. The tree is read, never modified.
func New(tree map[string]any, opts ...Option) *Resolver {
	if tree == nil {
		tree = map[string]any{}
	}
	r := &Resolver{
		root:     tree,
		log:      zap.NewNop(),
		cache:    make(map[string]any),
		inflight: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// lookup walks a dot path through nested maps without resolving references.
func (r *Resolver) lookup(path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	var node any = r.root
	for _, key := range strings.Split(path, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		if _, isRef := AsRef(m); isRef {
			return nil, false
		}
		node, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// Has reports whether path exists in the raw tree. References are not
// followed.
func (r *Resolver) Has(path string) bool {
	_, ok := r.lookup(path)
	return ok
}

// Resolve returns the fully resolved value at path. It fails with
// ErrNotFound when path is absent, ErrCycle when a reference chain revisits
// a path and ErrMissingReference when a reference target is absent.
func (r *Resolver) Resolve(path string) (any, error) {
	if v, ok := r.cache[path]; ok {
		return deepCopy(v), nil
	}
	if r.inflight[path] {
		return nil, &CycleError{Chain: []string{path, path}}
	}

	raw, ok := r.lookup(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	r.inflight[path] = true
	defer delete(r.inflight, path)

	target, v, err := r.follow(path, raw)
	if err != nil {
		return nil, err
	}

	v = r.transform(path, r.expand(target, v))
	r.cache[path] = v
	return deepCopy(v), nil
}

// follow chases a reference chain starting at path. It returns the path the
// chain ended on and the raw value stored there.
func (r *Resolver) follow(path string, raw any) (string, any, error) {
	visited := map[string]bool{path: true}
	chain := []string{path}
	current := path

	for {
		target, ok := AsRef(raw)
		if !ok {
			return current, raw, nil
		}

		chain = append(chain, target)
		if visited[target] || r.inflight[target] {
			return "", nil, &CycleError{Chain: chain}
		}
		visited[target] = true

		next, ok := r.lookup(target)
		if !ok {
			return "", nil, &MissingError{From: current, Path: target}
		}
		current = target
		raw = next
	}
}

// expand resolves the members of a group or list found at path.
func (r *Resolver) expand(path string, v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = r.resolveNode(joinPath(path, k), item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			if target, isRef := AsRef(item); isRef {
				if resolved, err := r.Resolve(target); err == nil {
					out[i] = resolved
					continue
				}
			}
			out[i] = deepCopy(item)
		}
		return out
	}
	return v
}

func (r *Resolver) transform(path string, v any) any {
	for _, fn := range r.transformers {
		v = fn(path, v)
	}
	return v
}

// Get is the lenient form of Resolve: any fault yields (nil, false).
func (r *Resolver) Get(path string) (any, bool) {
	v, err := r.Resolve(path)
	if err != nil {
		r.log.Debug("token lookup failed", zap.String("path", path), zap.Error(err))
		return nil, false
	}
	return v, true
}

// GetMany resolves several paths. Paths that fail to resolve are omitted.
func (r *Resolver) GetMany(paths []string) map[string]any {
	out := make(map[string]any, len(paths))
	for _, p := range paths {
		if v, ok := r.Get(p); ok {
			out[p] = v
		}
	}
	return out
}

// AddTransformer appends fn to the transformer chain and drops every cached
// resolution.
func (r *Resolver) AddTransformer(fn Transformer) {
	if fn == nil {
		return
	}
	r.transformers = append(r.transformers, fn)
	r.cache = make(map[string]any)
	r.resolved = nil
}

// GetResolved returns a copy of the whole tree with references resolved.
// References that cannot be resolved are left in place unchanged; use
// Validate to surface them.
func (r *Resolver) GetResolved() map[string]any {
	if r.resolved == nil {
		r.resolved, _ = r.resolveNode("", r.root).(map[string]any)
	}
	return deepCopy(r.resolved).(map[string]any)
}

// resolveNode copies the node stored at path, resolving every leaf it can.
func (r *Resolver) resolveNode(path string, node any) any {
	if m, ok := node.(map[string]any); ok {
		if _, isRef := AsRef(m); !isRef {
			return r.expand(path, m)
		}
	}
	if path == "" {
		return deepCopy(node)
	}

	// Follow from the node itself: keys containing dots ("0.5") cannot be
	// looked up again by path.
	target, v, err := r.follow(path, node)
	if err != nil {
		r.log.Debug("leaving token unresolved", zap.String("path", path), zap.Error(err))
		return deepCopy(node)
	}
	return r.transform(path, r.expand(target, v))
}

// Category returns the resolved subtree stored under a top-level key, or
// nil when name is absent or not a group.
func (r *Resolver) Category(name string) map[string]any {
	tree := r.GetResolved()
	sub, _ := tree[name].(map[string]any)
	return sub
}

// Scope returns a resolver rooted at the group stored at path. It shares
// the prefix and logger but no transformers or caches. Scope returns nil
// when path is absent or not a group.
func (r *Resolver) Scope(path string) *Resolver {
	node, ok := r.lookup(path)
	if !ok {
		return nil
	}
	sub, ok := node.(map[string]any)
	if !ok {
		return nil
	}
	if _, isRef := AsRef(sub); isRef {
		return nil
	}
	return New(sub, WithPrefix(r.prefix), WithLogger(r.log))
}

// Paths returns the dot paths of every leaf in the raw tree in natural
// order, so colors.gray.50 sorts before colors.gray.100.
func (r *Resolver) Paths() []string {
	var paths []string
	walk(r.root, "", func(path string, _ any) {
		paths = append(paths, path)
	})
	sort.Sort(natural.StringSlice(paths))
	return paths
}

// Validate checks every reference in the tree and returns one
// human-readable line per problem: cycles and unresolved references. It
// never fails; an empty result means the tree is consistent.
func (r *Resolver) Validate() []string {
	var problems []string

	check := func(path string, raw any) {
		if _, isRef := AsRef(raw); !isRef {
			return
		}
		if _, _, err := r.follow(path, raw); err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", path, err))
		}
	}

	walk(r.root, "", func(path string, leaf any) {
		check(path, leaf)
		if items, ok := leaf.([]any); ok {
			for i, item := range items {
				check(fmt.Sprintf("%s[%d]", path, i), item)
			}
		}
	})

	sort.Strings(problems)
	return problems
}

// walk visits every leaf below node. References count as leaves.
func walk(node any, path string, fn func(path string, leaf any)) {
	m, ok := node.(map[string]any)
	if !ok {
		fn(path, node)
		return
	}
	if _, isRef := AsRef(m); isRef {
		fn(path, node)
		return
	}
	for k, v := range m {
		walk(v, joinPath(path, k), fn)
	}
}

func joinPath(base, key string) string {
	if base == "" {
		return key
	}
	return base + "." + key
}

func deepCopy(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = deepCopy(item)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = deepCopy(item)
		}
		return out
	default:
		return v
	}
}
