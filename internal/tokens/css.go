package tokens

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Var returns a CSS custom property reference for path. It never touches
// the tree:
//
//	r.Var("colors.brandPrimary")          // var(--colors-brand-primary)
//	r.Var("space.md", "1rem")             // var(--space-md, 1rem)
func (r *Resolver) Var(path string, fallback ...string) string {
	name := VarName(r.prefix, path)
	if len(fallback) > 0 && fallback[0] != "" {
		return fmt.Sprintf("var(%s, %s)", name, fallback[0])
	}
	return fmt.Sprintf("var(%s)", name)
}

// VarName converts a dot path to a custom property name. Segments are
// hyphenated, camelCase is split and the result is lower-cased.
func VarName(prefix, path string) string {
	var b strings.Builder
	b.WriteString("--")
	if prefix != "" {
		b.WriteString(kebab(prefix))
		b.WriteByte('-')
	}
	for i, seg := range strings.Split(path, ".") {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(kebab(seg))
	}
	return b.String()
}

func kebab(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == ' ' || r == '.':
			b.WriteByte('-')
		case unicode.IsUpper(r):
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteByte('-')
				}
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format renders a resolved leaf as CSS text. Lists are comma separated;
// groups and unresolved references render as "".
func Format(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(t)
	case []string:
		return strings.Join(t, ", ")
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			if s := Format(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case fmt.Stringer:
		return t.String()
	default:
		return ""
	}
}

// CSSVariables renders every resolvable leaf as a custom property inside
// selector (":root" when empty). Unresolvable leaves are skipped.
func (r *Resolver) CSSVariables(selector string) string {
	if selector == "" {
		selector = ":root"
	}

	resolved := make(map[string]any)
	walk(r.GetResolved(), "", func(path string, leaf any) {
		if _, isRef := AsRef(leaf); !isRef {
			resolved[path] = leaf
		}
	})

	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, path := range r.Paths() {
		v, ok := resolved[path]
		if !ok {
			continue
		}
		value := Format(v)
		if value == "" {
			continue
		}
		fmt.Fprintf(&b, "  %s: %s;\n", VarName(r.prefix, path), value)
	}
	b.WriteString("}\n")
	return b.String()
}
