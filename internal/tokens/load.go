package tokens

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const valueKey = "$value"

// Parse decodes a YAML or JSON token file. {"$ref": "a.b"} objects become
// Ref values; DTCG-style {"$value": ...} tokens are unwrapped to their value
// and the remaining "$"-prefixed metadata keys are dropped.
func Parse(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode tokens: %w", err)
	}
	if raw == nil {
		return map[string]any{}, nil
	}

	tree, ok := normalize(raw).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decode tokens: top level must be a mapping")
	}
	return tree, nil
}

// LoadFile reads and parses a token file.
func LoadFile(path string) (map[string]any, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tokens file: %w", err)
	}

	tree, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if p, ok := AsRef(t); ok {
			return Ref{Path: p}
		}
		if inner, ok := t[valueKey]; ok {
			return normalize(inner)
		}
		out := make(map[string]any, len(t))
		for k, item := range t {
			if len(k) > 0 && k[0] == '$' {
				continue
			}
			out[k] = normalize(item)
		}
		return out
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, item := range t {
			m[fmt.Sprint(k)] = item
		}
		return normalize(m)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = normalize(item)
		}
		return out
	default:
		return v
	}
}

// Merge deep-merges override onto base and returns a new tree. Groups merge
// key by key; any other value in override replaces the one in base.
func Merge(base, override map[string]any) map[string]any {
	out := deepCopy(base).(map[string]any)

	for k, v := range override {
		bm, baseIsGroup := out[k].(map[string]any)
		om, overIsGroup := v.(map[string]any)
		if baseIsGroup && overIsGroup {
			if _, isRef := AsRef(bm); !isRef {
				if _, isRef := AsRef(om); !isRef {
					out[k] = Merge(bm, om)
					continue
				}
			}
		}
		out[k] = deepCopy(v)
	}
	return out
}
