package preset

import "github.com/yacobolo/atomcss/internal/tokens"

// Tokens returns a fresh copy of the default design-token tree. Color
// aliases such as colors.primary are references, so overriding
// colors.blue.600 in a user token file also changes colors.primary.
func Tokens() map[string]any {
	return map[string]any{
		"colors": map[string]any{
			"white":       "#ffffff",
			"black":       "#000000",
			"transparent": "transparent",
			"current":     "currentColor",
			"inherit":     "inherit",
			"gray": shades(
				"#f9fafb", "#f3f4f6", "#e5e7eb", "#d1d5db", "#9ca3af", "#6b7280",
				"#4b5563", "#374151", "#1f2937", "#111827", "#030712",
			),
			"blue": shades(
				"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6",
				"#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a", "#172554",
			),
			"red": shades(
				"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444",
				"#dc2626", "#b91c1c", "#991b1b", "#7f1d1d", "#450a0a",
			),
			"green": shades(
				"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e",
				"#16a34a", "#15803d", "#166534", "#14532d", "#052e16",
			),
			"primary":    tokens.Ref{Path: "colors.blue.600"},
			"secondary":  tokens.Ref{Path: "colors.gray.600"},
			"danger":     tokens.Ref{Path: "colors.red.600"},
			"success":    tokens.Ref{Path: "colors.green.600"},
			"foreground": tokens.Ref{Path: "colors.gray.900"},
			"background": tokens.Ref{Path: "colors.white"},
			"muted":      tokens.Ref{Path: "colors.gray.500"},
		},
		"radius": map[string]any{
			"none":    "0px",
			"sm":      "0.125rem",
			"DEFAULT": "0.25rem",
			"md":      "0.375rem",
			"lg":      "0.5rem",
			"xl":      "0.75rem",
			"2xl":     "1rem",
			"3xl":     "1.5rem",
			"full":    "9999px",
		},
		"shadow": map[string]any{
			"sm":      "0 1px 2px 0 rgb(0 0 0 / 0.05)",
			"DEFAULT": "0 1px 3px 0 rgb(0 0 0 / 0.1), 0 1px 2px -1px rgb(0 0 0 / 0.1)",
			"md":      "0 4px 6px -1px rgb(0 0 0 / 0.1), 0 2px 4px -2px rgb(0 0 0 / 0.1)",
			"lg":      "0 10px 15px -3px rgb(0 0 0 / 0.1), 0 4px 6px -4px rgb(0 0 0 / 0.1)",
			"xl":      "0 20px 25px -5px rgb(0 0 0 / 0.1), 0 8px 10px -6px rgb(0 0 0 / 0.1)",
			"2xl":     "0 25px 50px -12px rgb(0 0 0 / 0.25)",
			"inner":   "inset 0 2px 4px 0 rgb(0 0 0 / 0.05)",
			"none":    "none",
		},
		"fontSize": map[string]any{
			"xs":   "0.75rem",
			"sm":   "0.875rem",
			"base": "1rem",
			"lg":   "1.125rem",
			"xl":   "1.25rem",
			"2xl":  "1.5rem",
			"3xl":  "1.875rem",
			"4xl":  "2.25rem",
			"5xl":  "3rem",
		},
		"fontFamily": map[string]any{
			"sans":  []any{"ui-sans-serif", "system-ui", "sans-serif"},
			"serif": []any{"ui-serif", "Georgia", "serif"},
			"mono":  []any{"ui-monospace", "SFMono-Regular", "monospace"},
		},
	}
}

var shadeKeys = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900", "950"}

func shades(hex ...string) map[string]any {
	out := make(map[string]any, len(hex))
	for i, h := range hex {
		out[shadeKeys[i]] = h
	}
	return out
}
