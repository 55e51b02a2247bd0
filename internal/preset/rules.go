// Package preset provides the default utility rules and design tokens.
//
// The rules are plain data for internal/engine. Colors, radii, shadows and
// font scales resolve through design-token references so a token file can
// restyle every utility without touching the rule table.
package preset

import (
	"sort"
	"strconv"
	"strings"

	"github.com/yacobolo/atomcss/internal/engine"
)

// Rules returns the default rule table in matching order.
func Rules() engine.RuleSet {
	var rules engine.RuleSet
	rules = append(rules, layout()...)
	rules = append(rules, flexbox()...)
	rules = append(rules, spacing()...)
	rules = append(rules, sizing()...)
	rules = append(rules, typography()...)
	rules = append(rules, backgrounds()...)
	rules = append(rules, borders()...)
	rules = append(rules, effects()...)
	return rules
}

func statics(prop string, values map[string]string) []engine.Rule {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]engine.Rule, 0, len(keys))
	for _, utility := range keys {
		out = append(out, engine.Static(utility, engine.Props(prop, values[utility])))
	}
	return out
}

func layout() []engine.Rule {
	rules := statics("display", map[string]string{
		"block":        "block",
		"inline-block": "inline-block",
		"inline":       "inline",
		"flex":         "flex",
		"inline-flex":  "inline-flex",
		"grid":         "grid",
		"inline-grid":  "inline-grid",
		"contents":     "contents",
		"table":        "table",
		"hidden":       "none",
	})
	rules = append(rules, statics("position", map[string]string{
		"static":   "static",
		"fixed":    "fixed",
		"absolute": "absolute",
		"relative": "relative",
		"sticky":   "sticky",
	})...)

	for _, v := range []string{"auto", "hidden", "clip", "visible", "scroll"} {
		rules = append(rules,
			engine.Static("overflow-"+v, engine.Props("overflow", v)),
			engine.Static("overflow-x-"+v, engine.Props("overflow-x", v)),
			engine.Static("overflow-y-"+v, engine.Props("overflow-y", v)),
		)
	}

	rules = append(rules,
		engine.Dynamic(`(-?)inset-(x|y)-(.+)`, func(m engine.Match) engine.Properties {
			v, ok := negate(m.Group(1), m.Group(3), true)
			if !ok {
				return nil
			}
			if m.Group(2) == "x" {
				return engine.Props("left", v, "right", v)
			}
			return engine.Props("top", v, "bottom", v)
		}),
		engine.Dynamic(`(-?)(inset|top|right|bottom|left)-(.+)`, func(m engine.Match) engine.Properties {
			v, ok := negate(m.Group(1), m.Group(3), true)
			if !ok {
				return nil
			}
			if m.Group(2) == "inset" {
				return engine.Props("inset", v)
			}
			return engine.Props(m.Group(2), v)
		}),
		engine.Dynamic(`z-(.+)`, func(m engine.Match) engine.Properties {
			v := m.Group(1)
			if a, ok := engine.ArbitraryValue(v); ok {
				return engine.Props("z-index", a)
			}
			if v == "auto" || isInt(v) {
				return engine.Props("z-index", v)
			}
			return nil
		}),
	)
	return rules
}

func flexbox() []engine.Rule {
	rules := statics("flex-direction", map[string]string{
		"flex-row":         "row",
		"flex-row-reverse": "row-reverse",
		"flex-col":         "column",
		"flex-col-reverse": "column-reverse",
	})
	rules = append(rules, statics("flex-wrap", map[string]string{
		"flex-wrap":         "wrap",
		"flex-wrap-reverse": "wrap-reverse",
		"flex-nowrap":       "nowrap",
	})...)
	rules = append(rules, statics("flex", map[string]string{
		"flex-1":       "1 1 0%",
		"flex-auto":    "1 1 auto",
		"flex-initial": "0 1 auto",
		"flex-none":    "none",
	})...)
	rules = append(rules, statics("justify-content", map[string]string{
		"justify-start":   "flex-start",
		"justify-end":     "flex-end",
		"justify-center":  "center",
		"justify-between": "space-between",
		"justify-around":  "space-around",
		"justify-evenly":  "space-evenly",
	})...)
	rules = append(rules, statics("align-items", map[string]string{
		"items-start":    "flex-start",
		"items-end":      "flex-end",
		"items-center":   "center",
		"items-baseline": "baseline",
		"items-stretch":  "stretch",
	})...)
	return rules
}

var sides = map[string][]string{
	"":  {""},
	"x": {"-left", "-right"},
	"y": {"-top", "-bottom"},
	"t": {"-top"},
	"r": {"-right"},
	"b": {"-bottom"},
	"l": {"-left"},
}

func boxProps(prop, side, value string) engine.Properties {
	var out engine.Properties
	for _, suffix := range sides[side] {
		out = append(out, engine.Prop(prop+suffix, value))
	}
	return out
}

func spacing() []engine.Rule {
	return []engine.Rule{
		engine.Dynamic(`p([xytrbl]?)-(.+)`, func(m engine.Match) engine.Properties {
			v, ok := spacingValue(m.Group(2), false)
			if !ok {
				return nil
			}
			return boxProps("padding", m.Group(1), v)
		}),
		engine.Dynamic(`(-?)m([xytrbl]?)-(.+)`, func(m engine.Match) engine.Properties {
			v, ok := negate(m.Group(1), m.Group(3), true)
			if !ok {
				return nil
			}
			return boxProps("margin", m.Group(2), v)
		}),
		engine.Dynamic(`gap-(?:(x|y)-)?(.+)`, func(m engine.Match) engine.Properties {
			v, ok := spacingValue(m.Group(2), false)
			if !ok {
				return nil
			}
			switch m.Group(1) {
			case "x":
				return engine.Props("column-gap", v)
			case "y":
				return engine.Props("row-gap", v)
			}
			return engine.Props("gap", v)
		}),
		engine.Dynamic(`(-?)space-x-(.+)`, func(m engine.Match) engine.Properties {
			v, ok := negate(m.Group(1), m.Group(2), false)
			if !ok {
				return nil
			}
			return engine.Props("margin-left", v)
		}, engine.WithSelector(siblings)),
		engine.Dynamic(`(-?)space-y-(.+)`, func(m engine.Match) engine.Properties {
			v, ok := negate(m.Group(1), m.Group(2), false)
			if !ok {
				return nil
			}
			return engine.Props("margin-top", v)
		}, engine.WithSelector(siblings)),
	}
}

func siblings(selector string) string {
	return selector + " > :not([hidden]) ~ :not([hidden])"
}

func sizing() []engine.Rule {
	dim := func(prop, viewport string) engine.Handler {
		return func(m engine.Match) engine.Properties {
			v, ok := sizeValue(m.Group(1), viewport)
			if !ok {
				return nil
			}
			return engine.Props(prop, v)
		}
	}

	return []engine.Rule{
		engine.Dynamic(`w-(.+)`, dim("width", "100vw")),
		engine.Dynamic(`min-w-(.+)`, dim("min-width", "100vw")),
		engine.Dynamic(`max-w-(.+)`, func(m engine.Match) engine.Properties {
			if v, ok := maxWidths[m.Group(1)]; ok {
				return engine.Props("max-width", v)
			}
			v, ok := sizeValue(m.Group(1), "100vw")
			if !ok {
				return nil
			}
			return engine.Props("max-width", v)
		}),
		engine.Dynamic(`h-(.+)`, dim("height", "100vh")),
		engine.Dynamic(`min-h-(.+)`, dim("min-height", "100vh")),
		engine.Dynamic(`max-h-(.+)`, dim("max-height", "100vh")),
		engine.Dynamic(`size-(.+)`, func(m engine.Match) engine.Properties {
			v, ok := sizeValue(m.Group(1), "")
			if !ok {
				return nil
			}
			return engine.Props("width", v, "height", v)
		}),
	}
}

var maxWidths = map[string]string{
	"none":  "none",
	"xs":    "20rem",
	"sm":    "24rem",
	"md":    "28rem",
	"lg":    "32rem",
	"xl":    "36rem",
	"2xl":   "42rem",
	"3xl":   "48rem",
	"4xl":   "56rem",
	"5xl":   "64rem",
	"6xl":   "72rem",
	"7xl":   "80rem",
	"prose": "65ch",
}

func typography() []engine.Rule {
	rules := statics("text-align", map[string]string{
		"text-left":    "left",
		"text-center":  "center",
		"text-right":   "right",
		"text-justify": "justify",
		"text-start":   "start",
		"text-end":     "end",
	})
	rules = append(rules, statics("font-weight", map[string]string{
		"font-thin":       "100",
		"font-extralight": "200",
		"font-light":      "300",
		"font-normal":     "400",
		"font-medium":     "500",
		"font-semibold":   "600",
		"font-bold":       "700",
		"font-extrabold":  "800",
		"font-black":      "900",
	})...)
	rules = append(rules, statics("line-height", map[string]string{
		"leading-none":    "1",
		"leading-tight":   "1.25",
		"leading-snug":    "1.375",
		"leading-normal":  "1.5",
		"leading-relaxed": "1.625",
		"leading-loose":   "2",
	})...)
	rules = append(rules, statics("letter-spacing", map[string]string{
		"tracking-tighter": "-0.05em",
		"tracking-tight":   "-0.025em",
		"tracking-normal":  "0em",
		"tracking-wide":    "0.025em",
		"tracking-wider":   "0.05em",
		"tracking-widest":  "0.1em",
	})...)
	rules = append(rules, statics("font-style", map[string]string{
		"italic":     "italic",
		"not-italic": "normal",
	})...)
	rules = append(rules, statics("text-decoration-line", map[string]string{
		"underline":    "underline",
		"line-through": "line-through",
		"no-underline": "none",
	})...)
	rules = append(rules, statics("text-transform", map[string]string{
		"uppercase":   "uppercase",
		"lowercase":   "lowercase",
		"capitalize":  "capitalize",
		"normal-case": "none",
	})...)

	rules = append(rules,
		engine.Dynamic(`text-(xs|sm|base|lg|[2-9]?xl)`, func(m engine.Match) engine.Properties {
			return engine.Properties{engine.RefProp("font-size", "fontSize."+m.Group(1))}
		}),
		engine.Dynamic(`text-(\[.+\])`, func(m engine.Match) engine.Properties {
			v, ok := engine.ArbitraryValue(m.Group(1))
			if !ok {
				return nil
			}
			if isLength(v) {
				return engine.Props("font-size", v)
			}
			return engine.Props("color", v)
		}),
		engine.Dynamic(`text-(.+)`, color("color")),
		engine.Dynamic(`font-(sans|serif|mono)`, func(m engine.Match) engine.Properties {
			return engine.Properties{engine.RefProp("font-family", "fontFamily."+m.Group(1))}
		}),
		engine.Dynamic(`font-(\[.+\])`, arbitrary("font-family")),
		engine.Dynamic(`leading-(.+)`, func(m engine.Match) engine.Properties {
			v, ok := spacingValue(m.Group(1), false)
			if !ok {
				return nil
			}
			return engine.Props("line-height", v)
		}),
		engine.Dynamic(`tracking-(\[.+\])`, arbitrary("letter-spacing")),
	)
	return rules
}

func backgrounds() []engine.Rule {
	return []engine.Rule{
		engine.Dynamic(`bg-(.+)`, color("background-color")),
	}
}

func borders() []engine.Rule {
	rules := statics("border-style", map[string]string{
		"border-solid":  "solid",
		"border-dashed": "dashed",
		"border-dotted": "dotted",
		"border-double": "double",
		"border-hidden": "hidden",
		"border-none":   "none",
	})

	rules = append(rules,
		engine.Static("border", engine.Props("border-width", "1px")),
		engine.Dynamic(`border-(0|2|4|8)`, func(m engine.Match) engine.Properties {
			return engine.Props("border-width", m.Group(1)+"px")
		}),
		engine.Dynamic(`border-([xytrbl])(?:-(0|2|4|8))?`, func(m engine.Match) engine.Properties {
			w := "1px"
			if m.Group(2) != "" {
				w = m.Group(2) + "px"
			}
			var props engine.Properties
			for _, side := range sides[m.Group(1)] {
				props = append(props, engine.Prop("border"+side+"-width", w))
			}
			return props
		}),
		engine.Dynamic(`border-(\[.+\])`, func(m engine.Match) engine.Properties {
			v, ok := engine.ArbitraryValue(m.Group(1))
			if !ok {
				return nil
			}
			if isLength(v) {
				return engine.Props("border-width", v)
			}
			return engine.Props("border-color", v)
		}),
		engine.Dynamic(`border-(.+)`, color("border-color")),
		engine.Static("rounded", engine.Properties{engine.RefProp("border-radius", "radius.DEFAULT")}),
		engine.Dynamic(`rounded-(\[.+\])`, arbitrary("border-radius")),
		engine.Dynamic(`rounded-([a-z0-9]+)`, func(m engine.Match) engine.Properties {
			return engine.Properties{engine.RefProp("border-radius", "radius."+m.Group(1))}
		}),
	)
	return rules
}

func effects() []engine.Rule {
	rules := statics("cursor", map[string]string{
		"cursor-auto":        "auto",
		"cursor-default":     "default",
		"cursor-pointer":     "pointer",
		"cursor-wait":        "wait",
		"cursor-text":        "text",
		"cursor-move":        "move",
		"cursor-not-allowed": "not-allowed",
		"cursor-grab":        "grab",
		"cursor-grabbing":    "grabbing",
	})

	rules = append(rules,
		engine.Static("shadow", engine.Properties{engine.RefProp("box-shadow", "shadow.DEFAULT")}),
		engine.Dynamic(`shadow-(\[.+\])`, arbitrary("box-shadow")),
		engine.Dynamic(`shadow-([a-z0-9]+)`, func(m engine.Match) engine.Properties {
			return engine.Properties{engine.RefProp("box-shadow", "shadow."+m.Group(1))}
		}),
		engine.Dynamic(`opacity-(.+)`, func(m engine.Match) engine.Properties {
			if v, ok := engine.ArbitraryValue(m.Group(1)); ok {
				return engine.Props("opacity", v)
			}
			n, err := strconv.Atoi(m.Group(1))
			if err != nil || n < 0 || n > 100 {
				return nil
			}
			return engine.Props("opacity", strconv.FormatFloat(float64(n)/100, 'f', -1, 64))
		}),
	)
	return rules
}

// color resolves "red-500" to colors.red.500 and "[#abc]" to the literal.
func color(prop string) engine.Handler {
	return func(m engine.Match) engine.Properties {
		v := m.Group(1)
		if engine.IsArbitrary(v) {
			a, ok := engine.ArbitraryValue(v)
			if !ok {
				return nil
			}
			return engine.Props(prop, a)
		}
		return engine.Properties{engine.RefProp(prop, "colors."+strings.ReplaceAll(v, "-", "."))}
	}
}

func arbitrary(prop string) engine.Handler {
	return func(m engine.Match) engine.Properties {
		v, ok := engine.ArbitraryValue(m.Group(1))
		if !ok {
			return nil
		}
		return engine.Props(prop, v)
	}
}
