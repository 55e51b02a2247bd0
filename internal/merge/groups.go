package merge

import "regexp"

// Group is a named conflict class. Pattern is tested against the utility
// stem with variant prefixes removed.
type Group struct {
	Name    string
	Pattern *regexp.Regexp
}

func group(name, pattern string) Group {
	return Group{Name: name, Pattern: regexp.MustCompile(`^(?:` + pattern + `)$`)}
}

// Value shapes shared by several groups.
const (
	spacingValue = `(?:\d+(?:\.\d+)?|px|auto|\[.+\])`
	sizeValue    = `(?:\d+(?:\.\d+)?|\d+/\d+|px|auto|full|screen|min|max|fit|svh|dvh|\[.+\])`
	colorValue   = `(?:` + colorName + `|[a-z]+-\d{2,3}|\[.+\])`
	sizeScale    = `(?:xs|sm|base|lg|xl|[2-9]xl)`
	borderWidth  = `(?:-(?:0|2|4|8))?`

	// Single-word colors of the preset palette. Other single words
	// ("bg-cover", "text-nowrap") stay ungrouped.
	colorName = `inherit|current|transparent|black|white|primary|secondary|danger|success|foreground|background|muted`
)

var defaultGroups = []Group{
	// spacing; axis groups sit before the shorthand so "px-2" is not read as "p".
	group("padding-x", `px-`+spacingValue),
	group("padding-y", `py-`+spacingValue),
	group("padding-top", `pt-`+spacingValue),
	group("padding-right", `pr-`+spacingValue),
	group("padding-bottom", `pb-`+spacingValue),
	group("padding-left", `pl-`+spacingValue),
	group("padding", `p-`+spacingValue),
	group("margin-x", `-?mx-`+spacingValue),
	group("margin-y", `-?my-`+spacingValue),
	group("margin-top", `-?mt-`+spacingValue),
	group("margin-right", `-?mr-`+spacingValue),
	group("margin-bottom", `-?mb-`+spacingValue),
	group("margin-left", `-?ml-`+spacingValue),
	group("margin", `-?m-`+spacingValue),
	group("gap-x", `gap-x-`+spacingValue),
	group("gap-y", `gap-y-`+spacingValue),
	group("gap", `gap-`+spacingValue),
	group("space-x", `-?space-x-`+spacingValue),
	group("space-y", `-?space-y-`+spacingValue),

	// sizing
	group("min-width", `min-w-`+sizeValue),
	group("max-width", `max-w-(?:`+sizeScale+`|none|prose|`+sizeValue+`)`),
	group("width", `w-`+sizeValue),
	group("min-height", `min-h-`+sizeValue),
	group("max-height", `max-h-`+sizeValue),
	group("height", `h-`+sizeValue),

	// layout
	group("display", `block|inline-block|inline|flex|inline-flex|grid|inline-grid|contents|table|hidden`),
	group("position", `static|fixed|absolute|relative|sticky`),
	group("inset-x", `-?inset-x-`+spacingValue),
	group("inset-y", `-?inset-y-`+spacingValue),
	group("inset", `-?inset-`+spacingValue),
	group("top", `-?top-`+spacingValue),
	group("right", `-?right-`+spacingValue),
	group("bottom", `-?bottom-`+spacingValue),
	group("left", `-?left-`+spacingValue),
	group("z-index", `z-(?:\d+|auto|\[.+\])`),
	group("overflow-x", `overflow-x-(?:auto|hidden|clip|visible|scroll)`),
	group("overflow-y", `overflow-y-(?:auto|hidden|clip|visible|scroll)`),
	group("overflow", `overflow-(?:auto|hidden|clip|visible|scroll)`),

	// flexbox
	group("flex-direction", `flex-(?:row|row-reverse|col|col-reverse)`),
	group("flex-wrap", `flex-(?:wrap|wrap-reverse|nowrap)`),
	group("flex", `flex-(?:1|auto|initial|none)`),
	group("justify-content", `justify-(?:start|end|center|between|around|evenly|normal|stretch)`),
	group("align-items", `items-(?:start|end|center|baseline|stretch)`),

	// typography; size and alignment are tested before the text color catch-all.
	group("font-size", `text-(?:`+sizeScale+`|\[\d.*\])`),
	group("text-align", `text-(?:left|center|right|justify|start|end)`),
	group("text-color", `text-`+colorValue),
	group("font-weight", `font-(?:thin|extralight|light|normal|medium|semibold|bold|extrabold|black)`),
	group("font-family", `font-(?:sans|serif|mono|\[.+\])`),
	group("line-height", `leading-(?:none|tight|snug|normal|relaxed|loose|\d+|\[.+\])`),
	group("letter-spacing", `tracking-(?:tighter|tight|normal|wide|wider|widest|\[.+\])`),

	// backgrounds and borders
	group("background-color", `bg-`+colorValue),
	group("border-radius", `rounded(?:-(?:none|`+sizeScale+`|full|\[.+\]))?`),
	group("border-width", `border(?:-(?:0|2|4|8|\[\d.*\]))?`),
	group("border-width-x", `border-x`+borderWidth),
	group("border-width-y", `border-y`+borderWidth),
	group("border-width-t", `border-t`+borderWidth),
	group("border-width-r", `border-r`+borderWidth),
	group("border-width-b", `border-b`+borderWidth),
	group("border-width-l", `border-l`+borderWidth),
	group("border-style", `border-(?:solid|dashed|dotted|double|hidden|none)`),
	group("border-color", `border-`+colorValue),

	// effects and interactivity
	group("opacity", `opacity-(?:\d+|\[.+\])`),
	group("shadow", `shadow(?:-(?:sm|md|lg|xl|2xl|inner|none))?`),
	group("cursor", `cursor-(?:auto|default|pointer|wait|text|move|not-allowed|grab|grabbing)`),
}

// DefaultGroups returns a copy of the default conflict-group table in
// matching order.
func DefaultGroups() []Group {
	out := make([]Group, len(defaultGroups))
	copy(out, defaultGroups)
	return out
}
