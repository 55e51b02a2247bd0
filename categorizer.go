package atomcss

import "strings"

// PropertyCategory groups related CSS properties
type PropertyCategory string

// Property categories for organizing compiled utilities
const (
	CategoryVisual     PropertyCategory = "Visual"
	CategoryLayout     PropertyCategory = "Layout"
	CategorySpacing    PropertyCategory = "Spacing"
	CategoryTypography PropertyCategory = "Typography"
	CategoryEffects    PropertyCategory = "Effects"
	CategoryInternal   PropertyCategory = "Internal"
)

// Categories lists every category in report order.
var Categories = []PropertyCategory{
	CategoryLayout,
	CategorySpacing,
	CategoryTypography,
	CategoryVisual,
	CategoryEffects,
	CategoryInternal,
}

// propertyCategories maps CSS property names to categories
var propertyCategories = map[string]PropertyCategory{
	// Visual
	"background":       CategoryVisual,
	"background-color": CategoryVisual,
	"background-image": CategoryVisual,
	"color":            CategoryVisual,
	"border":           CategoryVisual,
	"border-color":     CategoryVisual,
	"border-radius":    CategoryVisual,
	"border-width":     CategoryVisual,
	"border-style":     CategoryVisual,
	"outline":          CategoryVisual,
	"fill":             CategoryVisual,
	"stroke":           CategoryVisual,

	// Layout
	"display":         CategoryLayout,
	"flex":            CategoryLayout,
	"flex-direction":  CategoryLayout,
	"flex-wrap":       CategoryLayout,
	"justify-content": CategoryLayout,
	"align-items":     CategoryLayout,
	"position":        CategoryLayout,
	"inset":           CategoryLayout,
	"top":             CategoryLayout,
	"right":           CategoryLayout,
	"bottom":          CategoryLayout,
	"left":            CategoryLayout,
	"width":           CategoryLayout,
	"height":          CategoryLayout,
	"min-width":       CategoryLayout,
	"min-height":      CategoryLayout,
	"max-width":       CategoryLayout,
	"max-height":      CategoryLayout,
	"overflow":        CategoryLayout,
	"overflow-x":      CategoryLayout,
	"overflow-y":      CategoryLayout,
	"z-index":         CategoryLayout,
	"aspect-ratio":    CategoryLayout,

	// Spacing
	"padding":    CategorySpacing,
	"margin":     CategorySpacing,
	"gap":        CategorySpacing,
	"row-gap":    CategorySpacing,
	"column-gap": CategorySpacing,

	// Typography
	"font-family":          CategoryTypography,
	"font-size":            CategoryTypography,
	"font-weight":          CategoryTypography,
	"font-style":           CategoryTypography,
	"line-height":          CategoryTypography,
	"letter-spacing":       CategoryTypography,
	"text-align":           CategoryTypography,
	"text-decoration-line": CategoryTypography,
	"text-transform":       CategoryTypography,
	"white-space":          CategoryTypography,

	// Effects
	"box-shadow": CategoryEffects,
	"opacity":    CategoryEffects,
	"cursor":     CategoryEffects,
	"transition": CategoryEffects,
	"transform":  CategoryEffects,
	"filter":     CategoryEffects,
}

// categorizeProperty determines the category of a CSS property
func categorizeProperty(name string) PropertyCategory {
	if cat, exists := propertyCategories[name]; exists {
		return cat
	}

	// Vendor-prefixed properties
	if strings.HasPrefix(name, "-webkit-") ||
		strings.HasPrefix(name, "-moz-") ||
		strings.HasPrefix(name, "-ms-") ||
		strings.HasPrefix(name, "-o-") {
		return CategoryInternal
	}

	if strings.HasPrefix(name, "padding-") || strings.HasPrefix(name, "margin-") {
		return CategorySpacing
	}
	if strings.HasPrefix(name, "border-") {
		return CategoryVisual
	}
	if strings.HasPrefix(name, "flex-") || strings.HasPrefix(name, "grid-") {
		return CategoryLayout
	}

	// Default to Layout for unknown properties
	return CategoryLayout
}

// categorizeDeclarations counts utilities per category. A declaration
// counts once, under the category of its first property.
func categorizeDeclarations(decls []*Declaration) map[PropertyCategory]int {
	counts := make(map[PropertyCategory]int)
	for _, d := range decls {
		if len(d.Properties) == 0 {
			continue
		}
		counts[categorizeProperty(d.Properties[0].Name)]++
	}
	return counts
}
