package atomcss

import (
	"go.uber.org/zap"

	"github.com/yacobolo/atomcss/internal/engine"
	"github.com/yacobolo/atomcss/internal/merge"
	"github.com/yacobolo/atomcss/internal/tokens"
)

// Re-exported building blocks so callers can extend the compiler without
// importing internal packages.
type (
	// Declaration is one compiled utility.
	Declaration = engine.Declaration
	// Rule maps a utility (exact or pattern) to CSS properties.
	Rule = engine.Rule
	// Match is passed to pattern rule handlers.
	Match = engine.Match
	// Handler computes properties for a pattern rule.
	Handler = engine.Handler
	// RuleOption adjusts a rule at construction.
	RuleOption = engine.RuleOption
	// Properties is an ordered property table.
	Properties = engine.Properties
	// DarkMode selects ancestor-class or media-query dark variants.
	DarkMode = engine.DarkMode
	// Group is a named conflict class for Merge.
	Group = merge.Group
	// KV is an ordered keyed entry for Merge: the key is kept when the
	// value is truthy.
	KV = merge.KV
	// TokenResolver resolves design-token references.
	TokenResolver = tokens.Resolver
	// TokenRef is a design-token reference inside a token tree.
	TokenRef = tokens.Ref
)

// Dark mode strategies.
const (
	DarkModeClass = engine.DarkModeClass
	DarkModeMedia = engine.DarkModeMedia
)

// ParseDarkMode accepts "class" (or empty) and "media".
var ParseDarkMode = engine.ParseDarkMode

// Rule constructors.
var (
	Static       = engine.Static
	Dynamic      = engine.Dynamic
	DynamicProps = engine.DynamicProps
	WithSelector = engine.WithSelector
	Props        = engine.Props
	Prop         = engine.Prop
	RefProp      = engine.RefProp
)

// Config holds generator configuration
type Config struct {
	// glob patterns of files to scan: "internal/web/**/*.templ"
	SourcePaths []string `validate:"dive,required"`

	OutputFile  string // "web/static/atoms.css"; empty skips writing
	TokensFile  string // optional YAML/JSON design-token file
	TokenPrefix string // custom property prefix: "ui" -> --ui-colors-primary
	DarkMode    string // "class" (default) or "media"
	Variables   bool   // prepend :root custom properties for every token
	Verbose     bool

	Logger *zap.Logger `validate:"-"`
}

// GenerateResult contains generation stats
type GenerateResult struct {
	FilesScanned int
	FilesSkipped int
	ClassStrings int      // class strings found in sources
	TokensFound  int      // unique utility tokens
	Utilities    int      // tokens that compiled to a declaration
	Unknown      []string // tokens no rule matched, sorted
	Categories   map[PropertyCategory]int
	CSS          string
	Written      bool // false when OutputFile already had identical content
	Warnings     []string
}

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and Quick Wins only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics + Quick Wins (interactive development)
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
