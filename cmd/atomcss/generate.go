package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/atomcss"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate atomic CSS from utility classes in source files",
	Long: `Scan Go and templ sources for class strings, compile every known
utility into one declaration and write the stylesheet. The file is only
rewritten when its content changes.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringSlice("source-paths", nil, "Glob patterns of files to scan (default internal/**/*.templ, internal/**/*.go)")
	f.String("output", "", "Stylesheet to write (default "+defaultOutputFile+")")
	f.Bool("variables", false, "Prepend :root custom properties for every design token")
	f.Bool("watch", false, "Regenerate when sources or tokens change")
	f.Bool("lint", false, "Run linter after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	log := newLogger()
	defer func() { _ = log.Sync() }()

	config := buildGenerateConfig()
	config.Logger = log

	if err := generateOnce(config); err != nil {
		return err
	}

	if getBoolWithFallback("watch", "generate.watch", false) {
		return watchAndGenerate(cmd.Context(), config, log)
	}

	// Run lint after generate if --lint flag set
	if getBoolWithFallback("lint", "generate.lint", false) {
		return runLint(log)
	}

	return nil
}

// generateOnce runs one generation and reports it.
func generateOnce(config atomcss.Config) error {
	result, err := atomcss.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}

	status := "Up to date"
	if result.Written {
		status = "Generated"
	}
	fmt.Printf("%s %s\n", status, config.OutputFile)
	fmt.Printf("  Files scanned: %d\n", result.FilesScanned)
	fmt.Printf("  Utilities: %d of %d tokens\n", result.Utilities, result.TokensFound)

	if config.Verbose {
		for _, cat := range atomcss.Categories {
			if n := result.Categories[cat]; n > 0 {
				fmt.Printf("    %-11s %d\n", cat, n)
			}
		}
		if len(result.Unknown) > 0 {
			fmt.Printf("  Unknown: %s\n", strings.Join(result.Unknown, " "))
		}
	}

	for _, w := range result.Warnings {
		fmt.Printf("  Warning: %s\n", w)
	}

	config.Logger.Debug("generation finished",
		zap.Int("files", result.FilesScanned),
		zap.Bool("written", result.Written))
	return nil
}
