package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "atomcss",
	Short: "Atomic CSS compiler and class linter for Go/templ projects",
	Long: `Compile utility classes such as "p-4 md:hover:bg-primary" into atomic CSS.
Sources are scanned for class strings, every known utility becomes one
declaration and design tokens are resolved at build time.`,
	// Default behavior: run generate when no subcommand is given.
	// loadConfig runs here because PreRunE of generateCmd is not
	// triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(generateCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", ".atomcss.yaml", "Config file path")
	pf.String("tokens", "", "Design-token file (YAML or JSON)")
	pf.String("token-prefix", "", "Custom property prefix for token variables")
	pf.String("dark-mode", "", "Dark variant strategy: class|media (default class)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(cssCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
