package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default " + defaultConfigFile + " config file",
	Long:  `Create a ` + defaultConfigFile + ` configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# atomcss configuration
# Docs: https://github.com/yacobolo/atomcss

# Shared settings
verbose: false
tokens: ""               # YAML/JSON design tokens merged over the preset
token-prefix: ""         # --<prefix>-colors-primary
dark-mode: class         # class | media

# Generation settings
generate:
  source-paths:
    - "internal/**/*.templ"
    - "internal/**/*.go"
  output: web/static/atoms.css
  variables: false       # prepend :root custom properties

# Linting settings (paths default to generate.source-paths)
lint:
  strict: false
  threshold: 0.0         # minimum coverage for strict mode
  report-unknown: true
  output-format: issues  # issues | summary | full | json
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
