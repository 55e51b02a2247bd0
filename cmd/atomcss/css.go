package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cssCmd = &cobra.Command{
	Use:   "css [classes...]",
	Short: "Print the CSS for utility classes",
	Long: `Compile the given utility classes and print the resulting
declarations. Unknown classes are skipped.`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		compiler, err := newCompiler()
		if err != nil {
			return err
		}

		if vars, _ := cmd.Flags().GetBool("variables"); vars {
			fmt.Fprint(cmd.OutOrStdout(), compiler.Variables(""))
		}
		fmt.Fprint(cmd.OutOrStdout(), compiler.CSS(args...))
		return nil
	},
}

func init() {
	cssCmd.Flags().Bool("variables", false, "Prepend :root custom properties for every design token")
}
