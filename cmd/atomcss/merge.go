package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/atomcss"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [classes...]",
	Short: "Collapse conflicting utility classes",
	Long: `Print the class string with conflicts resolved: the last utility of
each conflict group wins and unrelated classes are kept.

  atomcss merge "p-2 text-sm" "p-4"   # text-sm p-4 -> "p-4 text-sm"`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		compiler, err := newCompiler()
		if err != nil {
			return err
		}

		values := make([]any, len(args))
		for i, a := range args {
			values[i] = a
		}
		fmt.Fprintln(cmd.OutOrStdout(), compiler.Merge(values...))
		return nil
	},
}

// newCompiler builds a compiler from the shared configuration.
func newCompiler() (*atomcss.Compiler, error) {
	opts, err := buildCompilerOptions()
	if err != nil {
		return nil, err
	}
	opts.Logger = newLogger()
	return atomcss.NewCompiler(opts)
}
