package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/atomcss/internal/tokens"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Inspect design tokens",
	Long:  `Resolve, reference and validate the design tokens the compiler uses (preset merged with --tokens).`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
}

var tokensGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Print the resolved value of a token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		compiler, err := newCompiler()
		if err != nil {
			return err
		}
		v, err := compiler.Tokens().Resolve(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tokens.Format(v))
		return nil
	},
}

var tokensVarCmd = &cobra.Command{
	Use:   "var <path> [fallback]",
	Short: "Print the CSS var() reference of a token",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		compiler, err := newCompiler()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), compiler.Tokens().Var(args[0], args[1:]...))
		return nil
	},
}

var tokensValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Report broken references and cycles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		compiler, err := newCompiler()
		if err != nil {
			return err
		}
		problems := compiler.Tokens().Validate()
		for _, p := range problems {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		if len(problems) > 0 {
			return fmt.Errorf("%d invalid design token(s)", len(problems))
		}
		return nil
	},
}

var tokensCSSCmd = &cobra.Command{
	Use:   "css [selector]",
	Short: "Print every token as a CSS custom property",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		compiler, err := newCompiler()
		if err != nil {
			return err
		}
		selector := ""
		if len(args) == 1 {
			selector = args[0]
		}
		fmt.Fprint(cmd.OutOrStdout(), compiler.Variables(selector))
		return nil
	},
}

func init() {
	tokensCmd.AddCommand(tokensGetCmd)
	tokensCmd.AddCommand(tokensVarCmd)
	tokensCmd.AddCommand(tokensValidateCmd)
	tokensCmd.AddCommand(tokensCSSCmd)
}
