package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/atomcss"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for atomcss.

Besides commands and flags, "atomcss tokens get" and "atomcss tokens var"
complete design-token paths from the preset and the configured tokens file.`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(out, true)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		default:
			return rootCmd.GenPowerShellCompletionWithDesc(out)
		}
	},
}

// completeTokenPaths offers leaf token paths for the first argument.
func completeTokenPaths(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	opts, err := buildCompilerOptions()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	opts.Logger = zap.NewNop()
	compiler, err := atomcss.NewCompiler(opts)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	var paths []string
	for _, p := range compiler.Tokens().Paths() {
		if strings.HasPrefix(p, toComplete) {
			paths = append(paths, p)
		}
	}
	return paths, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	tokensGetCmd.ValidArgsFunction = completeTokenPaths
	tokensVarCmd.ValidArgsFunction = completeTokenPaths
}
