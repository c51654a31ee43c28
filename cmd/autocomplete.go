package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(completionCmd)
}

var completionCmd = &cobra.Command{
	Hidden:                true,
	DisableFlagsInUseLine: true,
	Use:                   "completion [bash|zsh|fish|powershell]",
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Short:                 "Output shell completion code",
	Long:                  completionHelp(rootCmd.Name()),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := cmd.Root()
		switch args[0] {
		case "bash":
			return root.GenBashCompletionV2(os.Stdout, true)
		case "zsh":
			return root.GenZshCompletion(os.Stdout)
		case "fish":
			return root.GenFishCompletion(os.Stdout, true)
		default:
			return root.GenPowerShellCompletionWithDesc(os.Stdout)
		}
	},
}

func completionHelp(name string) string {
	return strings.ReplaceAll(`To load completions for the current shell:

  bash:        source <(NAME completion bash)
  zsh:         source <(NAME completion zsh)
  fish:        NAME completion fish | source
  powershell:  NAME completion powershell | Out-String | Invoke-Expression

Write the output to your shell's completion directory to load it in every session.
`, "NAME", name)
}

// completeVersions completes the first argument with installed version ids and the version aliases
func completeVersions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	candidates := []string{"latest\tnewest release", "snapshot\tnewest snapshot"}
	installed, err := newInstance().GetInstalledVersions()
	if err != nil {
		return candidates, cobra.ShellCompDirectiveNoFileComp
	}
	for _, v := range installed {
		if strings.HasPrefix(v.ID, toComplete) {
			candidates = append(candidates, fmt.Sprintf("%s\tinstalled %s", v.ID, v.Type))
		}
	}
	return candidates, cobra.ShellCompDirectiveNoFileComp
}
