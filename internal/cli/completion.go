package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(completionCmd)
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for s5plaunch.

To load completions:

Bash:
  $ source <(s5plaunch completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ s5plaunch completion bash > /etc/bash_completion.d/s5plaunch
  # macOS:
  $ s5plaunch completion bash > $(brew --prefix)/etc/bash_completion.d/s5plaunch

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ s5plaunch completion zsh > "${fpath[1]}/_s5plaunch"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ s5plaunch completion fish | source

  # To load completions for each session, execute once:
  $ s5plaunch completion fish > ~/.config/fish/completions/s5plaunch.fish

PowerShell:
  PS> s5plaunch completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> s5plaunch completion powershell > s5plaunch.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
	},
}
