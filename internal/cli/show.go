package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective launch parameters",
	Long: `Print the launch record that a plain "s5plaunch" invocation would send to
the engine, as YAML. Nothing is launched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := buildSpec(cfg, "", false)
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(spec)
		if err != nil {
			return fmt.Errorf("failed to render launch parameters: %w", err)
		}
		fmt.Print(string(out))
		return nil
	},
}
