package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/s54http/s5plaunch/internal/container"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().BoolP("follow", "f", false, "follow log output")
}

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show output from the s5p container",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			cancel()
		}()

		follow, _ := cmd.Flags().GetBool("follow")

		launcher, err := container.NewLauncher()
		if err != nil {
			return fmt.Errorf("failed to create container launcher: %w", err)
		}
		defer launcher.Close()

		return launcher.Logs(ctx, cfg.Container.Name, follow, os.Stdout, os.Stderr)
	},
}
