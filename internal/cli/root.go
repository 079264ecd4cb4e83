package cli

import (
	"strings"

	"github.com/s54http/s5plaunch/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "s5plaunch",
	Short: "Start the s5p proxy container",
	Long: `s5plaunch starts the s5p proxy service as a detached, auto-restarting
Docker container. The current directory is bind-mounted to /s5p/ inside the
container and ./pypy.sh is executed there, with host port 8080 published to
the service port 6666.

Running s5plaunch with no flags always issues the same request; whether the
name is already taken is the engine's business, not ours.

Examples:
  s5plaunch                       # Launch from the current directory
  s5plaunch -w ~/src/s5p          # Launch from another checkout
  s5plaunch --replace             # Replace an existing s5p container
  s5plaunch -p 9090               # Publish a different host port
  s5plaunch show                  # Print the effective launch parameters
  s5plaunch logs -f               # Follow the container's output`,
	RunE:         launch,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringP("workdir", "w", "", "host directory to mount at /s5p/ (default: current directory)")
	rootCmd.Flags().String("image", "", "image to run (default: pypy)")
	rootCmd.Flags().String("name", "", "container name (default: s5p)")
	rootCmd.Flags().StringP("port", "p", "", "host port to publish (default: 8080)")
	rootCmd.Flags().String("memory", "", "container memory limit, e.g. 512m (default: none)")
	rootCmd.Flags().Bool("replace", false, "force-remove an existing container with the same name first")

	// Bind flags to viper so they override defaults and environment
	viper.BindPFlag("container.image", rootCmd.Flags().Lookup("image"))
	viper.BindPFlag("container.name", rootCmd.Flags().Lookup("name"))
	viper.BindPFlag("container.host_port", rootCmd.Flags().Lookup("port"))
	viper.BindPFlag("container.memory_limit", rootCmd.Flags().Lookup("memory"))
}

func initConfig() {
	// Environment variables only; there is no config file to parse.
	viper.SetEnvPrefix("S5P")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	cfg = config.Load()
}
