package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/moby/term"
	"github.com/s54http/s5plaunch/internal/config"
	"github.com/s54http/s5plaunch/internal/container"
	"github.com/spf13/cobra"
)

func launch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	workDir, _ := cmd.Flags().GetString("workdir")
	replace, _ := cmd.Flags().GetBool("replace")

	spec, err := buildSpec(cfg, workDir, replace)
	if err != nil {
		return err
	}

	launcher, err := container.NewLauncher()
	if err != nil {
		return fmt.Errorf("failed to create container launcher: %w", err)
	}
	defer launcher.Close()

	id, err := launcher.Launch(ctx, spec)
	if err != nil {
		return err
	}

	// Full ID on a pipe so scripts can capture it
	if term.IsTerminal(os.Stdout.Fd()) {
		fmt.Printf("Started container %s (%s)\n", spec.Name, shortID(id))
	} else {
		fmt.Println(id)
	}
	return nil
}

// buildSpec assembles the launch record from configuration plus the one
// caller-dependent value, the host mount. An empty workDir means the process's
// current directory, resolved here so the launcher never reads it ambiently.
func buildSpec(cfg *config.Config, workDir string, replace bool) (container.LaunchSpec, error) {
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return container.LaunchSpec{}, fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	hostMount, err := filepath.Abs(workDir)
	if err != nil {
		return container.LaunchSpec{}, fmt.Errorf("invalid working directory %q: %w", workDir, err)
	}

	return container.LaunchSpec{
		Name:           cfg.Container.Name,
		Image:          cfg.Container.Image,
		HostMount:      hostMount,
		ContainerMount: cfg.Container.ContainerMount,
		WorkDir:        cfg.Container.WorkDir,
		HostPort:       cfg.Container.HostPort,
		ContainerPort:  cfg.Container.ContainerPort,
		Command:        []string{cfg.Container.Entrypoint},
		RestartPolicy:  cfg.Container.Restart,
		MemoryLimit:    cfg.Container.MemoryLimit,
		Replace:        replace,
	}, nil
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
