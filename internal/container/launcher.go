package container

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/docker/docker/api/types"
	containerTypes "github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/docker/api/types/network"
	"github.com/docker/docker/api/types/strslice"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"
	"github.com/docker/go-connections/nat"
	"github.com/docker/go-units"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

// engineAPI is the slice of the Docker client the launcher touches.
// Tests substitute a fake engine through it.
type engineAPI interface {
	ContainerCreate(ctx context.Context, config *containerTypes.Config, hostConfig *containerTypes.HostConfig, networkingConfig *network.NetworkingConfig, platform *ocispec.Platform, containerName string) (containerTypes.CreateResponse, error)
	ContainerStart(ctx context.Context, containerID string, options containerTypes.StartOptions) error
	ContainerRemove(ctx context.Context, containerID string, options containerTypes.RemoveOptions) error
	ContainerInspect(ctx context.Context, containerID string) (types.ContainerJSON, error)
	ContainerLogs(ctx context.Context, containerID string, options containerTypes.LogsOptions) (io.ReadCloser, error)
	Close() error
}

// Launcher manages Docker container operations
type Launcher struct {
	client engineAPI
}

// NewLauncher creates a new container launcher
func NewLauncher() (*Launcher, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	// Verify connection
	if _, err := cli.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to Docker: %w", err)
	}

	return &Launcher{client: cli}, nil
}

// Close closes the Docker client
func (l *Launcher) Close() error {
	return l.client.Close()
}

// Launch creates and starts one detached container from spec. It is a single
// fire-and-forget run call: no attach, no wait, no polling. Any engine error
// propagates to the caller unclassified; the container, once started, outlives
// this process and the engine's restart policy takes over.
func (l *Launcher) Launch(ctx context.Context, spec LaunchSpec) (string, error) {
	port, err := nat.NewPort("tcp", spec.ContainerPort)
	if err != nil {
		return "", fmt.Errorf("invalid container port %q: %w", spec.ContainerPort, err)
	}

	var memoryLimit int64
	if spec.MemoryLimit != "" {
		limit, err := units.RAMInBytes(spec.MemoryLimit)
		if err != nil {
			return "", fmt.Errorf("invalid memory limit %q: %w", spec.MemoryLimit, err)
		}
		memoryLimit = limit
	}

	if spec.Replace {
		err := l.client.ContainerRemove(ctx, spec.Name, containerTypes.RemoveOptions{Force: true})
		if err != nil && !client.IsErrNotFound(err) {
			return "", fmt.Errorf("failed to remove container %q: %w", spec.Name, err)
		}
	}

	containerConfig := &containerTypes.Config{
		Image:        spec.Image,
		Cmd:          strslice.StrSlice(spec.Command),
		WorkingDir:   spec.WorkDir,
		ExposedPorts: nat.PortSet{port: struct{}{}},
	}

	hostConfig := &containerTypes.HostConfig{
		Mounts: []mount.Mount{
			{
				Type:   mount.TypeBind,
				Source: spec.HostMount,
				Target: spec.ContainerMount,
			},
		},
		PortBindings: nat.PortMap{
			port: []nat.PortBinding{{HostPort: spec.HostPort}},
		},
		RestartPolicy: containerTypes.RestartPolicy{
			Name: containerTypes.RestartPolicyMode(spec.RestartPolicy),
		},
		Resources: containerTypes.Resources{
			Memory: memoryLimit,
		},
	}

	resp, err := l.client.ContainerCreate(ctx, containerConfig, hostConfig, nil, nil, spec.Name)
	if err != nil {
		if strings.Contains(err.Error(), "No such image") {
			return "", fmt.Errorf("image %q not found locally; pull it and retry: %w", spec.Image, err)
		}
		return "", fmt.Errorf("failed to create container: %w", err)
	}

	if err := l.client.ContainerStart(ctx, resp.ID, containerTypes.StartOptions{}); err != nil {
		return "", fmt.Errorf("failed to start container: %w", err)
	}

	return resp.ID, nil
}

// Logs streams the named container's output to out and errOut. Containers
// without a TTY multiplex both streams onto one connection, so those are
// demultiplexed with stdcopy; TTY containers produce a single raw stream.
func (l *Launcher) Logs(ctx context.Context, name string, follow bool, out, errOut io.Writer) error {
	info, err := l.client.ContainerInspect(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to inspect container %q: %w", name, err)
	}

	logs, err := l.client.ContainerLogs(ctx, name, containerTypes.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     follow,
	})
	if err != nil {
		return fmt.Errorf("failed to read logs for %q: %w", name, err)
	}
	defer logs.Close()

	if info.Config != nil && info.Config.Tty {
		_, err = io.Copy(out, logs)
	} else {
		_, err = stdcopy.StdCopy(out, errOut, logs)
	}
	if err != nil && err != io.EOF && ctx.Err() == nil {
		return fmt.Errorf("error streaming logs: %w", err)
	}
	return nil
}
