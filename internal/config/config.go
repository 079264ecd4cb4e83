package config

import (
	"github.com/spf13/viper"
)

// Config represents the full configuration structure
type Config struct {
	Container ContainerConfig `mapstructure:"container"`
}

// ContainerConfig configures the launched container. Every field has a
// literal default; values come from defaults, S5P_* environment variables,
// and bound flags only — no config file is ever read.
type ContainerConfig struct {
	Name           string `mapstructure:"name"`
	Image          string `mapstructure:"image"`
	ContainerMount string `mapstructure:"mount"`
	WorkDir        string `mapstructure:"workdir"`
	HostPort       string `mapstructure:"host_port"`
	ContainerPort  string `mapstructure:"container_port"`
	Entrypoint     string `mapstructure:"entrypoint"`
	Restart        string `mapstructure:"restart"`
	MemoryLimit    string `mapstructure:"memory_limit"`
}

// Load loads configuration from viper with defaults
func Load() *Config {
	setDefaults()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		// Return defaults on error
		return Default()
	}

	return cfg
}

func setDefaults() {
	viper.SetDefault("container.name", DefaultName)
	viper.SetDefault("container.image", DefaultImage)
	viper.SetDefault("container.mount", DefaultContainerMount)
	viper.SetDefault("container.workdir", DefaultWorkDir)
	viper.SetDefault("container.host_port", DefaultHostPort)
	viper.SetDefault("container.container_port", DefaultContainerPort)
	viper.SetDefault("container.entrypoint", DefaultEntrypoint)
	viper.SetDefault("container.restart", RestartAlways)
	viper.SetDefault("container.memory_limit", "")
}

// Default returns the literal launch record from the constants table.
func Default() *Config {
	return &Config{
		Container: ContainerConfig{
			Name:           DefaultName,
			Image:          DefaultImage,
			ContainerMount: DefaultContainerMount,
			WorkDir:        DefaultWorkDir,
			HostPort:       DefaultHostPort,
			ContainerPort:  DefaultContainerPort,
			Entrypoint:     DefaultEntrypoint,
			Restart:        RestartAlways,
			MemoryLimit:    "",
		},
	}
}
