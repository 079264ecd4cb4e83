package container

// LaunchSpec is the explicit launch record for one container. It is built
// fresh on every invocation; the caller's working directory enters as
// HostMount rather than being read ambiently at launch time.
type LaunchSpec struct {
	Name           string   `yaml:"name"`
	Image          string   `yaml:"image"`
	HostMount      string   `yaml:"host_mount"`
	ContainerMount string   `yaml:"container_mount"`
	WorkDir        string   `yaml:"workdir"`
	HostPort       string   `yaml:"host_port"`
	ContainerPort  string   `yaml:"container_port"`
	Command        []string `yaml:"command"`
	RestartPolicy  string   `yaml:"restart"`
	MemoryLimit    string   `yaml:"memory_limit,omitempty"`
	Replace        bool     `yaml:"-"`
}
