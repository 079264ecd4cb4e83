package config

// Launch defaults for the s5p container. The inner service reads its
// application code from the mount root and listens on the container port.
const (
	DefaultName           = "s5p"
	DefaultImage          = "pypy"
	DefaultContainerMount = "/s5p/"
	DefaultWorkDir        = "/s5p/"
	DefaultHostPort       = "8080"
	DefaultContainerPort  = "6666"
	DefaultEntrypoint     = "./pypy.sh"
)

// Restart policy modes
const (
	RestartNo            = "no"
	RestartAlways        = "always"
	RestartOnFailure     = "on-failure"
	RestartUnlessStopped = "unless-stopped"
)
