package config

//go:generate mockgen -source=interfaces.go -destination=../mock/probe_mock.go -package=mock

// Probe is the view of the process environment used while resolving the
// configuration. Each directory lookup may fail; callers skip what they
// cannot determine.
type Probe interface {
	// HomeDir returns the current user's home directory.
	HomeDir() (string, error)
	// ExecutableDir returns the directory containing the running executable.
	ExecutableDir() (string, error)
	// WorkingDir returns the current working directory.
	WorkingDir() (string, error)
	// Exists reports whether a filesystem entry exists at path.
	Exists(path string) bool
	// IsDir reports whether path is an existing directory.
	IsDir(path string) bool
}
