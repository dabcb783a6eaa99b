package config

import (
	"os"
	"path/filepath"
)

// OSProbe implements [Probe] on top of the running process and the real
// filesystem.
type OSProbe struct{}

func (OSProbe) HomeDir() (string, error) {
	return os.UserHomeDir()
}

func (OSProbe) ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}

	return filepath.Dir(exe), nil
}

func (OSProbe) WorkingDir() (string, error) {
	return os.Getwd()
}

func (OSProbe) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OSProbe) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
