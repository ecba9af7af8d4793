package config

import (
	"os"
	"path/filepath"
)

// Paths holds the file system locations used by enterexit
type Paths struct {
	Home       string // ~/.enterexit
	ConfigPath string // ~/.enterexit/config.json
	LogDir     string // ~/.enterexit/logs
}

// DefaultPaths returns paths rooted at the user's home directory
func DefaultPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return PathsFor(filepath.Join(home, ".enterexit")), nil
}

// PathsFor returns paths rooted at dir
func PathsFor(dir string) *Paths {
	return &Paths{
		Home:       dir,
		ConfigPath: filepath.Join(dir, "config.json"),
		LogDir:     filepath.Join(dir, "logs"),
	}
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Home, p.LogDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
