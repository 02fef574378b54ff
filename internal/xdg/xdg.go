package xdg

import (
	"os"
	"path/filepath"
)

// Dirs resolves XDG Base Directory paths, falling back to ~/.config and
// /etc/xdg when the variables are unset.
type Dirs struct {
	configHome string
	configDirs []string
}

// New reads XDG_CONFIG_HOME and XDG_CONFIG_DIRS from the environment.
func New() *Dirs {
	home := os.Getenv("XDG_CONFIG_HOME")
	if home == "" {
		home = filepath.Join(userHome(), ".config")
	}
	dirs := filepath.SplitList(os.Getenv("XDG_CONFIG_DIRS"))
	if len(dirs) == 0 {
		dirs = []string{"/etc/xdg"}
	}
	return &Dirs{configHome: home, configDirs: dirs}
}

func userHome() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.TempDir()
}

func (d *Dirs) ConfigHome() string {
	return d.configHome
}

// ConfigDirs returns the preference-ordered base directories for configuration files
func (d *Dirs) ConfigDirs() []string {
	return append([]string{d.configHome}, d.configDirs...)
}

// FindConfig returns the first existing appName/fname in ConfigDirs.
func (d *Dirs) FindConfig(appName, fname string) (string, bool) {
	for _, dir := range d.ConfigDirs() {
		p := filepath.Join(dir, appName, fname)
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p, true
		}
	}
	return "", false
}
