package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppDirName is the directory name used under the XDG base directories
const AppDirName = "here"

// Environment overrides
const (
	EnvConfigDir = "HERE_CONFIG_DIR"
	EnvStateDir  = "HERE_STATE_DIR"
	EnvHome      = "HOME"
)

// File names inside the directories
const (
	ConfigFileName = "config.toml"
	LogFileName    = AppDirName + ".log"
)

// ConfigDir returns the directory holding the user config file.
// XDG_CONFIG_HOME is read at call time so a changed environment is seen.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the directory holding the log file
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	if home := os.Getenv("XDG_STATE_HOME"); home != "" {
		return filepath.Join(home, AppDirName)
	}
	if xdg.StateHome != "" {
		return filepath.Join(xdg.StateHome, AppDirName)
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".local", "state", AppDirName)
}

// ConfigFile returns the default user config file path
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// LogFile returns the log file path
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ExpandHome expands a leading ~ to the user's home directory.
// ~user forms are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			// Can't expand, return as-is
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~\ on Windows
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}
