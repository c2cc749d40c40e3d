// Package paths provides centralized path handling for packlist.
// It follows the XDG Base Directory specification for logs and configuration
// and uses the user's download directory as the default export location.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvStateDir overrides the XDG state directory for packlist
	EnvStateDir = "PACKLIST_STATE_DIR"

	// EnvConfigDir overrides the XDG config directory for packlist
	EnvConfigDir = "PACKLIST_CONFIG_DIR"

	// EnvExportDir overrides the default export directory
	EnvExportDir = "PACKLIST_EXPORT_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name used under XDG base directories
	AppDirName = "packlist"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "packlist.log"
)

// StateDir returns the directory holding packlist's state (log files).
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// ConfigDir returns the directory holding the user configuration file.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the path of the user configuration file.
// The file is optional.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// LogFile returns the path of the log file.
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// DownloadDir returns the directory exports are written to when the
// configuration does not name one.
func DownloadDir() string {
	if dir := os.Getenv(EnvExportDir); dir != "" {
		return dir
	}
	if xdg.UserDirs.Download != "" {
		return xdg.UserDirs.Download
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}
