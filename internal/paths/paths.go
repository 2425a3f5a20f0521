package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the application name used for config directory naming.
const AppName = "handlescout"

// envConfigDir overrides the config directory when set. Used by tests
// and by users who keep their config outside XDG locations.
const envConfigDir = "HANDLESCOUT_CONFIG_DIR"

// ConfigHome returns the base directory for user configuration files.
// It honors HANDLESCOUT_CONFIG_DIR, then falls back to the XDG config home.
func ConfigHome() string {
	if dir := os.Getenv(envConfigDir); dir != "" {
		return dir
	}
	return xdg.ConfigHome
}

// ConfigDir returns the handlescout configuration directory.
func ConfigDir() string {
	if dir := os.Getenv(envConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppName)
}

// ConfigFile returns the path to the main configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// PlatformsFile returns the path to the optional user platform overlay.
// The file does not have to exist; callers check before loading.
func PlatformsFile() string {
	return filepath.Join(ConfigDir(), "platforms.toml")
}
