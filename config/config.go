package config

import (
	"os"
	"path/filepath"
)

// Dir returns the splitview configuration directory: $SPLITVIEW_CONFIG_DIR
// when set, else "splitview" under the platform config dir (XDG_CONFIG_HOME
// or ~/.config on Unix, APPDATA on Windows).
func Dir() string {
	if dir := os.Getenv("SPLITVIEW_CONFIG_DIR"); dir != "" {
		return dir
	}

	base, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "splitview")
}

// InitFile returns the path to init.lua
func InitFile() string {
	return filepath.Join(Dir(), "init.lua")
}
