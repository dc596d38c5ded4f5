// Package config loads wikiexport options from defaults, config files, the
// environment and command line flags.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the wikiexport configuration directory.
//
// Resolution:
//   - $WIKIEXPORT_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/wikiexport if set (respects XDG on any platform)
//   - %AppData%/wikiexport on Windows
//   - ~/.config/wikiexport on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("WIKIEXPORT_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}
