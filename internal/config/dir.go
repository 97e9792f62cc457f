// Package config resolves the cowfetch configuration directory and loads the
// optional config file inside it.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the per-user configuration directory.
const appName = "cowfetch"

// Dir returns the cowfetch configuration directory.
//
// Resolution:
//   - $COWFETCH_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/cowfetch if set (respects XDG on any platform)
//   - %AppData%/cowfetch on Windows
//   - ~/.config/cowfetch on macOS and Linux
func Dir() string {
	if dir := os.Getenv("COWFETCH_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// CowsDir returns the user's global cow directory, or "" when no
// configuration directory can be determined.
func CowsDir() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "cows")
}
