package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// GetNotesDir resolves the directory that holds all note files. It checks
// MDNOTES_DIR first, then XDG paths, and finally falls back to the user's
// home directory.
func GetNotesDir() string {
	if explicit := os.Getenv("MDNOTES_DIR"); explicit != "" {
		return explicit
	}

	xdg.Reload()

	dataHome := xdg.DataHome
	if dataHome == "" {
		home := xdg.Home
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), "mdnotes")
			}
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "mdnotes")
}
