package internal

import (
	"os"
	"path/filepath"
)

// Version is the kidsworld release version
const Version = "0.4.1"

// StateDir returns the directory holding progress and logs:
// ~/.local/state/kidsworld
func StateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".kidsworld")
	}
	return filepath.Join(home, ".local", "state", "kidsworld")
}
