package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appDirName      = "brewmatch"
	journalFileName = "journal.db"
)

// DefaultDatabasePath places the journal under $XDG_DATA_HOME/brewmatch,
// falling back to ~/.local/share/brewmatch and then the working directory.
func DefaultDatabasePath() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appDirName, journalFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", journalFileName)
	}
	return filepath.Join(home, ".local", "share", appDirName, journalFileName)
}

// ExpandPath resolves a leading ~ and $VAR references in journal and
// catalog paths. A path whose home directory cannot be resolved keeps its ~.
func ExpandPath(path string) string {
	path = os.ExpandEnv(path)

	rest, found := strings.CutPrefix(path, "~")
	if !found || (rest != "" && !strings.HasPrefix(rest, string(filepath.Separator))) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
