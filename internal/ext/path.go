package ext

import (
	"os"
	"path/filepath"
	"strings"
)

// ReplaceHomeDirWithTilde shortens a path below the user's home directory to ~/...
func ReplaceHomeDirWithTilde(path string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return path
	}
	return replaceDirWithTilde(path, homeDir)
}

func replaceDirWithTilde(path, homeDir string) string {
	slashed := filepath.ToSlash(path)
	home := strings.TrimSuffix(filepath.ToSlash(homeDir), "/")
	if slashed == home {
		return "~"
	}
	if strings.HasPrefix(slashed, home+"/") {
		return "~" + strings.TrimPrefix(slashed, home)
	}
	return path
}
