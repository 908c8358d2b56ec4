package github

import (
	"strings"

	"github.com/simplicity-js/installer/internal/fsutil"
)

// ReadToken returns the first non-blank line of tokenFile, or "" when the file
// does not exist or cannot be read.
func ReadToken(tokenFile string) string {
	if !fsutil.IsFile(tokenFile) {
		return ""
	}
	for line, err := range fsutil.ReadLines(tokenFile) {
		if err != nil {
			return ""
		}
		if token := strings.TrimSpace(line); token != "" {
			return token
		}
	}
	return ""
}

// ResolveToken prefers the token file over the fallback taken from the environment.
func ResolveToken(tokenFile string, fallback string) string {
	if token := ReadToken(tokenFile); token != "" {
		return token
	}
	return strings.TrimSpace(fallback)
}
