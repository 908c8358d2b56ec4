package view

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

const RefreshInterval = 80 * time.Millisecond

const defaultWidth = 80

// StartTTYRenderLoop re-renders r in place until ctx is cancelled and returns
// the number of lines the last render occupied, so the caller can overwrite them.
func StartTTYRenderLoop(ctx context.Context, r View, out io.Writer, terminal *os.File) int {
	lineCount := r.Render(terminalWidth(terminal))

	ticker := time.NewTicker(RefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return lineCount
		case <-ticker.C:
			if _, err := fmt.Fprint(out, ansiLineOffset(lineCount)); err != nil {
				return 0
			}
			lineCount = r.Render(terminalWidth(terminal))
		}
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// TerminalWidth is the width of terminal, or 0 when there is no terminal.
func TerminalWidth(terminal *os.File) int {
	if terminal == nil {
		return 0
	}
	return terminalWidth(terminal)
}

func terminalWidth(terminal *os.File) int {
	if terminal == nil {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(terminal.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
