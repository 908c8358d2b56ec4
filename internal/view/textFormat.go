package view

import (
	"strings"
)

// TruncateTextToWidth cuts off the front of every line longer than width and
// marks the cut with an ellipsis. Shorter lines are padded with spaces.
func TruncateTextToWidth(width int, out string) string {
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		runes := []rune(line)
		switch {
		case len(runes) <= width:
			lines[i] = pad(width, runes)
		case width > 3:
			lines[i] = "..." + string(runes[len(runes)-width+3:])
		default:
			lines[i] = string(runes[len(runes)-max(width, 0):])
		}
	}
	return strings.Join(lines, "\n")
}

// TrimTextToWidth cuts off the end of every line longer than width. Shorter
// lines are padded with spaces.
func TrimTextToWidth(width int, out string) string {
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		runes := []rune(line)
		if len(runes) > width {
			lines[i] = string(runes[:max(width, 0)])
		} else {
			lines[i] = pad(width, runes)
		}
	}
	return strings.Join(lines, "\n")
}

func pad(width int, runes []rune) string {
	return string(runes) + strings.Repeat(" ", width-len(runes))
}
