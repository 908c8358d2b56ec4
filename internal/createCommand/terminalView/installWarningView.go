package terminalView

import (
	"fmt"
	"io"
	"strings"

	"github.com/simplicity-js/installer/internal/color"
)

type InstallWarningView struct {
	logFilename string
	stdout      io.Writer
}

func NewInstallWarningView(logFilename string, stdout io.Writer) *InstallWarningView {
	return &InstallWarningView{logFilename: logFilename, stdout: stdout}
}

func (v *InstallWarningView) Render(width int) int {
	text := "An error occurred while installing project dependencies. " +
		"You may still be able to run the project after manually installing the dependencies. " +
		fmt.Sprintf("Check the '%s' file for more on why dependencies installation failed.", v.logFilename)
	if width > len(Padding) {
		text = strings.ReplaceAll(WordWrap(text, width-len(Padding)), "\n", "\n"+Padding)
	}
	out := "\n" + Padding + color.Warn.Text(text) + "\n\n"
	if _, err := fmt.Fprint(v.stdout, out); err != nil {
		return 0
	}
	return strings.Count(out, "\n")
}

// WordWrap breaks text at spaces so no line is longer than width. Words longer
// than width are split.
func WordWrap(text string, width int) string {
	if width <= 0 {
		return text
	}

	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		for len([]rune(word)) > width {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			runes := []rune(word)
			lines = append(lines, string(runes[:width]))
			word = string(runes[width:])
		}
		switch {
		case line == "":
			line = word
		case len([]rune(line))+1+len([]rune(word)) > width:
			lines = append(lines, line)
			line = word
		default:
			line += " " + word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
