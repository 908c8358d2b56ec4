package terminalView

import (
	"fmt"
	"io"
	"strings"

	"github.com/simplicity-js/installer/internal/color"
	"github.com/simplicity-js/installer/internal/ext"
	"github.com/simplicity-js/installer/internal/view"
)

// LogFileView points the user at the log a failed run left behind.
type LogFileView struct {
	logFilePath string
	stdout      io.Writer
}

func NewLogFileView(logFilePath string, stdout io.Writer) *LogFileView {
	return &LogFileView{logFilePath: logFilePath, stdout: stdout}
}

func (v *LogFileView) Render(width int) int {
	const label = Padding + "See log file: "
	p := ext.ReplaceHomeDirWithTilde(v.logFilePath)
	if width > len(label) && len(label)+len([]rune(p)) > width {
		p = view.TruncateTextToWidth(width-len(label), p)
	}
	out := fmt.Sprintf("%s%s\n", label, color.FgMagenta(p))
	if _, err := fmt.Fprint(v.stdout, out); err != nil {
		return 0
	}
	return strings.Count(out, "\n")
}
