package view

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/simplicity-js/installer/internal/color"
)

// TimeElapsedView prints a label followed by the seconds passed since startTime.
type TimeElapsedView struct {
	label     string
	startTime time.Time
	stdout    io.Writer
	since     func(time.Time) time.Duration // Custom Since function
}

func NewTimeElapsedView(label string, startTime time.Time, stdout io.Writer, since func(time.Time) time.Duration) *TimeElapsedView {
	return &TimeElapsedView{
		label:     label,
		startTime: startTime,
		stdout:    stdout,
		since:     since,
	}
}

func (t *TimeElapsedView) Render(_ int) int {
	elapsed := t.since(t.startTime).Seconds()
	out := fmt.Sprintf("%s in %s seconds.\n", t.label, color.FgGreen(fmt.Sprintf("%.2f", elapsed)))
	_, err := fmt.Fprint(t.stdout, out)
	if err != nil {
		return 0
	}
	return strings.Count(out, "\n")
}
