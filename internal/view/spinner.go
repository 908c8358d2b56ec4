package view

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/simplicity-js/installer/internal/color"
)

var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const (
	successSymbol = "✔"
	failureSymbol = "✖"
)

// Spinner shows an animated line while a long running step is in progress and
// replaces it with a success or failure line when the step ends. Without a
// terminal nothing is animated and only the final line is printed.
type Spinner struct {
	out      io.Writer
	terminal *os.File
	text     string
	frame    int
	cancel   context.CancelFunc
	done     chan int
}

// NewSpinner creates a spinner writing to out. terminal is the file whose
// size bounds the line width; nil disables animation.
func NewSpinner(out io.Writer, terminal *os.File) *Spinner {
	return &Spinner{out: out, terminal: terminal}
}

func (s *Spinner) Start(text string) *Spinner {
	s.text = text
	if s.terminal == nil || s.cancel != nil {
		return s
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan int, 1)
	go func() {
		s.done <- StartTTYRenderLoop(ctx, s, s.out, s.terminal)
	}()
	return s
}

func (s *Spinner) Succeed(text string) {
	s.stop(color.FgGreen(successSymbol), color.Success.Text(text))
}

func (s *Spinner) Fail(text string) {
	s.stop(color.FgRed(failureSymbol), color.Error.Text(text))
}

// Render draws the current frame. It is driven by the render loop only.
func (s *Spinner) Render(width int) int {
	frame := SpinnerFrames[s.frame%len(SpinnerFrames)]
	s.frame++
	_, err := fmt.Fprintf(s.out, "%s%s %s\n", ansiClearLine, color.FgCyan(frame), color.Info.Text(TrimTextToWidth(max(width-3, 0), s.text)))
	if err != nil {
		return 0
	}
	return 1
}

func (s *Spinner) stop(symbol string, text string) {
	if s.cancel != nil {
		s.cancel()
		lines := <-s.done
		s.cancel = nil
		fmt.Fprint(s.out, ansiLineOffset(lines)+ansiClearLine)
	}
	fmt.Fprintf(s.out, "%s %s\n", symbol, text)
}
