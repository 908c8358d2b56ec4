package view

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards the buffer shared between the render loop and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinner_NonTTYPrintsOnlyFinalLine(t *testing.T) {
	var buf bytes.Buffer

	NewSpinner(&buf, nil).Start("Creating project 'demo'").Succeed("Project 'demo' created.")

	expected := successSymbol + " Project 'demo' created.\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestSpinner_NonTTYFail(t *testing.T) {
	var buf bytes.Buffer

	NewSpinner(&buf, nil).Start("installing a@1...").Fail("a@1 could not be installed.")

	expected := failureSymbol + " a@1 could not be installed.\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestSpinner_Render(t *testing.T) {
	var buf bytes.Buffer
	spinner := NewSpinner(&buf, nil)
	spinner.text = "installing express@^4.19.2..."

	lines := spinner.Render(20)
	spinner.Render(20)

	if lines != 1 {
		t.Errorf("expected 1 line, got %d", lines)
	}
	expected := ansiClearLine + SpinnerFrames[0] + " installing expres\n" +
		ansiClearLine + SpinnerFrames[1] + " installing expres\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestSpinner_TTYRenderLoop(t *testing.T) {
	// A regular file is not a terminal, so the width falls back to the default.
	terminal, err := os.Create(filepath.Join(t.TempDir(), "tty"))
	if err != nil {
		t.Fatal(err)
	}
	defer terminal.Close()

	buf := &syncBuffer{}
	spinner := NewSpinner(buf, terminal).Start("Creating project 'demo'")
	time.Sleep(3 * RefreshInterval)
	spinner.Succeed("Project 'demo' created.")

	out := buf.String()
	if !strings.Contains(out, SpinnerFrames[0]+" Creating project 'demo'") {
		t.Errorf("expected first frame to be rendered, got %q", out)
	}
	if !strings.Contains(out, ansiLineOffset(1)) {
		t.Errorf("expected the line to be redrawn in place, got %q", out)
	}
	if !strings.HasSuffix(out, ansiLineOffset(1)+ansiClearLine+successSymbol+" Project 'demo' created.\n") {
		t.Errorf("expected final line to replace the spinner, got %q", out)
	}
}
