package view

import (
	"bytes"
	"testing"
	"time"
)

func TestTimeElapsedView_Render(t *testing.T) {
	startTime := time.Now()
	mockSince := func(time.Time) time.Duration {
		return 2*time.Second + 500*time.Millisecond
	}
	var buf bytes.Buffer

	v := NewTimeElapsedView("  12 packages installed", startTime, &buf, mockSince)
	lines := v.Render(80)

	expected := "  12 packages installed in 2.50 seconds.\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
	if lines != 1 {
		t.Errorf("expected 1 line, got %d", lines)
	}
}
