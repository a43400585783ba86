package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestSpinner_StopWithoutStart(t *testing.T) {
	var buf bytes.Buffer

	s := NewSpinner("packing sprites...", time.Millisecond, true)
	s.writer = &buf
	s.StopMsg = "done"

	// Stop must not block when the indicator never started.
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "done") {
		t.Errorf("the stop message should have been printed, got %q", out)
	}
	if !strings.Contains(out, cursorShow) {
		t.Errorf("the cursor visibility should have been restored, got %q", out)
	}
}

func TestSpinner_StartAndStop(t *testing.T) {
	var buf bytes.Buffer

	s := NewSpinner("unpacking sprites...", time.Millisecond, true)
	s.writer = &buf

	s.Start()
	time.Sleep(time.Millisecond * 10)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, cursorHide) {
		t.Errorf("the cursor should have been hidden on start, got %q", out)
	}
	if !strings.Contains(out, "unpacking sprites...") {
		t.Errorf("the indicator message should have been written, got %q", out)
	}
}
