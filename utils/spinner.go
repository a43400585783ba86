package utils

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Spinner is the progress indicator shown while a pack or unpack
// operation is running. It writes to stderr so the indicator never
// mixes with image data sent to stdout.
type Spinner struct {
	// StopMsg is printed once the indicator is stopped.
	StopMsg string

	mu         sync.Mutex
	writer     io.Writer
	message    string
	delay      time.Duration
	hideCursor bool
	stopChan   chan struct{}
}

// The indicator glyphs, cycled in order.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Terminal control sequences used by the indicator.
const (
	cursorHide = "\x1b[?25l"
	cursorShow = "\x1b[?25h"
	eraseLine  = "\r\x1b[2K"
)

// NewSpinner instantiates a new progress indicator.
func NewSpinner(msg string, d time.Duration, hideCursor bool) *Spinner {
	return &Spinner{
		writer:     os.Stderr,
		message:    msg,
		delay:      d,
		hideCursor: hideCursor,
		stopChan:   make(chan struct{}, 1),
	}
}

// Start spins the indicator in a separate goroutine until Stop is called.
func (s *Spinner) Start() {
	if s.hideCursor {
		fmt.Fprint(s.writer, cursorHide)
	}

	go func() {
		for i := 0; ; i++ {
			select {
			case <-s.stopChan:
				return
			default:
				s.mu.Lock()
				glyph := spinnerFrames[i%len(spinnerFrames)]
				fmt.Fprintf(s.writer, "\r%s %s", s.message,
					DecorateText(glyph, SuccessMessage))
				s.mu.Unlock()

				time.Sleep(s.delay)
			}
		}
	}()
}

// Stop terminates the progress indicator: it erases the indicator line,
// restores the cursor and prints the stop message. The stop channel is
// buffered, so Stop is safe to call even when Start never ran.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprint(s.writer, eraseLine)
	s.RestoreCursor()
	if len(s.StopMsg) > 0 {
		fmt.Fprint(s.writer, s.StopMsg)
	}
	s.stopChan <- struct{}{}
}

// RestoreCursor restores the cursor visibility back. It must run before
// the process exits, otherwise the terminal is left with a hidden cursor.
func (s *Spinner) RestoreCursor() {
	if s.hideCursor {
		fmt.Fprint(s.writer, cursorShow)
	}
}
