package formatter

import (
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner animates a waiting message on one terminal line, with the elapsed
// seconds appended once the wait passes a second.
type Spinner struct {
	out     io.Writer
	message string

	once sync.Once
	quit chan struct{}
	done chan struct{}
}

// NewSpinner creates a spinner that draws to out.
func NewSpinner(out io.Writer, message string) *Spinner {
	return &Spinner{
		out:     out,
		message: message,
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start begins the animation in its own goroutine.
func (s *Spinner) Start() {
	started := time.Now()
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()
		for frame := 0; ; frame++ {
			select {
			case <-s.quit:
				fmt.Fprint(s.out, "\r\033[K")
				return
			case <-ticker.C:
				fmt.Fprint(s.out, "\r"+spinnerLine(frame, s.message, time.Since(started)))
			}
		}
	}()
}

// Stop clears the line and waits for the animation to exit. Repeat calls
// are no-ops.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.quit)
		<-s.done
	})
}

func spinnerLine(frame int, message string, elapsed time.Duration) string {
	line := "  " + StyleOrchid.Render(spinnerFrames[frame%len(spinnerFrames)]) + " " + Dim(message)
	if secs := int(elapsed / time.Second); secs > 0 {
		line += Dim(fmt.Sprintf(" %ds", secs))
	}
	return line
}

// StartSpinner starts a spinner on out and returns its Stop.
func StartSpinner(out io.Writer, message string) func() {
	s := NewSpinner(out, message)
	s.Start()
	return s.Stop
}
