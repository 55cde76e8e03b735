package formatter

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Spinner animates a single status line on w for non-TUI commands. It
// uses the same frames as the TUI's loading spinner.
type Spinner struct {
	w     io.Writer
	msg   string
	model spinner.Spinner

	started atomic.Bool
	once    sync.Once
	stop    chan struct{}
	done    chan struct{}
}

func NewSpinner(w io.Writer, msg string) *Spinner {
	return &Spinner{
		w:     w,
		msg:   msg,
		model: spinner.Dot,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Start draws frames until Stop is called. Only the first call has effect.
func (s *Spinner) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer close(s.done)
		t := time.NewTicker(s.model.FPS)
		defer t.Stop()

		for i := 0; ; i++ {
			frame := s.model.Frames[i%len(s.model.Frames)]
			fmt.Fprintf(s.w, "\r  %s %s", StylePurple.Render(frame), Dim(s.msg))
			select {
			case <-s.stop:
				fmt.Fprint(s.w, "\r\033[K")
				return
			case <-t.C:
			}
		}
	}()
}

// Stop clears the line and waits for the animation to exit. It is safe to
// call more than once, and on a spinner that was never started.
func (s *Spinner) Stop() {
	s.once.Do(func() { close(s.stop) })
	if s.started.Load() {
		<-s.done
	}
}

// StartSpinner starts a spinner and returns its Stop.
func StartSpinner(w io.Writer, msg string) func() {
	s := NewSpinner(w, msg)
	s.Start()
	return s.Stop
}
