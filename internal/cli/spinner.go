package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// spinnerInterval is the delay between animation frames.
const spinnerInterval = 90 * time.Millisecond

// spinnerFrames is the braille animation cycle drawn on stderr.
var spinnerFrames = []string{"⠷", "⠯", "⠟", "⠻", "⠽", "⠾"}

// Spinner animates a progress message on stderr until stopped or until
// its parent context is cancelled. Long layout and render runs use it
// so the terminal does not sit silent.
type Spinner struct {
	message  string
	ctx      context.Context
	cancel   context.CancelFunc
	finished chan struct{}
	started  bool
	stop     sync.Once
	term     sync.Mutex
}

// newSpinner creates a spinner with the given message.
func newSpinner(message string) *Spinner {
	return newSpinnerWithContext(context.Background(), message)
}

// newSpinnerWithContext creates a spinner that also stops when ctx is
// cancelled, so Ctrl-C interrupts the animation cleanly.
func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	sctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		message:  message,
		ctx:      sctx,
		cancel:   cancel,
		finished: make(chan struct{}),
	}
}

// Start begins drawing frames. Call Stop (or one of its variants) to
// end the animation and clear the line.
func (s *Spinner) Start() {
	s.started = true
	go func() {
		defer close(s.finished)
		tick := time.NewTicker(spinnerInterval)
		defer tick.Stop()

		for frame := 0; ; frame++ {
			select {
			case <-s.ctx.Done():
				s.eraseLine()
				return
			case <-tick.C:
				glyph := spinnerFrames[frame%len(spinnerFrames)]
				s.term.Lock()
				fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(glyph), StyleDim.Render(s.message))
				s.term.Unlock()
			}
		}
	}()
}

// Stop ends the animation and clears the line. Safe to call more than
// once, and safe before Start.
func (s *Spinner) Stop() {
	s.stop.Do(func() {
		s.cancel()
		if s.started {
			<-s.finished
		}
		s.eraseLine()
	})
}

// StopWithSuccess stops the spinner and prints a success line.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and prints an error line.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the spinner's context has been cancelled,
// either by Stop or by the parent context.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}

func (s *Spinner) eraseLine() {
	s.term.Lock()
	defer s.term.Unlock()
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
}
