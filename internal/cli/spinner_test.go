package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinner("working")
	s.Start()
	time.Sleep(2 * spinnerInterval)
	s.Stop()

	if !s.Cancelled() {
		t.Error("Cancelled() = false after Stop()")
	}
}

func TestSpinnerParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "working")
	s.Start()
	cancel()
	time.Sleep(2 * spinnerInterval)

	if !s.Cancelled() {
		t.Error("Cancelled() = false after parent context cancel")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner("working")
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopBeforeStart(t *testing.T) {
	s := newSpinner("never started")
	s.Stop()
}

func TestSpinnerStopVariants(t *testing.T) {
	s := newSpinner("working")
	s.Start()
	s.StopWithSuccess("done")

	s = newSpinner("working")
	s.Start()
	s.StopWithError("failed")
}
