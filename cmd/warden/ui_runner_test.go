package main

import (
	"testing"
	"time"

	"textwarden/internal/ui"
)

func TestDrainEventsUnblocksWorkers(t *testing.T) {
	// Unbuffered channel: every send blocks until someone receives, the
	// worst case of a view that stopped consuming mid-run.
	events := make(chan ui.Event)
	done := make(chan struct{})

	go func() {
		for i := 0; i < 300; i++ {
			events <- ui.Event{File: "file.txt", Status: ui.StatusDone, Findings: i}
		}
		close(events)
		close(done)
	}()

	go drainEvents(events)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker still blocked sending events after the drain started")
	}
}
