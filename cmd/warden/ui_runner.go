package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"textwarden/internal/ui"
)

// runCheckWithUI runs work in the background while a Bubble Tea
// progress view consumes its events. The work function must emit one
// terminal event per file before returning.
func runCheckWithUI(title string, files []string, work func(events chan<- ui.Event) error) error {
	events := make(chan ui.Event, 256)
	errCh := make(chan error, 1)

	go func() {
		errCh <- work(events)
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()

	// If the program quit early the workers may still be sending;
	// drain until they close the channel so none of them block.
	go drainEvents(events)

	err := <-errCh
	if uiErr != nil {
		return uiErr
	}
	return err
}

func drainEvents(events <-chan ui.Event) {
	for range events {
	}
}
