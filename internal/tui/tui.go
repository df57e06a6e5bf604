// Package tui manages the terminal screen for the demo binary.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TUI wraps the tcell screen.
type TUI struct {
	screen tcell.Screen
}

// New creates and initializes the terminal screen.
func New() (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	s.SetStyle(tcell.StyleDefault)
	return &TUI{screen: s}, nil
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// PollEvent retrieves the next event.
func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// Interrupt posts a wake-up event so background callbacks can request a
// redraw from the event loop's goroutine.
func (t *TUI) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Clear clears the entire screen.
func (t *TUI) Clear() {
	t.screen.Clear()
}

// Show makes pending changes visible.
func (t *TUI) Show() {
	t.screen.Show()
}

// Size returns the terminal dimensions.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// GetScreen provides direct access to the underlying screen.
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}
