package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/etchlab/etch/internal/logger"
)

// System reads and writes the OS clipboard.
type System struct{}

// NewSystem creates a system clipboard host.
func NewSystem() *System {
	return &System{}
}

// ReadText returns the OS clipboard's plain-text payload, false when the
// clipboard is empty or unavailable on this platform.
func (s *System) ReadText() (string, bool) {
	text, err := clipboard.ReadAll()
	if err != nil {
		logger.Warnf("clipboard: read failed: %v", err)
		return "", false
	}
	return text, text != ""
}

// WriteText replaces the OS clipboard contents.
func (s *System) WriteText(text string) error {
	return clipboard.WriteAll(text)
}
