// Package clipboard isolates the platform clipboard behind a small
// capability interface so paste handling is testable without an OS
// clipboard.
package clipboard

// Host is the platform capability for clipboard access. ReadText reports
// false when no plain-text payload is available.
type Host interface {
	ReadText() (string, bool)
	WriteText(text string) error
}

// Memory is an in-memory Host for tests.
type Memory struct {
	text string
	set  bool
}

// NewMemory creates a memory clipboard, optionally pre-loaded.
func NewMemory(text string) *Memory {
	return &Memory{text: text, set: text != ""}
}

// ReadText returns the stored payload.
func (m *Memory) ReadText() (string, bool) {
	return m.text, m.set
}

// WriteText stores the payload.
func (m *Memory) WriteText(text string) error {
	m.text = text
	m.set = true
	return nil
}
