// Package event provides the synchronous pub/sub bus the editor uses to
// notify collaborators (gutter overlay, demo app) about state changes.
package event

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// TypeContentChanged fires after any edit mutates the content tree.
	TypeContentChanged
	// TypeHighlighted fires after a highlight pass over the content tree.
	TypeHighlighted
	// TypeHistoryRecorded fires when a snapshot is pushed onto the history.
	TypeHistoryRecorded
	// TypeFocusChanged fires when the editing surface gains or loses focus.
	TypeFocusChanged
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// ContentChangedData carries the flattened text after an edit.
type ContentChangedData struct {
	Text string
}

// HighlightedData carries the flattened text the highlighter decorated.
type HighlightedData struct {
	Text string
}

// HistoryRecordedData carries the history cursor after a push.
type HistoryRecordedData struct {
	Index int
	Count int
}

// FocusChangedData carries the new focus state.
type FocusChangedData struct {
	Focused bool
}
