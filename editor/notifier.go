package editor

import (
	"time"

	"github.com/etchlab/etch/internal/utils"
)

// notifier coalesces rapid edit bursts into a single re-highlight pass and a
// single history push using two independently cancellable debounce timers
// with last-write-wins semantics.
type notifier struct {
	highlight utils.Debouncer
	record    utils.Debouncer

	highlightDelay time.Duration
	recordDelay    time.Duration
}

func newNotifier(highlightDelay, recordDelay time.Duration) *notifier {
	return &notifier{highlightDelay: highlightDelay, recordDelay: recordDelay}
}

// scheduleHighlight (re)arms the highlight timer.
func (n *notifier) scheduleHighlight(fn func()) {
	n.highlight.Debounce(n.highlightDelay, fn)
}

// scheduleRecord (re)arms the history-recording timer.
func (n *notifier) scheduleRecord(fn func()) {
	n.record.Debounce(n.recordDelay, fn)
}

// flush runs any pending passes immediately. Used by tests and teardown
// paths that must observe settled state.
func (n *notifier) flush() {
	n.highlight.Flush()
	n.record.Flush()
}

// cancel drops all pending passes. Pending timers are treated as cancelled
// at teardown.
func (n *notifier) cancel() {
	n.highlight.Cancel()
	n.record.Cancel()
}
