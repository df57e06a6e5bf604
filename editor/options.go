package editor

import (
	"time"

	"github.com/etchlab/etch/clipboard"
	"github.com/etchlab/etch/selection"
)

// Options configures an Editor. The zero value of any field selects its
// default, so a partial Options can be passed to New and UpdateOptions.
type Options struct {
	// Tab is the literal text inserted or removed per indent level.
	Tab string
	// MaxHistory bounds the undo stack.
	MaxHistory int
	// HighlightDelay is the debounce window between the last key-up and the
	// re-highlight / update-callback pass.
	HighlightDelay time.Duration
	// RecordDelay is the debounce window that closes a history recording
	// after the last qualifying keystroke.
	RecordDelay time.Duration
	// Selection is the platform selection capability. Defaults to an
	// in-memory host.
	Selection selection.Host
	// Clipboard is the platform clipboard capability. Nil disables paste.
	Clipboard clipboard.Host
}

// Defaults used when an Options field is left zero.
const (
	DefaultTab            = "\t"
	DefaultHighlightDelay = 30 * time.Millisecond
	DefaultRecordDelay    = 300 * time.Millisecond
)

func (o *Options) applyDefaults() {
	if o.Tab == "" {
		o.Tab = DefaultTab
	}
	if o.HighlightDelay <= 0 {
		o.HighlightDelay = DefaultHighlightDelay
	}
	if o.RecordDelay <= 0 {
		o.RecordDelay = DefaultRecordDelay
	}
	if o.Selection == nil {
		o.Selection = selection.NewMemoryHost()
	}
}

// merge overlays the non-zero fields of patch onto o.
func (o *Options) merge(patch Options) {
	if patch.Tab != "" {
		o.Tab = patch.Tab
	}
	if patch.MaxHistory > 0 {
		o.MaxHistory = patch.MaxHistory
	}
	if patch.HighlightDelay > 0 {
		o.HighlightDelay = patch.HighlightDelay
	}
	if patch.RecordDelay > 0 {
		o.RecordDelay = patch.RecordDelay
	}
	if patch.Selection != nil {
		o.Selection = patch.Selection
	}
	if patch.Clipboard != nil {
		o.Clipboard = patch.Clipboard
	}
}
