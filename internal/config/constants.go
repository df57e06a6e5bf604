package config

// Editor defaults.
const (
	DefaultTab            = "\t"
	DefaultMaxHistory     = 300
	DefaultHighlightDelay = 30  // milliseconds
	DefaultRecordDelay    = 300 // milliseconds
)

// SystemClipboard controls whether the demo pastes from the OS clipboard.
const SystemClipboard = true
