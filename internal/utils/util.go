// Package utils holds small shared helpers: the debouncer behind the change
// notifier and rune/byte offset conversions used when rendering.
package utils

import (
	"sync"
	"time"
	"unicode/utf8"
)

// Debouncer collapses a burst of calls into one delayed invocation with
// last-write-wins semantics: each Debounce cancels the previous pending call.
type Debouncer struct {
	mutex   sync.Mutex
	timer   *time.Timer
	pending func()
}

// Debounce schedules fn after the given duration, cancelling any previously
// scheduled call.
func (d *Debouncer) Debounce(duration time.Duration, fn func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending = fn
	d.timer = time.AfterFunc(duration, func() {
		d.mutex.Lock()
		run := d.pending
		d.pending = nil
		d.timer = nil
		d.mutex.Unlock()
		if run != nil {
			run()
		}
	})
}

// Cancel drops any pending call without running it.
func (d *Debouncer) Cancel() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}

// Flush runs any pending call immediately instead of waiting for the timer.
func (d *Debouncer) Flush() {
	d.mutex.Lock()
	run := d.pending
	d.pending = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mutex.Unlock()
	if run != nil {
		run()
	}
}

// Millis converts a millisecond count from the config file into a Duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// RuneIndexToByteOffset converts a rune index to a byte offset in a string.
// Returns -1 if runeIndex is out of bounds.
func RuneIndexToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	byteOffset := 0
	currentRune := 0
	for byteOffset < len(s) {
		if currentRune == runeIndex {
			return byteOffset
		}
		_, size := utf8.DecodeRuneInString(s[byteOffset:])
		byteOffset += size
		currentRune++
	}
	if currentRune == runeIndex {
		return len(s)
	}
	return -1
}

// ByteOffsetToRuneIndex converts a byte offset to a rune index in a string.
// Offsets beyond the string clamp to its end.
func ByteOffsetToRuneIndex(s string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset > len(s) {
		byteOffset = len(s)
	}
	runeIndex := 0
	currentOffset := 0
	for currentOffset < byteOffset {
		_, size := utf8.DecodeRuneInString(s[currentOffset:])
		if currentOffset+size > byteOffset {
			break
		}
		currentOffset += size
		runeIndex++
	}
	return runeIndex
}

// OffsetToLineCol converts a flat byte offset into a 0-based line index and
// byte column within that line.
func OffsetToLineCol(text string, offset int) (line, col int) {
	if offset > len(text) {
		offset = len(text)
	}
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return line, col
}
