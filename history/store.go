// Package history provides the bounded undo/redo stack of content snapshots.
package history

import (
	"sync"

	"github.com/etchlab/etch/caret"
)

// DefaultMaxRecords caps the stack when no explicit limit is given.
const DefaultMaxRecords = 300

// Record is one history entry: the serialized content tree plus the flat
// position the cursor had when the snapshot was taken. Immutable once pushed.
type Record struct {
	Snapshot string
	Position caret.Position
}

// Store holds an ordered sequence of records plus a cursor index into it.
// Pushing truncates any stale redo branch; the sequence is bounded by
// evicting the oldest record once the cap is reached.
type Store struct {
	mu      sync.Mutex
	records []Record
	at      int // index of the current record, -1 when empty
	max     int
}

// NewStore creates an empty store. max <= 0 selects DefaultMaxRecords.
func NewStore(max int) *Store {
	if max <= 0 {
		max = DefaultMaxRecords
	}
	return &Store{
		records: make([]Record, 0, max),
		at:      -1,
		max:     max,
	}
}

// Push appends a record after the current cursor, discarding any redo
// branch. A record identical to the current one (same snapshot, same
// start/end offsets) is skipped. Returns whether the record was stored.
func (s *Store) Push(rec Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.at >= 0 {
		cur := s.records[s.at]
		if cur.Snapshot == rec.Snapshot &&
			cur.Position.Start == rec.Position.Start &&
			cur.Position.End == rec.Position.End {
			return false
		}
	}

	s.at++
	s.records = append(s.records[:s.at], rec)

	if len(s.records) > s.max {
		drop := len(s.records) - s.max
		s.records = s.records[drop:]
		s.at -= drop
	}
	return true
}

// Undo steps the cursor back and returns the record to reinstate. When the
// stack is exhausted the cursor clamps to the oldest entry and ok is false.
func (s *Store) Undo() (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) == 0 {
		s.at = -1
		return Record{}, false
	}
	s.at--
	if s.at < 0 {
		s.at = 0
		return Record{}, false
	}
	return s.records[s.at], true
}

// Redo steps the cursor forward and returns the record to reinstate. When
// there is no redo branch the cursor clamps to the last entry and ok is
// false.
func (s *Store) Redo() (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.at++
	if s.at >= len(s.records) {
		s.at = len(s.records) - 1
		return Record{}, false
	}
	return s.records[s.at], true
}

// CanUndo reports whether an older record exists.
func (s *Store) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.at > 0
}

// CanRedo reports whether a newer record exists.
func (s *Store) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.at >= 0 && s.at < len(s.records)-1
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// At returns the cursor index (-1 when empty).
func (s *Store) At() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.at
}

// Clear resets the store, keeping allocated capacity.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = s.records[:0]
	s.at = -1
}
