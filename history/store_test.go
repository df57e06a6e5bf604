package history

import (
	"fmt"
	"testing"

	"github.com/etchlab/etch/caret"
)

func rec(s string, at int) Record {
	return Record{Snapshot: s, Position: caret.Position{Start: at, End: at}}
}

func TestPushUndoRedo(t *testing.T) {
	s := NewStore(0)
	s.Push(rec("a", 1))
	s.Push(rec("ab", 2))
	s.Push(rec("abc", 3))

	r, ok := s.Undo()
	if !ok || r.Snapshot != "ab" {
		t.Fatalf("Undo() = (%q, %v), want (\"ab\", true)", r.Snapshot, ok)
	}
	r, ok = s.Undo()
	if !ok || r.Snapshot != "a" {
		t.Fatalf("Undo() = (%q, %v), want (\"a\", true)", r.Snapshot, ok)
	}
	if _, ok := s.Undo(); ok {
		t.Error("Undo() past the oldest record reported ok")
	}
	if s.At() != 0 {
		t.Errorf("cursor = %d after exhausting undo, want 0", s.At())
	}

	r, ok = s.Redo()
	if !ok || r.Snapshot != "ab" {
		t.Fatalf("Redo() = (%q, %v), want (\"ab\", true)", r.Snapshot, ok)
	}
	r, ok = s.Redo()
	if !ok || r.Snapshot != "abc" {
		t.Fatalf("Redo() = (%q, %v), want (\"abc\", true)", r.Snapshot, ok)
	}
	if _, ok := s.Redo(); ok {
		t.Error("Redo() past the newest record reported ok")
	}
}

func TestPushSkipsDuplicate(t *testing.T) {
	s := NewStore(0)
	if !s.Push(rec("a", 1)) {
		t.Fatal("first push skipped")
	}
	if s.Push(rec("a", 1)) {
		t.Error("identical record was stored")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	// Same snapshot but a moved cursor is a distinct record.
	if !s.Push(rec("a", 0)) {
		t.Error("record with different position was skipped")
	}
}

func TestPushTruncatesRedoBranch(t *testing.T) {
	s := NewStore(0)
	s.Push(rec("a", 1))
	s.Push(rec("ab", 2))
	s.Push(rec("abc", 3))
	s.Undo()
	s.Undo() // back at "a"

	s.Push(rec("ax", 2))
	if s.Len() != 2 {
		t.Errorf("Len() = %d after pushing over a redo branch, want 2", s.Len())
	}
	if s.At() != s.Len()-1 {
		t.Errorf("cursor = %d, want last index %d", s.At(), s.Len()-1)
	}
	if _, ok := s.Redo(); ok {
		t.Error("redo branch survived a push")
	}
}

func TestBoundedEviction(t *testing.T) {
	s := NewStore(0)
	for i := 0; i < 400; i++ {
		s.Push(rec(fmt.Sprintf("s%d", i), i))
	}
	if s.Len() != DefaultMaxRecords {
		t.Fatalf("Len() = %d, want %d", s.Len(), DefaultMaxRecords)
	}

	// Undo all the way down; the oldest surviving record is s100.
	last := Record{}
	for {
		r, ok := s.Undo()
		if !ok {
			break
		}
		last = r
	}
	if last.Snapshot != "s100" {
		t.Errorf("oldest record = %q, want %q", last.Snapshot, "s100")
	}
}

func TestCustomMax(t *testing.T) {
	s := NewStore(5)
	for i := 0; i < 10; i++ {
		s.Push(rec(fmt.Sprintf("s%d", i), i))
	}
	if s.Len() != 5 {
		t.Errorf("Len() = %d, want 5", s.Len())
	}
}

func TestCanUndoRedo(t *testing.T) {
	s := NewStore(0)
	if s.CanUndo() || s.CanRedo() {
		t.Error("empty store reports undo/redo available")
	}
	s.Push(rec("a", 1))
	if s.CanUndo() {
		t.Error("single record reports undo available")
	}
	s.Push(rec("ab", 2))
	if !s.CanUndo() {
		t.Error("CanUndo() = false with two records")
	}
	s.Undo()
	if !s.CanRedo() {
		t.Error("CanRedo() = false after an undo")
	}
}

func TestClear(t *testing.T) {
	s := NewStore(0)
	s.Push(rec("a", 1))
	s.Push(rec("ab", 2))
	s.Clear()
	if s.Len() != 0 || s.At() != -1 {
		t.Errorf("after Clear: Len() = %d, At() = %d", s.Len(), s.At())
	}
	if _, ok := s.Undo(); ok {
		t.Error("Undo() on cleared store reported ok")
	}
}
