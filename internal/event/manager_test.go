package event

import "testing"

func TestSubscribeDispatch(t *testing.T) {
	m := NewManager()
	var got []Event
	m.Subscribe(TypeContentChanged, func(e Event) bool {
		got = append(got, e)
		return true
	})

	m.Dispatch(TypeContentChanged, ContentChangedData{Text: "abc"})
	m.Dispatch(TypeHighlighted, HighlightedData{Text: "abc"}) // no subscriber

	if len(got) != 1 {
		t.Fatalf("received %d events, want 1", len(got))
	}
	data, ok := got[0].Data.(ContentChangedData)
	if !ok || data.Text != "abc" {
		t.Errorf("event data = %#v, want ContentChangedData{Text: \"abc\"}", got[0].Data)
	}
}

func TestDispatchReachesAllHandlers(t *testing.T) {
	m := NewManager()
	calls := 0
	for i := 0; i < 3; i++ {
		m.Subscribe(TypeHistoryRecorded, func(Event) bool {
			calls++
			return false
		})
	}
	m.Dispatch(TypeHistoryRecorded, HistoryRecordedData{Index: 0, Count: 1})
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestSubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	m.Subscribe(TypeFocusChanged, func(Event) bool {
		m.Subscribe(TypeFocusChanged, func(Event) bool { return true })
		return true
	})
	// Must not deadlock or skip handlers.
	m.Dispatch(TypeFocusChanged, FocusChangedData{Focused: true})
}
