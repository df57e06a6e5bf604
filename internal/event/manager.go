package event

import (
	"sync"

	"github.com/etchlab/etch/internal/logger"
)

// Handler is the subscriber signature. Returning true marks the event as
// consumed; dispatch currently ignores the value but keeps the contract for
// later.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{handlers: make(map[Type][]Handler)}
}

// Subscribe adds a handler function for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[eventType] = append(m.handlers[eventType], handler)
}

// Dispatch sends an event synchronously to all handlers for its type.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	m.mu.RLock()
	handlers := m.handlers[eventType]
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}
	logger.Debugf("event: dispatching type %v to %d handler(s)", eventType, len(handlers))

	// Copy so a handler subscribing/unsubscribing mid-dispatch is safe.
	handlersCopy := make([]Handler, len(handlers))
	copy(handlersCopy, handlers)
	for _, handler := range handlersCopy {
		handler(Event{Type: eventType, Data: data})
	}
}
