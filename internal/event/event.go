package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CookieMonster_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}

	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}

	return nil
}

// Common event types
const (
	CookieEaten Type = domain.EventTypeCookieEaten
)

// CookieEatenPayloadV1 is the typed payload for cookie eaten events
type CookieEatenPayloadV1 struct {
	Kind      string `json:"kind"`
	NomCount  int    `json:"nom_count"`
	Timestamp int64  `json:"timestamp"`
}

// NewCookieEatenEvent creates a new cookie eaten event
func NewCookieEatenEvent(kind string, nomCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CookieEaten,
		Payload: CookieEatenPayloadV1{
			Kind:      kind,
			NomCount:  nomCount,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeySource: SourceMonster,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously on the caller's goroutine, in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
