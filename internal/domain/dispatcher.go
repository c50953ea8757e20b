package domain

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"a11ysentinel.io/sentinel/internal/pkg/logger"
)

// EventHandler processes a domain event.
type EventHandler func(ctx context.Context, event *DomainEvent) error

// EventDispatcher fans domain events out to registered handlers.
// Events carry IDs and a small detail payload; authoritative state
// stays in the database rows, not in the event stream.
type EventDispatcher struct {
	mu       sync.RWMutex
	handlers map[EventType][]EventHandler
}

func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{handlers: make(map[EventType][]EventHandler)}
}

// Register adds a handler for one event type. Handlers run in
// registration order.
func (d *EventDispatcher) Register(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
	d.mu.Unlock()
}

// Dispatch delivers the event to every handler for its type. Delivery
// is best-effort: a failing handler is logged and the rest still run.
// The first handler error is returned so callers can surface it.
func (d *EventDispatcher) Dispatch(ctx context.Context, event *DomainEvent) error {
	d.mu.RLock()
	handlers := d.handlers[event.EventType]
	d.mu.RUnlock()

	if len(handlers) == 0 {
		logger.Warn("No handlers registered for event type",
			zap.String("event_type", string(event.EventType)),
			zap.String("event_id", event.EventID),
		)
		return nil
	}

	var firstErr error
	for _, h := range handlers {
		err := h(ctx, event)
		if err == nil {
			continue
		}
		logger.Error("Event handler failed",
			zap.String("event_type", string(event.EventType)),
			zap.String("event_id", event.EventID),
			zap.Error(err),
		)
		if firstErr == nil {
			firstErr = fmt.Errorf("handler for %s failed: %w", event.EventType, err)
		}
	}
	return firstErr
}
