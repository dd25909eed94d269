// Package event provides a synchronous in-process publish/subscribe bus.
// It decouples state-change detection in the service layer from notification
// consumption at the edges (e.g. the interactive menu).
package event

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/partkeeper/internal/domain"
)

// LowStock is published after commit whenever a component's quantity is at or
// below its replenishment threshold.
const LowStock = "LOW_STOCK"

// Event is an ephemeral notification; it is never persisted.
type Event struct {
	ID      uuid.UUID
	Name    string
	Payload map[string]any
}

// NewLowStock builds the LOW_STOCK event for a component.
func NewLowStock(componentID int64, name string, quantity int64) Event {
	return Event{
		ID:   uuid.New(),
		Name: LowStock,
		Payload: map[string]any{
			"component_id": componentID,
			"name":         name,
			"quantity":     quantity,
		},
	}
}

// Handler consumes one event. Handlers run synchronously on the publishing
// goroutine; a non-nil error stops delivery to later handlers.
type Handler func(ctx context.Context, e Event) error

// Bus is a process-scoped registry mapping event names to ordered handler
// lists. It is constructed once at bootstrap and passed explicitly to every
// component that publishes or subscribes; there is no ambient global bus.
// Bus is not safe for concurrent use — the core runs single-threaded.
type Bus struct {
	subscribers map[string][]Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subscribers: make(map[string][]Handler)}
}

// Subscribe registers a handler for an event name. Multiple handlers per name
// are permitted and invoked in registration order.
func (b *Bus) Subscribe(eventName string, h Handler) error {
	if strings.TrimSpace(eventName) == "" {
		return domain.NewValidationError("event_name", "required")
	}
	b.subscribers[eventName] = append(b.subscribers[eventName], h)
	return nil
}

// Publish invokes every handler registered for e.Name, in registration order.
// The handler list is snapshotted first, so handlers subscribed during
// publication do not receive the same event. The first handler error is
// returned and aborts delivery to the remaining handlers.
func (b *Bus) Publish(ctx context.Context, e Event) error {
	handlers := make([]Handler, len(b.subscribers[e.Name]))
	copy(handlers, b.subscribers[e.Name])

	for _, h := range handlers {
		if err := h(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
