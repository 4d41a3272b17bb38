package events

import (
	"context"
	"sync"

	"natanbot/domain/entities"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeBalanceChange EventType = "balance_change"
	EventTypeLevelUp       EventType = "level_up"
	EventTypeVIPGranted    EventType = "vip_granted"
	EventTypeVIPExpired    EventType = "vip_expired"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// BalanceChangeEvent represents a wallet change caused by an action
type BalanceChangeEvent struct {
	ActionID     string
	UserID       int64
	GuildID      int64
	OldBalance   int64
	NewBalance   int64
	Kind         entities.ActionKind
	ChangeAmount int64
}

func (e BalanceChangeEvent) Type() EventType {
	return EventTypeBalanceChange
}

// LevelUpEvent is raised when message XP pushes a member into a new level
type LevelUpEvent struct {
	UserID     int64
	GuildID    int64
	OldLevel   int
	NewLevel   int
	Experience int64
}

func (e LevelUpEvent) Type() EventType {
	return EventTypeLevelUp
}

// VIPGrantedEvent is raised when a grant is created or replaced
type VIPGrantedEvent struct {
	Grant entities.VIPGrant
}

func (e VIPGrantedEvent) Type() EventType {
	return EventTypeVIPGranted
}

// VIPExpiredEvent is raised when the sweep reaps an expired grant
type VIPExpiredEvent struct {
	Grant entities.VIPGrant
}

func (e VIPExpiredEvent) Type() EventType {
	return EventTypeVIPExpired
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Emitter dispatches events to subscribers
type Emitter interface {
	Emit(ctx context.Context, event Event)
}

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event to handlers")

	// Handlers run asynchronously so a slow Discord call never blocks an action
	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}

// TransactionalBus holds the events of one action until its write succeeded.
// Flushes to the underlying emitter.
type TransactionalBus struct {
	real    Emitter
	pending []Event
}

func NewTransactionalBus(real Emitter) *TransactionalBus {
	return &TransactionalBus{real: real}
}

func (b *TransactionalBus) Publish(e Event) {
	b.pending = append(b.pending, e)
}

// Pending returns the events waiting for Flush
func (b *TransactionalBus) Pending() []Event {
	return b.pending
}

// Flush is called after the store write went through
func (b *TransactionalBus) Flush(ctx context.Context) {
	if b.real == nil {
		b.pending = nil
		return
	}

	log.WithFields(log.Fields{
		"pendingEventCount": len(b.pending),
	}).Debug("Flushing pending action events")

	// Handlers outlive the request, so they get a detached context
	eventCtx := context.WithoutCancel(ctx)
	for _, ev := range b.pending {
		b.real.Emit(eventCtx, ev)
	}
	b.pending = nil
}

// Discard drops pending events after a failed write
func (b *TransactionalBus) Discard() {
	b.pending = nil
}
