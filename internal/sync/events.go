package sync

import (
	"log/slog"
	stdsync "sync"
	"time"
)

// EventKind вид события синхронизации
type EventKind string

const (
	EventStarted   EventKind = "sync_started"
	EventProgress  EventKind = "progress"
	EventConflict  EventKind = "conflict_detected"
	EventCompleted EventKind = "sync_completed"
	EventFailed    EventKind = "sync_failed"
)

// Event is the sum type published by the orchestrator. Kind discriminates;
// the remaining fields are filled per kind with enough payload for a UI or
// CLI to render progress.
type Event struct {
	Time       time.Time `json:"time"`
	Kind       EventKind `json:"kind"`
	Phase      Phase     `json:"phase,omitempty"`
	EntityType string    `json:"entity_type,omitempty"`
	Error      string    `json:"error,omitempty"`
	Uploaded   int       `json:"uploaded,omitempty"`
	Downloaded int       `json:"downloaded,omitempty"`
	Conflicts  int       `json:"conflicts,omitempty"`
}

// subscriberBuffer bounds each subscriber channel; slow subscribers drop
// events rather than stalling the sync cycle.
const subscriberBuffer = 16

// Bus is a typed publish/subscribe fan-out for sync events.
type Bus struct {
	subs   map[int]chan Event
	logger *slog.Logger
	mu     stdsync.Mutex
	nextID int
}

// NewBus creates an event bus
func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		subs:   make(map[int]chan Event),
		logger: logger,
	}
}

// Subscribe registers a new subscriber. The returned cancel func must be
// called to release the subscription; the channel is closed afterwards.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++

	ch := make(chan Event, subscriberBuffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}

// Publish delivers the event to every subscriber without blocking.
func (b *Bus) Publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
			// Подписчик не успевает - событие отбрасываем
			b.logger.Warn("Dropping sync event for slow subscriber", "kind", event.Kind)
		}
	}
}
