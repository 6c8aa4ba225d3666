package bus

import (
	"sync"
	"time"

	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
	"github.com/aussiebroadwan/wgchat/pkg/idx"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// channel is one user's event stream: its live listeners and the ring of
// recent events kept for resumption. All fields are guarded by mu.
type channel struct {
	mu         sync.Mutex
	userID     string
	listeners  map[uuid.UUID]*Subscription
	replay     []domain.Event
	lastActive time.Time
	closed     bool
}

func newChannel(userID string, now time.Time) *channel {
	return &channel{
		userID:     userID,
		listeners:  make(map[uuid.UUID]*Subscription),
		lastActive: now,
	}
}

// retain appends ev to the replay ring, dropping the oldest past size.
func (c *channel) retain(ev domain.Event, size int) {
	if size <= 0 {
		return
	}
	c.replay = append(c.replay, ev)
	if len(c.replay) > size {
		c.replay = lo.Drop(c.replay, len(c.replay)-size)
	}
}

// since returns the retained events after cursor that are still inside
// the replay window. A zero cursor means a fresh stream and yields nothing.
func (c *channel) since(cursor idx.ID, window time.Duration, now time.Time) []domain.Event {
	if cursor.IsZero() {
		return nil
	}
	return lo.Filter(c.replay, func(ev domain.Event, _ int) bool {
		if !ev.ID.After(cursor) {
			return false
		}
		return window <= 0 || now.Sub(ev.ID.Time()) <= window
	})
}

// deliver hands ev to every listener without blocking. A listener whose
// buffer is full is disconnected; it catches up through replay when it
// resubscribes.
func (c *channel) deliver(ev domain.Event) {
	for id, sub := range c.listeners {
		select {
		case sub.events <- ev:
		default:
			delete(c.listeners, id)
			sub.terminate(ErrOverflow)
		}
	}
}

func (c *channel) remove(id uuid.UUID) (*Subscription, bool) {
	sub, ok := c.listeners[id]
	if ok {
		delete(c.listeners, id)
	}
	return sub, ok
}
