package bus

import (
	"sync"

	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
	"github.com/google/uuid"
)

// Subscription is a live listener on a user's channel. Events is closed
// once the subscription ends; Err then says why.
type Subscription struct {
	ID     uuid.UUID
	UserID string

	events chan domain.Event
	doneCh chan struct{}
	bus    *Bus

	once sync.Once
	mu   sync.Mutex
	err  error
}

func (s *Subscription) Events() <-chan domain.Event { return s.events }

func (s *Subscription) done() <-chan struct{} { return s.doneCh }

// Err is nil while the subscription is live.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close deregisters the listener. Safe to call more than once.
func (s *Subscription) Close() {
	s.bus.unsubscribe(s, ErrClosed)
}

// terminate records why the subscription ended and closes Events. The
// caller holds the owning channel's lock, so no send can race the close.
func (s *Subscription) terminate(reason error) {
	s.once.Do(func() {
		s.mu.Lock()
		s.err = reason
		s.mu.Unlock()
		close(s.events)
		close(s.doneCh)
	})
}
