// Package bus delivers chat events to subscribed users.
package bus

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
	"github.com/aussiebroadwan/wgchat/pkg/idx"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var (
	// ErrClosed ends subscriptions closed by their owner, and is returned
	// by Subscribe after the bus shut down.
	ErrClosed = errors.New("bus: closed")
	// ErrOverflow ends a subscription that fell too far behind.
	ErrOverflow = errors.New("bus: listener buffer overflow")
)

type Config struct {
	// ReplaySize is how many events each channel retains for resumption.
	ReplaySize int
	// ReplayWindow bounds how old a replayed event may be. Zero disables
	// the age check.
	ReplayWindow time.Duration
	// BufferSize is the per-listener queue of live events.
	BufferSize int
	// IdleTTL is how long a channel without listeners survives Sweep.
	IdleTTL time.Duration
}

func DefaultConfig() Config {
	return Config{
		ReplaySize:   256,
		ReplayWindow: 10 * time.Minute,
		BufferSize:   64,
		IdleTTL:      30 * time.Minute,
	}
}

// Identity names the owner of a subscription.
type Identity struct {
	UserID   string
	Username string
}

type Bus struct {
	cfg       Config
	dir       Directory
	recipient RecipientTracker
	log       *slog.Logger
	now       func() time.Time

	mu       sync.RWMutex
	channels map[string]*channel
	closed   bool
}

func New(cfg Config, dir Directory, recipients RecipientTracker, log *slog.Logger) *Bus {
	return &Bus{
		cfg:       cfg,
		dir:       dir,
		recipient: recipients,
		log:       log,
		now:       time.Now,
		channels:  make(map[string]*channel),
	}
}

// Subscribe registers a listener for who. The first event is always the
// self event, followed by every retained event after lastEventID, then live
// events. A zero lastEventID starts at live events with no replay. Registration and replay happen under the channel lock, so the
// stream has no gaps or duplicates. The subscription ends when ctx is
// done, on Close, on overflow or when the bus shuts down.
func (b *Bus) Subscribe(ctx context.Context, who Identity, lastEventID idx.ID) (*Subscription, error) {
	ch, err := b.channelFor(who.UserID)
	if err != nil {
		return nil, err
	}

	sub := &Subscription{
		ID:     uuid.New(),
		UserID: who.UserID,
		doneCh: make(chan struct{}),
		bus:    b,
	}

	ch.mu.Lock()
	if ch.closed {
		ch.mu.Unlock()
		return nil, ErrClosed
	}
	now := b.now()
	backlog := ch.since(lastEventID, b.cfg.ReplayWindow, now)
	sub.events = make(chan domain.Event, b.cfg.BufferSize+len(backlog)+1)
	sub.events <- domain.Event{Type: domain.EventSelf, Self: who.Username}
	for _, ev := range backlog {
		sub.events <- ev
	}
	ch.listeners[sub.ID] = sub
	ch.lastActive = now
	ch.mu.Unlock()

	b.log.Debug("subscribed",
		slog.String("user_id", who.UserID),
		slog.String("subscription", sub.ID.String()),
		slog.Int("replayed", len(backlog)),
	)

	go func() {
		select {
		case <-ctx.Done():
			b.unsubscribe(sub, ctx.Err())
		case <-sub.done():
		}
	}()

	return sub, nil
}

// Publish delivers msg to its sender and, if the recipient is currently
// talking to the sender, to the recipient too. Each delivery is a separate
// event with its own id. Users without a channel miss the event.
func (b *Bus) Publish(senderID string, msg domain.Message) {
	b.emit(senderID, domain.Event{
		Type:    domain.EventMessage,
		Self:    msg.From,
		Message: &msg,
	})

	recipientID, ok := b.dir.Lookup(msg.To)
	if !ok || recipientID == senderID {
		return
	}
	if b.recipient.Recipient(recipientID) != msg.From {
		return
	}

	b.emit(recipientID, domain.Event{
		Type:    domain.EventMessage,
		Self:    msg.To,
		Message: &msg,
	})
}

// emit stamps ev with a fresh id under the channel lock, so ids in the
// replay ring and on every listener are in increasing order.
func (b *Bus) emit(userID string, ev domain.Event) {
	b.mu.RLock()
	ch, ok := b.channels[userID]
	b.mu.RUnlock()
	if !ok {
		return
	}

	ch.mu.Lock()
	defer ch.mu.Unlock()
	ev.ID = idx.New()
	ch.retain(ev, b.cfg.ReplaySize)
	ch.deliver(ev)
	ch.lastActive = b.now()
}

// Active reports whether userID has at least one live listener.
func (b *Bus) Active(userID string) bool {
	b.mu.RLock()
	ch, ok := b.channels[userID]
	b.mu.RUnlock()
	if !ok {
		return false
	}

	ch.mu.Lock()
	defer ch.mu.Unlock()
	return len(ch.listeners) > 0
}

// Sweep drops channels that have had no listeners for IdleTTL, along with
// their replay buffers.
func (b *Bus) Sweep(now time.Time) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	idle := lo.Filter(lo.Keys(b.channels), func(id string, _ int) bool {
		ch := b.channels[id]
		ch.mu.Lock()
		defer ch.mu.Unlock()
		return len(ch.listeners) == 0 && now.Sub(ch.lastActive) >= b.cfg.IdleTTL
	})
	for _, id := range idle {
		delete(b.channels, id)
	}
	return len(idle)
}

// Close tells every listener to reconnect and then ends all subscriptions.
// Further Subscribe calls fail with ErrClosed.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	channels := lo.Values(b.channels)
	b.mu.Unlock()

	notified := 0
	for _, ch := range channels {
		ch.mu.Lock()
		ch.closed = true
		for id, sub := range ch.listeners {
			select {
			case sub.events <- domain.Event{Type: domain.EventReconnect}:
				notified++
			default:
			}
			delete(ch.listeners, id)
			sub.terminate(ErrClosed)
		}
		ch.mu.Unlock()
	}
	b.log.Info("bus closed", slog.Int("notified", notified))
}

// channelFor returns the user's channel, creating it if needed. The
// channel is marked active while the bus lock is held so a concurrent
// Sweep cannot drop it before the caller registers.
func (b *Bus) channelFor(userID string) (*channel, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrClosed
	}

	ch, ok := b.channels[userID]
	if !ok {
		ch = newChannel(userID, b.now())
		b.channels[userID] = ch
		return ch, nil
	}

	ch.mu.Lock()
	ch.lastActive = b.now()
	ch.mu.Unlock()
	return ch, nil
}

func (b *Bus) unsubscribe(sub *Subscription, reason error) {
	b.mu.RLock()
	ch, ok := b.channels[sub.UserID]
	b.mu.RUnlock()

	if ok {
		ch.mu.Lock()
		if _, found := ch.remove(sub.ID); found {
			ch.lastActive = b.now()
		}
		sub.terminate(reason)
		ch.mu.Unlock()
		return
	}
	sub.terminate(reason)
}
