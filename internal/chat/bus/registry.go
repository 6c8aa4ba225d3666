package bus

import (
	"sync"
	"time"
)

// RecipientTracker holds who each user is currently talking to. A user has
// at most one recipient; the empty string means none.
type RecipientTracker interface {
	Recipient(userID string) string
	SetRecipient(userID, recipient string)
}

// Directory resolves usernames of active users to their ids.
type Directory interface {
	Lookup(username string) (userID string, ok bool)
}

type registryEntry struct {
	username  string
	recipient string
	seen      time.Time
}

// Registry is the in-memory view of users who have been active in chat:
// the username directory plus each user's current recipient. Entries are
// created on first chat activity and evicted by Sweep once stale.
type Registry struct {
	mu     sync.RWMutex
	users  map[string]*registryEntry // userID -> entry
	byName map[string]string         // username -> userID
	ttl    time.Duration
	now    func() time.Time
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		users:  make(map[string]*registryEntry),
		byName: make(map[string]string),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Touch records activity for a user, adding it to the directory if needed.
func (r *Registry) Touch(userID, username string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.users[userID]
	if !ok {
		e = &registryEntry{username: username}
		r.users[userID] = e
	}
	e.seen = r.now()
	r.byName[username] = userID
}

func (r *Registry) Lookup(username string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[username]
	return id, ok
}

func (r *Registry) Recipient(userID string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if e, ok := r.users[userID]; ok {
		return e.recipient
	}
	return ""
}

// SetRecipient sets or, with an empty recipient, clears the tracked peer.
// Unknown users are ignored; callers Touch first.
func (r *Registry) SetRecipient(userID, recipient string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.users[userID]; ok {
		e.recipient = recipient
		e.seen = r.now()
	}
}

// Sweep evicts entries not seen within the ttl, except those keep reports
// as still in use. It returns how many were evicted.
func (r *Registry) Sweep(now time.Time, keep func(userID string) bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, e := range r.users {
		if now.Sub(e.seen) < r.ttl || (keep != nil && keep(id)) {
			continue
		}
		delete(r.users, id)
		if r.byName[e.username] == id {
			delete(r.byName, e.username)
		}
		evicted++
	}
	return evicted
}

// Len is the number of tracked users.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
