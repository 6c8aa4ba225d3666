package service

import (
	"sync"
	"time"
)

// TokenGuard remembers consumed protocol token ids until the token could
// no longer be accepted anyway, which makes each token single-use.
type TokenGuard struct {
	mu   sync.Mutex
	used map[string]time.Time // jti -> end of its window
}

func NewTokenGuard() *TokenGuard {
	return &TokenGuard{used: make(map[string]time.Time)}
}

// Consume marks jti as used until expires. It returns false when jti was
// already consumed or is empty.
func (g *TokenGuard) Consume(jti string, expires time.Time) bool {
	if jti == "" {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.used[jti]; ok {
		return false
	}
	g.used[jti] = expires
	return true
}

// Release hands jti back after the operation it guarded failed without
// side effects, so the same token can be presented again.
func (g *TokenGuard) Release(jti string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.used, jti)
}

// Sweep forgets ids whose window has ended.
func (g *TokenGuard) Sweep(now time.Time) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := 0
	for jti, exp := range g.used {
		if now.After(exp) {
			delete(g.used, jti)
			n++
		}
	}
	return n
}
