package conversation

import (
	"context"
	"sync"

	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
	"github.com/samber/lo"
)

// MemoryStore is the default, volatile backend.
type MemoryStore struct {
	mu    sync.RWMutex
	limit int
	pairs map[string][]domain.Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		limit: HistoryLimit,
		pairs: make(map[string][]domain.Message),
	}
}

func (s *MemoryStore) Append(_ context.Context, msg domain.Message) error {
	key := PairKey(msg.From, msg.To)

	s.mu.Lock()
	defer s.mu.Unlock()

	h := append(s.pairs[key], msg)
	if len(h) > s.limit {
		h = lo.Drop(h, len(h)-s.limit)
	}
	s.pairs[key] = h
	return nil
}

func (s *MemoryStore) History(_ context.Context, a, b string) ([]domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h := s.pairs[PairKey(a, b)]
	out := make([]domain.Message, len(h))
	copy(out, h)
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }
