package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
	"github.com/dgraph-io/badger/v4"
)

// BadgerStore persists history on disk. Keys are "conv/<pair>/<message id>",
// and message ids are ULIDs so a prefix scan returns a pair's history in
// send order.
type BadgerStore struct {
	// mu serialises Append. Each append reads the pair's keys to trim it,
	// so concurrent appends to one pair would otherwise abort with
	// badger.ErrConflict.
	mu    sync.Mutex
	db    *badger.DB
	log   *slog.Logger
	limit int
}

// OpenBadgerStore opens (or creates) a database under dir.
func OpenBadgerStore(dir string, log *slog.Logger) (*BadgerStore, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return NewBadgerStore(db, log), nil
}

func NewBadgerStore(db *badger.DB, log *slog.Logger) *BadgerStore {
	return &BadgerStore{db: db, log: log, limit: HistoryLimit}
}

func pairPrefix(a, b string) []byte {
	return []byte("conv/" + PairKey(a, b) + "/")
}

func (s *BadgerStore) Append(_ context.Context, msg domain.Message) error {
	prefix := pairPrefix(msg.From, msg.To)
	value, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(txn *badger.Txn) error {
		key := append([]byte(nil), prefix...)
		key = append(key, msg.ID.String()...)
		if err := txn.Set(key, value); err != nil {
			return err
		}

		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)

		var keys [][]byte
		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		it.Close()

		if excess := len(keys) - s.limit; excess > 0 {
			for _, k := range keys[:excess] {
				if err := txn.Delete(k); err != nil {
					return err
				}
			}
			s.log.Debug("trimmed conversation", slog.Int("dropped", excess))
		}
		return nil
	})
}

func (s *BadgerStore) History(_ context.Context, a, b string) ([]domain.Message, error) {
	prefix := pairPrefix(a, b)
	out := make([]domain.Message, 0)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			var msg domain.Message
			err := it.Item().Value(func(v []byte) error {
				return json.Unmarshal(v, &msg)
			})
			if err != nil {
				return err
			}
			out = append(out, msg)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *BadgerStore) Close() error { return s.db.Close() }
