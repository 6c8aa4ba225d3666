package conversation

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
	"github.com/aussiebroadwan/wgchat/pkg/idx"
	"github.com/aussiebroadwan/wgchat/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()

	b, err := OpenBadgerStore(t.TempDir(), slogx.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"badger": b,
	}
}

func msg(from, to, body string) domain.Message {
	return domain.Message{ID: idx.New(), From: from, To: to, Body: body, Timestamp: 1}
}

func TestPairKey_Symmetric(t *testing.T) {
	require.Equal(t, PairKey("alice", "bob"), PairKey("bob", "alice"))
	require.Equal(t, "alice|bob", PairKey("bob", "alice"))
	require.NotEqual(t, PairKey("alice", "bob"), PairKey("alice", "carol"))
}

func TestHistory_SameForBothDirections(t *testing.T) {
	ctx := context.Background()
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			// Given a short exchange
			require.NoError(t, st.Append(ctx, msg("alice", "bob", "hi")))
			require.NoError(t, st.Append(ctx, msg("bob", "alice", "hey")))
			require.NoError(t, st.Append(ctx, msg("alice", "carol", "elsewhere")))

			// When both sides ask
			ab, err := st.History(ctx, "alice", "bob")
			require.NoError(t, err)
			ba, err := st.History(ctx, "bob", "alice")
			require.NoError(t, err)

			// Then they see the same ordered sequence
			require.Equal(t, ab, ba)
			require.Len(t, ab, 2)
			require.Equal(t, "hi", ab[0].Body)
			require.Equal(t, "hey", ab[1].Body)
		})
	}
}

func TestHistory_UnknownPairIsEmpty(t *testing.T) {
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			h, err := st.History(context.Background(), "nobody", "else")
			require.NoError(t, err)
			require.NotNil(t, h)
			require.Empty(t, h)
		})
	}
}

func TestAppend_DropsOldestPastLimit(t *testing.T) {
	ctx := context.Background()
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i <= HistoryLimit; i++ {
				require.NoError(t, st.Append(ctx, msg("alice", "bob", fmt.Sprintf("m%d", i))))
			}

			h, err := st.History(ctx, "bob", "alice")
			require.NoError(t, err)
			require.Len(t, h, HistoryLimit)
			require.Equal(t, "m1", h[0].Body)
			require.Equal(t, fmt.Sprintf("m%d", HistoryLimit), h[len(h)-1].Body)
		})
	}
}

func TestAppend_ConcurrentSendsToOnePair(t *testing.T) {
	const (
		writers = 16
		each    = 50
	)

	ctx := context.Background()
	for name, st := range backends(t) {
		t.Run(name, func(t *testing.T) {
			// Given many senders writing the same conversation at once
			errs := make(chan error, writers*each)
			var wg sync.WaitGroup
			for w := range writers {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := range each {
						errs <- st.Append(ctx, msg("alice", "bob", fmt.Sprintf("w%d-%d", w, i)))
					}
				}()
			}
			wg.Wait()
			close(errs)

			// Then every append succeeds
			for err := range errs {
				require.NoError(t, err)
			}

			// And the pair is trimmed to the limit
			h, err := st.History(ctx, "alice", "bob")
			require.NoError(t, err)
			require.Len(t, h, HistoryLimit)
		})
	}
}

func TestMemoryStore_HistoryIsACopy(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, st.Append(ctx, msg("alice", "bob", "hi")))

	h, _ := st.History(ctx, "alice", "bob")
	h[0].Body = "changed"

	again, _ := st.History(ctx, "alice", "bob")
	require.Equal(t, "hi", again[0].Body)
}
