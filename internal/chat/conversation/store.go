package conversation

import (
	"context"
	"sort"
	"strings"

	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
)

// HistoryLimit is how many messages a pair keeps. Appending past it drops
// the oldest.
const HistoryLimit = 200

// Store keeps the recent history of each pair of users.
type Store interface {
	// Append adds msg to the history of (msg.From, msg.To).
	Append(ctx context.Context, msg domain.Message) error

	// History returns the retained messages between a and b, oldest
	// first. An unknown pair yields an empty slice, not an error.
	History(ctx context.Context, a, b string) ([]domain.Message, error)

	Close() error
}

// PairKey is the canonical key for a conversation, identical for (a, b)
// and (b, a). Usernames cannot contain "|".
func PairKey(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return strings.Join(pair, "|")
}
