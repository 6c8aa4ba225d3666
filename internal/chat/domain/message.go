package domain

import "github.com/aussiebroadwan/wgchat/pkg/idx"

// Message is a single chat line between two users, identified by username.
type Message struct {
	ID        idx.ID `json:"id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Body      string `json:"body"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
}
