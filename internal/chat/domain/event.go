package domain

import "github.com/aussiebroadwan/wgchat/pkg/idx"

// EventType discriminates chat events on the wire.
type EventType string

const (
	EventSelf      EventType = "self"
	EventMessage   EventType = "message"
	EventReconnect EventType = "reconnect"
)

// Event is what a subscriber receives. Self is the username of the
// receiving side, so a client can tell its own messages from its peer's.
type Event struct {
	ID      idx.ID    `json:"-"`
	Type    EventType `json:"type"`
	Self    string    `json:"self,omitempty"`
	Message *Message  `json:"message,omitempty"`
}
