package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/wgchat/internal/chat/bus"
	"github.com/aussiebroadwan/wgchat/internal/chat/conversation"
	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
	"github.com/aussiebroadwan/wgchat/pkg/idx"
)

// MaxMessageLength bounds a message body, in characters.
const MaxMessageLength = 4000

// ChatService is what authenticated callers use: recipient tracking,
// sending, history and the event subscription.
type ChatService struct {
	Bus           *bus.Bus
	Registry      *bus.Registry
	Conversations conversation.Store
	Now           func() time.Time
}

// Self records activity and returns the caller's username.
func (s *ChatService) Self(who bus.Identity) string {
	s.Registry.Touch(who.UserID, who.Username)
	return who.Username
}

// Recipient returns the caller's current recipient, nil when none is set.
func (s *ChatService) Recipient(who bus.Identity) *string {
	s.Registry.Touch(who.UserID, who.Username)
	if r := s.Registry.Recipient(who.UserID); r != "" {
		return &r
	}
	return nil
}

// SetRecipient trims recipient and tracks it for the caller. An empty value
// clears the recipient and returns nil.
func (s *ChatService) SetRecipient(who bus.Identity, recipient string) (*string, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient != "" {
		if err := ValidateUsername(recipient); err != nil {
			return nil, err
		}
	}

	s.Registry.Touch(who.UserID, who.Username)
	s.Registry.SetRecipient(who.UserID, recipient)

	if recipient == "" {
		return nil, nil
	}
	return &recipient, nil
}

// Send appends a message to the pair's history and publishes it.
func (s *ChatService) Send(ctx context.Context, who bus.Identity, to, body string) (domain.Message, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return domain.Message{}, invalid("to", "is required")
	}
	if strings.TrimSpace(body) == "" {
		return domain.Message{}, invalid("body", "must not be empty")
	}
	if utf8.RuneCountInString(body) > MaxMessageLength {
		return domain.Message{}, invalid("body", "is too long")
	}

	s.Registry.Touch(who.UserID, who.Username)

	msg := domain.Message{
		ID:        idx.New(),
		From:      who.Username,
		To:        to,
		Body:      body,
		Timestamp: s.Now().UnixMilli(),
	}
	if err := s.Conversations.Append(ctx, msg); err != nil {
		return domain.Message{}, storeFailure(err)
	}

	s.Bus.Publish(who.UserID, msg)
	return msg, nil
}

// History returns the caller's retained conversation with another user.
func (s *ChatService) History(ctx context.Context, who bus.Identity, with string) ([]domain.Message, error) {
	with = strings.TrimSpace(with)
	if with == "" {
		return nil, invalid("with", "is required")
	}

	s.Registry.Touch(who.UserID, who.Username)

	msgs, err := s.Conversations.History(ctx, who.Username, with)
	if err != nil {
		return nil, storeFailure(err)
	}
	return msgs, nil
}

// Subscribe opens the caller's event stream, resuming after lastEventID
// when one is given.
func (s *ChatService) Subscribe(ctx context.Context, who bus.Identity, lastEventID string) (*bus.Subscription, error) {
	cursor, err := idx.ParseCursor(lastEventID)
	if err != nil {
		return nil, invalid("lastEventId", "is not a valid event id")
	}

	s.Registry.Touch(who.UserID, who.Username)
	return s.Bus.Subscribe(ctx, who, cursor)
}
