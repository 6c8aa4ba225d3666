package chatsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Self returns the username of the logged in user.
func (c *Client) Self(ctx context.Context) (string, error) {
	var out SelfResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/chat/self", nil, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.Self, nil
}

// Recipient returns the currently open conversation, nil when none.
func (c *Client) Recipient(ctx context.Context) (*string, error) {
	var out RecipientResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/chat/recipient", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Recipient, nil
}

// SetRecipient opens a conversation with recipient. Messages from that user
// are only delivered live while it stays open. An empty value closes it.
func (c *Client) SetRecipient(ctx context.Context, recipient string) (*string, error) {
	var out RecipientResponse
	if err := c.doJSON(ctx, http.MethodPut, "/v1/chat/recipient", SetRecipientRequest{Recipient: recipient}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Recipient, nil
}

// Send posts a message and returns its id.
func (c *Client) Send(ctx context.Context, to, body string) (string, error) {
	var out SendMessageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/chat/messages", SendMessageRequest{To: to, Body: body}, &out, http.StatusCreated); err != nil {
		return "", err
	}
	return out.ID, nil
}

// History returns the retained conversation with another user, oldest first.
func (c *Client) History(ctx context.Context, with string) ([]Message, error) {
	var out HistoryResponse
	path := "/v1/chat/messages?" + url.Values{"with": {with}}.Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Messages, nil
}
