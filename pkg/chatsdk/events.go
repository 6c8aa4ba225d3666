package chatsdk

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrReconnect is returned by Next after the server sent a reconnect notice.
// Resubscribe with the ID of the last event seen.
var ErrReconnect = errors.New("chatsdk: server asked to reconnect")

// EventStream reads events from an open subscription.
type EventStream struct {
	body   io.ReadCloser
	reader *bufio.Reader
}

// Subscribe opens the event stream. lastEventID resumes after a previously
// seen event and may be empty.
func (c *Client) Subscribe(ctx context.Context, lastEventID string) (*EventStream, error) {
	path := "/v1/chat/events"
	if lastEventID != "" {
		path += "?" + url.Values{"lastEventId": {lastEventID}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	if lastEventID != "" {
		req.Header.Set("Last-Event-ID", lastEventID)
	}

	// The stream outlives any per-request timeout; ctx bounds it instead.
	streaming := *c.HTTPClient
	streaming.Timeout = 0

	resp, err := streaming.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeJSON(resp, nil, http.StatusOK)
	}

	return &EventStream{body: resp.Body, reader: bufio.NewReader(resp.Body)}, nil
}

// Next blocks until the next event arrives. Comment lines (heartbeats) are
// skipped. A reconnect notice yields ErrReconnect.
func (s *EventStream) Next() (Event, error) {
	var (
		id   string
		data strings.Builder
	)

	for {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			return Event{}, err
		}
		line = strings.TrimRight(line, "\r\n")

		switch {
		case line == "":
			if data.Len() == 0 {
				id = ""
				continue
			}
			var ev Event
			if err := json.Unmarshal([]byte(data.String()), &ev); err != nil {
				return Event{}, fmt.Errorf("chatsdk: decode event: %w", err)
			}
			ev.ID = id
			if ev.Type == EventReconnect {
				return ev, ErrReconnect
			}
			return ev, nil
		case strings.HasPrefix(line, ":"):
			// heartbeat
		case strings.HasPrefix(line, "id:"):
			id = strings.TrimSpace(strings.TrimPrefix(line, "id:"))
		case strings.HasPrefix(line, "data:"):
			if data.Len() > 0 {
				data.WriteByte('\n')
			}
			data.WriteString(strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}
	}
}

// Close ends the subscription.
func (s *EventStream) Close() error {
	return s.body.Close()
}
