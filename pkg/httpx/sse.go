package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrStreamingUnsupported is returned when the ResponseWriter cannot flush.
var ErrStreamingUnsupported = errors.New("httpx: streaming unsupported")

// EventStream writes text/event-stream frames.
type EventStream struct {
	w  http.ResponseWriter
	rc *http.ResponseController
}

// NewEventStream sends the stream headers and a 200 status.
func NewEventStream(w http.ResponseWriter) (*EventStream, error) {
	rc := http.NewResponseController(w)

	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if err := rc.Flush(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStreamingUnsupported, err)
	}
	return &EventStream{w: w, rc: rc}, nil
}

// Send writes one event with a JSON payload. id may be empty.
func (s *EventStream) Send(id string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("httpx: encode event: %w", err)
	}

	var b strings.Builder
	if id != "" {
		b.WriteString("id: ")
		b.WriteString(id)
		b.WriteByte('\n')
	}
	b.WriteString("data: ")
	b.Write(payload)
	b.WriteString("\n\n")

	if _, err := s.w.Write([]byte(b.String())); err != nil {
		return err
	}
	return s.rc.Flush()
}

// Heartbeat writes a comment line to keep intermediaries from timing out.
func (s *EventStream) Heartbeat() error {
	if _, err := s.w.Write([]byte(": ping\n\n")); err != nil {
		return err
	}
	return s.rc.Flush()
}
