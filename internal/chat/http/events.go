package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/wgchat/internal/chat/bus"
	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
	"github.com/aussiebroadwan/wgchat/pkg/chatsdk"
	"github.com/aussiebroadwan/wgchat/pkg/httpx"
	"github.com/aussiebroadwan/wgchat/pkg/slogx"
)

func toWireEvent(ev domain.Event) chatsdk.Event {
	out := chatsdk.Event{Type: string(ev.Type), Self: ev.Self}
	if ev.Message != nil {
		m := toWireMessage(*ev.Message)
		out.Message = &m
	}
	return out
}

// HandleEvents godoc
//
//	@Summary		Event stream
//	@Description	Server-Sent Events. The first event is {type:"self"}; message events follow as
//	@Description	they are published, each with an SSE id. Resume after a disconnect by sending
//	@Description	the last id seen as Last-Event-ID or lastEventId. A {type:"reconnect"} event
//	@Description	means the server is shutting down and the stream ends.
//	@Tags			Chat
//	@Produce		text/event-stream
//	@Security		CookieAuth
//	@Param			Last-Event-ID	header		string	false	"Resume after this event id"
//	@Param			lastEventId		query		string	false	"Resume after this event id"
//	@Success		200				{object}	chatsdk.Event
//	@Failure		400				{object}	chatsdk.ErrorResponse	"validation_failed"
//	@Failure		401				{object}	chatsdk.ErrorResponse	"unauthenticated"
//	@Router			/v1/chat/events [get].
func (h *ChatHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	who, ok := h.caller(w, r)
	if !ok {
		return
	}
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	cursor := r.Header.Get("Last-Event-ID")
	if cursor == "" {
		cursor = r.URL.Query().Get("lastEventId")
	}

	sub, err := h.ChatService.Subscribe(ctx, who, cursor)
	if err != nil {
		h.write(w, r, err)
		return
	}
	defer sub.Close()

	// The server's write timeout would otherwise cut the stream.
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	stream, err := httpx.NewEventStream(w)
	if err != nil {
		log.Error("event stream unavailable", slog.Any("error", err))
		return
	}

	heartbeat := h.Heartbeat
	if heartbeat <= 0 {
		heartbeat = 25 * time.Second
	}
	ticker := time.NewTicker(heartbeat)
	defer ticker.Stop()

	for {
		select {
		case ev, open := <-sub.Events():
			if !open {
				if errors.Is(sub.Err(), bus.ErrOverflow) {
					log.Warn("event stream dropped a slow client")
				}
				return
			}
			if err := stream.Send(ev.ID.String(), toWireEvent(ev)); err != nil {
				log.Debug("event stream write failed", slog.Any("error", err))
				return
			}
			if ev.Type == domain.EventReconnect {
				return
			}

		case <-ticker.C:
			if err := stream.Heartbeat(); err != nil {
				return
			}

		case <-ctx.Done():
			return
		}
	}
}
