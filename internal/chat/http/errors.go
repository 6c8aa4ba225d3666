package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/wgchat/internal/chat/bus"
	"github.com/aussiebroadwan/wgchat/internal/chat/service"
	"github.com/aussiebroadwan/wgchat/pkg/chatsdk"
	"github.com/aussiebroadwan/wgchat/pkg/httpx"
	"github.com/aussiebroadwan/wgchat/pkg/slogx"
)

// errorWriter maps service errors onto responses. It needs the cookie
// settings because an authentication failure also clears the session.
type errorWriter struct {
	cookies httpx.Cookies
}

func (e errorWriter) write(w http.ResponseWriter, r *http.Request, err error) {
	log := slogx.FromContext(r.Context())

	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		chatsdk.ErrValidationFailed.WithDescription(ve.Error()).WriteError(w)

	case errors.Is(err, service.ErrUnauthenticated):
		e.cookies.Clear(w)
		chatsdk.ErrUnauthenticated.WriteError(w)

	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidProtocolToken):
		chatsdk.ErrInvalidCredentials.WriteError(w)

	case errors.Is(err, service.ErrUsernameTaken):
		chatsdk.ErrUsernameTaken.WriteError(w)

	case errors.Is(err, service.ErrServerMisconfigured):
		log.Error("server misconfigured", slog.Any("error", err))
		chatsdk.ErrServerMisconfigured.WriteError(w)

	case errors.Is(err, service.ErrStoreUnavailable):
		log.Warn("store unavailable", slog.Any("error", err))
		w.Header().Set("Retry-After", "1")
		chatsdk.ErrStoreUnavailable.WriteError(w)

	case errors.Is(err, bus.ErrClosed):
		w.Header().Set("Retry-After", "1")
		chatsdk.ErrServiceUnavailable.WriteError(w)

	default:
		log.Error("unhandled service error", slog.Any("error", err))
		chatsdk.ErrServerError.WriteError(w)
	}
}

// badRequest reports a body that could not be decoded.
func badRequest(w http.ResponseWriter, err error) {
	chatsdk.ErrInvalidRequest.WithDescription(err.Error()).WriteError(w)
}
