package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/wgchat/internal/chat/bus"
	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
	"github.com/aussiebroadwan/wgchat/internal/chat/service"
	"github.com/aussiebroadwan/wgchat/pkg/chatsdk"
	"github.com/aussiebroadwan/wgchat/pkg/httpx"
	"github.com/samber/lo"
)

// ChatHandler serves the authenticated chat routes. Every route runs behind
// the session middleware.
type ChatHandler struct {
	ChatService *service.ChatService
	Heartbeat   time.Duration

	errorWriter
}

// caller returns the identity the session middleware attached.
func (h *ChatHandler) caller(w http.ResponseWriter, r *http.Request) (bus.Identity, bool) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		h.write(w, r, service.ErrUnauthenticated)
		return bus.Identity{}, false
	}
	return bus.Identity{UserID: id.UserID, Username: id.Username}, true
}

func toWireMessage(m domain.Message) chatsdk.Message {
	return chatsdk.Message{
		ID:        m.ID.String(),
		From:      m.From,
		To:        m.To,
		Body:      m.Body,
		Timestamp: m.Timestamp,
	}
}

// HandleSelf godoc
//
//	@Summary	Who am I
//	@Tags		Chat
//	@Produce	json
//	@Security	CookieAuth
//	@Success	200	{object}	chatsdk.SelfResponse
//	@Failure	401	{object}	chatsdk.ErrorResponse	"unauthenticated"
//	@Router		/v1/chat/self [get].
func (h *ChatHandler) HandleSelf(w http.ResponseWriter, r *http.Request) {
	who, ok := h.caller(w, r)
	if !ok {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, chatsdk.SelfResponse{Self: h.ChatService.Self(who)})
}

// HandleGetRecipient godoc
//
//	@Summary	Current recipient
//	@Description	Returns the user whose conversation the caller has open, or null.
//	@Tags		Chat
//	@Produce	json
//	@Security	CookieAuth
//	@Success	200	{object}	chatsdk.RecipientResponse
//	@Failure	401	{object}	chatsdk.ErrorResponse	"unauthenticated"
//	@Router		/v1/chat/recipient [get].
func (h *ChatHandler) HandleGetRecipient(w http.ResponseWriter, r *http.Request) {
	who, ok := h.caller(w, r)
	if !ok {
		return
	}
	httpx.WriteJSON(w, http.StatusOK, chatsdk.RecipientResponse{Recipient: h.ChatService.Recipient(who)})
}

// HandleSetRecipient godoc
//
//	@Summary		Open a conversation
//	@Description	Messages from the named user are delivered live only while their conversation
//	@Description	is open. An empty recipient closes it and returns null.
//	@Tags			Chat
//	@Accept			json
//	@Produce		json
//	@Security		CookieAuth
//	@Param			request	body		chatsdk.SetRecipientRequest	true	"recipient"
//	@Success		200		{object}	chatsdk.RecipientResponse
//	@Failure		400		{object}	chatsdk.ErrorResponse	"validation_failed"
//	@Failure		401		{object}	chatsdk.ErrorResponse	"unauthenticated"
//	@Router			/v1/chat/recipient [put].
func (h *ChatHandler) HandleSetRecipient(w http.ResponseWriter, r *http.Request) {
	who, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req chatsdk.SetRecipientRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	recipient, err := h.ChatService.SetRecipient(who, req.Recipient)
	if err != nil {
		h.write(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, chatsdk.RecipientResponse{Recipient: recipient})
}

// HandleSend godoc
//
//	@Summary		Send a message
//	@Description	Stores the message in the pair's history and publishes it to the sender and,
//	@Description	if they have this conversation open, the recipient.
//	@Tags			Chat
//	@Accept			json
//	@Produce		json
//	@Security		CookieAuth
//	@Param			request	body		chatsdk.SendMessageRequest	true	"to, body"
//	@Success		201		{object}	chatsdk.SendMessageResponse
//	@Failure		400		{object}	chatsdk.ErrorResponse	"validation_failed"
//	@Failure		401		{object}	chatsdk.ErrorResponse	"unauthenticated"
//	@Failure		503		{object}	chatsdk.ErrorResponse	"store_unavailable"
//	@Router			/v1/chat/messages [post].
func (h *ChatHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	who, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req chatsdk.SendMessageRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	msg, err := h.ChatService.Send(r.Context(), who, req.To, req.Body)
	if err != nil {
		h.write(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, chatsdk.SendMessageResponse{ID: msg.ID.String()})
}

// HandleHistory godoc
//
//	@Summary		Conversation history
//	@Description	Returns up to the last 200 messages between the caller and another user, oldest first.
//	@Tags			Chat
//	@Produce		json
//	@Security		CookieAuth
//	@Param			with	query		string	true	"Other party's username"
//	@Success		200		{object}	chatsdk.HistoryResponse
//	@Failure		400		{object}	chatsdk.ErrorResponse	"validation_failed"
//	@Failure		401		{object}	chatsdk.ErrorResponse	"unauthenticated"
//	@Failure		503		{object}	chatsdk.ErrorResponse	"store_unavailable"
//	@Router			/v1/chat/messages [get].
func (h *ChatHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	who, ok := h.caller(w, r)
	if !ok {
		return
	}

	msgs, err := h.ChatService.History(r.Context(), who, r.URL.Query().Get("with"))
	if err != nil {
		h.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, chatsdk.HistoryResponse{
		Messages: lo.Map(msgs, func(m domain.Message, _ int) chatsdk.Message {
			return toWireMessage(m)
		}),
	})
}
