package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
	"github.com/aussiebroadwan/wgchat/internal/chat/service"
	"github.com/aussiebroadwan/wgchat/pkg/chatsdk"
	"github.com/aussiebroadwan/wgchat/pkg/httpx"
)

// AuthHandler serves the OPAQUE handshakes and session management.
type AuthHandler struct {
	AuthService    *service.AuthService
	SessionService *service.SessionService

	cookies httpx.Cookies
	errorWriter
}

// decodeBytes decodes a base64url protocol field, naming it on failure.
func decodeBytes(field, value string) ([]byte, error) {
	if value == "" {
		return nil, nil
	}
	b, err := chatsdk.DecodeBytes(value)
	if err != nil {
		return nil, errors.New(field + " is not valid base64url")
	}
	return b, nil
}

// startSession sets the session cookies and answers with who logged in.
func (h *AuthHandler) startSession(w http.ResponseWriter, s domain.Session) {
	h.cookies.SetSession(w, s.RefreshToken, s.AccessToken)
	httpx.WriteJSON(w, http.StatusOK, chatsdk.SessionResponse{
		UserID:    s.UserID,
		Username:  s.Username,
		ExpiresAt: s.AccessExpiresAt.UnixMilli(),
	})
}

// HandleRegisterStart godoc
//
//	@Summary		Start registration
//	@Description	Reserves the username and answers the client's OPAQUE registration request.
//	@Description	The returned token must be sent back with the registration record within 3 hours.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		chatsdk.RegisterStartRequest	true	"username, email, registrationRequest"
//	@Success		200		{object}	chatsdk.RegisterStartResponse
//	@Failure		400		{object}	chatsdk.ErrorResponse	"invalid_request, validation_failed"
//	@Failure		409		{object}	chatsdk.ErrorResponse	"username_taken"
//	@Failure		500		{object}	chatsdk.ErrorResponse	"server_misconfigured"
//	@Failure		503		{object}	chatsdk.ErrorResponse	"store_unavailable"
//	@Router			/v1/auth/register/start [post].
func (h *AuthHandler) HandleRegisterStart(w http.ResponseWriter, r *http.Request) {
	var req chatsdk.RegisterStartRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	request, err := decodeBytes("registrationRequest", req.RegistrationRequest)
	if err != nil {
		badRequest(w, err)
		return
	}

	res, err := h.AuthService.StartRegistration(r.Context(), service.RegistrationStartInput{
		Username: req.Username,
		Email:    req.Email,
		Request:  request,
	})
	if err != nil {
		h.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, chatsdk.RegisterStartResponse{
		RegistrationResponse: chatsdk.EncodeBytes(res.Response),
		RegistrationToken:    res.Token,
	})
}

// HandleRegisterFinish godoc
//
//	@Summary		Finish registration
//	@Description	Stores the client's registration record and logs the new user in.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		chatsdk.RegisterFinishRequest	true	"registrationToken, registrationRecord"
//	@Success		200		{object}	chatsdk.SessionResponse			"sets refreshToken and accessToken cookies"
//	@Failure		400		{object}	chatsdk.ErrorResponse			"invalid_request, validation_failed"
//	@Failure		401		{object}	chatsdk.ErrorResponse			"invalid_credentials"
//	@Failure		503		{object}	chatsdk.ErrorResponse			"store_unavailable"
//	@Router			/v1/auth/register/finish [post].
func (h *AuthHandler) HandleRegisterFinish(w http.ResponseWriter, r *http.Request) {
	var req chatsdk.RegisterFinishRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	record, err := decodeBytes("registrationRecord", req.RegistrationRecord)
	if err != nil {
		badRequest(w, err)
		return
	}

	session, err := h.AuthService.FinishRegistration(r.Context(), req.RegistrationToken, record)
	if err != nil {
		h.write(w, r, err)
		return
	}
	h.startSession(w, session)
}

// HandleLoginStart godoc
//
//	@Summary		Start login
//	@Description	Answers the client's KE1 with KE2. Unknown users and unfinished registrations
//	@Description	fail the same way as a wrong password does at the finish step.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		chatsdk.LoginStartRequest	true	"username, loginRequest"
//	@Success		200		{object}	chatsdk.LoginStartResponse
//	@Failure		400		{object}	chatsdk.ErrorResponse	"invalid_request, validation_failed"
//	@Failure		401		{object}	chatsdk.ErrorResponse	"invalid_credentials"
//	@Failure		500		{object}	chatsdk.ErrorResponse	"server_misconfigured"
//	@Failure		503		{object}	chatsdk.ErrorResponse	"store_unavailable"
//	@Router			/v1/auth/login/start [post].
func (h *AuthHandler) HandleLoginStart(w http.ResponseWriter, r *http.Request) {
	var req chatsdk.LoginStartRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	ke1, err := decodeBytes("loginRequest", req.LoginRequest)
	if err != nil {
		badRequest(w, err)
		return
	}

	res, err := h.AuthService.StartLogin(r.Context(), service.LoginStartInput{
		Username: req.Username,
		Request:  ke1,
	})
	if err != nil {
		h.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, chatsdk.LoginStartResponse{
		LoginResponse: chatsdk.EncodeBytes(res.Response),
		LoginToken:    res.Token,
	})
}

// HandleLoginFinish godoc
//
//	@Summary		Finish login
//	@Description	Verifies the client's KE3 and starts a session.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		chatsdk.LoginFinishRequest	true	"loginToken, finishLoginRequest"
//	@Success		200		{object}	chatsdk.SessionResponse		"sets refreshToken and accessToken cookies"
//	@Failure		400		{object}	chatsdk.ErrorResponse		"invalid_request"
//	@Failure		401		{object}	chatsdk.ErrorResponse		"invalid_credentials"
//	@Failure		503		{object}	chatsdk.ErrorResponse		"store_unavailable"
//	@Router			/v1/auth/login/finish [post].
func (h *AuthHandler) HandleLoginFinish(w http.ResponseWriter, r *http.Request) {
	var req chatsdk.LoginFinishRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	ke3, err := decodeBytes("finishLoginRequest", req.LoginFinish)
	if err != nil {
		badRequest(w, err)
		return
	}

	session, err := h.AuthService.FinishLogin(r.Context(), req.LoginToken, ke3)
	if err != nil {
		h.write(w, r, err)
		return
	}
	h.startSession(w, session)
}

// HandleUsername godoc
//
//	@Summary		Check a username
//	@Description	Reports whether a username is well formed and not yet taken.
//	@Tags			Auth
//	@Produce		json
//	@Param			username	path		string	true	"Username to check"
//	@Success		200			{object}	chatsdk.UsernameResponse
//	@Failure		503			{object}	chatsdk.ErrorResponse	"store_unavailable"
//	@Router			/v1/auth/username/{username} [get].
func (h *AuthHandler) HandleUsername(w http.ResponseWriter, r *http.Request) {
	status, err := h.AuthService.CheckUsername(r.Context(), r.PathValue("username"))
	if err != nil {
		h.write(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, chatsdk.UsernameResponse{
		Username:  status.Username,
		Valid:     status.Valid,
		Available: status.Available,
		Reason:    status.Reason,
	})
}

// HandleRefresh godoc
//
//	@Summary		Refresh the access token
//	@Description	Mints a new access token from the refresh cookie and rewrites the access cookie.
//	@Description	A missing, expired or revoked refresh cookie clears both cookies.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	chatsdk.RefreshResponse
//	@Failure		401	{object}	chatsdk.ErrorResponse	"unauthenticated"
//	@Failure		503	{object}	chatsdk.ErrorResponse	"store_unavailable"
//	@Router			/v1/auth/refresh [post].
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	refresh, _ := h.cookies.Read(r)

	v, err := h.SessionService.Refresh(r.Context(), refresh)
	if err != nil {
		h.write(w, r, err)
		return
	}

	h.cookies.SetAccess(w, v.AccessToken)
	httpx.WriteJSON(w, http.StatusOK, chatsdk.RefreshResponse{
		AccessToken: v.AccessToken,
		ExpiresAt:   v.AccessExpiresAt.UnixMilli(),
	})
}

// HandleLogout godoc
//
//	@Summary		Log out
//	@Description	Revokes the session behind the refresh cookie and clears both cookies.
//	@Description	Always succeeds, even when the session is already gone.
//	@Tags			Auth
//	@Success		204
//	@Router			/v1/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	refresh, _ := h.cookies.Read(r)
	h.SessionService.Revoke(r.Context(), refresh)

	h.cookies.Clear(w)
	httpx.NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// HandleRevokeAll godoc
//
//	@Summary		Revoke every session
//	@Description	Ends all sessions of the calling user, on every device, and clears this one's cookies.
//	@Tags			Auth
//	@Produce		json
//	@Security		CookieAuth
//	@Success		200	{object}	chatsdk.RevokeAllResponse
//	@Failure		401	{object}	chatsdk.ErrorResponse	"unauthenticated"
//	@Failure		503	{object}	chatsdk.ErrorResponse	"store_unavailable"
//	@Router			/v1/auth/sessions/revoke [post].
func (h *AuthHandler) HandleRevokeAll(w http.ResponseWriter, r *http.Request) {
	id, ok := httpx.IdentityFromContext(r.Context())
	if !ok {
		h.write(w, r, service.ErrUnauthenticated)
		return
	}

	n, err := h.SessionService.RevokeAll(r.Context(), id.UserID)
	if err != nil {
		h.write(w, r, err)
		return
	}

	h.cookies.Clear(w)
	httpx.WriteJSON(w, http.StatusOK, chatsdk.RevokeAllResponse{Revoked: n})
}
