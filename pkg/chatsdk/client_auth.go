package chatsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aussiebroadwan/wgchat/internal/chat/pake"
)

// Register runs both registration round trips for username and leaves the
// client logged in as the new user.
func (c *Client) Register(ctx context.Context, username, email, password string) (*SessionResponse, error) {
	reg, request, err := pake.StartRegistration([]byte(password))
	if err != nil {
		return nil, fmt.Errorf("start registration: %w", err)
	}

	var start RegisterStartResponse
	err = c.doJSON(ctx, http.MethodPost, "/v1/auth/register/start", RegisterStartRequest{
		Username:            username,
		Email:               email,
		RegistrationRequest: EncodeBytes(request),
	}, &start, http.StatusOK)
	if err != nil {
		return nil, err
	}

	response, err := DecodeBytes(start.RegistrationResponse)
	if err != nil {
		return nil, fmt.Errorf("decode registration response: %w", err)
	}
	record, err := reg.Finish(response)
	if err != nil {
		return nil, fmt.Errorf("finish registration: %w", err)
	}

	var session SessionResponse
	err = c.doJSON(ctx, http.MethodPost, "/v1/auth/register/finish", RegisterFinishRequest{
		RegistrationToken:  start.RegistrationToken,
		RegistrationRecord: EncodeBytes(record),
	}, &session, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Login runs both login round trips. A wrong password is reported by the
// server as ErrInvalidCredentials, same as an unknown user.
func (c *Client) Login(ctx context.Context, username, password string) (*SessionResponse, error) {
	login, ke1, err := pake.StartLogin([]byte(password))
	if err != nil {
		return nil, fmt.Errorf("start login: %w", err)
	}

	var start LoginStartResponse
	err = c.doJSON(ctx, http.MethodPost, "/v1/auth/login/start", LoginStartRequest{
		Username:     username,
		LoginRequest: EncodeBytes(ke1),
	}, &start, http.StatusOK)
	if err != nil {
		return nil, err
	}

	ke2, err := DecodeBytes(start.LoginResponse)
	if err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}

	// When KE2 does not verify locally the server still has to hear about
	// it, or the login token would stay usable until it expires. Sending a
	// KE3 that cannot verify burns the token.
	ke3, err := login.Finish(ke2)
	if err != nil {
		ke3 = make([]byte, 64)
	}

	var session SessionResponse
	err = c.doJSON(ctx, http.MethodPost, "/v1/auth/login/finish", LoginFinishRequest{
		LoginToken:  start.LoginToken,
		LoginFinish: EncodeBytes(ke3),
	}, &session, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// CheckUsername asks whether username is well formed and free.
func (c *Client) CheckUsername(ctx context.Context, username string) (*UsernameResponse, error) {
	var out UsernameResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/auth/username/"+url.PathEscape(username), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh forces a new access token for the current refresh cookie.
func (c *Client) Refresh(ctx context.Context) (*RefreshResponse, error) {
	var out RefreshResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/auth/refresh", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes the current session. It succeeds even when the session is
// already gone.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/auth/logout", nil, nil, http.StatusNoContent)
}

// LogoutAll revokes every session of the current user, on every device.
func (c *Client) LogoutAll(ctx context.Context) (*RevokeAllResponse, error) {
	var out RevokeAllResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/auth/sessions/revoke", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
