package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
	"github.com/aussiebroadwan/wgchat/internal/chat/pake"
	"github.com/aussiebroadwan/wgchat/internal/chat/store"
	"github.com/aussiebroadwan/wgchat/pkg/idx"
	"github.com/aussiebroadwan/wgchat/pkg/jwtx"
	"github.com/aussiebroadwan/wgchat/pkg/slogx"
)

// StateSealer encrypts the server's login state so it can travel inside
// the login token. *cryptox.Sealer implements it.
type StateSealer interface {
	Seal(plaintext, additionalData []byte) (string, error)
	Open(sealed string, additionalData []byte) ([]byte, error)
}

// AuthService runs the OPAQUE registration and login handshakes and hands
// successful ones to the SessionService.
type AuthService struct {
	Store    store.Store
	PAKE     pake.Server // nil when OPAQUE_SERVER_SETUP is missing
	Codec    *jwtx.Codec
	Sealer   StateSealer
	Sessions *SessionService
	Guard    *TokenGuard
	Now      func() time.Time
}

type RegistrationStartInput struct {
	Username string `json:"username" validate:"required,min=2,max=32,username"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Request  []byte `json:"registrationRequest" validate:"required,min=1"`
}

type RegistrationStartResult struct {
	Response []byte
	Token    string
}

type LoginStartInput struct {
	Username string `json:"username" validate:"required,min=2,max=32,username"`
	Request  []byte `json:"loginRequest" validate:"required,min=1"`
}

type LoginStartResult struct {
	Response []byte
	Token    string
}

// UsernameStatus answers whether a username could be registered.
type UsernameStatus struct {
	Username  string
	Valid     bool
	Available bool
	Reason    string
}

// StartRegistration reserves the username and answers the client's
// registration request. The user id doubles as the OPAQUE credential
// identifier.
func (s *AuthService) StartRegistration(ctx context.Context, in RegistrationStartInput) (RegistrationStartResult, error) {
	if err := validateStruct(in); err != nil {
		return RegistrationStartResult{}, err
	}
	l := slogx.FromContext(ctx)

	_, err := s.Store.Users().GetUserByUsername(ctx, in.Username)
	switch {
	case err == nil:
		return RegistrationStartResult{}, ErrUsernameTaken
	case !errors.Is(err, store.ErrNotFound):
		return RegistrationStartResult{}, storeFailure(err)
	}

	if s.PAKE == nil {
		l.Error("registration attempted without OPAQUE server setup")
		return RegistrationStartResult{}, ErrServerMisconfigured
	}

	now := s.Now().UTC()
	user := domain.User{
		ID:        idx.New().String(),
		Username:  in.Username,
		Email:     in.Email,
		CreatedAt: now,
	}

	// Answer before persisting so a malformed request reserves nothing.
	resp, err := s.PAKE.RegistrationResponse(user.ID, in.Request)
	if err != nil {
		return RegistrationStartResult{}, s.pakeError("registrationRequest", err)
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return RegistrationStartResult{}, ErrUsernameTaken
		}
		return RegistrationStartResult{}, storeFailure(err)
	}

	token, err := s.Codec.Encode(jwtx.RegistrationToken{
		UserID:   user.ID,
		Username: user.Username,
		IssuedAt: now,
	})
	if err != nil {
		return RegistrationStartResult{}, fmt.Errorf("%w: sign registration token: %w", ErrServerMisconfigured, err)
	}

	l.Info("registration started", slog.String("user_id", user.ID), slog.String("username", user.Username))
	return RegistrationStartResult{Response: resp, Token: token}, nil
}

// FinishRegistration stores the client's registration record and signs the
// new user in.
func (s *AuthService) FinishRegistration(ctx context.Context, token string, record []byte) (domain.Session, error) {
	tok, err := jwtx.Expect[jwtx.RegistrationToken](s.Codec, token)
	if err != nil {
		return domain.Session{}, ErrInvalidProtocolToken
	}
	if s.Now().After(tok.ExpiresAt()) {
		return domain.Session{}, ErrInvalidProtocolToken
	}
	if len(record) == 0 {
		return domain.Session{}, invalid("registrationRecord", "is required")
	}
	if s.PAKE == nil {
		return domain.Session{}, ErrServerMisconfigured
	}

	user, err := s.Store.Users().GetUserByID(ctx, tok.UserID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Session{}, ErrInvalidProtocolToken
	}
	if err != nil {
		return domain.Session{}, storeFailure(err)
	}
	if user.Registered() {
		return domain.Session{}, ErrInvalidProtocolToken
	}

	if err := s.PAKE.CheckRecord(record); err != nil {
		return domain.Session{}, s.pakeError("registrationRecord", err)
	}

	if !s.Guard.Consume(tok.ID, tok.ExpiresAt()) {
		return domain.Session{}, ErrInvalidProtocolToken
	}

	// The envelope and the first refresh row commit together. If either
	// fails nothing is written and the token is released for a retry.
	var session domain.Session
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdatePasswordEnvelope(ctx, user.ID, record); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidProtocolToken
			}
			return storeFailure(err)
		}

		var issueErr error
		session, issueErr = s.Sessions.issueIn(ctx, tx.RefreshTokens(), user.ID, user.Username)
		return issueErr
	})
	if err != nil {
		if errors.Is(err, ErrInvalidProtocolToken) {
			return domain.Session{}, err
		}
		s.Guard.Release(tok.ID)
		return domain.Session{}, classifyStoreError(err)
	}

	slogx.FromContext(ctx).Info("registration finished", slog.String("user_id", user.ID))
	return session, nil
}

// StartLogin runs the first server step of the login. Unknown users and
// users who never finished registering both get ErrInvalidCredentials.
func (s *AuthService) StartLogin(ctx context.Context, in LoginStartInput) (LoginStartResult, error) {
	if err := validateStruct(in); err != nil {
		return LoginStartResult{}, err
	}
	if s.PAKE == nil {
		return LoginStartResult{}, ErrServerMisconfigured
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, in.Username)
	if errors.Is(err, store.ErrNotFound) {
		return LoginStartResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginStartResult{}, storeFailure(err)
	}
	if !user.Registered() {
		return LoginStartResult{}, ErrInvalidCredentials
	}

	ke2, state, err := s.PAKE.StartLogin(user.ID, user.PasswordEnvelope, in.Request)
	if err != nil {
		if errors.Is(err, pake.ErrNotConfigured) {
			return LoginStartResult{}, ErrServerMisconfigured
		}
		slogx.FromContext(ctx).Debug("login start rejected", slog.Any("error", err))
		return LoginStartResult{}, ErrInvalidCredentials
	}

	sealed, err := s.Sealer.Seal(state, []byte(user.ID))
	if err != nil {
		return LoginStartResult{}, fmt.Errorf("%w: seal login state: %w", ErrServerMisconfigured, err)
	}

	token, err := s.Codec.Encode(jwtx.LoginToken{
		UserID:   user.ID,
		Username: user.Username,
		State:    sealed,
		IssuedAt: s.Now().UTC(),
	})
	if err != nil {
		return LoginStartResult{}, fmt.Errorf("%w: sign login token: %w", ErrServerMisconfigured, err)
	}

	return LoginStartResult{Response: ke2, Token: token}, nil
}

// FinishLogin checks the client's final message against the state carried
// in the login token. Every protocol failure is reported as
// ErrInvalidCredentials.
func (s *AuthService) FinishLogin(ctx context.Context, token string, finish []byte) (domain.Session, error) {
	l := slogx.FromContext(ctx)

	tok, err := jwtx.Expect[jwtx.LoginToken](s.Codec, token)
	if err != nil {
		return domain.Session{}, ErrInvalidProtocolToken
	}
	if s.Now().After(tok.ExpiresAt()) {
		return domain.Session{}, ErrInvalidProtocolToken
	}
	if s.PAKE == nil {
		return domain.Session{}, ErrServerMisconfigured
	}
	if !s.Guard.Consume(tok.ID, tok.ExpiresAt()) {
		return domain.Session{}, ErrInvalidProtocolToken
	}

	state, err := s.Sealer.Open(tok.State, []byte(tok.UserID))
	if err != nil {
		l.Warn("login state could not be opened", slog.String("user_id", tok.UserID))
		return domain.Session{}, ErrInvalidProtocolToken
	}

	if err := s.PAKE.FinishLogin(state, finish); err != nil {
		if errors.Is(err, pake.ErrNotConfigured) {
			return domain.Session{}, ErrServerMisconfigured
		}
		l.Info("login failed", slog.String("user_id", tok.UserID))
		return domain.Session{}, ErrInvalidCredentials
	}

	session, err := s.Sessions.Issue(ctx, tok.UserID, tok.Username)
	if err != nil {
		// The handshake itself succeeded; let the client finish again.
		s.Guard.Release(tok.ID)
		return domain.Session{}, err
	}

	l.Info("login succeeded", slog.String("user_id", tok.UserID))
	return session, nil
}

// CheckUsername reports whether username is well formed and still free.
func (s *AuthService) CheckUsername(ctx context.Context, username string) (UsernameStatus, error) {
	status := UsernameStatus{Username: username}

	if err := ValidateUsername(username); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			status.Reason = ve.Message
		}
		return status, nil
	}
	status.Valid = true

	_, err := s.Store.Users().GetUserByUsername(ctx, username)
	switch {
	case errors.Is(err, store.ErrNotFound):
		status.Available = true
	case err != nil:
		return UsernameStatus{}, storeFailure(err)
	default:
		status.Reason = "is already taken"
	}
	return status, nil
}

func (s *AuthService) pakeError(field string, err error) error {
	switch {
	case errors.Is(err, pake.ErrNotConfigured):
		return ErrServerMisconfigured
	case errors.Is(err, pake.ErrMalformed):
		return invalid(field, "is not a valid protocol message")
	default:
		return ErrInvalidCredentials
	}
}
