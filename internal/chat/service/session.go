package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
	"github.com/aussiebroadwan/wgchat/internal/chat/store"
	"github.com/aussiebroadwan/wgchat/pkg/cryptox"
	"github.com/aussiebroadwan/wgchat/pkg/httpx"
	"github.com/aussiebroadwan/wgchat/pkg/idx"
	"github.com/aussiebroadwan/wgchat/pkg/jwtx"
	"github.com/aussiebroadwan/wgchat/pkg/slogx"
)

// DefaultRefreshWindow is how long a refresh row can extend a session.
const DefaultRefreshWindow = 7 * 24 * time.Hour

// SessionService owns the refresh/access credential pair. Refresh rows live
// in the store; access tokens are signed JWTs bound to a row, so deleting
// the row kills every access token minted from it.
type SessionService struct {
	Store         store.Store
	Codec         *jwtx.Codec
	RefreshWindow time.Duration
	Now           func() time.Time
}

func NewSessionService(st store.Store, codec *jwtx.Codec) *SessionService {
	return &SessionService{
		Store:         st,
		Codec:         codec,
		RefreshWindow: DefaultRefreshWindow,
		Now:           time.Now,
	}
}

// Verification is the outcome of a successful Verify or Refresh.
// AccessToken is empty when the presented access token was reused.
type Verification struct {
	UserID          string
	Username        string
	RefreshID       string
	AccessToken     string
	AccessExpiresAt time.Time
}

// Issue creates a refresh row for the user and mints an access token that
// references it.
func (s *SessionService) Issue(ctx context.Context, userID, username string) (domain.Session, error) {
	return s.issueIn(ctx, s.Store.RefreshTokens(), userID, username)
}

// issueIn is Issue against repo, which may belong to a transaction the
// caller commits.
func (s *SessionService) issueIn(ctx context.Context, repo store.RefreshTokens, userID, username string) (domain.Session, error) {
	now := s.Now().UTC()

	raw, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.Session{}, err
	}

	row := domain.RefreshToken{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(raw),
		UserID:    userID,
		Username:  username,
		IssuedAt:  now,
	}
	if err := repo.CreateRefreshToken(ctx, row); err != nil {
		return domain.Session{}, storeFailure(err)
	}

	access, exp, err := s.mint(row, now)
	if err != nil {
		return domain.Session{}, err
	}

	slogx.FromContext(ctx).Info("session issued",
		slog.String("user_id", userID),
		slog.String("refresh_id", row.ID),
	)

	return domain.Session{
		UserID:          userID,
		Username:        username,
		RefreshToken:    raw,
		AccessToken:     access,
		AccessExpiresAt: exp,
	}, nil
}

// Verify authenticates a request from its refresh and access values.
//
//  1. No refresh value: ErrUnauthenticated.
//  2. Unknown refresh value: ErrUnauthenticated.
//  3. Refresh row older than the window: the row is deleted, ErrUnauthenticated.
//  4. Access token valid and bound to this row and user: authenticated as is.
//  5. Otherwise a new access token for the same row is minted and returned.
func (s *SessionService) Verify(ctx context.Context, refresh, access string) (Verification, error) {
	row, err := s.liveRow(ctx, refresh)
	if err != nil {
		return Verification{}, err
	}

	if access != "" {
		tok, err := jwtx.Expect[jwtx.AccessToken](s.Codec, access)
		if err == nil && tok.RefreshID == row.ID && tok.UserID == row.UserID {
			return Verification{
				UserID:          row.UserID,
				Username:        row.Username,
				RefreshID:       row.ID,
				AccessExpiresAt: tok.ExpiresAt(),
			}, nil
		}
	}

	return s.reissue(ctx, row)
}

// Refresh always mints a new access token for a live refresh value.
func (s *SessionService) Refresh(ctx context.Context, refresh string) (Verification, error) {
	row, err := s.liveRow(ctx, refresh)
	if err != nil {
		return Verification{}, err
	}
	return s.reissue(ctx, row)
}

// Revoke deletes the refresh row behind refresh. Failures are logged and
// swallowed: the row being gone is the goal either way.
func (s *SessionService) Revoke(ctx context.Context, refresh string) {
	if refresh == "" {
		return
	}
	l := slogx.FromContext(ctx)

	row, err := s.Store.RefreshTokens().GetRefreshTokenByHash(ctx, cryptox.FingerprintToken(refresh))
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			l.Warn("revoke lookup failed", slog.Any("error", err))
		}
		return
	}

	if err := s.Store.RefreshTokens().DeleteRefreshToken(ctx, row.ID); err != nil {
		l.Warn("revoke delete failed", slog.String("refresh_id", row.ID), slog.Any("error", err))
		return
	}
	l.Info("session revoked", slog.String("user_id", row.UserID), slog.String("refresh_id", row.ID))
}

// RevokeAll deletes every refresh row for userID, ending all of its
// sessions.
func (s *SessionService) RevokeAll(ctx context.Context, userID string) (int64, error) {
	n, err := s.Store.RefreshTokens().DeleteUserRefreshTokens(ctx, userID)
	if err != nil {
		return 0, storeFailure(err)
	}
	slogx.FromContext(ctx).Info("all sessions revoked", slog.String("user_id", userID), slog.Int64("count", n))
	return n, nil
}

// VerifySession adapts Verify to the HTTP session middleware.
func (s *SessionService) VerifySession(ctx context.Context, refresh, access string) (httpx.SessionCheck, error) {
	v, err := s.Verify(ctx, refresh, access)
	if err != nil {
		return httpx.SessionCheck{}, err
	}
	return httpx.SessionCheck{
		Identity:    httpx.Identity{UserID: v.UserID, Username: v.Username},
		AccessToken: v.AccessToken,
	}, nil
}

// liveRow resolves refresh to a row inside the refresh window, deleting it
// if it has aged out.
func (s *SessionService) liveRow(ctx context.Context, refresh string) (domain.RefreshToken, error) {
	if refresh == "" {
		return domain.RefreshToken{}, ErrUnauthenticated
	}

	row, err := s.Store.RefreshTokens().GetRefreshTokenByHash(ctx, cryptox.FingerprintToken(refresh))
	if errors.Is(err, store.ErrNotFound) {
		return domain.RefreshToken{}, ErrUnauthenticated
	}
	if err != nil {
		return domain.RefreshToken{}, storeFailure(err)
	}

	if s.Now().Sub(row.IssuedAt) > s.RefreshWindow {
		if err := s.Store.RefreshTokens().DeleteRefreshToken(ctx, row.ID); err != nil {
			slogx.FromContext(ctx).Warn("delete expired refresh token failed",
				slog.String("refresh_id", row.ID), slog.Any("error", err))
		}
		return domain.RefreshToken{}, ErrUnauthenticated
	}
	return row, nil
}

func (s *SessionService) reissue(ctx context.Context, row domain.RefreshToken) (Verification, error) {
	access, exp, err := s.mint(row, s.Now().UTC())
	if err != nil {
		return Verification{}, err
	}

	slogx.FromContext(ctx).Debug("access token reissued", slog.String("refresh_id", row.ID))

	return Verification{
		UserID:          row.UserID,
		Username:        row.Username,
		RefreshID:       row.ID,
		AccessToken:     access,
		AccessExpiresAt: exp,
	}, nil
}

func (s *SessionService) mint(row domain.RefreshToken, now time.Time) (string, time.Time, error) {
	tok := jwtx.AccessToken{
		UserID:    row.UserID,
		Username:  row.Username,
		RefreshID: row.ID,
		IssuedAt:  now,
	}
	raw, err := s.Codec.Encode(tok)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: sign access token: %w", ErrServerMisconfigured, err)
	}
	return raw, tok.ExpiresAt(), nil
}
