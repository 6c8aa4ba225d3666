package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
	"github.com/aussiebroadwan/wgchat/internal/chat/store/drivers/sqlite/gen"
)

type refreshTokensRepo struct {
	q *gen.Queries
}

func (r *refreshTokensRepo) CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error {
	err := r.q.CreateRefreshToken(ctx, gen.CreateRefreshTokenParams{
		ID:        t.ID,
		TokenHash: t.TokenHash,
		UserID:    t.UserID,
		IssuedAt:  t.IssuedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *refreshTokensRepo) GetRefreshTokenByID(ctx context.Context, id string) (domain.RefreshToken, error) {
	row, err := r.q.GetRefreshTokenByID(ctx, id)
	if err != nil {
		return domain.RefreshToken{}, mapNotFound(err)
	}
	// Both lookups select the same columns.
	return mapRefreshToken(gen.GetRefreshTokenByHashRow(row)), nil
}

func (r *refreshTokensRepo) GetRefreshTokenByHash(ctx context.Context, hash string) (domain.RefreshToken, error) {
	row, err := r.q.GetRefreshTokenByHash(ctx, hash)
	if err != nil {
		return domain.RefreshToken{}, mapNotFound(err)
	}
	return mapRefreshToken(row), nil
}

func (r *refreshTokensRepo) DeleteRefreshToken(ctx context.Context, id string) error {
	return r.q.DeleteRefreshToken(ctx, id)
}

func (r *refreshTokensRepo) DeleteUserRefreshTokens(ctx context.Context, userID string) (int64, error) {
	return r.q.DeleteUserRefreshTokens(ctx, userID)
}

func (r *refreshTokensRepo) DeleteRefreshTokensIssuedBefore(ctx context.Context, before time.Time) (int64, error) {
	return r.q.DeleteRefreshTokensIssuedBefore(ctx, before.UTC())
}

func mapRefreshToken(row gen.GetRefreshTokenByHashRow) domain.RefreshToken {
	return domain.RefreshToken{
		ID:        row.ID,
		TokenHash: row.TokenHash,
		UserID:    row.UserID,
		Username:  row.Username,
		IssuedAt:  row.IssuedAt.UTC(),
	}
}
