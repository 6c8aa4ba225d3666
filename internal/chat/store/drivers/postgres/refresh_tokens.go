package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
)

type refreshTokensRepo struct {
	db DBTX
}

const selectRefreshToken = `SELECT rt.id, rt.token_hash, rt.user_id, rt.issued_at, u.username
FROM refresh_tokens rt
JOIN users u ON u.id = rt.user_id`

func (r *refreshTokensRepo) CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO refresh_tokens (id, token_hash, user_id, issued_at) VALUES ($1, $2, $3, $4)`,
		t.ID, t.TokenHash, t.UserID, t.IssuedAt.UTC())
	return mapConstraint(err)
}

func (r *refreshTokensRepo) GetRefreshTokenByID(ctx context.Context, id string) (domain.RefreshToken, error) {
	return r.scan(r.db.QueryRowContext(ctx, selectRefreshToken+` WHERE rt.id = $1`, id))
}

func (r *refreshTokensRepo) GetRefreshTokenByHash(ctx context.Context, hash string) (domain.RefreshToken, error) {
	return r.scan(r.db.QueryRowContext(ctx, selectRefreshToken+` WHERE rt.token_hash = $1`, hash))
}

func (r *refreshTokensRepo) scan(row rowScanner) (domain.RefreshToken, error) {
	var t domain.RefreshToken
	if err := row.Scan(&t.ID, &t.TokenHash, &t.UserID, &t.IssuedAt, &t.Username); err != nil {
		return domain.RefreshToken{}, mapNotFound(err)
	}
	t.IssuedAt = t.IssuedAt.UTC()
	return t, nil
}

func (r *refreshTokensRepo) DeleteRefreshToken(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE id = $1`, id)
	return err
}

func (r *refreshTokensRepo) DeleteUserRefreshTokens(ctx context.Context, userID string) (int64, error) {
	return r.execRows(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
}

func (r *refreshTokensRepo) DeleteRefreshTokensIssuedBefore(ctx context.Context, before time.Time) (int64, error) {
	return r.execRows(ctx, `DELETE FROM refresh_tokens WHERE issued_at < $1`, before.UTC())
}

func (r *refreshTokensRepo) execRows(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
