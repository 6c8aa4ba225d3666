package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
	"github.com/aussiebroadwan/wgchat/internal/chat/store"
)

type usersRepo struct {
	db DBTX
}

const selectUser = `SELECT id, username, email, password_envelope, created_at, updated_at FROM users`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE id = $1`, id))
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE username = $1`, username))
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	created := u.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	created = created.UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, email, password_envelope, created_at, updated_at)
		 VALUES ($1, $2, $3, ''::bytea, $4, $5)`,
		u.ID, u.Username, u.Email, created, created)
	return mapConstraint(err)
}

func (r *usersRepo) UpdatePasswordEnvelope(ctx context.Context, userID string, envelope []byte) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_envelope = $1, updated_at = $2 WHERE id = $3`,
		envelope, time.Now().UTC(), userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) DeleteAbandonedRegistrations(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM users WHERE octet_length(password_envelope) = 0 AND created_at < $1`,
		before.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
