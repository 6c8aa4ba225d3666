package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
	"github.com/aussiebroadwan/wgchat/internal/chat/store"
	"github.com/aussiebroadwan/wgchat/internal/chat/store/drivers/sqlite/gen"
)

type usersRepo struct {
	q *gen.Queries
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row, err := r.q.GetUserByUsername(ctx, username)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	created := u.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	err := r.q.CreateUser(ctx, gen.CreateUserParams{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: created.UTC(),
		UpdatedAt: created.UTC(),
	})
	return mapConstraint(err)
}

func (r *usersRepo) UpdatePasswordEnvelope(ctx context.Context, userID string, envelope []byte) error {
	n, err := r.q.UpdateUserPasswordEnvelope(ctx, gen.UpdateUserPasswordEnvelopeParams{
		PasswordEnvelope: envelope,
		UpdatedAt:        time.Now().UTC(),
		ID:               userID,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *usersRepo) DeleteAbandonedRegistrations(ctx context.Context, before time.Time) (int64, error) {
	return r.q.DeleteAbandonedRegistrations(ctx, before.UTC())
}
