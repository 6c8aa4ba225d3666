package store

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement it and hand out sub-repositories so a transaction
// scoped Store can expose the same repos.
type Store interface {
	Users() Users
	RefreshTokens() RefreshTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when it returns nil.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername matches case-sensitively.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user with an empty envelope. A taken
	// username yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordEnvelope stores the registration record and bumps
	// updated_at.
	UpdatePasswordEnvelope(ctx context.Context, userID string, envelope []byte) error

	// DeleteAbandonedRegistrations removes users created before the cutoff
	// that never finished registering. Returns how many were removed.
	DeleteAbandonedRegistrations(ctx context.Context, before time.Time) (int64, error)
}

type RefreshTokens interface {
	CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error

	// GetRefreshTokenByID returns the row with its username joined in.
	GetRefreshTokenByID(ctx context.Context, id string) (domain.RefreshToken, error)

	// GetRefreshTokenByHash looks a row up by the fingerprint of its bearer value.
	GetRefreshTokenByHash(ctx context.Context, hash string) (domain.RefreshToken, error)

	// DeleteRefreshToken removes one row. Deleting a missing row is not an error.
	DeleteRefreshToken(ctx context.Context, id string) error

	// DeleteUserRefreshTokens removes every row belonging to a user.
	DeleteUserRefreshTokens(ctx context.Context, userID string) (int64, error)

	// DeleteRefreshTokensIssuedBefore is housekeeping for rows past the
	// refresh window.
	DeleteRefreshTokensIssuedBefore(ctx context.Context, before time.Time) (int64, error)
}
