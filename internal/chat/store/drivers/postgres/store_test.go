package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
	"github.com/aussiebroadwan/wgchat/internal/chat/store"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewStoreFromDB(db), mock
}

var userColumns = []string{"id", "username", "email", "password_envelope", "created_at", "updated_at"}

func TestUsers_GetUserByUsername(t *testing.T) {
	st, mock := newMockStore(t)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`(?s)^SELECT id, username, email, password_envelope, created_at, updated_at FROM users WHERE username = \$1$`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("u-1", "alice", "alice@example.com", []byte("rec"), now, now))

	got, err := st.Users().GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, "u-1", got.ID)
	require.True(t, got.Registered())
	require.Equal(t, now, got.CreatedAt)
}

func TestUsers_GetUserByID_NotFound(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := st.Users().GetUserByID(context.Background(), "ghost")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_CreateUser_Duplicate(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectExec(`(?s)^INSERT INTO users`).
		WithArgs("u-1", "alice", "alice@example.com", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := st.Users().CreateUser(context.Background(), domain.User{ID: "u-1", Username: "alice", Email: "alice@example.com"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUsers_UpdatePasswordEnvelope(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectExec(`^UPDATE users SET password_envelope = \$1, updated_at = \$2 WHERE id = \$3$`).
		WithArgs([]byte("rec"), sqlmock.AnyArg(), "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`^UPDATE users`).
		WithArgs([]byte("rec"), sqlmock.AnyArg(), "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, st.Users().UpdatePasswordEnvelope(context.Background(), "u-1", []byte("rec")))
	err := st.Users().UpdatePasswordEnvelope(context.Background(), "ghost", []byte("rec"))
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsers_DeleteAbandonedRegistrations(t *testing.T) {
	st, mock := newMockStore(t)
	cutoff := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`octet_length\(password_envelope\) = 0 AND created_at < \$1`).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := st.Users().DeleteAbandonedRegistrations(context.Background(), cutoff)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)
}

func TestRefreshTokens_GetByHash(t *testing.T) {
	st, mock := newMockStore(t)
	issued := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`(?s)JOIN users u ON u.id = rt.user_id WHERE rt.token_hash = \$1$`).
		WithArgs("hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "token_hash", "user_id", "issued_at", "username"}).
			AddRow("rt-1", "hash", "u-1", issued, "alice"))

	got, err := st.RefreshTokens().GetRefreshTokenByHash(context.Background(), "hash")
	require.NoError(t, err)
	require.Equal(t, domain.RefreshToken{ID: "rt-1", TokenHash: "hash", UserID: "u-1", Username: "alice", IssuedAt: issued}, got)
}

func TestRefreshTokens_DeleteUserRefreshTokens(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectExec(`^DELETE FROM refresh_tokens WHERE user_id = \$1$`).
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := st.RefreshTokens().DeleteUserRefreshTokens(context.Background(), "u-1")
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}

func TestWithTx_RollbackOnError(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`^DELETE FROM refresh_tokens WHERE id = \$1$`).
		WithArgs("rt-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	boom := sql.ErrConnDone
	err := st.WithTx(context.Background(), func(tx store.Tx) error {
		require.NoError(t, tx.RefreshTokens().DeleteRefreshToken(context.Background(), "rt-1"))
		return boom
	})
	require.ErrorIs(t, err, boom)
}

func TestWithTx_Commit(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`^INSERT INTO refresh_tokens`).
		WithArgs("rt-1", "hash", "u-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := st.WithTx(context.Background(), func(tx store.Tx) error {
		return tx.RefreshTokens().CreateRefreshToken(context.Background(), domain.RefreshToken{
			ID: "rt-1", TokenHash: "hash", UserID: "u-1", IssuedAt: time.Now(),
		})
	})
	require.NoError(t, err)
}
