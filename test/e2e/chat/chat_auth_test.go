package chat_test

import (
	"testing"

	"github.com/aussiebroadwan/wgchat/pkg/chatsdk"
	"github.com/aussiebroadwan/wgchat/pkg/httpx"
	"github.com/stretchr/testify/require"
)

// TestRegisterAndLogin registers on one client and logs in from another.
func TestRegisterAndLogin(t *testing.T) {
	baseURL, cleanup := setupChatContainer(t)
	defer cleanup()
	ctx := t.Context()

	registerUser(t, baseURL, "alice")

	client := chatsdk.NewClient(baseURL)
	sess, err := client.Login(ctx, "alice", testPassword)
	require.NoError(t, err)
	require.Equal(t, "alice", sess.Username)
	require.NotEmpty(t, client.Cookie(httpx.RefreshCookie))
	require.NotEmpty(t, client.Cookie(httpx.AccessCookie))

	self, err := client.Self(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice", self)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	baseURL, cleanup := setupChatContainer(t)
	defer cleanup()
	ctx := t.Context()

	registerUser(t, baseURL, "alice")

	_, err := chatsdk.NewClient(baseURL).Login(ctx, "alice", "Wr0ngPasswordEntirely")
	require.ErrorIs(t, err, chatsdk.ErrInvalidCredentials)

	_, err = chatsdk.NewClient(baseURL).Login(ctx, "mallory", testPassword)
	require.ErrorIs(t, err, chatsdk.ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	baseURL, cleanup := setupChatContainer(t)
	defer cleanup()
	ctx := t.Context()

	registerUser(t, baseURL, "alice")

	_, err := chatsdk.NewClient(baseURL).Register(ctx, "alice", "someone@example.com", testPassword)
	require.ErrorIs(t, err, chatsdk.ErrUsernameTaken)

	status, err := chatsdk.NewClient(baseURL).CheckUsername(ctx, "alice")
	require.NoError(t, err)
	require.True(t, status.Valid)
	require.False(t, status.Available)
}

func TestRefreshAndLogout(t *testing.T) {
	baseURL, cleanup := setupChatContainer(t)
	defer cleanup()
	ctx := t.Context()

	alice := registerUser(t, baseURL, "alice")

	refreshed, err := alice.Refresh(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.AccessToken)

	require.NoError(t, alice.Logout(ctx))

	_, err = alice.Self(ctx)
	require.ErrorIs(t, err, chatsdk.ErrUnauthenticated)

	_, err = alice.Refresh(ctx)
	require.ErrorIs(t, err, chatsdk.ErrUnauthenticated)
}

// TestRevokeAllSessions logs in on a second device and ends both sessions
// from the first.
func TestRevokeAllSessions(t *testing.T) {
	baseURL, cleanup := setupChatContainer(t)
	defer cleanup()
	ctx := t.Context()

	laptop := registerUser(t, baseURL, "alice")

	phone := chatsdk.NewClient(baseURL)
	_, err := phone.Login(ctx, "alice", testPassword)
	require.NoError(t, err)

	out, err := laptop.LogoutAll(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, out.Revoked)

	_, err = phone.Self(ctx)
	require.ErrorIs(t, err, chatsdk.ErrUnauthenticated)
}
