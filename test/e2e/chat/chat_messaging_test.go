package chat_test

import (
	"testing"

	"github.com/aussiebroadwan/wgchat/pkg/chatsdk"
	"github.com/stretchr/testify/require"
)

// TestConversation runs a short exchange between two users with open event
// streams and checks both sides and the stored history agree.
func TestConversation(t *testing.T) {
	baseURL, cleanup := setupChatContainer(t)
	defer cleanup()
	ctx := t.Context()

	alice := registerUser(t, baseURL, "alice")
	bob := registerUser(t, baseURL, "bob")

	_, err := alice.SetRecipient(ctx, "bob")
	require.NoError(t, err)
	_, err = bob.SetRecipient(ctx, "alice")
	require.NoError(t, err)

	aliceEvents := openStream(t, alice, "alice", "")
	bobEvents := openStream(t, bob, "bob", "")

	id, err := alice.Send(ctx, "bob", "hey bob")
	require.NoError(t, err)

	msg := nextMessage(t, aliceEvents)
	require.Equal(t, id, msg.ID)
	msg = nextMessage(t, bobEvents)
	require.Equal(t, id, msg.ID)
	require.Equal(t, "alice", msg.From)
	require.Equal(t, "hey bob", msg.Body)

	_, err = bob.Send(ctx, "alice", "hi alice")
	require.NoError(t, err)

	msg = nextMessage(t, bobEvents)
	require.Equal(t, "hi alice", msg.Body)
	msg = nextMessage(t, aliceEvents)
	require.Equal(t, "bob", msg.From)
	require.Equal(t, "hi alice", msg.Body)

	history, err := alice.History(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, "hey bob", history[0].Body)
	require.Equal(t, "hi alice", history[1].Body)

	mirrored, err := bob.History(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, history, mirrored)
}

// TestResumeStream drops a stream, sends while disconnected, then resumes
// from the last seen event id.
func TestResumeStream(t *testing.T) {
	baseURL, cleanup := setupChatContainer(t)
	defer cleanup()
	ctx := t.Context()

	alice := registerUser(t, baseURL, "alice")
	registerUser(t, baseURL, "bob")

	first := openStream(t, alice, "alice", "")
	_, err := alice.Send(ctx, "bob", "one")
	require.NoError(t, err)
	cursor := nextMessage(t, first).ID
	require.NoError(t, first.Close())

	_, err = alice.Send(ctx, "bob", "two")
	require.NoError(t, err)
	_, err = alice.Send(ctx, "bob", "three")
	require.NoError(t, err)

	resumed := openStream(t, alice, "alice", cursor)
	require.Equal(t, "two", nextMessage(t, resumed).Body)
	require.Equal(t, "three", nextMessage(t, resumed).Body)
}

func TestChatRequiresSession(t *testing.T) {
	baseURL, cleanup := setupChatContainer(t)
	defer cleanup()
	ctx := t.Context()

	anonymous := chatsdk.NewClient(baseURL)

	_, err := anonymous.Self(ctx)
	require.ErrorIs(t, err, chatsdk.ErrUnauthenticated)

	_, err = anonymous.Send(ctx, "bob", "hi")
	require.ErrorIs(t, err, chatsdk.ErrUnauthenticated)

	_, err = anonymous.Subscribe(ctx, "")
	require.ErrorIs(t, err, chatsdk.ErrUnauthenticated)
}
