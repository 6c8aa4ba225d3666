package chatsdk_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/wgchat/pkg/chatsdk"
	"github.com/stretchr/testify/require"
)

func TestEventStream_Next(t *testing.T) {
	cursors := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cursors <- r.Header.Get("Last-Event-ID")
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = io.WriteString(w, "data: {\"type\":\"self\",\"self\":\"bob\"}\n\n")
		_, _ = io.WriteString(w, ": ping\n\n")
		_, _ = io.WriteString(w, "id: 01JA0Z7Q4K3V6R2M9B8N5C1D0E\n")
		_, _ = io.WriteString(w, "data: {\"type\":\"message\",\"self\":\"bob\",\"message\":{\"id\":\"m1\",\"from\":\"alice\",\"to\":\"bob\",\"body\":\"hi\",\"timestamp\":1}}\n\n")
		_, _ = io.WriteString(w, "data: {\"type\":\"reconnect\"}\n\n")
	}))
	defer srv.Close()

	c := chatsdk.NewClient(srv.URL)
	stream, err := c.Subscribe(context.Background(), "01JA0Z7Q4K3V6R2M9B8N5C1D0D")
	require.NoError(t, err)
	defer stream.Close()
	require.Equal(t, "01JA0Z7Q4K3V6R2M9B8N5C1D0D", <-cursors)

	ev, err := stream.Next()
	require.NoError(t, err)
	require.Equal(t, chatsdk.EventSelf, ev.Type)
	require.Equal(t, "bob", ev.Self)
	require.Empty(t, ev.ID)

	ev, err = stream.Next()
	require.NoError(t, err)
	require.Equal(t, chatsdk.EventMessage, ev.Type)
	require.Equal(t, "01JA0Z7Q4K3V6R2M9B8N5C1D0E", ev.ID)
	require.Equal(t, "hi", ev.Message.Body)

	_, err = stream.Next()
	require.ErrorIs(t, err, chatsdk.ErrReconnect)

	_, err = stream.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestSubscribe_ErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chatsdk.ErrUnauthenticated.WriteError(w)
	}))
	defer srv.Close()

	_, err := chatsdk.NewClient(srv.URL).Subscribe(context.Background(), "")
	require.ErrorIs(t, err, chatsdk.ErrUnauthenticated)
}
