package httpx_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/wgchat/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestChain_Order(t *testing.T) {
	var order []string
	tag := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), tag("first"), tag("second"))

	serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"first", "second", "handler"}, order)
}

var testCookies = httpx.Cookies{RefreshTTL: 7 * 24 * time.Hour, AccessTTL: time.Hour}

func withCookies(refresh, access string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/v1/chat/self", nil)
	if refresh != "" {
		req.AddCookie(&http.Cookie{Name: httpx.RefreshCookie, Value: refresh})
	}
	if access != "" {
		req.AddCookie(&http.Cookie{Name: httpx.AccessCookie, Value: access})
	}
	return req
}

func TestSessionMiddleware(t *testing.T) {
	errDenied := errors.New("denied")

	verifier := httpx.SessionVerifierFunc(func(_ context.Context, refresh, access string) (httpx.SessionCheck, error) {
		switch {
		case refresh != "r1":
			return httpx.SessionCheck{}, errDenied
		case access == "a1":
			return httpx.SessionCheck{Identity: httpx.Identity{UserID: "u1", Username: "alice"}}, nil
		default:
			return httpx.SessionCheck{Identity: httpx.Identity{UserID: "u1", Username: "alice"}, AccessToken: "a2"}, nil
		}
	})

	var got httpx.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.IdentityFromContext(r.Context())
		require.True(t, ok)
		got = id
		w.WriteHeader(http.StatusNoContent)
	})

	onError := func(w http.ResponseWriter, _ *http.Request, err error) {
		require.ErrorIs(t, err, errDenied)
		testCookies.Clear(w)
		w.WriteHeader(http.StatusUnauthorized)
	}

	h := httpx.SessionMiddleware(verifier, testCookies, onError)(next)

	t.Run("fast path leaves cookies alone", func(t *testing.T) {
		rec := serve(h, withCookies("r1", "a1"))
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, httpx.Identity{UserID: "u1", Username: "alice"}, got)
		require.Empty(t, rec.Result().Cookies())
	})

	t.Run("silent refresh rewrites the access cookie", func(t *testing.T) {
		rec := serve(h, withCookies("r1", "stale"))
		require.Equal(t, http.StatusNoContent, rec.Code)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		require.Equal(t, httpx.AccessCookie, cookies[0].Name)
		require.Equal(t, "a2", cookies[0].Value)
		require.Equal(t, 3600, cookies[0].MaxAge)
		require.True(t, cookies[0].HttpOnly)
		require.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	})

	t.Run("failure clears cookies", func(t *testing.T) {
		rec := serve(h, withCookies("nope", ""))
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		header := strings.Join(rec.Header().Values("Set-Cookie"), "\n")
		require.Contains(t, header, httpx.RefreshCookie+"=;")
		require.Contains(t, header, httpx.AccessCookie+"=;")
		require.Contains(t, header, "Max-Age=0")
	})
}

func TestCookies_SetSession(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.Cookies{Secure: true, RefreshTTL: 7 * 24 * time.Hour, AccessTTL: time.Hour}.SetSession(rec, "r", "a")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)
	require.Equal(t, httpx.RefreshCookie, cookies[0].Name)
	require.Equal(t, 7*24*3600, cookies[0].MaxAge)
	require.True(t, cookies[0].Secure)
	require.Equal(t, "/", cookies[0].Path)
}

func TestEventStream(t *testing.T) {
	rec := httptest.NewRecorder()
	s, err := httpx.NewEventStream(rec)
	require.NoError(t, err)

	require.NoError(t, s.Send("01ABC", map[string]string{"type": "self"}))
	require.NoError(t, s.Send("", map[string]string{"type": "reconnect"}))
	require.NoError(t, s.Heartbeat())

	require.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	require.Equal(t,
		"id: 01ABC\ndata: {\"type\":\"self\"}\n\n"+
			"data: {\"type\":\"reconnect\"}\n\n"+
			": ping\n\n",
		rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Username string `json:"username"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"ab"}`))
	require.NoError(t, httpx.DecodeJSON(req, &v))
	require.Equal(t, "ab", v.Username)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"unknown":1}`))
	require.Error(t, httpx.DecodeJSON(req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	require.Error(t, httpx.DecodeJSON(req, &v))
}
