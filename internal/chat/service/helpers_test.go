package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/wgchat/internal/chat/bus"
	"github.com/aussiebroadwan/wgchat/internal/chat/conversation"
	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
	"github.com/aussiebroadwan/wgchat/internal/chat/pake"
	"github.com/aussiebroadwan/wgchat/internal/chat/store/drivers/sqlite"
	"github.com/aussiebroadwan/wgchat/pkg/cryptox"
	"github.com/aussiebroadwan/wgchat/pkg/jwtx"
	"github.com/aussiebroadwan/wgchat/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const testPassword = "Passw0rd1234567"

// clock is a settable time source shared by every component under test.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type harness struct {
	clock    *clock
	store    *sqlite.Store
	codec    *jwtx.Codec
	auth     *AuthService
	sessions *SessionService
	chat     *ChatService
	bus      *bus.Bus
	registry *bus.Registry
	guard    *TokenGuard
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{NumKeys: 1})
	require.NoError(t, err)

	clk := &clock{t: time.Now().UTC().Truncate(time.Second)}
	codec := jwtx.NewCodec(km, "wgchat-test")
	codec.Now = clk.Now

	sealer, err := cryptox.NewEphemeralSealer()
	require.NoError(t, err)

	sessions := NewSessionService(st, codec)
	sessions.Now = clk.Now

	guard := NewTokenGuard()

	reg := bus.NewRegistry(time.Hour)
	b := bus.New(bus.DefaultConfig(), reg, reg, slogx.Discard())
	t.Cleanup(b.Close)

	return &harness{
		clock:    clk,
		store:    st,
		codec:    codec,
		sessions: sessions,
		guard:    guard,
		bus:      b,
		registry: reg,
		auth: &AuthService{
			Store:    st,
			PAKE:     pake.NewServer(pake.GenerateSetup()),
			Codec:    codec,
			Sealer:   sealer,
			Sessions: sessions,
			Guard:    guard,
			Now:      clk.Now,
		},
		chat: &ChatService{
			Bus:           b,
			Registry:      reg,
			Conversations: conversation.NewMemoryStore(),
			Now:           clk.Now,
		},
	}
}

// register runs both registration steps the way a client would.
func (h *harness) register(t *testing.T, username, password string) domain.Session {
	t.Helper()
	ctx := context.Background()

	reg, req, err := pake.StartRegistration([]byte(password))
	require.NoError(t, err)

	start, err := h.auth.StartRegistration(ctx, RegistrationStartInput{
		Username: username,
		Email:    username + "@example.com",
		Request:  req,
	})
	require.NoError(t, err)

	record, err := reg.Finish(start.Response)
	require.NoError(t, err)

	sess, err := h.auth.FinishRegistration(ctx, start.Token, record)
	require.NoError(t, err)
	return sess
}

// login runs both login steps and returns the server's verdict.
func (h *harness) login(t *testing.T, username, password string) (domain.Session, error) {
	t.Helper()
	ctx := context.Background()

	login, ke1, err := pake.StartLogin([]byte(password))
	require.NoError(t, err)

	start, err := h.auth.StartLogin(ctx, LoginStartInput{Username: username, Request: ke1})
	if err != nil {
		return domain.Session{}, err
	}

	ke3, err := login.Finish(start.Response)
	if err != nil {
		// The client cannot open its envelope with a wrong password; it
		// would give up here. Send something that looks like a KE3 so the
		// server side is exercised too.
		ke3 = make([]byte, 64)
	}
	return h.auth.FinishLogin(ctx, start.Token, ke3)
}

func (h *harness) identity(sess domain.Session) bus.Identity {
	return bus.Identity{UserID: sess.UserID, Username: sess.Username}
}
