package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/wgchat/internal/chat/domain"
	"github.com/aussiebroadwan/wgchat/internal/chat/pake"
	"github.com/aussiebroadwan/wgchat/internal/chat/store"
	"github.com/aussiebroadwan/wgchat/internal/chat/store/drivers/sqlite"
	"github.com/aussiebroadwan/wgchat/internal/chat/store/mocks"
	"github.com/aussiebroadwan/wgchat/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegisterThenLogin(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	reg := h.register(t, "alice", testPassword)

	user, err := h.store.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.True(t, user.Registered())
	require.Equal(t, user.ID, reg.UserID)

	sess, err := h.login(t, "alice", testPassword)
	require.NoError(t, err)

	tok, err := jwtx.Expect[jwtx.AccessToken](h.codec, sess.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, tok.UserID)
	require.Equal(t, "alice", tok.Username)
	require.NotEqual(t, reg.RefreshToken, sess.RefreshToken, "each login gets its own refresh row")
}

func TestLogin_WrongPasswordLooksLikeUnknownUser(t *testing.T) {
	h := newHarness(t)
	h.register(t, "alice", testPassword)

	_, wrongPassword := h.login(t, "alice", "Wr0ngPassword999")
	_, unknownUser := h.login(t, "mallory", testPassword)

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestLogin_UnfinishedRegistrationIsInvalidCredentials(t *testing.T) {
	h := newHarness(t)

	_, req, err := pake.StartRegistration([]byte(testPassword))
	require.NoError(t, err)
	_, err = h.auth.StartRegistration(context.Background(), RegistrationStartInput{
		Username: "alice", Email: "alice@example.com", Request: req,
	})
	require.NoError(t, err)

	_, err = h.login(t, "alice", testPassword)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_KE3FromAnotherAttemptFails(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.register(t, "alice", testPassword)

	attempt := func() (*pake.Login, LoginStartResult) {
		l, ke1, err := pake.StartLogin([]byte(testPassword))
		require.NoError(t, err)
		start, err := h.auth.StartLogin(ctx, LoginStartInput{Username: "alice", Request: ke1})
		require.NoError(t, err)
		return l, start
	}

	first, firstStart := attempt()
	_, secondStart := attempt()

	ke3, err := first.Finish(firstStart.Response)
	require.NoError(t, err)

	_, err = h.auth.FinishLogin(ctx, secondStart.Token, ke3)
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProtocolTokens_SingleUseAndTyped(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.register(t, "alice", testPassword)

	l, ke1, err := pake.StartLogin([]byte(testPassword))
	require.NoError(t, err)
	start, err := h.auth.StartLogin(ctx, LoginStartInput{Username: "alice", Request: ke1})
	require.NoError(t, err)
	ke3, err := l.Finish(start.Response)
	require.NoError(t, err)

	t.Run("login token cannot finish a registration", func(t *testing.T) {
		_, err := h.auth.FinishRegistration(ctx, start.Token, []byte("record"))
		require.ErrorIs(t, err, ErrInvalidProtocolToken)
	})

	t.Run("login token works once", func(t *testing.T) {
		_, err := h.auth.FinishLogin(ctx, start.Token, ke3)
		require.NoError(t, err)

		_, err = h.auth.FinishLogin(ctx, start.Token, ke3)
		require.ErrorIs(t, err, ErrInvalidProtocolToken)
	})

	t.Run("access token is not a protocol token", func(t *testing.T) {
		sess, err := h.login(t, "alice", testPassword)
		require.NoError(t, err)

		_, err = h.auth.FinishLogin(ctx, sess.AccessToken, ke3)
		require.ErrorIs(t, err, ErrInvalidProtocolToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := h.auth.FinishLogin(ctx, "not-a-jwt", ke3)
		require.ErrorIs(t, err, ErrInvalidProtocolToken)
	})
}

func TestFinishRegistration_Replay(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	reg, req, err := pake.StartRegistration([]byte(testPassword))
	require.NoError(t, err)
	start, err := h.auth.StartRegistration(ctx, RegistrationStartInput{
		Username: "alice", Email: "alice@example.com", Request: req,
	})
	require.NoError(t, err)
	record, err := reg.Finish(start.Response)
	require.NoError(t, err)

	_, err = h.auth.FinishRegistration(ctx, start.Token, record)
	require.NoError(t, err)

	_, err = h.auth.FinishRegistration(ctx, start.Token, record)
	require.ErrorIs(t, err, ErrInvalidProtocolToken)
}

func TestFinishRegistration_WindowExpired(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	reg, req, err := pake.StartRegistration([]byte(testPassword))
	require.NoError(t, err)
	start, err := h.auth.StartRegistration(ctx, RegistrationStartInput{
		Username: "alice", Email: "alice@example.com", Request: req,
	})
	require.NoError(t, err)
	record, err := reg.Finish(start.Response)
	require.NoError(t, err)

	h.clock.Advance(jwtx.RegistrationWindow + time.Minute)

	_, err = h.auth.FinishRegistration(ctx, start.Token, record)
	require.ErrorIs(t, err, ErrInvalidProtocolToken)
}

func TestFinishRegistration_MalformedRecord(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, req, err := pake.StartRegistration([]byte(testPassword))
	require.NoError(t, err)
	start, err := h.auth.StartRegistration(ctx, RegistrationStartInput{
		Username: "alice", Email: "alice@example.com", Request: req,
	})
	require.NoError(t, err)

	_, err = h.auth.FinishRegistration(ctx, start.Token, []byte("not a record"))
	require.ErrorIs(t, err, ErrValidation)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "registrationRecord", ve.Field)
}

func TestStartRegistration_UsernameTaken(t *testing.T) {
	h := newHarness(t)
	h.register(t, "alice", testPassword)

	_, req, err := pake.StartRegistration([]byte(testPassword))
	require.NoError(t, err)

	_, err = h.auth.StartRegistration(context.Background(), RegistrationStartInput{
		Username: "alice", Email: "other@example.com", Request: req,
	})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestStartRegistration_Misconfigured(t *testing.T) {
	h := newHarness(t)
	h.auth.PAKE = nil

	_, err := h.auth.StartRegistration(context.Background(), RegistrationStartInput{
		Username: "alice", Email: "alice@example.com", Request: []byte{1},
	})
	require.ErrorIs(t, err, ErrServerMisconfigured)

	_, err = h.store.Users().GetUserByUsername(context.Background(), "alice")
	require.ErrorIs(t, err, store.ErrNotFound, "nothing is reserved")
}

func TestStartRegistration_ValidatesBeforeStore(t *testing.T) {
	ctrl := gomock.NewController(t)

	// Given a store that fails the test on any call
	st := mocks.NewMockStore(ctrl)
	svc := &AuthService{Store: st, PAKE: pake.NewServer(pake.GenerateSetup()), Now: time.Now}

	cases := []RegistrationStartInput{
		{Username: "a", Email: "a@example.com", Request: []byte{1}},
		{Username: "has space", Email: "x@example.com", Request: []byte{1}},
		{Username: "thirty-three-characters-long-name", Email: "x@example.com", Request: []byte{1}},
		{Username: "alice", Email: "not-an-email", Request: []byte{1}},
		{Username: "alice", Email: "alice@example.com"},
	}
	for _, in := range cases {
		// When
		_, err := svc.StartRegistration(context.Background(), in)
		// Then
		require.ErrorIs(t, err, ErrValidation, "%+v", in)
	}
}

func TestStartRegistration_TwoCharacterUsernameReachesStore(t *testing.T) {
	ctrl := gomock.NewController(t)

	users := mocks.NewMockUsers(ctrl)
	st := mocks.NewMockStore(ctrl)
	st.EXPECT().Users().Return(users).AnyTimes()
	users.EXPECT().
		GetUserByUsername(gomock.Any(), "ab").
		Return(domain.User{ID: "existing", Username: "ab"}, nil)

	svc := &AuthService{Store: st, PAKE: pake.NewServer(pake.GenerateSetup()), Now: time.Now}

	_, err := svc.StartRegistration(context.Background(), RegistrationStartInput{
		Username: "ab", Email: "ab@example.com", Request: []byte{1},
	})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestStartLogin_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)

	users := mocks.NewMockUsers(ctrl)
	st := mocks.NewMockStore(ctrl)
	st.EXPECT().Users().Return(users).AnyTimes()
	users.EXPECT().
		GetUserByUsername(gomock.Any(), "alice").
		Return(domain.User{}, errors.New("disk on fire"))

	svc := &AuthService{Store: st, PAKE: pake.NewServer(pake.GenerateSetup()), Now: time.Now}

	_, err := svc.StartLogin(context.Background(), LoginStartInput{Username: "alice", Request: []byte{1}})
	require.ErrorIs(t, err, ErrStoreUnavailable)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestCheckUsername(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.register(t, "alice", testPassword)

	status, err := h.auth.CheckUsername(ctx, "ab")
	require.NoError(t, err)
	require.True(t, status.Valid)
	require.True(t, status.Available)

	status, err = h.auth.CheckUsername(ctx, "a")
	require.NoError(t, err)
	require.False(t, status.Valid)
	require.NotEmpty(t, status.Reason)

	status, err = h.auth.CheckUsername(ctx, "alice")
	require.NoError(t, err)
	require.True(t, status.Valid)
	require.False(t, status.Available)
}

// flakyStore fails refresh row inserts while failing is set, on the store
// itself and inside transactions.
type flakyStore struct {
	*sqlite.Store
	failing atomic.Bool
}

func (f *flakyStore) RefreshTokens() store.RefreshTokens {
	return f.wrap(f.Store.RefreshTokens())
}

func (f *flakyStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return f.Store.WithTx(ctx, func(tx store.Tx) error {
		return fn(&flakyTx{txStore: tx, parent: f})
	})
}

func (f *flakyStore) wrap(r store.RefreshTokens) store.RefreshTokens {
	if !f.failing.Load() {
		return r
	}
	return flakyRefreshTokens{RefreshTokens: r}
}

// txStore names the embedded store.Tx so its Tx method is still promoted.
type txStore = store.Tx

type flakyTx struct {
	txStore
	parent *flakyStore
}

func (t *flakyTx) RefreshTokens() store.RefreshTokens {
	return t.parent.wrap(t.txStore.RefreshTokens())
}

type flakyRefreshTokens struct{ store.RefreshTokens }

func (flakyRefreshTokens) CreateRefreshToken(context.Context, domain.RefreshToken) error {
	return errors.New("database is locked")
}

func TestFinishRegistration_StoreFailureRollsBackAndKeepsToken(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	flaky := &flakyStore{Store: h.store}
	h.auth.Store = flaky

	// Given a started registration
	reg, req, err := pake.StartRegistration([]byte(testPassword))
	require.NoError(t, err)
	start, err := h.auth.StartRegistration(ctx, RegistrationStartInput{
		Username: "alice", Email: "alice@example.com", Request: req,
	})
	require.NoError(t, err)
	record, err := reg.Finish(start.Response)
	require.NoError(t, err)

	// When the session insert fails
	flaky.failing.Store(true)
	_, err = h.auth.FinishRegistration(ctx, start.Token, record)
	require.ErrorIs(t, err, ErrStoreUnavailable)

	// Then the envelope write was rolled back with it
	user, err := h.store.Users().GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.False(t, user.Registered())

	// And the same token finishes once the store recovers
	flaky.failing.Store(false)
	sess, err := h.auth.FinishRegistration(ctx, start.Token, record)
	require.NoError(t, err)
	require.Equal(t, user.ID, sess.UserID)

	_, err = h.auth.FinishRegistration(ctx, start.Token, record)
	require.ErrorIs(t, err, ErrInvalidProtocolToken)

	_, err = h.login(t, "alice", testPassword)
	require.NoError(t, err)
}

func TestFinishLogin_StoreFailureKeepsToken(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.register(t, "alice", testPassword)

	flaky := &flakyStore{Store: h.store}
	h.sessions.Store = flaky

	login, ke1, err := pake.StartLogin([]byte(testPassword))
	require.NoError(t, err)
	start, err := h.auth.StartLogin(ctx, LoginStartInput{Username: "alice", Request: ke1})
	require.NoError(t, err)
	ke3, err := login.Finish(start.Response)
	require.NoError(t, err)

	flaky.failing.Store(true)
	_, err = h.auth.FinishLogin(ctx, start.Token, ke3)
	require.ErrorIs(t, err, ErrStoreUnavailable)

	flaky.failing.Store(false)
	sess, err := h.auth.FinishLogin(ctx, start.Token, ke3)
	require.NoError(t, err)
	require.Equal(t, "alice", sess.Username)

	_, err = h.auth.FinishLogin(ctx, start.Token, ke3)
	require.ErrorIs(t, err, ErrInvalidProtocolToken)
}

type brokenSealer struct{}

func (brokenSealer) Seal([]byte, []byte) (string, error) {
	return "", errors.New("entropy unavailable")
}

func (brokenSealer) Open(string, []byte) ([]byte, error) {
	return nil, errors.New("entropy unavailable")
}

func TestStartLogin_SealFailureIsMisconfiguration(t *testing.T) {
	h := newHarness(t)
	h.register(t, "alice", testPassword)
	h.auth.Sealer = brokenSealer{}

	_, ke1, err := pake.StartLogin([]byte(testPassword))
	require.NoError(t, err)

	_, err = h.auth.StartLogin(context.Background(), LoginStartInput{Username: "alice", Request: ke1})
	require.ErrorIs(t, err, ErrServerMisconfigured)
}
