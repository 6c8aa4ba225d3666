package pake_test

import (
	"testing"

	"github.com/aussiebroadwan/wgchat/internal/chat/pake"
	"github.com/stretchr/testify/require"
)

func register(t *testing.T, srv pake.Server, credID, password string) []byte {
	t.Helper()

	reg, req, err := pake.StartRegistration([]byte(password))
	require.NoError(t, err)

	resp, err := srv.RegistrationResponse(credID, req)
	require.NoError(t, err)

	record, err := reg.Finish(resp)
	require.NoError(t, err)
	require.NoError(t, srv.CheckRecord(record))
	return record
}

func TestSetup_RoundTrip(t *testing.T) {
	s := pake.GenerateSetup()

	parsed, err := pake.ParseSetup(s.String())
	require.NoError(t, err)
	require.Equal(t, s, parsed)

	_, err = pake.ParseSetup("")
	require.ErrorIs(t, err, pake.ErrNotConfigured)

	_, err = pake.ParseSetup("v1.AAAA")
	require.ErrorIs(t, err, pake.ErrInvalidSetup)

	_, err = pake.ParseSetup("v2." + s.String()[3:])
	require.ErrorIs(t, err, pake.ErrInvalidSetup)
}

func TestRegisterThenLogin(t *testing.T) {
	srv := pake.NewServer(pake.GenerateSetup())
	record := register(t, srv, "user-1", "Passw0rd1234567")

	login, ke1, err := pake.StartLogin([]byte("Passw0rd1234567"))
	require.NoError(t, err)

	ke2, state, err := srv.StartLogin("user-1", record, ke1)
	require.NoError(t, err)
	require.NotEmpty(t, state)

	ke3, err := login.Finish(ke2)
	require.NoError(t, err)

	require.NoError(t, srv.FinishLogin(state, ke3))
}

func TestLogin_WrongPassword(t *testing.T) {
	srv := pake.NewServer(pake.GenerateSetup())
	record := register(t, srv, "user-1", "Passw0rd1234567")

	login, ke1, err := pake.StartLogin([]byte("Wrong0password99"))
	require.NoError(t, err)

	ke2, _, err := srv.StartLogin("user-1", record, ke1)
	require.NoError(t, err)

	_, err = login.Finish(ke2)
	require.ErrorIs(t, err, pake.ErrAuthentication)
}

func TestMalformedMessages(t *testing.T) {
	srv := pake.NewServer(pake.GenerateSetup())

	_, err := srv.RegistrationResponse("user-1", []byte("garbage"))
	require.ErrorIs(t, err, pake.ErrMalformed)

	require.ErrorIs(t, srv.CheckRecord([]byte("garbage")), pake.ErrMalformed)
}
