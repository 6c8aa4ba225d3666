package chatsdk_test

import (
	"testing"

	"github.com/aussiebroadwan/wgchat/pkg/chatsdk"
	"github.com/stretchr/testify/require"
)

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     error
	}{
		{"valid", "Passw0rd1234567", nil},
		{"too short", "Passw0rd123", chatsdk.ErrPasswordTooShort},
		{"no upper", "passw0rd1234567", chatsdk.ErrPasswordNoUpper},
		{"no lower", "PASSW0RD1234567", chatsdk.ErrPasswordNoLower},
		{"no digit", "Passwordpassword", chatsdk.ErrPasswordNoDigit},
		{"counts runes not bytes", "Pässw0rdÄÖÜäöü", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := chatsdk.CheckPassword(tt.password)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecodeBytes_AcceptsPadding(t *testing.T) {
	raw := []byte{0xfb, 0xff, 0x01}
	enc := chatsdk.EncodeBytes(raw)
	require.NotContains(t, enc, "=")

	got, err := chatsdk.DecodeBytes(enc)
	require.NoError(t, err)
	require.Equal(t, raw, got)

	got, err = chatsdk.DecodeBytes(chatsdk.EncodeBytes([]byte{1, 2}) + "==")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2}, got)

	_, err = chatsdk.DecodeBytes("not base64!")
	require.Error(t, err)
}
