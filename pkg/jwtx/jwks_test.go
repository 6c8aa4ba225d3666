package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJWK_PEM_Ed25519(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	jwk := NewEd25519JWK("kid-1", "sig", "EdDSA", pub)

	pemStr, err := jwk.PEM()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(pemStr, "-----BEGIN PUBLIC KEY-----"))

	block, _ := pem.Decode([]byte(pemStr))
	require.NotNil(t, block)

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	require.NoError(t, err)
	require.Equal(t, pub, parsed.(ed25519.PublicKey))
}

func TestJWK_RejectsOtherKeyTypes(t *testing.T) {
	_, err := JWK{Kty: "RSA"}.PublicKey()
	require.Error(t, err)

	_, err = JWK{Kty: "OKP", Crv: "X25519"}.PublicKey()
	require.Error(t, err)

	_, err = JWK{Kty: "OKP", Crv: "Ed25519", X: "AAAA"}.PublicKey()
	require.Error(t, err)
}

func TestKeySet_AddJWKIsIdempotent(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	ks := NewKeySet()
	require.False(t, ks.IsReady())

	jwk := NewEd25519JWK("kid-1", "sig", "EdDSA", pub)
	require.NoError(t, ks.AddJWK(jwk))
	require.NoError(t, ks.AddJWK(jwk))
	require.Len(t, ks.PublicJWKS().Keys, 1)
	require.True(t, ks.IsReady())

	_, err = ks.Get("missing")
	require.ErrorIs(t, err, ErrNoKey)
}

func TestFromClaims_UnknownType(t *testing.T) {
	c := Claims{Type: "refresh"}
	c.Subject = "u1"
	c.IssuedAt = jwtDate(time.Now())

	_, err := fromClaims(c)
	require.ErrorIs(t, err, ErrUnknownType)
}
