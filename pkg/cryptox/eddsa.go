package cryptox

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ErrEmptySecret is returned when a key derivation is asked to work from
// nothing.
var ErrEmptySecret = errors.New("cryptox: empty secret")

// GenerateEd25519Key generates a new Ed25519 private key and returns it PEM
// encoded (PKCS8).
func GenerateEd25519Key() ([]byte, error) {
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to generate Ed25519 key: %w", err)
	}
	return marshalEd25519(privateKey)
}

// DeriveEd25519Key deterministically derives an Ed25519 private key from a
// shared secret using HKDF-SHA256. The same secret and purpose always give
// the same key, so tokens keep verifying across restarts and replicas.
func DeriveEd25519Key(secret []byte, purpose string) ([]byte, error) {
	seed, err := DeriveKey(secret, purpose, ed25519.SeedSize)
	if err != nil {
		return nil, err
	}
	return marshalEd25519(ed25519.NewKeyFromSeed(seed))
}

// DeriveKey expands secret into size bytes of key material bound to purpose.
func DeriveKey(secret []byte, purpose string, size int) ([]byte, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	out := make([]byte, size)
	r := hkdf.New(sha256.New, secret, nil, []byte(purpose))
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, fmt.Errorf("cryptox: derive %q: %w", purpose, err)
	}
	return out, nil
}

func marshalEd25519(key ed25519.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to marshal PKCS8 key: %w", err)
	}

	return pem.EncodeToMemory(&pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: der,
	}), nil
}
