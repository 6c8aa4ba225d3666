package cryptox

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// ErrUnseal is returned for any sealed value that fails to decode or
// authenticate. The cause is deliberately not exposed.
var ErrUnseal = errors.New("cryptox: cannot open sealed value")

// Sealer encrypts short values with XChaCha20-Poly1305 so they can travel
// through untrusted hands (e.g. inside a signed token) and come back intact
// and unread.
//
// Output format, base64url: [24-byte nonce][ciphertext][16-byte tag]
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer builds a Sealer from a 32 byte key.
func NewSealer(key []byte) (*Sealer, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("cryptox: new sealer: %w", err)
	}
	return &Sealer{aead: aead}, nil
}

// NewEphemeralSealer builds a Sealer with a random key that only lives for
// the lifetime of the process.
func NewEphemeralSealer() (*Sealer, error) {
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("cryptox: ephemeral sealer key: %w", err)
	}
	return NewSealer(key)
}

// NewDerivedSealer builds a Sealer whose key is derived from secret.
func NewDerivedSealer(secret []byte, purpose string) (*Sealer, error) {
	key, err := DeriveKey(secret, purpose, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	return NewSealer(key)
}

// Seal encrypts plaintext. additionalData is authenticated but not
// encrypted; the same value must be passed to Open.
func (s *Sealer) Seal(plaintext, additionalData []byte) (string, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("cryptox: seal nonce: %w", err)
	}

	out := s.aead.Seal(nonce, nonce, plaintext, additionalData)
	return base64.RawURLEncoding.EncodeToString(out), nil
}

// Open reverses Seal.
func (s *Sealer) Open(sealed string, additionalData []byte) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return nil, ErrUnseal
	}

	ns := s.aead.NonceSize()
	if len(raw) < ns+s.aead.Overhead() {
		return nil, ErrUnseal
	}

	plaintext, err := s.aead.Open(nil, raw[:ns], raw[ns:], additionalData)
	if err != nil {
		return nil, ErrUnseal
	}
	return plaintext, nil
}
