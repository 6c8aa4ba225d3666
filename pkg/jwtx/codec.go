package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Codec signs typed tokens and turns verified JWTs back into them.
type Codec struct {
	keys     *KeyManager
	verifier *EdDSAVerifier
	issuer   string

	// Now is the clock used for expiry checks. Defaults to time.Now.
	Now func() time.Time
}

// NewCodec builds a Codec over the given key manager.
func NewCodec(km *KeyManager, issuer string) *Codec {
	c := &Codec{keys: km, issuer: issuer, Now: time.Now}
	c.verifier = NewVerifierEdDSA(km.KeySet, issuer)
	c.verifier.now = func() time.Time { return c.Now() }
	return c
}

// Encode signs t.
func (c *Codec) Encode(t Token) (string, error) {
	signer := c.keys.GetSigner()
	if signer == nil {
		return "", ErrNoKey
	}
	return signer.Sign(t.claims(c.issuer))
}

// Decode verifies the signature, issuer and lifetime of raw and returns the
// typed token.
func (c *Codec) Decode(raw string) (Token, error) {
	claims, err := c.verifier.Verify(raw)
	if err != nil {
		return nil, err
	}
	return fromClaims(*claims)
}

// Expect decodes raw and asserts its concrete type, so that a login token
// can never stand in for a registration token or vice versa.
func Expect[T Token](c *Codec, raw string) (T, error) {
	var zero T

	tok, err := c.Decode(raw)
	if err != nil {
		return zero, err
	}

	typed, ok := tok.(T)
	if !ok {
		return zero, fmt.Errorf("%w: got %T", ErrWrongType, tok)
	}
	return typed, nil
}

func jwtDate(t time.Time) *jwt.NumericDate {
	return jwt.NewNumericDate(t.UTC())
}

// IsExpired reports whether err came from an expired token.
func IsExpired(err error) bool {
	return errors.Is(err, ErrExpired)
}
