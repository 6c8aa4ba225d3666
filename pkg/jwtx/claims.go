package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token type discriminators carried in the "type" claim.
const (
	TypeRegistration = "registration"
	TypeLogin        = "login"
	TypeAccess       = "access"
)

// Lifetimes of each token type, all measured from iat.
const (
	RegistrationWindow = 3 * time.Hour
	LoginWindow        = 10 * time.Minute
	AccessTokenTTL     = time.Hour
)

// Claims is the wire form shared by every token we mint. Which of the
// optional fields are populated depends on Type.
type Claims struct {
	jwt.RegisteredClaims

	// Type is one of TypeRegistration, TypeLogin or TypeAccess.
	Type string `json:"type"`

	// Username of the subject.
	Username string `json:"user,omitempty"`

	// Ref is the refresh credential an access token is bound to.
	Ref string `json:"ref,omitempty"`

	// State is the sealed server side of an in-flight login.
	State string `json:"state,omitempty"`
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

func numericTime(d *jwt.NumericDate) time.Time {
	if d == nil {
		return time.Time{}
	}
	return time.Unix(d.Unix(), 0).UTC()
}
