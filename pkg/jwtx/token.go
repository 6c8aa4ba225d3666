package jwtx

import (
	"time"
)

// Token is one of RegistrationToken, LoginToken or AccessToken. Consumers
// switch on the concrete type.
type Token interface {
	token()
	claims(issuer string) Claims
}

// RegistrationToken carries a pending registration between start and finish.
type RegistrationToken struct {
	ID       string
	UserID   string
	Username string
	IssuedAt time.Time
}

// LoginToken carries the sealed server state between login start and finish.
type LoginToken struct {
	ID       string
	UserID   string
	Username string
	State    string
	IssuedAt time.Time
}

// AccessToken is the short lived session credential.
type AccessToken struct {
	ID        string
	UserID    string
	Username  string
	RefreshID string
	IssuedAt  time.Time
}

func (RegistrationToken) token() {}
func (LoginToken) token()        {}
func (AccessToken) token()       {}

// ExpiresAt is the end of the registration window.
func (t RegistrationToken) ExpiresAt() time.Time { return t.IssuedAt.Add(RegistrationWindow) }

// ExpiresAt is the end of the login window.
func (t LoginToken) ExpiresAt() time.Time { return t.IssuedAt.Add(LoginWindow) }

// ExpiresAt is when the access token stops being accepted.
func (t AccessToken) ExpiresAt() time.Time { return t.IssuedAt.Add(AccessTokenTTL) }

func registered(issuer, id, subject string, iat, exp time.Time) Claims {
	if id == "" {
		id = NewJTI()
	}
	c := Claims{}
	c.Issuer = issuer
	c.ID = id
	c.Subject = subject
	c.IssuedAt = jwtDate(iat)
	c.NotBefore = jwtDate(iat)
	c.ExpiresAt = jwtDate(exp)
	return c
}

func (t RegistrationToken) claims(issuer string) Claims {
	c := registered(issuer, t.ID, t.UserID, t.IssuedAt, t.ExpiresAt())
	c.Type = TypeRegistration
	c.Username = t.Username
	return c
}

func (t LoginToken) claims(issuer string) Claims {
	c := registered(issuer, t.ID, t.UserID, t.IssuedAt, t.ExpiresAt())
	c.Type = TypeLogin
	c.Username = t.Username
	c.State = t.State
	return c
}

func (t AccessToken) claims(issuer string) Claims {
	c := registered(issuer, t.ID, t.UserID, t.IssuedAt, t.ExpiresAt())
	c.Type = TypeAccess
	c.Username = t.Username
	c.Ref = t.RefreshID
	return c
}

// fromClaims rebuilds the typed token from verified claims.
func fromClaims(c Claims) (Token, error) {
	if c.Subject == "" || c.IssuedAt == nil {
		return nil, ErrInvalidClaim
	}
	iat := numericTime(c.IssuedAt)

	switch c.Type {
	case TypeRegistration:
		return RegistrationToken{ID: c.ID, UserID: c.Subject, Username: c.Username, IssuedAt: iat}, nil
	case TypeLogin:
		if c.State == "" {
			return nil, ErrInvalidClaim
		}
		return LoginToken{ID: c.ID, UserID: c.Subject, Username: c.Username, State: c.State, IssuedAt: iat}, nil
	case TypeAccess:
		if c.Ref == "" {
			return nil, ErrInvalidClaim
		}
		return AccessToken{ID: c.ID, UserID: c.Subject, Username: c.Username, RefreshID: c.Ref, IssuedAt: iat}, nil
	default:
		return nil, ErrUnknownType
	}
}
