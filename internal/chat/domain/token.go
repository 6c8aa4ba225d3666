package domain

import "time"

// RefreshToken models the stored refresh credential. Only the fingerprint
// of the bearer value is kept.
type RefreshToken struct {
	ID        string
	TokenHash string // base64url SHA-256 of the bearer value
	UserID    string
	Username  string // joined from users on read
	IssuedAt  time.Time
}

// Session is what a successful login or registration hands back.
type Session struct {
	UserID          string
	Username        string
	RefreshToken    string
	AccessToken     string
	AccessExpiresAt time.Time
}
