package domain

import "time"

// User is a registered chat participant. PasswordEnvelope holds the OPAQUE
// registration record and stays empty until registration finishes.
type User struct {
	ID               string
	Username         string
	Email            string
	PasswordEnvelope []byte
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Registered reports whether the user finished registration.
func (u User) Registered() bool {
	return len(u.PasswordEnvelope) > 0
}
