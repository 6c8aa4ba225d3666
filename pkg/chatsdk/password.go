package chatsdk

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password CheckPassword accepts.
const MinPasswordLength = 14

var (
	ErrPasswordTooShort = errors.New("password must be at least 14 characters")
	ErrPasswordNoUpper  = errors.New("password must contain an upper-case letter")
	ErrPasswordNoLower  = errors.New("password must contain a lower-case letter")
	ErrPasswordNoDigit  = errors.New("password must contain a digit")
)

// CheckPassword enforces the password policy. The server never sees the
// password, so this is the only place the policy can be applied.
func CheckPassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}

	switch {
	case !upper:
		return ErrPasswordNoUpper
	case !lower:
		return ErrPasswordNoLower
	case !digit:
		return ErrPasswordNoDigit
	}
	return nil
}
