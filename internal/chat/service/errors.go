package service

import (
	"errors"
	"fmt"
)

var (
	ErrUsernameTaken        = errors.New("username_taken")
	ErrInvalidCredentials   = errors.New("invalid_credentials")
	ErrServerMisconfigured  = errors.New("server_misconfigured")
	ErrInvalidProtocolToken = errors.New("invalid_protocol_token")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrStoreUnavailable     = errors.New("store_unavailable")
	ErrValidation           = errors.New("validation_failed")
)

// ValidationError describes bad input. Its message is safe to show to the
// caller as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// storeFailure wraps a driver error that is neither "not found" nor
// "already exists".
func storeFailure(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}

// classifyStoreError passes already classified errors through and treats
// anything else (a failed begin or commit) as a store failure.
func classifyStoreError(err error) error {
	if errors.Is(err, ErrStoreUnavailable) || errors.Is(err, ErrServerMisconfigured) {
		return err
	}
	return storeFailure(err)
}
