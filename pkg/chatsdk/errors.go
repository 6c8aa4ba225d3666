package chatsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/wgchat/pkg/httpx"
)

// Error codes used in the "error" field of every error response.
const (
	ErrorCodeInvalidRequest      = "invalid_request"
	ErrorCodeValidationFailed    = "validation_failed"
	ErrorCodeUnauthenticated     = "unauthenticated"
	ErrorCodeInvalidCredentials  = "invalid_credentials"
	ErrorCodeUsernameTaken       = "username_taken"
	ErrorCodeServerMisconfigured = "server_misconfigured"
	ErrorCodeStoreUnavailable    = "store_unavailable"
	ErrorCodeServerError         = "server_error"
	ErrorCodeUnavailable         = "service_unavailable"
	ErrorCodeRateLimited         = "rate_limit_exceeded"
)

// APIError is an error response from the service. The server writes these
// and the client parses them back, so both sides agree on the shape.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is one of the ErrorCode constants
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// Is matches on status and code so a parsed response compares equal to the
// predefined error of the same kind regardless of its description.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode && e.Code == t.Code
}

// WithDescription returns a copy of e with a different description.
func (e *APIError) WithDescription(description string) *APIError {
	cp := *e
	cp.Description = description
	return &cp
}

// WriteError writes e as a JSON error response.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteError(w, e.StatusCode, e.Code, e.Description)
}

var (
	// ErrInvalidRequest is returned for bodies that are not valid JSON or
	// carry fields that are not valid base64url.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed",
	}

	// ErrValidationFailed is returned when input is well formed but out of
	// range, such as an empty message body or a malformed username.
	ErrValidationFailed = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeValidationFailed,
		Description: "validation failed",
	}

	// ErrUnauthenticated is returned when the session cookies are missing,
	// expired or revoked. The response also clears both cookies.
	ErrUnauthenticated = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeUnauthenticated,
		Description: "authentication required",
	}

	// ErrInvalidCredentials covers every failed handshake: unknown user,
	// wrong password and bad or expired protocol tokens look the same.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid credentials",
	}

	ErrUsernameTaken = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeUsernameTaken,
		Description: "username is already taken",
	}

	// ErrServerMisconfigured is an operator error, usually a missing
	// OPAQUE_SERVER_SETUP.
	ErrServerMisconfigured = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerMisconfigured,
		Description: "the server is not configured for authentication",
	}

	// ErrStoreUnavailable is retryable. The server sends Retry-After with it.
	ErrStoreUnavailable = &APIError{
		StatusCode:  http.StatusServiceUnavailable,
		Code:        ErrorCodeStoreUnavailable,
		Description: "storage is temporarily unavailable",
	}

	// ErrServiceUnavailable is returned while the server shuts down.
	ErrServiceUnavailable = &APIError{
		StatusCode:  http.StatusServiceUnavailable,
		Code:        ErrorCodeUnavailable,
		Description: "the service is shutting down",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// parseErrorResponse turns a non-2xx response into an *APIError. Bodies
// that are not error JSON fall back to a generic error for the status.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
