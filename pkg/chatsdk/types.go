package chatsdk

import (
	"encoding/base64"
	"strings"

	"github.com/aussiebroadwan/wgchat/pkg/jwtx"
)

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Error            string `json:"error" example:"validation_failed"`
	ErrorDescription string `json:"error_description,omitempty" example:"username: must be at least 2 characters"`
}

// EncodeBytes renders a protocol message for the wire as unpadded base64url.
func EncodeBytes(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeBytes reverses EncodeBytes. Padded input is accepted too.
func DecodeBytes(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}

// ============================================================================
// Authentication
// ============================================================================

// RegisterStartRequest opens a registration. RegistrationRequest is the
// client's first OPAQUE registration message.
type RegisterStartRequest struct {
	Username            string `json:"username" example:"alice"`
	Email               string `json:"email" example:"alice@example.com"`
	RegistrationRequest string `json:"registrationRequest" format:"base64url"`
}

// RegisterStartResponse carries the server's OPAQUE response and the signed
// token that must accompany the finish call.
type RegisterStartResponse struct {
	RegistrationResponse string `json:"registrationResponse" format:"base64url"`
	RegistrationToken    string `json:"registrationToken"`
}

type RegisterFinishRequest struct {
	RegistrationToken  string `json:"registrationToken"`
	RegistrationRecord string `json:"registrationRecord" format:"base64url"`
}

// LoginStartRequest carries the client's KE1.
type LoginStartRequest struct {
	Username     string `json:"username" example:"alice"`
	LoginRequest string `json:"loginRequest" format:"base64url"`
}

// LoginStartResponse carries the server's KE2 and the token that holds the
// sealed server state until the finish call.
type LoginStartResponse struct {
	LoginResponse string `json:"loginResponse" format:"base64url"`
	LoginToken    string `json:"loginToken"`
}

// LoginFinishRequest carries the client's KE3.
type LoginFinishRequest struct {
	LoginToken  string `json:"loginToken"`
	LoginFinish string `json:"finishLoginRequest" format:"base64url"`
}

// SessionResponse is returned once a handshake completes. The credentials
// themselves travel in the refreshToken and accessToken cookies.
type SessionResponse struct {
	UserID    string `json:"userId" example:"01JA0Z7Q4K3V6R2M9B8N5C1D0E"`
	Username  string `json:"username" example:"alice"`
	ExpiresAt int64  `json:"expiresAt"` // access token expiry, epoch milliseconds
}

// RefreshResponse is returned by POST /v1/auth/refresh.
type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   int64  `json:"expiresAt"`
}

// UsernameResponse reports whether a username could be registered.
type UsernameResponse struct {
	Username  string `json:"username" example:"alice"`
	Valid     bool   `json:"valid"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty" example:"is already taken"`
}

// ============================================================================
// Chat
// ============================================================================

// Message is a single chat line.
type Message struct {
	ID        string `json:"id" example:"01JA0Z7Q4K3V6R2M9B8N5C1D0E"`
	From      string `json:"from" example:"alice"`
	To        string `json:"to" example:"bob"`
	Body      string `json:"body" example:"hi"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
}

// Event types delivered on the event stream.
const (
	EventSelf      = "self"
	EventMessage   = "message"
	EventReconnect = "reconnect"
)

// Event is one frame of the event stream. ID is the SSE event id, used as
// the resumption cursor; it is empty for reconnect notices.
type Event struct {
	ID      string   `json:"-"`
	Type    string   `json:"type" example:"message"`
	Self    string   `json:"self,omitempty" example:"bob"`
	Message *Message `json:"message,omitempty"`
}

type SelfResponse struct {
	Self string `json:"self" example:"alice"`
}

// RecipientResponse names the conversation the caller has open. Recipient is
// null when none is set.
type RecipientResponse struct {
	Recipient *string `json:"recipient" example:"bob"`
}

type SetRecipientRequest struct {
	Recipient string `json:"recipient" example:"bob"`
}

type SendMessageRequest struct {
	To   string `json:"to" example:"bob"`
	Body string `json:"body" example:"hi"`
}

type SendMessageResponse struct {
	ID string `json:"id" example:"01JA0Z7Q4K3V6R2M9B8N5C1D0E"`
}

type HistoryResponse struct {
	Messages []Message `json:"messages"`
}

type RevokeAllResponse struct {
	Revoked int64 `json:"revoked"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz; only /readyz fills
// Checks.
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	Version string `json:"version,omitempty"`

	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks is the per-dependency status reported by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
	PAKE     string `json:"pake"`
}

// JWKSResponse contains the public keys that verify access tokens.
type JWKSResponse jwtx.JWKS
