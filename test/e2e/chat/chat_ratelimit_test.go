package chat_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/aussiebroadwan/wgchat/pkg/chatsdk"
	"github.com/stretchr/testify/require"
)

// TestLoginRateLimit exhausts the strict profile for one username. The
// default allows five attempts a minute.
func TestLoginRateLimit(t *testing.T) {
	baseURL, cleanup := setupChatContainerWithDefaultRateLimits(t)
	defer cleanup()
	ctx := t.Context()

	client := chatsdk.NewClient(baseURL)

	var limited bool
	for i := range 10 {
		_, err := client.Login(ctx, "alice", testPassword)
		require.Error(t, err)

		var apiErr *chatsdk.APIError
		require.True(t, errors.As(err, &apiErr), "attempt %d: %v", i+1, err)
		if apiErr.StatusCode == http.StatusTooManyRequests {
			require.Equal(t, chatsdk.ErrorCodeRateLimited, apiErr.Code)
			limited = true
			break
		}
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	}

	require.True(t, limited, "login should be rate limited within 10 attempts")
}

// TestHealthNotRateLimited checks probes keep answering under the default
// limits.
func TestHealthNotRateLimited(t *testing.T) {
	baseURL, cleanup := setupChatContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := chatsdk.NewClient(baseURL)
	for range 50 {
		health, err := client.GetLiveness(t.Context())
		assertHealthy(t, health, err)
	}
}
