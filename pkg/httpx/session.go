package httpx

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/wgchat/pkg/slogx"
)

// SessionCheck is the result of verifying a cookie pair. AccessToken is set
// only when the verifier minted a replacement.
type SessionCheck struct {
	Identity
	AccessToken string
}

// SessionVerifier validates a refresh/access pair.
type SessionVerifier interface {
	VerifySession(ctx context.Context, refresh, access string) (SessionCheck, error)
}

// SessionVerifierFunc adapts a function to SessionVerifier.
type SessionVerifierFunc func(ctx context.Context, refresh, access string) (SessionCheck, error)

func (f SessionVerifierFunc) VerifySession(ctx context.Context, refresh, access string) (SessionCheck, error) {
	return f(ctx, refresh, access)
}

// SessionMiddleware authenticates requests from the session cookies. A
// silently refreshed access token is written back before the handler runs.
// Failures are handed to onError, which owns the response.
func SessionMiddleware(
	v SessionVerifier,
	cookies Cookies,
	onError func(http.ResponseWriter, *http.Request, error),
) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			refresh, access := cookies.Read(r)

			check, err := v.VerifySession(r.Context(), refresh, access)
			if err != nil {
				onError(w, r, err)
				return
			}

			if check.AccessToken != "" {
				cookies.SetAccess(w, check.AccessToken)
			}

			ctx := WithIdentity(r.Context(), check.Identity)
			ctx = slogx.WithUser(ctx, check.UserID, check.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
