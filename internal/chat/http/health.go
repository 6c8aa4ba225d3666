package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/wgchat/internal/chat/pake"
	"github.com/aussiebroadwan/wgchat/internal/chat/store"
	"github.com/aussiebroadwan/wgchat/pkg/chatsdk"
	"github.com/aussiebroadwan/wgchat/pkg/httpx"
	"github.com/aussiebroadwan/wgchat/pkg/jwtx"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe. Always 200 while the process is serving.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	chatsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, chatsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe. Pings the credential store and checks that signing keys
//	@Description	and the OPAQUE server setup are loaded.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	chatsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	chatsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	keys *jwtx.KeySet,
	pakeServer pake.Server,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &chatsdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
			PAKE:     "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		degrade := func() {
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			degrade()
		}
		if !keys.IsReady() {
			checks.Signer = "error: no keys loaded"
			degrade()
		}
		if pakeServer == nil {
			checks.PAKE = "error: OPAQUE_SERVER_SETUP not configured"
			degrade()
		}

		httpx.WriteJSON(w, statusCode, chatsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

// JWKSHandler exposes the public keys that verify access tokens.
//
//	@Summary		Get JWKS
//	@Description	Returns the JSON Web Key Set used to verify access tokens.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	chatsdk.JWKSResponse	"The JSON Web Key Set"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, chatsdk.JWKSResponse(keys.PublicJWKS()))
	}
}
