package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/wgchat/internal/chat/pake"
	"github.com/aussiebroadwan/wgchat/internal/chat/service"
	"github.com/aussiebroadwan/wgchat/internal/chat/store"
	"github.com/aussiebroadwan/wgchat/pkg/httpx"
	"github.com/aussiebroadwan/wgchat/pkg/jwtx"
	"github.com/aussiebroadwan/wgchat/pkg/slogx"

	_ "github.com/aussiebroadwan/wgchat/api/chat" // Swagger docs
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store
	cookies      httpx.Cookies
	errs         errorWriter

	AuthService    *service.AuthService
	SessionService *service.SessionService
	ChatService    *service.ChatService

	// Heartbeat is the interval of keep-alive comments on event streams.
	Heartbeat time.Duration
}

func NewRouter(
	keys *jwtx.KeySet,
	buildVersion string,
	st store.Store,
	cookies httpx.Cookies,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		cookies:      cookies,
		errs:         errorWriter{cookies: cookies},
		logger:       logger,
		Heartbeat:    25 * time.Second,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// AllowOrigins lets browsers on the given origins call the API with
// credentials. Without it cross-origin requests are refused.
func (r *Router) AllowOrigins(origins ...string) {
	if len(origins) == 0 {
		return
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut},
		AllowedHeaders:   []string{"Content-Type", "Last-Event-ID", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           600,
	})
	r.middlewares = append(r.middlewares, c.Handler)
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerChat()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			wgchat API
//	@version		0.1.0
//	@description	Two-party real-time chat. Passwords never reach the server: accounts are
//	@description	registered and logged into with OPAQUE, and sessions are carried in
//	@description	httpOnly cookies. Binary protocol messages are base64url encoded.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/wgchat
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	CookieAuth
//	@in							cookie
//	@name						accessToken
//	@description				Session cookies set by register/finish and login/finish.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// session authenticates from cookies, silently refreshing the access token.
func (r *Router) session() httpx.Middleware {
	return httpx.SessionMiddleware(r.SessionService, r.cookies, r.errs.write)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService:    r.AuthService,
		SessionService: r.SessionService,
		cookies:        r.cookies,
		errorWriter:    r.errs,
	}

	// Handshake steps are limited per IP and per username so one client
	// cannot grind a single account.
	r.Mux.Handle("POST /v1/auth/register/start",
		httpx.Chain(http.HandlerFunc(h.HandleRegisterStart),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)
	r.Mux.Handle("POST /v1/auth/register/finish",
		httpx.Chain(http.HandlerFunc(h.HandleRegisterFinish),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login/start",
		httpx.Chain(http.HandlerFunc(h.HandleLoginStart),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)
	r.Mux.Handle("POST /v1/auth/login/finish",
		httpx.Chain(http.HandlerFunc(h.HandleLoginFinish),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /v1/auth/username/{username}",
		httpx.Chain(http.HandlerFunc(h.HandleUsername),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("POST /v1/auth/refresh",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// Rate limiters run after the session middleware so RateLimitByUser
	// sees the identity.
	r.Mux.Handle("POST /v1/auth/sessions/revoke",
		httpx.Chain(http.HandlerFunc(h.HandleRevokeAll),
			r.session(),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerChat() {
	h := &ChatHandler{
		ChatService: r.ChatService,
		Heartbeat:   r.Heartbeat,
		errorWriter: r.errs,
	}

	secured := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn,
			r.session(),
			httpx.RateLimitByUser(httpx.LenientLimit),
		)
	}

	r.Mux.Handle("GET /v1/chat/self", secured(h.HandleSelf))
	r.Mux.Handle("GET /v1/chat/recipient", secured(h.HandleGetRecipient))
	r.Mux.Handle("PUT /v1/chat/recipient", secured(h.HandleSetRecipient))
	r.Mux.Handle("POST /v1/chat/messages", secured(h.HandleSend))
	r.Mux.Handle("GET /v1/chat/messages", secured(h.HandleHistory))
	r.Mux.Handle("GET /v1/chat/events", secured(h.HandleEvents))
}

func (r *Router) registerSystem() {
	var pakeServer pake.Server
	if r.AuthService != nil {
		pakeServer = r.AuthService.PAKE
	}

	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys, pakeServer),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
