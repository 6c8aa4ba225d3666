package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/wgchat/internal/chat/bus"
	"github.com/aussiebroadwan/wgchat/internal/chat/conversation"
	httpapi "github.com/aussiebroadwan/wgchat/internal/chat/http"
	"github.com/aussiebroadwan/wgchat/internal/chat/pake"
	"github.com/aussiebroadwan/wgchat/internal/chat/service"
	"github.com/aussiebroadwan/wgchat/internal/chat/store"
	"github.com/aussiebroadwan/wgchat/internal/chat/store/drivers/postgres"
	"github.com/aussiebroadwan/wgchat/internal/chat/store/drivers/sqlite"
	"github.com/aussiebroadwan/wgchat/pkg/cryptox"
	"github.com/aussiebroadwan/wgchat/pkg/httpx"
	"github.com/aussiebroadwan/wgchat/pkg/jwtx"
	"github.com/aussiebroadwan/wgchat/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application wires the chat service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db            store.Store
	keyManager    *jwtx.KeyManager
	sealer        *cryptox.Sealer
	pake          pake.Server
	registry      *bus.Registry
	bus           *bus.Bus
	conversations conversation.Store

	guard               *service.TokenGuard
	sessionService      *service.SessionService
	authService         *service.AuthService
	chatService         *service.ChatService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "wgchat",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	var err error
	app.keyManager, app.sealer, err = InitKeys(cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize keys: %w", err)
	}

	app.pake, err = InitPAKE(cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initChat(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the router, mostly for tests.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("chat service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"store", app.cfg.StoreDriver,
		"conversations", app.cfg.ConversationStore,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application. Event streams are told
// to reconnect and closed first; they would otherwise hold the HTTP
// shutdown open until the grace period runs out.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down chat service...")

	app.bus.Close()

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.conversations.Close(); err != nil {
		app.logger.Error("error closing conversation store", "error", err)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("chat service stopped")
	return nil
}

// initDatabase opens the configured credential store and applies migrations
func (app *Application) initDatabase() error {
	var (
		db  store.Store
		err error
	)

	switch app.cfg.StoreDriver {
	case "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		db, err = postgres.NewStore(ctx, app.cfg.DatabaseURL)
	default:
		host := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
		db, err = sqlite.NewStore(host)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.StoreDriver)
	return nil
}

// initChat builds the registry, the message bus and conversation storage
func (app *Application) initChat() error {
	switch app.cfg.ConversationStore {
	case "badger":
		bs, err := conversation.OpenBadgerStore(app.cfg.BadgerDir, app.logger)
		if err != nil {
			return fmt.Errorf("failed to open conversation store: %w", err)
		}
		app.conversations = bs
	default:
		app.conversations = conversation.NewMemoryStore()
	}

	app.registry = bus.NewRegistry(app.cfg.RegistryTTL)

	busCfg := bus.DefaultConfig()
	if app.cfg.EventReplaySize > 0 {
		busCfg.ReplaySize = app.cfg.EventReplaySize
	}
	if app.cfg.EventReplayWindow > 0 {
		busCfg.ReplayWindow = app.cfg.EventReplayWindow
	}
	if app.cfg.RegistryTTL > 0 {
		busCfg.IdleTTL = app.cfg.RegistryTTL
	}
	app.bus = bus.New(busCfg, app.registry, app.registry, app.logger)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	codec := jwtx.NewCodec(app.keyManager, app.cfg.Issuer)

	app.guard = service.NewTokenGuard()
	app.sessionService = service.NewSessionService(app.db, codec)

	app.authService = &service.AuthService{
		Store:    app.db,
		PAKE:     app.pake,
		Codec:    codec,
		Sealer:   app.sealer,
		Sessions: app.sessionService,
		Guard:    app.guard,
		Now:      time.Now,
	}

	app.chatService = &service.ChatService{
		Bus:           app.bus,
		Registry:      app.registry,
		Conversations: app.conversations,
		Now:           time.Now,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.bus,
		app.registry,
		app.guard,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	cookies := httpx.Cookies{
		Secure:     app.cfg.SecureCookies(),
		RefreshTTL: service.DefaultRefreshWindow,
		AccessTTL:  jwtx.AccessTokenTTL,
	}

	router := httpapi.NewRouter(
		app.keyManager.KeySet,
		BuildVersion,
		app.db,
		cookies,
		app.logger,
	)
	router.AuthService = app.authService
	router.SessionService = app.sessionService
	router.ChatService = app.chatService
	if app.cfg.EventHeartbeat > 0 {
		router.Heartbeat = app.cfg.EventHeartbeat
	}
	router.AllowOrigins(app.cfg.Origins()...)
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
