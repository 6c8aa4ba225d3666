package service

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/aussiebroadwan/wgchat/internal/chat/bus"
	"github.com/aussiebroadwan/wgchat/internal/chat/store"
	"github.com/aussiebroadwan/wgchat/pkg/jwtx"
)

// HousekeepingService periodically removes garbage: refresh rows past
// their window, registrations that were never finished, idle bus channels,
// stale registry entries and consumed token ids. Nothing relies on it for
// correctness.
type HousekeepingService struct {
	Store         store.Store
	Bus           *bus.Bus
	Registry      *bus.Registry
	Guard         *TokenGuard
	Logger        *slog.Logger
	Interval      time.Duration
	RefreshWindow time.Duration
	Now           func() time.Time

	started atomic.Bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewHousekeepingService creates a housekeeping service. A non-positive
// interval defaults to 10 minutes.
func NewHousekeepingService(
	st store.Store,
	b *bus.Bus,
	reg *bus.Registry,
	guard *TokenGuard,
	logger *slog.Logger,
	interval time.Duration,
) *HousekeepingService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	return &HousekeepingService{
		Store:         st,
		Bus:           b,
		Registry:      reg,
		Guard:         guard,
		Logger:        logger,
		Interval:      interval,
		RefreshWindow: DefaultRefreshWindow,
		Now:           time.Now,
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
	}
}

// Start runs the worker in the background until Stop.
func (s *HousekeepingService) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until an in-progress cleanup has finished. It is a no-op if
// the service was never started.
func (s *HousekeepingService) Stop() {
	if !s.started.CompareAndSwap(true, false) {
		return
	}
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.Cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup runs one pass. Each step is independent of the others.
func (s *HousekeepingService) Cleanup(ctx context.Context) {
	now := s.Now().UTC()

	if n, err := s.Store.RefreshTokens().DeleteRefreshTokensIssuedBefore(ctx, now.Add(-s.RefreshWindow)); err != nil {
		s.Logger.Error("failed to delete expired refresh tokens", "error", err)
	} else if n > 0 {
		s.Logger.Debug("deleted expired refresh tokens", "count", n)
	}

	// A registration token cannot finish once its window is over, so the
	// reserved username can be released.
	if n, err := s.Store.Users().DeleteAbandonedRegistrations(ctx, now.Add(-jwtx.RegistrationWindow)); err != nil {
		s.Logger.Error("failed to delete abandoned registrations", "error", err)
	} else if n > 0 {
		s.Logger.Info("deleted abandoned registrations", "count", n)
	}

	channels := s.Bus.Sweep(now)
	users := s.Registry.Sweep(now, s.Bus.Active)
	tokens := s.Guard.Sweep(now)

	s.Logger.Debug("housekeeping cleanup completed",
		"idle_channels", channels,
		"stale_users", users,
		"expired_token_ids", tokens,
	)
}
