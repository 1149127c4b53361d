package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"inkslot/internal/pkg/config"
	"inkslot/internal/usecase/commands"

	"go.uber.org/fx"
)

// Sweeper periodically cancels pending reservations whose deposit never
// arrived, releasing their slots.
type Sweeper struct {
	expiry   commands.ExpiryCommands
	interval time.Duration
	ttl      time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSweeper(expiry commands.ExpiryCommands, cfg config.Config) *Sweeper {
	return &Sweeper{
		expiry:   expiry,
		interval: cfg.Booking.SweepInterval,
		ttl:      cfg.Booking.PendingTTL,
	}
}

// Start runs the sweep loop until Stop. A non-positive interval disables it.
func (s *Sweeper) Start() {
	if s.interval <= 0 || s.ttl <= 0 {
		slog.Info("pending reservation sweeper disabled")
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.RunOnce(ctx)
			}
		}
	}()
	slog.Info("pending reservation sweeper started",
		"interval", s.interval.String(), "ttl", s.ttl.String())
}

func (s *Sweeper) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

func (s *Sweeper) RunOnce(ctx context.Context) int {
	n, err := s.expiry.ExpireStalePending(ctx, s.ttl)
	if err != nil {
		if ctx.Err() == nil {
			slog.ErrorContext(ctx, "pending reservation sweep failed", "error", err.Error())
		}
		return n
	}
	if n > 0 {
		slog.InfoContext(ctx, "expired stale pending reservations", "count", n)
	}
	return n
}

// RegisterSweeper ties the sweeper to the fx lifecycle.
func RegisterSweeper(lc fx.Lifecycle, s *Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			s.Stop()
			return nil
		},
	})
}
