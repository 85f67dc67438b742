// Package worker hosts the background loops owned by the application
// lifecycle.
package worker

import (
	"context"
	"log/slog"
	"time"

	"gig-negotiation/internal/usecase/commands"
)

// Sweeper periodically force-expires overdue order requests. An interval of
// zero disables the loop; the HTTP trigger and the lazy expire-on-action path
// still apply.
type Sweeper struct {
	sweep    commands.SweeperCommands
	interval time.Duration
	logger   *slog.Logger

	stop chan struct{}
	done chan struct{}
}

func NewSweeper(sweep commands.SweeperCommands, interval time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		sweep:    sweep,
		interval: interval,
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (s *Sweeper) Start() {
	if s.interval <= 0 {
		s.logger.Info("expiry sweeper disabled")
		close(s.done)
		return
	}
	go s.run()
}

// Stop blocks until the loop has exited. A sweep in flight finishes first.
func (s *Sweeper) Stop() {
	select {
	case <-s.stop:
	default:
		close(s.stop)
	}
	<-s.done
}

func (s *Sweeper) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("expiry sweeper started", slog.Duration("interval", s.interval))
	for {
		select {
		case <-s.stop:
			s.logger.Info("expiry sweeper stopped")
			return
		case <-ticker.C:
			s.runOnce()
		}
	}
}

func (s *Sweeper) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()

	result, err := s.sweep.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("expiry sweep failed", slog.String("error", err.Error()))
		return
	}
	if result.Expired > 0 {
		s.logger.Info("expiry sweep completed",
			slog.Int("scanned", result.Scanned),
			slog.Int("expired", result.Expired),
		)
	}
}
