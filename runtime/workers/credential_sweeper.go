package workers

import (
	"candidate-notes/domain"
	"context"
	"log/slog"
	"time"
)

type credentialSweeper interface {
	SweepCredentials(now time.Time) []domain.UserID
}

// CredentialSweeperWorker periodically drops the bookkeeping of expired credentials.
// Live connections are not its business.
type CredentialSweeperWorker struct {
	log      *slog.Logger
	registry credentialSweeper
	interval time.Duration
	now      func() time.Time
}

func NewCredentialSweeperWorker(log *slog.Logger, registry credentialSweeper, interval time.Duration) *CredentialSweeperWorker {
	return &CredentialSweeperWorker{log: log, registry: registry, interval: interval, now: time.Now}
}

func (w *CredentialSweeperWorker) Run(ctx context.Context) error {
	w.log.Info("Starting credential sweeper", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if expired := w.registry.SweepCredentials(w.now()); len(expired) > 0 {
				w.log.Debug("Expired credentials swept", "count", len(expired))
			}
		}
	}
}
