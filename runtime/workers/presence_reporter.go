package workers

import (
	"context"
	"log/slog"
	"time"
)

type onlineCounter interface {
	OnlineUsers() int
}

type roomCounter interface {
	RoomCount() int
}

// PresenceReporterWorker logs a presence snapshot at a fixed interval.
type PresenceReporterWorker struct {
	log      *slog.Logger
	sessions onlineCounter
	rooms    roomCounter
	interval time.Duration
}

func NewPresenceReporterWorker(log *slog.Logger, sessions onlineCounter, rooms roomCounter, interval time.Duration) *PresenceReporterWorker {
	return &PresenceReporterWorker{log: log, sessions: sessions, rooms: rooms, interval: interval}
}

// Run reports until context cancellation, with a last snapshot on the way out.
func (w *PresenceReporterWorker) Run(ctx context.Context) error {
	startTime := time.Now()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.report(startTime)
			return ctx.Err()
		case <-ticker.C:
			w.report(startTime)
		}
	}
}

func (w *PresenceReporterWorker) report(startTime time.Time) {
	w.log.Info("Presence",
		"uptime", time.Since(startTime).Round(time.Second).String(),
		"online_users", w.sessions.OnlineUsers(),
		"active_rooms", w.rooms.RoomCount())
}
