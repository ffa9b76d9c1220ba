package runtime

import (
	"candidate-notes/domain/event"
	"context"
	"log/slog"
	"sync"

	"github.com/mama165/sdk-go/logs"
)

// recordingSink keeps every event it is handed.
type recordingSink struct {
	mu     sync.Mutex
	events []event.Event
	err    error
}

func (s *recordingSink) Consume(ctx context.Context, e event.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) Events() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.Event(nil), s.events...)
}

type testEvent struct{ n int }

func (testEvent) Name() event.Name { return "test" }

func testLogger() *slog.Logger {
	return logs.GetLoggerFromLevel(slog.LevelDebug)
}
