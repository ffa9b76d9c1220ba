package sink

import (
	"candidate-notes/domain/event"
	"candidate-notes/errors"
	"context"
	"log/slog"
	"sync"
	"time"
)

// ConnectionSink buffers the events pushed to one live connection.
// The transport drains Events() and stops when Done() is closed.
//
// Consume and Close are mutually exclusive: once Close returns, no event
// is ever queued again, and an event is either fully queued or not at all.
type ConnectionSink struct {
	mu              sync.RWMutex
	log             *slog.Logger
	events          chan event.Event
	done            chan struct{}
	closed          bool
	deliveryTimeout time.Duration
}

func NewConnectionSink(log *slog.Logger, bufferSize int, deliveryTimeout time.Duration) *ConnectionSink {
	return &ConnectionSink{
		log:             log,
		events:          make(chan event.Event, bufferSize),
		done:            make(chan struct{}),
		deliveryTimeout: deliveryTimeout,
	}
}

// Consume queues the event, waiting at most deliveryTimeout for buffer space.
func (s *ConnectionSink) Consume(ctx context.Context, e event.Event) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return errors.ErrSinkClosed
	}

	select {
	case s.events <- e:
		return nil
	default:
	}

	timer := time.NewTimer(s.deliveryTimeout)
	defer timer.Stop()
	select {
	case s.events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		s.log.Warn("Connection buffer full, event dropped", "event", e.Name())
		return errors.ErrSinkTimeout
	}
}

func (s *ConnectionSink) Events() <-chan event.Event {
	return s.events
}

func (s *ConnectionSink) Done() <-chan struct{} {
	return s.done
}

// Close is idempotent.
func (s *ConnectionSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
}
