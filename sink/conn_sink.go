// Package sink provides the per-connection event buffer between the core
// and a transport write pump.
package sink

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"chat-relay/domain/event"
	"chat-relay/errors"
)

// ConnSink decouples the core from one connection's write speed. Consume
// blocks at most for the delivery timeout; after that the event is dropped
// for this recipient, never queued, never retried.
type ConnSink struct {
	log       *slog.Logger
	events    chan event.ServerEvent
	done      chan struct{}
	closeOnce sync.Once
	timeout   time.Duration
}

func NewConnSink(log *slog.Logger, bufferSize int, timeout time.Duration) *ConnSink {
	return &ConnSink{
		log:     log,
		events:  make(chan event.ServerEvent, bufferSize),
		done:    make(chan struct{}),
		timeout: timeout,
	}
}

func (s *ConnSink) Consume(ctx context.Context, e event.ServerEvent) error {
	select {
	case <-s.done:
		return errors.ErrSinkClosed
	default:
	}

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case s.events <- e:
		return nil
	case <-s.done:
		return errors.ErrSinkClosed
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		s.log.Warn("Delivery timeout, event dropped", "event", e.EventName())
		return errors.ErrSinkSaturated
	}
}

// Events is drained by the connection's write pump.
func (s *ConnSink) Events() <-chan event.ServerEvent {
	return s.events
}

// Done is closed when the sink is shut down, unblocking the write pump.
func (s *ConnSink) Done() <-chan struct{} {
	return s.done
}

// Close marks the sink dead. Safe to call more than once; buffered events
// that were never drained are simply lost, as the protocol allows.
func (s *ConnSink) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}
