package sink

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"chat-relay/domain/event"
	"chat-relay/errors"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestConnSink_Consume_Then_Drain(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	s := NewConnSink(log, 2, 50*time.Millisecond)

	evt := event.ChannelDeleted{Channel: "dev"}
	req.NoError(s.Consume(ctx, evt))

	select {
	case got := <-s.Events():
		req.Equal(evt, got)
	case <-time.After(100 * time.Millisecond):
		req.Fail("Event should be buffered for the write pump")
	}
}

func TestConnSink_Saturation_Drops_After_Timeout(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given a full buffer that nobody drains
	s := NewConnSink(log, 1, 20*time.Millisecond)
	req.NoError(s.Consume(ctx, event.ChannelDeleted{Channel: "one"}))

	// When one more event comes in
	err := s.Consume(ctx, event.ChannelDeleted{Channel: "two"})

	// Then it is dropped, not queued
	req.ErrorIs(err, errors.ErrSinkSaturated)
}

func TestConnSink_Closed_Sink_Refuses_Events(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	s := NewConnSink(log, 1, 20*time.Millisecond)

	s.Close()
	// Closing twice is safe
	s.Close()

	err := s.Consume(ctx, event.ChannelDeleted{Channel: "dev"})
	req.ErrorIs(err, errors.ErrSinkClosed)

	select {
	case <-s.Done():
		// Then the write pump is unblocked
	default:
		req.Fail("Done should be closed")
	}
}

func TestConnSink_Canceled_Context(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	s := NewConnSink(log, 1, time.Second)
	req.NoError(s.Consume(context.Background(), event.ChannelDeleted{Channel: "one"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Consume(ctx, event.ChannelDeleted{Channel: "two"})
	req.ErrorIs(err, context.Canceled)
}
