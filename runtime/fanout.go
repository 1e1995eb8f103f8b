package runtime

import (
	"context"
	"log/slog"
	"time"

	"chat-relay/contract"
	"chat-relay/domain/event"
	"chat-relay/observability"
)

// Fanout delivers server events to addressed recipients: one connection,
// all connections of one identity, the broadcast group of a channel, or
// every live connection.
//
// Delivery is best-effort with no ordering, durability or retry guarantees.
// A recipient that is gone or saturated by the time of fan-out is skipped.
type Fanout struct {
	log         *slog.Logger
	registry    contract.IRegistry
	store       contract.IStore
	monitoring  *observability.MonitoringManager
	sinkTimeout time.Duration
}

func NewFanout(log *slog.Logger, registry contract.IRegistry, store contract.IStore,
	monitoring *observability.MonitoringManager, sinkTimeout time.Duration) *Fanout {
	return &Fanout{
		log:         log,
		registry:    registry,
		store:       store,
		monitoring:  monitoring,
		sinkTimeout: sinkTimeout,
	}
}

// ToConn targets a single connection, typically a direct reply.
func (f *Fanout) ToConn(ctx context.Context, connID string, evt event.ServerEvent) {
	if sink, ok := f.registry.SinkFor(connID); ok {
		f.deliver(ctx, []contract.EventSink{sink}, evt)
	}
}

// ToIdentity targets every live connection claiming the identity.
func (f *Fanout) ToIdentity(ctx context.Context, identity string, evt event.ServerEvent) {
	f.deliver(ctx, f.registry.SinksFor(identity), evt)
}

// ToChannel targets the channel's broadcast group: the connections of every
// identity in the channel's membership at this instant.
func (f *Fanout) ToChannel(ctx context.Context, channel string, evt event.ServerEvent) {
	members, ok := f.store.Members(channel)
	if !ok {
		return
	}
	var sinks []contract.EventSink
	for _, identity := range members {
		sinks = append(sinks, f.registry.SinksFor(identity)...)
	}
	f.deliver(ctx, sinks, evt)
}

// ToAll targets every live connection, claimed identity or not.
func (f *Fanout) ToAll(ctx context.Context, evt event.ServerEvent) {
	f.deliver(ctx, f.registry.AllSinks(), evt)
}

func (f *Fanout) deliver(ctx context.Context, sinks []contract.EventSink, evt event.ServerEvent) {
	for _, sink := range sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, f.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			f.monitoring.EventDropped()
			f.log.Debug("Recipient skipped during fanout", "event", evt.EventName(), "error", err)
		} else {
			f.monitoring.EventDelivered()
		}
		cancel()
	}
}
