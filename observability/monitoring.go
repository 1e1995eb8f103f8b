// Package observability aggregates live counters about the chat core for
// the heartbeat worker and the debug endpoint. It never influences routing.
package observability

import (
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"
)

// MonitoringStats is a point-in-time snapshot for the debug UI and logs.
type MonitoringStats struct {
	ActiveConnections int64  `json:"active_connections"`
	MessagesRouted    uint64 `json:"messages_routed"`
	MessagesRejected  uint64 `json:"messages_rejected"`
	MessagesCensored  uint64 `json:"messages_censored"`
	EventsDelivered   uint64 `json:"events_delivered"`
	EventsDropped     uint64 `json:"events_dropped"`
	ChannelsCreated   uint64 `json:"channels_created"`
	ChannelsDeleted   uint64 `json:"channels_deleted"`

	AllocMemMb uint64    `json:"alloc_mem_mb"`
	NumGC      uint32    `json:"num_gc"`
	TakenAt    time.Time `json:"taken_at"`
}

// MonitoringManager collects real-time telemetry via atomic counters so the
// hot path never takes a lock to record a sample.
type MonitoringManager struct {
	log *slog.Logger

	activeConnections atomic.Int64
	messagesRouted    atomic.Uint64
	messagesRejected  atomic.Uint64
	messagesCensored  atomic.Uint64
	eventsDelivered   atomic.Uint64
	eventsDropped     atomic.Uint64
	channelsCreated   atomic.Uint64
	channelsDeleted   atomic.Uint64
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{log: log}
}

func (m *MonitoringManager) ConnectionOpened() { m.activeConnections.Add(1) }
func (m *MonitoringManager) ConnectionClosed() { m.activeConnections.Add(-1) }
func (m *MonitoringManager) MessageRouted()    { m.messagesRouted.Add(1) }
func (m *MonitoringManager) MessageRejected()  { m.messagesRejected.Add(1) }
func (m *MonitoringManager) MessageCensored()  { m.messagesCensored.Add(1) }
func (m *MonitoringManager) EventDelivered()   { m.eventsDelivered.Add(1) }
func (m *MonitoringManager) EventDropped()     { m.eventsDropped.Add(1) }
func (m *MonitoringManager) ChannelCreated()   { m.channelsCreated.Add(1) }
func (m *MonitoringManager) ChannelDeleted()   { m.channelsDeleted.Add(1) }

// GetLatest assembles a consistent-enough snapshot. Counters are read
// independently; a broadcast landing between two reads is acceptable for
// telemetry purposes.
func (m *MonitoringManager) GetLatest() MonitoringStats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return MonitoringStats{
		ActiveConnections: m.activeConnections.Load(),
		MessagesRouted:    m.messagesRouted.Load(),
		MessagesRejected:  m.messagesRejected.Load(),
		MessagesCensored:  m.messagesCensored.Load(),
		EventsDelivered:   m.eventsDelivered.Load(),
		EventsDropped:     m.eventsDropped.Load(),
		ChannelsCreated:   m.channelsCreated.Load(),
		ChannelsDeleted:   m.channelsDeleted.Load(),
		AllocMemMb:        mem.Alloc / 1024 / 1024,
		NumGC:             mem.NumGC,
		TakenAt:           time.Now().UTC(),
	}
}
