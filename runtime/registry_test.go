package runtime

import (
	"context"
	"sync"
	"testing"

	"chat-relay/domain/event"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// recordSink captures delivered events for assertions.
type recordSink struct {
	mu     sync.Mutex
	events []event.ServerEvent
}

func (s *recordSink) Consume(_ context.Context, e event.ServerEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recordSink) names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var names []string
	for _, e := range s.events {
		names = append(names, e.EventName())
	}
	return names
}

func (s *recordSink) byName(name string) []event.ServerEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []event.ServerEvent
	for _, e := range s.events {
		if e.EventName() == name {
			matched = append(matched, e)
		}
	}
	return matched
}

func TestRegistry_Claim_One_Identity_One_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connID := uuid.NewString()
	sink := &recordSink{}

	// Given a freshly accepted connection
	registry.Register(connID, sink)

	// When the connection claims an identity
	registry.Claim(connID, "alice")

	// Then
	identity, ok := registry.IdentityOf(connID)
	req.True(ok)
	req.Equal("alice", identity)

	req.Equal([]string{connID}, registry.ConnectionsFor("alice"))
	req.Len(registry.SinksFor("alice"), 1)
	req.Len(registry.AllSinks(), 1)
}

func TestRegistry_Claim_One_Identity_Multiple_Connections(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connID1 := uuid.NewString()
	connID2 := uuid.NewString()

	// Given the same user opening two tabs
	registry.Register(connID1, &recordSink{})
	registry.Register(connID2, &recordSink{})

	// When both connections claim the same identity
	registry.Claim(connID1, "alice")
	registry.Claim(connID2, "alice")

	// Then both are recipients for that identity
	req.Len(registry.ConnectionsFor("alice"), 2)
	req.Len(registry.SinksFor("alice"), 2)
	req.Len(registry.AllSinks(), 2)
}

func TestRegistry_Reclaim_Moves_Connection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connID := uuid.NewString()
	registry.Register(connID, &recordSink{})

	// Given a connection bound to an identity
	registry.Claim(connID, "alice")

	// When the same connection claims another identity
	registry.Claim(connID, "bob")

	// Then the previous binding is gone
	req.Empty(registry.ConnectionsFor("alice"))
	req.Empty(registry.SinksFor("alice"))

	identity, ok := registry.IdentityOf(connID)
	req.True(ok)
	req.Equal("bob", identity)
	req.Equal([]string{connID}, registry.ConnectionsFor("bob"))
}

func TestRegistry_Forget_Removes_Every_Trace(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connID := uuid.NewString()
	registry.Register(connID, &recordSink{})
	registry.Claim(connID, "alice")

	// When the connection goes away
	registry.Forget(connID)

	// Then nothing references it anymore
	_, ok := registry.IdentityOf(connID)
	req.False(ok)

	_, ok = registry.SinkFor(connID)
	req.False(ok)

	req.Empty(registry.ConnectionsFor("alice"))
	req.Empty(registry.AllSinks())

	// And forgetting twice stays harmless
	registry.Forget(connID)
}

func TestRegistry_Forget_Keeps_Other_Tabs(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	connID1 := uuid.NewString()
	connID2 := uuid.NewString()
	registry.Register(connID1, &recordSink{})
	registry.Register(connID2, &recordSink{})
	registry.Claim(connID1, "carol")
	registry.Claim(connID2, "carol")

	// When one of the two tabs disconnects
	registry.Forget(connID1)

	// Then the identity is still reachable through the other
	req.Equal([]string{connID2}, registry.ConnectionsFor("carol"))
	req.Len(registry.SinksFor("carol"), 1)
}
