// Package runtime hosts the process-wide chat core: connection registry,
// channel store, membership coordinator and message router. It contains no
// transport or presentation logic.
package runtime

import (
	"sync"

	"chat-relay/contract"
)

type Set map[string]struct{}

// Registry is the authoritative map of live connections. A connection is
// known from transport accept until transport disconnect; the identity it
// claims is attached later, by an explicit claim, and is never verified.
type Registry struct {
	mu          sync.RWMutex
	sinks       map[string]contract.EventSink // map connection id -> sink
	identities  map[string]string             // map connection id -> claimed identity
	connections map[string]Set                // map identity -> connection ids
}

func NewRegistry() *Registry {
	return &Registry{
		sinks:       make(map[string]contract.EventSink),
		identities:  make(map[string]string),
		connections: make(map[string]Set),
	}
}

// Register attaches the outbound sink of a freshly accepted connection.
func (r *Registry) Register(connID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sinks[connID] = sink
}

// Claim binds an identity to a connection. No uniqueness check: several
// connections may claim the same identity (one user, multiple tabs).
// Re-claiming moves the connection out of its previous identity's set.
func (r *Registry) Claim(connID, identity string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if previous, ok := r.identities[connID]; ok && previous != identity {
		r.detach(previous, connID)
	}
	r.identities[connID] = identity

	if _, ok := r.connections[identity]; !ok {
		r.connections[identity] = make(Set)
	}
	r.connections[identity][connID] = struct{}{}
}

// Forget removes every trace of a connection. Idempotent no-op on unknown ids.
func (r *Registry) Forget(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sinks, connID)
	if identity, ok := r.identities[connID]; ok {
		delete(r.identities, connID)
		r.detach(identity, connID)
	}
}

// detach removes a connection from an identity's set and never leaves an
// empty set behind. Callers hold the write lock.
func (r *Registry) detach(identity, connID string) {
	if conns, ok := r.connections[identity]; ok {
		delete(conns, connID)
		if len(conns) == 0 {
			delete(r.connections, identity)
		}
	}
}

func (r *Registry) IdentityOf(connID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	identity, ok := r.identities[connID]
	return identity, ok
}

// ConnectionsFor returns the ids of every live connection claiming identity.
func (r *Registry) ConnectionsFor(identity string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for connID := range r.connections[identity] {
		ids = append(ids, connID)
	}
	return ids
}

func (r *Registry) SinkFor(connID string) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sink, ok := r.sinks[connID]
	return sink, ok
}

// SinksFor resolves an identity to the sinks of all its live connections.
// Used to fan identity-targeted events (invite, kick) out to every tab.
func (r *Registry) SinksFor(identity string) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var activeSinks []contract.EventSink
	for connID := range r.connections[identity] {
		if sink, ok := r.sinks[connID]; ok {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}

// AllSinks returns the sinks of every live connection, claimed or not.
func (r *Registry) AllSinks() []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sinks := make([]contract.EventSink, 0, len(r.sinks))
	for _, sink := range r.sinks {
		sinks = append(sinks, sink)
	}
	return sinks
}
