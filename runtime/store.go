package runtime

import (
	"sort"
	"sync"

	"chat-relay/domain"

	"github.com/samber/lo"
)

// Store owns every Channel and Message record in the process. It is the
// single source of truth; nothing outside this type mutates a channel.
// The default channel exists from construction and can never be removed.
type Store struct {
	mu       sync.RWMutex
	channels map[string]*domain.Channel
}

func NewStore() *Store {
	return &Store{
		channels: map[string]*domain.Channel{
			domain.DefaultChannel: domain.NewChannel(domain.DefaultChannel, ""),
		},
	}
}

// Ensure creates the channel with no creator and no members if absent.
// Used by the implicit create-on-join path. No-op when present.
func (s *Store) Ensure(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.channels[name]; !ok {
		s.channels[name] = domain.NewChannel(name, "")
	}
}

// Create registers a brand new channel owned by creator, who becomes its
// sole member. Returns false without mutation when the name is taken.
func (s *Store) Create(name, creator string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.channels[name]; ok {
		return false
	}
	s.channels[name] = domain.NewChannel(name, creator)
	return true
}

// Delete removes a channel and its log entirely. Only the creator may
// delete, and the default channel never goes away.
func (s *Store) Delete(name, requester string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	channel, ok := s.channels[name]
	if !ok || channel.IsDefault() || channel.Creator != requester {
		return false
	}
	delete(s.channels, name)
	return true
}

func (s *Store) Exists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.channels[name]
	return ok
}

func (s *Store) AddMember(name, identity string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if channel, ok := s.channels[name]; ok {
		channel.AddMember(identity)
	}
}

func (s *Store) RemoveMember(name, identity string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if channel, ok := s.channels[name]; ok {
		channel.RemoveMember(identity)
	}
}

func (s *Store) HasMember(name, identity string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	channel, ok := s.channels[name]
	return ok && channel.HasMember(identity)
}

// Members returns the member list of a channel, false when it is absent.
func (s *Store) Members(name string) ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	channel, ok := s.channels[name]
	if !ok {
		return nil, false
	}
	return channel.Members(), true
}

// Creator returns nil for the ownerless default channel and a pointer to
// the creator identity otherwise. The second value reports existence.
func (s *Store) Creator(name string) (*string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	channel, ok := s.channels[name]
	if !ok {
		return nil, false
	}
	if channel.Creator == "" {
		return nil, true
	}
	return lo.ToPtr(channel.Creator), true
}

// MemberChannels lists every channel the identity is currently a member of,
// default included. Used by disconnect cleanup and join transitions.
func (s *Store) MemberChannels(identity string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var names []string
	for name, channel := range s.channels {
		if channel.HasMember(identity) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// VisibleChannels is every channel where identity is a member, plus the
// default channel unconditionally. The default channel leads, the rest is
// sorted so that repeated pushes of the same set compare equal.
func (s *Store) VisibleChannels(identity string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := []string{domain.DefaultChannel}
	var rest []string
	for name, channel := range s.channels {
		if name != domain.DefaultChannel && channel.HasMember(identity) {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// Append adds a message to a channel log, false when the channel is absent.
func (s *Store) Append(name string, message domain.Message) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	channel, ok := s.channels[name]
	if !ok {
		return false
	}
	channel.Append(message)
	return true
}

// ChannelSummary is a read-only view of one channel for the debug endpoint.
type ChannelSummary struct {
	Name     string `json:"name"`
	Creator  string `json:"creator,omitempty"`
	Members  int    `json:"members"`
	Messages int    `json:"messages"`
}

// Snapshot lists every channel with its sizes, sorted by name.
func (s *Store) Snapshot() []ChannelSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summaries := make([]ChannelSummary, 0, len(s.channels))
	for _, channel := range s.channels {
		summaries = append(summaries, ChannelSummary{
			Name:     channel.Name,
			Creator:  channel.Creator,
			Members:  channel.MemberCount(),
			Messages: channel.MessageCount(),
		})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Name < summaries[j].Name })
	return summaries
}

// History returns the full ordered log, empty when the channel is absent.
func (s *Store) History(name string) []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	channel, ok := s.channels[name]
	if !ok {
		return nil
	}
	return channel.History()
}
