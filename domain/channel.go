package domain

import "sort"

// DefaultChannel always exists, has no creator and cannot be deleted.
// Every claimed identity is a member of it.
const DefaultChannel = "General"

// Channel is the authoritative record for one named channel: its distinct
// member identities, its creator and its append-only message log.
// A Channel is not safe for concurrent use; the store serializes access.
type Channel struct {
	Name    string
	Creator string // empty for the default channel

	members  map[string]struct{}
	messages []Message
}

// NewChannel builds an empty channel. A non-empty creator becomes the sole
// initial member, mirroring explicit channel creation. Implicitly ensured
// channels pass an empty creator and start with no members.
func NewChannel(name, creator string) *Channel {
	c := &Channel{
		Name:    name,
		Creator: creator,
		members: make(map[string]struct{}),
	}
	if creator != "" {
		c.members[creator] = struct{}{}
	}
	return c
}

func (c *Channel) IsDefault() bool {
	return c.Name == DefaultChannel
}

// AddMember is an idempotent set insert.
func (c *Channel) AddMember(identity string) {
	c.members[identity] = struct{}{}
}

// RemoveMember is an idempotent set delete. Removing the last member does
// not delete the channel; only an explicit delete does.
func (c *Channel) RemoveMember(identity string) {
	delete(c.members, identity)
}

func (c *Channel) HasMember(identity string) bool {
	_, ok := c.members[identity]
	return ok
}

func (c *Channel) MemberCount() int {
	return len(c.members)
}

// Members returns the member identities in a stable order. Membership order
// carries no meaning, sorting just keeps broadcast payloads deterministic.
func (c *Channel) Members() []string {
	out := make([]string, 0, len(c.members))
	for identity := range c.members {
		out = append(out, identity)
	}
	sort.Strings(out)
	return out
}

// Append adds a message to the log. Insertion order is delivery order.
func (c *Channel) Append(message Message) {
	c.messages = append(c.messages, message)
}

func (c *Channel) MessageCount() int {
	return len(c.messages)
}

// History returns a copy of the full ordered log.
func (c *Channel) History() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}
