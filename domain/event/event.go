// Package event defines the outbound events the core emits towards
// connected clients. Event names are the wire-level names of the protocol.
package event

import "time"

// ServerEvent is anything the core pushes to one or more connections.
type ServerEvent interface {
	EventName() string
}

// ExistingChannels carries the ordered visible-channel list of one identity.
type ExistingChannels struct {
	Channels []string
}

func (e ExistingChannels) EventName() string { return "existing channels" }

// ChannelCreated is sent to the creator's connections for local UI transition.
type ChannelCreated struct {
	Channel string `json:"channel"`
	Owner   string `json:"owner"`
}

func (e ChannelCreated) EventName() string { return "channel created" }

// ChannelDeleted goes to every connection, members or not, since any
// client's channel list may still reference the deleted name.
type ChannelDeleted struct {
	Channel string
}

func (e ChannelDeleted) EventName() string { return "channel deleted" }

// MessageRecord is the wire shape of one logged message.
type MessageRecord struct {
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

// ChannelMessages replies to a single connection with a channel's full log.
type ChannelMessages struct {
	Channel  string          `json:"channel"`
	Messages []MessageRecord `json:"messages"`
}

func (e ChannelMessages) EventName() string { return "channel messages" }

// MessagePosted fans a fresh message out to the channel's broadcast group.
type MessagePosted struct {
	Channel   string    `json:"channel"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

func (e MessagePosted) EventName() string { return "chat message" }

// UsersUpdated refreshes the member list of a channel. Creator is nil for
// the ownerless default channel. The channel name is routing information
// only and never serialized; clients apply it to their displayed channel.
type UsersUpdated struct {
	Channel string   `json:"-"`
	Users   []string `json:"users"`
	Creator *string  `json:"creator"`
}

func (e UsersUpdated) EventName() string { return "update users" }

// SearchResults replies to the requester of a directory search.
type SearchResults struct {
	Users []string
}

func (e SearchResults) EventName() string { return "search results" }
