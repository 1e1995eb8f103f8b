// Package ws realizes the event protocol over a websocket: JSON envelopes
// {"event": name, "payload": body}, one envelope per named event.
package ws

import (
	"encoding/json"

	"chat-relay/domain/event"
)

// Envelope is the wire frame in both directions.
type Envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// Inbound payload bodies. Field names follow the original protocol, where
// member-targeting payloads carry "username".
type channelUserPayload struct {
	Channel  string `json:"channel"`
	Username string `json:"username"`
}

type chatPayload struct {
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

type searchPayload struct {
	Query   string `json:"query"`
	Channel string `json:"channel"`
}

// decodeString accepts a bare JSON string payload ("General").
func decodeString(raw json.RawMessage) (string, error) {
	var s string
	err := json.Unmarshal(raw, &s)
	return s, err
}

// decodeSearch accepts both the bare-query form of the original protocol
// and the extended {"query": ..., "channel": ...} form that enables
// exclusion of the invite dialog's channel.
func decodeSearch(raw json.RawMessage) (searchPayload, error) {
	if query, err := decodeString(raw); err == nil {
		return searchPayload{Query: query}, nil
	}
	var p searchPayload
	err := json.Unmarshal(raw, &p)
	return p, err
}

// EncodeEvent frames an outbound server event. Events whose original wire
// shape is a bare value (a string or an array) keep that shape.
func EncodeEvent(evt event.ServerEvent) ([]byte, error) {
	var payload any
	switch e := evt.(type) {
	case event.ExistingChannels:
		payload = e.Channels
	case event.ChannelDeleted:
		payload = e.Channel
	case event.SearchResults:
		// No hit is an empty array on the wire, never null.
		if e.Users == nil {
			payload = []string{}
		} else {
			payload = e.Users
		}
	default:
		payload = evt
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: evt.EventName(), Payload: body})
}
