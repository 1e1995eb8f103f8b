package ws

import (
	"encoding/json"
	"testing"
	"time"

	"chat-relay/domain/event"

	"github.com/stretchr/testify/require"
)

func TestEncodeEvent_Bare_Payload_Shapes(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name    string
		evt     event.ServerEvent
		event   string
		payload string
	}{
		{
			name:    "Channel list keeps the bare array shape",
			evt:     event.ExistingChannels{Channels: []string{"General", "dev"}},
			event:   "existing channels",
			payload: `["General","dev"]`,
		},
		{
			name:    "Channel deletion keeps the bare string shape",
			evt:     event.ChannelDeleted{Channel: "dev"},
			event:   "channel deleted",
			payload: `"dev"`,
		},
		{
			name:    "Search results stay a bare array",
			evt:     event.SearchResults{Users: []string{"bob"}},
			event:   "search results",
			payload: `["bob"]`,
		},
		{
			name:    "No search hit is an empty array, never null",
			evt:     event.SearchResults{},
			event:   "search results",
			payload: `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := EncodeEvent(tt.evt)
			req.NoError(err)

			var env Envelope
			req.NoError(json.Unmarshal(frame, &env))
			req.Equal(tt.event, env.Event)
			req.JSONEq(tt.payload, string(env.Payload))
		})
	}
}

func TestEncodeEvent_Object_Payloads(t *testing.T) {
	req := require.New(t)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	frame, err := EncodeEvent(event.MessagePosted{
		Channel:   "dev",
		Text:      "hello",
		Author:    "alice",
		Timestamp: at,
	})
	req.NoError(err)

	var env Envelope
	req.NoError(json.Unmarshal(frame, &env))
	req.Equal("chat message", env.Event)

	var body map[string]any
	req.NoError(json.Unmarshal(env.Payload, &body))
	req.Equal("dev", body["channel"])
	req.Equal("hello", body["text"])
	req.Equal("alice", body["author"])
	req.Contains(body, "timestamp")
}

func TestEncodeEvent_UsersUpdated_Hides_Channel(t *testing.T) {
	req := require.New(t)

	// The member list payload never leaks the addressing channel; an
	// ownerless channel serializes a null creator.
	frame, err := EncodeEvent(event.UsersUpdated{
		Channel: "General",
		Users:   []string{"alice", "bob"},
	})
	req.NoError(err)

	var env Envelope
	req.NoError(json.Unmarshal(frame, &env))
	req.Equal("update users", env.Event)
	req.JSONEq(`{"users":["alice","bob"],"creator":null}`, string(env.Payload))
}

func TestDecodeSearch_Both_Forms(t *testing.T) {
	req := require.New(t)

	// The original bare-string form carries no exclusion channel
	p, err := decodeSearch(json.RawMessage(`"bo"`))
	req.NoError(err)
	req.Equal("bo", p.Query)
	req.Empty(p.Channel)

	// The extended object form carries one
	p, err = decodeSearch(json.RawMessage(`{"query":"bo","channel":"dev"}`))
	req.NoError(err)
	req.Equal("bo", p.Query)
	req.Equal("dev", p.Channel)

	_, err = decodeSearch(json.RawMessage(`42`))
	req.Error(err)
}

func TestDecodeString(t *testing.T) {
	req := require.New(t)

	s, err := decodeString(json.RawMessage(`"General"`))
	req.NoError(err)
	req.Equal("General", s)

	_, err = decodeString(json.RawMessage(`{"channel":"General"}`))
	req.Error(err)
}
