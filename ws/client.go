package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"chat-relay/services"
	"chat-relay/sink"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// connection pumps one websocket session: inbound envelopes are dispatched
// to the chat service, outbound events are drained from the session's sink.
type connection struct {
	connID string
	conn   *websocket.Conn
	sink   *sink.ConnSink
	svc    services.IChatService
	log    *slog.Logger
}

// readPump decodes envelopes until the peer goes away, then triggers the
// disconnect transition. It owns the websocket read side.
func (c *connection) readPump(ctx context.Context) {
	defer func() {
		// The request context may already be canceled here; the disconnect
		// cleanup and its broadcasts must still go out.
		c.svc.Disconnect(context.WithoutCancel(ctx), c.connID)
		c.sink.Close()
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Debug("Connection closed abnormally", "conn_id", c.connID, "error", err)
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			c.log.Debug("Malformed envelope skipped", "conn_id", c.connID, "error", err)
			continue
		}
		c.dispatch(ctx, env)
	}
}

// dispatch routes one inbound envelope. A malformed payload or an unknown
// event name affects only this envelope, never the connection.
func (c *connection) dispatch(ctx context.Context, env Envelope) {
	switch env.Event {
	case "set identity":
		if identity, err := decodeString(env.Payload); err == nil {
			c.svc.SetIdentity(ctx, c.connID, identity)
		}
	case "join channel":
		var p channelUserPayload
		if err := json.Unmarshal(env.Payload, &p); err == nil {
			c.svc.JoinChannel(ctx, c.connID, p.Channel, p.Username)
		}
	case "create channel":
		var p channelUserPayload
		if err := json.Unmarshal(env.Payload, &p); err == nil {
			c.svc.CreateChannel(ctx, c.connID, p.Channel, p.Username)
		}
	case "delete channel":
		var p channelUserPayload
		if err := json.Unmarshal(env.Payload, &p); err == nil {
			c.svc.DeleteChannel(ctx, c.connID, p.Channel, p.Username)
		}
	case "chat message":
		var p chatPayload
		if err := json.Unmarshal(env.Payload, &p); err == nil {
			c.svc.PostMessage(ctx, c.connID, p.Channel, p.Text)
		}
	case "get channel messages":
		if channel, err := decodeString(env.Payload); err == nil {
			c.svc.GetMessages(ctx, c.connID, channel)
		}
	case "request users":
		if channel, err := decodeString(env.Payload); err == nil {
			c.svc.RequestUsers(ctx, c.connID, channel)
		}
	case "search users":
		if p, err := decodeSearch(env.Payload); err == nil {
			c.svc.SearchUsers(ctx, c.connID, p.Query, p.Channel)
		}
	case "invite user":
		var p channelUserPayload
		if err := json.Unmarshal(env.Payload, &p); err == nil {
			c.svc.InviteUser(ctx, c.connID, p.Channel, p.Username)
		}
	case "remove user":
		var p channelUserPayload
		if err := json.Unmarshal(env.Payload, &p); err == nil {
			c.svc.RemoveUser(ctx, c.connID, p.Channel, p.Username)
		}
	default:
		c.log.Debug("Unknown inbound event", "conn_id", c.connID, "event", env.Event)
	}
}

// writePump frames events from the sink onto the websocket and keeps the
// connection alive with pings. It owns the websocket write side.
func (c *connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.sink.Done():
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case evt := <-c.sink.Events():
			frame, err := EncodeEvent(evt)
			if err != nil {
				c.log.Error("Failed to encode outbound event",
					"conn_id", c.connID, "event", evt.EventName(), "error", err)
				continue
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
