package e2e

import (
	"encoding/json"
	"fmt"
	"time"

	"chat-relay/ws"

	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
)

type BaseWsSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseWsSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.ServerURL == "" {
		s.T().Skip("CHAT_SERVER_URL not set, skipping end-to-end suite")
	}
}

// wsClient wraps one websocket session acting as a named chat user.
type wsClient struct {
	suite  *BaseWsSuite
	name   string
	conn   *websocket.Conn
	frames chan ws.Envelope
	closed chan struct{}
}

// Dial opens a websocket session with logging and a background read loop
func (s *BaseWsSuite) Dial(name string) *wsClient {
	header := fmt.Sprintf("  ====== %s connects ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	conn, _, err := websocket.DefaultDialer.Dial(s.Config.ServerURL, nil)
	s.Require().NoError(err, "Failed to connect to chat server at "+s.Config.ServerURL)

	c := &wsClient{
		suite:  s,
		name:   name,
		conn:   conn,
		frames: make(chan ws.Envelope, 64),
		closed: make(chan struct{}),
	}
	go c.readLoop()

	s.T().Cleanup(c.Close)
	return c
}

func (c *wsClient) readLoop() {
	defer close(c.frames)
	for {
		var env ws.Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			return
		}
		if c.suite.Config.DebugJSON {
			c.suite.T().Logf("[%s] <- %s %s", c.name, env.Event, string(env.Payload))
		}
		select {
		case c.frames <- env:
		case <-c.closed:
			return
		}
	}
}

// Emit frames and sends one client event
func (c *wsClient) Emit(event string, payload any) {
	body, err := json.Marshal(payload)
	c.suite.Require().NoError(err)

	env := ws.Envelope{Event: event, Payload: body}
	if c.suite.Config.DebugJSON {
		c.suite.T().Logf("[%s] -> %s %s", c.name, event, string(body))
	}
	c.suite.Require().NoError(c.conn.WriteJSON(env))
}

// WaitFor blocks until the named event arrives, failing on timeout.
// Events of other names received in the meantime are discarded.
func (c *wsClient) WaitFor(event string) json.RawMessage {
	deadline := time.After(c.suite.Config.Timeout)
	for {
		select {
		case env, ok := <-c.frames:
			if !ok {
				c.suite.Require().FailNowf("Connection closed", "[%s] closed while waiting for %q", c.name, event)
				return nil
			}
			if env.Event == event {
				return env.Payload
			}
		case <-deadline:
			c.suite.Require().FailNowf("Timeout", "[%s] never received %q within %v", c.name, event, c.suite.Config.Timeout)
			return nil
		}
	}
}

func (c *wsClient) Close() {
	select {
	case <-c.closed:
		return
	default:
	}
	close(c.closed)
	_ = c.conn.Close()
}
