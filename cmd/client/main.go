// Command client is a small terminal chat client, mostly useful for manual
// testing against a running server.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"chat-relay/domain/event"
	"chat-relay/ws"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Load configuration from environment variables.
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	stdin := bufio.NewScanner(os.Stdin)
	identity := config.Identity
	for identity == "" {
		fmt.Print("Pick a username: ")
		if !stdin.Scan() {
			return exitOK, nil
		}
		identity = strings.TrimSpace(stdin.Text())
	}

	// 2. Establish the websocket session.
	conn, _, err := websocket.DefaultDialer.Dial(config.ServerURL, nil)
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerURL, err)
	}
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()

	c := &client{conn: conn, identity: identity, channel: config.Channel}
	if err := c.emit("set identity", identity); err != nil {
		return exitRuntime, err
	}
	if config.Channel != "General" {
		if err := c.joinChannel(config.Channel); err != nil {
			return exitRuntime, err
		}
	}

	// 3. Render server events in the background.
	go c.receiveLoop()

	color.Green.Printf(">>> Connected to %s as %s (/help for commands)\n", config.ServerURL, identity)

	// 4. Input loop: plain lines are chat, slash lines are commands.
	for stdin.Scan() {
		line := strings.TrimSpace(stdin.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "/") {
			err = c.emit("chat message", map[string]string{"channel": c.channel, "text": line})
		} else if quit := c.command(line, &err); quit {
			return exitOK, nil
		}
		if err != nil {
			return exitRuntime, fmt.Errorf("send failed: %w", err)
		}
	}
	return exitOK, nil
}

type client struct {
	conn     *websocket.Conn
	identity string
	channel  string
}

// command handles one slash command line. Returns true on /quit.
func (c *client) command(line string, err *error) bool {
	verb, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch verb {
	case "/quit":
		return true
	case "/join":
		*err = c.joinChannel(arg)
	case "/create":
		*err = c.emit("create channel", map[string]string{"channel": arg, "username": c.identity})
	case "/delete":
		*err = c.emit("delete channel", map[string]string{"channel": arg, "username": c.identity})
	case "/invite":
		*err = c.emit("invite user", map[string]string{"channel": c.channel, "username": arg})
	case "/kick":
		*err = c.emit("remove user", map[string]string{"channel": c.channel, "username": arg})
	case "/users":
		*err = c.emit("request users", c.channel)
	case "/search":
		*err = c.emit("search users", map[string]string{"query": arg, "channel": c.channel})
	case "/history":
		*err = c.emit("get channel messages", c.channel)
	case "/help":
		fmt.Println("/join <ch>  /create <ch>  /delete <ch>  /invite <user>  /kick <user>")
		fmt.Println("/users  /search <query>  /history  /quit")
	default:
		color.Red.Printf("Unknown command %s\n", verb)
	}
	return false
}

func (c *client) joinChannel(channel string) error {
	if err := c.emit("join channel", map[string]string{"channel": channel, "username": c.identity}); err != nil {
		return err
	}
	c.channel = channel
	if err := c.emit("get channel messages", channel); err != nil {
		return err
	}
	color.Yellow.Printf("--- now talking in %s ---\n", channel)
	return nil
}

func (c *client) emit(name string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.conn.WriteJSON(ws.Envelope{Event: name, Payload: body})
}

// receiveLoop renders every server event until the connection dies.
func (c *client) receiveLoop() {
	for {
		var env ws.Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			color.Red.Println("Connection lost")
			os.Exit(exitRuntime)
		}
		c.render(env)
	}
}

func (c *client) render(env ws.Envelope) {
	switch env.Event {
	case "chat message":
		var m event.MessagePosted
		if json.Unmarshal(env.Payload, &m) == nil && m.Channel == c.channel {
			printMessage(m.Timestamp, m.Author, m.Text)
		}
	case "channel messages":
		var h event.ChannelMessages
		if json.Unmarshal(env.Payload, &h) == nil && h.Channel == c.channel {
			color.Yellow.Printf("--- %s history (%d) ---\n", h.Channel, len(h.Messages))
			for _, m := range h.Messages {
				printMessage(m.Timestamp, m.Author, m.Text)
			}
		}
	case "update users":
		var u event.UsersUpdated
		if json.Unmarshal(env.Payload, &u) == nil {
			renderUsers(u)
		}
	case "existing channels":
		var channels []string
		if json.Unmarshal(env.Payload, &channels) == nil {
			color.Yellow.Printf("Your channels: %s\n", strings.Join(channels, ", "))
		}
	case "search results":
		var users []string
		if json.Unmarshal(env.Payload, &users) == nil {
			color.Yellow.Printf("Matches: %s\n", strings.Join(users, ", "))
		}
	case "channel created":
		var created event.ChannelCreated
		if json.Unmarshal(env.Payload, &created) == nil {
			c.channel = created.Channel
			color.Green.Printf("--- channel %s created, you own it ---\n", created.Channel)
		}
	case "channel deleted":
		var channel string
		if json.Unmarshal(env.Payload, &channel) == nil {
			color.Red.Printf("--- channel %s was deleted ---\n", channel)
			// Deleted under our feet: fall back to the default channel.
			if channel == c.channel {
				c.channel = "General"
				_ = c.emit("get channel messages", c.channel)
			}
		}
	}
}

func printMessage(at time.Time, author, text string) {
	color.Cyan.Printf("[%s] %s: ", at.Local().Format(time.TimeOnly), author)
	fmt.Println(text)
}

func renderUsers(u event.UsersUpdated) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Member", "Role"})
	for _, user := range u.Users {
		role := ""
		if u.Creator != nil && *u.Creator == user {
			role = "creator"
		}
		table.Append([]string{user, role})
	}
	table.Render()
}
