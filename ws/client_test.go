package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"chat-relay/mocks"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"go.uber.org/mock/gomock"
)

func newConnection(t *testing.T) (*connection, *mocks.MockIChatService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockIChatService(ctrl)
	c := &connection{
		connID: uuid.NewString(),
		svc:    svc,
		log:    logs.GetLoggerFromLevel(slog.LevelDebug),
	}
	return c, svc
}

func envelope(t *testing.T, name, payload string) Envelope {
	t.Helper()
	return Envelope{Event: name, Payload: json.RawMessage(payload)}
}

func TestConnection_Dispatch_Routes_Every_Event(t *testing.T) {
	ctx := context.Background()
	c, svc := newConnection(t)

	svc.EXPECT().SetIdentity(ctx, c.connID, "alice")
	c.dispatch(ctx, envelope(t, "set identity", `"alice"`))

	svc.EXPECT().JoinChannel(ctx, c.connID, "dev", "alice")
	c.dispatch(ctx, envelope(t, "join channel", `{"channel":"dev","username":"alice"}`))

	svc.EXPECT().CreateChannel(ctx, c.connID, "ops", "alice")
	c.dispatch(ctx, envelope(t, "create channel", `{"channel":"ops","username":"alice"}`))

	svc.EXPECT().DeleteChannel(ctx, c.connID, "ops", "alice")
	c.dispatch(ctx, envelope(t, "delete channel", `{"channel":"ops","username":"alice"}`))

	svc.EXPECT().PostMessage(ctx, c.connID, "dev", "hello")
	c.dispatch(ctx, envelope(t, "chat message", `{"channel":"dev","text":"hello"}`))

	svc.EXPECT().GetMessages(ctx, c.connID, "dev")
	c.dispatch(ctx, envelope(t, "get channel messages", `"dev"`))

	svc.EXPECT().RequestUsers(ctx, c.connID, "dev")
	c.dispatch(ctx, envelope(t, "request users", `"dev"`))

	svc.EXPECT().SearchUsers(ctx, c.connID, "bo", "dev")
	c.dispatch(ctx, envelope(t, "search users", `{"query":"bo","channel":"dev"}`))

	svc.EXPECT().InviteUser(ctx, c.connID, "dev", "bob")
	c.dispatch(ctx, envelope(t, "invite user", `{"channel":"dev","username":"bob"}`))

	svc.EXPECT().RemoveUser(ctx, c.connID, "dev", "bob")
	c.dispatch(ctx, envelope(t, "remove user", `{"channel":"dev","username":"bob"}`))
}

func TestConnection_Dispatch_Skips_Bad_Input(t *testing.T) {
	ctx := context.Background()
	c, _ := newConnection(t)

	// An unknown event name or a malformed payload affects only that
	// envelope; no service call is made
	c.dispatch(ctx, envelope(t, "time travel", `"now"`))
	c.dispatch(ctx, envelope(t, "set identity", `{"oops":true}`))
	c.dispatch(ctx, envelope(t, "join channel", `42`))
	c.dispatch(ctx, envelope(t, "chat message", `"not an object"`))
}
