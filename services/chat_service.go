//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks

// Package services exposes the transport-facing façade of the chat core.
// It validates inbound payloads and translates them into coordinator and
// router calls; invalid or unauthorized requests die here, silently, as the
// protocol has no error-reply channel.
package services

import (
	"context"
	"log/slog"
	"strings"

	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/observability"

	"github.com/go-playground/validator/v10"
)

type IChatService interface {
	Connect(ctx context.Context, connID string, sink contract.EventSink)
	Disconnect(ctx context.Context, connID string)
	SetIdentity(ctx context.Context, connID, identity string)
	JoinChannel(ctx context.Context, connID, channel, identity string)
	CreateChannel(ctx context.Context, connID, channel, identity string)
	DeleteChannel(ctx context.Context, connID, channel, identity string)
	PostMessage(ctx context.Context, connID, channel, text string)
	GetMessages(ctx context.Context, connID, channel string)
	RequestUsers(ctx context.Context, connID, channel string)
	SearchUsers(ctx context.Context, connID, query, channel string)
	InviteUser(ctx context.Context, connID, channel, target string)
	RemoveUser(ctx context.Context, connID, channel, target string)
}

type ChatService struct {
	log         *slog.Logger
	registry    contract.IRegistry
	coordinator contract.ICoordinator
	router      contract.IRouter
	directory   contract.IDirectory
	fanout      Replier
	monitoring  *observability.MonitoringManager
	validate    *validator.Validate
}

// Replier is the slice of fanout the service needs for direct replies.
type Replier interface {
	ToConn(ctx context.Context, connID string, evt event.ServerEvent)
}

func NewChatService(log *slog.Logger, registry contract.IRegistry,
	coordinator contract.ICoordinator, router contract.IRouter,
	directory contract.IDirectory, fanout Replier,
	monitoring *observability.MonitoringManager) *ChatService {
	return &ChatService{
		log:         log,
		registry:    registry,
		coordinator: coordinator,
		router:      router,
		directory:   directory,
		fanout:      fanout,
		monitoring:  monitoring,
		validate:    validator.New(),
	}
}

// Connect registers a fresh connection and pushes the channel list it is
// allowed to see, which before any claim is the default channel alone.
func (s *ChatService) Connect(ctx context.Context, connID string, sink contract.EventSink) {
	s.registry.Register(connID, sink)
	s.monitoring.ConnectionOpened()

	s.fanout.ToConn(ctx, connID, event.ExistingChannels{
		Channels: []string{domain.DefaultChannel},
	})
}

func (s *ChatService) Disconnect(ctx context.Context, connID string) {
	s.coordinator.Disconnect(ctx, connID)
	s.monitoring.ConnectionClosed()
}

func (s *ChatService) SetIdentity(ctx context.Context, connID, identity string) {
	cmd := domain.ClaimIdentityCommand{Identity: strings.TrimSpace(identity)}
	if !s.valid(cmd) {
		return
	}
	s.coordinator.Claim(ctx, connID, cmd.Identity)
}

// JoinChannel also claims the payload identity when the connection has not
// claimed one yet, mirroring the original protocol where join re-asserts
// the username.
func (s *ChatService) JoinChannel(ctx context.Context, connID, channel, identity string) {
	cmd := domain.JoinChannelCommand{Channel: channel, Identity: strings.TrimSpace(identity)}
	if !s.valid(cmd) {
		return
	}
	s.claimIfNeeded(ctx, connID, cmd.Identity)
	s.coordinator.Join(ctx, cmd)
}

func (s *ChatService) CreateChannel(ctx context.Context, connID, channel, identity string) {
	cmd := domain.CreateChannelCommand{Channel: channel, Identity: strings.TrimSpace(identity)}
	if !s.valid(cmd) {
		return
	}
	s.claimIfNeeded(ctx, connID, cmd.Identity)
	s.coordinator.Create(ctx, cmd)
}

func (s *ChatService) DeleteChannel(ctx context.Context, connID, channel, identity string) {
	cmd := domain.DeleteChannelCommand{Channel: channel, Identity: strings.TrimSpace(identity)}
	if !s.valid(cmd) {
		return
	}
	s.coordinator.Delete(ctx, cmd)
}

// PostMessage attributes the message to the connection's bound identity,
// never to a client-supplied author field.
func (s *ChatService) PostMessage(ctx context.Context, connID, channel, text string) {
	author, ok := s.registry.IdentityOf(connID)
	if !ok {
		s.log.Debug("Message from unclaimed connection dropped", "conn_id", connID)
		return
	}
	cmd := domain.PostMessageCommand{
		Channel: channel,
		Author:  author,
		Content: strings.TrimSpace(text),
	}
	if !s.valid(cmd) {
		return
	}
	s.router.Send(ctx, cmd)
}

func (s *ChatService) GetMessages(ctx context.Context, connID, channel string) {
	if channel == "" {
		return
	}
	s.router.RequestHistory(ctx, connID, channel)
}

func (s *ChatService) RequestUsers(ctx context.Context, connID, channel string) {
	if channel == "" {
		return
	}
	s.coordinator.RequestUsers(ctx, connID, channel)
}

func (s *ChatService) SearchUsers(ctx context.Context, connID, query, channel string) {
	s.fanout.ToConn(ctx, connID, event.SearchResults{
		Users: s.directory.Search(query, channel),
	})
}

func (s *ChatService) InviteUser(ctx context.Context, connID, channel, target string) {
	cmd := domain.InviteUserCommand{Channel: channel, Target: strings.TrimSpace(target)}
	if !s.valid(cmd) {
		return
	}
	s.coordinator.Invite(ctx, cmd)
}

// RemoveUser authorizes with the requesting connection's bound identity;
// the coordinator then checks it against the channel creator.
func (s *ChatService) RemoveUser(ctx context.Context, connID, channel, target string) {
	requester, ok := s.registry.IdentityOf(connID)
	if !ok {
		return
	}
	cmd := domain.RemoveUserCommand{
		Channel:   channel,
		Requester: requester,
		Target:    strings.TrimSpace(target),
	}
	if !s.valid(cmd) {
		return
	}
	s.coordinator.Remove(ctx, cmd)
}

func (s *ChatService) claimIfNeeded(ctx context.Context, connID, identity string) {
	if bound, ok := s.registry.IdentityOf(connID); !ok || bound != identity {
		s.coordinator.Claim(ctx, connID, identity)
	}
}

func (s *ChatService) valid(cmd domain.Command) bool {
	if err := s.validate.Struct(cmd); err != nil {
		s.log.Debug("Invalid command rejected", "channel", cmd.ChannelName(), "error", err)
		return false
	}
	return true
}
