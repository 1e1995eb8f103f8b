package runtime

import (
	"context"
	"log/slog"
	"time"

	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/moderation"
	"chat-relay/observability"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Router appends messages to channel logs and fans them out to the
// channel's broadcast group. It shares the Gate with the Coordinator so a
// send can never observe a half-applied membership transition.
type Router struct {
	gate       *Gate
	log        *slog.Logger
	store      contract.IStore
	fanout     *Fanout
	moderator  moderation.Moderator
	monitoring *observability.MonitoringManager
	now        func() time.Time
}

func NewRouter(gate *Gate, log *slog.Logger, store contract.IStore, fanout *Fanout,
	moderator moderation.Moderator, monitoring *observability.MonitoringManager) *Router {
	return &Router{
		gate:       gate,
		log:        log,
		store:      store,
		fanout:     fanout,
		moderator:  moderator,
		monitoring: monitoring,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Send appends the message and broadcasts it to current members. It is a
// silent no-op unless the channel exists and the author is a member right
// now, which guards against sends to channels the author was removed from.
func (r *Router) Send(ctx context.Context, cmd domain.PostMessageCommand) {
	r.gate.Lock()
	defer r.gate.Unlock()

	if !r.store.Exists(cmd.Channel) || !r.store.HasMember(cmd.Channel, cmd.Author) {
		r.monitoring.MessageRejected()
		r.log.Debug("Message refused, author is not a member",
			"channel", cmd.Channel, "author", cmd.Author)
		return
	}

	content, censored := r.moderator.Censor(cmd.Content)
	if len(censored) > 0 {
		info := whatlanggo.Detect(cmd.Content)
		r.monitoring.MessageCensored()
		r.log.Warn("Censored words in message",
			"channel", cmd.Channel,
			"author", cmd.Author,
			"words", len(censored),
			"lang", info.Lang.Iso6391())
	}

	message := domain.Message{
		ID:        uuid.New(),
		Channel:   cmd.Channel,
		Author:    cmd.Author,
		Content:   content,
		CreatedAt: r.now(),
	}
	if !r.store.Append(cmd.Channel, message) {
		return
	}
	r.monitoring.MessageRouted()

	r.fanout.ToChannel(ctx, cmd.Channel, event.MessagePosted{
		Channel:   message.Channel,
		Text:      message.Content,
		Author:    message.Author,
		Timestamp: message.CreatedAt,
	})
}

// RequestHistory replies to the requesting connection with the full ordered
// log. An unknown channel yields no reply at all, not an empty one.
func (r *Router) RequestHistory(ctx context.Context, connID, channel string) {
	r.gate.Lock()
	defer r.gate.Unlock()

	if !r.store.Exists(channel) {
		return
	}
	r.fanout.ToConn(ctx, connID, toChannelMessages(channel, r.store.History(channel)))
}

func toChannelMessages(channel string, messages []domain.Message) event.ChannelMessages {
	return event.ChannelMessages{
		Channel: channel,
		Messages: lo.Map(messages, func(item domain.Message, _ int) event.MessageRecord {
			return event.MessageRecord{
				Text:      item.Content,
				Author:    item.Author,
				Timestamp: item.CreatedAt,
			}
		}),
	}
}
