package runtime

import (
	"context"
	"log/slog"
	"sync"

	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/domain/event"
	"chat-relay/observability"
)

// Gate is the coarse process-wide mutation lock. Every inbound event is one
// atomic unit against the store and the registry; the coordinator and the
// router both serialize through the same Gate so that a join, an invite, a
// kick and a send on the same channel can never interleave into a torn
// member set. Channel counts are small, fine-grained locking is not worth it.
type Gate struct {
	sync.Mutex
}

func NewGate() *Gate {
	return &Gate{}
}

// Coordinator is the membership state machine. Per identity it moves
// between: no identity claimed, claimed with the default channel only, and
// claimed with exactly one extra joined channel. Every transition mutates
// the store and pushes the notifications that keep clients consistent.
type Coordinator struct {
	gate       *Gate
	log        *slog.Logger
	store      contract.IStore
	registry   contract.IRegistry
	fanout     *Fanout
	monitoring *observability.MonitoringManager
}

func NewCoordinator(gate *Gate, log *slog.Logger, store contract.IStore,
	registry contract.IRegistry, fanout *Fanout,
	monitoring *observability.MonitoringManager) *Coordinator {
	return &Coordinator{
		gate:       gate,
		log:        log,
		store:      store,
		registry:   registry,
		fanout:     fanout,
		monitoring: monitoring,
	}
}

// Claim binds an identity to a connection and makes it a member of the
// default channel. The connection receives its visible-channel list and the
// default channel's broadcast group gets the refreshed member list.
func (c *Coordinator) Claim(ctx context.Context, connID, identity string) {
	c.gate.Lock()
	defer c.gate.Unlock()

	c.registry.Claim(connID, identity)
	c.store.AddMember(domain.DefaultChannel, identity)

	c.fanout.ToConn(ctx, connID, event.ExistingChannels{
		Channels: c.store.VisibleChannels(identity),
	})
	c.broadcastUsers(ctx, domain.DefaultChannel)
}

// Join moves the identity into a channel, creating it on the fly when it
// does not exist yet. Any previously joined non-default channel is left
// first, with its member list broadcast, so the single-extra-channel
// invariant holds. Joining the default channel only leaves the previous
// channel; default membership is permanent once claimed.
func (c *Coordinator) Join(ctx context.Context, cmd domain.JoinChannelCommand) {
	c.gate.Lock()
	defer c.gate.Unlock()

	c.leaveOthers(ctx, cmd.Identity, cmd.Channel)

	if cmd.Channel != domain.DefaultChannel {
		c.store.Ensure(cmd.Channel)
		c.store.AddMember(cmd.Channel, cmd.Identity)
	}
	c.broadcastUsers(ctx, cmd.Channel)
}

// Create registers a brand new channel with the command's identity as
// creator and sole member. An existing name is a silent no-op: the protocol
// has no error reply, the client simply sees no "channel created" come back.
func (c *Coordinator) Create(ctx context.Context, cmd domain.CreateChannelCommand) {
	c.gate.Lock()
	defer c.gate.Unlock()

	if !c.store.Create(cmd.Channel, cmd.Identity) {
		c.log.Debug("Channel name already taken", "channel", cmd.Channel, "identity", cmd.Identity)
		return
	}
	c.monitoring.ChannelCreated()

	// The creator auto-joins, which implies leaving any previous channel.
	c.leaveOthers(ctx, cmd.Identity, cmd.Channel)

	c.fanout.ToIdentity(ctx, cmd.Identity, event.ChannelCreated{
		Channel: cmd.Channel,
		Owner:   cmd.Identity,
	})
	c.broadcastUsers(ctx, cmd.Channel)
}

// Delete removes a channel and its log. Creator-only, never the default
// channel. The deletion is made globally observable: every connection is
// told, members or not, since non-members' channel lists may reference it.
func (c *Coordinator) Delete(ctx context.Context, cmd domain.DeleteChannelCommand) {
	c.gate.Lock()
	defer c.gate.Unlock()

	if !c.store.Delete(cmd.Channel, cmd.Identity) {
		c.log.Debug("Channel deletion refused", "channel", cmd.Channel, "identity", cmd.Identity)
		return
	}
	c.monitoring.ChannelDeleted()
	c.fanout.ToAll(ctx, event.ChannelDeleted{Channel: cmd.Channel})
}

// Invite grants the target access to the channel without forcing a join
// transition: the target keeps whatever channel it currently occupies.
// Every connection of the target learns its refreshed channel list.
// The default channel takes no invites: its membership tracks claimed
// identities only, and the search universe is built on top of it.
func (c *Coordinator) Invite(ctx context.Context, cmd domain.InviteUserCommand) {
	c.gate.Lock()
	defer c.gate.Unlock()

	if cmd.Channel == domain.DefaultChannel {
		c.log.Debug("Invite refused on the default channel", "target", cmd.Target)
		return
	}
	if !c.store.Exists(cmd.Channel) {
		return
	}
	c.store.AddMember(cmd.Channel, cmd.Target)

	c.fanout.ToIdentity(ctx, cmd.Target, event.ExistingChannels{
		Channels: c.store.VisibleChannels(cmd.Target),
	})
	c.broadcastUsers(ctx, cmd.Channel)
}

// Remove kicks the target out of the channel. Only the creator may kick;
// the core enforces this on its own instead of trusting the client to hide
// the control. Each of the target's connections receives a refreshed
// channel list and the default channel's history as a landing place.
func (c *Coordinator) Remove(ctx context.Context, cmd domain.RemoveUserCommand) {
	c.gate.Lock()
	defer c.gate.Unlock()

	creator, ok := c.store.Creator(cmd.Channel)
	if !ok {
		return
	}
	if creator == nil || *creator != cmd.Requester {
		c.log.Debug("Kick refused, requester is not the creator",
			"channel", cmd.Channel, "requester", cmd.Requester, "target", cmd.Target)
		return
	}
	c.store.RemoveMember(cmd.Channel, cmd.Target)

	c.fanout.ToIdentity(ctx, cmd.Target, event.ExistingChannels{
		Channels: c.store.VisibleChannels(cmd.Target),
	})
	c.fanout.ToIdentity(ctx, cmd.Target, c.historyEvent(domain.DefaultChannel))
	c.broadcastUsers(ctx, cmd.Channel)
}

// Disconnect cleans up after a transport-level disconnect. Membership is
// shared by all connections claiming the identity, so it is removed only
// when the last of them goes away.
func (c *Coordinator) Disconnect(ctx context.Context, connID string) {
	c.gate.Lock()
	defer c.gate.Unlock()

	identity, claimed := c.registry.IdentityOf(connID)
	c.registry.Forget(connID)

	if !claimed || len(c.registry.ConnectionsFor(identity)) > 0 {
		return
	}
	for _, channel := range c.store.MemberChannels(identity) {
		c.store.RemoveMember(channel, identity)
		c.broadcastUsers(ctx, channel)
	}
}

// RequestUsers replies to one connection with a channel's current member
// list and creator. Unknown channels are a silent no-op.
func (c *Coordinator) RequestUsers(ctx context.Context, connID, channel string) {
	c.gate.Lock()
	defer c.gate.Unlock()

	if evt, ok := c.usersEvent(channel); ok {
		c.fanout.ToConn(ctx, connID, evt)
	}
}

// leaveOthers removes the identity from every non-default channel except
// target, broadcasting each affected member list. Callers hold the gate.
func (c *Coordinator) leaveOthers(ctx context.Context, identity, target string) {
	for _, channel := range c.store.MemberChannels(identity) {
		if channel == domain.DefaultChannel || channel == target {
			continue
		}
		c.store.RemoveMember(channel, identity)
		c.broadcastUsers(ctx, channel)
	}
}

func (c *Coordinator) broadcastUsers(ctx context.Context, channel string) {
	if evt, ok := c.usersEvent(channel); ok {
		c.fanout.ToChannel(ctx, channel, evt)
	}
}

func (c *Coordinator) usersEvent(channel string) (event.UsersUpdated, bool) {
	members, ok := c.store.Members(channel)
	if !ok {
		return event.UsersUpdated{}, false
	}
	creator, _ := c.store.Creator(channel)
	return event.UsersUpdated{Channel: channel, Users: members, Creator: creator}, true
}

func (c *Coordinator) historyEvent(channel string) event.ChannelMessages {
	return toChannelMessages(channel, c.store.History(channel))
}
