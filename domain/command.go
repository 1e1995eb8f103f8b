package domain

// Command is an inbound client intent addressed to a channel.
type Command interface {
	ChannelName() string
}

type ClaimIdentityCommand struct {
	Identity string `validate:"required"`
}

// ChannelName Claiming an identity always targets the default channel.
func (c ClaimIdentityCommand) ChannelName() string { return DefaultChannel }

type JoinChannelCommand struct {
	Channel  string `validate:"required"`
	Identity string `validate:"required"`
}

func (c JoinChannelCommand) ChannelName() string { return c.Channel }

type CreateChannelCommand struct {
	Channel  string `validate:"required"`
	Identity string `validate:"required"`
}

func (c CreateChannelCommand) ChannelName() string { return c.Channel }

type DeleteChannelCommand struct {
	Channel  string `validate:"required"`
	Identity string `validate:"required"`
}

func (c DeleteChannelCommand) ChannelName() string { return c.Channel }

type PostMessageCommand struct {
	Channel string `validate:"required"`
	Author  string `validate:"required"`
	Content string `validate:"required"`
}

func (c PostMessageCommand) ChannelName() string { return c.Channel }

type InviteUserCommand struct {
	Channel string `validate:"required"`
	Target  string `validate:"required"`
}

func (c InviteUserCommand) ChannelName() string { return c.Channel }

type RemoveUserCommand struct {
	Channel   string `validate:"required"`
	Requester string `validate:"required"`
	Target    string `validate:"required"`
}

func (c RemoveUserCommand) ChannelName() string { return c.Channel }
