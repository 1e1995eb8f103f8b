//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"chat-relay/domain"
	"chat-relay/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is one connection's outbound event channel. Consume is
// best-effort: a saturated or closed sink returns an error and the event
// is simply skipped for that recipient.
type EventSink interface {
	Consume(ctx context.Context, e event.ServerEvent) error
}

// IRegistry tracks live connections and the identity each one claims.
// An identity may be claimed by several connections at once (multiple tabs);
// all of them are independent recipients for identity-targeted events.
type IRegistry interface {
	Register(connID string, sink EventSink)
	Claim(connID, identity string)
	Forget(connID string)
	IdentityOf(connID string) (string, bool)
	ConnectionsFor(identity string) []string
	SinkFor(connID string) (EventSink, bool)
	SinksFor(identity string) []EventSink
	AllSinks() []EventSink
}

// IStore is the single source of truth for channels, their members,
// creators and message logs. All mutations pass through it.
type IStore interface {
	Ensure(name string)
	Create(name, creator string) bool
	Delete(name, requester string) bool
	Exists(name string) bool
	AddMember(name, identity string)
	RemoveMember(name, identity string)
	HasMember(name, identity string) bool
	Members(name string) ([]string, bool)
	Creator(name string) (*string, bool)
	MemberChannels(identity string) []string
	VisibleChannels(identity string) []string
	Append(name string, message domain.Message) bool
	History(name string) []domain.Message
}

// ICoordinator drives membership transitions and their notifications.
type ICoordinator interface {
	Claim(ctx context.Context, connID, identity string)
	Join(ctx context.Context, cmd domain.JoinChannelCommand)
	Create(ctx context.Context, cmd domain.CreateChannelCommand)
	Delete(ctx context.Context, cmd domain.DeleteChannelCommand)
	Invite(ctx context.Context, cmd domain.InviteUserCommand)
	Remove(ctx context.Context, cmd domain.RemoveUserCommand)
	Disconnect(ctx context.Context, connID string)
	RequestUsers(ctx context.Context, connID, channel string)
}

// IRouter appends messages and serves history.
type IRouter interface {
	Send(ctx context.Context, cmd domain.PostMessageCommand)
	RequestHistory(ctx context.Context, connID, channel string)
}

// IDirectory filters known identities against a query and an exclusion channel.
type IDirectory interface {
	Search(query, excludeChannel string) []string
}
