package runtime

import (
	"testing"
	"time"

	"chat-relay/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestStore_Default_Channel_Always_Exists(t *testing.T) {
	req := require.New(t)
	store := NewStore()

	// Then the default channel is there from construction, ownerless
	req.True(store.Exists(domain.DefaultChannel))
	creator, ok := store.Creator(domain.DefaultChannel)
	req.True(ok)
	req.Nil(creator)

	// And nobody can delete it, whatever identity asks
	req.False(store.Delete(domain.DefaultChannel, "alice"))
	req.False(store.Delete(domain.DefaultChannel, ""))
	req.True(store.Exists(domain.DefaultChannel))
}

func TestStore_Create_Owner_Becomes_Sole_Member(t *testing.T) {
	req := require.New(t)
	store := NewStore()

	// When alice creates a channel
	req.True(store.Create("dev", "alice"))

	// Then she owns it and is its only member
	creator, ok := store.Creator("dev")
	req.True(ok)
	req.NotNil(creator)
	req.Equal("alice", *creator)

	members, ok := store.Members("dev")
	req.True(ok)
	req.Equal([]string{"alice"}, members)

	// And the name cannot be taken twice
	req.False(store.Create("dev", "bob"))
	creator, _ = store.Creator("dev")
	req.Equal("alice", *creator)
}

func TestStore_Delete_Is_Creator_Only(t *testing.T) {
	req := require.New(t)
	store := NewStore()
	store.Create("dev", "alice")

	// When someone else tries to delete
	req.False(store.Delete("dev", "bob"))
	req.True(store.Exists("dev"))

	// When the creator deletes
	req.True(store.Delete("dev", "alice"))
	req.False(store.Exists("dev"))

	// And a second delete reports failure
	req.False(store.Delete("dev", "alice"))
}

func TestStore_Ensure_Creates_Ownerless_Empty_Channel(t *testing.T) {
	req := require.New(t)
	store := NewStore()

	// When a join targets a channel that does not exist yet
	store.Ensure("games")

	// Then it exists with no creator and no members
	req.True(store.Exists("games"))
	creator, ok := store.Creator("games")
	req.True(ok)
	req.Nil(creator)
	members, ok := store.Members("games")
	req.True(ok)
	req.Empty(members)

	// And ensuring an existing channel changes nothing
	store.AddMember("games", "alice")
	store.Ensure("games")
	members, _ = store.Members("games")
	req.Equal([]string{"alice"}, members)
}

func TestStore_Membership(t *testing.T) {
	req := require.New(t)
	store := NewStore()
	store.Create("dev", "alice")

	store.AddMember("dev", "bob")
	req.True(store.HasMember("dev", "bob"))

	// Adding twice stays a single membership
	store.AddMember("dev", "bob")
	members, _ := store.Members("dev")
	req.Equal([]string{"alice", "bob"}, members)

	store.RemoveMember("dev", "bob")
	req.False(store.HasMember("dev", "bob"))

	// Mutations on absent channels are silent no-ops
	store.AddMember("ghost", "bob")
	req.False(store.HasMember("ghost", "bob"))
	_, ok := store.Members("ghost")
	req.False(ok)
}

func TestStore_VisibleChannels_Default_First_Then_Sorted(t *testing.T) {
	req := require.New(t)
	store := NewStore()
	store.AddMember(domain.DefaultChannel, "alice")
	store.Create("zebra", "alice")
	store.Create("ants", "alice")
	store.Create("private", "bob")

	// Then alice sees the default channel first, her channels sorted after,
	// and nothing she is not a member of
	req.Equal([]string{domain.DefaultChannel, "ants", "zebra"}, store.VisibleChannels("alice"))

	// And an identity with no membership still sees the default channel
	req.Equal([]string{domain.DefaultChannel}, store.VisibleChannels("nobody"))
}

func TestStore_MemberChannels(t *testing.T) {
	req := require.New(t)
	store := NewStore()
	store.AddMember(domain.DefaultChannel, "alice")
	store.Create("dev", "alice")

	req.Equal([]string{domain.DefaultChannel, "dev"}, store.MemberChannels("alice"))
	req.Empty(store.MemberChannels("nobody"))
}

func TestStore_Append_And_History(t *testing.T) {
	req := require.New(t)
	store := NewStore()
	store.Create("dev", "alice")

	first := domain.Message{ID: uuid.New(), Channel: "dev", Author: "alice", Content: "hello", CreatedAt: time.Now().UTC()}
	second := domain.Message{ID: uuid.New(), Channel: "dev", Author: "bob", Content: "hi", CreatedAt: time.Now().UTC()}

	req.True(store.Append("dev", first))
	req.True(store.Append("dev", second))

	// Then history preserves append order
	history := store.History("dev")
	req.Len(history, 2)
	req.Equal("hello", history[0].Content)
	req.Equal("hi", history[1].Content)

	// And appends to an absent channel are refused
	req.False(store.Append("ghost", first))
	req.Nil(store.History("ghost"))
}

func TestStore_Snapshot(t *testing.T) {
	req := require.New(t)
	store := NewStore()
	store.Create("dev", "alice")
	store.Append("dev", domain.Message{ID: uuid.New(), Channel: "dev", Author: "alice", Content: "hello", CreatedAt: time.Now().UTC()})

	summaries := store.Snapshot()
	req.Len(summaries, 2)
	req.Equal(domain.DefaultChannel, summaries[0].Name)
	req.Equal("dev", summaries[1].Name)
	req.Equal("alice", summaries[1].Creator)
	req.Equal(1, summaries[1].Members)
	req.Equal(1, summaries[1].Messages)
}
