package search

import (
	"testing"

	"chat-relay/domain"
	"chat-relay/runtime"

	"github.com/stretchr/testify/require"
)

func newDirectory() (*Directory, *runtime.Store) {
	store := runtime.NewStore()
	for _, identity := range []string{"alice", "bob", "bobby", "carol"} {
		store.AddMember(domain.DefaultChannel, identity)
	}
	return NewDirectory(store), store
}

func TestDirectory_Search_Substring_Case_Insensitive(t *testing.T) {
	req := require.New(t)
	directory, _ := newDirectory()

	// When searching without any exclusion
	req.Equal([]string{"bob", "bobby"}, directory.Search("bob", ""))

	// Then casing does not matter
	req.Equal([]string{"bob", "bobby"}, directory.Search("BOB", ""))

	// And an empty query matches everyone
	req.Equal([]string{"alice", "bob", "bobby", "carol"}, directory.Search("", ""))

	// And no match is no result, not an error
	req.Empty(directory.Search("zorro", ""))
}

func TestDirectory_Search_Excludes_Channel_Members(t *testing.T) {
	req := require.New(t)
	directory, store := newDirectory()
	store.Create("dev", "bob")

	// When searching candidates to invite into dev
	results := directory.Search("bob", "dev")

	// Then bob, already a member, is filtered out
	req.Equal([]string{"bobby"}, results)
}

func TestDirectory_Search_Unknown_Exclusion_Channel(t *testing.T) {
	req := require.New(t)
	directory, _ := newDirectory()

	// An unknown channel excludes nobody
	req.Equal([]string{"bob", "bobby"}, directory.Search("bob", "ghost"))
}
