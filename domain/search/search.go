// Package search filters the known identities of the system against an
// invite-dialog query.
package search

import (
	"strings"

	"chat-relay/contract"
	"chat-relay/domain"
)

// Directory answers "who can still be invited here". The default channel is
// the only channel guaranteed to contain every known identity, so its
// membership is the search universe.
type Directory struct {
	store contract.IStore
}

func NewDirectory(store contract.IStore) *Directory {
	return &Directory{store: store}
}

// Search returns every known identity matching query as a case-insensitive
// substring, excluding identities already members of excludeChannel. An
// empty or unknown excludeChannel applies no exclusion. Result order beyond
// duplicate-freeness is unspecified.
func (d *Directory) Search(query, excludeChannel string) []string {
	known, ok := d.store.Members(domain.DefaultChannel)
	if !ok {
		return nil
	}

	needle := strings.ToLower(query)
	var results []string
	for _, identity := range known {
		if !strings.Contains(strings.ToLower(identity), needle) {
			continue
		}
		if excludeChannel != "" && d.store.HasMember(excludeChannel, identity) {
			continue
		}
		results = append(results, identity)
	}
	return results
}
