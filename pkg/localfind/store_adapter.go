package localfind

import "github.com/glorpus-work/relic/pkg/model"

// StoreAdapter exposes the content-addressed store's direct key lookup
// through the Finder contract so it can head the composite chain.
type StoreAdapter struct {
	store Searcher
}

// NewStoreAdapter wraps a store searcher.
func NewStoreAdapter(store Searcher) *StoreAdapter {
	return &StoreAdapter{store: store}
}

// Find searches the store by identity.
func (a *StoreAdapter) Find(id model.ArtifactIdentity) (*model.Candidate, error) {
	return a.store.Search(id)
}
