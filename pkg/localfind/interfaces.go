// Package localfind implements the locally-available-resource search: a
// priority-ordered composite of finders that check the current
// content-addressed store, the cache layouts of previous releases and the
// developer's local Maven repository for an artifact before the resolver
// falls back to a network download.
package localfind

import "github.com/glorpus-work/relic/pkg/model"

// Finder locates a local candidate file for an artifact identity. A miss is
// (nil, nil); it is the expected, common outcome and signals "must
// download". Implementations hold only read-only state after construction
// and are safe for concurrent lookups.
type Finder interface {
	Find(id model.ArtifactIdentity) (*model.Candidate, error)
}

// Searcher is the content-addressed store lookup the chain adapts into a
// Finder.
type Searcher interface {
	Search(id model.ArtifactIdentity) (*model.Candidate, error)
}
