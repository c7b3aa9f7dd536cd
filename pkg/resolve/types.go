//go:generate mockgen -destination=./mocks/resolve.go . LocalFinder,Downloader

// Package resolve orchestrates artifact resolution: each requested identity
// is first looked up in the local finder chain and checksum-verified; only
// on a miss or a failed verification does resolution fall back to the
// injected downloader. The network transport itself is a collaborator
// behind the Downloader interface, not part of this package.
package resolve

import (
	"context"

	"github.com/glorpus-work/relic/pkg/checksum"
	"github.com/glorpus-work/relic/pkg/model"
)

// LocalFinder is the locally-available-resource entry point consulted before
// any download.
type LocalFinder interface {
	Find(id model.ArtifactIdentity) (*model.Candidate, error)
}

// Downloader fetches an artifact from the network repository into dir,
// returning the local file path.
type Downloader interface {
	Fetch(ctx context.Context, id model.ArtifactIdentity, dir string) (string, error)
}

// Request names one artifact to resolve.
type Request struct {
	Identity model.ArtifactIdentity
	// Checksum is the expected hex digest published by the repository.
	// When empty, local candidates are verified against their sibling
	// digest files instead.
	Checksum string
	// Algorithm selects the digest algorithm; defaults to SHA-1, the
	// digest historical layouts and repositories publish.
	Algorithm checksum.Algorithm
}

// Source records where a resolved artifact came from.
type Source string

const (
	// SourceLocal means a verified local candidate was used in place of a
	// download.
	SourceLocal Source = "local"
	// SourceDownload means the artifact was fetched from the network
	// repository.
	SourceDownload Source = "download"
)

// Result is one resolved artifact. A verified local candidate is equivalent
// to a freshly downloaded artifact for the remainder of the resolution.
type Result struct {
	Identity model.ArtifactIdentity
	Path     string
	Source   Source
}

// Event represents a simple progress notification.
type Event struct {
	Phase string // searching|verifying|downloading|done|error
	ID    string // artifact coordinates
	Msg   string
}

// Hooks carries callbacks for progress events.
type Hooks struct {
	OnEvent func(Event)
}

// Options control resolution execution.
type Options struct {
	// CacheDir is where downloaded artifacts land. Must be absolute when
	// a downloader is configured.
	CacheDir string
	// Concurrency bounds the number of parallel resolutions; if <=0 a
	// sane default is used.
	Concurrency int
}
