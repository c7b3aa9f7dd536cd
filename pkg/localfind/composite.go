package localfind

import "github.com/glorpus-work/relic/pkg/model"

// Composite queries an ordered list of finders and returns the first hit.
// The order is a total priority: earlier finders are preferred and later
// ones are never consulted once a hit occurs. The list is fixed at
// construction.
type Composite struct {
	finders []Finder
}

// NewComposite creates a composite over the given finders, searched in the
// order given.
func NewComposite(finders ...Finder) *Composite {
	return &Composite{finders: finders}
}

// Len returns the number of finders in the chain.
func (c *Composite) Len() int {
	return len(c.finders)
}

// Find returns the candidate from the first finder that matches, or
// (nil, nil) when none does.
func (c *Composite) Find(id model.ArtifactIdentity) (*model.Candidate, error) {
	for _, f := range c.finders {
		candidate, err := f.Find(id)
		if err != nil {
			return nil, err
		}
		if candidate != nil {
			return candidate, nil
		}
	}
	return nil, nil
}
