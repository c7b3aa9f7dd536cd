// Package model provides the data structures shared by the relic cache
// resolution components: artifact coordinates and locally resolved
// candidates.
package model

import (
	"fmt"
	"strings"

	"github.com/glorpus-work/relic/pkg/errors"
)

// DefaultType is the artifact type assumed when none is given.
const DefaultType = "jar"

// ArtifactIdentity is the immutable set of coordinates naming a dependency
// artifact. It is the lookup key for every finder. Values are never mutated
// after construction; equality is structural.
type ArtifactIdentity struct {
	Organisation string
	Module       string
	Revision     string
	Branch       string // optional
	Artifact     string // defaults to Module
	Type         string // defaults to DefaultType
	Ext          string // defaults to Type
	Classifier   string // optional
}

// NewIdentity creates an identity for the given coordinates, applying the
// usual defaults: artifact name falls back to the module name, type to "jar"
// and extension to the type.
func NewIdentity(organisation, module, revision string) (ArtifactIdentity, error) {
	id := ArtifactIdentity{
		Organisation: organisation,
		Module:       module,
		Revision:     revision,
		Artifact:     module,
		Type:         DefaultType,
		Ext:          DefaultType,
	}
	if err := id.Validate(); err != nil {
		return ArtifactIdentity{}, err
	}
	return id, nil
}

// Validate checks the identity invariants. An identity never has an empty
// organisation or module.
func (id ArtifactIdentity) Validate() error {
	if strings.TrimSpace(id.Organisation) == "" {
		return errors.ErrEmptyOrganisation
	}
	if strings.TrimSpace(id.Module) == "" {
		return errors.ErrEmptyModule
	}
	return nil
}

// ArtifactName returns the artifact file name component, falling back to the
// module name when unset.
func (id ArtifactIdentity) ArtifactName() string {
	if id.Artifact != "" {
		return id.Artifact
	}
	return id.Module
}

// TypeName returns the artifact type, falling back to the default.
func (id ArtifactIdentity) TypeName() string {
	if id.Type != "" {
		return id.Type
	}
	return DefaultType
}

// Extension returns the file extension, falling back to the type.
func (id ArtifactIdentity) Extension() string {
	if id.Ext != "" {
		return id.Ext
	}
	return id.TypeName()
}

// FileName returns the conventional artifact file name
// <artifact>-<revision>(-<classifier>).<ext> used by every historical cache
// layout and the Maven local repository.
func (id ArtifactIdentity) FileName() string {
	var sb strings.Builder
	sb.WriteString(id.ArtifactName())
	if id.Revision != "" {
		sb.WriteString("-" + id.Revision)
	}
	if id.Classifier != "" {
		sb.WriteString("-" + id.Classifier)
	}
	if ext := id.Extension(); ext != "" {
		sb.WriteString("." + ext)
	}
	return sb.String()
}

// String renders the identity in the familiar organisation:module:revision
// notation, with branch and classifier appended when present.
func (id ArtifactIdentity) String() string {
	s := fmt.Sprintf("%s:%s:%s", id.Organisation, id.Module, id.Revision)
	if id.Branch != "" {
		s += fmt.Sprintf(" (branch %s)", id.Branch)
	}
	if id.Classifier != "" {
		s += fmt.Sprintf(" (classifier %s)", id.Classifier)
	}
	return s
}

// Candidate is a file resolved for a given identity. Candidates are produced
// fresh per lookup and never cached beyond the resolution call, since the
// underlying filesystem may change between calls.
type Candidate struct {
	Path     string
	Identity ArtifactIdentity
}
