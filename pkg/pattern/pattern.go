// Package pattern compiles the textual path templates describing relic's
// historical cache layouts. A pattern mixes literal text, named tokens in
// square brackets and optional groups in parentheses:
//
//	store/[organisation]/[module](/[branch])/[revision]/[type]/*/[artifact]-[revision](-[classifier])(.[ext])
//
// Compiled patterns are stateless and safe to share across concurrent
// lookups.
package pattern

import (
	"strings"

	"github.com/glorpus-work/relic/pkg/errors"
	"github.com/glorpus-work/relic/pkg/model"
)

// Wildcard is the path segment matching any single directory, used where
// historical layouts embedded a non-deterministic component (such as a
// cache-generation hash) that is irrelevant to the artifact identity.
const Wildcard = "*"

// tokenValue resolves a token name against an identity. The organisation-path
// token renders the organisation with dots replaced by path separators, the
// Maven repository convention.
func tokenValue(name string, id model.ArtifactIdentity) (string, bool) {
	switch name {
	case "organisation":
		return id.Organisation, true
	case "organisation-path":
		return strings.ReplaceAll(id.Organisation, ".", "/"), true
	case "module":
		return id.Module, true
	case "branch":
		return id.Branch, true
	case "revision":
		return id.Revision, true
	case "artifact":
		return id.ArtifactName(), true
	case "type":
		return id.TypeName(), true
	case "classifier":
		return id.Classifier, true
	case "ext":
		return id.Extension(), true
	default:
		return "", false
	}
}

type nodeKind int

const (
	nodeLiteral nodeKind = iota
	nodeToken
	nodeGroup
)

type node struct {
	kind     nodeKind
	text     string // literal text or token name
	children []node // group members
}

// Pattern is a compiled path template. The zero value is not usable; obtain
// one through Compile.
type Pattern struct {
	source string
	nodes  []node
}

// Compile parses a pattern string. A reference to an unknown token or an
// unbalanced optional group is a configuration error, surfaced here so
// misconfiguration fails at startup rather than producing wrong lookups
// later.
func Compile(source string) (*Pattern, error) {
	if strings.TrimSpace(source) == "" {
		return nil, errors.ErrEmptyPattern
	}
	nodes, rest, err := parse(source, false)
	if err != nil {
		return nil, errors.Wrapf(err, "pattern %q", source)
	}
	if rest != "" {
		return nil, errors.Wrapf(errors.ErrUnbalancedGroup, "pattern %q", source)
	}
	return &Pattern{source: source, nodes: nodes}, nil
}

// MustCompile is like Compile but panics on error. It is intended for the
// hard-coded layout patterns registered at startup.
func MustCompile(source string) *Pattern {
	p, err := Compile(source)
	if err != nil {
		panic(err)
	}
	return p
}

// parse consumes source until the end of input (inGroup false) or a closing
// parenthesis (inGroup true), returning the parsed nodes and the unconsumed
// remainder.
func parse(source string, inGroup bool) ([]node, string, error) {
	var nodes []node
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			nodes = append(nodes, node{kind: nodeLiteral, text: literal.String()})
			literal.Reset()
		}
	}

	for len(source) > 0 {
		switch source[0] {
		case '[':
			end := strings.IndexByte(source, ']')
			if end < 0 {
				return nil, "", errors.Wrapf(errors.ErrUnknownToken, "unterminated token in %q", source)
			}
			name := source[1:end]
			if _, ok := tokenValue(name, model.ArtifactIdentity{}); !ok {
				return nil, "", errors.Wrapf(errors.ErrUnknownToken, "[%s]", name)
			}
			flush()
			nodes = append(nodes, node{kind: nodeToken, text: name})
			source = source[end+1:]
		case '(':
			children, rest, err := parse(source[1:], true)
			if err != nil {
				return nil, "", err
			}
			flush()
			nodes = append(nodes, node{kind: nodeGroup, children: children})
			source = rest
		case ')':
			if !inGroup {
				return nil, "", errors.ErrUnbalancedGroup
			}
			flush()
			return nodes, source[1:], nil
		default:
			literal.WriteByte(source[0])
			source = source[1:]
		}
	}
	if inGroup {
		return nil, "", errors.ErrUnbalancedGroup
	}
	flush()
	return nodes, "", nil
}

// Render produces the slash-separated path for the identity. Optional groups
// are emitted only when every token they contain resolves to a non-empty
// value; otherwise the whole group, including its literal delimiters, is
// omitted. Rendering is deterministic and side-effect free. The result may
// still contain wildcard segments, which the caller resolves by directory
// listing.
func (p *Pattern) Render(id model.ArtifactIdentity) string {
	var sb strings.Builder
	renderNodes(&sb, p.nodes, id)
	return sb.String()
}

func renderNodes(sb *strings.Builder, nodes []node, id model.ArtifactIdentity) {
	for _, n := range nodes {
		switch n.kind {
		case nodeLiteral:
			sb.WriteString(n.text)
		case nodeToken:
			v, _ := tokenValue(n.text, id)
			sb.WriteString(v)
		case nodeGroup:
			if groupComplete(n.children, id) {
				renderNodes(sb, n.children, id)
			}
		}
	}
}

// groupComplete reports whether every token referenced inside the group
// (including nested groups) resolves non-empty for the identity.
func groupComplete(nodes []node, id model.ArtifactIdentity) bool {
	for _, n := range nodes {
		switch n.kind {
		case nodeToken:
			if v, _ := tokenValue(n.text, id); v == "" {
				return false
			}
		case nodeGroup:
			if !groupComplete(n.children, id) {
				return false
			}
		}
	}
	return true
}

// String returns the original pattern source.
func (p *Pattern) String() string {
	return p.source
}

// HasWildcard reports whether any rendered path will contain a wildcard
// segment.
func (p *Pattern) HasWildcard() bool {
	return hasWildcard(p.nodes)
}

func hasWildcard(nodes []node) bool {
	for _, n := range nodes {
		switch n.kind {
		case nodeLiteral:
			if strings.Contains(n.text, Wildcard) {
				return true
			}
		case nodeGroup:
			if hasWildcard(n.children) {
				return true
			}
		}
	}
	return false
}
