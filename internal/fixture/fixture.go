// Package fixture loads a mode-decorated syntax tree from a JSON
// description. The scope checker itself never parses Algol 68 source (that
// phase is out of scope, per the Non-goals); what it consumes is the tree
// the earlier phases of a real compiler would have already built and
// decorated with modes and symbol-table tags. This package stands in for
// those phases so the command-line tool has something to feed the checker.
package fixture

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/algol68/scopechecker/lang/mode"
	"github.com/algol68/scopechecker/lang/symtab"
	"github.com/algol68/scopechecker/lang/tree"
)

// ModeSpec describes a lang/mode.Mode. Ref and row modes nest Of; union
// modes list their alternatives in Of via repeated entries is not
// supported, only the single-submode shapes scope checking cares about.
type ModeSpec struct {
	Kind string    `json:"kind"`
	Name string    `json:"name,omitempty"`
	Flex bool      `json:"flex,omitempty"`
	Of   *ModeSpec `json:"of,omitempty"`
}

var modeKinds = map[string]mode.Kind{
	"plain":  mode.Plain,
	"ref":    mode.Ref,
	"proc":   mode.Proc,
	"format": mode.Format,
	"union":  mode.Union,
	"row":    mode.Row,
}

func (m *ModeSpec) build() *mode.Mode {
	if m == nil {
		return nil
	}
	return &mode.Mode{
		Kind:    modeKinds[m.Kind],
		Name:    m.Name,
		Flex:    m.Flex,
		SubMode: m.Of.build(),
	}
}

// TagSpec describes a lang/symtab.Tag referenced from a node.
type TagSpec struct {
	Name          string `json:"name"`
	Level         int    `json:"level"`
	Heap          string `json:"heap,omitempty"`
	Prio          string `json:"prio,omitempty"`
	Scope         int    `json:"scope,omitempty"`
	ScopeAssigned bool   `json:"scopeAssigned,omitempty"`
}

func (t *TagSpec) build(moid *mode.Mode) *symtab.Tag {
	if t == nil {
		return nil
	}
	tag := &symtab.Tag{
		Name:          t.Name,
		TagLexLevel:   t.Level,
		Moid:          moid,
		Scope:         t.Scope,
		ScopeAssigned: t.ScopeAssigned,
	}
	switch t.Heap {
	case "loc":
		tag.Heap = symtab.Loc
	case "heap":
		tag.Heap = symtab.HeapSym
	}
	switch t.Prio {
	case "parameter":
		tag.Prio = symtab.Parameter
	}
	return tag
}

// NodeSpec describes a single lang/tree.Node and its children. Sub holds
// the node's children in source order; the loader links them into the
// Sub/Next chain tree.Node expects.
type NodeSpec struct {
	Kind  string      `json:"kind"`
	Level int         `json:"level,omitempty"`
	Lit   string      `json:"lit,omitempty"`
	Moid  *ModeSpec   `json:"moid,omitempty"`
	Tax   *TagSpec    `json:"tax,omitempty"`
	Sub   []*NodeSpec `json:"sub,omitempty"`
}

// Build converts a NodeSpec tree into a *tree.Node tree.
func (s *NodeSpec) Build() (*tree.Node, error) {
	if s == nil {
		return nil, nil
	}
	kind, ok := tree.KindByName(s.Kind)
	if !ok {
		return nil, fmt.Errorf("fixture: unknown node kind %q", s.Kind)
	}

	moid := s.Moid.build()
	n := &tree.Node{
		Kind:     kind,
		LexLevel: s.Level,
		Lit:      s.Lit,
		Moid:     moid,
		Tax:      s.Tax.build(moid),
	}

	var head, tail *tree.Node
	for _, childSpec := range s.Sub {
		child, err := childSpec.Build()
		if err != nil {
			return nil, err
		}
		if head == nil {
			head = child
		} else {
			tail.Next = child
		}
		tail = child
	}
	n.Sub = head

	return n, nil
}

// Load reads a JSON-encoded NodeSpec tree from r and builds it.
func Load(r io.Reader) (*tree.Node, error) {
	var spec NodeSpec
	if err := json.NewDecoder(r).Decode(&spec); err != nil {
		return nil, fmt.Errorf("fixture: decode: %w", err)
	}
	return spec.Build()
}
