// Package tree implements the decorated syntax node the scope checker
// walks: a node carries a syntactic category, a first-child/next-sibling
// pair of links, and the side-band references (symbol table, lexical
// level, mode, tag, status bits) the checker reads and writes. The
// category is a flat Go Kind constant dispatched with switch statements,
// but the Sub/Next shape is kept rather than one Go struct type per
// production: it matches Algol 68's heterogeneous production right-hand
// sides, the same first-child/next-sibling layout GNU a68g's NODE_T uses.
package tree

import (
	"github.com/algol68/scopechecker/lang/mode"
	"github.com/algol68/scopechecker/lang/symtab"
	"github.com/algol68/scopechecker/lang/token"
)

// Status is a per-node bitmask of flags the checker and a run-time monitor
// both consult.
type Status uint8

const (
	// ScopeErrorMask marks a node that has already produced a scope
	// diagnostic; the checker consults it to avoid reporting the same node
	// twice.
	ScopeErrorMask Status = 1 << iota
	// InterruptibleMask marks a UNIT the run-time monitor may suspend at.
	InterruptibleMask
)

// Node is one node of the decorated syntax tree.
type Node struct {
	Kind Kind
	Pos  token.Pos

	Sub  *Node
	Next *Node

	Table    *symtab.SymbolTable
	LexLevel int
	Moid     *mode.Mode
	Tax      *symtab.Tag
	Status   Status
	NonLocal *symtab.SymbolTable

	// Lit carries the node's literal text, for IDENTIFIER/OPERATOR nodes
	// (used only for diagnostics and dump output, never for scope
	// decisions — those decisions only ever use Tax).
	Lit string
}

// New returns a Node of the given kind at level lvl, attached to table.
func New(kind Kind, table *symtab.SymbolTable, lvl int) *Node {
	return &Node{Kind: kind, Table: table, LexLevel: lvl}
}

// Is reports whether n is non-nil and has kind k.
func (n *Node) Is(k Kind) bool { return n != nil && n.Kind == k }

// IsOneOf reports whether n is non-nil and has one of the given kinds.
func (n *Node) IsOneOf(ks ...Kind) bool {
	if n == nil {
		return false
	}
	for _, k := range ks {
		if n.Kind == k {
			return true
		}
	}
	return false
}

// HasStatus reports whether all bits of mask are set on n.
func (n *Node) HasStatus(mask Status) bool { return n != nil && n.Status&mask == mask }

// SetStatus sets the given bits on n.
func (n *Node) SetStatus(mask Status) {
	if n != nil {
		n.Status |= mask
	}
}

// The following accessors mirror the NEXT_NEXT/SUB_NEXT/NEXT_SUB/SUB_SUB
// macros GNU a68g's parser-scope.c uses constantly to navigate a
// production's fixed-shape children without needing a typed field per
// production.

// NextNext returns n.Next.Next, or nil if either link is nil.
func (n *Node) NextNext() *Node {
	if n == nil || n.Next == nil {
		return nil
	}
	return n.Next.Next
}

// NextSub returns n.Sub.Next, or nil if either link is nil (the source's
// NEXT_SUB(p): take the first child, then its next sibling).
func (n *Node) NextSub() *Node {
	if n == nil || n.Sub == nil {
		return nil
	}
	return n.Sub.Next
}

// SubNext returns n.Next.Sub, or nil if either link is nil (the source's
// SUB_NEXT(p): take the next sibling, then its first child).
func (n *Node) SubNext() *Node {
	if n == nil || n.Next == nil {
		return nil
	}
	return n.Next.Sub
}

// SubSub returns n.Sub.Sub, or nil if either link is nil.
func (n *Node) SubSub() *Node {
	if n == nil || n.Sub == nil {
		return nil
	}
	return n.Sub.Sub
}

// Children returns the list of n's direct children by walking Sub then
// Next, for use by tree builders, the printer and tests. The checker
// itself never needs this: its dispatch methods always know exactly which
// child they want next.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for c := n.Sub; c != nil; c = c.Next {
		out = append(out, c)
	}
	return out
}

// Append adds children as a Next-linked sibling chain under n, replacing
// whatever n.Sub was. It is a convenience for building fixtures and is not
// used by the checker itself.
func (n *Node) Append(children ...*Node) *Node {
	if len(children) == 0 {
		return n
	}
	n.Sub = children[0]
	for i := 0; i < len(children)-1; i++ {
		children[i].Next = children[i+1]
	}
	return n
}
