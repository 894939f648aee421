// Package symtab implements symbol tables and tags: the side-band structure
// the scope checker reads (TAG_LEX_LEVEL, PRIO, HEAP, MOID) and writes
// (YOUNGEST_ENVIRON, SCOPE, SCOPE_ASSIGNED).
package symtab

import "github.com/algol68/scopechecker/lang/mode"

// Priority is the PRIO attribute of a tag: it distinguishes a handful of
// roles the scope checker treats specially from an ordinary identifier.
type Priority uint8

const (
	// Ordinary is a plain identifier, operator or indicant.
	Ordinary Priority = iota
	// Parameter marks a formal parameter identifier: it lives in the
	// caller's frame, one level older than its own declaration level.
	Parameter
	// LoopIdentifier marks a for-loop's implicit counter, which on its own
	// does not make a symbol table "non-empty".
	LoopIdentifier
	// Specifier marks a CASE/CONFORMITY clause's specifier identifier,
	// which likewise does not make a table non-empty on its own.
	Specifier
)

// Heap records whether a name was declared LOC or HEAP; only tags that are
// REF-moded and were generated by a HEAP generator, or declared with a HEAP
// specifier, get Heap — everything else is Loc.
type Heap uint8

const (
	Loc Heap = iota
	HeapSym
)

// Tag is a symbol-table entry for an identifier, operator or indicant.
type Tag struct {
	Name string

	// TagLexLevel is the lexical level at which this tag was declared. Set
	// by the parser/mode phase; the scope checker only reads it.
	TagLexLevel int

	Prio Priority
	Heap Heap
	Moid *mode.Mode

	// YoungestEnviron, Scope and ScopeAssigned are the decorations the
	// environ pass and tag binder write. They start zeroed / false on every
	// tag supplied to the checker.
	YoungestEnviron int
	Scope           int
	ScopeAssigned   bool

	// Next chains same-kind tags within one SymbolTable, mirroring the
	// source's singly linked IDENTIFIERS/OPERATORS/INDICANTS lists.
	Next *Tag
}
