package symtab

import "github.com/dolthub/swiss"

// SymbolTable holds the three linked lists of tags declared directly in one
// lexical block — identifiers, operators and indicants — plus the level of
// that block and a link to its lexically enclosing table.
type SymbolTable struct {
	Level    int
	Previous *SymbolTable

	Identifiers *Tag
	Operators   *Tag
	Indicants   *Tag

	// index is a lazily built name -> Tag lookup for Identifiers, backed by
	// a swiss-table map. The scope checker itself never performs a name
	// lookup — every node already carries its resolved Tax — so this exists
	// purely as an ambient convenience for tools built on top of
	// SymbolTable; within this module only the symtab tests call Lookup.
	index *swiss.Map[string, *Tag]
}

// New returns a SymbolTable at the given level, chained to previous.
func New(level int, previous *SymbolTable) *SymbolTable {
	return &SymbolTable{Level: level, Previous: previous}
}

// AddIdentifier prepends t to the table's identifier list and invalidates
// the lookup index.
func (s *SymbolTable) AddIdentifier(t *Tag) {
	t.Next = s.Identifiers
	s.Identifiers = t
	s.index = nil
}

// AddOperator prepends t to the table's operator list.
func (s *SymbolTable) AddOperator(t *Tag) {
	t.Next = s.Operators
	s.Operators = t
}

// AddIndicant prepends t to the table's indicant list.
func (s *SymbolTable) AddIndicant(t *Tag) {
	t.Next = s.Indicants
	s.Indicants = t
}

// Lookup finds an identifier tag by name in this table only (it does not
// walk SymbolTable.Previous); callers that need lexical lookup chain it
// themselves, as resolving a free identifier is the mode equivalencer's
// job, out of scope for the checker.
func (s *SymbolTable) Lookup(name string) (*Tag, bool) {
	if s.index == nil {
		s.buildIndex()
	}
	return s.index.Get(name)
}

func (s *SymbolTable) buildIndex() {
	n := 0
	for t := s.Identifiers; t != nil; t = t.Next {
		n++
	}
	m := swiss.NewMap[string, *Tag](uint32(n))
	for t := s.Identifiers; t != nil; t = t.Next {
		m.Put(t.Name, t)
	}
	s.index = m
}

// Empty reports whether the table is empty for scope-checker purposes: no
// meaningful declarations at all, i.e. no operators, no indicants, and
// either no identifiers, or exactly one identifier that is a loop counter
// or a case/conformity specifier.
func (s *SymbolTable) Empty() bool {
	if s.Operators != nil || s.Indicants != nil {
		return false
	}
	if s.Identifiers == nil {
		return true
	}
	if s.Identifiers.Next != nil {
		return false
	}
	switch s.Identifiers.Prio {
	case LoopIdentifier, Specifier:
		return true
	default:
		return false
	}
}
