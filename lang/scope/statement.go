package scope

import (
	"github.com/algol68/scopechecker/lang/mode"
	"github.com/algol68/scopechecker/lang/symtab"
	"github.com/algol68/scopechecker/lang/tree"
)

// scopeStatement is the checker's central dispatcher: for every syntactic
// unit it decides what scope tuple, if any, the unit's value contributes
// to s, and recursively checks every sub-expression against its own
// level along the way (scope_statement). It is the single largest
// function ported from the source, kept as one switch for the same reason
// the source keeps it as one function: the branches share no structure
// beyond "here is a node kind, here is what escapes its scope".
func (c *Checker) scopeStatement(p *tree.Node, s *List) {
	switch {
	case p.Kind.IsCoercion():
		c.scopeCoercion(p, s)
	case p.IsOneOf(tree.Primary, tree.Secondary, tree.Tertiary, tree.Unit):
		c.scopeStatement(p.Sub, s)
	case p.Is(tree.Nihil):
		add(s, p, MakeTuple(PrimalScope, false))
	case p.Is(tree.Denotation):
		// A literal value never escapes its scope.
	case p.Is(tree.Identifier):
		c.scopeIdentifier(p, s)
	case p.Is(tree.EnclosedClause):
		c.scopeEnclosedClause(p.Sub, s)
	case p.Is(tree.Call):
		var x List
		c.scopeStatement(p.Sub, &x)
		c.check(x, false, p.LexLevel)
		c.scopeArguments(p.NextSub())
	case p.Is(tree.Slice):
		c.scopeSlice(p, s)
	case p.Is(tree.FormatText):
		var x List
		c.scopeFormatText(p.Sub, &x)
		add(s, p, c.findYoungest(x))
	case p.Is(tree.Cast):
		var x List
		c.scopeEnclosedClause(p.NextSub().Sub, &x)
		c.check(x, false, p.LexLevel)
		add(s, p, c.findYoungest(x))
	case p.Is(tree.Selection):
		c.scopeSelection(p, s)
	case p.Is(tree.Generator):
		c.scopeGenerator(p, s)
	case p.Is(tree.DiagonalFunction), p.Is(tree.TransposeFunction),
		p.Is(tree.RowFunction), p.Is(tree.ColumnFunction):
		c.scopeRowFunction(p, s)
	case p.Is(tree.Formula):
		c.scopeFormula(p, s)
	case p.Is(tree.Assignation):
		c.scopeAssignation(p, s)
	case p.Is(tree.RoutineText):
		c.scopeRoutineText(p, s)
	case p.IsOneOf(tree.IdentityRelation, tree.AndFunction, tree.OrFunction):
		var n List
		c.scopeStatement(p.Sub, &n)
		c.scopeStatement(p.NextSub().Next, &n)
		c.check(n, false, p.LexLevel)
	case p.Is(tree.Assertion):
		var n List
		c.scopeEnclosedClause(p.NextSub().Sub, &n)
		c.check(n, false, p.LexLevel)
	case p.IsOneOf(tree.Jump, tree.Skip):
		// Neither produces a value with a scope.
	}
}

// scopeStatementList checks a flat list of units (a collateral clause's
// elements, a CASE clause's alternatives), every unit contributing to the
// same scope list s, marking every one interruptible along the way
// (scope_statement_list).
func (c *Checker) scopeStatementList(p *tree.Node, s *List) {
	for ; p != nil; p = p.Next {
		if p.Is(tree.Unit) {
			p.SetStatus(tree.InterruptibleMask)
			c.scopeStatement(p, s)
		} else {
			c.scopeStatementList(p.Sub, s)
		}
	}
}

// scopeIdentifier contributes the scope tuple an IDENTIFIER reference
// carries: a REF value's scope is either one level older than its own
// declaration (a formal parameter lives in the caller's frame), PrimalScope
// for a HEAP-generated name, the assigned scope of a PROC or FORMAT
// identity, or just its plain declaration level otherwise.
func (c *Checker) scopeIdentifier(p *tree.Node, s *List) {
	t := p.Tax
	if t == nil {
		return
	}
	switch {
	case mode.IsRef(p.Moid):
		switch {
		case t.Prio == symtab.Parameter:
			add(s, p, MakeTuple(t.TagLexLevel-1, false))
		case t.Heap == symtab.HeapSym:
			add(s, p, MakeTuple(PrimalScope, false))
		case t.ScopeAssigned:
			add(s, p, MakeTuple(t.Scope, false))
		default:
			add(s, p, MakeTuple(t.TagLexLevel, false))
		}
	case mode.IsProc(p.Moid) && t.ScopeAssigned:
		add(s, p, MakeTuple(t.Scope, false))
	case mode.IsFormat(p.Moid) && t.ScopeAssigned:
		add(s, p, MakeTuple(t.Scope, false))
	}
}

// scopeSlice handles a SLICE unit: the sliced object is checked in place
// (directly threading s through a slice-of-slice, so the inner slice's
// entries land in s and the outer slice, if REF, adds only a PrimalScope
// entry from its own empty list), the bound expressions are checked as their
// own units, and slicing a REF FLEX row produces a transient REF (the
// classic "array trimming of a local array" scope hazard).
func (c *Checker) scopeSlice(p *tree.Node, s *List) {
	var x List
	m := p.Sub.Moid
	if mode.IsRef(m) {
		if p.Sub.Is(tree.Primary) && p.SubSub().Is(tree.Slice) {
			c.scopeStatement(p.Sub, s)
		} else {
			c.scopeStatement(p.Sub, &x)
			c.check(x, false, p.LexLevel)
		}
		if mode.IsFlexRow(m.SubMode) {
			add(s, p.Sub, MakeTuple(p.LexLevel, true))
		}
		c.scopeBounds(p.NextSub().Sub)
	}
	if mode.IsRef(p.Moid) {
		add(s, p, c.findYoungest(x))
	}
}

// scopeSelection handles field selection: the selected object is checked
// in place, and if its mode is a chain of REFs bottoming out in a FLEX
// row, selecting a field still yields a transient value.
func (c *Checker) scopeSelection(p *tree.Node, s *List) {
	var ns List
	obj := p.NextSub()
	c.scopeStatement(obj, &ns)
	c.check(ns, false, p.LexLevel)
	if mode.IsRefToRefOrFlex(obj.Moid) {
		add(s, p, MakeTuple(p.LexLevel, true))
	}
	add(s, p, c.findYoungest(ns))
}

// scopeGenerator handles LOC and HEAP generators: a HEAP generator always
// escapes to PrimalScope, a LOC generator's scope is its non-local environ
// if the block it was declared in turned out to be otherwise empty, or
// its own lexical level otherwise.
func (c *Checker) scopeGenerator(p *tree.Node, s *List) {
	if p.Sub.Is(tree.LocSymbol) {
		if p.NonLocal != nil {
			add(s, p, MakeTuple(p.NonLocal.Level, false))
		} else {
			add(s, p, MakeTuple(p.LexLevel, false))
		}
	} else {
		add(s, p, MakeTuple(PrimalScope, false))
	}
	c.scopeDeclarer(p.NextSub().Sub)
}

// scopeRowFunction handles DIAGONAL/TRANSPOSE/ROW/COLUMN OF: an optional
// leading TERTIARY index is checked on its own, then the row operand
// itself is checked and its youngest environ becomes the result's scope.
func (c *Checker) scopeRowFunction(p *tree.Node, s *List) {
	q := p.Sub
	var ns List
	if q.Is(tree.Tertiary) {
		c.scopeStatement(q.Sub, &ns)
		c.check(ns, false, q.LexLevel)
		ns = nil
		q = q.Next
	}
	c.scopeStatement(q.SubNext(), &ns)
	c.check(ns, false, q.LexLevel)
	add(s, p, c.findYoungest(ns))
}

// scopeAssignation handles "dest := unit": the destination's own scope
// sets the ceiling every value flowing out of unit must respect, and the
// assignment's own resulting scope (for a chained assignment
// "a := b := c") is the destination's youngest environ.
func (c *Checker) scopeAssignation(p *tree.Node, s *List) {
	unit := p.NextSub().Next
	var ns, nd List
	c.scopeStatement(p.SubSub(), &nd)
	c.scopeStatement(unit, &ns)
	c.checkMultiple(ns, true, nd)
	tup := c.findYoungest(nd)
	add(s, p, MakeTuple(tup.Level, false))
}
