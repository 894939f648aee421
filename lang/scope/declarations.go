package scope

import (
	"github.com/algol68/scopechecker/lang/mode"
	"github.com/algol68/scopechecker/lang/symtab"
	"github.com/algol68/scopechecker/lang/tree"
)

// checkIdentifierUsage warns about every reference to t under p that
// occurs before t's own initialising unit has a chance to run — in
// practice this pass only needs to inspect the initialising unit itself,
// since that is the only place a self-reference could appear
// (check_identifier_usage). A PROC-moded tag is exempt: a routine may
// legally refer to itself for recursion.
func (c *Checker) checkIdentifierUsage(t *symtab.Tag, p *tree.Node) {
	for ; p != nil; p = p.Next {
		if p.Is(tree.Identifier) && p.Tax == t && !isProcMoid(t) {
			c.warnf(p, CodeUninitialised, "identifier %q used before its value is established", t.Name)
		}
		c.checkIdentifierUsage(t, p.Sub)
	}
}

func isProcMoid(t *symtab.Tag) bool {
	return t != nil && mode.IsProc(t.Moid)
}

// scopeBounds runs the statement checker over every UNIT found in a
// bounds subtree (array bound expressions), discarding their scope lists:
// a bound's value is used immediately to compute a length, never stored
// (scope_bounds).
func (c *Checker) scopeBounds(p *tree.Node) {
	for ; p != nil; p = p.Next {
		if p.Is(tree.Unit) {
			c.scopeStatement(p, nil)
		} else {
			c.scopeBounds(p.Sub)
		}
	}
}

// scopeDeclarer recurses through a declarer's syntax, running scopeBounds
// over any bound expressions it contains; an indicant is opaque (its
// mode's HasRows was already consulted by getDeclarerElements), a REF
// layer is stepped over to the declarer it references, and a PROC/UNION
// keyword has nothing further to check (scope_declarer).
func (c *Checker) scopeDeclarer(p *tree.Node) {
	if p == nil {
		return
	}
	switch {
	case p.Is(tree.Bounds):
		c.scopeBounds(p.Sub)
	case p.Is(tree.Indicant):
		// nothing to do
	case p.Is(tree.RefSymbol):
		c.scopeDeclarer(p.Next)
	case p.IsOneOf(tree.ProcSymbol, tree.UnionSymbol):
		// nothing to do
	default:
		c.scopeDeclarer(p.Sub)
		c.scopeDeclarer(p.Next)
	}
}

// scopeIdentityDeclaration checks the initialising unit of an identity
// declaration ("x = e") against its own lexical level, and — unless the
// identifier's mode is PROC — warns about any self-reference in e. If e's
// youngest environ turns out to be older than the declaration's own
// level, that environ becomes the identifier's assigned scope, letting
// later uses of the identifier carry the narrower scope instead of its
// declaration level (scope_identity_declaration).
func (c *Checker) scopeIdentityDeclaration(p *tree.Node) {
	for ; p != nil; p = p.Next {
		c.scopeIdentityDeclaration(p.Sub)
		if p.Is(tree.DefiningIdentifier) {
			unit := p.NextNext()
			var s List
			if p.Tax != nil && !isProcMoid(p.Tax) {
				c.checkIdentifierUsage(p.Tax, unit)
			}
			c.scopeStatement(unit, &s)
			c.check(s, true, p.LexLevel)
			tup := c.findYoungest(s)
			if tup.Level < p.LexLevel && p.Tax != nil {
				p.Tax.Scope = tup.Level
				p.Tax.ScopeAssigned = true
			}
			unit.SetStatus(tree.InterruptibleMask)
			return
		}
	}
}

// scopeVariableDeclaration checks a variable declaration's declarer and,
// if the variable was given an initial value ("x := e"), checks that
// value against the declaration's level the same way an identity
// declaration does, without assigning a narrower scope: a variable's
// scope is always its declaration level, since it can be reassigned later
// (scope_variable_declaration).
func (c *Checker) scopeVariableDeclaration(p *tree.Node) {
	for ; p != nil; p = p.Next {
		c.scopeVariableDeclaration(p.Sub)
		switch {
		case p.Is(tree.Declarer):
			c.scopeDeclarer(p.Sub)
		case p.Is(tree.DefiningIdentifier):
			if p.Next.Is(tree.AssignSymbol) && p.NextNext().Is(tree.Unit) {
				unit := p.NextNext()
				var s List
				if p.Tax != nil {
					c.checkIdentifierUsage(p.Tax, unit)
				}
				c.scopeStatement(unit, &s)
				c.check(s, true, p.LexLevel)
				unit.SetStatus(tree.InterruptibleMask)
				return
			}
		}
	}
}

// scopeProcedureDeclaration checks a procedure or operator declaration's
// routine text against the declaration's own level
// (scope_procedure_declaration); the routine text's own scope was already
// assigned to its tag by getYoungestEnvirons and bindScopeToTags, so this
// pass only has to validate that the body does not itself escape.
func (c *Checker) scopeProcedureDeclaration(p *tree.Node) {
	for ; p != nil; p = p.Next {
		c.scopeProcedureDeclaration(p.Sub)
		if p.IsOneOf(tree.DefiningIdentifier, tree.DefiningOperator) {
			unit := p.NextNext()
			var s List
			c.scopeStatement(unit, &s)
			c.check(s, false, p.LexLevel)
			unit.SetStatus(tree.InterruptibleMask)
			return
		}
	}
}

// scopeDeclarationList dispatches a single declaration to the checker
// appropriate to its kind (scope_declaration_list). A mode or priority
// declaration carries no run-time value and needs no statement-level
// check beyond its declarer's bounds.
func (c *Checker) scopeDeclarationList(p *tree.Node) {
	if p == nil {
		return
	}
	switch {
	case p.Is(tree.IdentityDeclaration):
		c.scopeIdentityDeclaration(p.Sub)
	case p.Is(tree.VariableDeclaration):
		c.scopeVariableDeclaration(p.Sub)
	case p.Is(tree.ModeDeclaration):
		c.scopeDeclarer(p.Sub)
	case p.Is(tree.PriorityDeclaration):
		// nothing to do
	case p.IsOneOf(tree.ProcedureDeclaration, tree.ProcedureVariableDeclaration,
		tree.BriefOperatorDeclaration, tree.OperatorDeclaration):
		c.scopeProcedureDeclaration(p.Sub)
	default:
		c.scopeDeclarationList(p.Sub)
		c.scopeDeclarationList(p.Next)
	}
}

// scopeArguments checks every argument UNIT of a call against its own
// level, disallowing transient values: an argument is passed by value (or
// REF) into the callee's frame and must not carry a value that dies with
// the calling unit (scope_arguments).
func (c *Checker) scopeArguments(p *tree.Node) {
	for ; p != nil; p = p.Next {
		if p.Is(tree.Unit) {
			var s List
			c.scopeStatement(p, &s)
			c.check(s, true, p.LexLevel)
		} else {
			c.scopeArguments(p.Sub)
		}
	}
}
