package scope

import (
	"github.com/algol68/scopechecker/lang/mode"
	"github.com/algol68/scopechecker/lang/tree"
)

// scopeCoercion walks the coercion chain wrapping a unit (VOIDING,
// DEREFERENCING, DEPROCEDURING, ROWING, PROCEDURING, UNITING, WIDENING)
// and decides what scope information, if any, the coerced value
// contributes to its surroundings (scope_coercion). Dereferencing and
// deproceduring are left to the run-time scope checker: statically all
// that matters is what is under them.
func (c *Checker) scopeCoercion(p *tree.Node, s *List) {
	if !p.Kind.IsCoercion() {
		c.scopeStatement(p, s)
		return
	}
	switch {
	case p.Is(tree.Voiding):
		c.scopeCoercion(p.Sub, nil)
	case p.Is(tree.Dereferencing):
		c.scopeCoercion(p.Sub, nil)
	case p.Is(tree.Deproceduring):
		c.scopeCoercion(p.Sub, nil)
	case p.Is(tree.Rowing):
		var z List
		c.scopeCoercion(p.Sub, &z)
		c.check(z, true, p.LexLevel)
		if mode.IsRefFlex(p.Sub.Moid) {
			add(s, p, MakeTuple(p.LexLevel, true))
		} else {
			add(s, p, MakeTuple(p.LexLevel, false))
		}
	case p.Is(tree.Proceduring):
		// Can only be a JUMP.
		q := p.SubSub()
		if q.Is(tree.GotoSymbol) {
			q = q.Next
		}
		if q != nil && q.Tax != nil {
			add(s, q, MakeTuple(q.Tax.TagLexLevel, false))
		}
	case p.Is(tree.Uniting):
		var z List
		c.scopeCoercion(p.Sub, &z)
		if z != nil {
			c.check(z, true, p.LexLevel)
			add(s, p, c.findYoungest(z))
		}
	default:
		// WIDENING and any other coercion kind: transparent to scope.
		c.scopeCoercion(p.Sub, s)
	}
}
