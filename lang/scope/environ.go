package scope

import (
	"math"

	"github.com/algol68/scopechecker/lang/mode"
	"github.com/algol68/scopechecker/lang/tree"
)

// findYoungestOutside returns the youngest (numerically greatest) level
// recorded in s that does not exceed threshold, or PrimalScope with no
// transience if nothing qualifies (scope_find_youngest_outside).
func (c *Checker) findYoungestOutside(s List, threshold int) Tuple {
	z := MakeTuple(PrimalScope, false)
	for ; s != nil; s = s.Next {
		if s.Tuple.Level > z.Level && s.Tuple.Level <= threshold {
			z = s.Tuple
		}
	}
	return z
}

// findYoungest is findYoungestOutside with no ceiling (scope_find_youngest).
func (c *Checker) findYoungest(s List) Tuple {
	return c.findYoungestOutside(s, math.MaxInt)
}

// getDeclarerElements walks a declarer and adds a scope entry for each
// indicant that denotes a rowed mode, the way get_declarer_elements does:
// a declarer such as "[] ROWMODE" can itself carry scope information
// when its indicant's mode has rows, but only when no enclosing REF has
// already made the value indirect (noRef flips to false the instant a REF
// layer is crossed).
func (c *Checker) getDeclarerElements(p *tree.Node, r *List, noRef bool) {
	if p == nil {
		return
	}
	switch {
	case p.Is(tree.Bounds):
		c.gatherScopesForYoungest(p.Sub, r)
	case p.Is(tree.Indicant):
		if p.Moid != nil && p.Tax != nil && mode.HasRows(p.Moid) && noRef {
			add(r, p, MakeTuple(p.Tax.TagLexLevel, false))
		}
	case p.Is(tree.RefSymbol):
		c.getDeclarerElements(p.Next, r, false)
	case p.IsOneOf(tree.ProcSymbol, tree.UnionSymbol):
		// A PROC or UNION declarer's inner shape is opaque to scope.
	default:
		c.getDeclarerElements(p.Sub, r, noRef)
		c.getDeclarerElements(p.Next, r, noRef)
	}
}

// gatherScopesForYoungest collects, into s, the scope entries that
// determine a routine or format text's own youngest environ: every free
// identifier or operator it refers to, every declarer element in its
// bounds, and — for a nested routine/format text not yet resolved — the
// entries that survive after that nested text's own youngest environ is
// computed first (gather_scopes_for_youngest).
func (c *Checker) gatherScopesForYoungest(p *tree.Node, s *List) {
	for ; p != nil; p = p.Next {
		switch {
		case p.IsOneOf(tree.RoutineText, tree.FormatText) && p.Tax != nil && p.Tax.YoungestEnviron == PrimalScope:
			var t List
			c.gatherScopesForYoungest(p.Sub, &t)
			tup := c.findYoungestOutside(t, p.LexLevel)
			p.Tax.YoungestEnviron = tup.Level
			// Splice t onto the front of *s directly, rather than
			// re-walking p.Sub a second time.
			if t != nil {
				u := t
				for u.Next != nil {
					u = u.Next
				}
				u.Next = *s
				*s = t
			}
		case p.IsOneOf(tree.Identifier, tree.Operator):
			if p.Tax != nil && p.Tax.TagLexLevel != PrimalScope {
				add(s, p, MakeTuple(p.Tax.TagLexLevel, false))
			}
		case p.Is(tree.Declarer):
			c.getDeclarerElements(p, s, true)
		default:
			c.gatherScopesForYoungest(p.Sub, s)
		}
	}
}

// getYoungestEnvirons assigns every routine/format text's tag a
// YoungestEnviron: the youngest level, among all names it mentions, at or
// below its own level — i.e. the level of the tightest enclosing block it
// actually depends on (get_youngest_environs, the checker's first pass).
func (c *Checker) getYoungestEnvirons(p *tree.Node) {
	for ; p != nil; p = p.Next {
		if p.IsOneOf(tree.RoutineText, tree.FormatText) {
			var s List
			c.gatherScopesForYoungest(p.Sub, &s)
			tup := c.findYoungestOutside(s, p.LexLevel)
			if p.Tax != nil {
				p.Tax.YoungestEnviron = tup.Level
			}
		} else {
			c.getYoungestEnvirons(p.Sub)
		}
	}
}
