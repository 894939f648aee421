package scope

import "github.com/algol68/scopechecker/lang/tree"

// getNonLocalEnvirons marks, on every node, the outermost symbol table
// reachable from the node's own table by stepping outwards through empty
// tables while the next table's level is at least max — the "non-local
// environ" a generator or identifier can be hoisted to without crossing a
// block that actually declares something (get_non_local_environs). The
// table reached need not be empty itself. A routine or format text resets
// max to the level of its first child before recursing into its body, so
// a non-local environ can never reach outside the text that introduced it.
func (c *Checker) getNonLocalEnvirons(p *tree.Node, max int) {
	for ; p != nil; p = p.Next {
		switch {
		case p.Is(tree.RoutineText), p.Is(tree.FormatText):
			c.getNonLocalEnvirons(p.Sub, p.Sub.LexLevel)
		default:
			c.getNonLocalEnvirons(p.Sub, max)
			p.NonLocal = nil
			if p.Table != nil {
				q := p.Table
				for q != nil && q.Empty() && q.Previous != nil && q.Previous.Level >= max {
					p.NonLocal = q.Previous
					q = q.Previous
				}
			}
		}
	}
}
