package scope

import "github.com/algol68/scopechecker/lang/tree"

// scopeRoutineText checks a routine text's body against its own level,
// then contributes the youngest environ already computed for it by
// getYoungestEnvirons/bindScopeToTags as the scope of the PROC value
// itself (scope_routine_text). A parameter pack, if present, is skipped
// to reach the body: PROC | PARAMETER_PACK PROC : unit.
func (c *Checker) scopeRoutineText(p *tree.Node, s *List) {
	q := p.Sub
	routine := q
	if q.Is(tree.ParameterPack) {
		routine = q.Next
	}
	var x List
	c.scopeStatement(routine.NextNext(), &x)
	c.check(x, true, p.LexLevel)
	var youngest int
	if p.Tax != nil {
		youngest = p.Tax.YoungestEnviron
	}
	add(s, p, MakeTuple(youngest, false))
}
