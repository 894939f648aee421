package scope

import "github.com/algol68/scopechecker/lang/tree"

// scopeFormatText walks a format text's items, descending into the
// enclosed clause carried by a FORMAT_PATTERN, a dynamic replicator's
// count, or a "g" general-format item's following argument
// (scope_format_text); every other item contributes nothing to scope.
func (c *Checker) scopeFormatText(p *tree.Node, s *List) {
	for ; p != nil; p = p.Next {
		switch {
		case p.Is(tree.FormatPattern):
			c.scopeEnclosedClause(p.NextSub().Sub, s)
		case p.Is(tree.FormatItemG) && p.Next != nil:
			c.scopeEnclosedClause(p.SubNext(), s)
		case p.Is(tree.DynamicReplicator):
			c.scopeEnclosedClause(p.NextSub().Sub, s)
		default:
			c.scopeFormatText(p.Sub, s)
		}
	}
}

// scopeOperand checks one operand of a formula, unwrapping a monadic
// formula to its operand and routing a dyadic sub-formula or bracketed
// secondary to the right walker (scope_operand).
func (c *Checker) scopeOperand(p *tree.Node, s *List) {
	switch {
	case p.Is(tree.MonadicFormula):
		c.scopeOperand(p.NextSub(), s)
	case p.Is(tree.Formula):
		c.scopeFormula(p, s)
	case p.Is(tree.Secondary):
		c.scopeStatement(p.Sub, s)
	}
}

// scopeFormula checks a (possibly dyadic) formula's operands against its
// own level, disallowing transient values on either side: an operator's
// result can never depend on a value that would not survive the
// evaluation of the formula itself (scope_formula).
func (c *Checker) scopeFormula(p *tree.Node, s *List) {
	q := p.Sub
	var s2 List
	c.scopeOperand(q, &s2)
	c.check(s2, true, p.LexLevel)
	if q.Next != nil {
		var s3 List
		c.scopeOperand(q.NextNext(), &s3)
		c.check(s3, true, p.LexLevel)
	}
}
