package scope

import "github.com/algol68/scopechecker/lang/tree"

// scopeSerialClause walks a serial clause's declarations and units.
// terminator marks whether p's final unit is the clause's yield (and so
// must contribute to s) or a unit whose value is discarded (voided):
// every unit but the last in a serial clause is voided regardless of what
// the caller asked for, since only the last one's value escapes the
// clause (scope_serial_clause).
func (c *Checker) scopeSerialClause(p *tree.Node, s *List, terminator bool) {
	if p == nil {
		return
	}
	switch {
	case p.Is(tree.InitialiserSeries):
		c.scopeSerialClause(p.Sub, s, false)
		c.scopeSerialClause(p.Next, s, terminator)
	case p.Is(tree.DeclarationList):
		c.scopeDeclarationList(p.Sub)
	case p.IsOneOf(tree.Label, tree.SemiSymbol, tree.ExitSymbol):
		c.scopeSerialClause(p.Next, s, terminator)
	case p.IsOneOf(tree.SerialClause, tree.EnquiryClause):
		if p.Next != nil {
			if p.Next.IsOneOf(tree.ExitSymbol, tree.EndSymbol, tree.CloseSymbol) {
				c.scopeSerialClause(p.Sub, s, true)
			} else {
				c.scopeSerialClause(p.Sub, s, false)
			}
		} else {
			c.scopeSerialClause(p.Sub, s, true)
		}
		c.scopeSerialClause(p.Next, s, terminator)
	case p.Is(tree.LabeledUnit):
		c.scopeSerialClause(p.Sub, s, terminator)
	case p.Is(tree.Unit):
		p.SetStatus(tree.InterruptibleMask)
		if terminator {
			c.scopeStatement(p, s)
		} else {
			c.scopeStatement(p, nil)
		}
	}
}

// scopeClosedClause unwraps "( serial-clause )" (scope_closed_clause).
func (c *Checker) scopeClosedClause(p *tree.Node, s *List) {
	if p == nil {
		return
	}
	switch {
	case p.Is(tree.SerialClause):
		c.scopeSerialClause(p, s, true)
	case p.IsOneOf(tree.OpenSymbol, tree.BeginSymbol):
		c.scopeClosedClause(p.Next, s)
	}
}

// scopeCollateralClause checks every element of a collateral clause's
// unit list, unless the clause is empty ("begin end" / "( )")
// (scope_collateral_clause).
func (c *Checker) scopeCollateralClause(p *tree.Node, s *List) {
	if p == nil {
		return
	}
	empty := (p.Is(tree.BeginSymbol) && p.Next.Is(tree.EndSymbol)) ||
		(p.Is(tree.OpenSymbol) && p.Next.Is(tree.CloseSymbol))
	if !empty {
		c.scopeStatementList(p, s)
	}
}

// scopeConditionalClause checks an IF's enquiry clause (voided), its THEN
// branch, and recurses through any ELIF chain to the final ELSE
// (scope_conditional_clause).
func (c *Checker) scopeConditionalClause(p *tree.Node, s *List) {
	c.scopeSerialClause(p.NextSub(), nil, true)
	p = p.Next
	c.scopeSerialClause(p.NextSub(), s, true)
	if p = p.Next; p != nil {
		switch {
		case p.IsOneOf(tree.ElsePart, tree.Choice):
			c.scopeSerialClause(p.NextSub(), s, true)
		case p.IsOneOf(tree.ElifPart, tree.BriefElifPart):
			c.scopeConditionalClause(p.Sub, s)
		}
	}
}

// scopeCaseClause checks a CASE/CONFORMITY enquiry clause against the
// clause's own level (transient values are not rejected there; the
// enquiry's value does not flow into s), checks every branch as a
// statement list contributing to s, and recurses through
// any OUSE chain to the final OUT part (scope_case_clause).
func (c *Checker) scopeCaseClause(p *tree.Node, s *List) {
	var n List
	c.scopeSerialClause(p.NextSub(), &n, true)
	c.check(n, false, p.LexLevel)
	p = p.Next
	c.scopeStatementList(p.NextSub(), s)
	if p = p.Next; p != nil {
		switch {
		case p.IsOneOf(tree.OutPart, tree.Choice):
			c.scopeSerialClause(p.NextSub(), s, true)
		case p.IsOneOf(tree.CaseOusePart, tree.BriefOusePart):
			c.scopeCaseClause(p.Sub, s)
		case p.IsOneOf(tree.ConformityOusePart, tree.BriefConformityOusePart):
			c.scopeCaseClause(p.Sub, s)
		}
	}
}

// scopeLoopClause checks a loop's FOR/FROM/BY/TO bound expressions, its
// WHILE enquiry clause, its DO body, and its UNTIL condition. None of
// these contribute to the loop's own scope list: a LOOP_CLAUSE never
// yields a value (scope_loop_clause).
func (c *Checker) scopeLoopClause(p *tree.Node) {
	if p == nil {
		return
	}
	switch {
	case p.Is(tree.ForPart):
		c.scopeLoopClause(p.Next)
	case p.IsOneOf(tree.FromPart, tree.ByPart, tree.ToPart):
		c.scopeStatement(p.NextSub(), nil)
		c.scopeLoopClause(p.Next)
	case p.Is(tree.WhilePart):
		c.scopeSerialClause(p.NextSub(), nil, true)
		c.scopeLoopClause(p.Next)
	case p.IsOneOf(tree.DoPart, tree.AltDoPart):
		doP := p.NextSub()
		var unP *tree.Node
		if doP.Is(tree.SerialClause) {
			c.scopeSerialClause(doP, nil, true)
			unP = doP.Next
		} else {
			unP = doP
		}
		if unP.Is(tree.UntilPart) {
			c.scopeSerialClause(unP.NextSub(), nil, true)
		}
	}
}

// scopeEnclosedClause dispatches to the right clause-shape walker
// (scope_enclosed_clause); this is the entry point the statement
// dispatcher and the top-level checker both call.
func (c *Checker) scopeEnclosedClause(p *tree.Node, s *List) {
	switch {
	case p.Is(tree.EnclosedClause):
		c.scopeEnclosedClause(p.Sub, s)
	case p.Is(tree.ClosedClause):
		c.scopeClosedClause(p.Sub, s)
	case p.IsOneOf(tree.CollateralClause, tree.ParallelClause):
		c.scopeCollateralClause(p.Sub, s)
	case p.Is(tree.ConditionalClause):
		c.scopeConditionalClause(p.Sub, s)
	case p.IsOneOf(tree.CaseClause, tree.ConformityClause):
		c.scopeCaseClause(p.Sub, s)
	case p.Is(tree.LoopClause):
		c.scopeLoopClause(p.Sub)
	}
}
