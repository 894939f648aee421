package scope

import (
	"github.com/algol68/scopechecker/lang/mode"
	"github.com/algol68/scopechecker/lang/tree"
)

// bindScopeToTag finds the single defining identifier under an identity or
// procedure declaration's subtree and, if it was initialised directly by a
// routine text or format text, copies that text's already-computed
// youngest environ onto the identifier's own tag. This is what lets a
// later reference to a PROC or FORMAT identifier carry a real scope
// instead of just its lexical declaration level (bind_scope_to_tag).
func (c *Checker) bindScopeToTag(p *tree.Node) {
	for ; p != nil; p = p.Next {
		switch {
		case p.Is(tree.DefiningIdentifier) && mode.IsFormat(p.Moid):
			if nn := p.NextNext(); nn.Is(tree.FormatText) && p.Tax != nil && nn.Tax != nil {
				p.Tax.Scope = nn.Tax.YoungestEnviron
				p.Tax.ScopeAssigned = true
			}
			return
		case p.Is(tree.DefiningIdentifier):
			if nn := p.NextNext(); nn.Is(tree.RoutineText) && p.Tax != nil && nn.Tax != nil {
				p.Tax.Scope = nn.Tax.YoungestEnviron
				p.Tax.ScopeAssigned = true
			}
			return
		default:
			c.bindScopeToTag(p.Sub)
		}
	}
}

// bindScopeToTags finds every identity and procedure declaration in the
// tree and runs bindScopeToTag over it (bind_scope_to_tags).
func (c *Checker) bindScopeToTags(p *tree.Node) {
	for ; p != nil; p = p.Next {
		if p.IsOneOf(tree.ProcedureDeclaration, tree.IdentityDeclaration) {
			c.bindScopeToTag(p.Sub)
		} else {
			c.bindScopeToTags(p.Sub)
		}
	}
}
