package scope

import "github.com/algol68/scopechecker/lang/tree"

// CheckProgram runs the complete static scope check over a decorated
// program tree and returns every diagnostic produced, in the order the
// walk encountered them (scope_checker). root is expected to be the
// PARTICULAR_PROGRAM node; its lone child is the program's enclosed
// clause.
//
// The four passes run in a fixed order because each depends on the
// decorations the previous one wrote:
//  1. getYoungestEnvirons assigns every routine/format text's tag the
//     youngest non-local level it actually depends on.
//  2. getNonLocalEnvirons marks, on every node, the outermost enclosing
//     table a LOC generator could be hoisted into without crossing a
//     block that declares something.
//  3. bindScopeToTags copies a routine/format text's youngest environ
//     onto the identifier it initialises, so later references to a PROC
//     or FORMAT identity carry a real scope.
//  4. scopeEnclosedClause walks the whole program, checking every unit's
//     value against the scope its destination demands.
func CheckProgram(root *tree.Node) []Diagnostic {
	c := NewChecker()
	c.Check(root)
	return c.Diagnostics()
}

// Check runs the same four passes as CheckProgram but on an existing
// Checker, so diagnostics from several top-level programs (or from a
// test fixture built incrementally) can accumulate in one sink.
func (c *Checker) Check(root *tree.Node) {
	if root == nil {
		return
	}
	c.getYoungestEnvirons(root)
	c.getNonLocalEnvirons(root, PrimalScope)
	c.bindScopeToTags(root)
	c.scopeEnclosedClause(root.Sub, nil)
}
