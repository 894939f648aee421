package scope

import (
	"github.com/algol68/scopechecker/lang/mode"
	"github.com/algol68/scopechecker/lang/tree"
)

// check verifies a scope list against a destination level, the way
// scope_check does in parser-scope.c. When disallowTransient is true, any
// transient entry is itself an error regardless of dest (a transient value
// can never be stored, no matter how shallow the destination). Every entry
// whose level is younger than dest is a scope violation: the value would
// outlive the block that produced it. That level check skips entries
// already carrying ScopeErrorMask and does not count them, so a node is
// reported at most once for escaping its scope; the transient check does
// not consult the mask.
func (c *Checker) check(top List, disallowTransient bool, dest int) bool {
	errs := 0
	if disallowTransient {
		for s := top; s != nil; s = s.Next {
			if s.Tuple.Transient {
				c.errorf(s.Where, CodeTransientName, "transient value cannot be stored")
				s.Where.SetStatus(tree.ScopeErrorMask)
				errs++
			}
		}
	}
	for s := top; s != nil; s = s.Next {
		if dest < s.Tuple.Level && !s.Where.HasStatus(tree.ScopeErrorMask) {
			ws := s.Where.Moid
			if ws != nil && (mode.IsRef(ws) || mode.IsProc(ws) || mode.IsFormat(ws) || mode.IsUnion(ws)) {
				c.scopeStaticWarnf(s.Where, ws, s.Where.Kind, "value of mode %s from %s will outlive its scope", ws, s.Where.Kind)
			}
			s.Where.SetStatus(tree.ScopeErrorMask)
			errs++
		}
	}
	return errs == 0
}

// checkMultiple checks top against every level recorded in dest, the way
// scope_check_multiple does for a multiple assignment's destinations.
func (c *Checker) checkMultiple(top List, disallowTransient bool, dest List) bool {
	noErr := true
	for d := dest; d != nil; d = d.Next {
		if !c.check(top, disallowTransient, d.Tuple.Level) {
			noErr = false
		}
	}
	return noErr
}
