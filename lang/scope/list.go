package scope

import "github.com/algol68/scopechecker/lang/tree"

// Entry is one link of a scope list: the node a scope tuple was derived
// from, paired with the tuple itself.
type Entry struct {
	Where *tree.Node
	Tuple Tuple
	Next  *Entry
}

// List is a scope list, built by prepending Entry values as a unit is
// walked. A nil *List argument throughout this package means "discard":
// the caller is not interested in collecting scope information for this
// sub-walk (the source's NO_VAR).
type List = *Entry

// add links a new entry onto *sl, or does nothing if sl is nil.
func add(sl *List, p *tree.Node, tup Tuple) {
	if sl == nil {
		return
	}
	*sl = &Entry{Where: p, Tuple: tup, Next: *sl}
}
