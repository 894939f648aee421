package scope

import (
	"testing"

	"github.com/algol68/scopechecker/lang/mode"
	"github.com/algol68/scopechecker/lang/symtab"
	"github.com/algol68/scopechecker/lang/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildProgram assembles:
//
//	( outer := loc int )
//
// at outer level 1, where outer is a REF INT declared at level 1 and the
// right-hand side is a LOC generator at the inner level 2 — the classic
// "returning the address of a local" scope violation.
func buildProgram(genLevel, destLevel int) *tree.Node {
	refInt := &mode.Mode{Kind: mode.Ref, SubMode: &mode.Mode{Kind: mode.Plain, Name: "INT"}, Name: "REF INT"}

	destTag := &symtab.Tag{Name: "outer", TagLexLevel: destLevel}
	dest := &tree.Node{Kind: tree.Identifier, Moid: refInt, Tax: destTag}
	destWrap := &tree.Node{Kind: tree.Tertiary, Sub: dest}

	gen := &tree.Node{Kind: tree.Generator, LexLevel: genLevel, Moid: refInt}
	gen.Append(&tree.Node{Kind: tree.LocSymbol}, &tree.Node{Kind: tree.Declarer})

	assignSym := &tree.Node{Kind: tree.AssignSymbol}
	valueUnit := &tree.Node{Kind: tree.Unit, LexLevel: genLevel, Sub: gen}

	destWrap.Next = assignSym
	assignSym.Next = valueUnit

	assignation := &tree.Node{Kind: tree.Assignation, LexLevel: destLevel, Sub: destWrap}

	unit := &tree.Node{Kind: tree.Unit, LexLevel: destLevel, Sub: assignation}

	closeSym := &tree.Node{Kind: tree.CloseSymbol}
	serial := &tree.Node{Kind: tree.SerialClause, Sub: unit, Next: closeSym}
	openSym := &tree.Node{Kind: tree.OpenSymbol, Next: serial}
	closed := &tree.Node{Kind: tree.ClosedClause, Sub: openSym}

	return &tree.Node{Kind: tree.ParticularProgram, Sub: closed}
}

func TestCheckProgramDetectsEscapingLocal(t *testing.T) {
	root := buildProgram(2, 1)

	diags := CheckProgram(root)

	require.Len(t, diags, 1)
	assert.Equal(t, SeverityWarning, diags[0].Severity)
}

func TestCheckProgramAllowsEqualOrOlderLevel(t *testing.T) {
	root := buildProgram(1, 1)

	diags := CheckProgram(root)

	assert.Empty(t, diags)
}

func TestCheckProgramNilRootIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		diags := CheckProgram(nil)
		assert.Empty(t, diags)
	})
}
