package scope

import (
	"testing"

	"github.com/algol68/scopechecker/lang/mode"
	"github.com/algol68/scopechecker/lang/symtab"
	"github.com/algol68/scopechecker/lang/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeIdentifierParameterIsOneLevelOlder(t *testing.T) {
	c := NewChecker()
	tag := &symtab.Tag{TagLexLevel: 4, Prio: symtab.Parameter}
	p := &tree.Node{Kind: tree.Identifier, Tax: tag, Moid: refMode()}

	var s List
	c.scopeIdentifier(p, &s)
	require.NotNil(t, s)
	assert.Equal(t, 3, s.Tuple.Level)
}

func TestScopeIdentifierHeapIsPrimal(t *testing.T) {
	c := NewChecker()
	tag := &symtab.Tag{TagLexLevel: 4, Heap: symtab.HeapSym}
	p := &tree.Node{Kind: tree.Identifier, Tax: tag, Moid: refMode()}

	var s List
	c.scopeIdentifier(p, &s)
	require.NotNil(t, s)
	assert.Equal(t, PrimalScope, s.Tuple.Level)
}

func TestScopeIdentifierAssignedScopeWins(t *testing.T) {
	c := NewChecker()
	tag := &symtab.Tag{TagLexLevel: 4, ScopeAssigned: true, Scope: 1}
	p := &tree.Node{Kind: tree.Identifier, Tax: tag, Moid: refMode()}

	var s List
	c.scopeIdentifier(p, &s)
	require.NotNil(t, s)
	assert.Equal(t, 1, s.Tuple.Level)
}

func TestScopeIdentifierPlainDeclarationLevel(t *testing.T) {
	c := NewChecker()
	tag := &symtab.Tag{TagLexLevel: 4}
	p := &tree.Node{Kind: tree.Identifier, Tax: tag, Moid: refMode()}

	var s List
	c.scopeIdentifier(p, &s)
	require.NotNil(t, s)
	assert.Equal(t, 4, s.Tuple.Level)
}

func TestScopeIdentifierNonRefPlainModeContributesNothing(t *testing.T) {
	c := NewChecker()
	tag := &symtab.Tag{TagLexLevel: 4}
	p := &tree.Node{Kind: tree.Identifier, Tax: tag, Moid: &mode.Mode{Kind: mode.Plain}}

	var s List
	c.scopeIdentifier(p, &s)
	assert.Nil(t, s)
}

func TestScopeGeneratorLocUsesNonLocalWhenPresent(t *testing.T) {
	c := NewChecker()
	loc := &tree.Node{Kind: tree.LocSymbol}
	outer := symtab.New(0, nil)
	gen := (&tree.Node{Kind: tree.Generator, LexLevel: 3, NonLocal: outer}).Append(loc, &tree.Node{Kind: tree.Declarer})

	var s List
	c.scopeGenerator(gen, &s)
	require.NotNil(t, s)
	assert.Equal(t, 0, s.Tuple.Level)
}

func TestScopeGeneratorLocOwnLevelWithoutNonLocal(t *testing.T) {
	c := NewChecker()
	loc := &tree.Node{Kind: tree.LocSymbol}
	gen := (&tree.Node{Kind: tree.Generator, LexLevel: 3}).Append(loc, &tree.Node{Kind: tree.Declarer})

	var s List
	c.scopeGenerator(gen, &s)
	require.NotNil(t, s)
	assert.Equal(t, 3, s.Tuple.Level)
}

func TestScopeGeneratorHeapIsPrimal(t *testing.T) {
	c := NewChecker()
	heap := &tree.Node{Kind: tree.HeapSymbol}
	gen := (&tree.Node{Kind: tree.Generator, LexLevel: 3}).Append(heap, &tree.Node{Kind: tree.Declarer})

	var s List
	c.scopeGenerator(gen, &s)
	require.NotNil(t, s)
	assert.Equal(t, PrimalScope, s.Tuple.Level)
}

func TestScopeFormulaDisallowsTransientOperand(t *testing.T) {
	c := NewChecker()
	refFlex := &mode.Mode{Kind: mode.Ref, SubMode: &mode.Mode{Kind: mode.Row, Flex: true}}
	rowing := &tree.Node{Kind: tree.Rowing, LexLevel: 2, Sub: &tree.Node{Kind: tree.Denotation, Moid: refFlex}}
	operand := &tree.Node{Kind: tree.Secondary, Sub: rowing}
	formula := (&tree.Node{Kind: tree.Formula, LexLevel: 2}).Append(operand)

	var s List
	c.scopeFormula(formula, &s)

	require.Len(t, c.Diagnostics(), 1)
	assert.Equal(t, SeverityError, c.Diagnostics()[0].Severity)
	assert.True(t, rowing.HasStatus(tree.ScopeErrorMask))
}
