package scope

import (
	"testing"

	"github.com/algol68/scopechecker/lang/mode"
	"github.com/algol68/scopechecker/lang/symtab"
	"github.com/algol68/scopechecker/lang/tree"
	"github.com/stretchr/testify/assert"
)

// buildIdentityDeclaration builds "x = <value>" at level declLevel, where
// value is a bare identifier reference at valueLevel (older or equal to
// declLevel, never younger — an identity declaration's value determines
// the identity's own narrower scope only when it is genuinely older).
func buildIdentityDeclaration(declLevel, valueLevel int) (*tree.Node, *symtab.Tag) {
	refInt := &mode.Mode{Kind: mode.Ref, SubMode: &mode.Mode{Kind: mode.Plain}}
	xTag := &symtab.Tag{Name: "x", TagLexLevel: declLevel, Moid: &mode.Mode{Kind: mode.Plain}}
	valueTag := &symtab.Tag{Name: "v", TagLexLevel: valueLevel}
	value := &tree.Node{Kind: tree.Identifier, Moid: refInt, Tax: valueTag, LexLevel: declLevel}
	unit := &tree.Node{Kind: tree.Unit, LexLevel: declLevel, Sub: value}

	defID := &tree.Node{Kind: tree.DefiningIdentifier, Tax: xTag, LexLevel: declLevel}
	defID.Next = &tree.Node{Kind: tree.AssignSymbol}
	defID.Next.Next = unit

	return defID, xTag
}

func TestScopeIdentityDeclarationNarrowsScope(t *testing.T) {
	c := NewChecker()
	defID, xTag := buildIdentityDeclaration(3, 1)

	c.scopeIdentityDeclaration(defID)

	assert.True(t, xTag.ScopeAssigned)
	assert.Equal(t, 1, xTag.Scope)
}

func TestScopeIdentityDeclarationKeepsOwnLevelWhenNotNarrower(t *testing.T) {
	c := NewChecker()
	defID, xTag := buildIdentityDeclaration(2, 2)

	c.scopeIdentityDeclaration(defID)

	assert.False(t, xTag.ScopeAssigned)
}

func TestScopeArgumentsRejectsTransientArgument(t *testing.T) {
	c := NewChecker()
	refFlex := &mode.Mode{Kind: mode.Ref, SubMode: &mode.Mode{Kind: mode.Row, Flex: true}}
	rowing := &tree.Node{Kind: tree.Rowing, LexLevel: 2, Sub: &tree.Node{Kind: tree.Denotation, Moid: refFlex}}
	arg := &tree.Node{Kind: tree.Unit, LexLevel: 2, Sub: rowing}

	c.scopeArguments(arg)

	assert.Len(t, c.Diagnostics(), 1)
	assert.Equal(t, SeverityError, c.Diagnostics()[0].Severity)
}
