package tree_test

import (
	"testing"

	"github.com/algol68/scopechecker/lang/tree"
	"github.com/stretchr/testify/assert"
)

func TestNavigation(t *testing.T) {
	leaf1 := &tree.Node{Kind: tree.Identifier}
	leaf2 := &tree.Node{Kind: tree.Identifier}
	mid := (&tree.Node{Kind: tree.Unit}).Append(leaf1, leaf2)
	root := (&tree.Node{Kind: tree.ParticularProgram}).Append(mid)

	assert.Same(t, mid, root.Sub)
	assert.Same(t, leaf1, root.SubSub())
	assert.Same(t, leaf2, root.Sub.NextSub())
	assert.Nil(t, root.Next)
	assert.Nil(t, root.NextSub())
	assert.Nil(t, root.NextNext())
}

func TestChildren(t *testing.T) {
	a := &tree.Node{Kind: tree.Identifier}
	b := &tree.Node{Kind: tree.Denotation}
	c := &tree.Node{Kind: tree.Formula}
	root := (&tree.Node{Kind: tree.CollateralClause}).Append(a, b, c)

	assert.Equal(t, []*tree.Node{a, b, c}, root.Children())
	assert.Nil(t, (*tree.Node)(nil).Children())
}

func TestIsAndStatus(t *testing.T) {
	n := &tree.Node{Kind: tree.Unit}
	assert.True(t, n.Is(tree.Unit))
	assert.False(t, n.Is(tree.Formula))
	assert.True(t, n.IsOneOf(tree.Formula, tree.Unit))
	assert.False(t, n.IsOneOf(tree.Formula, tree.Slice))

	assert.False(t, n.HasStatus(tree.ScopeErrorMask))
	n.SetStatus(tree.ScopeErrorMask)
	assert.True(t, n.HasStatus(tree.ScopeErrorMask))
	assert.False(t, n.HasStatus(tree.InterruptibleMask))
	n.SetStatus(tree.InterruptibleMask)
	assert.True(t, n.HasStatus(tree.ScopeErrorMask|tree.InterruptibleMask))
}

func TestNilReceiverSafety(t *testing.T) {
	var n *tree.Node
	assert.False(t, n.Is(tree.Unit))
	assert.False(t, n.IsOneOf(tree.Unit))
	assert.False(t, n.HasStatus(tree.ScopeErrorMask))
	assert.Nil(t, n.NextNext())
	assert.Nil(t, n.SubNext())
	assert.Nil(t, n.NextSub())
	assert.Nil(t, n.SubSub())
	n.SetStatus(tree.ScopeErrorMask) // must not panic
}
