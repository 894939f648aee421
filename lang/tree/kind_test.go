package tree_test

import (
	"testing"

	"github.com/algol68/scopechecker/lang/tree"
	"github.com/stretchr/testify/assert"
)

func TestIsCoercion(t *testing.T) {
	coercions := []tree.Kind{
		tree.Voiding, tree.Dereferencing, tree.Deproceduring,
		tree.Uniting, tree.Rowing, tree.Widening, tree.Proceduring,
	}
	for _, k := range coercions {
		assert.True(t, k.IsCoercion(), k.String())
	}
	assert.False(t, tree.Unit.IsCoercion())
	assert.False(t, tree.Identifier.IsCoercion())
	assert.False(t, tree.BadKind.IsCoercion())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "identifier", tree.Identifier.String())
	assert.Equal(t, "unknown-kind", tree.Kind(9999).String())
}
