package mode_test

import (
	"testing"

	"github.com/algol68/scopechecker/lang/mode"
	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	intM := &mode.Mode{Kind: mode.Plain, Name: "INT"}
	flexRowInt := &mode.Mode{Kind: mode.Row, SubMode: intM, Flex: true, HasRows: true}
	refFlexRowInt := &mode.Mode{Kind: mode.Ref, SubMode: flexRowInt}
	refRefFlexRowInt := &mode.Mode{Kind: mode.Ref, SubMode: refFlexRowInt}
	procM := &mode.Mode{Kind: mode.Proc}
	formatM := &mode.Mode{Kind: mode.Format}
	unionM := &mode.Mode{Kind: mode.Union}
	fixedRowInt := &mode.Mode{Kind: mode.Row, SubMode: intM, HasRows: true}
	refFixedRowInt := &mode.Mode{Kind: mode.Ref, SubMode: fixedRowInt}

	assert.False(t, mode.IsRef(intM))
	assert.True(t, mode.IsRef(refFlexRowInt))
	assert.True(t, mode.IsProc(procM))
	assert.True(t, mode.IsFormat(formatM))
	assert.True(t, mode.IsUnion(unionM))

	assert.True(t, mode.HasRows(flexRowInt))
	assert.False(t, mode.HasRows(intM))

	assert.True(t, mode.IsRefFlex(refFlexRowInt))
	assert.False(t, mode.IsRefFlex(refFixedRowInt))

	assert.True(t, mode.IsRefToRefOrFlex(refFlexRowInt))
	assert.True(t, mode.IsRefToRefOrFlex(refRefFlexRowInt))
	assert.False(t, mode.IsRefToRefOrFlex(refFixedRowInt))
	assert.False(t, mode.IsRefToRefOrFlex(intM))
}

func TestNilMode(t *testing.T) {
	assert.False(t, mode.IsRef(nil))
	assert.False(t, mode.IsProc(nil))
	assert.False(t, mode.IsFormat(nil))
	assert.False(t, mode.IsUnion(nil))
	assert.False(t, mode.HasRows(nil))
	assert.False(t, mode.IsRefFlex(nil))
	assert.False(t, mode.IsRefToRefOrFlex(nil))
	assert.Equal(t, "<no mode>", (*mode.Mode)(nil).String())
}
