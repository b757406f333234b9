// ABOUTME: Tests for the Scanner compositions
// ABOUTME: Optional, Slice, Leaf, ScanFunc, and Fields

package gc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFields(t *testing.T) {
	a := New()
	x := newNode(a, "x")
	y := newNode(a, "y")

	var missing *Handle[*node]
	got := Fields(x, nil, missing, Slice[*Handle[*node]]{y, x})

	assert.Equal(t, []Addr{x.Address(), y.Address(), x.Address()}, got)
	assert.Nil(t, Fields())
}

func TestOptional(t *testing.T) {
	a := New()
	x := newNode(a, "x")

	opt := None[*Handle[*node]]()
	assert.Empty(t, opt.Allocations())
	_, ok := opt.Get()
	assert.False(t, ok)

	_, hadPrev := opt.Set(x)
	assert.False(t, hadPrev)
	assert.Equal(t, []Addr{x.Address()}, opt.Allocations())

	prev, ok := opt.Clear()
	assert.True(t, ok)
	assert.True(t, prev.Equal(x))
	assert.Empty(t, opt.Allocations())

	assert.Equal(t, []Addr{x.Address()}, Some(x).Allocations())
}

func TestSliceKeepsOrder(t *testing.T) {
	a := New()
	x, y, z := newNode(a, "x"), newNode(a, "y"), newNode(a, "z")

	s := Slice[*Handle[*node]]{z, x, y}
	assert.Equal(t, []Addr{z.Address(), x.Address(), y.Address()}, s.Allocations())
	assert.Empty(t, Slice[*Handle[*node]](nil).Allocations())
}

func TestLeafAndScanFunc(t *testing.T) {
	assert.Nil(t, NewLeaf(42).Allocations())
	assert.Equal(t, "hello", NewLeaf("hello").Value)

	var nilFunc ScanFunc
	assert.Nil(t, nilFunc.Allocations())
	assert.Equal(t, []Addr{7}, ScanFunc(func() []Addr { return []Addr{7} }).Allocations())
}

func TestReleasedHandleReportsNoEdges(t *testing.T) {
	a := New()
	x := newNode(a, "x")
	c := x.Clone()
	c.Release()

	assert.Nil(t, c.Allocations())
	assert.Equal(t, []Addr{x.Address()}, x.Allocations())
}
