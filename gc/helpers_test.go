// ABOUTME: Shared fixtures for collector tests
// ABOUTME: A linked node type and helpers to wire handles between nodes

package gc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// foreignAddr is far above any address a test allocates.
const foreignAddr Addr = 1 << 62

type node struct {
	name  string
	next  *Handle[*node]
	edges Slice[*Handle[*node]]
}

func (n *node) Allocations() []Addr {
	return Fields(n.next, n.edges)
}

// rawRef reports an address without owning a handle to it, which breaks
// the Scanner contract on purpose.
type rawRef struct {
	addrs []Addr
}

func (r *rawRef) Allocations() []Addr { return r.addrs }

func newNode(a *Arena, name string) *Handle[*node] {
	return Allocate(a, &node{name: name})
}

// link makes from point at to through a fresh clone.
func link(t *testing.T, from, to *Handle[*node]) {
	t.Helper()
	require.NoError(t, from.Borrow(func(n *node) {
		n.edges = append(n.edges, to.Clone())
	}))
}

func nameOf(t *testing.T, h *Handle[*node]) string {
	t.Helper()
	var name string
	require.NoError(t, h.Borrow(func(n *node) { name = n.name }))
	return name
}

func releaseAll(handles ...*Handle[*node]) {
	for _, h := range handles {
		h.Release()
	}
}
