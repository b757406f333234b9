// ABOUTME: Tests for the consistency checker and debug-mode sweeps
// ABOUTME: Covers dangling edges, unbacked edges, and warn-level logging

package gc

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCleanGraph(t *testing.T) {
	a := New()
	x, y := newNode(a, "x"), newNode(a, "y")
	link(t, x, y)
	link(t, y, x)

	assert.NoError(t, a.Check())
	assert.NoError(t, New().Check())
}

func TestCheckFindsDanglingEdge(t *testing.T) {
	a := New()
	gone := newNode(a, "gone")
	addr := gone.Address()
	gone.Release()
	a.Sweep()

	ref := Allocate(a, &rawRef{addrs: []Addr{addr}})

	err := a.Check()
	require.ErrorIs(t, err, ErrInconsistent)

	var ce *ConsistencyError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, []DanglingEdge{{From: ref.Address(), To: addr}}, ce.Dangling)
	assert.Empty(t, ce.Overclaimed)
	assert.Contains(t, err.Error(), "dangling")
}

func TestCheckFindsUnbackedEdge(t *testing.T) {
	a := New()
	x := newNode(a, "x")
	Allocate(a, &rawRef{addrs: []Addr{x.Address()}})
	Allocate(a, &rawRef{addrs: []Addr{x.Address()}})

	var ce *ConsistencyError
	require.ErrorAs(t, a.Check(), &ce)
	assert.Empty(t, ce.Dangling)
	assert.Equal(t, []Overclaim{{Addr: x.Address(), InEdges: 2, Handles: 1}}, ce.Overclaimed)

	// Check never mutates the arena.
	assert.Equal(t, 3, a.AllocationCount())
	assert.Zero(t, a.Stats().Sweeps)
}

func TestDebugChecksLogFindings(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a := New(WithLogger(logger), WithDebugChecks(true))

	x := newNode(a, "x")
	Allocate(a, &rawRef{addrs: []Addr{x.Address(), foreignAddr}})
	Allocate(a, &rawRef{addrs: []Addr{x.Address()}})
	a.Sweep()

	out := buf.String()
	assert.Contains(t, out, "level=WARN msg=\"dangling edge\"")
	assert.Contains(t, out, fmt.Sprintf("to=%d", foreignAddr))
	assert.Contains(t, out, "msg=\"edge not backed by a handle\"")
	assert.Contains(t, out, "msg=\"sweep completed\"")
	assert.Contains(t, out, "msg=allocated")
}

func TestDebugChecksOffByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	a := New(WithLogger(logger))

	Allocate(a, &rawRef{addrs: []Addr{foreignAddr}})
	a.Sweep()

	assert.Empty(t, buf.String())
	assert.Equal(t, 1, a.Stats().LastSweep.DanglingEdges)
}
