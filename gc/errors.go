// ABOUTME: Error values returned by the collector
// ABOUTME: Stale handle resolution and consistency check failures

package gc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStaleHandle is matched by every StaleHandleError.
	ErrStaleHandle = errors.New("gc: stale handle")
	// ErrInconsistent is matched by every ConsistencyError.
	ErrInconsistent = errors.New("gc: inconsistent object graph")
)

// StaleHandleError is returned when resolving a handle whose target was
// evicted, or a handle that was released or is nil.
type StaleHandleError struct {
	Addr     Addr
	Released bool
}

func (e *StaleHandleError) Error() string {
	switch {
	case e.Addr == 0:
		return "gc: stale handle: nil handle"
	case e.Released:
		return fmt.Sprintf("gc: stale handle: handle to %d was released", e.Addr)
	default:
		return fmt.Sprintf("gc: stale handle: allocation %d was evicted", e.Addr)
	}
}

// Is reports whether target is ErrStaleHandle.
func (e *StaleHandleError) Is(target error) bool { return target == ErrStaleHandle }

// DanglingEdge is an edge reported by a live slot whose target is not in
// the arena.
type DanglingEdge struct {
	From Addr
	To   Addr
}

// Overclaim describes a slot that receives more internal edges than it has
// outstanding handles. Some Scanner reports a reference it does not own a
// handle for, which can make the arena miss an external anchor.
type Overclaim struct {
	Addr    Addr
	InEdges int
	Handles int
}

// ConsistencyError lists the Scanner contract violations found by Check.
type ConsistencyError struct {
	Dangling    []DanglingEdge
	Overclaimed []Overclaim
}

func (e *ConsistencyError) Error() string {
	var b strings.Builder
	b.WriteString("gc: inconsistent object graph:")
	for _, d := range e.Dangling {
		fmt.Fprintf(&b, " %d->%d dangling;", d.From, d.To)
	}
	for _, o := range e.Overclaimed {
		fmt.Fprintf(&b, " %d has %d in-edges but %d handles;", o.Addr, o.InEdges, o.Handles)
	}
	return strings.TrimSuffix(b.String(), ";")
}

// Is reports whether target is ErrInconsistent.
func (e *ConsistencyError) Is(target error) bool { return target == ErrInconsistent }
