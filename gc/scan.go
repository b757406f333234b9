// ABOUTME: Scanner contract and built-in compositions
// ABOUTME: Lets collectible values report their direct out-edges

package gc

import "github.com/prateek/arenagc/graph"

// Addr is the stable identity of an arena slot. Addresses are unique across
// every arena in the process and never reused; 0 is never a valid address.
type Addr = graph.ObjID

// Scanner is implemented by every collectible value.
//
// Allocations returns the addresses of the allocations the value directly
// references right now. It must not include transitive references, and
// must not leave out any reference the value holds: a missing edge is a
// caller bug. Reporting an address that has already been evicted is
// tolerated.
type Scanner interface {
	Allocations() []Addr
}

// ScanFunc adapts an ordinary function to the Scanner interface.
type ScanFunc func() []Addr

// Allocations implements Scanner.
func (f ScanFunc) Allocations() []Addr {
	if f == nil {
		return nil
	}
	return f()
}

// Fields concatenates the edges of each field in order. It is the
// declarative replacement for a derived scan implementation:
//
//	func (n *node) Allocations() []gc.Addr { return gc.Fields(n.left, n.right) }
//
// Nil interface values are skipped.
func Fields(fields ...Scanner) []Addr {
	var addrs []Addr
	for _, f := range fields {
		if f == nil {
			continue
		}
		addrs = append(addrs, f.Allocations()...)
	}
	return addrs
}

// Leaf wraps a value that holds no collectible references.
type Leaf[V any] struct {
	Value V
}

// NewLeaf returns a Leaf holding v.
func NewLeaf[V any](v V) *Leaf[V] {
	return &Leaf[V]{Value: v}
}

// Allocations implements Scanner. A Leaf has no out-edges.
func (*Leaf[V]) Allocations() []Addr { return nil }

// Optional holds a Scanner that may be absent.
type Optional[S Scanner] struct {
	value S
	valid bool
}

// Some returns an Optional holding v.
func Some[S Scanner](v S) Optional[S] {
	return Optional[S]{value: v, valid: true}
}

// None returns an empty Optional.
func None[S Scanner]() Optional[S] {
	return Optional[S]{}
}

// Get returns the held value and whether one is present.
func (o Optional[S]) Get() (S, bool) {
	return o.value, o.valid
}

// Set stores v and returns the previous value, if any.
func (o *Optional[S]) Set(v S) (S, bool) {
	prev, ok := o.value, o.valid
	o.value, o.valid = v, true
	return prev, ok
}

// Clear empties the Optional and returns the previous value, if any.
func (o *Optional[S]) Clear() (S, bool) {
	prev, ok := o.value, o.valid
	var zero S
	o.value, o.valid = zero, false
	return prev, ok
}

// Allocations implements Scanner.
func (o Optional[S]) Allocations() []Addr {
	if !o.valid {
		return nil
	}
	return o.value.Allocations()
}

// Slice is an ordered sequence of Scanners.
type Slice[S Scanner] []S

// Allocations implements Scanner, reporting the elements' edges in order.
func (s Slice[S]) Allocations() []Addr {
	var addrs []Addr
	for _, item := range s {
		addrs = append(addrs, item.Allocations()...)
	}
	return addrs
}
