// ABOUTME: Scope-bound access to a resolved allocation
// ABOUTME: A view pins its slot so no sweep can evict it

package gc

// View gives access to an allocation and pins it: while the view is open
// the allocation is a root for every sweep. Release the view when done.
type View[T Scanner] struct {
	arena *Arena
	slot  *slot
	value T
	done  bool
}

// Value returns the viewed value.
func (v *View[T]) Value() T {
	return v.value
}

// Address returns the address of the viewed allocation.
func (v *View[T]) Address() Addr {
	return v.slot.addr
}

// Release unpins the allocation. It is idempotent.
func (v *View[T]) Release() {
	v.arena.mu.Lock()
	defer v.arena.mu.Unlock()
	if v.done {
		return
	}
	v.done = true
	v.slot.pins--
}
