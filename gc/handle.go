// ABOUTME: Typed non-owning references to arena allocations
// ABOUTME: Clone, release, compare, and resolve handles

package gc

import "sync/atomic"

// Handle is a non-owning reference to an allocation of type T. It becomes
// permanently stale once the arena evicts its target. A nil *Handle is a
// valid empty reference.
//
// Handles are pointers so the arena can count them: store a Clone in
// other values, and Release a handle once it is no longer needed.
type Handle[T Scanner] struct {
	arena    *Arena
	slot     *slot
	released atomic.Bool
}

// Address returns the stable address of the target, or 0 for a nil handle.
// It does not change across sweeps.
func (h *Handle[T]) Address() Addr {
	if h == nil {
		return 0
	}
	return h.slot.addr
}

// Equal reports whether h and other refer to the same allocation.
func (h *Handle[T]) Equal(other *Handle[T]) bool {
	return h.Address() == other.Address()
}

// Allocations implements Scanner: a handle's only edge is its target.
// Nil and released handles report nothing.
func (h *Handle[T]) Allocations() []Addr {
	if h == nil || h.released.Load() {
		return nil
	}
	return []Addr{h.slot.addr}
}

// Alive reports whether the handle can currently be resolved.
func (h *Handle[T]) Alive() bool {
	if h == nil || h.released.Load() {
		return false
	}
	h.arena.mu.Lock()
	defer h.arena.mu.Unlock()
	return !h.slot.evicted
}

// Clone returns a new handle to the same allocation. Cloning a released
// handle yields a released handle; cloning a stale one yields a stale one.
func (h *Handle[T]) Clone() *Handle[T] {
	if h == nil {
		return nil
	}
	c := &Handle[T]{arena: h.arena, slot: h.slot}
	if h.released.Load() {
		c.released.Store(true)
		return c
	}

	h.arena.mu.Lock()
	defer h.arena.mu.Unlock()
	if !h.slot.evicted {
		h.slot.handles++
	}
	return c
}

// Release gives up this handle's claim on its target. It is idempotent
// and a no-op on nil or stale handles.
func (h *Handle[T]) Release() {
	if h == nil {
		return
	}
	h.arena.mu.Lock()
	defer h.arena.mu.Unlock()
	if !h.released.CompareAndSwap(false, true) {
		return
	}
	if h.slot.evicted {
		return
	}
	h.slot.handles--
	h.arena.cfg.metrics.RecordRelease()
}

// Resolve returns a View that keeps the target alive until the view is
// released. It fails with a *StaleHandleError if the target was evicted or
// the handle was released or is nil.
func (h *Handle[T]) Resolve() (*View[T], error) {
	if h == nil {
		return nil, &StaleHandleError{}
	}
	h.arena.mu.Lock()
	defer h.arena.mu.Unlock()

	if h.released.Load() {
		return nil, &StaleHandleError{Addr: h.slot.addr, Released: true}
	}
	if h.slot.evicted {
		return nil, &StaleHandleError{Addr: h.slot.addr}
	}

	h.slot.pins++
	v := &View[T]{arena: h.arena, slot: h.slot}
	if h.slot.value != nil {
		v.value = h.slot.value.(T)
	}
	return v, nil
}

// MustResolve is like Resolve but panics if the handle is stale.
func (h *Handle[T]) MustResolve() *View[T] {
	v, err := h.Resolve()
	if err != nil {
		panic(err)
	}
	return v
}

// Borrow resolves h, calls fn with the value, and releases the view when
// fn returns.
func (h *Handle[T]) Borrow(fn func(T)) error {
	v, err := h.Resolve()
	if err != nil {
		return err
	}
	defer v.Release()
	fn(v.Value())
	return nil
}
