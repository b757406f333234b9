// ABOUTME: Package documentation for the arena garbage collector
// ABOUTME: Describes handles, views, sweeping, and the ownership rules

// Package gc implements an arena-based garbage collector for graph-shaped
// data that may contain cycles.
//
// Values are handed to an Arena with Allocate, which returns a Handle. A
// Handle is a non-owning reference identified by a stable Addr. Values
// reference each other by storing Handle clones in their fields and report
// those references through the Scanner contract. Sweep evicts every
// allocation that is unreachable from outside the arena.
//
// # Roots
//
// The arena cannot see the host's variables, so roots are approximated: a
// slot is a root when it is pinned by an open View, or when it has more
// outstanding handles than in-edges reported by other slots. The heuristic
// may over-retain but never under-retains as long as handles are owned as
// described below.
//
// # Handle ownership
//
//   - A handle stored inside a collectible value must be a Clone made for it.
//   - Call Release on a handle when dropping it, including when replacing a
//     stored field.
//   - Handles stored inside an allocation are released by the arena when it
//     evicts that allocation; do not Release them afterwards. The arena
//     sees only the addresses a value reports, not the Handle values, so a
//     later Release of such a handle drops its target's count a second
//     time and can get the target collected while still in use.
//   - Addresses are unique across all arenas. A handle into another arena
//     stored in a value is reported as an unknown address and ignored.
//
// # Concurrency
//
// Every operation serializes on a single mutex owned by the arena. Scanner
// implementations run while that mutex is held and must not call back into
// the arena.
package gc
