// ABOUTME: Core data types for the collectible object graph
// ABOUTME: Defines Object, ObjID, and Roots as exported by an arena snapshot

package graph

// ObjID is the stable address of an arena slot. Zero is never a valid ID
// and is used as the super-root in dominator computations.
type ObjID uint64

// Object represents a single collectible allocation
type Object struct {
	ID      ObjID   // Slot address
	Type    string  // Go type name of the stored value (e.g. "*main.node")
	Size    uint64  // Shallow size in bytes
	Ptrs    []ObjID // IDs of objects this object points to
	Handles int     // Outstanding handles to this object
	Pins    int     // Open views pinning this object
}

// Roots represents the set of objects elected as roots
type Roots struct {
	IDs []ObjID // Object IDs that are roots
}
