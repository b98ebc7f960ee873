package ecs

import "fmt"

// EntityId is an opaque handle: a slot index paired with a generation
// counter. Reusing a slot after destroy bumps its generation, so a stale id
// held by a caller fails every lookup instead of silently aliasing the new
// occupant.
type EntityId struct {
	slot       uint32
	generation uint32
}

// InvalidEntity is the reserved sentinel for "no entity". It is also the
// Go zero value, so a zero-initialized EntityId is never mistaken for a
// live one.
var InvalidEntity = EntityId{}

// String renders the id for logs and error messages.
func (id EntityId) String() string {
	return fmt.Sprintf("Entity(%d#%d)", id.slot, id.generation)
}

// Slot exposes the raw slot index, mainly for pool indexing within this
// package and its siblings.
func (id EntityId) Slot() uint32 {
	return id.slot
}

// Generation exposes the raw generation counter.
func (id EntityId) Generation() uint32 {
	return id.generation
}
