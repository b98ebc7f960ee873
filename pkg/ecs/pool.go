package ecs

// componentPool is a dense, cache-friendly store for one component kind. A
// sparse slot-to-index table maps an entity's slot to its position in the
// dense slice, so add/remove of unrelated components never invalidates it.
// Removal swaps the last element into the hole and fixes up the moved
// entity's index, keeping the dense slice contiguous without shifting.
type componentPool[T any] struct {
	dense    []T
	entities []EntityId // entities[i] is the owner of dense[i]
	sparse   []int32    // sparse[slot] is the index into dense, or -1
}

func newComponentPool[T any](capacity int) *componentPool[T] {
	sparse := make([]int32, capacity)
	for i := range sparse {
		sparse[i] = -1
	}
	return &componentPool[T]{
		dense:    make([]T, 0, capacity),
		entities: make([]EntityId, 0, capacity),
		sparse:   sparse,
	}
}

func (p *componentPool[T]) has(id EntityId) bool {
	idx := p.sparse[id.slot]
	return idx >= 0 && p.entities[idx] == id
}

func (p *componentPool[T]) get(id EntityId) (*T, bool) {
	idx := p.sparse[id.slot]
	if idx < 0 || p.entities[int(idx)] != id {
		return nil, false
	}
	return &p.dense[idx], true
}

// insert adds or overwrites the component for id and returns a stable
// pointer into the dense slice.
func (p *componentPool[T]) insert(id EntityId, value T) *T {
	if idx := p.sparse[id.slot]; idx >= 0 && p.entities[idx] == id {
		p.dense[idx] = value
		return &p.dense[idx]
	}
	p.sparse[id.slot] = int32(len(p.dense))
	p.dense = append(p.dense, value)
	p.entities = append(p.entities, id)
	return &p.dense[len(p.dense)-1]
}

func (p *componentPool[T]) remove(id EntityId) bool {
	idx := p.sparse[id.slot]
	if idx < 0 || p.entities[idx] != id {
		return false
	}
	last := len(p.dense) - 1
	movedOwner := p.entities[last]

	p.dense[idx] = p.dense[last]
	p.entities[idx] = movedOwner
	p.sparse[movedOwner.slot] = idx

	p.dense = p.dense[:last]
	p.entities = p.entities[:last]
	p.sparse[id.slot] = -1
	return true
}

// all returns the dense slice and parallel owner slice for iteration. The
// caller must not retain the slices across a mutation of this pool.
func (p *componentPool[T]) all() ([]T, []EntityId) {
	return p.dense, p.entities
}

func (p *componentPool[T]) len() int {
	return len(p.dense)
}
