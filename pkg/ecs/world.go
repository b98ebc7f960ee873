package ecs

import "github.com/zerodha/logf"

// anyPool is the type-erased subset of componentPool operations that do not
// need to know the concrete component type: presence checks and removal.
// Operations that return or accept component values (get/insert) go through
// the generic free functions below, which recover the concrete type.
type anyPool interface {
	has(id EntityId) bool
	remove(id EntityId) bool
}

// InputState is the read-only snapshot of normalized control axes the
// control system samples from. Production of it is the input collaborator's
// job; the core only requires that one snapshot is visible per tick and
// that it does not change mid-tick.
type InputState struct {
	Pitch   float64
	Yaw     float64
	Roll    float64
	Thrust  float64
	Strafe  float64
	Vertical float64
	Boost   float64
	Brake   bool
}

// World owns all entities and their component storage. Component pools are
// created lazily, one per kind, the first time a component of that kind is
// added anywhere in the world.
type World struct {
	capacity int
	nextSlot uint32
	freelist []uint32

	generations []uint32
	alive       []bool
	masks       []ComponentMask

	pools [numComponentKinds]any

	inputState   InputState
	playerEntity EntityId

	destroyQueue []EntityId

	log logf.Logger
}

// NewWorld allocates a world with a fixed entity capacity, logging missing-
// component lookups and other store-level events with log.
func NewWorld(capacity int, log logf.Logger) *World {
	return &World{
		capacity:    capacity,
		generations: make([]uint32, capacity),
		alive:       make([]bool, capacity),
		masks:       make([]ComponentMask, capacity),
		log:         log,
	}
}

// Capacity returns the configured maximum entity count.
func (w *World) Capacity() int {
	return w.capacity
}

// Len returns the number of currently live entities.
func (w *World) Len() int {
	n := 0
	for _, a := range w.alive {
		if a {
			n++
		}
	}
	return n
}

// Create allocates a new entity, reusing a destroyed slot (with its
// generation bumped) when one is available.
func (w *World) Create() (EntityId, error) {
	var slot uint32
	if n := len(w.freelist); n > 0 {
		slot = w.freelist[n-1]
		w.freelist = w.freelist[:n-1]
	} else {
		if int(w.nextSlot) >= w.capacity {
			return InvalidEntity, ErrCapacityExhausted("world is at capacity %d", w.capacity)
		}
		slot = w.nextSlot
		w.nextSlot++
	}

	w.generations[slot]++
	w.alive[slot] = true
	w.masks[slot] = 0

	return EntityId{slot: slot, generation: w.generations[slot]}, nil
}

// IsValid reports whether id refers to a currently live entity.
func (w *World) IsValid(id EntityId) bool {
	if id == InvalidEntity {
		return false
	}
	if int(id.slot) >= len(w.generations) {
		return false
	}
	return w.alive[id.slot] && w.generations[id.slot] == id.generation
}

// Destroy releases id's component slots and marks its slot dead so stale
// copies of id fail future lookups; Create bumps the slot's generation when
// it reuses the slot. Returns false for an already-stale or invalid id
// (idempotent).
func (w *World) Destroy(id EntityId) bool {
	if !w.IsValid(id) {
		return false
	}
	for kind := ComponentKind(0); kind < numComponentKinds; kind++ {
		if p, ok := w.pools[kind].(anyPool); ok {
			p.remove(id)
		}
	}
	w.alive[id.slot] = false
	w.masks[id.slot] = 0
	if id == w.playerEntity {
		w.playerEntity = InvalidEntity
	}
	w.freelist = append(w.freelist, id.slot)
	return true
}

// HasComponent reports whether id owns a component of kind.
func (w *World) HasComponent(id EntityId, kind ComponentKind) bool {
	if !w.IsValid(id) {
		return false
	}
	return w.masks[id.slot].Has(kind)
}

// Mask returns id's current component mask, or zero for an invalid id.
func (w *World) Mask(id EntityId) ComponentMask {
	if !w.IsValid(id) {
		return 0
	}
	return w.masks[id.slot]
}

func getPool[T any](w *World, kind ComponentKind) *componentPool[T] {
	if w.pools[kind] == nil {
		w.pools[kind] = newComponentPool[T](w.capacity)
	}
	return w.pools[kind].(*componentPool[T])
}

// AddComponent attaches value as id's component of kind, allocating the
// pool for that kind on first use. Overwrites an existing component of the
// same kind in place.
func AddComponent[T any](w *World, id EntityId, kind ComponentKind, value T) (*T, error) {
	if !w.IsValid(id) {
		return nil, ErrInvalidEntity(id)
	}
	pool := getPool[T](w, kind)
	ptr := pool.insert(id, value)
	w.masks[id.slot] = w.masks[id.slot].With(kind)
	return ptr, nil
}

// RemoveComponent detaches id's component of kind, if present. No-op false
// if the entity never had it.
func RemoveComponent(w *World, id EntityId, kind ComponentKind) bool {
	if !w.IsValid(id) {
		return false
	}
	p, ok := w.pools[kind].(anyPool)
	if !ok || !p.remove(id) {
		return false
	}
	w.masks[id.slot] = w.masks[id.slot].Without(kind)
	return true
}

// GetComponent returns a stable pointer to id's component of kind, an
// InvalidEntityError error if the id is stale, or a MissingComponent error
// if the entity lacks it.
func GetComponent[T any](w *World, id EntityId, kind ComponentKind) (*T, error) {
	if !w.IsValid(id) {
		return nil, ErrInvalidEntity(id)
	}
	pool := getPool[T](w, kind)
	v, ok := pool.get(id)
	if !ok {
		w.log.Debug("missing component", "entity", id.String(), "kind", kind.String())
		return nil, ErrMissingComponent(id, kind)
	}
	return v, nil
}

// All returns the dense component slice and parallel owner slice for kind,
// for O(population) iteration without allocation. Callers must not mutate
// pool membership (add/remove of that kind) while holding these slices.
func All[T any](w *World, kind ComponentKind) ([]T, []EntityId) {
	return getPool[T](w, kind).all()
}

// Snapshot copies out every live component of kind into a map keyed by
// owner, breaking any aliasing with the live pool. Used to hand renderers
// and other external readers a tear-free view between ticks.
func Snapshot[T any](w *World, kind ComponentKind) map[EntityId]T {
	dense, owners := getPool[T](w, kind).all()
	out := make(map[EntityId]T, len(dense))
	for i, owner := range owners {
		out[owner] = dense[i]
	}
	return out
}

// SetInputState atomically replaces the world's view of player input. Must
// be called at most once per frame, before the scheduler tick.
func (w *World) SetInputState(s InputState) {
	w.inputState = s
}

// GetInputState returns the current input snapshot.
func (w *World) GetInputState() InputState {
	return w.inputState
}

// SetPlayerEntity designates which entity the control system fills from the
// input state.
func (w *World) SetPlayerEntity(id EntityId) {
	w.playerEntity = id
}

// GetPlayerEntity returns the designated player entity, or InvalidEntity if
// none has been set.
func (w *World) GetPlayerEntity() EntityId {
	return w.playerEntity
}

// RequestDestroy enqueues id for destruction at the next Flush, so systems
// never mutate world structure mid-tick.
func (w *World) RequestDestroy(id EntityId) {
	w.destroyQueue = append(w.destroyQueue, id)
}

// Flush applies every queued structural mutation. The scheduler calls this
// once between ticks.
func (w *World) Flush() {
	for _, id := range w.destroyQueue {
		w.Destroy(id)
	}
	w.destroyQueue = w.destroyQueue[:0]
}
