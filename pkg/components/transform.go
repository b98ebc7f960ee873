package components

import (
	"github.com/bxrne/shipcore/pkg/ecs"
	"github.com/bxrne/shipcore/pkg/spatial"
)

// Transform is an entity's pose: position, orientation, and scale. Scale is
// carried for renderers and never read by physics.
type Transform struct {
	Position spatial.Vector3
	Rotation spatial.Quaternion
	Scale    spatial.Vector3
}

// NewTransform builds a Transform at the origin with identity rotation and
// unit scale.
func NewTransform() Transform {
	return Transform{
		Rotation: spatial.Identity(),
		Scale:    spatial.Vector3{X: 1, Y: 1, Z: 1},
	}
}

// Renormalize restores the rotation quaternion to unit length. Composed
// updates (repeated multiplication) drift outside [1-eps, 1+eps] over many
// ticks without this.
func (t *Transform) Renormalize() {
	t.Rotation = t.Rotation.Normalized()
}

func AddTransform(w *ecs.World, id ecs.EntityId, t Transform) (*Transform, error) {
	return ecs.AddComponent(w, id, ecs.TransformKind, t)
}

func GetTransform(w *ecs.World, id ecs.EntityId) (*Transform, error) {
	return ecs.GetComponent[Transform](w, id, ecs.TransformKind)
}

func RemoveTransform(w *ecs.World, id ecs.EntityId) bool {
	return ecs.RemoveComponent(w, id, ecs.TransformKind)
}

// AllTransforms returns the dense Transform slice and parallel owner slice.
func AllTransforms(w *ecs.World) ([]Transform, []ecs.EntityId) {
	return ecs.All[Transform](w, ecs.TransformKind)
}

// SnapshotTransforms copies out every live Transform, decoupled from the
// live pool, for tear-free consumption by a renderer between ticks.
func SnapshotTransforms(w *ecs.World) map[ecs.EntityId]Transform {
	return ecs.Snapshot[Transform](w, ecs.TransformKind)
}
