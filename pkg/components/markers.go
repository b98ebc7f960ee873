package components

import "github.com/bxrne/shipcore/pkg/ecs"

// Renderable and Player are pure marker components: their presence in the
// mask is the signal systems query on, and they carry no data.
type Renderable struct{}

type Player struct{}

// Camera follows Target's Transform, smoothing toward it rather than
// snapping, so a chase camera doesn't visibly teleport on a high-speed
// maneuver.
type Camera struct {
	Target    ecs.EntityId
	Smoothing float64 // [0, 1]; 0 = rigid lock, closer to 1 = sluggish follow
}

// Collision carries the broad-phase bounding sphere the collision system
// tests entities against; a zero Radius excludes the entity from testing.
type Collision struct {
	Radius float64
}

func AddRenderable(w *ecs.World, id ecs.EntityId) (*Renderable, error) {
	return ecs.AddComponent(w, id, ecs.RenderableKind, Renderable{})
}

func AddCamera(w *ecs.World, id ecs.EntityId, target ecs.EntityId, smoothing float64) (*Camera, error) {
	return ecs.AddComponent(w, id, ecs.CameraKind, Camera{Target: target, Smoothing: smoothing})
}

func AddCollision(w *ecs.World, id ecs.EntityId, radius float64) (*Collision, error) {
	return ecs.AddComponent(w, id, ecs.CollisionKind, Collision{Radius: radius})
}

func AddPlayer(w *ecs.World, id ecs.EntityId) (*Player, error) {
	return ecs.AddComponent(w, id, ecs.PlayerKind, Player{})
}

func AllCameras(w *ecs.World) ([]Camera, []ecs.EntityId) {
	return ecs.All[Camera](w, ecs.CameraKind)
}

func AllCollisions(w *ecs.World) ([]Collision, []ecs.EntityId) {
	return ecs.All[Collision](w, ecs.CollisionKind)
}
