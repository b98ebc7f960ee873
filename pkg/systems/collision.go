package systems

import (
	"math"

	engoecs "github.com/EngoEngine/ecs"
	"github.com/bxrne/shipcore/pkg/components"
	"github.com/bxrne/shipcore/pkg/ecs"
	"github.com/zerodha/logf"
)

// Contact records one detected overlap between two colliding entities. ID
// is a throwaway handle used only to give each contact a stable identity
// for the duration it's reported, the same role EngoEngine's BasicEntity
// plays for the teacher's component structs.
type Contact struct {
	engoecs.BasicEntity
	A, B     ecs.EntityId
	Distance float64
}

// CollisionSystem does broad-phase sphere-overlap detection across every
// entity carrying a Collision radius and a Transform. It does not resolve
// collisions (no bounce, no penetration correction); that is scene policy
// layered on top of the core.
type CollisionSystem struct {
	log     logf.Logger
	Contacts []Contact
}

func NewCollisionSystem(log logf.Logger) *CollisionSystem {
	return &CollisionSystem{log: log}
}

func (sys *CollisionSystem) Update(world *ecs.World, delta float64) error {
	sys.Contacts = sys.Contacts[:0]

	colliders, owners := components.AllCollisions(world)
	positions := make([]struct {
		id     ecs.EntityId
		radius float64
		x, y, z float64
	}, 0, len(colliders))

	for i := range colliders {
		if colliders[i].Radius <= 0 {
			continue
		}
		tr, err := components.GetTransform(world, owners[i])
		if err != nil {
			continue
		}
		positions = append(positions, struct {
			id      ecs.EntityId
			radius  float64
			x, y, z float64
		}{owners[i], colliders[i].Radius, tr.Position.X, tr.Position.Y, tr.Position.Z})
	}

	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			a, b := positions[i], positions[j]
			dx, dy, dz := a.x-b.x, a.y-b.y, a.z-b.z
			distSq := dx*dx + dy*dy + dz*dz
			radiusSum := a.radius + b.radius
			if distSq <= radiusSum*radiusSum {
				contact := Contact{A: a.id, B: b.id, Distance: math.Sqrt(distSq)}
				contact.BasicEntity = engoecs.NewBasic()
				sys.Contacts = append(sys.Contacts, contact)
				sys.log.Debug("collision contact", "a", a.id.String(), "b", b.id.String())
			}
		}
	}
	return nil
}
