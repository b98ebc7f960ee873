package systems

import (
	"github.com/bxrne/shipcore/pkg/components"
	"github.com/bxrne/shipcore/pkg/ecs"
)

// AISystem gives a bare "face travel direction" behavior to autopilot
// entities that have no scripted-flight controller driving them. It exists
// mainly to exercise the scheduler's distance-based LOD policy; richer
// behavior trees are scene-specific and out of the core's scope.
type AISystem struct{}

func NewAISystem() *AISystem {
	return &AISystem{}
}

func (sys *AISystem) Update(world *ecs.World, delta float64) error {
	authorities, owners := components.AllControlAuthorities(world)
	for i := range authorities {
		ca := &authorities[i]
		if ca.Mode != components.Autopilot {
			continue
		}
		id := owners[i]
		if _, err := components.GetScriptedFlight(world, id); err == nil {
			continue // a scripted controller already owns this entity's commands
		}

		physics, err := components.GetPhysics(world, id)
		if err != nil {
			continue
		}
		if physics.Velocity.Magnitude() < 1e-6 {
			continue
		}
		ca.InputLinear = physics.Velocity.Normalized().ClampScalar(-1, 1)
	}
	return nil
}

// AILODPolicy scales the AI system's effective frequency between minHz and
// maxHz by squared distance from each autopilot entity to the player,
// picking the policy's required frequency as the maximum over all
// autopilot entities so the nearest one is never under-serviced.
func AILODPolicy(minHz, maxHz, referenceDistanceSquared float64) func(world *ecs.World) float64 {
	return func(world *ecs.World) float64 {
		player := world.GetPlayerEntity()
		playerTransform, err := components.GetTransform(world, player)
		if err != nil {
			return minHz
		}

		authorities, owners := components.AllControlAuthorities(world)
		best := minHz
		for i := range authorities {
			if authorities[i].Mode != components.Autopilot {
				continue
			}
			tr, err := components.GetTransform(world, owners[i])
			if err != nil {
				continue
			}
			distSq := tr.Position.Subtract(playerTransform.Position).Dot(tr.Position.Subtract(playerTransform.Position))
			freq := maxHz
			if distSq > 0 {
				ratio := referenceDistanceSquared / distSq
				if ratio < 1 {
					freq = minHz + (maxHz-minHz)*ratio
				}
			}
			if freq > best {
				best = freq
			}
		}
		if best > maxHz {
			best = maxHz
		}
		return best
	}
}
