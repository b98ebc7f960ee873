package systems

import (
	"math"

	"github.com/bxrne/shipcore/pkg/components"
	"github.com/bxrne/shipcore/pkg/ecs"
	"github.com/bxrne/shipcore/pkg/spatial"
)

// flightAssistDeadzone is how close to zero the player's own angular input
// must be before flight assist adds counter-rotation on that axis.
const flightAssistDeadzone = 0.05

// ControlSystem maps the current input snapshot (or a scripted command
// already written into ControlAuthority) into thruster commands. It must
// never clear commands for entities it does not own, so scripted flight
// composes with it per the ordering contract.
type ControlSystem struct{}

func NewControlSystem() *ControlSystem {
	return &ControlSystem{}
}

func (sys *ControlSystem) Update(world *ecs.World, delta float64) error {
	input := world.GetInputState()
	player := world.GetPlayerEntity()

	authorities, owners := components.AllControlAuthorities(world)
	for i := range authorities {
		ca := &authorities[i]
		id := owners[i]

		th, err := components.GetThruster(world, id)
		if err != nil {
			continue
		}

		if ca.Mode == components.Autopilot || (ca.ControlledBy != id && ca.ControlledBy != ecs.InvalidEntity) {
			// A scripted controller (or some other agent) already wrote
			// InputLinear/InputAngular this tick; only apply sensitivity
			// and assist, don't resample the player snapshot.
		} else if id == player {
			ca.InputLinear = spatial.Vector3{X: input.Strafe, Y: input.Vertical, Z: input.Thrust - brakeToFloat(input.Brake)}
			ca.InputAngular = spatial.Vector3{X: input.Pitch, Y: input.Yaw, Z: input.Roll}
		} else {
			continue
		}

		linear := applySensitivity(ca.InputLinear, ca.Sensitivity)
		angular := applySensitivity(ca.InputAngular, ca.Sensitivity)

		if ca.FlightAssistEnabled && ca.Mode == components.Assisted {
			if physics, err := components.GetPhysics(world, id); err == nil {
				angular = applyFlightAssist(angular, ca.InputAngular, physics.AngularVelocity, ca.FlightAssistStrength)
			}
		}

		th.SetLinearCommand(linear)
		th.SetAngularCommand(angular)
	}
	return nil
}

func brakeToFloat(brake bool) float64 {
	if brake {
		return 1
	}
	return 0
}

// applySensitivity implements the contract curve y = sign(x) * x^2 * k,
// clamped to [-1, 1]: fine control near center, aggressive at the edges.
func applySensitivity(v spatial.Vector3, sensitivity float64) spatial.Vector3 {
	return spatial.Vector3{
		X: sensitivityCurve(v.X, sensitivity),
		Y: sensitivityCurve(v.Y, sensitivity),
		Z: sensitivityCurve(v.Z, sensitivity),
	}.ClampScalar(-1, 1)
}

func sensitivityCurve(x, sensitivity float64) float64 {
	return math.Copysign(x*x, x) * sensitivity
}

// applyFlightAssist adds counter-rotation on axes where the raw player
// input is within the deadzone of zero, damping residual spin the player
// isn't actively commanding. Axes with non-zero input pass through.
func applyFlightAssist(angular, rawInput, angularVelocity spatial.Vector3, strength float64) spatial.Vector3 {
	out := angular
	if math.Abs(rawInput.X) < flightAssistDeadzone {
		out.X = clamp11(out.X - strength*angularVelocity.X)
	}
	if math.Abs(rawInput.Y) < flightAssistDeadzone {
		out.Y = clamp11(out.Y - strength*angularVelocity.Y)
	}
	if math.Abs(rawInput.Z) < flightAssistDeadzone {
		out.Z = clamp11(out.Z - strength*angularVelocity.Z)
	}
	return out
}

func clamp11(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}
