package systems

import (
	"math"

	"github.com/bxrne/shipcore/pkg/components"
	"github.com/bxrne/shipcore/pkg/ecs"
	"github.com/bxrne/shipcore/pkg/spatial"
)

// ScriptedFlightSystem steers a target entity's ControlAuthority along a
// FlightPath using a simple proportional law on position and heading error.
type ScriptedFlightSystem struct{}

func NewScriptedFlightSystem() *ScriptedFlightSystem {
	return &ScriptedFlightSystem{}
}

func (sys *ScriptedFlightSystem) Update(world *ecs.World, delta float64) error {
	controllers, _ := components.AllScriptedFlights(world)
	for _, sf := range controllers {
		if sf == nil || !sf.Active() || sf.Path == nil || len(sf.Path.Waypoints) == 0 {
			continue
		}
		if sf.ManualOverride {
			continue // steps 6-7 suspended; leave commands untouched
		}

		targetTransform, err := components.GetTransform(world, sf.Target)
		if err != nil {
			continue
		}
		ca, err := components.GetControlAuthority(world, sf.Target)
		if err != nil {
			continue
		}

		waypoint := sf.Path.Waypoints[sf.CurrentWaypoint]
		toWaypoint := waypoint.Position.Subtract(targetTransform.Position)
		distance := toWaypoint.Magnitude()

		if distance < waypoint.Tolerance {
			sf.CurrentWaypoint++
			if sf.CurrentWaypoint >= len(sf.Path.Waypoints) {
				if sf.Path.Loop {
					sf.CurrentWaypoint = 0
				} else {
					sf.Complete()
					continue
				}
			}
			waypoint = sf.Path.Waypoints[sf.CurrentWaypoint]
			toWaypoint = waypoint.Position.Subtract(targetTransform.Position)
			distance = toWaypoint.Magnitude()
		}

		desiredDirection := toWaypoint.Normalized()
		desiredVelocity := desiredDirection.MultiplyScalar(waypoint.TargetSpeed)

		var currentVelocity spatial.Vector3
		if physics, err := components.GetPhysics(world, sf.Target); err == nil {
			currentVelocity = physics.Velocity
			sf.CurrentSpeed = currentVelocity.Magnitude()
		}

		velocityError := desiredVelocity.Subtract(currentVelocity)

		inverseRotation := targetTransform.Rotation.Conjugate()
		bodyFrameError := inverseRotation.RotateVector(velocityError)
		linearCommand := bodyFrameError.DivideScalar(math.Max(waypoint.TargetSpeed, 1)).ClampScalar(-1, 1)
		ca.InputLinear = linearCommand

		forwardBody := spatial.Vector3{Z: 1}
		currentForward := targetTransform.Rotation.RotateVector(forwardBody)
		rotationAxis := currentForward.Cross(desiredDirection)
		sinAngle := rotationAxis.Magnitude()
		cosAngle := currentForward.Dot(desiredDirection)
		angleError := math.Atan2(sinAngle, cosAngle)

		var angularCommandWorld spatial.Vector3
		if sinAngle > 1e-9 {
			angularCommandWorld = rotationAxis.Normalized().MultiplyScalar(angleError)
		}
		angularCommandBody := inverseRotation.RotateVector(angularCommandWorld)
		ca.InputAngular = angularCommandBody.ClampScalar(-1, 1)
	}
	return nil
}
