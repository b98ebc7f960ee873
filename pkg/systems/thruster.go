package systems

import (
	"github.com/bxrne/shipcore/pkg/components"
	"github.com/bxrne/shipcore/pkg/ecs"
)

// ThrusterSystem is a pure transducer: body-frame normalized thrust
// commands become world-frame force and torque on the owning physics
// accumulators. It never decides direction or policy.
type ThrusterSystem struct{}

func NewThrusterSystem() *ThrusterSystem {
	return &ThrusterSystem{}
}

// Update applies every enabled Thruster+Physics+Transform entity's current
// command to its physics accumulators.
func (sys *ThrusterSystem) Update(world *ecs.World, delta float64) error {
	thrusters, owners := components.AllThrusters(world)
	for i := range thrusters {
		th := &thrusters[i]
		if !th.Enabled {
			continue
		}

		id := owners[i]
		physics, err := components.GetPhysics(world, id)
		if err != nil {
			continue
		}
		tr, err := components.GetTransform(world, id)
		if err != nil {
			continue
		}

		efficiency := th.EfficiencyFor(physics.Environment)

		bodyForce := th.CurrentLinearThrust.ClampScalar(-1, 1).Hadamard(th.MaxLinearForce)
		worldForce := tr.Rotation.RotateVector(bodyForce).MultiplyScalar(efficiency)
		physics.AddForce(worldForce)

		if physics.Has6DOF {
			bodyTorque := th.CurrentAngularThrust.ClampScalar(-1, 1).Hadamard(th.MaxAngularTorque)
			worldTorque := tr.Rotation.RotateVector(bodyTorque).MultiplyScalar(efficiency)
			physics.AddTorque(worldTorque)
		}
	}
	return nil
}
