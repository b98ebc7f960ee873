package components

import (
	"github.com/bxrne/shipcore/pkg/ecs"
	"github.com/bxrne/shipcore/pkg/spatial"
)

// Thruster is an entity's propulsion capability: per-axis body-frame force
// and torque caps, and the current normalized command. The thruster system
// is a pure transducer from this command to world-frame force/torque; it
// never decides direction or policy.
type Thruster struct {
	MaxLinearForce  spatial.Vector3
	MaxAngularTorque spatial.Vector3

	CurrentLinearThrust  spatial.Vector3 // each component in [-1, 1]
	CurrentAngularThrust spatial.Vector3

	Enabled bool

	AtmosphereEfficiency float64 // [0, 1]
	VacuumEfficiency     float64 // [0, 1]
}

// NewThruster builds an enabled thruster with full efficiency in both
// environments.
func NewThruster(maxLinearForce, maxAngularTorque spatial.Vector3) Thruster {
	return Thruster{
		MaxLinearForce:       maxLinearForce,
		MaxAngularTorque:     maxAngularTorque,
		Enabled:              true,
		AtmosphereEfficiency: 1.0,
		VacuumEfficiency:     1.0,
	}
}

// SetLinearCommand clamps each component of v to [-1, 1] and stores it.
func (th *Thruster) SetLinearCommand(v spatial.Vector3) {
	th.CurrentLinearThrust = v.ClampScalar(-1, 1)
}

// SetAngularCommand clamps each component of v to [-1, 1] and stores it.
func (th *Thruster) SetAngularCommand(v spatial.Vector3) {
	th.CurrentAngularThrust = v.ClampScalar(-1, 1)
}

// EfficiencyFor returns the efficiency scalar for env.
func (th *Thruster) EfficiencyFor(env Environment) float64 {
	if env == Atmosphere {
		return th.AtmosphereEfficiency
	}
	return th.VacuumEfficiency
}

func AddThruster(w *ecs.World, id ecs.EntityId, th Thruster) (*Thruster, error) {
	return ecs.AddComponent(w, id, ecs.ThrusterKind, th)
}

func GetThruster(w *ecs.World, id ecs.EntityId) (*Thruster, error) {
	return ecs.GetComponent[Thruster](w, id, ecs.ThrusterKind)
}

func RemoveThruster(w *ecs.World, id ecs.EntityId) bool {
	return ecs.RemoveComponent(w, id, ecs.ThrusterKind)
}

// AllThrusters returns the dense Thruster slice and parallel owner slice.
func AllThrusters(w *ecs.World) ([]Thruster, []ecs.EntityId) {
	return ecs.All[Thruster](w, ecs.ThrusterKind)
}
