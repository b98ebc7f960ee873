package components

import (
	"github.com/bxrne/shipcore/pkg/ecs"
	"github.com/bxrne/shipcore/pkg/spatial"
)

// Physics is a 6-DOF rigid body: mass and inertia properties, current
// motion state, and the per-tick force/torque accumulators the thruster
// system and any other force source write into.
type Physics struct {
	Mass              float64
	MomentOfInertia   spatial.Vector3 // diagonal, principal axes, each > 0

	Velocity            spatial.Vector3
	AngularVelocity     spatial.Vector3
	Acceleration        spatial.Vector3 // last integrated value, diagnostics only
	AngularAcceleration spatial.Vector3

	ForceAccumulator  spatial.Vector3
	TorqueAccumulator spatial.Vector3

	DragLinear  float64 // retention fraction per reference frame, 1.0 = no drag
	DragAngular float64

	Environment Environment
	Has6DOF     bool
	Kinematic   bool
}

// NewPhysics builds a Physics body with full drag retention (no drag) and
// 6-DOF enabled. mass and each moment-of-inertia axis must be positive;
// this is the one place the package panics, mirroring a component
// constructor that only ever runs with compile-time-known, trusted
// parameters rather than live user input.
func NewPhysics(mass float64, momentOfInertia spatial.Vector3) Physics {
	if mass <= 0 {
		panic("components: mass must be positive")
	}
	if momentOfInertia.X <= 0 || momentOfInertia.Y <= 0 || momentOfInertia.Z <= 0 {
		panic("components: moment of inertia axes must be positive")
	}
	return Physics{
		Mass:            mass,
		MomentOfInertia: momentOfInertia,
		DragLinear:      1.0,
		DragAngular:     1.0,
		Has6DOF:         true,
	}
}

// AddForce adds f to the force accumulator, to be integrated on the next
// physics tick.
func (p *Physics) AddForce(f spatial.Vector3) {
	p.ForceAccumulator = p.ForceAccumulator.Add(f)
}

// AddTorque adds tau to the torque accumulator. Ignored when the body does
// not have 6DOF, since angular state is held at zero for it.
func (p *Physics) AddTorque(tau spatial.Vector3) {
	if !p.Has6DOF {
		return
	}
	p.TorqueAccumulator = p.TorqueAccumulator.Add(tau)
}

// AddForceAtPoint adds f to the force accumulator and, when the body has
// 6DOF, adds the resulting moment (applicationPoint - centerOfMass) x f to
// the torque accumulator. Both points are world-frame.
func (p *Physics) AddForceAtPoint(f, applicationPointWorld, centerOfMassWorld spatial.Vector3) {
	p.AddForce(f)
	if !p.Has6DOF {
		return
	}
	lever := applicationPointWorld.Subtract(centerOfMassWorld)
	p.AddTorque(lever.Cross(f))
}

// ZeroAccumulators clears force and torque, called by the physics system
// exactly once per tick after integration.
func (p *Physics) ZeroAccumulators() {
	p.ForceAccumulator = spatial.Zero
	p.TorqueAccumulator = spatial.Zero
}

func AddPhysics(w *ecs.World, id ecs.EntityId, p Physics) (*Physics, error) {
	return ecs.AddComponent(w, id, ecs.PhysicsKind, p)
}

func GetPhysics(w *ecs.World, id ecs.EntityId) (*Physics, error) {
	return ecs.GetComponent[Physics](w, id, ecs.PhysicsKind)
}

func RemovePhysics(w *ecs.World, id ecs.EntityId) bool {
	return ecs.RemoveComponent(w, id, ecs.PhysicsKind)
}

// AllPhysics returns the dense Physics slice and parallel owner slice.
func AllPhysics(w *ecs.World) ([]Physics, []ecs.EntityId) {
	return ecs.All[Physics](w, ecs.PhysicsKind)
}
