// Package systems implements the per-tick update functions the scheduler
// dispatches: physics integration, thruster transduction, control,
// scripted flight, collision, camera, and AI LOD.
package systems

import (
	"math"

	"github.com/bxrne/shipcore/pkg/components"
	"github.com/bxrne/shipcore/pkg/ecs"
	"github.com/bxrne/shipcore/pkg/spatial"
	"github.com/zerodha/logf"
)

// Recommended clamp bounds from the physics integrator's safety contract.
const (
	DefaultMaxLinearSpeed  = 1e4
	DefaultMaxAngularSpeed = 1e2
)

// PhysicsSystem integrates every non-kinematic body's accumulated force and
// torque into velocity and pose, then zeroes the accumulators exactly once.
type PhysicsSystem struct {
	MaxLinearSpeed  float64
	MaxAngularSpeed float64
	log             logf.Logger
}

// NewPhysicsSystem builds a system using the recommended clamp bounds,
// logging clamp and non-finite-rollback events with log.
func NewPhysicsSystem(log logf.Logger) *PhysicsSystem {
	return &PhysicsSystem{MaxLinearSpeed: DefaultMaxLinearSpeed, MaxAngularSpeed: DefaultMaxAngularSpeed, log: log}
}

// Update integrates every Physics+Transform body by delta seconds.
func (sys *PhysicsSystem) Update(world *ecs.World, delta float64) error {
	physBodies, owners := components.AllPhysics(world)
	for i := range physBodies {
		p := &physBodies[i]
		if p.Kinematic {
			continue
		}

		tr, err := components.GetTransform(world, owners[i])
		if err != nil {
			continue // MissingComponent: already logged by ecs.GetComponent
		}

		sys.integrate(p, tr, owners[i], delta)
	}
	return nil
}

func (sys *PhysicsSystem) integrate(p *components.Physics, tr *components.Transform, owner ecs.EntityId, dt float64) {
	lastValidPosition := tr.Position
	lastValidRotation := tr.Rotation

	if p.Mass > 0 {
		linearAccel := p.ForceAccumulator.DivideScalar(p.Mass)
		p.Velocity = p.Velocity.Add(linearAccel.MultiplyScalar(dt))
		p.Velocity = p.Velocity.MultiplyScalar(p.DragLinear)
		p.Acceleration = linearAccel
	}

	if p.Has6DOF {
		angularAccel := spatial.Vector3{
			X: safeDiv(p.TorqueAccumulator.X, p.MomentOfInertia.X),
			Y: safeDiv(p.TorqueAccumulator.Y, p.MomentOfInertia.Y),
			Z: safeDiv(p.TorqueAccumulator.Z, p.MomentOfInertia.Z),
		}
		p.AngularVelocity = p.AngularVelocity.Add(angularAccel.MultiplyScalar(dt))
		p.AngularVelocity = p.AngularVelocity.MultiplyScalar(p.DragAngular)
		p.AngularAcceleration = angularAccel
	} else {
		p.AngularVelocity = spatial.Zero
		p.AngularAcceleration = spatial.Zero
	}

	tr.Position = tr.Position.Add(p.Velocity.MultiplyScalar(dt))

	if p.Has6DOF && p.AngularVelocity.Magnitude() > 0 {
		tr.Rotation = tr.Rotation.Integrate(p.AngularVelocity, dt)
	}

	if speed := p.Velocity.Magnitude(); speed > sys.MaxLinearSpeed {
		sys.log.Warn("clamped linear speed", "entity", owner.String(), "speed", speed, "max", sys.MaxLinearSpeed)
		p.Velocity = p.Velocity.ClampMagnitude(sys.MaxLinearSpeed)
	}
	if speed := p.AngularVelocity.Magnitude(); speed > sys.MaxAngularSpeed {
		sys.log.Warn("clamped angular speed", "entity", owner.String(), "speed", speed, "max", sys.MaxAngularSpeed)
		p.AngularVelocity = p.AngularVelocity.ClampMagnitude(sys.MaxAngularSpeed)
	}

	if !p.Velocity.IsFinite() {
		sys.log.Warn("non-finite velocity reset to zero", "entity", owner.String())
		p.Velocity = spatial.Zero
	}
	if !p.AngularVelocity.IsFinite() {
		sys.log.Warn("non-finite angular velocity reset to zero", "entity", owner.String())
		p.AngularVelocity = spatial.Zero
	}
	if !tr.Position.IsFinite() {
		sys.log.Warn("non-finite position rolled back", "entity", owner.String())
		tr.Position = lastValidPosition
		p.Velocity = spatial.Zero
	}
	if !tr.Rotation.IsFinite() {
		sys.log.Warn("non-finite rotation rolled back", "entity", owner.String())
		tr.Rotation = lastValidRotation
		p.AngularVelocity = spatial.Zero
	}

	p.ZeroAccumulators()
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	v := a / b
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
