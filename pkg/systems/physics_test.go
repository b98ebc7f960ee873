package systems_test

import (
	"math"
	"testing"

	"github.com/bxrne/shipcore/pkg/components"
	"github.com/bxrne/shipcore/pkg/ecs"
	"github.com/bxrne/shipcore/pkg/spatial"
	"github.com/bxrne/shipcore/pkg/systems"
	"github.com/zerodha/logf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBody(t *testing.T, w *ecs.World, mass float64) (ecs.EntityId, *components.Physics, *components.Transform) {
	t.Helper()
	id, err := w.Create()
	require.NoError(t, err)

	p := components.NewPhysics(mass, spatial.Vector3{X: 1, Y: 1, Z: 1})
	p.DragLinear = 1.0
	_, err = components.AddPhysics(w, id, p)
	require.NoError(t, err)

	_, err = components.AddTransform(w, id, components.NewTransform())
	require.NoError(t, err)

	physics, _ := components.GetPhysics(w, id)
	tr, _ := components.GetTransform(w, id)
	return id, physics, tr
}

func TestPhysicsSystem_PureLinearThrust(t *testing.T) {
	w := ecs.NewWorld(4, logf.New(logf.Opts{}))
	_, physics, _ := newBody(t, w, 100)
	physics.ForceAccumulator = spatial.Vector3{X: 1000}

	sys := systems.NewPhysicsSystem(logf.New(logf.Opts{}))
	require.NoError(t, sys.Update(w, 0.016))

	assert.InDelta(t, 0.16, physics.Velocity.X, 0.001)
	assert.True(t, physics.Velocity.X >= 0.159 && physics.Velocity.X <= 0.161)
}

func TestPhysicsSystem_DragDecay(t *testing.T) {
	w := ecs.NewWorld(4, logf.New(logf.Opts{}))
	_, physics, _ := newBody(t, w, 1)
	physics.Velocity = spatial.Vector3{X: 10}
	physics.DragLinear = 0.99

	sys := systems.NewPhysicsSystem(logf.New(logf.Opts{}))
	for i := 0; i < 100; i++ {
		require.NoError(t, sys.Update(w, 0.016))
		assert.Greater(t, physics.Velocity.X, 0.0, "velocity must stay strictly positive at every intermediate step")
	}

	expected := 10 * math.Pow(0.99, 100)
	assert.InDelta(t, expected, physics.Velocity.X, 0.05)
}

func TestPhysicsSystem_OffCenterThrustProducesTorque(t *testing.T) {
	w := ecs.NewWorld(4, logf.New(logf.Opts{}))
	_, physics, _ := newBody(t, w, 1)
	physics.AddForceAtPoint(spatial.Vector3{Y: 10}, spatial.Vector3{X: 1}, spatial.Zero)

	assert.Equal(t, spatial.Vector3{Z: 10}, physics.TorqueAccumulator)

	sys := systems.NewPhysicsSystem(logf.New(logf.Opts{}))
	require.NoError(t, sys.Update(w, 0.016))

	assert.Greater(t, physics.AngularVelocity.Z, 0.0)
}

func TestPhysicsSystem_KinematicBodyIsUnaffected(t *testing.T) {
	w := ecs.NewWorld(4, logf.New(logf.Opts{}))
	_, physics, tr := newBody(t, w, 1)
	physics.Kinematic = true
	physics.ForceAccumulator = spatial.Vector3{X: 1000}
	startPos := tr.Position

	sys := systems.NewPhysicsSystem(logf.New(logf.Opts{}))
	require.NoError(t, sys.Update(w, 0.1))

	assert.Equal(t, spatial.Zero, physics.Velocity)
	assert.Equal(t, startPos, tr.Position)
}

func TestPhysicsSystem_NonSixDOFHoldsAngularAtZero(t *testing.T) {
	w := ecs.NewWorld(4, logf.New(logf.Opts{}))
	_, physics, _ := newBody(t, w, 1)
	physics.Has6DOF = false
	physics.AddTorque(spatial.Vector3{Z: 100})

	sys := systems.NewPhysicsSystem(logf.New(logf.Opts{}))
	require.NoError(t, sys.Update(w, 0.016))

	assert.Equal(t, spatial.Zero, physics.AngularVelocity)
}

func TestPhysicsSystem_AccumulatorsZeroedAfterTick(t *testing.T) {
	w := ecs.NewWorld(4, logf.New(logf.Opts{}))
	_, physics, _ := newBody(t, w, 1)
	physics.ForceAccumulator = spatial.Vector3{X: 5}
	physics.TorqueAccumulator = spatial.Vector3{Z: 5}

	sys := systems.NewPhysicsSystem(logf.New(logf.Opts{}))
	require.NoError(t, sys.Update(w, 0.016))

	assert.Equal(t, spatial.Zero, physics.ForceAccumulator)
	assert.Equal(t, spatial.Zero, physics.TorqueAccumulator)
}

func TestPhysicsSystem_FiniteForAllDtInRange(t *testing.T) {
	w := ecs.NewWorld(4, logf.New(logf.Opts{}))
	_, physics, tr := newBody(t, w, 10)
	physics.ForceAccumulator = spatial.Vector3{X: 50, Y: -30, Z: 10}
	physics.TorqueAccumulator = spatial.Vector3{X: 1, Y: 2, Z: -3}

	sys := systems.NewPhysicsSystem(logf.New(logf.Opts{}))
	for _, dt := range []float64{0, 0.001, 0.016, 0.05, 0.1} {
		require.NoError(t, sys.Update(w, dt))
		assert.True(t, physics.Velocity.IsFinite())
		assert.True(t, tr.Position.IsFinite())
	}
}
