package components_test

import (
	"testing"

	"github.com/bxrne/shipcore/pkg/components"
	"github.com/bxrne/shipcore/pkg/spatial"
	"github.com/stretchr/testify/assert"
)

func TestNewPhysics_Defaults(t *testing.T) {
	p := components.NewPhysics(100, spatial.Vector3{X: 1, Y: 1, Z: 1})
	assert.Equal(t, 1.0, p.DragLinear)
	assert.Equal(t, 1.0, p.DragAngular)
	assert.True(t, p.Has6DOF)
	assert.False(t, p.Kinematic)
}

func TestNewPhysics_PanicsOnNonPositiveMass(t *testing.T) {
	assert.Panics(t, func() {
		components.NewPhysics(0, spatial.Vector3{X: 1, Y: 1, Z: 1})
	})
	assert.Panics(t, func() {
		components.NewPhysics(-5, spatial.Vector3{X: 1, Y: 1, Z: 1})
	})
}

func TestNewPhysics_PanicsOnNonPositiveInertia(t *testing.T) {
	assert.Panics(t, func() {
		components.NewPhysics(10, spatial.Vector3{X: 0, Y: 1, Z: 1})
	})
}

func TestPhysics_AddForceAtPoint_ProducesExpectedTorque(t *testing.T) {
	p := components.NewPhysics(1, spatial.Vector3{X: 1, Y: 1, Z: 1})
	p.AddForceAtPoint(spatial.Vector3{Y: 10}, spatial.Vector3{X: 1}, spatial.Zero)

	assert.Equal(t, spatial.Vector3{Y: 10}, p.ForceAccumulator)
	assert.Equal(t, spatial.Vector3{Z: 10}, p.TorqueAccumulator)
}

func TestPhysics_AddTorque_IgnoredWithoutSixDOF(t *testing.T) {
	p := components.NewPhysics(1, spatial.Vector3{X: 1, Y: 1, Z: 1})
	p.Has6DOF = false
	p.AddTorque(spatial.Vector3{Z: 5})
	assert.Equal(t, spatial.Zero, p.TorqueAccumulator)
}

func TestPhysics_ZeroAccumulators(t *testing.T) {
	p := components.NewPhysics(1, spatial.Vector3{X: 1, Y: 1, Z: 1})
	p.AddForce(spatial.Vector3{X: 1})
	p.AddTorque(spatial.Vector3{Y: 1})
	p.ZeroAccumulators()
	assert.Equal(t, spatial.Zero, p.ForceAccumulator)
	assert.Equal(t, spatial.Zero, p.TorqueAccumulator)
}
