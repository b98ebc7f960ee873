package systems_test

import (
	"testing"

	"github.com/bxrne/shipcore/pkg/components"
	"github.com/bxrne/shipcore/pkg/ecs"
	"github.com/bxrne/shipcore/pkg/spatial"
	"github.com/bxrne/shipcore/pkg/systems"
	"github.com/zerodha/logf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newControlledEntity(t *testing.T, w *ecs.World) ecs.EntityId {
	t.Helper()
	id, err := w.Create()
	require.NoError(t, err)

	_, err = components.AddThruster(w, id, components.NewThruster(spatial.Vector3{X: 1, Y: 1, Z: 1}, spatial.Vector3{X: 1, Y: 1, Z: 1}))
	require.NoError(t, err)
	_, err = components.AddPhysics(w, id, components.NewPhysics(1, spatial.Vector3{X: 1, Y: 1, Z: 1}))
	require.NoError(t, err)
	return id
}

func TestControlSystem_PlayerInputDrivesThrusterCommand(t *testing.T) {
	w := ecs.NewWorld(4, logf.New(logf.Opts{}))
	id := newControlledEntity(t, w)
	ca := components.NewControlAuthority(id)
	_, err := components.AddControlAuthority(w, id, ca)
	require.NoError(t, err)

	w.SetPlayerEntity(id)
	w.SetInputState(ecs.InputState{Thrust: 1})

	sys := systems.NewControlSystem()
	require.NoError(t, sys.Update(w, 0.016))

	th, _ := components.GetThruster(w, id)
	assert.Greater(t, th.CurrentLinearThrust.Z, 0.0)
}

func TestControlSystem_FlightAssistCounterRotation(t *testing.T) {
	w := ecs.NewWorld(4, logf.New(logf.Opts{}))
	id := newControlledEntity(t, w)
	ca := components.NewControlAuthority(id)
	ca.Mode = components.Assisted
	ca.FlightAssistEnabled = true
	ca.FlightAssistStrength = 0.5
	_, err := components.AddControlAuthority(w, id, ca)
	require.NoError(t, err)

	physics, _ := components.GetPhysics(w, id)
	physics.AngularVelocity = spatial.Vector3{X: 2}

	w.SetPlayerEntity(id)
	w.SetInputState(ecs.InputState{}) // zero input on every axis

	sys := systems.NewControlSystem()
	require.NoError(t, sys.Update(w, 0.016))

	th, _ := components.GetThruster(w, id)
	assert.Less(t, th.CurrentAngularThrust.X, 0.0)
	assert.LessOrEqual(t, th.CurrentAngularThrust.X, 0.0)
	assert.GreaterOrEqual(t, th.CurrentAngularThrust.X, -1.0)
}

func TestControlSystem_DoesNotClearScriptedEntityCommand(t *testing.T) {
	w := ecs.NewWorld(4, logf.New(logf.Opts{}))
	scripter, _ := w.Create()
	target := newControlledEntity(t, w)

	ca := components.NewControlAuthority(target)
	ca.ControlledBy = scripter // a different agent owns this entity's commands
	ca.InputLinear = spatial.Vector3{X: 0.7}
	_, err := components.AddControlAuthority(w, target, ca)
	require.NoError(t, err)

	w.SetPlayerEntity(ecs.InvalidEntity) // no player; target must not be resampled to zero
	w.SetInputState(ecs.InputState{})

	sys := systems.NewControlSystem()
	require.NoError(t, sys.Update(w, 0.016))

	th, _ := components.GetThruster(w, target)
	assert.Greater(t, th.CurrentLinearThrust.X, 0.0, "a scripted command must survive the control tick")
}

func TestControlSystem_SensitivityCurveIsQuadratic(t *testing.T) {
	w := ecs.NewWorld(4, logf.New(logf.Opts{}))
	id := newControlledEntity(t, w)
	ca := components.NewControlAuthority(id)
	ca.SetSensitivity(1.0)
	_, err := components.AddControlAuthority(w, id, ca)
	require.NoError(t, err)

	w.SetPlayerEntity(id)
	w.SetInputState(ecs.InputState{Pitch: 0.5})

	sys := systems.NewControlSystem()
	require.NoError(t, sys.Update(w, 0.016))

	th, _ := components.GetThruster(w, id)
	assert.InDelta(t, 0.25, th.CurrentAngularThrust.X, 1e-9)
}
