package systems_test

import (
	"testing"

	"github.com/bxrne/shipcore/pkg/components"
	"github.com/bxrne/shipcore/pkg/ecs"
	"github.com/bxrne/shipcore/pkg/spatial"
	"github.com/bxrne/shipcore/pkg/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zerodha/logf"
)

func newCollider(t *testing.T, w *ecs.World, pos spatial.Vector3, radius float64) ecs.EntityId {
	t.Helper()
	id, err := w.Create()
	require.NoError(t, err)
	tr := components.NewTransform()
	tr.Position = pos
	_, err = components.AddTransform(w, id, tr)
	require.NoError(t, err)
	_, err = components.AddCollision(w, id, radius)
	require.NoError(t, err)
	return id
}

func TestCollisionSystem_DetectsOverlap(t *testing.T) {
	w := ecs.NewWorld(4, logf.New(logf.Opts{}))
	a := newCollider(t, w, spatial.Zero, 1)
	b := newCollider(t, w, spatial.Vector3{X: 1.5}, 1)

	sys := systems.NewCollisionSystem(logf.New(logf.Opts{}))
	require.NoError(t, sys.Update(w, 0.05))

	require.Len(t, sys.Contacts, 1)
	assert.ElementsMatch(t, []ecs.EntityId{a, b}, []ecs.EntityId{sys.Contacts[0].A, sys.Contacts[0].B})
}

func TestCollisionSystem_NoOverlapWhenFarApart(t *testing.T) {
	w := ecs.NewWorld(4, logf.New(logf.Opts{}))
	newCollider(t, w, spatial.Zero, 1)
	newCollider(t, w, spatial.Vector3{X: 100}, 1)

	sys := systems.NewCollisionSystem(logf.New(logf.Opts{}))
	require.NoError(t, sys.Update(w, 0.05))

	assert.Empty(t, sys.Contacts)
}

func TestCollisionSystem_ZeroRadiusExcludesEntity(t *testing.T) {
	w := ecs.NewWorld(4, logf.New(logf.Opts{}))
	newCollider(t, w, spatial.Zero, 0)
	newCollider(t, w, spatial.Zero, 0)

	sys := systems.NewCollisionSystem(logf.New(logf.Opts{}))
	require.NoError(t, sys.Update(w, 0.05))

	assert.Empty(t, sys.Contacts)
}
