package components_test

import (
	"testing"

	"github.com/bxrne/shipcore/pkg/components"
	"github.com/bxrne/shipcore/pkg/ecs"
	"github.com/bxrne/shipcore/pkg/spatial"
	"github.com/zerodha/logf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransform_Defaults(t *testing.T) {
	tr := components.NewTransform()
	assert.Equal(t, spatial.Identity(), tr.Rotation)
	assert.Equal(t, spatial.Vector3{X: 1, Y: 1, Z: 1}, tr.Scale)
}

func TestTransform_WorldRoundTrip(t *testing.T) {
	w := ecs.NewWorld(4, logf.New(logf.Opts{}))
	id, err := w.Create()
	require.NoError(t, err)

	tr := components.NewTransform()
	tr.Position = spatial.Vector3{X: 5}
	_, err = components.AddTransform(w, id, tr)
	require.NoError(t, err)

	got, err := components.GetTransform(w, id)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.Position.X)

	assert.True(t, components.RemoveTransform(w, id))
	_, err = components.GetTransform(w, id)
	assert.Error(t, err)
}

func TestTransform_SnapshotDoesNotTear(t *testing.T) {
	w := ecs.NewWorld(4, logf.New(logf.Opts{}))
	id, _ := w.Create()
	tr := components.NewTransform()
	tr.Position = spatial.Vector3{X: 1}
	components.AddTransform(w, id, tr)

	snap := components.SnapshotTransforms(w)

	live, _ := components.GetTransform(w, id)
	live.Position = spatial.Vector3{X: 999}

	assert.Equal(t, 1.0, snap[id].Position.X)
}
