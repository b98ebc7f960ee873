package components_test

import (
	"testing"

	"github.com/bxrne/shipcore/pkg/components"
	"github.com/bxrne/shipcore/pkg/ecs"
	"github.com/zerodha/logf"
	"github.com/stretchr/testify/assert"
)

func TestControlAuthority_SetSensitivity_ClampsAndIsIdempotent(t *testing.T) {
	c := components.NewControlAuthority(ecs.InvalidEntity)

	c.SetSensitivity(10)
	assert.Equal(t, 5.0, c.Sensitivity)

	c.SetSensitivity(10)
	assert.Equal(t, 5.0, c.Sensitivity, "setting the same out-of-range value twice must match setting it once")

	c.SetSensitivity(0.01)
	assert.Equal(t, 0.1, c.Sensitivity)

	c.SetSensitivity(2.5)
	assert.Equal(t, 2.5, c.Sensitivity)
}

func TestNewControlAuthority_Defaults(t *testing.T) {
	self, _ := ecs.NewWorld(1, logf.New(logf.Opts{})).Create()
	c := components.NewControlAuthority(self)

	assert.Equal(t, self, c.ControlledBy)
	assert.Equal(t, components.Manual, c.Mode)
	assert.Equal(t, components.DefaultFlightAssistStrength, c.FlightAssistStrength)
}
