package ecs_test

import (
	"testing"

	"github.com/bxrne/shipcore/pkg/ecs"
	"github.com/zerodha/logf"
	"github.com/stretchr/testify/assert"
)

func TestInvalidEntity_IsZeroValue(t *testing.T) {
	var zero ecs.EntityId
	assert.Equal(t, ecs.InvalidEntity, zero)
}

func TestEntityId_String(t *testing.T) {
	w := ecs.NewWorld(2, logf.New(logf.Opts{}))
	id, _ := w.Create()
	assert.NotEmpty(t, id.String())
}
