package systems

import (
	"github.com/bxrne/shipcore/pkg/components"
	"github.com/bxrne/shipcore/pkg/ecs"
)

// CameraSystem moves each Camera-marked entity's Transform toward its
// follow target, exponentially smoothing rather than snapping.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (sys *CameraSystem) Update(world *ecs.World, delta float64) error {
	cameras, owners := components.AllCameras(world)
	for i := range cameras {
		cam := &cameras[i]
		if cam.Target == ecs.InvalidEntity {
			continue
		}

		targetTransform, err := components.GetTransform(world, cam.Target)
		if err != nil {
			continue
		}
		cameraTransform, err := components.GetTransform(world, owners[i])
		if err != nil {
			continue
		}

		smoothing := cam.Smoothing
		if smoothing < 0 {
			smoothing = 0
		}
		if smoothing >= 1 {
			smoothing = 0.999
		}
		alpha := 1 - smoothing

		posDelta := targetTransform.Position.Subtract(cameraTransform.Position)
		cameraTransform.Position = cameraTransform.Position.Add(posDelta.MultiplyScalar(alpha))

		cameraTransform.Rotation = cameraTransform.Rotation.Scale(smoothing).
			Add(targetTransform.Rotation.Scale(alpha)).
			Normalized()
	}
	return nil
}
