package entity

import (
	"fmt"

	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/ecs/component"
	"github.com/milk9111/blockgame/prefabs"
)

func NewCamera(w *ecs.World, spec prefabs.CameraSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		X: spec.Transform.X,
		Y: spec.Transform.Y,
		Z: spec.Transform.Z,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{Zoom: zoom}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
