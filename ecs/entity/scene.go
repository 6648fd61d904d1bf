package entity

import (
	"fmt"

	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/prefabs"
)

// Scene holds the handles spawned by BuildScene.
type Scene struct {
	Clock  ecs.Entity
	Camera ecs.Entity
	Player ecs.Entity
	Walls  []ecs.Entity
	Blocks []ecs.Entity
}

// BuildScene populates an empty world from spec. Walls are spawned before
// blocks so that id order, and therefore resolver iteration order, matches
// the scene file.
func BuildScene(w *ecs.World, spec *prefabs.SceneSpec) (*Scene, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("entity: build scene: %w", err)
	}

	var (
		scene Scene
		err   error
	)
	if scene.Clock, err = NewClock(w); err != nil {
		return nil, fmt.Errorf("entity: build scene: %w", err)
	}
	if scene.Camera, err = NewCamera(w, spec.Camera); err != nil {
		return nil, fmt.Errorf("entity: build scene: %w", err)
	}
	for _, ws := range spec.Walls {
		wall, err := NewWall(w, ws)
		if err != nil {
			return nil, fmt.Errorf("entity: build scene: %w", err)
		}
		scene.Walls = append(scene.Walls, wall)
	}
	for _, bs := range spec.Blocks {
		block, err := NewBlock(w, bs)
		if err != nil {
			return nil, fmt.Errorf("entity: build scene: %w", err)
		}
		scene.Blocks = append(scene.Blocks, block)
	}
	if scene.Player, err = NewPlayer(w, spec.Player); err != nil {
		return nil, fmt.Errorf("entity: build scene: %w", err)
	}

	return &scene, nil
}
