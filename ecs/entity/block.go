package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/ecs/component"
	"github.com/milk9111/blockgame/prefabs"
)

var defaultBlockColor = color.NRGBA{R: 0xe0, G: 0x70, B: 0x40, A: 0xff}

// NewBlock spawns a falling block. It is not an obstacle until it lands.
func NewBlock(w *ecs.World, spec prefabs.BlockSpec) (ecs.Entity, error) {
	block := ecs.CreateEntity(w)
	if err := addBox(w, block, spec.Name, spec.Transform, spec.Size, spec.Color.ColorOr(defaultBlockColor)); err != nil {
		return 0, fmt.Errorf("block %q: %w", spec.Name, err)
	}
	if err := ecs.Add(w, block, component.BlockPhysicsComponent.Kind(), &component.BlockPhysics{
		FallSpeed: spec.FallSpeed,
		IsFalling: true,
	}); err != nil {
		return 0, fmt.Errorf("block %q: add block physics: %w", spec.Name, err)
	}
	if err := ecs.Add(w, block, component.ObstacleComponent.Kind(), &component.Obstacle{Role: component.ObstacleNone}); err != nil {
		return 0, fmt.Errorf("block %q: add obstacle: %w", spec.Name, err)
	}
	return block, nil
}
