package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/ecs/component"
	"github.com/milk9111/blockgame/prefabs"
)

var defaultWallColor = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}

// NewWall spawns a static obstacle (floor or side wall).
func NewWall(w *ecs.World, spec prefabs.WallSpec) (ecs.Entity, error) {
	wall := ecs.CreateEntity(w)
	if err := addBox(w, wall, spec.Name, spec.Transform, spec.Size, spec.Color.ColorOr(defaultWallColor)); err != nil {
		return 0, fmt.Errorf("wall %q: %w", spec.Name, err)
	}
	if err := ecs.Add(w, wall, component.ObstacleComponent.Kind(), &component.Obstacle{Role: component.ObstacleStatic}); err != nil {
		return 0, fmt.Errorf("wall %q: add obstacle: %w", spec.Name, err)
	}
	return wall, nil
}

func addBox(w *ecs.World, e ecs.Entity, name string, t prefabs.TransformSpec, size prefabs.SizeSpec, c color.Color) error {
	if name != "" {
		if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: name}); err != nil {
			return fmt.Errorf("add name: %w", err)
		}
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: t.X, Y: t.Y, Z: t.Z}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.ExtentComponent.Kind(), &component.Extent{Width: size.Width, Height: size.Height}); err != nil {
		return fmt.Errorf("add extent: %w", err)
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Color: c}); err != nil {
		return fmt.Errorf("add sprite: %w", err)
	}
	return nil
}
