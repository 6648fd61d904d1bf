package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/ecs/component"
	"github.com/milk9111/blockgame/prefabs"
)

var defaultPlayerColor = color.NRGBA{R: 0x80, G: 0x80, B: 0xff, A: 0xff}

// NewPlayer spawns the player grounded at its spec position.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	player := ecs.CreateEntity(w)

	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := addBox(w, player, spec.Name, spec.Transform, spec.Size, spec.Color.ColorOr(defaultPlayerColor)); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerCollisionComponent.Kind(), &component.PlayerCollision{}); err != nil {
		return 0, fmt.Errorf("player: add player collision: %w", err)
	}

	phys := &component.PlayerPhysics{
		Gravity:        spec.Gravity,
		MovementSpeed:  spec.MovementSpeed,
		JumpImpulse:    spec.JumpVelocity,
		FallSpeedReset: spec.FallSpeed,
		JumpNudge:      spec.JumpNudge,
		FallBias:       spec.FallBias,
	}
	phys.Land()
	if err := ecs.Add(w, player, component.PlayerPhysicsComponent.Kind(), phys); err != nil {
		return 0, fmt.Errorf("player: add player physics: %w", err)
	}

	return player, nil
}
