package system

import (
	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/ecs/component"
)

// BlockFallSystem moves falling blocks straight down at their fall speed.
type BlockFallSystem struct{}

func NewBlockFallSystem() *BlockFallSystem {
	return &BlockFallSystem{}
}

func (s *BlockFallSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := deltaTime(w)
	if dt <= 0 {
		return
	}

	ecs.ForEach2(w, component.BlockPhysicsComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, block *component.BlockPhysics, t *component.Transform) {
		if !block.IsFalling {
			return
		}
		t.Y -= block.FallSpeed * dt
	})
}
