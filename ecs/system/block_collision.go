package system

import (
	"log/slog"

	"github.com/milk9111/blockgame/collision"
	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/ecs/component"
)

// BlockCollisionSystem lands falling blocks on the first obstacle found
// under them and promotes them to obstacles.
type BlockCollisionSystem struct {
	logger *slog.Logger
}

func NewBlockCollisionSystem(logger *slog.Logger) *BlockCollisionSystem {
	return &BlockCollisionSystem{logger: logger}
}

func (s *BlockCollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	blocks := w.Query(
		component.BlockPhysicsComponent.Kind(),
		component.ObstacleComponent.Kind(),
		component.TransformComponent.Kind(),
		component.ExtentComponent.Kind(),
	)
	for _, e := range blocks {
		role, _ := ecs.Get(w, e, component.ObstacleComponent.Kind())
		if role.Role != component.ObstacleNone {
			continue
		}
		block, _ := ecs.Get(w, e, component.BlockPhysicsComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		ext, _ := ecs.Get(w, e, component.ExtentComponent.Kind())

		// Obstacles are re-read per block so a block that landed earlier in
		// this pass can already catch the next one.
		for _, ob := range collectObstacles(w, e) {
			side, hit := collision.Collide(t.Center(), ext.Size(), ob.center, ob.size)
			if !hit || side != collision.SideBottom {
				continue
			}

			block.IsFalling = false
			role.Role = component.ObstacleGroundedDynamic
			t.Y = ob.center.Y + ob.size.Y/2 + ext.HalfHeight()

			w.Events().PushCollision(ecs.CollisionEvent{
				Entity: e,
				Other:  ob.entity,
				Kind:   ecs.CollisionEventBlockLanded,
				Side:   side,
			})
			loggerOr(s.logger).Debug("block landed",
				slog.String("block", entityName(w, e)),
				slog.String("on", entityName(w, ob.entity)),
				slog.Float64("y", t.Y),
			)
			break
		}
	}
}

func entityName(w *ecs.World, e ecs.Entity) string {
	if n, ok := ecs.Get(w, e, component.NameComponent.Kind()); ok && n.Value != "" {
		return n.Value
	}
	return e.String()
}
