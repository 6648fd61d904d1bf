package system

import (
	"testing"

	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/ecs/component"
	"github.com/milk9111/blockgame/ecs/entity"
	"github.com/milk9111/blockgame/prefabs"
	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	_, err := entity.NewClock(w)
	require.NoError(t, err)
	return w
}

func spawnWall(t *testing.T, w *ecs.World, name string, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewWall(w, prefabs.WallSpec{
		Name:      name,
		Transform: prefabs.TransformSpec{X: x, Y: y},
		Size:      prefabs.SizeSpec{Width: width, Height: height},
	})
	require.NoError(t, err)
	return e
}

func spawnBlock(t *testing.T, w *ecs.World, name string, x, y, size, speed float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewBlock(w, prefabs.BlockSpec{
		Name:      name,
		Transform: prefabs.TransformSpec{X: x, Y: y},
		Size:      prefabs.SizeSpec{Width: size, Height: size},
		FallSpeed: speed,
	})
	require.NoError(t, err)
	return e
}

func spawnPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewPlayer(w, prefabs.PlayerSpec{
		Name:          "player",
		Transform:     prefabs.TransformSpec{X: x, Y: y},
		Size:          prefabs.SizeSpec{Width: 20, Height: 20},
		MovementSpeed: 300,
		JumpVelocity:  500,
		Gravity:       -1000,
		JumpNudge:     2,
	})
	require.NoError(t, err)
	return e
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	return tr
}

func physicsOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.PlayerPhysics {
	t.Helper()
	phys, ok := ecs.Get(w, e, component.PlayerPhysicsComponent.Kind())
	require.True(t, ok)
	return phys
}

func inputOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Input {
	t.Helper()
	in, ok := ecs.Get(w, e, component.InputComponent.Kind())
	require.True(t, ok)
	return in
}

func collisionEvents(w *ecs.World) []ecs.CollisionEvent {
	var out []ecs.CollisionEvent
	for _, evt := range w.Events().Peek() {
		if ce, ok := evt.Data.(ecs.CollisionEvent); ok {
			out = append(out, ce)
		}
	}
	return out
}
