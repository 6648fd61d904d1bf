package system

import (
	"testing"

	"github.com/milk9111/blockgame/collision"
	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockLandsOnFloor(t *testing.T) {
	w := newTestWorld(t)
	// floor top at y=10
	floor := spawnWall(t, w, "floor", 0, 0, 200, 20)
	block := spawnBlock(t, w, "block", 0, 70, 20, 100)

	s := ecs.NewScheduler(NewClockSystem(0.1, 0, 0), NewBlockFallSystem(), NewBlockCollisionSystem(nil))
	for i := 0; i < 10; i++ {
		s.Update(w)
	}

	bp, ok := ecs.Get(w, block, component.BlockPhysicsComponent.Kind())
	require.True(t, ok)
	ob, ok := ecs.Get(w, block, component.ObstacleComponent.Kind())
	require.True(t, ok)

	assert.False(t, bp.IsFalling)
	assert.Equal(t, component.ObstacleGroundedDynamic, ob.Role)
	assert.Equal(t, 20.0, transformOf(t, w, block).Y)
	assert.Equal(t, 0.0, transformOf(t, w, floor).Y, "floor must not move")
}

func TestBlockLandingEmitsEvent(t *testing.T) {
	w := newTestWorld(t)
	floor := spawnWall(t, w, "floor", 0, 0, 200, 20)
	// already overlapping the floor by 5
	block := spawnBlock(t, w, "block", 0, 15, 20, 100)

	NewBlockCollisionSystem(nil).Update(w)

	events := collisionEvents(w)
	require.Len(t, events, 1)
	assert.Equal(t, ecs.CollisionEvent{
		Entity: block,
		Other:  floor,
		Kind:   ecs.CollisionEventBlockLanded,
		Side:   collision.SideBottom,
	}, events[0])
	assert.Equal(t, 20.0, transformOf(t, w, block).Y)
}

func TestBlockStacksOnLandedBlock(t *testing.T) {
	w := newTestWorld(t)
	spawnWall(t, w, "floor", 0, 0, 200, 20)
	lower := spawnBlock(t, w, "lower", 0, 20, 20, 100)
	upper := spawnBlock(t, w, "upper", 0, 60, 20, 100)

	s := ecs.NewScheduler(NewClockSystem(0.1, 0, 0), NewBlockFallSystem(), NewBlockCollisionSystem(nil))
	for i := 0; i < 5; i++ {
		s.Update(w)
	}

	assert.Equal(t, 20.0, transformOf(t, w, lower).Y)
	assert.Equal(t, 40.0, transformOf(t, w, upper).Y)

	ob, _ := ecs.Get(w, upper, component.ObstacleComponent.Kind())
	assert.Equal(t, component.ObstacleGroundedDynamic, ob.Role)
}

func TestBlockIgnoresFallingBlocks(t *testing.T) {
	w := newTestWorld(t)
	lower := spawnBlock(t, w, "lower", 0, 0, 20, 100)
	upper := spawnBlock(t, w, "upper", 0, 15, 20, 100)

	NewBlockCollisionSystem(nil).Update(w)

	for _, e := range []ecs.Entity{lower, upper} {
		bp, _ := ecs.Get(w, e, component.BlockPhysicsComponent.Kind())
		assert.True(t, bp.IsFalling)
	}
	assert.Empty(t, collisionEvents(w))
}

func TestBlockSideContactDoesNotLand(t *testing.T) {
	w := newTestWorld(t)
	spawnWall(t, w, "wall", 0, 0, 20, 200)
	block := spawnBlock(t, w, "block", 18, 50, 20, 100)

	NewBlockCollisionSystem(nil).Update(w)

	bp, _ := ecs.Get(w, block, component.BlockPhysicsComponent.Kind())
	assert.True(t, bp.IsFalling)
	assert.Equal(t, 18.0, transformOf(t, w, block).X)
}

func TestBlockCollisionIdempotent(t *testing.T) {
	w := newTestWorld(t)
	spawnWall(t, w, "floor", 0, 0, 200, 20)
	block := spawnBlock(t, w, "block", 0, 12, 20, 100)

	s := NewBlockCollisionSystem(nil)
	s.Update(w)
	first := *transformOf(t, w, block)
	s.Update(w)

	assert.Equal(t, first, *transformOf(t, w, block))
}

func TestBlockFallSkipsZeroStep(t *testing.T) {
	w := newTestWorld(t)
	block := spawnBlock(t, w, "block", 0, 100, 20, 100)

	NewBlockFallSystem().Update(w)

	assert.Equal(t, 100.0, transformOf(t, w, block).Y)
}
