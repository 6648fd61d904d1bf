package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/ecs/component"
)

// obstacle is a snapshot of a collidable entity's box for one resolver pass.
type obstacle struct {
	entity ecs.Entity
	center cp.Vector
	size   cp.Vector
}

// collectObstacles returns every entity whose role is collidable, in id
// order, skipping exclude.
func collectObstacles(w *ecs.World, exclude ecs.Entity) []obstacle {
	entities := w.Query(
		component.ObstacleComponent.Kind(),
		component.TransformComponent.Kind(),
		component.ExtentComponent.Kind(),
	)
	out := make([]obstacle, 0, len(entities))
	for _, e := range entities {
		if e == exclude {
			continue
		}
		ob, ok := ecs.Get(w, e, component.ObstacleComponent.Kind())
		if !ok || !ob.Role.Collidable() {
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		ext, _ := ecs.Get(w, e, component.ExtentComponent.Kind())
		out = append(out, obstacle{entity: e, center: t.Center(), size: ext.Size()})
	}
	return out
}
