package entity

import (
	"fmt"

	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/ecs/component"
)

func NewClock(w *ecs.World) (ecs.Entity, error) {
	clock := ecs.CreateEntity(w)
	if err := ecs.Add(w, clock, component.ClockTagComponent.Kind(), &component.ClockTag{}); err != nil {
		return 0, fmt.Errorf("clock: add tag: %w", err)
	}
	if err := ecs.Add(w, clock, component.TimeComponent.Kind(), &component.Time{}); err != nil {
		return 0, fmt.Errorf("clock: add time: %w", err)
	}
	return clock, nil
}
