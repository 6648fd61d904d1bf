package ecs

import (
	"errors"
	"sort"

	"github.com/milk9111/blockgame/ecs/component"
)

var (
	// ErrNoEntity is returned by Single when no live entity has the kind.
	ErrNoEntity = errors.New("ecs: no entity with component")
	// ErrMultipleEntities is returned by Single when more than one live entity has the kind.
	ErrMultipleEntities = errors.New("ecs: more than one entity with component")
)

// World owns entities and their component stores.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity kills e and drops all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid and not destroyed.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// AddComponent stores v as kind on e, replacing any previous value.
func (w *World) AddComponent(e Entity, kind component.Kind, v any) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if kind == nil || kind.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	w.store(kind.ID(), true).Set(e, v)
	return nil
}

// GetComponent returns the raw value stored as kind on e.
func (w *World) GetComponent(e Entity, kind component.Kind) (any, bool) {
	if w == nil || kind == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	s := w.store(kind.ID(), false)
	if !s.Has(e) {
		return nil, false
	}
	return s.Get(e), true
}

// HasComponent reports whether e owns kind.
func (w *World) HasComponent(e Entity, kind component.Kind) bool {
	if w == nil || kind == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.store(kind.ID(), false).Has(e)
}

// Query returns the live entities owning every kind, in ascending id order so
// iteration follows spawn order.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, 0, len(kinds))
	for _, k := range kinds {
		if k == nil {
			return nil
		}
		s := w.store(k.ID(), false)
		if s.Len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	// iterate smallest set
	sort.Slice(sets, func(i, j int) bool { return sets[i].Len() < sets[j].Len() })

	out := make([]Entity, 0, sets[0].Len())
	for _, e := range sets[0].Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		all := true
		for _, s := range sets[1:] {
			if !s.Has(e) {
				all = false
				break
			}
		}
		if all {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id() < out[j].id() })
	return out
}

// First returns the lowest-id live entity owning kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Single returns the only live entity owning kind. It fails with ErrNoEntity
// or ErrMultipleEntities otherwise.
func (w *World) Single(kind component.Kind) (Entity, error) {
	ents := w.Query(kind)
	switch len(ents) {
	case 0:
		return 0, ErrNoEntity
	case 1:
		return ents[0], nil
	default:
		return 0, ErrMultipleEntities
	}
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s := w.stores[id]
	if s == nil && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
