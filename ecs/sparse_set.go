package ecs

// SparseSet is a cache-friendly storage for one component kind keyed by
// entity slot id. Values are stored as `any`; the generic helpers in
// generics.go restore the concrete pointer type.
type SparseSet struct {
	denseEntities []Entity
	denseValues   []any
	sparse        []int
}

// Has returns true if the entity currently owns a value in the set.
func (s *SparseSet) Has(e Entity) bool {
	if s == nil {
		return false
	}
	idx, ok := s.index(e.id())
	return ok && s.denseEntities[idx] == e
}

// Get returns the component for e, or nil.
func (s *SparseSet) Get(e Entity) any {
	if !s.Has(e) {
		return nil
	}
	idx, _ := s.index(e.id())
	return s.denseValues[idx]
}

// Set inserts or updates a component for e. A stale handle for the same slot
// is overwritten.
func (s *SparseSet) Set(e Entity, v any) {
	if s == nil || !e.Valid() {
		return
	}
	id := int(e.id())
	for len(s.sparse) <= id {
		s.sparse = append(s.sparse, -1)
	}
	if idx, ok := s.index(e.id()); ok {
		s.denseEntities[idx] = e
		s.denseValues[idx] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id] = len(s.denseEntities) - 1
}

// Remove deletes the component for e if present.
func (s *SparseSet) Remove(e Entity) bool {
	if s == nil || !s.Has(e) {
		return false
	}
	s.removeSlot(e.id())
	return true
}

// Len returns the number of stored values.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}

// Entities returns the dense entity list. Callers must not modify it.
func (s *SparseSet) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.denseEntities
}

func (s *SparseSet) index(id entityID) (int, bool) {
	if int(id) >= len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[id]
	if idx < 0 || idx >= len(s.denseEntities) || s.denseEntities[idx].id() != id {
		return 0, false
	}
	return idx, true
}

func (s *SparseSet) removeSlot(id entityID) {
	idx, ok := s.index(id)
	if !ok {
		return
	}
	last := len(s.denseEntities) - 1
	moved := s.denseEntities[last]

	s.denseEntities[idx] = moved
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[moved.id()] = idx

	s.denseEntities = s.denseEntities[:last]
	s.denseValues[last] = nil
	s.denseValues = s.denseValues[:last]
	s.sparse[id] = -1
}
