package ecs

// SparseSet stores one component value per entity slot. Values live in a
// dense slice so iteration stays linear in the number of owners.
type SparseSet struct {
	dense  []Entity
	values []any
	sparse []int
}

func (s *SparseSet) index(id entityID) int {
	if s == nil || id == 0 || int(id) > len(s.sparse) {
		return -1
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.dense) || s.dense[idx].id() != id {
		return -1
	}
	return idx
}

// Has reports whether e owns a value. A stale handle for a reused slot does
// not match.
func (s *SparseSet) Has(e Entity) bool {
	idx := s.index(e.id())
	return idx >= 0 && s.dense[idx] == e
}

// Get returns the value owned by e, or nil.
func (s *SparseSet) Get(e Entity) any {
	if !s.Has(e) {
		return nil
	}
	return s.values[s.sparse[e.id()-1]]
}

// Set inserts or replaces the value for e.
func (s *SparseSet) Set(e Entity, v any) {
	if s == nil || !e.Valid() {
		return
	}
	id := e.id()
	for int(id) > len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if idx := s.index(id); idx >= 0 {
		s.dense[idx] = e
		s.values[idx] = v
		return
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense) - 1
}

// Remove deletes the value held in e's slot. It reports whether anything
// was removed.
func (s *SparseSet) Remove(e Entity) bool {
	idx := s.index(e.id())
	if idx < 0 {
		return false
	}
	last := len(s.dense) - 1
	moved := s.dense[last]
	s.dense[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[moved.id()-1] = idx

	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[e.id()-1] = -1
	return true
}

// Len returns the number of owners.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}

// Entities returns the dense owner list. Callers must not modify it.
func (s *SparseSet) Entities() []Entity {
	if s == nil {
		return nil
	}
	return s.dense
}
