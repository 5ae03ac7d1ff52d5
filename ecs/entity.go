package ecs

import "strconv"

// Entity is a packed handle: the low 32 bits hold the slot id, the high
// 32 bits its generation. The zero Entity is never alive.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

func (e Entity) Valid() bool {
	return e.id() > 0
}

// entityStore hands out ids, recycles freed slots and bumps the generation
// of a slot on destroy so stale handles stop resolving.
type entityStore struct {
	gen   []generation
	alive []bool
	free  []entityID
	count int
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		s.alive = append(s.alive, false)
		id = entityID(len(s.gen))
	}
	s.alive[id-1] = true
	s.count++
	return makeEntity(id, s.gen[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.alive[idx] = false
	s.gen[idx]++
	s.free = append(s.free, e.id())
	s.count--
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gen) {
		return false
	}
	return s.alive[id-1] && s.gen[id-1] == e.generation()
}

func (s *entityStore) list() []Entity {
	out := make([]Entity, 0, s.count)
	for i, ok := range s.alive {
		if ok {
			out = append(out, makeEntity(entityID(i+1), s.gen[i]))
		}
	}
	return out
}
