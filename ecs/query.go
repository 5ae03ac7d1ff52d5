package ecs

// IntersectEntities returns the owners present in every set, walking the
// smallest one. A nil set yields nil.
func IntersectEntities(sets ...*SparseSet) []Entity {
	if len(sets) == 0 {
		return nil
	}
	smallest := 0
	for i, s := range sets {
		if s == nil {
			return nil
		}
		if s.Len() < sets[smallest].Len() {
			smallest = i
		}
	}
	out := make([]Entity, 0, sets[smallest].Len())
outer:
	for _, e := range sets[smallest].Entities() {
		for i, s := range sets {
			if i != smallest && !s.Has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}
