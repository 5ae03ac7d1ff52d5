package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/glitchknight/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_destroy_middle", 3, 1},
		{"none_destroyed", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			want := c.create
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for a live entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second destroy should report false")
				}
				want--
			}
			if got := len(Entities(w)); got != want {
				t.Fatalf("expected %d entities, got %d", want, got)
			}
		})
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected the freed id to be reused")
	}
	if fresh == old {
		t.Fatalf("reused handle must carry a new generation")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle reported alive")
	}
	if Has(w, fresh, kind) {
		t.Fatalf("components must not survive destruction")
	}
	if err := Add(w, old, kind, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestAddGetRemove(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	e := CreateEntity(w)

	tests := []struct {
		name    string
		kind    component.ComponentKind[int]
		value   *int
		wantErr error
	}{
		{"invalid_kind", component.ComponentKind[int]{}, intPtr(1), component.ErrInvalidComponentKind},
		{"nil_value", ints.Kind(), nil, component.ErrNilComponent},
		{"ok", ints.Kind(), intPtr(7), nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Add(w, e, tc.kind, tc.value)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	v, ok := Get(w, e, ints.Kind())
	if !ok || *v != 7 {
		t.Fatalf("expected 7, got %v ok=%v", v, ok)
	}
	*v = 8
	if v2, _ := Get(w, e, ints.Kind()); *v2 != 8 {
		t.Fatalf("Get should return the stored pointer")
	}
	if !Remove(w, e, ints.Kind()) || Has(w, e, ints.Kind()) {
		t.Fatalf("expected the component to be removed")
	}
	if Remove(w, e, ints.Kind()) {
		t.Fatalf("second remove should report false")
	}
}

func TestFirst(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()
	if _, _, ok := First(w, kind); ok {
		t.Fatalf("expected no owner in an empty world")
	}
	CreateEntity(w)
	e := CreateEntity(w)
	if err := Add(w, e, kind, intPtr(3)); err != nil {
		t.Fatal(err)
	}
	got, v, ok := First(w, kind)
	if !ok || got != e || *v != 3 {
		t.Fatalf("expected %s with 3, got %s %v ok=%v", e, got, v, ok)
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponentKind[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	for _, e := range []Entity{e1, e3} {
		if err := Add(w, e, kind, intPtr(1)); err != nil {
			t.Fatal(err)
		}
	}

	var ents []Entity
	ForEach(w, kind, func(e Entity, _ *int) {
		ents = append(ents, e)
		// destroying while iterating must not skip anything
		DestroyEntity(w, e)
	})
	set := toSet(ents)
	if _, ok := set[e1]; !ok {
		t.Fatalf("expected e1 in ForEach result")
	}
	if _, ok := set[e3]; !ok {
		t.Fatalf("expected e3 in ForEach result")
	}
	if _, ok := set[e2]; ok {
		t.Fatalf("did not expect e2 in ForEach result")
	}
}

func TestForEachIntersections(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()
	kd := component.NewComponentKind[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)
	dead := CreateEntity(w)

	add := func(e Entity, kinds ...component.ComponentKind[int]) {
		t.Helper()
		for _, k := range kinds {
			if err := Add(w, e, k, intPtr(int(e.id()))); err != nil {
				t.Fatal(err)
			}
		}
	}
	add(e1, ka, kb)
	add(e2, ka, kb, kc, kd)
	add(e3, kb, kc, kd)
	add(dead, ka, kb, kc, kd)
	DestroyEntity(w, dead)

	tests := []struct {
		name string
		run  func() []Entity
		want []Entity
	}{
		{"two", func() []Entity {
			var res []Entity
			ForEach2(w, ka, kb, func(e Entity, _, _ *int) { res = append(res, e) })
			return res
		}, []Entity{e1, e2}},
		{"three", func() []Entity {
			var res []Entity
			ForEach3(w, kb, kc, kd, func(e Entity, _, _, _ *int) { res = append(res, e) })
			return res
		}, []Entity{e2, e3}},
		{"four", func() []Entity {
			var res []Entity
			ForEach4(w, ka, kb, kc, kd, func(e Entity, _, _, _, _ *int) { res = append(res, e) })
			return res
		}, []Entity{e2}},
		{"missing_store", func() []Entity {
			var res []Entity
			ForEach2(w, ka, component.NewComponentKind[int](), func(e Entity, _, _ *int) { res = append(res, e) })
			return res
		}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := toSet(tc.run())
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for _, e := range tc.want {
				if _, ok := got[e]; !ok {
					t.Fatalf("expected %s in result %v", e, got)
				}
			}
		})
	}
}

type recordSystem struct {
	name  string
	order *[]string
	push  bool
}

func (s *recordSystem) Update(w *World) {
	*s.order = append(*s.order, s.name)
	if s.push {
		w.Events().Push(Event{Type: EventCombat})
	}
}

func TestUpdateRunsSystemsInOrderAndFlushesEvents(t *testing.T) {
	w := NewWorld()
	var order []string
	var seen int
	w.AddSystem(&recordSystem{name: "a", order: &order, push: true})
	w.AddSystem(&recordSystem{name: "b", order: &order})
	w.AddSystem(systemFunc(func(w *World) { seen = w.Events().Len() }))

	w.Update()
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected system order %v", order)
	}
	if seen != 1 {
		t.Fatalf("later systems should see earlier events, saw %d", seen)
	}
	if w.Events().Len() != 0 {
		t.Fatalf("undrained events should be dropped after Update")
	}
}

type systemFunc func(w *World)

func (f systemFunc) Update(w *World) { f(w) }

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventCollision})
	q.Push(Event{Type: EventModeSwitch})
	got := q.Drain()
	if len(got) != 2 || got[0].Type != EventCollision || got[1].Type != EventModeSwitch {
		t.Fatalf("unexpected drain %v", got)
	}
	if q.Drain() != nil {
		t.Fatalf("queue should be empty after drain")
	}
	var nilQueue *EventQueue
	nilQueue.Push(Event{})
	if nilQueue.Len() != 0 {
		t.Fatalf("nil queue should stay empty")
	}
}

func TestComponentKindName(t *testing.T) {
	kind := component.NewComponentKind[component.Transform]()
	if got := kind.Name(); got != "component.Transform" {
		t.Fatalf("unexpected kind name %q", got)
	}
	var zero component.ComponentKind[int]
	if zero.Valid() || zero.Name() != "invalid" {
		t.Fatalf("zero kind should be invalid")
	}
}
