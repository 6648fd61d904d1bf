package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/blockgame/ecs/component"
)

func spawn(t *testing.T, w *World, x, y float64, falling bool) Entity {
	t.Helper()
	e := CreateEntity(w)
	if err := Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e, component.BlockPhysicsComponent.Kind(), &component.BlockPhysics{FallSpeed: 100, IsFalling: falling}); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestEntitySlotReuse(t *testing.T) {
	cases := []struct {
		name    string
		create  int
		destroy []int
		// slots handed back by the next creates, newest free first
		wantSlots []int
	}{
		{"no_free_slots", 2, nil, []int{3}},
		{"reuse_single", 3, []int{1}, []int{2, 4}},
		{"reuse_lifo", 4, []int{0, 2}, []int{3, 1, 5}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			for i, e := range ents {
				if int(e.id()) != i+1 {
					t.Fatalf("entity %d: expected slot %d, got %d", i, i+1, e.id())
				}
			}
			for _, i := range c.destroy {
				if !w.DestroyEntity(ents[i]) {
					t.Fatalf("destroying live entity %v should succeed", ents[i])
				}
			}

			for _, want := range c.wantSlots {
				e := CreateEntity(w)
				if int(e.id()) != want {
					t.Fatalf("expected slot %d, got %v", want, e)
				}
			}
		})
	}
}

func TestEntityGenerations(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	if !w.DestroyEntity(old) {
		t.Fatal("failed to destroy entity")
	}
	if w.DestroyEntity(old) {
		t.Fatal("destroying a dead entity should return false")
	}

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), reused.id())
	}
	if reused.generation() != old.generation()+1 {
		t.Fatalf("expected generation %d, got %d", old.generation()+1, reused.generation())
	}
	if w.IsAlive(old) {
		t.Fatal("stale handle should not be alive")
	}
	if got := reused.String(); got != "1v1" {
		t.Fatalf("expected 1v1, got %s", got)
	}
	var zero Entity
	if zero.Valid() || w.IsAlive(zero) {
		t.Fatal("the zero entity is never valid")
	}

	kind := component.TransformComponent.Kind()
	if err := Add(w, old, kind, &component.Transform{}); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
	if err := Add(w, reused, kind, nil); !errors.Is(err, component.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	if err := w.AddComponent(reused, component.ComponentKind[component.Transform]{}, &component.Transform{}); !errors.Is(err, component.ErrInvalidComponentKind) {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestStaleHandleCannotReadReusedSlot(t *testing.T) {
	w := NewWorld()
	old := spawn(t, w, 1, 2, true)
	w.DestroyEntity(old)

	next := CreateEntity(w)
	if next.id() != old.id() {
		t.Fatalf("expected slot reuse, got %v after %v", next, old)
	}
	if Has(w, next, component.TransformComponent.Kind()) {
		t.Fatal("new entity in a reused slot should not inherit components")
	}
	if err := Add(w, next, component.TransformComponent.Kind(), &component.Transform{X: 9}); err != nil {
		t.Fatal(err)
	}
	if _, ok := Get(w, old, component.TransformComponent.Kind()); ok {
		t.Fatal("stale handle read the new owner's component")
	}
	if got := w.Query(component.BlockPhysicsComponent.Kind()); len(got) != 0 {
		t.Fatalf("expected destroyed block to leave the query, got %v", got)
	}
}

func TestQueryOrder(t *testing.T) {
	cases := []struct {
		name string
		// order in which the five entities get their Obstacle component
		addOrder []int
		destroy  int // -1 = none
		want     []int
	}{
		{"spawn_order", []int{0, 1, 2, 3, 4}, -1, []int{0, 1, 2, 3, 4}},
		{"reverse_insert", []int{4, 3, 2, 1, 0}, -1, []int{0, 1, 2, 3, 4}},
		{"swap_remove_middle", []int{0, 1, 2, 3, 4}, 1, []int{0, 2, 3, 4}},
		{"partial", []int{3, 0}, -1, []int{0, 3}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, 5)
			for i := 0; i < 5; i++ {
				ents = append(ents, CreateEntity(w))
			}
			for _, i := range c.addOrder {
				if err := Add(w, ents[i], component.ObstacleComponent.Kind(), &component.Obstacle{}); err != nil {
					t.Fatal(err)
				}
			}
			if c.destroy >= 0 {
				w.DestroyEntity(ents[c.destroy])
			}

			got := w.Query(component.ObstacleComponent.Kind())
			if len(got) != len(c.want) {
				t.Fatalf("expected %d entities, got %v", len(c.want), got)
			}
			for i, idx := range c.want {
				if got[i] != ents[idx] {
					t.Fatalf("query position %d: expected %v, got %v", i, ents[idx], got[i])
				}
			}

			first, ok := w.First(component.ObstacleComponent.Kind())
			if !ok || first != ents[c.want[0]] {
				t.Fatalf("expected First to return %v, got %v ok=%v", ents[c.want[0]], first, ok)
			}
		})
	}
}

func TestQueryIntersection(t *testing.T) {
	w := NewWorld()
	a := spawn(t, w, 0, 0, true)
	wall := CreateEntity(w)
	if err := Add(w, wall, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		t.Fatal(err)
	}
	b := spawn(t, w, 0, 0, false)

	both := w.Query(component.TransformComponent.Kind(), component.BlockPhysicsComponent.Kind())
	if len(both) != 2 || both[0] != a || both[1] != b {
		t.Fatalf("expected [%v %v], got %v", a, b, both)
	}
	if got := w.Query(component.TransformComponent.Kind(), component.PlayerTagComponent.Kind()); got != nil {
		t.Fatalf("expected no players, got %v", got)
	}
	if got := w.Query(); got != nil {
		t.Fatalf("expected empty query for no kinds, got %v", got)
	}
	if _, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		t.Fatal("First should report no player")
	}
}

func TestSingle(t *testing.T) {
	cases := []struct {
		name    string
		tagged  int
		wantErr error
	}{
		{"none", 0, ErrNoEntity},
		{"one", 1, nil},
		{"two", 2, ErrMultipleEntities},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			spawn(t, w, 0, 0, true)
			var last Entity
			for i := 0; i < c.tagged; i++ {
				last = CreateEntity(w)
				if err := Add(w, last, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
					t.Fatal(err)
				}
			}

			e, err := w.Single(component.PlayerTagComponent.Kind())
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("expected err %v, got %v", c.wantErr, err)
			}
			if c.wantErr == nil && e != last {
				t.Fatalf("expected %v, got %v", last, e)
			}
		})
	}
}

func TestForEach2(t *testing.T) {
	w := NewWorld()
	falling := spawn(t, w, 0, 100, true)
	landed := spawn(t, w, 10, 0, false)
	wall := CreateEntity(w)
	if err := Add(w, wall, component.TransformComponent.Kind(), &component.Transform{Y: -50}); err != nil {
		t.Fatal(err)
	}

	var visited []Entity
	ForEach2(w, component.BlockPhysicsComponent.Kind(), component.TransformComponent.Kind(), func(e Entity, b *component.BlockPhysics, tr *component.Transform) {
		visited = append(visited, e)
		if b.IsFalling {
			tr.Y -= b.FallSpeed
		}
	})

	if len(visited) != 2 || visited[0] != falling || visited[1] != landed {
		t.Fatalf("expected [%v %v], got %v", falling, landed, visited)
	}
	for _, c := range []struct {
		e    Entity
		want float64
	}{
		{falling, 0},
		{landed, 0},
		{wall, -50},
	} {
		tr, ok := Get(w, c.e, component.TransformComponent.Kind())
		if !ok {
			t.Fatalf("missing transform on %v", c.e)
		}
		if tr.Y != c.want {
			t.Fatalf("%v: expected Y %v, got %v", c.e, c.want, tr.Y)
		}
	}
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	a := spawn(t, w, 1, 0, true)
	b := spawn(t, w, 2, 0, true)
	w.DestroyEntity(a)

	sum := 0.0
	var visited []Entity
	ForEach(w, component.TransformComponent.Kind(), func(e Entity, tr *component.Transform) {
		visited = append(visited, e)
		sum += tr.X
	})
	if len(visited) != 1 || visited[0] != b || sum != 2 {
		t.Fatalf("expected only %v with X 2, got %v sum=%v", b, visited, sum)
	}
}

func TestSchedulerFlushesEvents(t *testing.T) {
	w := NewWorld()
	var seen []int
	s := NewScheduler(
		systemFunc(func(w *World) {
			w.Events().PushCollision(CollisionEvent{Kind: CollisionEventBlockLanded})
		}),
		nil,
		systemFunc(func(w *World) {
			seen = append(seen, len(w.Events().Peek()))
		}),
	)

	for i := 0; i < 3; i++ {
		s.Update(w)
	}
	for tick, n := range seen {
		if n != 1 {
			t.Fatalf("tick %d: expected later system to see 1 event, saw %d", tick, n)
		}
	}
	if n := len(w.Events().Peek()); n != 0 {
		t.Fatalf("expected queue flushed after tick, got %d events", n)
	}
}

type systemFunc func(w *World)

func (f systemFunc) Update(w *World) { f(w) }
