package ecs

import "github.com/milk9111/glitchknight/common"

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	// EventCombat carries a component.CombatEvent.
	EventCombat = "combat"
	// EventCollision carries a CollisionEvent.
	EventCollision = "collision"
	// EventModeSwitch carries the new obj.Mode.
	EventModeSwitch = "mode_switch"
)

// CollisionEventKind identifies collision event types.
type CollisionEventKind string

const (
	CollisionEventHazardEnter CollisionEventKind = "hazard_enter"
	CollisionEventHazardExit  CollisionEventKind = "hazard_exit"
)

// CollisionEvent is emitted when a body starts or stops touching a hazard.
// Source is the center of the hazard shape.
type CollisionEvent struct {
	Entity Entity
	Kind   CollisionEventKind
	Source common.Vec2
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
