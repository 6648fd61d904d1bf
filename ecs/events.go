package ecs

import "github.com/milk9111/blockgame/collision"

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const EventTypeCollision = "collision"

// CollisionEventKind identifies collision event types.
type CollisionEventKind string

const (
	CollisionEventBlockLanded  CollisionEventKind = "block_landed"
	CollisionEventPlayerLanded CollisionEventKind = "player_landed"
	CollisionEventPlayerWall   CollisionEventKind = "player_wall"
	CollisionEventPlayerTop    CollisionEventKind = "player_top"
)

// CollisionEvent is emitted when a resolver acts on a contact.
type CollisionEvent struct {
	Entity Entity
	Other  Entity
	Kind   CollisionEventKind
	Side   collision.Side
}

// EventQueue is a simple FIFO queue, cleared at the end of every tick.
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

// PushCollision is shorthand for pushing a CollisionEvent.
func (q *EventQueue) PushCollision(evt CollisionEvent) {
	q.Push(Event{Type: EventTypeCollision, Data: evt})
}

// Peek returns the queued events without clearing them.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
