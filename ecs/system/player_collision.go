package system

import (
	"github.com/milk9111/blockgame/collision"
	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/ecs/component"
)

// PlayerContact summarises one resolver pass over every obstacle.
type PlayerContact struct {
	Contacts int
	Bottom   bool
	Top      bool
	Left     bool
	Right    bool
}

// Any reports whether the player touched anything this pass.
func (c PlayerContact) Any() bool {
	return c.Contacts > 0
}

// ResolvePlayerContacts tests the player against every obstacle in id order
// and pushes it out of each one before testing the next. Bottom contacts
// land the player: both vertical accumulators reset and the player rests
// exactly on top. Top contacts are reported but not resolved.
func ResolvePlayerContacts(w *ecs.World, player ecs.Entity, t *component.Transform, ext *component.Extent, phys *component.PlayerPhysics) PlayerContact {
	var contact PlayerContact
	if w == nil || t == nil || ext == nil || phys == nil {
		return contact
	}

	for _, ob := range collectObstacles(w, player) {
		side, hit := collision.Collide(t.Center(), ext.Size(), ob.center, ob.size)
		if !hit {
			continue
		}
		contact.Contacts++

		evt := ecs.CollisionEvent{Entity: player, Other: ob.entity, Side: side}
		switch side {
		case collision.SideBottom:
			contact.Bottom = true
			phys.JumpVelocity = phys.JumpImpulse
			phys.FallSpeed = phys.FallSpeedReset
			t.Y = ob.center.Y + ob.size.Y/2 + ext.HalfHeight()
			evt.Kind = ecs.CollisionEventPlayerLanded
		case collision.SideLeft:
			contact.Left = true
			t.X = ob.center.X + ob.size.X/2 + ext.HalfWidth()
			evt.Kind = ecs.CollisionEventPlayerWall
		case collision.SideRight:
			contact.Right = true
			t.X = ob.center.X - ob.size.X/2 - ext.HalfWidth()
			evt.Kind = ecs.CollisionEventPlayerWall
		case collision.SideTop:
			// Head bumps are reported only.
			contact.Top = true
			evt.Kind = ecs.CollisionEventPlayerTop
		}
		w.Events().PushCollision(evt)
	}

	return contact
}
