package system

import "github.com/milk9111/blockgame/ecs/component"

// NextVerticalState decides the player's vertical state from this tick's
// contacts. Standing on something always grounds the player. A jump keeps
// its arc until it lands. Every other case falls, which is also the answer
// when nothing was touched at all.
func NextVerticalState(current component.VerticalState, contact PlayerContact) component.VerticalState {
	switch {
	case contact.Bottom:
		return component.Grounded
	case current == component.Jumping:
		return component.Jumping
	default:
		return component.Falling
	}
}

// MovePlayer integrates one tick of motion for the player's current state.
// Horizontal input applies in every state. Starting a jump only nudges the
// player clear of the ground; the arc begins on the next tick.
func MovePlayer(t *component.Transform, phys *component.PlayerPhysics, input *component.Input, dt float64) {
	if t == nil || phys == nil {
		return
	}

	jump := false
	if input != nil {
		t.X += input.MoveX * phys.MovementSpeed * dt
		jump = input.Jump
	}

	switch phys.State {
	case component.Grounded:
		if jump {
			t.Y += phys.JumpNudge
			phys.State = component.Jumping
		}
	case component.Jumping:
		t.Y += phys.JumpVelocity*dt + 0.5*phys.Gravity*dt*dt
		phys.JumpVelocity += phys.Gravity * dt
	case component.Falling:
		t.Y += phys.FallSpeed * dt
		phys.FallSpeed += phys.Gravity*dt - phys.FallBias
	}
}
