package system

import (
	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/ecs/component"
)

// Action is a logical input. Up and Down are polled but nothing reads them yet.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionJump
	ActionUp
	ActionDown
)

// KeySource reports whether an action's key is currently held.
type KeySource func(Action) bool

type InputSystem struct {
	held KeySource
}

func NewInputSystem(held KeySource) *InputSystem {
	return &InputSystem{held: held}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil || i.held == nil {
		return
	}

	left := i.held(ActionLeft)
	right := i.held(ActionRight)
	jump := i.held(ActionJump)
	up := i.held(ActionUp)
	down := i.held(ActionDown)

	moveX := 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.Left = left
		input.Right = right
		input.Jump = jump
		input.Up = up
		input.Down = down
		input.MoveX = moveX
	})
}
