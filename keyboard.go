package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/blockgame/ecs/system"
)

var actionKeys = map[system.Action][]ebiten.Key{
	system.ActionLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	system.ActionRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	system.ActionJump:  {ebiten.KeySpace},
	system.ActionUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	system.ActionDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
}

// keyboardHeld is the live KeySource for the input system.
func keyboardHeld(a system.Action) bool {
	for _, k := range actionKeys[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
