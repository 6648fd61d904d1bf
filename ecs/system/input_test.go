package system

import (
	"testing"

	"github.com/milk9111/blockgame/ecs/component"
	"github.com/stretchr/testify/assert"
)

func heldKeys(actions ...Action) KeySource {
	held := make(map[Action]bool, len(actions))
	for _, a := range actions {
		held[a] = true
	}
	return func(a Action) bool { return held[a] }
}

func TestInputSystem(t *testing.T) {
	tests := []struct {
		name string
		held []Action
		want component.Input
	}{
		{"nothing", nil, component.Input{}},
		{"left", []Action{ActionLeft}, component.Input{Left: true, MoveX: -1}},
		{"right_and_jump", []Action{ActionRight, ActionJump}, component.Input{Right: true, Jump: true, MoveX: 1}},
		{"left_and_right_cancel", []Action{ActionLeft, ActionRight}, component.Input{Left: true, Right: true}},
		{"up_down_polled", []Action{ActionUp, ActionDown}, component.Input{Up: true, Down: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t)
			player := spawnPlayer(t, w, 0, 0)
			in := inputOf(t, w, player)
			in.Jump = true

			NewInputSystem(heldKeys(tc.held...)).Update(w)

			assert.Equal(t, tc.want, *in)
		})
	}
}

func TestInputSystemNilSource(t *testing.T) {
	w := newTestWorld(t)
	assert.NotPanics(t, func() { NewInputSystem(nil).Update(w) })
}
