package system

import (
	"log/slog"

	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/ecs/component"
)

// PlayerSystem advances the singleton player by one tick in a fixed order:
// resolve contacts against the current positions, decide the vertical state,
// then integrate motion for that state.
type PlayerSystem struct {
	logger *slog.Logger
	// LogFallSpeed emits the per-tick fall speed and gravity at debug level.
	LogFallSpeed bool
}

func NewPlayerSystem(logger *slog.Logger) *PlayerSystem {
	return &PlayerSystem{logger: logger}
}

func (s *PlayerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	log := loggerOr(s.logger)

	player, err := w.Single(component.PlayerTagComponent.Kind())
	if err != nil {
		log.Warn("player: skipping tick",
			slog.Int("players", len(w.Query(component.PlayerTagComponent.Kind()))),
			slog.Any("err", err),
		)
		return
	}

	t, okT := ecs.Get(w, player, component.TransformComponent.Kind())
	ext, okE := ecs.Get(w, player, component.ExtentComponent.Kind())
	phys, okP := ecs.Get(w, player, component.PlayerPhysicsComponent.Kind())
	if !okT || !okE || !okP {
		log.Warn("player: missing transform, extent or physics", slog.String("entity", player.String()))
		return
	}
	input, _ := ecs.Get(w, player, component.InputComponent.Kind())
	dt := deltaTime(w)

	contact := ResolvePlayerContacts(w, player, t, ext, phys)
	phys.State = NextVerticalState(phys.State, contact)
	if pc, ok := ecs.Get(w, player, component.PlayerCollisionComponent.Kind()); ok {
		recordContact(pc, contact)
	}

	MovePlayer(t, phys, input, dt)

	if s.LogFallSpeed {
		log.Debug("player: tick",
			slog.String("state", phys.State.String()),
			slog.Float64("fall_speed", phys.FallSpeed),
			slog.Float64("jump_velocity", phys.JumpVelocity),
			slog.Float64("gravity", phys.Gravity),
		)
	}
}

func recordContact(pc *component.PlayerCollision, c PlayerContact) {
	pc.Contacts = c.Contacts
	pc.Bottom = c.Bottom
	pc.Top = c.Top
	switch {
	case c.Left:
		pc.Wall = component.WallLeft
	case c.Right:
		pc.Wall = component.WallRight
	default:
		pc.Wall = component.WallNone
	}
}
