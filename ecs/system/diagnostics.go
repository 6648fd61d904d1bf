package system

import (
	"log/slog"

	"github.com/milk9111/blockgame/ecs"
)

// DiagnosticsSystem logs this tick's collision events at debug level. It runs
// last so it sees everything the resolvers pushed.
type DiagnosticsSystem struct {
	logger *slog.Logger
}

func NewDiagnosticsSystem(logger *slog.Logger) *DiagnosticsSystem {
	return &DiagnosticsSystem{logger: logger}
}

func (d *DiagnosticsSystem) Update(w *ecs.World) {
	if d == nil || w == nil {
		return
	}
	log := loggerOr(d.logger)
	for _, evt := range w.Events().Peek() {
		ce, ok := evt.Data.(ecs.CollisionEvent)
		if !ok {
			continue
		}
		log.Debug("collision",
			slog.String("kind", string(ce.Kind)),
			slog.String("entity", entityName(w, ce.Entity)),
			slog.String("other", entityName(w, ce.Other)),
			slog.String("side", ce.Side.String()),
		)
	}
}
