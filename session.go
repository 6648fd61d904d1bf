package main

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/ecs/entity"
	"github.com/milk9111/blockgame/ecs/system"
	"github.com/milk9111/blockgame/prefabs"
)

const (
	backendAABB     = "aabb"
	backendChipmunk = "chipmunk"
)

// session is one run of the scene: a fresh world and the systems driving it.
// Restart and hot reload throw the whole session away.
type session struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	scene     *entity.Scene
	clock     *system.ClockSystem
	rigid     *system.RigidBodySystem
}

func newSession(spec *prefabs.SceneSpec, backend string, logger *slog.Logger) (*session, error) {
	w := ecs.NewWorld()
	scene, err := entity.BuildScene(w, spec)
	if err != nil {
		return nil, err
	}

	s := &session{
		world: w,
		scene: scene,
		clock: system.NewClockSystem(spec.Tick.FixedStep, spec.Tick.MaxStep, 1/float64(ebiten.TPS())),
	}

	scheduler := ecs.NewScheduler(s.clock, system.NewInputSystem(keyboardHeld))
	switch backend {
	case backendAABB, "":
		player := system.NewPlayerSystem(logger)
		player.LogFallSpeed = spec.Debug.LogFallSpeed
		scheduler.Add(system.NewBlockFallSystem())
		scheduler.Add(system.NewBlockCollisionSystem(logger))
		scheduler.Add(player)
	case backendChipmunk:
		s.rigid = system.NewRigidBodySystem(system.RigidBodyConfig{
			Iterations: spec.Rigid.Iterations,
			Gravity:    spec.Player.Gravity,
			Friction:   spec.Rigid.Friction,
			BlockMass:  spec.Rigid.BlockMass,
			PlayerMass: spec.Rigid.PlayerMass,
		}, logger)
		scheduler.Add(s.rigid)
	default:
		return nil, fmt.Errorf("session: unknown backend %q", backend)
	}
	scheduler.Add(system.NewDiagnosticsSystem(logger))
	s.scheduler = scheduler

	logger.Info("scene built",
		slog.String("scene", spec.Name),
		slog.String("backend", backend),
		slog.Int("walls", len(scene.Walls)),
		slog.Int("blocks", len(scene.Blocks)),
	)
	return s, nil
}

func (s *session) update() {
	s.scheduler.Update(s.world)
}
