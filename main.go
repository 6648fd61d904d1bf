package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and the debug overlay")
	backend := flag.String("backend", backendAABB, "collision backend: aabb or chipmunk")
	scenePath := flag.String("scene", "", "scene spec file (defaults to the embedded prefabs/scene.yaml)")
	watch := flag.Bool("watch", false, "rebuild the scene when its spec file changes")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	game, err := NewGame(gameOptions{
		debug:     *debug,
		backend:   *backend,
		scenePath: *scenePath,
		watch:     *watch,
		logger:    logger,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowSize(game.width(), game.height())
	ebiten.SetWindowTitle(game.title())

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
