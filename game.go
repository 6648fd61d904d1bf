package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/blockgame/common"
	"github.com/milk9111/blockgame/ecs/render"
	"github.com/milk9111/blockgame/prefabs"
)

var backgroundColor = color.NRGBA{R: 0x18, G: 0x18, B: 0x20, A: 0xff}

type gameOptions struct {
	debug     bool
	backend   string
	scenePath string
	watch     bool
	logger    *slog.Logger
}

type Game struct {
	opts   gameOptions
	logger *slog.Logger

	spec     *prefabs.SceneSpec
	session  *session
	renderer *render.RenderSystem

	watcher *prefabs.Watcher
	paused  bool
	pauseUI *ebitenui.UI
}

func NewGame(opts gameOptions) (*Game, error) {
	logger := opts.logger
	if logger == nil {
		logger = slog.Default()
	}
	g := &Game{
		opts:     opts,
		logger:   logger,
		renderer: render.NewRenderSystem(),
	}

	spec, err := loadScene(opts.scenePath)
	if err != nil {
		return nil, err
	}
	if err := g.start(spec); err != nil {
		return nil, err
	}

	if opts.watch {
		dir := "prefabs"
		if opts.scenePath != "" {
			dir = filepath.Dir(opts.scenePath)
		}
		watcher, err := prefabs.NewWatcher(dir)
		if err != nil {
			return nil, fmt.Errorf("game: watch %s: %w", dir, err)
		}
		g.watcher = watcher
		logger.Info("watching scene", slog.String("dir", dir))
	}

	g.pauseUI = NewPauseUI(g)
	return g, nil
}

func loadScene(path string) (*prefabs.SceneSpec, error) {
	if path == "" {
		return prefabs.LoadSceneSpec()
	}
	spec, err := prefabs.LoadSpecFile[prefabs.SceneSpec](path)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func (g *Game) start(spec *prefabs.SceneSpec) error {
	s, err := newSession(spec, g.opts.backend, g.logger)
	if err != nil {
		return err
	}
	g.spec = spec
	g.session = s
	return nil
}

// Restart rebuilds the current scene from scratch.
func (g *Game) Restart() {
	if err := g.start(g.spec); err != nil {
		g.logger.Error("restart failed", slog.Any("err", err))
		return
	}
	g.paused = false
}

// Resume closes the pause menu without integrating the paused time.
func (g *Game) Resume() {
	g.paused = false
	g.session.clock.Reset()
}

func (g *Game) reload(path string) {
	if g.opts.scenePath != "" && filepath.Base(path) != filepath.Base(g.opts.scenePath) {
		return
	}
	if g.opts.scenePath == "" && filepath.Base(path) != prefabs.DefaultScene {
		return
	}
	spec, err := loadScene(g.opts.scenePath)
	if err != nil {
		g.logger.Warn("scene reload failed, keeping current scene", slog.String("path", path), slog.Any("err", err))
		return
	}
	if err := g.start(spec); err != nil {
		g.logger.Warn("scene rebuild failed, keeping current scene", slog.String("path", path), slog.Any("err", err))
		return
	}
	g.logger.Info("scene reloaded", slog.String("path", path))
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("scene watcher", slog.Any("err", err))
			}
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.paused {
			g.Resume()
		} else {
			g.paused = true
		}
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.session.update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.renderer.Draw(g.session.world, screen)

	if g.opts.debug {
		if g.session.rigid != nil {
			render.DrawPhysicsDebug(g.session.rigid, g.session.world, screen)
		}
		render.DrawPlayerStateDebug(g.session.world, screen)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f", ebiten.ActualFPS()), 10, g.height()-20)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// Close stops the scene watcher, if any.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) width() int {
	if g.spec != nil && g.spec.Window.Width > 0 {
		return g.spec.Window.Width
	}
	return common.BaseWidth
}

func (g *Game) height() int {
	if g.spec != nil && g.spec.Window.Height > 0 {
		return g.spec.Window.Height
	}
	return common.BaseHeight
}

func (g *Game) title() string {
	if g.spec != nil && g.spec.Window.Title != "" {
		return g.spec.Window.Title
	}
	return common.DefaultTitle
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.width()), float64(g.height())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
