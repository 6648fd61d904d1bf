package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/ecs/component"
)

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw fills every visible box with its sprite color, lowest Z first.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	b := screen.Bounds()
	v := newView(w, b.Dx(), b.Dy())

	entities := w.Query(
		component.TransformComponent.Kind(),
		component.ExtentComponent.Kind(),
		component.SpriteComponent.Kind(),
	)
	sort.SliceStable(entities, func(i, j int) bool {
		ti, _ := ecs.Get(w, entities[i], component.TransformComponent.Kind())
		tj, _ := ecs.Get(w, entities[j], component.TransformComponent.Kind())
		if ti.Z != tj.Z {
			return ti.Z < tj.Z
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	px := pixel()
	for _, e := range entities {
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if s.Hidden {
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		ext, _ := ecs.Get(w, e, component.ExtentComponent.Kind())

		// Top-left corner in world space is the max-Y corner.
		x, y := v.toScreen(cp.Vector{X: t.X - ext.HalfWidth(), Y: t.Y + ext.HalfHeight()})

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(ext.Width*v.zoom, ext.Height*v.zoom)
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(spriteColor(s))
		screen.DrawImage(px, op)
	}
}

func spriteColor(s *component.Sprite) color.Color {
	if s.Color == nil {
		return color.White
	}
	return s.Color
}
