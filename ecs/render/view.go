package render

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/ecs/component"
)

// view maps world space (Y up, origin at the camera) to screen pixels
// (Y down, origin top-left).
type view struct {
	camX, camY float64
	zoom       float64
	halfW      float64
	halfH      float64
}

func newView(w *ecs.World, screenW, screenH int) view {
	v := view{zoom: 1, halfW: float64(screenW) / 2, halfH: float64(screenH) / 2}
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return v
	}
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		v.camX = t.X
		v.camY = t.Y
	}
	if c, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok && c.Zoom > 0 {
		v.zoom = c.Zoom
	}
	return v
}

func (v view) toScreen(p cp.Vector) (float64, float64) {
	return v.halfW + (p.X-v.camX)*v.zoom, v.halfH - (p.Y-v.camY)*v.zoom
}
