package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/ecs/component"
	"github.com/milk9111/blockgame/ecs/system"
	"golang.org/x/image/colornames"
)

const (
	// normalLength is in world units.
	normalLength  = 12
	debugLineSize = 1.5
)

var roleColors = map[system.BodyRole]color.Color{
	system.BodyStatic:   colornames.Limegreen,
	system.BodyGrounded: colornames.Dodgerblue,
	system.BodyFalling:  colornames.Orange,
	system.BodyPlayer:   colornames.Crimson,
}

// DrawPhysicsDebug outlines the rigid-body shapes tinted by role and draws
// every contact normal. Normals that hold a body up are drawn yellow.
func DrawPhysicsDebug(rs *system.RigidBodySystem, w *ecs.World, screen *ebiten.Image) {
	if rs == nil || w == nil || screen == nil {
		return
	}
	b := screen.Bounds()
	d := &physicsDebugDrawer{
		screen: screen,
		view:   newView(w, b.Dx(), b.Dy()),
		roles:  make(map[*cp.Shape]system.BodyRole),
	}
	for _, s := range rs.Shapes(w) {
		d.roles[s.Shape] = s.Role
	}
	cp.DrawSpace(rs.Space(), d)

	for _, c := range rs.Contacts(w) {
		clr := color.Color(colornames.Red)
		if c.Support {
			clr = colornames.Yellow
		}
		d.line(c.Point, c.Point.Add(c.Normal.Mult(normalLength)), clr)
	}
}

// DrawPlayerStateDebug prints the player's vertical state and last contacts
// in the top-left corner.
func DrawPlayerStateDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	phys, ok := ecs.Get(w, player, component.PlayerPhysicsComponent.Kind())
	if !ok {
		return
	}
	t, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	contacts, bottom, wall := 0, false, component.WallNone
	if pc, ok := ecs.Get(w, player, component.PlayerCollisionComponent.Kind()); ok {
		contacts, bottom, wall = pc.Contacts, pc.Bottom, pc.Wall
	}
	text := fmt.Sprintf("State: %s\nPos: %.1f, %.1f\nJumpVelocity: %.1f\nFallSpeed: %.1f\nContacts: %d\nBottom: %v\nWall: %d\nTPS: %.0f",
		phys.State, t.X, t.Y, phys.JumpVelocity, phys.FallSpeed, contacts, bottom, wall, ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, text, 10, 10)
}

// physicsDebugDrawer only draws polygons; every shape the game creates is a
// box.
type physicsDebugDrawer struct {
	screen *ebiten.Image
	view   view
	roles  map[*cp.Shape]system.BodyRole
}

func (d *physicsDebugDrawer) DrawCircle(cp.Vector, float64, float64, cp.FColor, cp.FColor, interface{}) {
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, _ interface{}) {
	d.line(a, b, toNRGBA(fill))
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, _ float64, outline, _ cp.FColor, _ interface{}) {
	d.line(a, b, toNRGBA(outline))
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, _ float64, _, fill cp.FColor, _ interface{}) {
	if count <= 0 {
		return
	}
	clr := toNRGBA(fill)
	for i := 0; i < count; i++ {
		d.line(verts[i], verts[(i+1)%count], clr)
	}
}

func (d *physicsDebugDrawer) DrawDot(float64, cp.Vector, cp.FColor, interface{}) {}

func (d *physicsDebugDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 1, G: 1, B: 1, A: 0.6}
}

func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, _ interface{}) cp.FColor {
	clr, ok := roleColors[d.roles[shape]]
	if !ok {
		return d.OutlineColor()
	}
	r, g, b, a := clr.RGBA()
	return cp.FColor{R: float32(r) / 0xffff, G: float32(g) / 0xffff, B: float32(b) / 0xffff, A: float32(a) / 0xffff}
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return d.OutlineColor()
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return d.OutlineColor()
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) line(a, b cp.Vector, clr color.Color) {
	x1, y1 := d.view.toScreen(a)
	x2, y2 := d.view.toScreen(b)
	vector.StrokeLine(d.screen, float32(x1), float32(y1), float32(x2), float32(y2), debugLineSize, clr, true)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
