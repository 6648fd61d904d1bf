package system

import (
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/blockgame/ecs"
	"github.com/milk9111/blockgame/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeBlock
	collisionTypeSolid
)

// groundNormalY is the minimum upward contact normal that counts as standing
// on something.
const groundNormalY = 0.5

// RigidBodyConfig tunes the Chipmunk space.
type RigidBodyConfig struct {
	Iterations int
	Gravity    float64
	Friction   float64
	BlockMass  float64
	PlayerMass float64
}

// RigidBodySystem is the alternative backend: Chipmunk2D resolves every
// contact instead of the AABB resolvers. It owns a cp.Space and mirrors
// transforms in and out of it.
type RigidBodySystem struct {
	cfg    RigidBodyConfig
	space  *cp.Space
	logger *slog.Logger

	entities map[ecs.Entity]*bodyInfo
	bodies   map[*cp.Body]ecs.Entity
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewRigidBodySystem(cfg RigidBodyConfig, logger *slog.Logger) *RigidBodySystem {
	if cfg.Iterations <= 0 {
		cfg.Iterations = 20
	}
	if cfg.BlockMass <= 0 {
		cfg.BlockMass = 1
	}
	if cfg.PlayerMass <= 0 {
		cfg.PlayerMass = 1
	}
	return &RigidBodySystem{
		cfg:      cfg,
		space:    newSpace(cfg),
		logger:   logger,
		entities: make(map[ecs.Entity]*bodyInfo),
		bodies:   make(map[*cp.Body]ecs.Entity),
	}
}

func newSpace(cfg RigidBodyConfig) *cp.Space {
	space := cp.NewSpace()
	space.Iterations = uint(cfg.Iterations)
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})
	return space
}

func (rs *RigidBodySystem) Space() *cp.Space {
	if rs == nil {
		return nil
	}
	return rs.space
}

func (rs *RigidBodySystem) Update(w *ecs.World) {
	if rs == nil || w == nil {
		return
	}
	if rs.space == nil {
		rs.space = newSpace(rs.cfg)
		rs.entities = make(map[ecs.Entity]*bodyInfo)
		rs.bodies = make(map[*cp.Body]ecs.Entity)
	}

	rs.syncEntities(w)

	dt := deltaTime(w)
	if dt <= 0 {
		return
	}

	rs.driveBlocks(w)
	rs.drivePlayer(w)

	rs.space.Step(dt)

	rs.syncTransforms(w)
	rs.landBlocks(w)
	rs.updatePlayerState(w)
}

func (rs *RigidBodySystem) syncEntities(w *ecs.World) {
	rs.cleanupEntities(w)

	entities := w.Query(component.TransformComponent.Kind(), component.ExtentComponent.Kind())
	for _, e := range entities {
		if _, ok := rs.entities[e]; ok {
			continue
		}
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		ext, _ := ecs.Get(w, e, component.ExtentComponent.Kind())

		var info *bodyInfo
		switch {
		case ecs.Has(w, e, component.PlayerTagComponent.Kind()):
			info = rs.newDynamicBox(t, ext, rs.cfg.PlayerMass, cp.INFINITY, collisionTypePlayer)
		case ecs.Has(w, e, component.BlockPhysicsComponent.Kind()):
			mass := rs.cfg.BlockMass
			info = rs.newDynamicBox(t, ext, mass, cp.MomentForBox(mass, ext.Width, ext.Height), collisionTypeBlock)
		default:
			ob, ok := ecs.Get(w, e, component.ObstacleComponent.Kind())
			if !ok || ob.Role != component.ObstacleStatic {
				continue
			}
			info = rs.newStaticBox(t, ext)
		}

		rs.entities[e] = info
		if !info.static {
			rs.bodies[info.body] = e
		}
		rb := &component.RigidBody{
			Body:     info.body,
			Shape:    info.shape,
			Static:   info.static,
			Mass:     info.body.Mass(),
			Friction: rs.cfg.Friction,
		}
		if err := ecs.Add(w, e, component.RigidBodyComponent.Kind(), rb); err != nil {
			panic("system: add rigid body: " + err.Error())
		}
	}
}

func (rs *RigidBodySystem) newStaticBox(t *component.Transform, ext *component.Extent) *bodyInfo {
	bb := cp.NewBBForExtents(t.Center(), ext.HalfWidth(), ext.HalfHeight())
	shape := cp.NewBox2(rs.space.StaticBody, bb, 0)
	shape.SetFriction(rs.cfg.Friction)
	shape.SetCollisionType(collisionTypeSolid)
	rs.space.AddShape(shape)
	return &bodyInfo{body: rs.space.StaticBody, shape: shape, static: true}
}

func (rs *RigidBodySystem) newDynamicBox(t *component.Transform, ext *component.Extent, mass, moment float64, ct cp.CollisionType) *bodyInfo {
	body := cp.NewBody(mass, moment)
	body.SetPosition(t.Center())
	shape := cp.NewBox(body, ext.Width, ext.Height, 0)
	shape.SetFriction(rs.cfg.Friction)
	shape.SetCollisionType(ct)
	rs.space.AddBody(body)
	rs.space.AddShape(shape)
	return &bodyInfo{body: body, shape: shape}
}

// driveBlocks holds falling blocks at their configured speed. Once landed
// they are left to the solver.
func (rs *RigidBodySystem) driveBlocks(w *ecs.World) {
	for _, e := range w.Query(component.BlockPhysicsComponent.Kind()) {
		info := rs.entities[e]
		if info == nil {
			continue
		}
		block, _ := ecs.Get(w, e, component.BlockPhysicsComponent.Kind())
		if !block.IsFalling {
			continue
		}
		info.body.SetVelocity(0, -block.FallSpeed)
	}
}

func (rs *RigidBodySystem) drivePlayer(w *ecs.World) {
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	info := rs.entities[player]
	phys, okP := ecs.Get(w, player, component.PlayerPhysicsComponent.Kind())
	if info == nil || !okP {
		return
	}
	input, _ := ecs.Get(w, player, component.InputComponent.Kind())

	v := info.body.Velocity()
	vx, vy := 0.0, v.Y
	if input != nil {
		vx = input.MoveX * phys.MovementSpeed
		if input.Jump && phys.State == component.Grounded {
			vy = phys.JumpImpulse
		}
	}
	info.body.SetVelocity(vx, vy)
}

func (rs *RigidBodySystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.RigidBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.RigidBody, t *component.Transform) {
		info := rs.entities[e]
		if info == nil || info.static {
			return
		}
		pos := info.body.Position()
		t.X = pos.X
		t.Y = pos.Y
	})
}

func (rs *RigidBodySystem) landBlocks(w *ecs.World) {
	for _, e := range w.Query(component.BlockPhysicsComponent.Kind(), component.ObstacleComponent.Kind()) {
		info := rs.entities[e]
		block, _ := ecs.Get(w, e, component.BlockPhysicsComponent.Kind())
		if info == nil || !block.IsFalling {
			continue
		}
		other, ok := supportOf(info.body)
		if !ok {
			continue
		}
		block.IsFalling = false
		ob, _ := ecs.Get(w, e, component.ObstacleComponent.Kind())
		ob.Role = component.ObstacleGroundedDynamic

		evt := ecs.CollisionEvent{Entity: e, Kind: ecs.CollisionEventBlockLanded}
		if landedOn, found := rs.entityFor(other); found {
			evt.Other = landedOn
		}
		w.Events().PushCollision(evt)
		loggerOr(rs.logger).Debug("block landed", slog.String("block", entityName(w, e)))
	}
}

func (rs *RigidBodySystem) updatePlayerState(w *ecs.World) {
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	info := rs.entities[player]
	phys, okP := ecs.Get(w, player, component.PlayerPhysicsComponent.Kind())
	if info == nil || !okP {
		return
	}

	_, grounded := supportOf(info.body)
	switch {
	case grounded:
		phys.Land()
	case info.body.Velocity().Y > 0:
		phys.State = component.Jumping
	default:
		phys.State = component.Falling
	}

	if pc, ok := ecs.Get(w, player, component.PlayerCollisionComponent.Kind()); ok {
		pc.Bottom = grounded
		pc.Contacts = 0
		info.body.EachArbiter(func(*cp.Arbiter) { pc.Contacts++ })
	}
}

// supportOf returns the body under b, picking the most upright support
// normal when several contacts qualify.
func supportOf(b *cp.Body) (*cp.Body, bool) {
	var (
		support *cp.Body
		best    float64
	)
	b.EachArbiter(func(arb *cp.Arbiter) {
		n := arb.Normal().Neg()
		if !supportNormal(n) || n.Y <= best {
			return
		}
		best = n.Y
		_, support = arb.Bodies()
	})
	return support, support != nil
}

// supportNormal reports whether n, pointing away from the other body, is
// steep enough to stand on.
func supportNormal(n cp.Vector) bool {
	return n.Y > groundNormalY
}

// entityFor maps a dynamic body back to its entity. Static obstacles share
// the space's static body and cannot be told apart.
func (rs *RigidBodySystem) entityFor(b *cp.Body) (ecs.Entity, bool) {
	if b == nil {
		return 0, false
	}
	e, ok := rs.bodies[b]
	return e, ok
}

func (rs *RigidBodySystem) cleanupEntities(w *ecs.World) {
	for e, info := range rs.entities {
		if w.IsAlive(e) {
			continue
		}
		if info.shape != nil {
			rs.space.RemoveShape(info.shape)
		}
		if info.body != nil && !info.static {
			rs.space.RemoveBody(info.body)
			delete(rs.bodies, info.body)
		}
		delete(rs.entities, e)
	}
}

// BodyRole says what a mirrored shape stands for in the world.
type BodyRole int

const (
	BodyStatic BodyRole = iota
	BodyGrounded
	BodyFalling
	BodyPlayer
)

func (r BodyRole) String() string {
	switch r {
	case BodyGrounded:
		return "grounded"
	case BodyFalling:
		return "falling"
	case BodyPlayer:
		return "player"
	default:
		return "static"
	}
}

// BodyShape pairs a Chipmunk shape with its entity.
type BodyShape struct {
	Entity ecs.Entity
	Shape  *cp.Shape
	Role   BodyRole
}

// Shapes lists every mirrored shape in entity id order.
func (rs *RigidBodySystem) Shapes(w *ecs.World) []BodyShape {
	if rs == nil || w == nil {
		return nil
	}
	var out []BodyShape
	for _, e := range w.Query(component.RigidBodyComponent.Kind()) {
		info := rs.entities[e]
		if info == nil {
			continue
		}
		out = append(out, BodyShape{Entity: e, Shape: info.shape, Role: bodyRole(w, e)})
	}
	return out
}

func bodyRole(w *ecs.World, e ecs.Entity) BodyRole {
	if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
		return BodyPlayer
	}
	if block, ok := ecs.Get(w, e, component.BlockPhysicsComponent.Kind()); ok && block.IsFalling {
		return BodyFalling
	}
	if ob, ok := ecs.Get(w, e, component.ObstacleComponent.Kind()); ok && ob.Role == component.ObstacleGroundedDynamic {
		return BodyGrounded
	}
	return BodyStatic
}

// BodyContact is one arbiter on a dynamic body. Normal points away from the
// other body; Support is set when it is steep enough to stand on.
type BodyContact struct {
	Entity  ecs.Entity
	Other   ecs.Entity
	Point   cp.Vector
	Normal  cp.Vector
	Support bool
}

// Contacts lists the arbiters of every dynamic body in entity id order.
func (rs *RigidBodySystem) Contacts(w *ecs.World) []BodyContact {
	if rs == nil || w == nil {
		return nil
	}
	var out []BodyContact
	for _, e := range w.Query(component.RigidBodyComponent.Kind()) {
		info := rs.entities[e]
		if info == nil || info.static {
			continue
		}
		info.body.EachArbiter(func(arb *cp.Arbiter) {
			n := arb.Normal().Neg()
			c := BodyContact{Entity: e, Point: info.body.Position(), Normal: n, Support: supportNormal(n)}
			if set := arb.ContactPointSet(); set.Count > 0 {
				c.Point = set.Points[0].PointA
			}
			_, other := arb.Bodies()
			c.Other, _ = rs.entityFor(other)
			out = append(out, c)
		})
	}
	return out
}
