package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeSolid
	collisionTypeTrigger
)

type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool
	dt            float64

	entities      map[ecs.Entity]*bodyInfo
	playerShapes  map[*cp.Shape]ecs.Entity
	triggerShapes map[*cp.Shape]ecs.Entity
	contacts      []triggerContact
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
}

type triggerContact struct {
	subject ecs.Entity
	trigger ecs.Entity
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:         newSpace(),
		dt:            common.TickDelta,
		entities:      make(map[ecs.Entity]*bodyInfo),
		playerShapes:  make(map[*cp.Shape]ecs.Entity),
		triggerShapes: make(map[*cp.Shape]ecs.Entity),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if ps.space == nil {
		ps.space = newSpace()
		ps.handlersReady = false
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.syncWorldBounds(w)

	ps.contacts = ps.contacts[:0]
	ps.space.Step(ps.dt)

	ps.syncTransforms(w)
	ps.flushTriggerContacts(w)
}

// GroundAt reports whether a solid shape in mask lies within radius of the
// point. Shapes owned by self are ignored, as are sensors.
func (ps *PhysicsSystem) GroundAt(self ecs.Entity, x, y, radius float64, mask uint32) bool {
	if ps == nil || ps.space == nil {
		return false
	}
	if mask == 0 {
		mask = component.LayerGround
	}
	filter := cp.ShapeFilter{
		Group:      shapeGroup(self),
		Categories: uint(component.LayerAll),
		Mask:       uint(mask),
	}
	info := ps.space.PointQueryNearest(cp.Vector{X: x, Y: y}, radius, filter)
	if info == nil || info.Shape == nil {
		return false
	}
	if owner, ok := ps.ownerOf(info.Shape); ok && owner == self {
		return false
	}
	return true
}

// Teleport moves e so its transform lands on (x, y) and clears its velocity.
func (ps *PhysicsSystem) Teleport(w *ecs.World, e ecs.Entity, x, y float64) {
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	transform.X = x
	transform.Y = y
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || body.Body == nil || body.Static {
		return
	}
	cx, cy := bodyCenter(transform, body)
	body.Body.SetPosition(cp.Vector{X: cx, Y: cy})
	body.Body.SetVelocityVector(cp.Vector{})
	body.Body.SetAngularVelocity(0)
}

func (ps *PhysicsSystem) ownerOf(shape *cp.Shape) (ecs.Entity, bool) {
	for e, info := range ps.entities {
		for _, s := range info.shapes {
			if s == shape {
				return e, true
			}
		}
	}
	return 0, false
}

func shapeGroup(e ecs.Entity) uint {
	return uint(e)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	triggerHandler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeTrigger)
	triggerHandler.UserData = ps
	triggerHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return false
		}
		shapeA, shapeB := arb.Shapes()
		player, okA := sys.playerShapes[shapeA]
		trigger, okB := sys.triggerShapes[shapeB]
		if !okA || !okB {
			player, okA = sys.playerShapes[shapeB]
			trigger, okB = sys.triggerShapes[shapeA]
			if !okA || !okB {
				return false
			}
		}
		sys.contacts = append(sys.contacts, triggerContact{subject: player, trigger: trigger})
		return false
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if info := ps.entities[e]; info != nil {
			if bodyComp.Body == nil && len(info.shapes) > 0 {
				bodyComp.Body = info.body
				bodyComp.Shape = info.shapes[0]
			}
			return
		}

		isPlayer := ecs.Has(w, e, component.PlayerTagComponent.Kind())
		layer := collisionLayerFor(w, e, bodyComp.Static, isPlayer)
		info := ps.createBodyInfo(e, transform, bodyComp, layer)
		if info == nil || len(info.shapes) == 0 {
			return
		}
		ps.entities[e] = info
		if isPlayer {
			for _, s := range info.shapes {
				s.SetCollisionType(collisionTypePlayer)
				ps.playerShapes[s] = e
			}
		}
		bodyComp.Body = info.body
		bodyComp.Shape = info.shapes[0]
	})

	ecs.ForEach2(w, component.TriggerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, trigger *component.Trigger, transform *component.Transform) {
		if _, exists := ps.entities[e]; exists {
			return
		}
		if trigger.Width <= 0 || trigger.Height <= 0 {
			return
		}
		bb := cp.BB{L: transform.X, B: transform.Y, R: transform.X + trigger.Width, T: transform.Y + trigger.Height}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypeTrigger)
		shape.SetFilter(cp.ShapeFilter{
			Group:      shapeGroup(e),
			Categories: uint(component.LayerTrigger),
			Mask:       uint(component.LayerPlayer),
		})
		ps.space.AddShape(shape)
		ps.entities[e] = &bodyInfo{body: ps.space.StaticBody, shapes: []*cp.Shape{shape}, static: true}
		ps.triggerShapes[shape] = e
	})
}

func collisionLayerFor(w *ecs.World, e ecs.Entity, static, isPlayer bool) component.CollisionLayer {
	layer := component.CollisionLayer{Category: component.LayerGround, Mask: component.LayerAll}
	if isPlayer {
		layer.Category = component.LayerPlayer
	} else if !static {
		layer.Category = 0
	}
	if cl, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind()); ok {
		if cl.Category != 0 {
			layer.Category = cl.Category
		}
		if cl.Mask != 0 {
			layer.Mask = cl.Mask
		}
	}
	if layer.Category == 0 {
		layer.Category = component.LayerGround
	}
	return layer
}

func bodySize(bodyComp *component.PhysicsBody) (float64, float64) {
	if bodyComp.Radius > 0 {
		return bodyComp.Radius * 2, bodyComp.Radius * 2
	}
	if bodyComp.Width <= 0 || bodyComp.Height <= 0 {
		return common.TileSize, common.TileSize
	}
	return bodyComp.Width, bodyComp.Height
}

func bodyCenter(transform *component.Transform, bodyComp *component.PhysicsBody) (float64, float64) {
	w, h := bodySize(bodyComp)
	x := transform.X + bodyComp.OffsetX
	y := transform.Y + bodyComp.OffsetY
	if bodyComp.AlignTopLeft {
		x += w / 2
		y += h / 2
	}
	return x, y
}

func (ps *PhysicsSystem) createBodyInfo(e ecs.Entity, transform *component.Transform, bodyComp *component.PhysicsBody, layer component.CollisionLayer) *bodyInfo {
	if ps.space == nil {
		return nil
	}

	width, height := bodySize(bodyComp)
	radius := bodyComp.Radius
	centerX, centerY := bodyCenter(transform, bodyComp)
	filter := cp.ShapeFilter{
		Group:      shapeGroup(e),
		Categories: uint(layer.Category),
		Mask:       uint(layer.Mask),
	}

	info := &bodyInfo{static: bodyComp.Static}

	if bodyComp.Static {
		var shape *cp.Shape
		if radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, radius, cp.Vector{X: centerX, Y: centerY})
		} else {
			bb := cp.BB{L: centerX - width/2, B: centerY - height/2, R: centerX + width/2, T: centerY + height/2}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(filter)
		ps.space.AddShape(shape)

		info.body = ps.space.StaticBody
		info.shapes = []*cp.Shape{shape}
		return info
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	moment := math.Inf(1)
	if !bodyComp.FixedRotation {
		if radius > 0 {
			moment = cp.MomentForCircle(mass, 0, radius, cp.Vector{})
		} else {
			moment = cp.MomentForBox(mass, width, height)
		}
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: centerX, Y: centerY})
	body.SetAngle(transform.Rotation)

	var shape *cp.Shape
	if radius > 0 {
		shape = cp.NewCircle(body, radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, width, height, 0)
	}
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetCollisionType(collisionTypeSolid)
	shape.SetFilter(filter)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	info.body = body
	info.shapes = []*cp.Shape{shape}
	return info
}

func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	boundsEntity, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	if _, exists := ps.entities[boundsEntity]; exists {
		return
	}
	bounds, ok := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}

	worldW := bounds.Width
	worldH := bounds.Height
	if worldW <= 0 || worldH <= 0 {
		return
	}

	// The floor is left open so a level can drop the player into a kill zone.
	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},           // top
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},           // left
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}}, // right
	}

	info := &bodyInfo{static: true, body: ps.space.StaticBody}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, 1)
		shape.SetFriction(0)
		shape.SetCollisionType(collisionTypeSolid)
		// Walls block the player but never count as ground.
		shape.SetFilter(cp.ShapeFilter{Group: shapeGroup(boundsEntity), Categories: uint(component.LayerAll &^ component.LayerGround), Mask: uint(component.LayerAll)})
		ps.space.AddShape(shape)
		info.shapes = append(info.shapes, shape)
	}

	ps.entities[boundsEntity] = info
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Static {
			return
		}
		width, height := bodySize(bodyComp)
		pos := bodyComp.Body.Position()
		transform.X = pos.X - bodyComp.OffsetX
		transform.Y = pos.Y - bodyComp.OffsetY
		if bodyComp.AlignTopLeft {
			transform.X -= width / 2
			transform.Y -= height / 2
		}
		transform.Rotation = bodyComp.Body.Angle()
	})
}

// flushTriggerContacts turns contacts recorded during the step into one
// TriggerEnter request entity each.
func (ps *PhysicsSystem) flushTriggerContacts(w *ecs.World) {
	for _, c := range ps.contacts {
		if !ecs.IsAlive(w, c.subject) || !ecs.IsAlive(w, c.trigger) {
			continue
		}
		ev := ecs.CreateEntity(w)
		if err := ecs.Add(w, ev, component.TriggerEnterComponent.Kind(), &component.TriggerEnter{
			Subject: uint64(c.subject),
			Trigger: uint64(c.trigger),
		}); err != nil {
			panic("physics system: add trigger enter: " + err.Error())
		}
	}
	ps.contacts = ps.contacts[:0]
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) &&
			(ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) ||
				ecs.Has(w, e, component.TriggerComponent.Kind()) ||
				ecs.Has(w, e, component.LevelBoundsComponent.Kind())) {
			continue
		}

		for _, shape := range info.shapes {
			if shape == nil {
				continue
			}
			ps.space.RemoveShape(shape)
			delete(ps.playerShapes, shape)
			delete(ps.triggerShapes, shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
