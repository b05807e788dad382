// Package physics adapts the chipmunk rigid-body engine to the growth state
// machine. Every body is also a donburi entity so the render systems can walk
// them, and a resolv object so placement can probe for free space.
package physics

import (
	"math"

	"github.com/automoto/polytone/components"
	"github.com/automoto/polytone/growth"
	"github.com/automoto/polytone/shared/gamemath"
	"github.com/automoto/polytone/tags"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Config holds the engine-level values.
type Config struct {
	Gravity        float64 // px/s², downwards
	Iterations     int
	Density        float64
	WallFriction   float64
	WallElasticity float64
	TPS            int // ticks per second the air friction is expressed in
}

// World implements growth.World and growth.Occupancy.
type World struct {
	cfg   Config
	world donburi.World
	space *cp.Space
	grid  *resolv.Space
}

// New creates the engine space and an occupancy grid covering bounds.
func New(w donburi.World, bounds gamemath.Rect, cellSize int, cfg Config) *World {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cellSize <= 0 {
		cellSize = 16
	}

	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})
	if cfg.Iterations > 0 {
		space.Iterations = uint(cfg.Iterations)
	}

	grid := resolv.NewSpace(int(math.Ceil(bounds.W)), int(math.Ceil(bounds.H)), cellSize, cellSize)
	entry := w.Entry(w.Create(components.Space))
	components.Space.Set(entry, grid)

	return &World{cfg: cfg, world: w, space: space, grid: grid}
}

// AddBoundary adds a static wall.
func (w *World) AddBoundary(r gamemath.Rect) *donburi.Entry {
	body := cp.NewStaticBody()
	body.SetPosition(cp.Vector{X: r.X + r.W/2, Y: r.Y + r.H/2})
	shape := cp.NewBox(body, r.W, r.H, 0)
	setMaterial(shape, w.cfg.WallFriction, w.cfg.WallElasticity)

	w.space.AddBody(body)
	w.space.AddShape(shape)

	entry := w.world.Entry(w.world.Create(tags.Boundary, components.Body, components.Object))
	components.Body.SetValue(entry, components.BodyData{Body: body, Shape: shape})
	w.track(entry, r, tags.ResolvSolid)
	body.UserData = entry
	return entry
}

// AddPolygon creates a static or dynamic polygon body from spec.
func (w *World) AddPolygon(spec growth.BodySpec) growth.Body {
	n := len(spec.Vertices)
	verts := make([]cp.Vector, n)
	for i, v := range spec.Vertices {
		verts[i] = cp.Vector{X: v.X, Y: v.Y}
	}

	var body *cp.Body
	if spec.Static {
		body = cp.NewStaticBody()
	} else {
		mass := math.Max(math.Abs(cp.AreaForPoly(n, verts, 0))*w.cfg.Density, 1e-6)
		body = cp.NewBody(mass, cp.MomentForPoly(mass, n, verts, cp.Vector{}, 0))
	}
	body.SetPosition(cp.Vector{X: spec.Anchor.X, Y: spec.Anchor.Y})

	shape := cp.NewPolyShape(body, n, verts, cp.NewTransformIdentity(), 0)

	if spec.Static {
		setMaterial(shape, w.cfg.WallFriction, w.cfg.WallElasticity)
	} else {
		setMaterial(shape, spec.Material.Friction, spec.Material.Restitution)
		body.SetAngularVelocity(spec.AngularVelocity)
		body.SetVelocityUpdateFunc(airDrag(spec.Material.AirFriction, w.cfg.TPS))
	}

	w.space.AddBody(body)
	w.space.AddShape(shape)

	entry := w.world.Entry(w.world.Create(tags.Polygon, components.Body, components.Object))
	components.Body.SetValue(entry, components.BodyData{
		Body:  body,
		Shape: shape,
		Key:   spec.Key,
		Sides: spec.Sides,
		Size:  spec.Size,
	})
	w.track(entry, gamemath.Bounds(spec.Vertices, spec.Anchor), tags.ResolvPolygon)
	body.UserData = entry
	return entry
}

// RemoveBody deletes a body created by AddPolygon or AddBoundary. Stale
// handles are ignored.
func (w *World) RemoveBody(b growth.Body) {
	entry, ok := b.(*donburi.Entry)
	if !ok || entry == nil || !entry.Valid() {
		return
	}

	data := components.Body.Get(entry)
	if w.space.ContainsShape(data.Shape) {
		w.space.RemoveShape(data.Shape)
	}
	if w.space.ContainsBody(data.Body) {
		w.space.RemoveBody(data.Body)
	}
	if obj := components.Object.Get(entry); obj.Object != nil {
		w.grid.Remove(obj.Object)
	}
	w.world.Remove(entry.Entity())
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

// Despawn removes dynamic polygons whose centre fell below maxY and returns how many.
func (w *World) Despawn(maxY float64) int {
	var fallen []*donburi.Entry
	tags.Polygon.Each(w.world, func(e *donburi.Entry) {
		data := components.Body.Get(e)
		if !data.Static() && data.Body.Position().Y > maxY {
			fallen = append(fallen, e)
		}
	})
	for _, e := range fallen {
		w.RemoveBody(e)
	}
	return len(fallen)
}

// SyncOccupancy copies every polygon's current bounding box into the grid.
func (w *World) SyncOccupancy() {
	tags.Polygon.Each(w.world, func(e *donburi.Entry) {
		data := components.Body.Get(e)
		obj := components.Object.Get(e)
		bb := data.Shape.BB()
		obj.X, obj.Y = bb.L, bb.B
		obj.W, obj.H = bb.R-bb.L, bb.T-bb.B
		obj.Update()
	})
}

// Occupied reports whether a circle of radius r at (x, y) overlaps a polygon's box.
func (w *World) Occupied(x, y, r float64) bool {
	probe := resolv.NewObject(x-r, y-r, 2*r, 2*r)
	w.grid.Add(probe)
	defer w.grid.Remove(probe)

	c := probe.Check(0, 0, tags.ResolvPolygon)
	if c == nil {
		return false
	}
	area := gamemath.Rect{X: probe.X, Y: probe.Y, W: probe.W, H: probe.H}
	for _, obj := range c.Objects {
		if area.Overlaps(gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}) {
			return true
		}
	}
	return false
}

// EachPolygon calls fn for every polygon body.
func (w *World) EachPolygon(fn func(e *donburi.Entry, b *components.BodyData)) {
	tags.Polygon.Each(w.world, func(e *donburi.Entry) {
		fn(e, components.Body.Get(e))
	})
}

// Count returns the number of polygon bodies.
func (w *World) Count() int {
	n := 0
	tags.Polygon.Each(w.world, func(*donburi.Entry) { n++ })
	return n
}

// Space exposes the engine space for debug drawing.
func (w *World) Space() *cp.Space {
	return w.space
}

func (w *World) track(entry *donburi.Entry, r gamemath.Rect, tag string) {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	w.grid.Add(obj)
}

// airDrag returns a velocity integrator that also removes airFriction of the
// velocity every tick, as a fraction per 1/tps seconds.
func airDrag(airFriction float64, tps int) cp.BodyVelocityFunc {
	return func(body *cp.Body, gravity cp.Vector, damping, dt float64) {
		keep := math.Pow(1-airFriction, dt*float64(tps))
		cp.BodyUpdateVelocity(body, gravity, damping*keep, dt)
	}
}

// setMaterial stores the square roots of friction and restitution on shape.
// The engine multiplies the values of the two shapes in a contact, so a pair
// gets the geometric mean of its materials and two shapes of one material
// touch with exactly that material.
func setMaterial(shape *cp.Shape, friction, restitution float64) {
	shape.SetFriction(math.Sqrt(friction))
	shape.SetElasticity(math.Sqrt(restitution))
}
