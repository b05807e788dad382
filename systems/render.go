package systems

import (
	"image/color"

	"github.com/automoto/polytone/components"
	"github.com/automoto/polytone/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldView maps arena coordinates to the screen.
type WorldView struct {
	OffsetX, OffsetY float64
	StrokeWidth      float32
	Foreground       color.RGBA // boundaries and released polygons
	Growing          color.RGBA // polygons still held down
}

// NewDrawWorld outlines the arena walls and every polygon.
func NewDrawWorld(v WorldView) func(*ecs.ECS, *ebiten.Image) {
	var verts []cp.Vector

	outline := func(screen *ebiten.Image, b *components.BodyData, c color.RGBA) {
		verts = b.AppendVertices(verts[:0])
		for i := range verts {
			p, q := verts[i], verts[(i+1)%len(verts)]
			vector.StrokeLine(screen,
				float32(p.X+v.OffsetX), float32(p.Y+v.OffsetY),
				float32(q.X+v.OffsetX), float32(q.Y+v.OffsetY),
				v.StrokeWidth, c, true)
		}
	}

	return func(e *ecs.ECS, screen *ebiten.Image) {
		tags.Boundary.Each(e.World, func(entry *donburi.Entry) {
			outline(screen, components.Body.Get(entry), v.Foreground)
		})
		tags.Polygon.Each(e.World, func(entry *donburi.Entry) {
			b := components.Body.Get(entry)
			c := v.Foreground
			if b.Static() {
				c = v.Growing
			}
			outline(screen, b, c)
		})
	}
}
