package systems

import (
	"image/color"

	cfg "github.com/automoto/polytone/config"
	"github.com/automoto/polytone/components"
	"github.com/automoto/polytone/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewDrawDebug draws the occupancy grid objects when the overlay is on.
func NewDrawDebug(offsetX, offsetY float64) func(*ecs.ECS, *ebiten.Image) {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		settings := GetOrCreateSettings(ecs)
		if !settings.Debug {
			return
		}

		spaceEntry, ok := components.Space.First(ecs.World)
		if !ok {
			return
		}
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			x := float32(obj.X + offsetX)
			y := float32(obj.Y + offsetY)

			// Determine color based on tags
			var c color.Color = cfg.Cyan
			if obj.HasTags(tags.ResolvSolid) {
				c = cfg.Grey
			}

			vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 1, c, false)
		}
	}
}
