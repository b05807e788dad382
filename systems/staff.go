package systems

import (
	"image/color"

	"github.com/automoto/polytone/components"
	"github.com/automoto/polytone/staff"
	"github.com/automoto/polytone/systems/factory"
	"github.com/automoto/polytone/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MarkerSurface implements staff.Surface with marker entities.
type MarkerSurface struct {
	ecs       *ecs.ECS
	popFrames int
}

func NewMarkerSurface(e *ecs.ECS, popFrames int) *MarkerSurface {
	return &MarkerSurface{ecs: e, popFrames: popFrames}
}

func (s *MarkerSurface) AddMarker(x, y float64, line int) staff.Marker {
	return factory.CreateMarker(s.ecs, x, y, line, s.popFrames)
}

func (s *MarkerSurface) RemoveMarker(m staff.Marker) {
	entry, ok := m.(*donburi.Entry)
	if !ok || !entry.Valid() {
		return
	}
	s.ecs.World.Remove(entry.Entity())
}

// NewUpdateStaff runs the startup fade of the staff and the marker pops.
// onReveal is called once, when the fade starts.
func NewUpdateStaff(onReveal func()) ecs.System {
	return func(e *ecs.ECS) {
		if entry, ok := components.Staff.First(e.World); ok {
			s := components.Staff.Get(entry)
			switch {
			case s.Delay > 0:
				s.Delay--
			case s.Fade != nil:
				if !s.Revealed {
					s.Revealed = true
					if onReveal != nil {
						onReveal()
					}
				}
				var done bool
				s.Alpha, done = s.Fade.Update(1)
				if done {
					s.Fade = nil
				}
			}
		}

		tags.Marker.Each(e.World, func(entry *donburi.Entry) {
			m := components.Marker.Get(entry)
			if m.Pop == nil {
				return
			}
			var done bool
			m.Scale, done = m.Pop.Update(1)
			if done {
				m.Pop = nil
			}
		})
	}
}

// StaffView is where and how the staff is drawn.
type StaffView struct {
	X, Y         float64
	Background   *ebiten.Image
	MarkerRadius float64
	Color        color.RGBA
}

// NewDrawStaff draws the staff background and its markers at the current fade.
func NewDrawStaff(v StaffView) func(*ecs.ECS, *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}

	return func(e *ecs.ECS, screen *ebiten.Image) {
		entry, ok := components.Staff.First(e.World)
		if !ok {
			return
		}
		s := components.Staff.Get(entry)
		if s.Alpha <= 0 {
			return
		}

		op.GeoM.Reset()
		op.ColorScale.Reset()
		op.GeoM.Translate(v.X, v.Y)
		op.ColorScale.ScaleAlpha(s.Alpha)
		screen.DrawImage(v.Background, op)

		c := v.Color
		c.A = uint8(float32(c.A) * min(s.Alpha, 1))
		tags.Marker.Each(e.World, func(me *donburi.Entry) {
			m := components.Marker.Get(me)
			r := float32(v.MarkerRadius) * m.Scale
			if r <= 0 {
				return
			}
			vector.FillCircle(screen, float32(v.X+m.X), float32(v.Y+m.Y), r, c, true)
		})
	}
}
