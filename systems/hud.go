package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/polytone/fonts"
	"github.com/automoto/polytone/growth"
	"github.com/automoto/polytone/physics"
	"github.com/automoto/polytone/tone"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
)

// NewDrawHUD renders the body counters and the last note in the bottom-left corner.
func NewDrawHUD(pw *physics.World, m *growth.Machine, c color.RGBA) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		face := fonts.HUD.Get()
		a := GetOrCreateAudio(e)
		y := screen.Bounds().Dy() - hudMargin

		counts := fmt.Sprintf("bodies %d  growing %d  voices %d", pw.Count(), m.Len(), a.Voices)
		if a.Dropped > 0 {
			counts += fmt.Sprintf("  dropped %d", a.Dropped)
		}
		text.Draw(screen, counts, face, hudMargin, y, c)

		if a.Played == 0 {
			return
		}
		note := tone.NoteName(tone.MIDIKey(a.Last.Frequency))
		last := fmt.Sprintf("%s %.1f Hz %s", note, a.Last.Frequency, a.Last.Waveform)
		text.Draw(screen, last, face, hudMargin, y-hudLineHeight, c)
	}
}
