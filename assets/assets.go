package assets

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// StaffLayout describes the staff background in staff coordinates
type StaffLayout struct {
	Width, Height float64
	Lines         []float64 // y of each drawn line
	LineWidth     float64
	Color         color.RGBA
}

var imageCache = map[string]*ebiten.Image{}

// MustLoadStaff rasterizes the staff background once and caches it.
func MustLoadStaff(l StaffLayout) *ebiten.Image {
	key := fmt.Sprintf("staff/%gx%g/%v", l.Width, l.Height, l.Lines)
	if img, ok := imageCache[key]; ok {
		return img
	}

	img, err := renderStaff(l)
	if err != nil {
		panic(fmt.Sprintf("Failed to render staff: %v", err))
	}
	imageCache[key] = img
	return img
}

func renderStaff(l StaffLayout) (*ebiten.Image, error) {
	if len(l.Lines) == 0 {
		return nil, fmt.Errorf("staff has no lines")
	}

	dc := gg.NewContext(int(l.Width), int(l.Height))
	defer dc.Close()

	dc.SetRGBA(
		float64(l.Color.R)/255,
		float64(l.Color.G)/255,
		float64(l.Color.B)/255,
		float64(l.Color.A)/255,
	)
	dc.SetLineWidth(l.LineWidth)

	top, bottom := l.Lines[0], l.Lines[0]
	for _, y := range l.Lines {
		dc.DrawLine(0, y, l.Width, y)
		top = min(top, y)
		bottom = max(bottom, y)
	}

	// bar lines at both ends, the left one doubled as a clef mark
	dc.DrawLine(1, top, 1, bottom)
	dc.DrawLine(6, top, 6, bottom)
	dc.DrawLine(l.Width-1, top, l.Width-1, bottom)

	if err := dc.Stroke(); err != nil {
		return nil, fmt.Errorf("stroke staff: %w", err)
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("flush staff: %w", err)
	}
	return ebiten.NewImageFromImage(dc.Image()), nil
}
