package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"sort"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var shapeNames = map[int]string{
	3:  "triangle",
	4:  "square",
	5:  "pentagon",
	6:  "hexagon",
	7:  "heptagon",
	8:  "octagon",
	9:  "nonagon",
	10: "decagon",
}

// LegendEntry is one row of the key legend.
type LegendEntry struct {
	Key   string
	Sides int
	Note  string
}

// LegendUI lists which key grows which polygon. It stays hidden until Show.
type LegendUI struct {
	UI *ebitenui.UI

	shown bool

	titleFace  text.Face
	normalFace text.Face
}

func NewLegendUI(entries []LegendEntry, fontSize float64, fg, bg color.RGBA) *LegendUI {
	ui := &LegendUI{}
	ui.loadFonts(fontSize)
	ui.buildUI(entries, fg, bg)
	return ui
}

func (ui *LegendUI) loadFonts(size float64) {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: size}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: size - 2}
}

func (ui *LegendUI) buildUI(entries []LegendEntry, fg, bg color.RGBA) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 10, Right: 10}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(bg)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("KEYS", &ui.titleFace, &widget.LabelColor{Idle: fg}),
	))

	rows := append([]LegendEntry(nil), entries...)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Sides != rows[j].Sides {
			return rows[i].Sides < rows[j].Sides
		}
		return rows[i].Key < rows[j].Key
	})
	for _, row := range rows {
		panel.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(legendLine(row), &ui.normalFace, &widget.LabelColor{Idle: fg}),
		))
	}

	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func legendLine(e LegendEntry) string {
	name, ok := shapeNames[e.Sides]
	if !ok {
		name = fmt.Sprintf("%d-gon", e.Sides)
	}
	return fmt.Sprintf("%s  %-9s %s", strings.ToUpper(e.Key), name, e.Note)
}

// Show reveals the legend.
func (ui *LegendUI) Show() {
	ui.shown = true
}

func (ui *LegendUI) Update() {
	if ui.shown {
		ui.UI.Update()
	}
}

func (ui *LegendUI) Draw(screen *ebiten.Image) {
	if ui.shown {
		ui.UI.Draw(screen)
	}
}
