package main

import (
	"flag"
	"log"

	"github.com/automoto/polytone/config"
	"github.com/automoto/polytone/fonts"
	"github.com/automoto/polytone/midiout"
	"github.com/automoto/polytone/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	width, height int
	scene         Scene
}

func NewGame(s config.Settings, ctx *audio.Context, midi *midiout.Output) *Game {
	return &Game{
		width:  s.Display.Width,
		height: s.Display.Height,
		scene: scenes.NewPolygonScene(scenes.Options{
			Settings: s,
			Audio:    ctx,
			MIDI:     midi,
		}),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.width, g.height
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML file overriding the built-in settings")
	arenaName := flag.String("arena", "", "arena layout: centered or classic")
	placement := flag.String("placement", "", "spawn placement: rotating or random")
	debug := flag.Bool("debug", false, "start with the occupancy overlay on")
	midiPort := flag.String("midi-out", "", "mirror tones to the MIDI output whose name contains this")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			return err
		}
	}

	s := config.Current()
	if *arenaName != "" {
		s.Arena.Name = *arenaName
	}
	if *placement != "" {
		s.Arena.Placement = *placement
	}
	if *debug {
		s.Debug.Overlay = true
	}
	if err := s.Validate(); err != nil {
		return err
	}
	config.Set(s)

	if err := fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, s.UI.HUDFontSize); err != nil {
		return err
	}

	var midi *midiout.Output
	if *midiPort != "" {
		out, closeMIDI, err := openMIDI(*midiPort, s.Audio.MIDIChannel, s.Display.TPS)
		if err != nil {
			log.Printf("Warning: MIDI output disabled: %v", err)
		} else {
			midi = out
			defer closeMIDI()
		}
	}

	ebiten.SetWindowSize(s.Display.Width, s.Display.Height)
	ebiten.SetWindowTitle(s.Display.Title)
	ebiten.SetTPS(s.Display.TPS)

	game := NewGame(s, audio.NewContext(s.Audio.SampleRate), midi)
	return ebiten.RunGame(game)
}
