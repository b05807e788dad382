package scenes

import (
	"fmt"
	"image/color"
	"sort"
	"sync"

	"github.com/automoto/polytone/archetypes"
	"github.com/automoto/polytone/assets"
	cfg "github.com/automoto/polytone/config"
	"github.com/automoto/polytone/growth"
	"github.com/automoto/polytone/midiout"
	"github.com/automoto/polytone/physics"
	"github.com/automoto/polytone/shared/arena"
	"github.com/automoto/polytone/staff"
	"github.com/automoto/polytone/systems"
	"github.com/automoto/polytone/systems/factory"
	"github.com/automoto/polytone/tone"
	"github.com/automoto/polytone/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options are the scene's collaborators. Settings is a snapshot; the scene
// never reads the config globals.
type Options struct {
	Settings cfg.Settings
	Audio    *audio.Context
	MIDI     *midiout.Output // optional
}

// PolygonScene is the arena where held keys grow polygons.
type PolygonScene struct {
	opts   Options
	ecs    *ecs.ECS
	legend *ui.LegendUI
	once   sync.Once
	err    error
}

func NewPolygonScene(opts Options) *PolygonScene {
	return &PolygonScene{opts: opts}
}

func (ps *PolygonScene) Update() error {
	ps.once.Do(func() {
		ps.err = ps.configure()
	})
	if ps.err != nil {
		return ps.err
	}

	ps.ecs.Update()
	ps.legend.Update()

	if systems.QuitRequested(ps.ecs) {
		return ebiten.Termination
	}
	return nil
}

func (ps *PolygonScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(ps.opts.Settings.UI.Background)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
	ps.legend.Draw(screen)
}

func (ps *PolygonScene) configure() error {
	s := ps.opts.Settings

	a, err := arena.Load(s.Arena.Name)
	if err != nil {
		return fmt.Errorf("load arena: %w", err)
	}
	offsetX, offsetY := a.Offset(float64(s.Display.Width), float64(s.Display.Height), float64(s.Display.StaffBand))

	ecs := ecs.NewECS(donburi.NewWorld())

	pw := physics.New(ecs.World, a.Bounds(), s.Arena.CellSize, s.PhysicsWorld())
	factory.CreateBoundaries(pw, a)

	placement, err := newPlacement(s, a, pw)
	if err != nil {
		return err
	}

	outputs := tone.Outputs{systems.NewAudioOutput(ecs)}
	if ps.opts.MIDI != nil {
		outputs = append(outputs, ps.opts.MIDI)
	}
	trigger := tone.NewTrigger(s.Tones(), outputs)

	sink := staff.New(s.StaffSink(), systems.NewMarkerSurface(ecs, s.Staff.PopFrames))

	machine, err := growth.New(s.GrowthMachine(), pw, trigger, sink, placement)
	if err != nil {
		return fmt.Errorf("growth machine: %w", err)
	}

	bank := assets.NewToneBank(s.Audio.SampleRate)
	bank.Preload(preloadTones(s, trigger)...)

	ps.legend = ui.NewLegendUI(legendEntries(s, trigger), s.UI.LegendFontSize, s.UI.Foreground, dim(s.UI.Background))

	settings := systems.GetOrCreateSettings(ecs)
	settings.Debug = s.Debug.Overlay
	factory.CreateStaff(ecs, s.Staff.RevealDelay, s.Staff.FadeFrames)

	dt := 1 / float64(s.Display.TPS)
	despawnY := a.Height + s.Physics.DespawnMargin

	ecs.AddSystem(systems.NewUpdateKeys(machine, sink, s.Input))
	ecs.AddSystem(systems.NewUpdateGrowth(machine))
	ecs.AddSystem(systems.NewUpdatePhysics(pw, dt, despawnY))
	ecs.AddSystem(systems.NewUpdateObjects(pw))
	ecs.AddSystem(systems.NewUpdateStaff(ps.legend.Show))
	if ps.opts.Audio != nil {
		ecs.AddSystem(systems.NewUpdateAudio(ps.opts.Audio, bank, systems.AudioSettings{
			MasterVolume: s.Audio.MasterVolume,
			MaxVoices:    s.Audio.MaxVoices,
		}))
	}
	if ps.opts.MIDI != nil {
		ecs.AddSystem(systems.NewUpdateMIDI(ps.opts.MIDI))
	}

	ecs.AddRenderer(archetypes.LayerDefault, systems.NewDrawWorld(systems.WorldView{
		OffsetX:     offsetX,
		OffsetY:     offsetY,
		StrokeWidth: float32(s.UI.StrokeWidth),
		Foreground:  s.UI.Foreground,
		Growing:     s.UI.Growing,
	}))
	ecs.AddRenderer(archetypes.LayerDefault, systems.NewDrawStaff(systems.StaffView{
		X: s.Staff.OriginX,
		Y: s.Staff.OriginY,
		Background: assets.MustLoadStaff(assets.StaffLayout{
			Width:     s.Staff.Width,
			Height:    s.Staff.Height,
			Lines:     s.Staff.Lines,
			LineWidth: 1,
			Color:     s.UI.Foreground,
		}),
		MarkerRadius: s.Staff.MarkerRadius,
		Color:        s.UI.Foreground,
	}))
	ecs.AddRenderer(archetypes.LayerOverlay, systems.NewDrawHUD(pw, machine, s.UI.Dim))
	ecs.AddRenderer(archetypes.LayerOverlay, systems.NewDrawDebug(offsetX, offsetY))

	ps.ecs = ecs
	return nil
}

func newPlacement(s cfg.Settings, a *arena.Arena, occ growth.Occupancy) (growth.Placement, error) {
	probe := s.Probe(occ)
	switch s.Arena.Placement {
	case cfg.PlacementRotating:
		return growth.NewRotating(a.Spawns, probe, nil), nil
	case cfg.PlacementRandom:
		return growth.NewInsetRandom(a.Inset, probe, nil), nil
	default:
		return nil, fmt.Errorf("%w: placement %q", cfg.ErrInvalid, s.Arena.Placement)
	}
}

// preloadTones lists the requests every key press and release will send.
func preloadTones(s cfg.Settings, t *tone.Trigger) []tone.Request {
	reqs := make([]tone.Request, 0, 2*len(s.Input.Keys))
	for _, b := range s.Input.Keys {
		reqs = append(reqs,
			t.Request(tone.Short, b.Sides, s.Growth.SpawnVolume),
			t.Request(tone.Long, b.Sides, 1),
		)
	}
	return reqs
}

func legendEntries(s cfg.Settings, t *tone.Trigger) []ui.LegendEntry {
	keys := make([]string, 0, len(s.Input.Keys))
	for k := range s.Input.Keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]ui.LegendEntry, 0, len(keys))
	for _, k := range keys {
		sides := s.Input.Keys[k].Sides
		freq := t.Request(tone.Short, sides, 0).Frequency
		entries = append(entries, ui.LegendEntry{
			Key:   k,
			Sides: sides,
			Note:  tone.NoteName(tone.MIDIKey(freq)),
		})
	}
	return entries
}

func dim(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R/2 + 20, G: c.G/2 + 20, B: c.B/2 + 30, A: 220}
}
