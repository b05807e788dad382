package config

import (
	"errors"
	"fmt"
	"image/color"
	"maps"
	"slices"
	"strings"
)

// Settings groups every section so it can be loaded and validated as one value.
type Settings struct {
	Display Config        `yaml:"display"`
	Arena   ArenaConfig   `yaml:"arena"`
	Growth  GrowthConfig  `yaml:"growth"`
	Physics PhysicsConfig `yaml:"physics"`
	Staff   StaffConfig   `yaml:"staff"`
	Audio   AudioConfig   `yaml:"audio"`
	Input   InputConfig   `yaml:"input"`
	UI      UIConfig      `yaml:"ui"`
	Debug   DebugConfig   `yaml:"debug"`
}

var ErrInvalid = errors.New("invalid config")

// Defaults returns a fresh copy of the built-in configuration.
func Defaults() Settings {
	return Settings{
		Display: Config{
			Width:     960,
			Height:    680,
			Title:     "polytone",
			TPS:       60,
			StaffBand: 120,
		},
		Arena: ArenaConfig{
			Name:        "centered",
			Placement:   PlacementRotating,
			MaxAttempts: 8,
			Clearance:   10,
			CellSize:    16,
		},
		Growth: GrowthConfig{
			InitialSize:          5,
			GrowthRate:           0.5,
			SpawnVolume:          0.5,
			ToneThreshold:        10,
			VolumeDivisor:        100,
			MaxVolume:            1,
			AngularVelocityRange: 3, // 0.05 rad per tick
			AllowUnmappedKeys:    false,
			MinSides:             3,
			MaxSides:             10,
		},
		Physics: PhysicsConfig{
			Gravity:        1000,
			Iterations:     8,
			Density:        0.001,
			Friction:       0.1,
			Restitution:    0.3,
			AirFriction:    0.02,
			WallFriction:   0.1,
			WallElasticity: 0.3,
			DespawnMargin:  200,
		},
		Staff: StaffConfig{
			OriginX:      80,
			OriginY:      10,
			Width:        800,
			Height:       100,
			StartX:       90,
			Spacing:      30,
			MaxX:         740,
			LineY:        []float64{70, 65, 60, 55, 50, 45, 40, 35, 30},
			Lines:        []float64{70, 60, 50, 40, 30},
			MarkerRadius: 6,
			RevealDelay:  30,
			FadeFrames:   20,
			PopFrames:    8,
		},
		Audio: defaultAudio(),
		Input: defaultInput(),
		UI: UIConfig{
			Background:     Black,
			Foreground:     White,
			Growing:        Yellow,
			Dim:            color.RGBA{R: 160, G: 160, B: 160, A: 255},
			StrokeWidth:    2,
			HUDFontSize:    12,
			LegendFontSize: 14,
		},
	}
}

// Current snapshots the global sections. Slices and maps are copied so the
// snapshot can be modified without touching the globals.
func Current() Settings {
	s := Settings{
		Display: *C,
		Arena:   Arena,
		Growth:  Growth,
		Physics: Physics,
		Staff:   Staff,
		Audio:   Audio,
		Input:   Input,
		UI:      UI,
		Debug:   Debug,
	}
	s.Staff.LineY = slices.Clone(Staff.LineY)
	s.Staff.Lines = slices.Clone(Staff.Lines)
	s.Audio.Offsets = slices.Clone(Audio.Offsets)
	s.Input.Keys = maps.Clone(Input.Keys)
	return s
}

// Set replaces the global sections.
func Set(s Settings) {
	display := s.Display
	C = &display
	Arena = s.Arena
	Growth = s.Growth
	Physics = s.Physics
	Staff = s.Staff
	Audio = s.Audio
	Input = s.Input
	UI = s.UI
	Debug = s.Debug
}

// Validate rejects values the simulation cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.Display.Width <= 0 || s.Display.Height <= 0:
		return fmt.Errorf("%w: display %dx%d", ErrInvalid, s.Display.Width, s.Display.Height)
	case s.Display.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, s.Display.TPS)
	case s.Arena.Placement != PlacementRotating && s.Arena.Placement != PlacementRandom:
		return fmt.Errorf("%w: placement %q", ErrInvalid, s.Arena.Placement)
	case s.Growth.InitialSize <= 0 || s.Growth.GrowthRate <= 0:
		return fmt.Errorf("%w: initial size %g, growth rate %g", ErrInvalid, s.Growth.InitialSize, s.Growth.GrowthRate)
	case s.Growth.MinSides < 3 || s.Growth.MaxSides < s.Growth.MinSides:
		return fmt.Errorf("%w: sides range [%d, %d]", ErrInvalid, s.Growth.MinSides, s.Growth.MaxSides)
	case s.Physics.Iterations <= 0:
		return fmt.Errorf("%w: physics iterations %d", ErrInvalid, s.Physics.Iterations)
	case s.Physics.Friction < 0 || s.Physics.Restitution < 0 || s.Physics.WallFriction < 0 || s.Physics.WallElasticity < 0:
		return fmt.Errorf("%w: negative friction or restitution", ErrInvalid)
	case s.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalid, s.Audio.SampleRate)
	case len(s.Audio.Offsets) == 0:
		return fmt.Errorf("%w: empty pitch table", ErrInvalid)
	case s.Staff.Spacing <= 0:
		return fmt.Errorf("%w: staff spacing %g", ErrInvalid, s.Staff.Spacing)
	}
	// key names are matched lower-case
	for _, key := range []string{s.Input.ClearStaff, s.Input.ToggleDebug, s.Input.Quit} {
		if key != strings.ToLower(key) {
			return fmt.Errorf("%w: control key %q must be lower-case", ErrInvalid, key)
		}
	}
	for key, b := range s.Input.Keys {
		if key != strings.ToLower(key) {
			return fmt.Errorf("%w: key %q must be lower-case", ErrInvalid, key)
		}
		if b.Sides < 3 {
			return fmt.Errorf("%w: key %q has %d sides", ErrInvalid, key, b.Sides)
		}
		if b.StaffLine < 0 || b.StaffLine >= len(s.Staff.LineY) {
			return fmt.Errorf("%w: key %q staff line %d out of range", ErrInvalid, key, b.StaffLine)
		}
	}
	return nil
}
