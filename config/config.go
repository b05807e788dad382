package config

import "image/color"

// Config holds general display configuration
type Config struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TPS       int    `yaml:"tps"`
	StaffBand int    `yaml:"staff_band"` // pixels reserved above the arena for the staff
}

// ArenaConfig selects the boundary layout and the placement strategy
type ArenaConfig struct {
	Name        string  `yaml:"name"`      // embedded arena: "centered" or "classic"
	Placement   string  `yaml:"placement"` // PlacementRotating or PlacementRandom
	MaxAttempts int     `yaml:"max_attempts"`
	Clearance   float64 `yaml:"clearance"` // extra radius when probing for free space
	CellSize    int     `yaml:"cell_size"` // occupancy grid cell
}

const (
	PlacementRotating = "rotating"
	PlacementRandom   = "random"
)

// GrowthConfig contains the growth/release constants
type GrowthConfig struct {
	InitialSize float64 `yaml:"initial_size"`
	GrowthRate  float64 `yaml:"growth_rate"` // per tick

	SpawnVolume   float64 `yaml:"spawn_volume"`
	ToneThreshold int     `yaml:"tone_threshold"` // growth tone each time floor(size) crosses a multiple
	VolumeDivisor float64 `yaml:"volume_divisor"`
	MaxVolume     float64 `yaml:"max_volume"`

	AngularVelocityRange float64 `yaml:"angular_velocity_range"` // rad/s
	AllowUnmappedKeys    bool    `yaml:"allow_unmapped_keys"`
	MinSides             int     `yaml:"min_sides"`
	MaxSides             int     `yaml:"max_sides"`

	StaffTone bool `yaml:"staff_tone"` // long tone on every placed staff marker
}

// PhysicsConfig contains the rigid-body simulation values
type PhysicsConfig struct {
	Gravity    float64 `yaml:"gravity"` // px/s², downwards
	Iterations int     `yaml:"iterations"`
	Density    float64 `yaml:"density"` // mass per px²

	// Released polygons
	Friction    float64 `yaml:"friction"`
	Restitution float64 `yaml:"restitution"`
	AirFriction float64 `yaml:"air_friction"` // fraction of velocity lost per tick

	// Arena walls. A contact uses the geometric mean of the two materials.
	WallFriction   float64 `yaml:"wall_friction"`
	WallElasticity float64 `yaml:"wall_elasticity"`

	DespawnMargin float64 `yaml:"despawn_margin"` // below the arena floor
}

// StaffConfig contains the notation staff layout
type StaffConfig struct {
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`

	StartX  float64   `yaml:"start_x"`
	Spacing float64   `yaml:"spacing"`
	MaxX    float64   `yaml:"max_x"`
	LineY   []float64 `yaml:"line_y"` // note positions, bottom to top
	Lines   []float64 `yaml:"lines"`  // the five drawn staff lines

	MarkerRadius float64 `yaml:"marker_radius"`
	RevealDelay  int     `yaml:"reveal_delay"` // frames before the staff fades in
	FadeFrames   int     `yaml:"fade_frames"`
	PopFrames    int     `yaml:"pop_frames"` // marker grow-in
}

// UIConfig contains colors and font sizes
type UIConfig struct {
	Background color.RGBA `yaml:"-"`
	Foreground color.RGBA `yaml:"-"`
	Growing    color.RGBA `yaml:"-"`
	Dim        color.RGBA `yaml:"-"`

	StrokeWidth    float64 `yaml:"stroke_width"`
	HUDFontSize    float64 `yaml:"hud_font_size"`
	LegendFontSize float64 `yaml:"legend_font_size"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool `yaml:"overlay"` // draw occupancy boxes
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Growth GrowthConfig
var Physics PhysicsConfig
var Staff StaffConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Grey   = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Cyan   = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
)

func init() {
	Set(Defaults())
}
