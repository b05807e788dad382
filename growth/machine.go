// Package growth is the per-key growth and release state machine. A key press
// spawns a static polygon that grows every tick while the key is held; the
// release turns it into a dynamic body. Physics, audio and notation are
// collaborators passed to New.
package growth

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/automoto/polytone/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Body is an opaque handle owned by the World implementation.
type Body any

// Material is applied to released bodies.
type Material struct {
	Friction    float64
	Restitution float64
	AirFriction float64
}

// BodySpec describes a polygon body for the World to create.
type BodySpec struct {
	Key             string
	Sides           int
	Size            float64
	Anchor          dmath.Vec2
	Vertices        []dmath.Vec2 // relative to Anchor
	Static          bool
	Material        Material
	AngularVelocity float64 // rad/s, dynamic bodies only
}

// World creates and destroys bodies in the simulation.
type World interface {
	AddPolygon(spec BodySpec) Body
	RemoveBody(b Body)
}

// Tones receives the identification, growth and release tones.
type Tones interface {
	PlayShort(sides int, volume float64)
	PlayLong(sides int)
}

// Staff receives one notation marker per accepted key press.
type Staff interface {
	Place(key string) bool
}

// Record is the in-progress state of one growing polygon.
type Record struct {
	Key        string
	Sides      int
	Size       float64
	Anchor     dmath.Vec2
	Body       Body
	GrowthRate float64
}

// Config holds the growth constants and the key table.
type Config struct {
	Keys              map[string]int // key -> side count
	AllowUnmappedKeys bool
	MinSides          int // random range for unmapped keys
	MaxSides          int

	InitialSize float64
	GrowthRate  float64

	SpawnVolume   float64 // volume of the key-down tone
	ToneThreshold int     // growth tone every time floor(size) crosses a multiple
	VolumeDivisor float64 // growth tone volume = min(size/VolumeDivisor, MaxVolume)
	MaxVolume     float64

	Material             Material
	AngularVelocityRange float64 // released spin drawn from ±range, rad/s

	StaffTone bool // also play the long tone when a press places a staff marker
}

var ErrInvalidConfig = errors.New("invalid growth config")

func (c Config) validate() error {
	for key, sides := range c.Keys {
		if sides < 3 {
			return fmt.Errorf("%w: key %q has %d sides", ErrInvalidConfig, key, sides)
		}
	}
	if c.AllowUnmappedKeys && (c.MinSides < 3 || c.MaxSides < c.MinSides) {
		return fmt.Errorf("%w: random sides range [%d, %d]", ErrInvalidConfig, c.MinSides, c.MaxSides)
	}
	if !(c.InitialSize > 0) || !(c.GrowthRate > 0) {
		return fmt.Errorf("%w: initial size %g, growth rate %g", ErrInvalidConfig, c.InitialSize, c.GrowthRate)
	}
	return nil
}

// Machine owns the Growth Ledger and the Input Press Set. It is not safe for
// concurrent use; the game loop drives it from a single goroutine.
type Machine struct {
	cfg       Config
	world     World
	tones     Tones
	staff     Staff
	placement Placement
	rng       *rand.Rand

	records map[string]*Record
	order   []string
	pressed map[string]struct{}
}

type Option func(*Machine)

// WithRand replaces the random source used for unmapped side counts and spin.
func WithRand(r *rand.Rand) Option {
	return func(m *Machine) {
		m.rng = r
	}
}

// New wires a machine. world and placement are required; nil tones or staff
// are replaced by no-ops.
func New(cfg Config, world World, tones Tones, staff Staff, placement Placement, opts ...Option) (*Machine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if world == nil {
		return nil, fmt.Errorf("%w: nil world", ErrInvalidConfig)
	}
	if placement == nil {
		return nil, fmt.Errorf("%w: nil placement", ErrInvalidConfig)
	}
	if tones == nil {
		tones = silent{}
	}
	if staff == nil {
		staff = silent{}
	}

	m := &Machine{
		cfg:       cfg,
		world:     world,
		tones:     tones,
		staff:     staff,
		placement: placement,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		records:   make(map[string]*Record),
		pressed:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// KeyDown starts growing a polygon for key. It returns false when the press
// is an auto-repeat, the key is already growing, or the key is not recognized.
func (m *Machine) KeyDown(key string) bool {
	key = strings.ToLower(key)
	if _, held := m.pressed[key]; held {
		return false
	}
	if _, growing := m.records[key]; growing {
		return false
	}

	sides, ok := m.cfg.Keys[key]
	if !ok {
		if !m.cfg.AllowUnmappedKeys {
			return false
		}
		sides = m.cfg.MinSides + m.rng.IntN(m.cfg.MaxSides-m.cfg.MinSides+1)
	}
	m.pressed[key] = struct{}{}

	rec := &Record{
		Key:        key,
		Sides:      sides,
		Size:       m.cfg.InitialSize,
		Anchor:     m.placement.Next(m.cfg.InitialSize),
		GrowthRate: m.cfg.GrowthRate,
	}
	rec.Body = m.world.AddPolygon(m.spec(rec, true, 0))
	m.records[key] = rec
	m.order = append(m.order, key)

	m.tones.PlayShort(sides, m.cfg.SpawnVolume)
	if m.staff.Place(key) && m.cfg.StaffTone {
		m.tones.PlayLong(sides)
	}
	return true
}

// Tick grows every held polygon by its growth rate and replaces its body.
func (m *Machine) Tick() {
	for _, key := range m.order {
		rec := m.records[key]
		prev := rec.Size
		rec.Size += rec.GrowthRate

		m.world.RemoveBody(rec.Body)
		rec.Body = m.world.AddPolygon(m.spec(rec, true, 0))

		if crossesThreshold(prev, rec.Size, m.cfg.ToneThreshold) {
			m.tones.PlayShort(rec.Sides, math.Min(rec.Size/m.cfg.VolumeDivisor, m.cfg.MaxVolume))
		}
	}
}

// KeyUp releases key's polygon as a dynamic body. A key with no record is ignored.
func (m *Machine) KeyUp(key string) bool {
	key = strings.ToLower(key)
	delete(m.pressed, key)

	rec, ok := m.records[key]
	if !ok {
		return false
	}

	m.world.RemoveBody(rec.Body)
	spin := (m.rng.Float64()*2 - 1) * m.cfg.AngularVelocityRange
	rec.Body = m.world.AddPolygon(m.spec(rec, false, spin))

	delete(m.records, key)
	m.order = slices.DeleteFunc(m.order, func(k string) bool { return k == key })

	m.tones.PlayLong(rec.Sides)
	return true
}

// ReleaseAll releases every growing key, e.g. when the window loses focus.
func (m *Machine) ReleaseAll() int {
	keys := slices.Clone(m.order)
	for _, key := range keys {
		m.KeyUp(key)
	}
	clear(m.pressed)
	return len(keys)
}

// Record returns a copy of key's growth record.
func (m *Machine) Record(key string) (Record, bool) {
	rec, ok := m.records[strings.ToLower(key)]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// Growing returns the held keys in press order.
func (m *Machine) Growing() []string {
	return slices.Clone(m.order)
}

func (m *Machine) Len() int {
	return len(m.records)
}

func (m *Machine) Pressed(key string) bool {
	_, ok := m.pressed[strings.ToLower(key)]
	return ok
}

func (m *Machine) spec(rec *Record, static bool, spin float64) BodySpec {
	spec := BodySpec{
		Key:      rec.Key,
		Sides:    rec.Sides,
		Size:     rec.Size,
		Anchor:   rec.Anchor,
		Vertices: gamemath.MustGenerateVertices(rec.Sides, rec.Size),
		Static:   static,
	}
	if !static {
		spec.Material = m.cfg.Material
		spec.AngularVelocity = spin
	}
	return spec
}

// crossesThreshold reports whether floor(size) passed a multiple of step going from prev to next.
func crossesThreshold(prev, next float64, step int) bool {
	if step <= 0 {
		return false
	}
	return int(math.Floor(next))/step > int(math.Floor(prev))/step
}

type silent struct{}

func (silent) PlayShort(int, float64) {}
func (silent) PlayLong(int) {}
func (silent) Place(string) bool { return false }
