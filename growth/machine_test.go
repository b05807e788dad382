package growth

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

type fakeBody struct {
	id   int
	spec BodySpec
}

type fakeWorld struct {
	next    int
	live    map[int]*fakeBody
	added   []BodySpec
	removed int
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{live: make(map[int]*fakeBody)}
}

func (w *fakeWorld) AddPolygon(spec BodySpec) Body {
	w.next++
	b := &fakeBody{id: w.next, spec: spec}
	w.live[b.id] = b
	w.added = append(w.added, spec)
	return b
}

func (w *fakeWorld) RemoveBody(b Body) {
	fb := b.(*fakeBody)
	if _, ok := w.live[fb.id]; !ok {
		panic("removing a body twice")
	}
	delete(w.live, fb.id)
	w.removed++
}

func (w *fakeWorld) bodies(static bool) []*fakeBody {
	var out []*fakeBody
	for _, b := range w.live {
		if b.spec.Static == static {
			out = append(out, b)
		}
	}
	return out
}

type toneCall struct {
	long   bool
	sides  int
	volume float64
}

type fakeTones struct {
	calls []toneCall
}

func (t *fakeTones) PlayShort(sides int, volume float64) {
	t.calls = append(t.calls, toneCall{sides: sides, volume: volume})
}

func (t *fakeTones) PlayLong(sides int) {
	t.calls = append(t.calls, toneCall{long: true, sides: sides, volume: 1})
}

type fakeStaff struct {
	keys     []string
	unmapped map[string]bool
}

func (s *fakeStaff) Place(key string) bool {
	if s.unmapped[key] {
		return false
	}
	s.keys = append(s.keys, key)
	return true
}

type fixedPlacement struct {
	at    dmath.Vec2
	calls int
}

func (p *fixedPlacement) Next(float64) dmath.Vec2 {
	p.calls++
	return p.at
}

func testConfig() Config {
	return Config{
		Keys:                 map[string]int{"a": 3, "s": 4, "d": 5, "f": 6, "g": 7, "h": 8, "j": 9, "k": 10},
		MinSides:             3,
		MaxSides:             10,
		InitialSize:          5,
		GrowthRate:           0.5,
		SpawnVolume:          0.5,
		ToneThreshold:        10,
		VolumeDivisor:        100,
		MaxVolume:            1,
		Material:             Material{Friction: 0.1, Restitution: 0.3, AirFriction: 0.02},
		AngularVelocityRange: 3,
	}
}

type fixture struct {
	m         *Machine
	world     *fakeWorld
	tones     *fakeTones
	staff     *fakeStaff
	placement *fixedPlacement
}

func newFixture(t *testing.T, cfg Config) fixture {
	t.Helper()
	f := fixture{
		world:     newFakeWorld(),
		tones:     &fakeTones{},
		staff:     &fakeStaff{},
		placement: &fixedPlacement{at: dmath.NewVec2(400, 120)},
	}
	m, err := New(cfg, f.world, f.tones, f.staff, f.placement, WithRand(rand.New(rand.NewPCG(1, 2))))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	f.m = m
	return f
}

func TestKeyDownCreatesStaticBody(t *testing.T) {
	f := newFixture(t, testConfig())

	if !f.m.KeyDown("a") {
		t.Fatal("KeyDown(a) = false")
	}

	rec, ok := f.m.Record("a")
	if !ok {
		t.Fatal("no record for a")
	}
	if rec.Sides != 3 || rec.Size != 5 || rec.GrowthRate != 0.5 || rec.Anchor != f.placement.at {
		t.Errorf("record = %+v", rec)
	}

	static := f.world.bodies(true)
	if len(static) != 1 || len(f.world.live) != 1 {
		t.Fatalf("live bodies = %d, static = %d", len(f.world.live), len(static))
	}
	if spec := static[0].spec; spec.Sides != 3 || len(spec.Vertices) != 3 || spec.AngularVelocity != 0 {
		t.Errorf("static spec = %+v", spec)
	}

	if len(f.tones.calls) != 1 || f.tones.calls[0] != (toneCall{sides: 3, volume: 0.5}) {
		t.Errorf("tones = %+v", f.tones.calls)
	}
	if len(f.staff.keys) != 1 || f.staff.keys[0] != "a" {
		t.Errorf("staff = %v", f.staff.keys)
	}
}

func TestKeyDownNormalizesCase(t *testing.T) {
	f := newFixture(t, testConfig())

	if !f.m.KeyDown("S") {
		t.Fatal("KeyDown(S) = false")
	}
	if _, ok := f.m.Record("s"); !ok {
		t.Error("expected record under lower-case key")
	}
	if !f.m.Pressed("s") {
		t.Error("expected s in the press set")
	}
}

func TestDoublePressIsIdempotent(t *testing.T) {
	f := newFixture(t, testConfig())

	f.m.KeyDown("a")
	if f.m.KeyDown("a") {
		t.Error("second KeyDown(a) = true")
	}
	if f.m.Len() != 1 || len(f.world.live) != 1 || f.placement.calls != 1 {
		t.Errorf("records=%d bodies=%d placements=%d", f.m.Len(), len(f.world.live), f.placement.calls)
	}
	if len(f.tones.calls) != 1 || len(f.staff.keys) != 1 {
		t.Errorf("tones=%d staff=%d", len(f.tones.calls), len(f.staff.keys))
	}
}

func TestUnmappedKeys(t *testing.T) {
	f := newFixture(t, testConfig())
	if f.m.KeyDown("z") {
		t.Error("unmapped key accepted while AllowUnmappedKeys is false")
	}
	if f.m.Len() != 0 || len(f.world.added) != 0 {
		t.Error("unmapped key created state")
	}

	cfg := testConfig()
	cfg.AllowUnmappedKeys = true
	f = newFixture(t, cfg)
	for _, key := range []string{"z", "x", "c", "v", "b", "n", "m", "q"} {
		if !f.m.KeyDown(key) {
			t.Fatalf("KeyDown(%s) = false", key)
		}
		rec, _ := f.m.Record(key)
		if rec.Sides < 3 || rec.Sides > 10 {
			t.Errorf("random sides for %s = %d", key, rec.Sides)
		}
	}
}

func TestTickGrowsByRate(t *testing.T) {
	cfg := testConfig()
	cfg.GrowthRate = 0.1
	f := newFixture(t, cfg)
	f.m.KeyDown("s")
	f.m.KeyDown("d")

	const n = 37
	for i := 0; i < n; i++ {
		f.m.Tick()
	}

	for _, key := range []string{"s", "d"} {
		rec, _ := f.m.Record(key)
		if want := 5 + n*0.1; math.Abs(rec.Size-want) > 1e-9 {
			t.Errorf("%s size = %g, want %g", key, rec.Size, want)
		}
	}
	if len(f.world.live) != 2 {
		t.Errorf("live bodies = %d, want 2 (old bodies must be replaced)", len(f.world.live))
	}
	if f.world.removed != 2*n {
		t.Errorf("removed = %d, want %d", f.world.removed, 2*n)
	}
}

func TestTickReplacesBodyAtSameAnchor(t *testing.T) {
	f := newFixture(t, testConfig())
	f.m.KeyDown("f")
	before, _ := f.m.Record("f")

	f.m.Tick()

	after, _ := f.m.Record("f")
	if after.Body == before.Body {
		t.Fatal("body handle not replaced")
	}
	spec := after.Body.(*fakeBody).spec
	if !spec.Static || spec.Anchor != before.Anchor || spec.Sides != 6 || spec.Size != 5.5 {
		t.Errorf("replacement spec = %+v", spec)
	}
	if d := math.Hypot(spec.Vertices[0].X, spec.Vertices[0].Y); math.Abs(d-5.5) > 1e-9 {
		t.Errorf("vertex radius = %g, want 5.5", d)
	}
}

func TestKeyUpWithoutRecordIsNoop(t *testing.T) {
	f := newFixture(t, testConfig())

	if f.m.KeyUp("a") {
		t.Error("KeyUp(a) without record = true")
	}
	if f.m.Len() != 0 || len(f.world.added) != 0 || f.world.removed != 0 || len(f.tones.calls) != 0 {
		t.Error("KeyUp without record changed state")
	}
}

func TestKeyUpReleasesDynamicBody(t *testing.T) {
	f := newFixture(t, testConfig())
	f.m.KeyDown("g")
	f.m.KeyDown("h")
	f.m.Tick()

	if !f.m.KeyUp("g") {
		t.Fatal("KeyUp(g) = false")
	}

	if _, ok := f.m.Record("g"); ok {
		t.Error("record for g survived release")
	}
	if f.m.Len() != 1 {
		t.Errorf("records = %d, want 1", f.m.Len())
	}
	if f.m.Pressed("g") {
		t.Error("g still in the press set")
	}

	dynamic := f.world.bodies(false)
	if len(dynamic) != 1 {
		t.Fatalf("dynamic bodies = %d, want 1", len(dynamic))
	}
	spec := dynamic[0].spec
	if spec.Sides != 7 || spec.Anchor != f.placement.at || spec.Size != 5.5 {
		t.Errorf("dynamic spec = %+v", spec)
	}
	if spec.Material != testConfig().Material {
		t.Errorf("material = %+v", spec.Material)
	}
	if math.Abs(spec.AngularVelocity) > 3 {
		t.Errorf("angular velocity %g outside ±3", spec.AngularVelocity)
	}
	if len(f.world.bodies(true)) != 1 {
		t.Error("other key's static body was disturbed")
	}

	last := f.tones.calls[len(f.tones.calls)-1]
	if last != (toneCall{long: true, sides: 7, volume: 1}) {
		t.Errorf("release tone = %+v", last)
	}
}

func TestReleasedKeyCanGrowAgain(t *testing.T) {
	f := newFixture(t, testConfig())
	f.m.KeyDown("a")
	f.m.KeyUp("a")

	if !f.m.KeyDown("a") {
		t.Fatal("KeyDown after release = false")
	}
	if rec, _ := f.m.Record("a"); rec.Size != 5 {
		t.Errorf("new record size = %g, want 5", rec.Size)
	}
}

func TestScenarioTriangleGrowAndRelease(t *testing.T) {
	f := newFixture(t, testConfig())

	f.m.KeyDown("a")
	for i := 0; i < 20; i++ {
		f.m.Tick()
	}

	rec, _ := f.m.Record("a")
	if rec.Size != 15 {
		t.Fatalf("size after 20 ticks = %g, want 15", rec.Size)
	}

	growthTones := f.tones.calls[1:]
	if len(growthTones) != 1 {
		t.Fatalf("growth tones = %+v, want exactly one", growthTones)
	}
	if growthTones[0] != (toneCall{sides: 3, volume: 0.1}) {
		t.Errorf("growth tone = %+v, want 3 sides at volume 0.1", growthTones[0])
	}

	f.m.KeyUp("a")
	dynamic := f.world.bodies(false)
	if len(dynamic) != 1 || len(f.world.live) != 1 {
		t.Fatalf("live=%d dynamic=%d", len(f.world.live), len(dynamic))
	}
	if spec := dynamic[0].spec; spec.Sides != 3 || spec.Anchor != f.placement.at || spec.Size != 15 {
		t.Errorf("released spec = %+v", spec)
	}
}

func TestGrowthToneVolumeCapped(t *testing.T) {
	cfg := testConfig()
	cfg.GrowthRate = 10
	f := newFixture(t, cfg)
	f.m.KeyDown("a")

	for i := 0; i < 15; i++ { // size 155
		f.m.Tick()
	}
	last := f.tones.calls[len(f.tones.calls)-1]
	if last.volume != 1 {
		t.Errorf("volume at size 155 = %g, want 1", last.volume)
	}
	if got := len(f.tones.calls) - 1; got != 15 {
		t.Errorf("growth tones = %d, want 15", got)
	}
}

func TestReleaseAll(t *testing.T) {
	f := newFixture(t, testConfig())
	f.m.KeyDown("a")
	f.m.KeyDown("k")

	if n := f.m.ReleaseAll(); n != 2 {
		t.Errorf("ReleaseAll = %d, want 2", n)
	}
	if f.m.Len() != 0 || len(f.m.Growing()) != 0 || f.m.Pressed("a") {
		t.Error("ReleaseAll left state behind")
	}
	if len(f.world.bodies(false)) != 2 {
		t.Error("expected two dynamic bodies")
	}
}

func TestGrowingKeepsPressOrder(t *testing.T) {
	f := newFixture(t, testConfig())
	for _, k := range []string{"j", "a", "d"} {
		f.m.KeyDown(k)
	}
	f.m.KeyUp("a")

	got := f.m.Growing()
	if len(got) != 2 || got[0] != "j" || got[1] != "d" {
		t.Errorf("Growing = %v", got)
	}
}

func TestNewValidatesConfig(t *testing.T) {
	w := newFakeWorld()
	p := &fixedPlacement{}

	bad := []func(*Config){
		func(c *Config) { c.Keys["x"] = 2 },
		func(c *Config) { c.InitialSize = 0 },
		func(c *Config) { c.GrowthRate = -1 },
		func(c *Config) { c.AllowUnmappedKeys = true; c.MaxSides = 2 },
	}
	for i, mutate := range bad {
		cfg := testConfig()
		mutate(&cfg)
		if _, err := New(cfg, w, nil, nil, p); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("case %d: err = %v, want ErrInvalidConfig", i, err)
		}
	}

	if _, err := New(testConfig(), nil, nil, nil, p); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("nil world: err = %v", err)
	}
	if _, err := New(testConfig(), w, nil, nil, nil); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("nil placement: err = %v", err)
	}
}

func TestNilCollaboratorsAreSilent(t *testing.T) {
	m, err := New(testConfig(), newFakeWorld(), nil, nil, &fixedPlacement{})
	if err != nil {
		t.Fatal(err)
	}
	m.KeyDown("a")
	for i := 0; i < 20; i++ {
		m.Tick()
	}
	m.KeyUp("a")
}

func TestCrossesThreshold(t *testing.T) {
	tests := []struct {
		prev, next float64
		step       int
		want       bool
	}{
		{9.5, 10, 10, true},
		{10, 10.5, 10, false},
		{5, 9.9, 10, false},
		{19.9, 25, 10, true},
		{9, 30, 10, true},
		{9.5, 10, 0, false},
	}
	for _, tt := range tests {
		if got := crossesThreshold(tt.prev, tt.next, tt.step); got != tt.want {
			t.Errorf("crossesThreshold(%g, %g, %d) = %v, want %v", tt.prev, tt.next, tt.step, got, tt.want)
		}
	}
}

func TestStaffTone(t *testing.T) {
	tests := []struct {
		name      string
		staffTone bool
		key       string
		want      []toneCall
	}{
		{"off", false, "s", []toneCall{{sides: 4, volume: 0.5}}},
		{"on", true, "s", []toneCall{{sides: 4, volume: 0.5}, {long: true, sides: 4, volume: 1}}},
		{"on without marker", true, "d", []toneCall{{sides: 5, volume: 0.5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.StaffTone = tt.staffTone
			f := newFixture(t, cfg)
			f.staff.unmapped = map[string]bool{"d": true}

			f.m.KeyDown(tt.key)

			if len(f.tones.calls) != len(tt.want) {
				t.Fatalf("tones = %+v, want %+v", f.tones.calls, tt.want)
			}
			for i, c := range tt.want {
				if f.tones.calls[i] != c {
					t.Errorf("tone %d = %+v, want %+v", i, f.tones.calls[i], c)
				}
			}
		})
	}
}
