package growth

import (
	"math/rand/v2"

	"github.com/automoto/polytone/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Placement picks the anchor of a new polygon of the given initial size.
type Placement interface {
	Next(size float64) dmath.Vec2
}

// Occupancy reports whether a circle overlaps an existing body.
type Occupancy interface {
	Occupied(x, y, radius float64) bool
}

// Probe makes a placement retry candidates that land on existing bodies. After
// MaxAttempts the last candidate is used anyway.
type Probe struct {
	Occupancy   Occupancy
	MaxAttempts int
	Clearance   float64
}

func (p Probe) sample(region gamemath.Rect, size float64, rng *rand.Rand) dmath.Vec2 {
	pt := region.PointAt(rng.Float64(), rng.Float64())
	if p.Occupancy == nil {
		return pt
	}
	for i := 1; i < p.MaxAttempts && p.Occupancy.Occupied(pt.X, pt.Y, size+p.Clearance); i++ {
		pt = region.PointAt(rng.Float64(), rng.Float64())
	}
	return pt
}

func defaultRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Rotating cycles through spawn regions by a running spawn counter and picks
// a uniform point inside the selected region.
type Rotating struct {
	regions []gamemath.Rect
	probe   Probe
	rng     *rand.Rand
	count   int
}

func NewRotating(regions []gamemath.Rect, probe Probe, rng *rand.Rand) *Rotating {
	return &Rotating{regions: regions, probe: probe, rng: defaultRand(rng)}
}

func (r *Rotating) Next(size float64) dmath.Vec2 {
	if len(r.regions) == 0 {
		return dmath.Vec2{}
	}
	region := r.regions[r.count%len(r.regions)]
	r.count++
	return r.probe.sample(region, size, r.rng)
}

// Count is the number of anchors handed out so far.
func (r *Rotating) Count() int {
	return r.count
}

// InsetRandom picks a uniform point inside a single inset rectangle.
type InsetRandom struct {
	region gamemath.Rect
	probe  Probe
	rng    *rand.Rand
}

func NewInsetRandom(region gamemath.Rect, probe Probe, rng *rand.Rand) *InsetRandom {
	return &InsetRandom{region: region, probe: probe, rng: defaultRand(rng)}
}

func (p *InsetRandom) Next(size float64) dmath.Vec2 {
	return p.probe.sample(p.region, size, p.rng)
}
