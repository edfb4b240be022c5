package meowgic

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/meowgic/internal/config"
	"github.com/vovakirdan/meowgic/internal/core"
)

// epsilon guards normalizations; shorter vectors are treated as "no movement".
const epsilon = 1e-6

// Kind is the closed set of fish variants.
type Kind int

const (
	KindNormal Kind = iota
	KindFast
	KindTimed
	KindGold
	numKinds
)

// Motion describes how a fish moves between frames.
type Motion int

const (
	MotionStatic Motion = iota
	// MotionBounce keeps a constant velocity, reflected at the field bounds.
	MotionBounce
)

// KindRule is the per-kind behavior row.
type KindRule struct {
	Name    string
	Motion  Motion
	Expires bool    // Timed fish vanish after a random TTL
	Grants  PowerUp // Power-up activated on pickup, PowerUpNone if none
	Glyph   rune
	Color   core.Color
}

var kindRules = [numKinds]KindRule{
	KindNormal: {Name: "normal", Motion: MotionStatic, Glyph: '>', Color: core.ColorCyan},
	KindFast:   {Name: "fast", Motion: MotionBounce, Grants: PowerUpSpeedBoost, Glyph: '>', Color: core.ColorBrightGreen},
	KindTimed:  {Name: "timed", Motion: MotionStatic, Expires: true, Grants: PowerUpDoubleScore, Glyph: '>', Color: core.ColorMagenta},
	KindGold:   {Name: "gold", Motion: MotionBounce, Grants: PowerUpTenX, Glyph: '$', Color: core.ColorBrightYellow},
}

// Rule returns the behavior row for the kind.
func (k Kind) Rule() KindRule {
	if k < 0 || k >= numKinds {
		return kindRules[KindNormal]
	}
	return kindRules[k]
}

func (k Kind) String() string {
	return k.Rule().Name
}

// KindCounts tallies fish per kind.
type KindCounts [numKinds]int

// Total returns the number of fish across all kinds.
func (c KindCounts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Fish is a collectible.
type Fish struct {
	Pos       mgl64.Vec2
	Vel       mgl64.Vec2
	Kind      Kind
	Alive     bool
	ExpiresAt float64 // Only meaningful when the kind expires
}

// Field owns the live batch of fish.
type Field struct {
	cfg    config.FishConfig
	extent float64
	fish   []Fish
}

// NewField creates an empty field.
func NewField(cfg config.FishConfig, extent float64) *Field {
	return &Field{cfg: cfg, extent: extent}
}

// SpawnBatch replaces all fish with n new ones placed uniformly inside the bounds.
func (f *Field) SpawnBatch(n int, now float64, rng *rand.Rand) {
	f.fish = f.fish[:0]
	for range n {
		pos := mgl64.Vec2{
			(rng.Float64()*2 - 1) * f.extent,
			(rng.Float64()*2 - 1) * f.extent,
		}
		kind := f.drawKind(rng.Float64())
		fish := Fish{Pos: pos, Kind: kind, Alive: true}

		rule := kind.Rule()
		if rule.Motion == MotionBounce {
			angle := rng.Float64() * 2 * math.Pi
			fish.Vel = mgl64.Vec2{math.Cos(angle), math.Sin(angle)}.Mul(f.cfg.FastSpeed)
		}
		if rule.Expires {
			fish.ExpiresAt = now + f.cfg.TimedTTLMin + rng.Float64()*(f.cfg.TimedTTLMax-f.cfg.TimedTTLMin)
		}
		f.fish = append(f.fish, fish)
	}
}

// drawKind maps a uniform draw to a kind using cumulative thresholds: gold, fast, timed, else normal.
func (f *Field) drawKind(r float64) Kind {
	gold := f.cfg.ProbGold
	fast := gold + f.cfg.ProbFast
	timed := fast + f.cfg.ProbTimed
	switch {
	case r < gold:
		return KindGold
	case r < fast:
		return KindFast
	case r < timed:
		return KindTimed
	default:
		return KindNormal
	}
}

// Advance expires timed fish and moves bouncing fish, reflecting them at the bounds.
func (f *Field) Advance(dt, now float64) {
	for i := range f.fish {
		fish := &f.fish[i]
		if !fish.Alive {
			continue
		}
		rule := fish.Kind.Rule()
		if rule.Expires && now >= fish.ExpiresAt {
			fish.Alive = false
			continue
		}
		if rule.Motion != MotionBounce {
			continue
		}
		fish.Pos = fish.Pos.Add(fish.Vel.Mul(dt))
		for axis := range 2 {
			switch {
			case fish.Pos[axis] >= f.extent:
				fish.Pos[axis] = f.extent
				fish.Vel[axis] = -math.Abs(fish.Vel[axis])
			case fish.Pos[axis] <= -f.extent:
				fish.Pos[axis] = -f.extent
				fish.Vel[axis] = math.Abs(fish.Vel[axis])
			}
		}
	}
}

// CollectWithin claims every live fish within radius of point and returns per-kind counts.
// Claimed fish are dead until the next batch, so no fish is counted twice.
func (f *Field) CollectWithin(point mgl64.Vec2, radius float64) KindCounts {
	var counts KindCounts
	r2 := radius * radius
	for i := range f.fish {
		fish := &f.fish[i]
		if !fish.Alive {
			continue
		}
		if fish.Pos.Sub(point).LenSqr() <= r2 {
			fish.Alive = false
			counts[fish.Kind]++
		}
	}
	return counts
}

// MagnetPull drags live fish within radius toward point. Pull strength falls off
// linearly to zero at the radius, and a fish never passes the point in one step.
func (f *Field) MagnetPull(point mgl64.Vec2, radius, speed, dt float64) {
	if radius <= 0 {
		return
	}
	for i := range f.fish {
		fish := &f.fish[i]
		if !fish.Alive {
			continue
		}
		toward := point.Sub(fish.Pos)
		dist := toward.Len()
		if dist < epsilon || dist > radius {
			continue
		}
		step := speed * (1 - dist/radius) * dt
		if step >= dist {
			fish.Pos = point
			continue
		}
		fish.Pos = fish.Pos.Add(toward.Mul(step / dist))
	}
}

// Remaining returns the number of live fish.
func (f *Field) Remaining() int {
	n := 0
	for i := range f.fish {
		if f.fish[i].Alive {
			n++
		}
	}
	return n
}

// Live returns copies of the live fish in spawn order.
func (f *Field) Live() []Fish {
	out := make([]Fish, 0, len(f.fish))
	for _, fish := range f.fish {
		if fish.Alive {
			out = append(out, fish)
		}
	}
	return out
}

// Points returns the base score for a tally. Gold pays out through its power-up instead.
func (f *Field) Points(c KindCounts) int {
	return c[KindNormal]*f.cfg.PointsNormal + c[KindFast]*f.cfg.PointsFast + c[KindTimed]*f.cfg.PointsTimed
}
