package meowgic

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"pgregory.net/rapid"

	"github.com/vovakirdan/meowgic/internal/config"
)

func newTestField() *Field {
	cfg := config.DefaultMeowgicConfig()
	return NewField(cfg.Fish, cfg.Arena.Extent())
}

func TestDrawKindThresholdsAreCumulative(t *testing.T) {
	f := newTestField()

	tests := []struct {
		r    float64
		want Kind
	}{
		{0.0, KindGold},
		{0.029, KindGold},
		{0.031, KindFast},
		{0.279, KindFast},
		{0.281, KindTimed},
		{0.449, KindTimed},
		{0.451, KindNormal},
		{0.999, KindNormal},
	}
	for _, tc := range tests {
		if got := f.drawKind(tc.r); got != tc.want {
			t.Errorf("drawKind(%v) = %s, expected %s", tc.r, got, tc.want)
		}
	}
}

func TestSpawnBatch(t *testing.T) {
	f := newTestField()
	rng := rand.New(rand.NewSource(42))

	f.SpawnBatch(200, 3, rng)
	if f.Remaining() != 200 {
		t.Fatalf("Remaining() = %d, expected 200", f.Remaining())
	}

	for i, fish := range f.fish {
		if math.Abs(fish.Pos.X()) > f.extent || math.Abs(fish.Pos.Y()) > f.extent {
			t.Errorf("fish %d spawned outside bounds at %v", i, fish.Pos)
		}
		rule := fish.Kind.Rule()
		switch {
		case rule.Motion == MotionBounce && math.Abs(fish.Vel.Len()-f.cfg.FastSpeed) > 1e-9:
			t.Errorf("bouncing fish %d speed = %v", i, fish.Vel.Len())
		case rule.Motion == MotionStatic && fish.Vel != (mgl64.Vec2{}):
			t.Errorf("static fish %d has velocity %v", i, fish.Vel)
		}
		if rule.Expires && (fish.ExpiresAt < 3+f.cfg.TimedTTLMin || fish.ExpiresAt > 3+f.cfg.TimedTTLMax) {
			t.Errorf("timed fish %d expires at %v, outside [7, 10]", i, fish.ExpiresAt)
		}
	}

	f.SpawnBatch(5, 0, rng)
	if len(f.fish) != 5 {
		t.Errorf("SpawnBatch should replace the batch, got %d fish", len(f.fish))
	}
}

func TestCollectWithinClaimsOnce(t *testing.T) {
	f := newTestField()
	f.fish = []Fish{
		{Pos: mgl64.Vec2{0, 0}, Kind: KindNormal, Alive: true},
		{Pos: mgl64.Vec2{30, 0}, Kind: KindGold, Alive: true},
		{Pos: mgl64.Vec2{100, 0}, Kind: KindFast, Alive: true},
	}

	counts := f.CollectWithin(mgl64.Vec2{}, 36)
	if counts[KindNormal] != 1 || counts[KindGold] != 1 || counts.Total() != 2 {
		t.Errorf("first claim = %v, expected one normal and one gold", counts)
	}
	if again := f.CollectWithin(mgl64.Vec2{}, 36); again.Total() != 0 {
		t.Errorf("second claim = %v, expected nothing", again)
	}
	if f.Remaining() != 1 {
		t.Errorf("Remaining() = %d, expected 1", f.Remaining())
	}
}

func TestCollectWithinNeverDoubleCounts(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := newTestField()
		n := rapid.IntRange(1, 40).Draw(t, "n")
		f.SpawnBatch(n, 0, rand.New(rand.NewSource(rapid.Int64().Draw(t, "seed"))))

		collected := 0
		queries := rapid.IntRange(1, 20).Draw(t, "queries")
		for i := range queries {
			point := mgl64.Vec2{
				rapid.Float64Range(-f.extent, f.extent).Draw(t, "qx"),
				rapid.Float64Range(-f.extent, f.extent).Draw(t, "qy"),
			}
			radius := rapid.Float64Range(0, 400).Draw(t, "radius")
			collected += f.CollectWithin(point, radius).Total()
			if collected+f.Remaining() != n {
				t.Fatalf("query %d: collected %d + remaining %d != %d", i, collected, f.Remaining(), n)
			}
		}
	})
}

func TestTimedFishExpire(t *testing.T) {
	f := newTestField()
	f.fish = []Fish{{Kind: KindTimed, Alive: true, ExpiresAt: 5}}

	f.Advance(0.1, 4.9)
	if f.Remaining() != 1 {
		t.Fatal("timed fish expired early")
	}
	f.Advance(0.1, 5)
	if f.Remaining() != 0 {
		t.Error("timed fish should expire at its timestamp")
	}
}

func TestFastFishBounceOffBounds(t *testing.T) {
	f := newTestField()
	f.fish = []Fish{{Pos: mgl64.Vec2{505, -505}, Vel: mgl64.Vec2{220, -220}, Kind: KindFast, Alive: true}}

	f.Advance(0.05, 0)
	fish := f.fish[0]
	if fish.Pos != (mgl64.Vec2{510, -510}) {
		t.Errorf("position = %v, expected clamp to the corner", fish.Pos)
	}
	if fish.Vel != (mgl64.Vec2{-220, 220}) {
		t.Errorf("velocity = %v, expected both components reflected", fish.Vel)
	}

	f.Advance(0.05, 0.05)
	if f.fish[0].Pos.X() >= 510 || f.fish[0].Pos.Y() <= -510 {
		t.Errorf("fish should move back inside, got %v", f.fish[0].Pos)
	}
}

func TestMagnetPull(t *testing.T) {
	f := newTestField()
	f.fish = []Fish{
		{Pos: mgl64.Vec2{10, 0}, Alive: true},
		{Pos: mgl64.Vec2{60, 0}, Alive: true},
		{Pos: mgl64.Vec2{200, 0}, Alive: true},
		{Pos: mgl64.Vec2{0, 0}, Alive: true},
	}

	f.MagnetPull(mgl64.Vec2{}, 120, 240, 1)
	if f.fish[0].Pos != (mgl64.Vec2{}) {
		t.Errorf("close fish should land on the point without overshoot, got %v", f.fish[0].Pos)
	}
	if f.fish[2].Pos != (mgl64.Vec2{200, 0}) {
		t.Errorf("fish outside the radius moved to %v", f.fish[2].Pos)
	}
	if f.fish[3].Pos != (mgl64.Vec2{}) {
		t.Errorf("fish on the point moved to %v", f.fish[3].Pos)
	}

	f.fish[1].Pos = mgl64.Vec2{60, 0}
	f.MagnetPull(mgl64.Vec2{}, 120, 240, 0.05)
	if got := f.fish[1].Pos.X(); math.Abs(got-54) > 1e-9 {
		t.Errorf("half-strength pull moved fish to %v, expected 54", got)
	}
}

func TestMagnetPullNeverOvershoots(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := newTestField()
		point := mgl64.Vec2{
			rapid.Float64Range(-500, 500).Draw(t, "px"),
			rapid.Float64Range(-500, 500).Draw(t, "py"),
		}
		start := mgl64.Vec2{
			rapid.Float64Range(-500, 500).Draw(t, "fx"),
			rapid.Float64Range(-500, 500).Draw(t, "fy"),
		}
		f.fish = []Fish{{Pos: start, Alive: true}}

		f.MagnetPull(point,
			rapid.Float64Range(1, 300).Draw(t, "radius"),
			rapid.Float64Range(0, 1000).Draw(t, "speed"),
			rapid.Float64Range(0, 1).Draw(t, "dt"))

		before := start.Sub(point)
		after := f.fish[0].Pos.Sub(point)
		if after.Len() > before.Len()+1e-9 {
			t.Fatalf("pull moved fish away: %v -> %v", before.Len(), after.Len())
		}
		if after.Dot(before) < -1e-9 {
			t.Fatalf("fish passed the point: %v -> %v", start, f.fish[0].Pos)
		}
	})
}

func TestPointsExcludeGold(t *testing.T) {
	f := newTestField()
	counts := KindCounts{KindNormal: 2, KindFast: 1, KindTimed: 1, KindGold: 3}
	if got := f.Points(counts); got != 2+2+2 {
		t.Errorf("Points() = %d, expected 6", got)
	}
}
