package meowgic

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/meowgic/internal/config"
)

// Dog is a pursuer. Dogs are never removed, only moved and stunned.
type Dog struct {
	Pos          mgl64.Vec2
	StunnedUntil float64
	NextStealAt  float64
}

// Pack is the set of dogs chasing the cat.
type Pack struct {
	cfg    config.DogConfig
	extent float64
	dogs   []Dog
}

// NewPack creates an empty pack.
func NewPack(cfg config.DogConfig, extent float64) *Pack {
	return &Pack{cfg: cfg, extent: extent}
}

// EnsureCount spawns dogs at random positions until the pack has n members.
// It returns how many were added.
func (p *Pack) EnsureCount(n int, now float64, rng *rand.Rand) int {
	added := 0
	for len(p.dogs) < n {
		pos := clampToField(mgl64.Vec2{
			(rng.Float64()*2 - 1) * p.extent,
			(rng.Float64()*2 - 1) * p.extent,
		}, p.extent)
		p.dogs = append(p.dogs, Dog{Pos: pos, NextStealAt: now + p.stealInterval(rng)})
		added++
	}
	return added
}

// Advance moves every awake dog toward target at speed without overshooting it.
func (p *Pack) Advance(dt float64, target mgl64.Vec2, now, speed float64) {
	step := speed * dt
	for i := range p.dogs {
		d := &p.dogs[i]
		if p.IsStunned(i, now) {
			continue
		}
		toward := target.Sub(d.Pos)
		dist := toward.Len()
		if dist < epsilon {
			continue
		}
		if step >= dist {
			d.Pos = clampToField(target, p.extent)
			continue
		}
		d.Pos = clampToField(d.Pos.Add(toward.Mul(step/dist)), p.extent)
	}
}

// Separate pushes apart every pair closer than the minimum separation.
// Each dog of a pair moves half the push along their connecting axis.
func (p *Pack) Separate(dt float64) {
	half := p.cfg.PushSpeed * dt * 0.5
	for i := 0; i < len(p.dogs); i++ {
		for j := i + 1; j < len(p.dogs); j++ {
			axis := p.dogs[j].Pos.Sub(p.dogs[i].Pos)
			dist := axis.Len()
			if dist < epsilon || dist >= p.cfg.MinSeparation {
				continue
			}
			push := axis.Mul(half / dist)
			p.dogs[i].Pos = clampToField(p.dogs[i].Pos.Sub(push), p.extent)
			p.dogs[j].Pos = clampToField(p.dogs[j].Pos.Add(push), p.extent)
		}
	}
}

// Stun sets the absolute time at which dog i wakes up.
func (p *Pack) Stun(i int, until float64) {
	p.dogs[i].StunnedUntil = until
}

// IsStunned reports whether dog i is stunned at now.
func (p *Pack) IsStunned(i int, now float64) bool {
	return now < p.dogs[i].StunnedUntil
}

// StunWithin stuns every dog within radius of point and returns the count.
func (p *Pack) StunWithin(point mgl64.Vec2, radius, until float64) int {
	n := 0
	r2 := radius * radius
	for i := range p.dogs {
		if p.dogs[i].Pos.Sub(point).LenSqr() <= r2 {
			p.Stun(i, until)
			n++
		}
	}
	return n
}

// StealReady reports whether dog i may attempt a steal at now.
func (p *Pack) StealReady(i int, now float64) bool {
	return now >= p.dogs[i].NextStealAt
}

// ScheduleSteal picks the next steal time for dog i.
func (p *Pack) ScheduleSteal(i int, now float64, rng *rand.Rand) {
	p.dogs[i].NextStealAt = now + p.stealInterval(rng)
}

func (p *Pack) stealInterval(rng *rand.Rand) float64 {
	return p.cfg.StealIntervalMin + rng.Float64()*(p.cfg.StealIntervalMax-p.cfg.StealIntervalMin)
}

// Len returns the pack size.
func (p *Pack) Len() int {
	return len(p.dogs)
}

// Dog returns a copy of dog i.
func (p *Pack) Dog(i int) Dog {
	return p.dogs[i]
}

// Dogs returns copies of all dogs.
func (p *Pack) Dogs() []Dog {
	out := make([]Dog, len(p.dogs))
	copy(out, p.dogs)
	return out
}
