package meowgic

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/meowgic/internal/config"
	"github.com/vovakirdan/meowgic/internal/core"
)

// Player is the cat. Heading is in degrees, counter-clockwise from +X, always a multiple of 90.
type Player struct {
	cfg      config.CatConfig
	cellSize float64
	extent   float64

	Pos       mgl64.Vec2
	Heading   int
	SpeedMult float64

	jumping     bool
	progress    float64 // 0..1 while jumping
	jumpReadyAt float64
}

// NewPlayer places the cat at the origin facing +X.
func NewPlayer(cfg config.CatConfig, cellSize, extent float64) *Player {
	return &Player{
		cfg:       cfg,
		cellSize:  cellSize,
		extent:    extent,
		SpeedMult: 1,
	}
}

// Rotate turns the heading by deg degrees (positive is left).
func (p *Player) Rotate(deg int) {
	p.Heading = ((p.Heading+deg)%360 + 360) % 360
}

// Forward returns the unit vector of the current heading.
// Cardinal headings map to exact axis vectors so repeated moves stay on the grid.
func (p *Player) Forward() mgl64.Vec2 {
	switch p.Heading {
	case 0:
		return mgl64.Vec2{1, 0}
	case 90:
		return mgl64.Vec2{0, 1}
	case 180:
		return mgl64.Vec2{-1, 0}
	case 270:
		return mgl64.Vec2{0, -1}
	default:
		rad := mgl64.DegToRad(float64(p.Heading))
		return mgl64.Vec2{math.Cos(rad), math.Sin(rad)}
	}
}

// Move steps dir cells along the heading (negative moves backward), clamped to the field.
func (p *Player) Move(dir float64) {
	step := p.cellSize * p.SpeedMult * dir
	next := p.Pos.Add(p.Forward().Mul(step))
	p.Pos = clampToField(next, p.extent)
}

// StartJump begins a jump if the cat is grounded and the cooldown has elapsed.
func (p *Player) StartJump(now float64) bool {
	if p.jumping || now < p.jumpReadyAt {
		return false
	}
	p.jumping = true
	p.progress = 0
	return true
}

// Advance moves the jump along its arc. Landing starts the cooldown at now.
func (p *Player) Advance(dt, now float64) {
	if !p.jumping {
		return
	}
	p.progress += dt / p.cfg.JumpDuration
	if p.progress >= 1 {
		p.jumping = false
		p.progress = 0
		p.jumpReadyAt = now + p.cfg.JumpCooldown
	}
}

// Jumping reports whether the cat is airborne.
func (p *Player) Jumping() bool {
	return p.jumping
}

// JumpProgress returns the arc progress in [0, 1) and whether a jump is in flight.
func (p *Player) JumpProgress() (float64, bool) {
	return p.progress, p.jumping
}

// JumpReady reports whether StartJump would succeed at now.
func (p *Player) JumpReady(now float64) bool {
	return !p.jumping && now >= p.jumpReadyAt
}

// Height returns the body height, derived from the jump arc 4·H·t·(1−t).
func (p *Player) Height() float64 {
	if !p.jumping {
		return p.cfg.BaseHeight
	}
	t := p.progress
	return p.cfg.BaseHeight + 4*p.cfg.JumpHeight*t*(1-t)
}

// clampToField keeps a point inside [-extent, extent] on both axes.
func clampToField(v mgl64.Vec2, extent float64) mgl64.Vec2 {
	return mgl64.Vec2{
		core.ClampF(v.X(), -extent, extent),
		core.ClampF(v.Y(), -extent, extent),
	}
}
