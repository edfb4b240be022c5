package meowgic

import "github.com/go-gl/mathgl/mgl64"

// Decoy draws the pack away from the cat until it expires.
type Decoy struct {
	Pos       mgl64.Vec2
	ExpiresAt float64
}

// Alive reports whether the decoy is still attracting dogs at now.
func (d *Decoy) Alive(now float64) bool {
	return d != nil && now < d.ExpiresAt
}

// Remaining returns the seconds left before expiry.
func (d *Decoy) Remaining(now float64) float64 {
	if !d.Alive(now) {
		return 0
	}
	return d.ExpiresAt - now
}
