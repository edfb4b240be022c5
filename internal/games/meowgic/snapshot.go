package meowgic

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// PlayerPose is the renderable state of the cat.
type PlayerPose struct {
	Pos       mgl64.Vec2
	Heading   int
	Height    float64
	Jumping   bool
	JumpPhase float64
}

// FishView is a live fish as the renderer sees it.
type FishView struct {
	Pos  mgl64.Vec2
	Kind Kind
}

// DogView is a dog as the renderer sees it.
type DogView struct {
	Pos     mgl64.Vec2
	Stunned bool
}

// DecoyView is the active decoy.
type DecoyView struct {
	Pos       mgl64.Vec2
	Remaining float64
}

// HUD carries the overlay fields.
type HUD struct {
	Score        int
	Lives        int
	Multiplier   int
	MeowCooldown float64
	JumpReady    bool
	PowerUps     [numPowerUps]float64 // Seconds remaining per window
	Cheat        bool
	FPS          float64
	GameOver     bool
	Paused       bool
}

// Frame is an immutable copy of everything the renderer needs for one frame.
type Frame struct {
	Time        float64
	Extent      float64
	CheatRadius float64
	Player      PlayerPose
	Fish        []FishView
	Dogs        []DogView
	Decoy       *DecoyView
	Phase       Phase
	Weather     Weather
	HUD         HUD
}

// Frame captures the current world state.
func (w *World) Frame() Frame {
	now := w.now
	progress, jumping := w.player.JumpProgress()

	f := Frame{
		Time:        now,
		Extent:      w.extent,
		CheatRadius: w.cfg.Cheat.BubbleRadius,
		Player: PlayerPose{
			Pos:       w.player.Pos,
			Heading:   w.player.Heading,
			Height:    w.player.Height(),
			Jumping:   jumping,
			JumpPhase: progress,
		},
		Phase:   w.env.Phase,
		Weather: w.env.Weather,
		HUD: HUD{
			Score:        w.session.Score,
			Lives:        w.session.Lives,
			Multiplier:   w.session.Multiplier(now),
			MeowCooldown: w.session.MeowCooldown(now),
			JumpReady:    w.player.JumpReady(now),
			Cheat:        w.cheat,
			GameOver:     w.session.State == StateGameOver,
		},
	}
	for p := PowerUpNone + 1; p < numPowerUps; p++ {
		f.HUD.PowerUps[p] = w.session.Remaining(p, now)
	}

	live := w.field.Live()
	f.Fish = make([]FishView, len(live))
	for i, fish := range live {
		f.Fish[i] = FishView{Pos: fish.Pos, Kind: fish.Kind}
	}

	f.Dogs = make([]DogView, w.pack.Len())
	for i := range f.Dogs {
		f.Dogs[i] = DogView{Pos: w.pack.Dog(i).Pos, Stunned: w.pack.IsStunned(i, now)}
	}

	if w.decoy.Alive(now) {
		f.Decoy = &DecoyView{Pos: w.decoy.Pos, Remaining: w.decoy.Remaining(now)}
	}
	return f
}

// Hash returns an FNV-1a digest of the simulation fields for determinism testing.
// FPS and pause state are platform concerns and are left out.
func (f *Frame) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	putF := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:])
	}
	putI := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v))) //#nosec G115 -- hash computation
		_, _ = h.Write(buf[:])
	}
	putB := func(v bool) {
		if v {
			putI(1)
		} else {
			putI(0)
		}
	}

	putF(f.Time)
	putF(f.Player.Pos.X())
	putF(f.Player.Pos.Y())
	putI(f.Player.Heading)
	putF(f.Player.Height)
	putB(f.Player.Jumping)
	putF(f.Player.JumpPhase)
	putI(int(f.Phase))
	putI(int(f.Weather))

	putI(f.HUD.Score)
	putI(f.HUD.Lives)
	putI(f.HUD.Multiplier)
	putF(f.HUD.MeowCooldown)
	putB(f.HUD.Cheat)
	putB(f.HUD.GameOver)
	for _, r := range f.HUD.PowerUps {
		putF(r)
	}

	putI(len(f.Fish))
	for _, fish := range f.Fish {
		putI(int(fish.Kind))
		putF(fish.Pos.X())
		putF(fish.Pos.Y())
	}
	putI(len(f.Dogs))
	for _, d := range f.Dogs {
		putF(d.Pos.X())
		putF(d.Pos.Y())
		putB(d.Stunned)
	}
	putB(f.Decoy != nil)
	if f.Decoy != nil {
		putF(f.Decoy.Pos.X())
		putF(f.Decoy.Pos.Y())
		putF(f.Decoy.Remaining)
	}
	return h.Sum64()
}
