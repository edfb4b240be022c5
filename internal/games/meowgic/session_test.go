package meowgic

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/meowgic/internal/config"
)

func newTestSession() *Session {
	return NewSession(config.DefaultMeowgicConfig())
}

func TestMultiplierPrecedence(t *testing.T) {
	s := newTestSession()
	if s.Multiplier(0) != 1 {
		t.Fatalf("fresh session multiplier = %d", s.Multiplier(0))
	}

	s.Activate(PowerUpDoubleScore, 0)
	s.Activate(PowerUpTenX, 0)
	if got := s.Multiplier(1); got != 10 {
		t.Errorf("double + tenx multiplier = %d, expected 10 (never 12)", got)
	}
	if got := s.AddPoints(1, 1); got != 10 {
		t.Errorf("AddPoints under tenx = %d, expected 10", got)
	}

	s.Activate(PowerUpDoubleScore, 5)
	if got := s.Multiplier(12); got != 2 {
		t.Errorf("after tenx expiry multiplier = %d, expected 2", got)
	}
	if got := s.Multiplier(15); got != 1 {
		t.Errorf("after both expire multiplier = %d, expected 1", got)
	}
}

func TestMultiplierNeverStacks(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := newTestSession()
		for range rapid.IntRange(0, 10).Draw(t, "activations") {
			p := rapid.SampledFrom([]PowerUp{PowerUpDoubleScore, PowerUpTenX, PowerUpSpeedBoost}).Draw(t, "powerup")
			s.Activate(p, rapid.Float64Range(0, 30).Draw(t, "at"))
		}
		now := rapid.Float64Range(0, 40).Draw(t, "now")

		m := s.Multiplier(now)
		switch {
		case s.Active(PowerUpTenX, now) && m != 10:
			t.Fatalf("tenx active but multiplier = %d", m)
		case !s.Active(PowerUpTenX, now) && s.Active(PowerUpDoubleScore, now) && m != 2:
			t.Fatalf("double active but multiplier = %d", m)
		case m != 1 && m != 2 && m != 10:
			t.Fatalf("multiplier %d outside {1, 2, 10}", m)
		}
	})
}

func TestSpeedBoost(t *testing.T) {
	s := newTestSession()
	s.Activate(PowerUpSpeedBoost, 0)
	if s.SpeedMultiplier(9.9) != 1.6 {
		t.Errorf("boosted speed = %v", s.SpeedMultiplier(9.9))
	}
	if s.SpeedMultiplier(10) != 1 {
		t.Error("boost should end after its duration")
	}
	if s.Remaining(PowerUpSpeedBoost, 4) != 6 {
		t.Errorf("Remaining() = %v, expected 6", s.Remaining(PowerUpSpeedBoost, 4))
	}
}

func TestDamageIsRateLimited(t *testing.T) {
	s := newTestSession()

	if !s.TryDamage(0) {
		t.Fatal("first contact should hit immediately")
	}
	if s.TryDamage(0.3) || s.TryDamage(0.59) {
		t.Error("contacts inside the invulnerability window should be ignored")
	}
	if s.Lives != 4 {
		t.Errorf("lives = %d, expected exactly one loss", s.Lives)
	}
	if !s.TryDamage(0.7) {
		t.Error("contact after the window should hit")
	}
	if s.Lives != 3 {
		t.Errorf("lives = %d, expected 3", s.Lives)
	}
}

func TestGameOverTransition(t *testing.T) {
	s := newTestSession()
	for i := range 5 {
		if !s.TryDamage(float64(i)) {
			t.Fatalf("hit %d rejected", i)
		}
		if i < 4 && s.CheckGameOver() {
			t.Fatalf("game over after %d hits", i+1)
		}
	}
	if !s.CheckGameOver() || s.State != StateGameOver {
		t.Fatal("zero lives should end the game")
	}
	if s.CheckGameOver() {
		t.Error("transition should be reported once")
	}
	if s.TryDamage(100) || s.Lives != 0 {
		t.Error("no damage after game over")
	}

	s.Reset()
	if s.State != StatePlaying || s.Lives != 5 || s.Score != 0 {
		t.Errorf("after reset state=%s lives=%d score=%d", s.State, s.Lives, s.Score)
	}
}

func TestMeowCooldown(t *testing.T) {
	s := newTestSession()

	if !s.TryMeow(0) {
		t.Fatal("meow should start ready")
	}
	if s.TryMeow(5.9) {
		t.Error("meow during cooldown should be ignored")
	}
	if got := s.MeowCooldown(2); got != 4 {
		t.Errorf("MeowCooldown(2) = %v, expected 4", got)
	}
	if !s.TryMeow(6) {
		t.Error("meow should be ready after the cooldown")
	}
	if got := s.MeowCooldown(7); got != 5 {
		t.Errorf("cooldown restarts at invocation, got %v", got)
	}
}
