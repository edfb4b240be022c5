package headless

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/meowgic/internal/core"
)

func TestParseScript(t *testing.T) {
	src := `# warm up
0 MoveForward
2-4 RotateLeft Jump

4 Meow
`
	s, err := ParseScript(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}

	if f := s.Next(0); !f.Has(core.ActionMoveForward) {
		t.Error("frame 0 should move forward")
	}
	if f := s.Next(1); len(f.Actions) != 0 {
		t.Errorf("frame 1 should be empty, got %v", f.Actions)
	}
	for frame := 2; frame <= 4; frame++ {
		f := s.Next(frame)
		if !f.Has(core.ActionRotateLeft) || !f.Has(core.ActionJump) {
			t.Errorf("frame %d missing ranged actions", frame)
		}
	}
	if f := s.Next(4); !f.Has(core.ActionMeow) {
		t.Error("lines for the same frame should merge")
	}
	if s.Len() != 5 {
		t.Errorf("Len() = %d, expected 5", s.Len())
	}
}

func TestParseScriptLongRange(t *testing.T) {
	s, err := ParseScript(strings.NewReader("0-2000000000 MoveForward\n"))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if f := s.Next(1999999999); !f.Has(core.ActionMoveForward) {
		t.Error("late frame inside the range should move forward")
	}
	if f := s.Next(2000000001); f.Has(core.ActionMoveForward) {
		t.Error("frame past the range should be empty")
	}
	if s.Len() != 2000000001 {
		t.Errorf("Len() = %d", s.Len())
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad frame", "x Jump"},
		{"negative frame", "-1 Jump"},
		{"reversed range", "5-2 Jump"},
		{"unknown action", "1 Bark"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseScript(strings.NewReader(tc.src)); err == nil {
				t.Errorf("expected an error for %q", tc.src)
			}
		})
	}
}

func TestTextSink(t *testing.T) {
	var buf bytes.Buffer
	screen := core.NewScreen(4, 1)
	screen.DrawText(0, 0, "cat")

	sink := NewTextSink(&buf)
	if err := sink.WriteFrame(7, core.GameState{Score: 3, Lives: 2}, screen); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "frame 7 score 3 lives 2") || !strings.Contains(out, "cat") {
		t.Errorf("unexpected output %q", out)
	}
}
