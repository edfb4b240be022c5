package headless

import (
	"fmt"
	"io"

	"github.com/vovakirdan/meowgic/internal/core"
)

// TextSink writes each frame as plain text.
type TextSink struct {
	w io.Writer
}

// NewTextSink returns a sink writing to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

// WriteFrame implements FrameSink.
func (t *TextSink) WriteFrame(frame int, state core.GameState, screen *core.Screen) error {
	_, err := fmt.Fprintf(t.w, "--- frame %d score %d lives %d ---\n%s\n", frame, state.Score, state.Lives, screen.String())
	return err
}
