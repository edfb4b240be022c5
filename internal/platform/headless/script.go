package headless

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/meowgic/internal/core"
)

// Script is an InputSource read from text. Each line is a frame index
// followed by action names, e.g. "12 MoveForward Jump". A line of the form
// "10-20 MoveForward" repeats the actions for every frame in the inclusive
// range. Blank lines and lines starting with '#' are ignored.
type Script struct {
	entries []scriptEntry
}

// scriptEntry applies actions to every frame in [lo, hi].
type scriptEntry struct {
	lo, hi  int
	actions []core.Action
}

// ParseScript reads a script.
func ParseScript(r io.Reader) (*Script, error) {
	s := &Script{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		lo, hi, err := parseRange(fields[0])
		if err != nil {
			return nil, fmt.Errorf("script line %d: %w", line, err)
		}
		actions := make([]core.Action, 0, len(fields)-1)
		for _, name := range fields[1:] {
			a, ok := core.ParseAction(name)
			if !ok {
				return nil, fmt.Errorf("script line %d: unknown action %q", line, name)
			}
			actions = append(actions, a)
		}
		s.entries = append(s.entries, scriptEntry{lo: lo, hi: hi, actions: actions})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return s, nil
}

func parseRange(field string) (lo, hi int, err error) {
	from, to, isRange := strings.Cut(field, "-")
	lo, err = strconv.Atoi(from)
	if err != nil || lo < 0 {
		return 0, 0, fmt.Errorf("bad frame %q", field)
	}
	if !isRange {
		return lo, lo, nil
	}
	hi, err = strconv.Atoi(to)
	if err != nil || hi < lo {
		return 0, 0, fmt.Errorf("bad frame range %q", field)
	}
	return lo, hi, nil
}

// Next implements InputSource.
func (s *Script) Next(frame int) core.InputFrame {
	in := core.NewInputFrame()
	for _, e := range s.entries {
		if frame < e.lo || frame > e.hi {
			continue
		}
		for _, a := range e.actions {
			in.Set(a)
		}
	}
	return in
}

// Len returns the index one past the last scripted frame.
func (s *Script) Len() int {
	n := 0
	for _, e := range s.entries {
		n = max(n, e.hi+1)
	}
	return n
}
