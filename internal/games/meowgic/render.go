package meowgic

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/meowgic/internal/core"
)

const hudRows = 2

// phaseColors tints the ground by time of day.
var phaseColors = map[Phase]core.Color{
	PhaseMorning:   core.ColorGreen,
	PhaseAfternoon: core.ColorYellow,
	PhaseEvening:   core.ColorBlue,
}

// camera projects world coordinates onto the arena box. Terminal cells are about
// twice as tall as they are wide, so one row covers two columns of world space.
type camera struct {
	area   core.Rect
	center mgl64.Vec2
	scale  float64 // World units per column
}

func newCamera(area core.Rect, f *Frame, zoom float64) camera {
	span := 2 * f.Extent
	scale := math.Max(span/float64(area.W), span/float64(area.H*2))
	if zoom > 0 {
		scale /= zoom
	}
	c := camera{area: area, scale: scale}
	if zoom > 1 {
		c.center = f.Player.Pos
	}
	return c
}

// project returns the screen cell for a world point and whether it is inside the arena box.
func (c camera) project(p mgl64.Vec2) (int, int, bool) {
	cx, cy := c.area.Center()
	x := cx + int(math.Round((p.X()-c.center.X())/c.scale))
	y := cy - int(math.Round((p.Y()-c.center.Y())/(2*c.scale)))
	return x, y, c.area.Contains(x, y)
}

// unproject returns the world point at the center of a screen cell.
func (c camera) unproject(x, y int) mgl64.Vec2 {
	cx, cy := c.area.Center()
	return mgl64.Vec2{
		c.center.X() + float64(x-cx)*c.scale,
		c.center.Y() - float64(y-cy)*2*c.scale,
	}
}

func renderFrame(dst *core.Screen, f *Frame, zoom float64) {
	w, h := dst.Width(), dst.Height()
	if w < 20 || h < hudRows+5 {
		dst.DrawTextCentered(h/2, "Window too small")
		return
	}

	drawHUD(dst, f)
	if f.Extent <= 0 {
		return
	}

	box := core.NewRect(0, hudRows, w, h-hudRows)
	dst.DrawBox(box, core.ColorGray)
	cam := newCamera(core.NewRect(1, hudRows+1, w-2, h-hudRows-2), f, zoom)

	drawGround(dst, f, cam)
	if f.HUD.Cheat {
		drawBubble(dst, f, cam)
	}
	for _, fish := range f.Fish {
		rule := fish.Kind.Rule()
		if x, y, ok := cam.project(fish.Pos); ok {
			dst.SetColored(x, y, rule.Glyph, rule.Color)
		}
	}
	if f.Decoy != nil {
		if x, y, ok := cam.project(f.Decoy.Pos); ok {
			dst.SetColored(x, y, '*', core.ColorOrange)
		}
	}
	for _, d := range f.Dogs {
		x, y, ok := cam.project(d.Pos)
		if !ok {
			continue
		}
		if d.Stunned {
			dst.SetColored(x, y, 'z', core.ColorGray)
		} else {
			dst.SetColored(x, y, 'D', core.ColorBrown)
		}
	}
	if x, y, ok := cam.project(f.Player.Pos); ok {
		c := core.ColorBrightWhite
		if f.Player.Jumping {
			c = core.ColorBrightYellow
		}
		dst.SetColored(x, y, headingGlyph(f.Player.Heading), c)
	}

	switch {
	case f.HUD.GameOver:
		drawOverlay(dst, "GAME OVER", fmt.Sprintf("Score: %d", f.HUD.Score), "Press R to restart")
	case f.HUD.Paused:
		drawOverlay(dst, "PAUSED", "Press P to resume")
	}
}

func drawHUD(dst *core.Screen, f *Frame) {
	lives := strings.Repeat("♥", core.Max(f.HUD.Lives, 0))
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", f.HUD.Score), core.ColorBrightWhite)
	dst.DrawTextColored(16, 0, "Lives: ", core.ColorWhite)
	dst.DrawTextColored(23, 0, lives, core.ColorBrightRed)
	if f.HUD.Multiplier > 1 {
		dst.DrawTextColored(35, 0, fmt.Sprintf("x%d", f.HUD.Multiplier), core.ColorBrightYellow)
	}
	if f.HUD.FPS > 0 {
		fps := fmt.Sprintf("%3.0f fps", f.HUD.FPS)
		dst.DrawTextColored(dst.Width()-len(fps)-1, 0, fps, core.ColorGray)
	}

	parts := []string{fmt.Sprintf("%s, %s", f.Phase, f.Weather)}
	if f.HUD.MeowCooldown > 0 {
		parts = append(parts, fmt.Sprintf("meow %.1fs", f.HUD.MeowCooldown))
	} else {
		parts = append(parts, "meow ready")
	}
	if !f.HUD.JumpReady {
		parts = append(parts, "jump -")
	}
	for p := PowerUpNone + 1; p < numPowerUps; p++ {
		if r := f.HUD.PowerUps[p]; r > 0 {
			parts = append(parts, fmt.Sprintf("%s %.1fs", p, r))
		}
	}
	if f.Decoy != nil {
		parts = append(parts, fmt.Sprintf("decoy %.1fs", f.Decoy.Remaining))
	}
	if f.HUD.Cheat {
		parts = append(parts, "magnet")
	}
	dst.DrawTextColored(1, 1, strings.Join(parts, "  "), phaseColors[f.Phase])
}

// drawGround marks the playable square and the weather.
func drawGround(dst *core.Screen, f *Frame, cam camera) {
	ground := '·'
	color := phaseColors[f.Phase]
	if f.Weather == WeatherFog {
		ground, color = '░', core.ColorDarkGray
	}
	tick := int(f.Time * 8)
	for y := cam.area.Y; y < cam.area.Bottom(); y++ {
		for x := cam.area.X; x < cam.area.Right(); x++ {
			p := cam.unproject(x, y)
			if math.Abs(p.X()) > f.Extent || math.Abs(p.Y()) > f.Extent {
				continue
			}
			switch {
			case f.Weather == WeatherRain && (x+y*3+tick)%11 == 0:
				dst.SetColored(x, y, '/', core.ColorBlue)
			case (x+y)%4 == 0 || f.Weather == WeatherFog:
				dst.SetColored(x, y, ground, color)
			}
		}
	}
}

// drawBubble outlines the magnet radius around the cat.
func drawBubble(dst *core.Screen, f *Frame, cam camera) {
	const steps = 48
	for i := range steps {
		a := 2 * math.Pi * float64(i) / steps
		p := f.Player.Pos.Add(mgl64.Vec2{math.Cos(a), math.Sin(a)}.Mul(f.CheatRadius))
		if x, y, ok := cam.project(p); ok {
			dst.SetColored(x, y, '∘', core.ColorCyan)
		}
	}
}

func drawOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len(l))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2
	r := core.NewRect(x, y, boxW, boxH)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r, core.ColorBrightWhite)
	for i, l := range lines {
		dst.DrawTextColored(x+2, y+1+i, l, core.ColorBrightWhite)
	}
}

func headingGlyph(deg int) rune {
	switch deg {
	case 90:
		return '^'
	case 180:
		return '<'
	case 270:
		return 'v'
	default:
		return '>'
	}
}
