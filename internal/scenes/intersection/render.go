package intersection

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-crossroads/internal/core"
	"github.com/vovakirdan/tui-crossroads/internal/traffic"
)

// LightHeadDistance is how far from the center the four signal heads stand.
const LightHeadDistance = 15.0

// Visual characters for rendering
const (
	RoadChar     = '░'
	DividerHChar = '─'
	DividerVChar = '│'
	BodyChar     = '█'
	LightChar    = '●'
)

// directionColors: +x blue, -x red, +z green, -z yellow.
var directionColors = [traffic.DirectionCount]core.Color{
	traffic.DirPosX: core.ColorBlue,
	traffic.DirNegX: core.ColorRed,
	traffic.DirPosZ: core.ColorGreen,
	traffic.DirNegZ: core.ColorYellow,
}

// directionGlyphs point the way each lane travels on screen; +z is down.
var directionGlyphs = [traffic.DirectionCount]rune{
	traffic.DirPosX: '→',
	traffic.DirNegX: '←',
	traffic.DirPosZ: '↓',
	traffic.DirNegZ: '↑',
}

// DirectionColor returns the color vehicles travelling in d are drawn with.
func DirectionColor(d traffic.Direction) core.Color {
	if int(d) >= len(directionColors) {
		return core.ColorDefault
	}
	return directionColors[d]
}

// PhaseColor returns the color a signal head shows for p.
func PhaseColor(p traffic.Phase) core.Color {
	switch p {
	case traffic.PhaseGreen:
		return core.ColorBrightGreen
	case traffic.PhaseYellow:
		return core.ColorBrightYellow
	default:
		return core.ColorBrightRed
	}
}

// Render draws the current state to the screen.
func (s *Scene) Render(dst *core.Screen) {
	dst.Clear()
	if s.sim == nil {
		return
	}

	snap := s.sim.Snapshot()
	vp := core.NewViewport(dst.Bounds(), s.sim.HalfExtent())

	s.drawRoads(dst, vp)
	drawLights(dst, vp, snap.Light)
	for _, v := range snap.Vehicles {
		drawVehicle(dst, vp, v)
	}
	s.drawHUD(dst, snap)

	if s.paused {
		drawCenteredMessage(dst, "PAUSED", "Space to resume  |  N to step")
	}
}

// drawRoads fills both carriageways, draws their center dividers and
// repaints the crossing so the dividers stop at its edges.
func (s *Scene) drawRoads(dst *core.Screen, vp core.Viewport) {
	halfRoad := s.sim.LaneWidth()
	crossing := core.Rect{}

	for row := vp.Area.Y; row < vp.Area.Bottom(); row++ {
		for col := vp.Area.X; col < vp.Area.Right(); col++ {
			x, z := vp.Unproject(col, row)
			onX := math.Abs(z) < halfRoad // road running along X
			onZ := math.Abs(x) < halfRoad // road running along Z
			if !onX && !onZ {
				continue
			}
			dst.SetColored(col, row, RoadChar, core.ColorDarkGray)
			if onX && onZ {
				if crossing.W == 0 {
					crossing = core.NewRect(col, row, 0, 0)
				}
				crossing.W = col - crossing.X + 1
				crossing.H = row - crossing.Y + 1
			}
		}
	}

	centerCol, centerRow := vp.Project(0, 0)
	dst.DrawHLine(vp.Area.X, centerRow, vp.Area.W, DividerHChar, core.ColorGray)
	dst.DrawVLine(centerCol, vp.Area.Y, vp.Area.H, DividerVChar, core.ColorGray)
	dst.DrawRectColored(crossing, RoadChar, core.ColorDarkGray)
}

// drawLights places the X-axis heads at (±d, 0) and the Z-axis heads at (0, ±d).
func drawLights(dst *core.Screen, vp core.Viewport, l traffic.LightSnapshot) {
	heads := []struct {
		x, z  float64
		phase traffic.Phase
	}{
		{-LightHeadDistance, 0, l.X},
		{LightHeadDistance, 0, l.X},
		{0, -LightHeadDistance, l.Z},
		{0, LightHeadDistance, l.Z},
	}
	for _, h := range heads {
		col, row := vp.Project(h.x, h.z)
		if !vp.Area.Contains(col, row) {
			continue
		}
		dst.SetColored(col, row, LightChar, PhaseColor(h.phase))
	}
}

// drawVehicle draws the footprint, a direction glyph at its center and,
// when stopped, the reason just above it. Vehicles entirely off the map
// are skipped; the label is kept inside the screen.
func drawVehicle(dst *core.Screen, vp core.Viewport, v traffic.VehicleSnapshot) {
	color := DirectionColor(v.Direction)
	r := vp.ProjectRect(v.Position.X, v.Position.Z, v.SizeX, v.SizeZ)
	if !r.Intersects(vp.Area) {
		return
	}
	dst.DrawRectColored(r, BodyChar, color)

	cx, cy := r.Center()
	dst.SetColored(cx, cy, directionGlyphs[v.Direction], core.ColorBrightWhite)

	if v.Stopped {
		label := v.StopReason.String()
		x := core.Clamp(cx-len(label)/2, 0, core.Max(dst.Width()-len(label), 0))
		dst.DrawTextColored(x, r.Y-1, label, core.ColorWhite)
	}
}

// drawHUD renders the debug overlay in the top-left corner.
func (s *Scene) drawHUD(dst *core.Screen, snap traffic.Snapshot) {
	lines := []struct {
		text  string
		color core.Color
	}{
		{fmt.Sprintf("Cars: %d/%d", len(snap.Vehicles), s.sim.SpawnPolicy().MaxVehicles), core.ColorDefault},
		{fmt.Sprintf("X-axis: %s", snap.Light.X), PhaseColor(snap.Light.X)},
		{fmt.Sprintf("Z-axis: %s", snap.Light.Z), PhaseColor(snap.Light.Z)},
		{fmt.Sprintf("Timer: %d", snap.Light.Timer), core.ColorDefault},
		{fmt.Sprintf("Changing: %t", snap.Light.Transitioning), core.ColorDefault},
		{fmt.Sprintf("Tick: %d @ %d/s", snap.Tick, s.runtime.TickRate), core.ColorGray},
		{fmt.Sprintf("Seed: %d", s.runtime.Seed), core.ColorGray},
	}

	width := 0
	for _, l := range lines {
		width = core.Max(width, len(l.text))
	}
	box := core.NewRect(0, 0, width+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, l := range lines {
		dst.DrawTextColored(2, 1+i, l.text, l.color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawTextCentered(box.Y+1, title)
	dst.DrawTextCentered(box.Y+3, subtitle)
}
