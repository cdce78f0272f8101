// Package render draws the world onto a tcell screen
// It only reads engine state; nothing here feeds back into the game
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/on-tour/camera"
	"github.com/lixenwraith/on-tour/core"
	"github.com/lixenwraith/on-tour/engine"
	"github.com/lixenwraith/on-tour/parameter"
	"github.com/lixenwraith/on-tour/turn"
)

const (
	ballGlyph      = '•'
	crosshairGlyph = '○'
	edgeGlyph      = '◘'
	menuText       = "Menu! D to play!"
)

// menuOrigin is where the menu prompt starts on screen
var menuOrigin = core.Pt(30, 22)

// Renderer owns a tcell screen and redraws it from a World each frame
type Renderer struct {
	screen tcell.Screen
	base   tcell.Style
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		base:   tcell.StyleDefault.Foreground(RgbText).Background(RgbBackground),
	}
}

// Draw renders a complete frame and flushes it
func (r *Renderer) Draw(w engine.World) {
	r.screen.Clear()

	switch w.Phase {
	case engine.PhaseMenu:
		r.drawMenu(w)
	case engine.PhaseComplete:
		r.drawScorecard(w)
	default:
		r.drawCourse(w)
		r.drawBalls(w)
		r.drawMarkers(w)
		r.drawFrames(w.Camera)
		r.drawSidePanel(w)
		r.drawStageLine(w)
	}

	r.screen.Show()
}

func (r *Renderer) drawMenu(w engine.World) {
	r.drawBox(menuOrigin.X-2, menuOrigin.Y-2, menuOrigin.X+len(menuText)+1, menuOrigin.Y+2, r.base)
	r.drawText(menuOrigin.X, menuOrigin.Y, r.base, menuText)
	r.drawText(menuOrigin.X, menuOrigin.Y+4, r.base, fmt.Sprintf("%s, %d holes", w.CourseName, w.TotalHoles))
}

// drawCourse paints the visible map window; cells outside the map stay blank
func (r *Renderer) drawCourse(w engine.World) {
	m := w.Hole.Map
	for _, p := range w.Camera.Coordinates() {
		if !m.InBounds(p) {
			continue
		}
		tile := m.TileAt(p)
		s := w.Camera.RenderCoordinate(p)
		r.screen.SetContent(s.X, s.Y, TileGlyph(tile), nil, TileStyle(tile))
	}
}

func (r *Renderer) drawBalls(w engine.World) {
	m := w.Hole.Map
	for _, b := range w.Balls {
		tile := b.TilePosition()
		s := w.Camera.RenderCoordinate(tile)
		if !interior(w.Camera, s) {
			continue
		}
		style := tcell.StyleDefault.Foreground(RgbBall).Background(TileBackground(m.TileAt(tile)))
		r.screen.SetContent(s.X, s.Y, ballGlyph, nil, style)
	}
}

// drawMarkers shows the aim crosshair, or the map edge it points past
func (r *Renderer) drawMarkers(w engine.World) {
	var degrees float64
	switch st := w.Stage.(type) {
	case turn.Aiming:
		degrees = st.Aim.Degrees
	case turn.Swinging:
		degrees = st.Aim.Degrees
		if st.Swing.Phase == turn.SwingPower {
			r.drawPowerBar(st.Swing.Power)
		}
	default:
		return
	}

	m := w.Hole.Map
	for _, b := range w.Balls {
		origin := b.TilePosition()
		target := core.Offset(origin, degrees, parameter.CrosshairRadius)

		if m.InBounds(target) {
			s := w.Camera.RenderCoordinate(target)
			if interior(w.Camera, s) {
				style := tcell.StyleDefault.Foreground(RgbCrosshair).Background(TileBackground(m.TileAt(target)))
				r.screen.SetContent(s.X, s.Y, crosshairGlyph, nil, style)
			}
			continue
		}

		edge := clampInterior(w.Camera, w.Camera.RenderCoordinate(m.Intersection(origin, target)))
		style := tcell.StyleDefault.Foreground(RgbEdgeMarker).Background(RgbBackground)
		r.screen.SetContent(edge.X, edge.Y, edgeGlyph, nil, style)
	}
}

func (r *Renderer) drawPowerBar(power float64) {
	_, sh := r.screen.Size()
	y := sh - parameter.PowerBarOffset
	filled := int(power / parameter.PowerMax * parameter.PowerBarWidth)
	style := tcell.StyleDefault.Foreground(RgbPowerBar).Background(RgbBackground)

	for i := 0; i < parameter.PowerBarWidth; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		r.screen.SetContent(2+i, y, ch, nil, style)
	}
}

// drawFrames boxes the map viewport and the UI strip below it
func (r *Renderer) drawFrames(cam camera.Camera) {
	sw, sh := r.screen.Size()
	style := tcell.StyleDefault.Foreground(RgbFrame).Background(RgbBackground)
	r.drawBox(0, cam.Height()-1, sw-1, sh-1, style)
	r.drawBox(0, 0, cam.Width()-1, cam.Height()-1, style)
}

func (r *Renderer) drawSidePanel(w engine.World) {
	x := w.Camera.Width() + 1
	strokes, _ := engine.Totals(w.Scorecard)
	lines := []string{
		fmt.Sprintf("Hole %d/%d", w.Hole.Number, w.TotalHoles),
		fmt.Sprintf("Par %d", w.Hole.Par),
		fmt.Sprintf("Strokes %d", w.HoleState.Strokes),
		fmt.Sprintf("Total %d", strokes+w.HoleState.Strokes),
		fmt.Sprintf("Carry %.1f", w.Carry),
	}
	for i, line := range lines {
		r.drawText(x, 1+i, r.base, line)
	}
}

func (r *Renderer) drawStageLine(w engine.World) {
	_, sh := r.screen.Size()
	r.drawText(2, sh-parameter.StatusLineOffset, r.base, StageText(w.Stage))
}

func (r *Renderer) drawScorecard(w engine.World) {
	x, y := 4, 2
	r.drawText(x, y, r.base, fmt.Sprintf("Course complete: %s", w.CourseName))
	y += 2
	r.drawText(x, y, r.base, "Hole  Par  Strokes  +/-")
	y++

	for _, s := range w.Scorecard {
		style := r.base
		switch {
		case s.ToPar() < 0:
			style = style.Foreground(RgbUnderPar)
		case s.ToPar() > 0:
			style = style.Foreground(RgbOverPar)
		}
		r.drawText(x, y, style, fmt.Sprintf("%4d  %3d  %7d  %+d", s.Hole, s.Par, s.Strokes, s.ToPar()))
		y++
	}

	strokes, par := engine.Totals(w.Scorecard)
	y++
	r.drawText(x, y, r.base, fmt.Sprintf("Total %d over par %d (%+d)", strokes, par, strokes-par))
	r.drawText(x, y+2, r.base, "Esc to quit")
}

// StageText is the one-line prompt for the current turn stage
func StageText(s turn.Stage) string {
	switch st := s.(type) {
	case turn.ClubSelection:
		return fmt.Sprintf("Club selected: %s", st.Set.At(st.Selected).Name)
	case turn.Aiming:
		return "Aiming"
	case turn.Swinging:
		switch st.Swing.Phase {
		case turn.SwingPower:
			return "[Power] Aim, Press Space to Start Swing!"
		case turn.SwingAccuracy:
			return "[Acc] Aim, Press Space to Start Swing!"
		default:
			return "[Start] Aim, Press Space to Start Swing!"
		}
	case turn.Traveling:
		return fmt.Sprintf("Ball is Traveling vi %.2f", st.Travel.InitialVelocity())
	case turn.Finished:
		return "Finishing Turn"
	default:
		return ""
	}
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

func (r *Renderer) drawBox(x0, y0, x1, y1 int, style tcell.Style) {
	for x := x0 + 1; x < x1; x++ {
		r.screen.SetContent(x, y0, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, y1, tcell.RuneHLine, nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		r.screen.SetContent(x0, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(x1, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)
}

// interior reports whether a screen cell lies inside the viewport frame
func interior(cam camera.Camera, s core.Point) bool {
	f := parameter.ViewportFrame
	return s.X >= f && s.X < cam.Width()-f && s.Y >= f && s.Y < cam.Height()-f
}

func clampInterior(cam camera.Camera, s core.Point) core.Point {
	f := parameter.ViewportFrame
	return core.Pt(
		min(max(s.X, f), cam.Width()-f-1),
		min(max(s.Y, f), cam.Height()-f-1),
	)
}
