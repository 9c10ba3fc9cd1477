package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/lixenwraith/duckling/core"
)

// Frame is everything the renderer needs for one draw, assembled by the
// game context from live state
type Frame struct {
	DuckName  string
	Stage     string
	Mood      string
	MoodGlyph rune
	Needs     core.Needs

	DuckPos core.Point
	Pose    []string
	// AnimFrame replaces the pose while an interaction animation plays
	AnimFrame string

	Weather string
	Crumbs  int
	Paused  bool

	Messages []string

	// Overlay holds the active modal's lines; nil means no modal
	Overlay []string

	Debug []string
}

const messageRows = 4

var (
	styleDefault = tcell.StyleDefault
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleDuck    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleOverlay = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue)
	styleBarFull = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBarLow  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Renderer composes the scene into a cell buffer and flushes it
type Renderer struct {
	buf *CellBuffer
}

// NewRenderer creates a renderer for the given initial screen size
func NewRenderer(width, height int) *Renderer {
	return &Renderer{buf: NewCellBuffer(width, height)}
}

// Resize follows a terminal resize
func (r *Renderer) Resize(width, height int) {
	r.buf.Resize(width, height)
}

// Draw renders one frame to the screen
func (r *Renderer) Draw(screen tcell.Screen, f Frame) {
	r.buf.Clear()
	r.drawStatus(f)
	r.drawScene(f)
	r.drawMessages(f)
	if f.Overlay != nil {
		r.drawOverlay(f.Overlay)
	}
	if len(f.Debug) > 0 {
		r.buf.Lines(0, 1, f.Debug, styleDim)
	}
	r.buf.Flush(screen)
}

// drawStatus renders the top status line and the need bars below it
func (r *Renderer) drawStatus(f Frame) {
	status := fmt.Sprintf("%s the %s %c  weather: %s  crumbs: %d",
		f.DuckName, f.Stage, f.MoodGlyph, f.Weather, f.Crumbs)
	if f.Paused {
		status += "  [PAUSED]"
	}
	r.buf.Text(0, 0, status, styleStatus)

	bars := []struct {
		label string
		value float64
	}{
		{"hunger", f.Needs.Hunger},
		{"happy ", f.Needs.Happiness},
		{"clean ", f.Needs.Cleanliness},
		{"energy", f.Needs.Energy},
	}
	y := r.buf.Height() - messageRows - len(bars) - 1
	for i, bar := range bars {
		r.drawBar(0, y+i, bar.label, bar.value)
	}
}

// drawBar renders one ten-segment need bar
func (r *Renderer) drawBar(x, y int, label string, value float64) {
	filled := int(value / 10)
	style := styleBarFull
	if value < 25 {
		style = styleBarLow
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	r.buf.Text(x, y, label+" ", styleDefault)
	r.buf.Text(x+7, y, bar, style)
	r.buf.Text(x+18, y, fmt.Sprintf("%3.0f", value), styleDim)
}

// drawScene renders the duck at its position
func (r *Renderer) drawScene(f Frame) {
	if f.AnimFrame != "" {
		r.buf.Text(f.DuckPos.X, f.DuckPos.Y, f.AnimFrame, styleDuck)
		return
	}
	// Pose lines are anchored so the last line sits on the duck's row
	top := f.DuckPos.Y - len(f.Pose) + 1
	r.buf.Lines(f.DuckPos.X, top, f.Pose, styleDuck)
}

// drawMessages renders the rolling message log along the bottom
func (r *Renderer) drawMessages(f Frame) {
	var rows []string
	for _, msg := range f.Messages {
		wrapped := wordwrap.String(msg, r.buf.Width())
		rows = append(rows, strings.Split(wrapped, "\n")...)
	}
	if len(rows) > messageRows {
		rows = rows[len(rows)-messageRows:]
	}
	y := r.buf.Height() - messageRows
	for i, row := range rows {
		r.buf.Text(0, y+i, row, styleDim)
	}
}

// drawOverlay centers the modal lines in a filled box
func (r *Renderer) drawOverlay(lines []string) {
	boxW := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > boxW {
			boxW = n
		}
	}
	boxW += 4
	if boxW > r.buf.Width() {
		boxW = r.buf.Width()
	}
	boxH := len(lines) + 2

	x0 := (r.buf.Width() - boxW) / 2
	y0 := (r.buf.Height() - boxH) / 2
	if y0 < 0 {
		y0 = 0
	}

	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			r.buf.Set(x, y, ' ', styleOverlay)
		}
	}
	for i, line := range lines {
		r.buf.Text(x0+2, y0+1+i, line, styleOverlay)
	}
}
