// Package render draws the pond scene and overlays into a cell buffer
// and flushes it to the terminal once per frame.
package render

import "github.com/gdamore/tcell/v2"

// cell is one styled screen position
type cell struct {
	r     rune
	style tcell.Style
}

// CellBuffer is a width×height compositor flushed to the screen in one
// pass per frame
type CellBuffer struct {
	cells  []cell
	width  int
	height int
}

// NewCellBuffer creates a buffer with the given dimensions
func NewCellBuffer(width, height int) *CellBuffer {
	b := &CellBuffer{}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width
func (b *CellBuffer) Width() int { return b.width }

// Height returns the buffer height
func (b *CellBuffer) Height() int { return b.height }

// Resize adjusts dimensions, reallocating only when capacity is short
func (b *CellBuffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets every cell to a blank using exponential copy
func (b *CellBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = cell{r: ' ', style: tcell.StyleDefault}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Set places one rune; out-of-bounds writes are dropped
func (b *CellBuffer) Set(x, y int, r rune, style tcell.Style) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = cell{r: r, style: style}
}

// Get returns the rune at a position, space when out of bounds
func (b *CellBuffer) Get(x, y int) rune {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return ' '
	}
	return b.cells[y*b.width+x].r
}

// Text writes a string left to right, clipping at the right edge
func (b *CellBuffer) Text(x, y int, s string, style tcell.Style) {
	col := x
	for _, r := range s {
		b.Set(col, y, r, style)
		col++
	}
}

// Lines writes consecutive rows starting at (x, y)
func (b *CellBuffer) Lines(x, y int, lines []string, style tcell.Style) {
	for i, line := range lines {
		b.Text(x, y+i, line, style)
	}
}

// Flush pushes the buffer to the screen and shows it
func (b *CellBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			screen.SetContent(x, y, c.r, nil, c.style)
		}
	}
	screen.Show()
}
