package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestCellBuffer_SetGet(t *testing.T) {
	b := NewCellBuffer(10, 5)

	b.Set(3, 2, 'x', tcell.StyleDefault)
	if got := b.Get(3, 2); got != 'x' {
		t.Errorf("Get(3,2) = %q, want x", got)
	}
	if got := b.Get(0, 0); got != ' ' {
		t.Errorf("untouched cell = %q, want space", got)
	}
}

func TestCellBuffer_OutOfBoundsDropped(t *testing.T) {
	b := NewCellBuffer(4, 4)

	b.Set(-1, 0, 'x', tcell.StyleDefault)
	b.Set(4, 0, 'x', tcell.StyleDefault)
	b.Set(0, 4, 'x', tcell.StyleDefault)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if b.Get(x, y) != ' ' {
				t.Fatalf("out-of-bounds write landed at (%d,%d)", x, y)
			}
		}
	}
	if b.Get(-1, 0) != ' ' || b.Get(9, 9) != ' ' {
		t.Error("out-of-bounds read should return space")
	}
}

func TestCellBuffer_TextClipsAtEdge(t *testing.T) {
	b := NewCellBuffer(5, 1)
	b.Text(3, 0, "abcdef", tcell.StyleDefault)

	if b.Get(3, 0) != 'a' || b.Get(4, 0) != 'b' {
		t.Error("text not placed before the edge")
	}
}

func TestCellBuffer_ClearResets(t *testing.T) {
	b := NewCellBuffer(8, 3)
	b.Text(0, 1, "hello", tcell.StyleDefault)

	b.Clear()
	if b.Get(0, 1) != ' ' {
		t.Error("clear left content behind")
	}
}

func TestCellBuffer_ResizeReusesCapacity(t *testing.T) {
	b := NewCellBuffer(20, 10)
	b.Text(0, 0, "stale", tcell.StyleDefault)

	b.Resize(5, 5)
	if b.Width() != 5 || b.Height() != 5 {
		t.Fatalf("size = %dx%d, want 5x5", b.Width(), b.Height())
	}
	if b.Get(0, 0) != ' ' {
		t.Error("resize should clear content")
	}

	b.Resize(30, 10)
	if b.Width() != 30 || b.Height() != 10 {
		t.Fatalf("grow size = %dx%d", b.Width(), b.Height())
	}
}
