package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestFillRectScales(t *testing.T) {
	c := NewScaledCanvas(80, 30, 800, 600) // 0.1 col and 0.1 sub-pixel per unit
	c.FillRect(100, 100, 80, 80, ColorMouse)

	if got := c.At(10, 10); got != ColorMouse {
		t.Fatalf("pixel (10,10) = %d, want mouse", got)
	}
	if got := c.At(17, 17); got != ColorMouse {
		t.Fatalf("pixel (17,17) = %d, want mouse", got)
	}
	if got := c.At(18, 10); got != ColorNone {
		t.Fatalf("pixel (18,10) = %d, want empty", got)
	}
}

func TestFillRectTinyStillVisible(t *testing.T) {
	c := NewScaledCanvas(10, 10, 1000, 1000)
	c.FillRect(500, 500, 1, 1, ColorCheese)
	if c.At(5, 10) != ColorCheese {
		t.Fatalf("tiny rectangle not drawn")
	}
}

func TestFillRectClipsOutside(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	c.FillRect(-50, -50, 200, 200, ColorCat) // must not panic
	if c.At(0, 0) != ColorCat || c.At(9, 9) != ColorCat {
		t.Fatalf("clipped rectangle did not cover canvas")
	}
}

func TestRenderHalfBlocks(t *testing.T) {
	c := NewScaledCanvas(2, 1, 2, 2)
	c.setPixel(0, 0, ColorCat)
	c.setPixel(1, 1, ColorCheese)

	var buf bytes.Buffer
	c.Render(&buf)
	out := buf.String()
	if !strings.Contains(out, "\033[1;1H\033[38;5;208m▀") {
		t.Fatalf("upper half missing in %q", out)
	}
	if !strings.Contains(out, "\033[1;2H\033[38;5;220m▄") {
		t.Fatalf("lower half missing in %q", out)
	}
}

func TestTerminalToLogicalCellCenter(t *testing.T) {
	c := NewScaledCanvas(100, 50, 800, 800) // 0.125 per unit on both axes
	x, y := c.TerminalToLogical(40, 15)
	if x != 324 || y != 248 {
		t.Fatalf("logical = (%f, %f), want (324, 248)", x, y)
	}
	x, y = c.TerminalToLogical(0, 0)
	if x != 4 || y != 8 {
		t.Fatalf("origin cell = (%f, %f), want (4, 8)", x, y)
	}
}

func TestChunkWriterFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out)
	cw.WriteCentered(20, 3, "SCORE")
	if out.Len() != 0 {
		t.Fatalf("wrote before flush")
	}
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "\033[3;8HSCORE" {
		t.Fatalf("got %q", got)
	}
}
