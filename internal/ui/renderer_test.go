package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/pong/internal/game"
)

// newSimRenderer returns a renderer on a 72x72 simulated terminal: one cell per 10 board pixels.
func newSimRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(72, 72)
	return NewRenderer(NewScreen(sim), colorful.Color{R: 1, G: 1, B: 1}), sim
}

func cellAt(sim tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := sim.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 || c.Runes[0] == 0 {
		return ' '
	}
	return c.Runes[0]
}

func TestRenderer_FillRectScales(t *testing.T) {
	r, sim := newSimRenderer(t)
	white := colorful.Color{R: 1, G: 1, B: 1}

	r.Clear()
	r.FillRect(game.NewLeftPaddle(), white)
	r.Present()

	// Board (32,270)-(48,450) covers cells x 3..4, y 27..44.
	if got := cellAt(sim, 3, 27); got != FillChar {
		t.Errorf("expected paddle cell at (3,27), got %q", got)
	}
	if got := cellAt(sim, 4, 44); got != FillChar {
		t.Errorf("expected paddle cell at (4,44), got %q", got)
	}
	if got := cellAt(sim, 2, 30); got == FillChar {
		t.Error("unexpected fill left of the paddle")
	}
	if got := cellAt(sim, 5, 30); got == FillChar {
		t.Error("unexpected fill right of the paddle")
	}
	if got := cellAt(sim, 3, 45); got == FillChar {
		t.Error("unexpected fill below the paddle")
	}
}

func TestRenderer_SmallRectTakesACell(t *testing.T) {
	r, sim := newSimRenderer(t)

	r.FillRect(game.NewRect(701, 701, 2, 2), colorful.Color{R: 1})
	r.Present()

	if got := cellAt(sim, 70, 70); got != FillChar {
		t.Errorf("expected a visible cell for a tiny rect, got %q", got)
	}
}

func TestRenderer_DrawTextRightAligned(t *testing.T) {
	r, sim := newSimRenderer(t)

	r.DrawText("0 : 0", 392, 64)
	r.Present()

	// Anchor (392, 64) maps to column 39, row 6; the text ends before column 39.
	want := "0 : 0"
	for i, ch := range want {
		if got := cellAt(sim, 34+i, 6); got != ch {
			t.Errorf("column %d: expected %q, got %q", 34+i, ch, got)
		}
	}
	if got := cellAt(sim, 39, 6); got != ' ' {
		t.Errorf("expected nothing at the anchor column, got %q", got)
	}
}

func TestRenderer_DrawTextClampsToLeftEdge(t *testing.T) {
	r, sim := newSimRenderer(t)

	r.DrawText("12 : 34", 0, 0)
	r.Present()

	if got := cellAt(sim, 0, 0); got != '1' {
		t.Errorf("expected text to start at column 0, got %q", got)
	}
}

func TestTcellColor(t *testing.T) {
	c := TcellColor(colorful.Color{R: 1, G: 0.5, B: 0})
	r, g, b := c.RGB()
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("expected (255, 128, 0), got (%d, %d, %d)", r, g, b)
	}
}

func TestScaleSpan(t *testing.T) {
	tests := []struct {
		from, to, cells, board int
		lo, hi                 int
	}{
		{0, 720, 72, 720, 0, 72},
		{355, 365, 72, 720, 35, 37},
		{-5, 5, 72, 720, -1, 1},
		{100, 100, 72, 720, 10, 11},
	}

	for _, tt := range tests {
		lo, hi := scaleSpan(tt.from, tt.to, tt.cells, tt.board)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("scaleSpan(%d, %d) = (%d, %d), want (%d, %d)", tt.from, tt.to, lo, hi, tt.lo, tt.hi)
		}
	}
}
