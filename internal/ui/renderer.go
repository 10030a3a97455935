package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"

	"github.com/diegok/pong/internal/game"
)

const FillChar = '\u2588' // █

// Renderer draws the board onto the terminal, scaling board pixels to cells.
type Renderer struct {
	screen     *Screen
	text       tcell.Style
	background tcell.Color
}

// NewRenderer creates a new renderer with the given screen. Text is drawn in textColor.
func NewRenderer(screen *Screen, textColor colorful.Color) *Renderer {
	return &Renderer{
		screen:     screen,
		text:       tcell.StyleDefault.Foreground(TcellColor(textColor)).Background(tcell.ColorBlack).Bold(true),
		background: tcell.ColorBlack,
	}
}

func (r *Renderer) Clear() {
	r.screen.Clear()
}

// FillRect fills every cell the rectangle touches. Anything visible takes at least one cell.
func (r *Renderer) FillRect(rect game.Rect, c colorful.Color) {
	screenW, screenH := r.screen.Size()
	x0, x1 := scaleSpan(rect.X, rect.Right(), screenW, game.BoardWidth)
	y0, y1 := scaleSpan(rect.Y, rect.Bottom(), screenH, game.BoardHeight)

	style := tcell.StyleDefault.Foreground(TcellColor(c)).Background(r.background)
	r.screen.FillRect(x0, y0, x1-x0, y1-y0, style, FillChar)
}

// DrawText draws text so that its last cell ends at the scaled anchor column.
func (r *Renderer) DrawText(text string, anchorX, anchorY int) {
	screenW, screenH := r.screen.Size()
	col := scaleFloor(anchorX, screenW, game.BoardWidth) - uniseg.StringWidth(text)
	if col < 0 {
		col = 0
	}
	row := scaleFloor(anchorY, screenH, game.BoardHeight)

	r.screen.DrawText(col, row, text, r.text)
}

func (r *Renderer) Present() {
	r.screen.Show()
}

// TcellColor converts a color to a 24-bit tcell color.
func TcellColor(c colorful.Color) tcell.Color {
	red, green, blue := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(red), int32(green), int32(blue))
}

func scaleFloor(v, cells, board int) int {
	return int(math.Floor(float64(v) * float64(cells) / float64(board)))
}

// scaleSpan maps the board span [from, to) to a cell span of at least one cell.
func scaleSpan(from, to, cells, board int) (int, int) {
	lo := scaleFloor(from, cells, board)
	hi := int(math.Ceil(float64(to) * float64(cells) / float64(board)))
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}
