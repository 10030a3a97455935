package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rivo/uniseg"
)

// Screen is a thin wrapper over a tcell screen.
type Screen struct {
	screen tcell.Screen
}

func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// InitScreen opens the terminal screen.
func InitScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create screen")
	}
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return NewScreen(s), nil
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

func (s *Screen) Show() {
	s.screen.Show()
}

func (s *Screen) Sync() {
	s.screen.Sync()
}

func (s *Screen) Fini() {
	s.screen.Fini()
}

func (s *Screen) SetCell(x, y int, style tcell.Style, r rune) {
	s.screen.SetContent(x, y, r, nil, style)
}

// DrawText draws text starting at (x, y) and returns the number of cells used.
// Wide graphemes take two cells.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) int {
	start := x
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		s.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += g.Width()
	}
	return x - start
}

func (s *Screen) FillRect(x, y, w, h int, style tcell.Style, r rune) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.screen.SetContent(x+dx, y+dy, r, nil, style)
		}
	}
}

func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}
