// Package platform declares the collaborators the game loop drives: a drawing
// surface, a keyboard, an audio device and a clock.
package platform

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/pong/internal/game"
)

// Key identifies a key the loop asks about.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEscape:
		return "escape"
	}
	return "unknown"
}

// Renderer draws onto a board-sized surface in board pixel coordinates.
type Renderer interface {
	Clear()
	FillRect(r game.Rect, c colorful.Color)
	// DrawText draws text right-aligned so that it ends at anchorX.
	DrawText(text string, anchorX, anchorY int)
	Present()
}

// InputSource reports the keyboard state for the current tick.
type InputSource interface {
	// PollQuit drains pending events and reports whether a quit was requested.
	PollQuit() bool
	IsKeyDown(k Key) bool
}

// Sound is a decoded sound effect ready for playback.
type Sound interface {
	Len() int
}

// AudioPlayer plays one-shot sound effects.
type AudioPlayer interface {
	LoadSound(path string) (Sound, error)
	Play(s Sound)
}

// Clock is a monotonic millisecond clock.
type Clock interface {
	NowMillis() int64
	SleepMillis(ms int64)
}
