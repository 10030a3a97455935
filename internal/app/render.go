package app

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/platform"
)

const (
	TargetFPS     = 60
	FrameInterval = 1000 / TargetFPS // Milliseconds, truncated like the original throttle
	FontSize      = 32
)

// Scoreboard anchor: the score text ends just right of the board's center line.
const (
	scoreAnchorX = game.BoardWidth/2 + FontSize
	scoreAnchorY = FontSize * 2
	fpsAnchorX   = game.BoardWidth - FontSize/2
	fpsAnchorY   = FontSize / 2
)

// RenderStep draws one frame of the match.
type RenderStep struct {
	Color   colorful.Color
	ShowFPS bool
}

// Draw clears the surface, waits out the rest of the frame interval, draws
// the paddles, ball and score, and presents the frame.
func (rs RenderStep) Draw(r platform.Renderer, c platform.Clock, m *game.MatchState, frameStart int64, fps int) {
	r.Clear()
	Pace(c, frameStart)

	r.FillRect(m.Left, rs.Color)
	r.FillRect(m.Right, rs.Color)
	r.FillRect(m.Ball.Rect(), rs.Color)

	r.DrawText(m.ScoreText(), scoreAnchorX, scoreAnchorY)
	if rs.ShowFPS {
		r.DrawText(fmt.Sprintf("%d fps", fps), fpsAnchorX, fpsAnchorY)
	}

	r.Present()
}

// Pace sleeps for whatever is left of the frame that started at frameStart.
// Late frames are not compensated.
func Pace(c platform.Clock, frameStart int64) {
	elapsed := c.NowMillis() - frameStart
	if elapsed < FrameInterval {
		c.SleepMillis(FrameInterval - elapsed)
	}
}
