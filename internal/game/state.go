package game

import (
	"fmt"
)

// Board dimensions in pixels.
const (
	BoardWidth  = 720
	BoardHeight = 720
)

// Side identifies one half of the board.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "none"
}

// MatchState is the complete simulation state of a match.
type MatchState struct {
	Left       Rect
	Right      Rect
	Ball       Ball
	LeftScore  int
	RightScore int
	// ServeTurn selects the serving side for the next Serve: true serves from the left.
	ServeTurn bool
}

// NewMatch creates a match with both scores at zero and the ball already served.
func NewMatch() *MatchState {
	m := &MatchState{
		Left:  NewLeftPaddle(),
		Right: NewRightPaddle(),
	}
	m.Serve()
	return m
}

// Serve re-centers the paddles and launches the ball at half speed from the
// serving paddle toward the receiving one, then hands the serve to the other side.
func (m *MatchState) Serve() {
	m.Left.Y = paddleRestY()
	m.Right.Y = paddleRestY()

	if m.ServeTurn {
		m.Ball.X = float64(m.Left.X + m.Left.W*4)
		m.Ball.VX = BallSpeed / 2
	} else {
		m.Ball.X = float64(m.Right.X - m.Left.W*4)
		m.Ball.VX = -BallSpeed / 2
	}
	m.Ball.VY = 0
	m.Ball.Y = float64(BoardHeight/2 - BallSize/2)
	m.ServeTurn = !m.ServeTurn
}

// ScoreText renders the score as shown on the scoreboard.
func (m *MatchState) ScoreText() string {
	return fmt.Sprintf("%d : %d", m.LeftScore, m.RightScore)
}

// award credits a point to side and serves again.
func (m *MatchState) award(side Side) {
	switch side {
	case SideLeft:
		m.LeftScore++
	case SideRight:
		m.RightScore++
	default:
		return
	}
	m.Serve()
}
