package game

// Controls is the input sampled for one tick.
type Controls struct {
	Quit   bool
	Escape bool
	Up     bool
	Down   bool
}

// HandleInput applies the player's controls to the left paddle and reports
// whether the match should keep running. Up and Down together cancel out.
//
// The paddle is clamped here as well as in Step so it never renders out of bounds.
func HandleInput(m *MatchState, c Controls) bool {
	if c.Up {
		MovePaddle(&m.Left, -PaddleSpeed)
	}
	if c.Down {
		MovePaddle(&m.Left, PaddleSpeed)
	}
	ClampPaddle(&m.Left)

	return !(c.Quit || c.Escape)
}
