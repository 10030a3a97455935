package game

// Events reports what happened during a tick.
type Events struct {
	Scored     Side // Side that won the point, SideNone if nobody scored
	PaddleHit  Side // Paddle the ball bounced off
	WallBounce bool
}

// Step advances the match by one tick.
//
// The order is fixed: paddle collisions, right paddle tracking, scoring,
// paddle clamping, ball integration, wall bounce. The wall bounce only
// inverts the vertical velocity; the ball may sit past a wall for one tick.
func Step(m *MatchState) Events {
	var ev Events
	ball := m.Ball.Rect()

	if ball.Intersects(m.Right) {
		m.Ball.BounceOffPaddle(m.Right, false)
		ev.PaddleHit = SideRight
	}
	if ball.Intersects(m.Left) {
		m.Ball.BounceOffPaddle(m.Left, true)
		ev.PaddleHit = SideLeft
	}

	TrackBall(&m.Right, m.Ball.CenterY())

	if m.Ball.X <= 0 {
		ev.Scored = SideRight
	} else if m.Ball.X+BallSize >= BoardWidth {
		ev.Scored = SideLeft
	}
	m.award(ev.Scored)

	ClampPaddle(&m.Right)
	ClampPaddle(&m.Left)

	m.Ball.Move()

	if m.Ball.Y <= 0 || m.Ball.Y+BallSize >= BoardHeight {
		m.Ball.BounceVertical()
		ev.WallBounce = true
	}

	return ev
}
