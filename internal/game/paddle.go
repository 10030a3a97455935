package game

// Paddle geometry. Paddles sit PaddleInset pixels from the side walls.
const (
	PaddleWidth  = 16
	PaddleHeight = BoardHeight / 4
	PaddleInset  = 32
	PaddleSpeed  = 10 // Pixels per tick for both the player and the tracker
)

// NewLeftPaddle returns the left paddle, vertically centered.
func NewLeftPaddle() Rect {
	return NewRect(PaddleInset, paddleRestY(), PaddleWidth, PaddleHeight)
}

// NewRightPaddle returns the right paddle, vertically centered.
func NewRightPaddle() Rect {
	return NewRect(BoardWidth-PaddleWidth-PaddleInset, paddleRestY(), PaddleWidth, PaddleHeight)
}

func paddleRestY() int {
	return BoardHeight/2 - PaddleHeight/2
}

// ClampPaddle keeps a paddle inside the board vertically.
func ClampPaddle(p *Rect) {
	p.Y = clamp(p.Y, 0, BoardHeight-p.H)
}

// MovePaddle shifts a paddle by dy pixels without clamping.
func MovePaddle(p *Rect, dy int) {
	p.Y += dy
}

// TrackBall moves the paddle one step toward the ball's vertical center.
// The step is fixed, so the paddle may overshoot and oscillate around the ball.
func TrackBall(p *Rect, ballCenterY float64) {
	center := float64(p.CenterY())
	switch {
	case ballCenterY > center:
		p.Y += PaddleSpeed
	case ballCenterY < center:
		p.Y -= PaddleSpeed
	}
}
