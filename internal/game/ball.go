package game

import (
	"math"
)

const (
	BallSize       = 10
	BallSpeed      = 10.0             // Nominal speed restored after every paddle hit
	MaxBounceAngle = 5 * math.Pi / 12 // 75 degrees
	bounceZone     = PaddleHeight / 12
)

// Ball holds the real-valued ball position (top-left corner) and velocity in pixels per tick.
type Ball struct {
	X, Y   float64
	VX, VY float64
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceVertical reverses vertical direction (wall bounce)
func (b *Ball) BounceVertical() {
	b.VY = -b.VY
}

// CenterY returns the vertical center of the ball.
func (b *Ball) CenterY() float64 {
	return b.Y + BallSize/2
}

// Rect returns the ball's bounding box rounded to whole pixels.
func (b *Ball) Rect() Rect {
	return Rect{
		X: int(math.Round(b.X)),
		Y: int(math.Round(b.Y)),
		W: BallSize,
		H: BallSize,
	}
}

// Speed returns current speed
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// BounceAngle maps the ball's offset from the paddle center to a deflection angle.
// A ball above the center yields a positive angle. The offset is normalized by
// a twelfth of the paddle height and saturates at ±MaxBounceAngle.
func BounceAngle(paddle Rect, b *Ball) float64 {
	rel := float64(paddle.CenterY()) - b.CenterY()
	norm := rel / float64(bounceZone)
	if norm > 1 {
		norm = 1
	}
	if norm < -1 {
		norm = -1
	}
	return norm * MaxBounceAngle
}

// BounceOffPaddle sends the ball away from the paddle at nominal speed.
// toRight selects the outgoing horizontal direction.
func (b *Ball) BounceOffPaddle(paddle Rect, toRight bool) {
	angle := BounceAngle(paddle, b)
	b.VX = BallSpeed * math.Cos(angle)
	if !toRight {
		b.VX = -b.VX
	}
	b.VY = -BallSpeed * math.Sin(angle)
}
