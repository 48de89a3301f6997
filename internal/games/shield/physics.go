package shield

import (
	"github.com/vovakirdan/bounce-shield/internal/core"
)

// Ball is the bouncing square. Velocity is in world units per frame.
type Ball struct {
	X, Y            float64
	DX, DY          float64
	Size            float64
	SpeedMultiplier float64
}

// Rect returns the ball's bounding box.
func (b *Ball) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Size, b.Size)
}

// Move advances the ball by one frame of velocity.
func (b *Ball) Move() {
	b.X += b.DX * b.SpeedMultiplier
	b.Y += b.DY * b.SpeedMultiplier
}

// Paddle is the player-controlled bar resting on the bottom edge.
type Paddle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Speed  float64 // World units per frame
}

// Rect returns the paddle's bounding box.
func (p *Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// WallHit describes which walls a ball bounced off in one step.
type WallHit uint8

const (
	WallLeft WallHit = 1 << iota
	WallRight
	WallTop
)

// ResolveWalls reflects the ball off the left, right and top edges of the
// viewport. A component flips only while the ball moves into the wall, and
// the ball is pushed back inside so it cannot stick.
func ResolveWalls(b *Ball, vp core.Viewport) WallHit {
	var hit WallHit

	if b.X <= 0 && b.DX < 0 {
		b.DX = -b.DX
		b.X = 0
		hit |= WallLeft
	} else if b.X+b.Size >= vp.W && b.DX > 0 {
		b.DX = -b.DX
		b.X = core.ClampF(vp.W-b.Size, 0, vp.W)
		hit |= WallRight
	}

	if b.Y <= 0 && b.DY < 0 {
		b.DY = -b.DY
		b.Y = 0
		hit |= WallTop
	}

	return hit
}

// PaddleContact reports whether the ball is landing on the paddle: its
// bottom edge has reached the paddle's top edge, its top edge is not below
// the paddle, the spans overlap horizontally and it is moving down.
func PaddleContact(b *Ball, p *Paddle) bool {
	if b.DY <= 0 {
		return false
	}
	ball := b.Rect()
	paddle := p.Rect()
	return ball.Bottom() >= paddle.Y &&
		ball.Y <= paddle.Bottom() &&
		ball.OverlapsX(paddle)
}

// BounceOffPaddle sends the ball back up and rests it on the paddle.
func BounceOffPaddle(b *Ball, p *Paddle) {
	if b.DY > 0 {
		b.DY = -b.DY
	}
	b.Y = p.Y - b.Size
}

// FellOff reports whether the ball's bottom edge has passed the bottom of
// the viewport.
func FellOff(b *Ball, vp core.Viewport) bool {
	return b.Rect().Bottom() > vp.H
}

// MovePaddle applies held movement and keeps the paddle inside the viewport.
func MovePaddle(p *Paddle, left, right bool, vp core.Viewport) {
	if left {
		p.X -= p.Speed
	}
	if right {
		p.X += p.Speed
	}
	ClampPaddle(p, vp)
}

// ClampPaddle enforces 0 <= X <= viewport width - paddle width and rests
// the paddle on the bottom edge.
func ClampPaddle(p *Paddle, vp core.Viewport) {
	p.X = core.ClampF(p.X, 0, vp.W-p.Width)
	p.Y = vp.H - p.Height
}

// ClampBall keeps the whole ball inside the viewport.
func ClampBall(b *Ball, vp core.Viewport) {
	b.X = core.ClampF(b.X, 0, vp.W-b.Size)
	b.Y = core.ClampF(b.Y, 0, vp.H-b.Size)
}
