package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Flyer is the player-controlled actor. Its column is fixed; only Y moves.
type Flyer struct {
	X, Y     float64 // Top-left of the hitbox
	Velocity float64 // Vertical velocity, positive = down
	Width    float64
	Height   float64

	wingUp      bool
	wingCounter int
}

// newFlyer places a flyer at mid-screen with no velocity.
func newFlyer(x, worldH, w, h float64) Flyer {
	return Flyer{
		X:      x,
		Y:      worldH / 2,
		Width:  w,
		Height: h,
		wingUp: true,
	}
}

// ApplyImpulse sets an upward velocity, regardless of the current one.
func (f *Flyer) ApplyImpulse(impulse float64) {
	f.Velocity = impulse
}

// Tick integrates gravity and clamps the flyer into [0, maxY].
// Either clamp zeroes the velocity. flapEvery drives the wing animation.
func (f *Flyer) Tick(gravity, maxY float64, flapEvery int) {
	f.Velocity += gravity
	f.Y += f.Velocity

	if f.Y < 0 {
		f.Y = 0
		f.Velocity = 0
	}
	if f.Y > maxY {
		f.Y = maxY
		f.Velocity = 0
	}

	f.wingCounter++
	if flapEvery > 0 && f.wingCounter%flapEvery == 0 {
		f.wingUp = !f.wingUp
	}
}

// Box returns the flyer's collision box.
func (f Flyer) Box() core.Box {
	return core.Box{X: f.X, Y: f.Y, W: f.Width, H: f.Height}
}

// WingUp reports the current wing animation frame.
func (f Flyer) WingUp() bool {
	return f.wingUp
}
