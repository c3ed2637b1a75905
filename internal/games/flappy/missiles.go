package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Projectile is a missile fired from the flyer's nose. It travels right at a
// fixed height until it strikes a pillar, then becomes a growing explosion.
type Projectile struct {
	X, Y      float64 // Left edge and vertical center
	Width     float64
	Height    float64
	Exploding bool
	Radius    float64 // Explosion radius, grows once Exploding
}

// newProjectile launches a missile from the given nose position.
func newProjectile(x, y float64, cfg config.FlappyMissiles) *Projectile {
	return &Projectile{
		X:      x,
		Y:      y,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}

// Tick moves the missile or grows its explosion.
// Returns false once the projectile should be removed.
func (p *Projectile) Tick(cfg config.FlappyMissiles, worldW float64) bool {
	if p.Exploding {
		p.Radius += cfg.ExplosionStep
		return p.Radius <= cfg.ExplosionMax
	}

	p.X += cfg.Speed
	return p.X <= worldW
}

// CheckHit tests the missile against one obstacle. The top pillar counts as
// hit above GapTop+topMargin and the bottom pillar below GapBottom+bottomMargin.
// On a hit the missile starts exploding and the obstacle flashes.
func (p *Projectile) CheckHit(o *Obstacle, topMargin, bottomMargin float64) bool {
	if p.Exploding {
		return false
	}

	band := core.Box{X: p.X, W: p.Width}
	if !band.OverlapsX(core.Box{X: o.X, W: o.Width}) {
		return false
	}

	if p.Y < o.GapTop+topMargin || p.Y > o.GapBottom+bottomMargin {
		p.Exploding = true
		o.MarkHit()
		return true
	}
	return false
}
