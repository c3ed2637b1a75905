package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a pipe pair: a top pillar above GapTop and a bottom pillar
// below GapBottom. The gap is captured at spawn and never changes.
type Obstacle struct {
	X         float64 // Left edge
	Width     float64
	GapTop    float64 // Bottom edge of the top pillar
	GapBottom float64 // Top edge of the bottom pillar
	Passed    bool    // Whether the flyer has cleared this pipe (for scoring)
	Hit       bool    // Cosmetic damage flash after a missile hit

	hitTimer int
}

// Gap returns the vertical opening of the obstacle.
func (o Obstacle) Gap() float64 {
	return o.GapBottom - o.GapTop
}

// Tick moves the obstacle left and decays the damage flash.
// The flag clears on the first tick its timer exceeds hitDecay.
func (o *Obstacle) Tick(speed float64, hitDecay int) {
	o.X -= speed

	if o.Hit {
		o.hitTimer++
		if o.hitTimer > hitDecay {
			o.Hit = false
			o.hitTimer = 0
		}
	}
}

// MarkHit starts a fresh damage flash.
func (o *Obstacle) MarkHit() {
	o.Hit = true
	o.hitTimer = 0
}

// Pillars returns the collision boxes of the top and bottom pillars.
// The bottom pillar reaches indefinitely downward.
func (o Obstacle) Pillars() (top, bottom core.Box) {
	top = core.Box{X: o.X, Y: 0, W: o.Width, H: o.GapTop}
	bottom = core.Box{X: o.X, Y: o.GapBottom, W: o.Width, H: math.MaxFloat64}
	return top, bottom
}

// CollidesWith reports whether the flyer overlaps either pillar.
// Touching an edge is not a collision.
func (o Obstacle) CollidesWith(f Flyer) bool {
	fb := f.Box()
	top, bottom := o.Pillars()
	return fb.Intersects(top) || fb.Intersects(bottom)
}

// Stream spawns, moves and removes obstacles.
// Obstacles are kept in spawn order, so index 0 is the leading (leftmost) one.
type Stream struct {
	obstacles []*Obstacle
	rng       *rand.Rand
	worldW    float64
	cfg       config.FlappyObstacles
}

// NewStream creates an empty stream with its own RNG.
func NewStream(seed int64, worldW float64, cfg config.FlappyObstacles) *Stream {
	return &Stream{
		obstacles: make([]*Obstacle, 0, 8),
		rng:       rand.New(rand.NewSource(seed)), //#nosec G404 -- gameplay randomness, not security
		worldW:    worldW,
		cfg:       cfg,
	}
}

// Obstacles returns the live obstacles, leading first.
func (s *Stream) Obstacles() []*Obstacle {
	return s.obstacles
}

// MaybeSpawn adds an obstacle at the right edge when the stream is empty or
// the most recent one has scrolled past the gap-aware spawn threshold.
// Returns true if an obstacle was spawned.
func (s *Stream) MaybeSpawn(gap float64) bool {
	if n := len(s.obstacles); n > 0 {
		last := s.obstacles[n-1]
		if last.X >= s.worldW-(gap+s.cfg.SpawnMargin) {
			return false
		}
	}

	top := float64(s.cfg.MinTopHeight + s.rng.Intn(s.cfg.TopHeightRange))
	s.obstacles = append(s.obstacles, &Obstacle{
		X:         s.worldW,
		Width:     s.cfg.Width,
		GapTop:    top,
		GapBottom: top + gap,
	})
	return true
}

// Tick spawns, advances every obstacle, then checks collision and pass-through
// in leading-to-trailing order. A collision stops processing immediately.
// Returns the number of obstacles passed this tick and whether the flyer collided.
func (s *Stream) Tick(f Flyer, p config.Params, hitDecay int) (passed int, collided bool) {
	s.MaybeSpawn(p.Gap)

	for _, o := range s.obstacles {
		o.Tick(p.Speed, hitDecay)

		if o.CollidesWith(f) {
			return passed, true
		}

		if !o.Passed && o.X+o.Width < f.X {
			o.Passed = true
			passed++
		}
	}

	// Remove obstacles that have moved off the left side
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.X+o.Width >= 0 {
			kept = append(kept, o)
		}
	}
	for i := len(kept); i < len(s.obstacles); i++ {
		s.obstacles[i] = nil
	}
	s.obstacles = kept

	return passed, false
}
