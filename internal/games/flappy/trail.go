package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Particle is one dot of the flap trail.
type Particle struct {
	X, Y  float64
	Size  float64
	Speed float64
	Life  float64
}

// Alpha returns the particle opacity in [0, 1].
func (p Particle) Alpha(cfg config.TrailConfig) float64 {
	full := cfg.MinLife + cfg.LifeRange
	if full <= 0 {
		return 0
	}
	return core.ClampF(p.Life/full, 0, 1)
}

// Trail holds cosmetic particles emitted on every flap.
// It has its own RNG so it never perturbs obstacle generation.
type Trail struct {
	particles []Particle
	rng       *rand.Rand
	cfg       config.TrailConfig
}

// NewTrail creates an empty trail.
func NewTrail(seed int64, cfg config.TrailConfig) *Trail {
	return &Trail{
		rng: rand.New(rand.NewSource(seed)), //#nosec G404 -- cosmetic randomness
		cfg: cfg,
	}
}

// Emit adds a burst of particles at (x, y).
func (t *Trail) Emit(x, y float64) {
	if !t.cfg.Enabled {
		return
	}
	for i := 0; i < t.cfg.PerFlap; i++ {
		t.particles = append(t.particles, Particle{
			X:     x,
			Y:     y,
			Size:  t.cfg.MinSize + t.rng.Float64()*t.cfg.SizeRange,
			Speed: t.cfg.MinSpeed + t.rng.Float64()*t.cfg.SpeedRange,
			Life:  t.cfg.MinLife + t.rng.Float64()*t.cfg.LifeRange,
		})
	}
}

// Update drifts particles left and drops the expired ones.
func (t *Trail) Update() {
	alive := t.particles[:0]
	for _, p := range t.particles {
		p.X -= p.Speed
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	t.particles = alive
}

// Particles returns the live particles.
func (t *Trail) Particles() []Particle {
	return t.particles
}
