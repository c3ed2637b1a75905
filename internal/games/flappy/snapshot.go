package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// FlyerView is the flyer's state as seen by a renderer.
type FlyerView struct {
	X, Y     float64
	Width    float64
	Height   float64
	Velocity float64
	WingUp   bool
}

// ObstacleView is one pipe pair as seen by a renderer.
type ObstacleView struct {
	X         float64
	Width     float64
	GapTop    float64
	GapBottom float64
	Passed    bool
	Hit       bool
}

// ProjectileView is one missile or explosion.
type ProjectileView struct {
	X, Y      float64
	Width     float64
	Height    float64
	Exploding bool
	Radius    float64
}

// WorldView carries the fixed world dimensions.
type WorldView struct {
	Width        float64
	Height       float64
	GroundHeight float64
}

// Snapshot captures the complete observable game state for rendering and
// determinism testing. It holds copies only.
type Snapshot struct {
	Tick      int
	Phase     Phase
	Paused    bool
	Score     int
	Ammo      int
	Cooldown  int
	CanFire   bool
	Missiles  bool // Whether the missile mechanic is enabled
	Scaling   bool // Whether difficulty scaling is enabled
	PipeSpeed float64
	PipeGap   float64

	World       WorldView
	Flyer       FlyerView
	Obstacles   []ObstacleView
	Projectiles []ProjectileView
	Particles   []Particle
	Trail       config.TrailConfig
}

// Snapshot returns a copy of the current state. Before the first Reset
// there is no run, and only Phase and Paused are set.
func (g *Game) Snapshot() Snapshot {
	if g.run == nil {
		return Snapshot{Phase: g.phase, Paused: g.paused}
	}
	r := g.run
	f := r.flyer

	snap := Snapshot{
		Tick:      r.tick,
		Phase:     g.phase,
		Paused:    g.paused,
		Score:     r.score,
		Ammo:      r.ammo,
		Cooldown:  r.cooldown,
		CanFire:   g.CanFire(),
		Missiles:  g.cfg.Missiles.Enabled,
		Scaling:   g.difficulty.IsEnabled(),
		PipeSpeed: r.params.Speed,
		PipeGap:   r.params.Gap,
		World: WorldView{
			Width:        g.cfg.World.Width,
			Height:       g.cfg.World.Height,
			GroundHeight: g.cfg.World.GroundHeight,
		},
		Flyer: FlyerView{
			X:        f.X,
			Y:        f.Y,
			Width:    f.Width,
			Height:   f.Height,
			Velocity: f.Velocity,
			WingUp:   f.wingUp,
		},
		Obstacles:   make([]ObstacleView, 0, len(r.stream.Obstacles())),
		Projectiles: make([]ProjectileView, 0, len(r.projectiles)),
		Particles:   append([]Particle(nil), r.trail.Particles()...),
		Trail:       g.cfg.Effects.Trail,
	}

	for _, o := range r.stream.Obstacles() {
		snap.Obstacles = append(snap.Obstacles, ObstacleView{
			X:         o.X,
			Width:     o.Width,
			GapTop:    o.GapTop,
			GapBottom: o.GapBottom,
			Passed:    o.Passed,
			Hit:       o.Hit,
		})
	}
	for _, p := range r.projectiles {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			X:         p.X,
			Y:         p.Y,
			Width:     p.Width,
			Height:    p.Height,
			Exploding: p.Exploding,
			Radius:    p.Radius,
		})
	}

	return snap
}

func hashBool(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ammo)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Cooldown) //#nosec G115 -- hash computation
	h = h*31 + hashBool(snap.Paused)
	h = h*31 + math.Float64bits(snap.PipeSpeed)
	h = h*31 + math.Float64bits(snap.PipeGap)
	h = h*31 + math.Float64bits(snap.Flyer.Y)
	h = h*31 + math.Float64bits(snap.Flyer.Velocity)

	for _, o := range snap.Obstacles {
		h = h*31 + math.Float64bits(o.X)
		h = h*31 + math.Float64bits(o.GapTop)
		h = h*31 + math.Float64bits(o.GapBottom)
		h = h*31 + hashBool(o.Passed)
		h = h*31 + hashBool(o.Hit)
	}

	for _, p := range snap.Projectiles {
		h = h*31 + math.Float64bits(p.X)
		h = h*31 + math.Float64bits(p.Y)
		h = h*31 + math.Float64bits(p.Radius)
	}

	for _, p := range snap.Particles {
		h = h*31 + math.Float64bits(p.X)
		h = h*31 + math.Float64bits(p.Life)
	}

	return h
}
