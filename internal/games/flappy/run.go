package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Phase is the state of the run state machine.
type Phase int

const (
	PhaseNotStarted Phase = iota // Before the first run; behaves like GameOver for input
	PhaseRunning                 // Simulation advances every tick
	PhaseGameOver                // Frozen until the next Start
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Run owns everything that lives for a single run. It is built fresh by
// newRun on every start; nothing in it survives into the next run.
type Run struct {
	cfg        *config.FlappyConfig
	difficulty *config.DifficultyController

	flyer       Flyer
	stream      *Stream
	projectiles []*Projectile
	trail       *Trail

	score    int
	ammo     int
	cooldown int
	params   config.Params
	tick     int
}

// newRun constructs a run at its starting state.
func newRun(seed int64, cfg *config.FlappyConfig, diff *config.DifficultyController) *Run {
	r := &Run{
		cfg:         cfg,
		difficulty:  diff,
		flyer:       newFlyer(cfg.Player.X, cfg.World.Height, cfg.Player.Width, cfg.Player.Height),
		stream:      NewStream(seed, cfg.World.Width, cfg.Obstacles),
		projectiles: make([]*Projectile, 0, 4),
		trail:       NewTrail(seed^0x5eed, cfg.Effects.Trail),
		params:      diff.Base(),
	}
	if cfg.Missiles.Enabled {
		r.ammo = cfg.Missiles.StartingAmmo
	}
	return r
}

// impulse flaps the flyer and feeds the trail.
func (r *Run) impulse() {
	r.flyer.ApplyImpulse(r.cfg.Physics.JumpImpulse)
	r.trail.Emit(r.flyer.X, r.flyer.Y+r.flyer.Height/2)
}

// canFire reports whether a missile may be launched right now.
func (r *Run) canFire() bool {
	return r.cfg.Missiles.Enabled && r.ammo > 0 && r.cooldown == 0
}

// fire launches a missile from the flyer's nose. Callers check canFire.
func (r *Run) fire() {
	f := r.flyer
	r.projectiles = append(r.projectiles, newProjectile(f.X+f.Width, f.Y+f.Height/2, r.cfg.Missiles))
	r.ammo--
	r.cooldown = r.cfg.Missiles.Cooldown
}

// step advances the run by one tick. It returns true if the flyer hit an
// obstacle; in that case nothing after the collision is applied.
func (r *Run) step() (collided bool) {
	r.tick++

	r.flyer.Tick(r.cfg.Physics.Gravity, r.cfg.MaxY(), r.cfg.Effects.WingFlapTicks)
	r.trail.Update()

	passed, collided := r.stream.Tick(r.flyer, r.params, r.cfg.Effects.HitDecayTicks)
	r.award(passed)
	if collided {
		return true
	}

	if r.cfg.Missiles.Enabled {
		r.updateProjectiles()
	}

	r.params = r.difficulty.Apply(r.score, r.params)

	if r.cooldown > 0 {
		r.cooldown--
	}
	return false
}

// award adds one point per passed obstacle, and a missile on every
// AwardEvery-th point.
func (r *Run) award(passed int) {
	for i := 0; i < passed; i++ {
		r.score++
		if r.cfg.Missiles.Enabled && r.score%r.cfg.Missiles.AwardEvery == 0 {
			r.ammo++
		}
	}
}

// updateProjectiles advances missiles and tests live ones against obstacles.
// A missile hits at most one obstacle per tick.
func (r *Run) updateProjectiles() {
	m := r.cfg.Missiles
	alive := r.projectiles[:0]
	for _, p := range r.projectiles {
		if !p.Tick(m, r.cfg.World.Width) {
			continue
		}
		for _, o := range r.stream.Obstacles() {
			if p.CheckHit(o, m.TopHitMargin, m.BottomHitMargin) {
				break
			}
		}
		alive = append(alive, p)
	}
	for i := len(alive); i < len(r.projectiles); i++ {
		r.projectiles[i] = nil
	}
	r.projectiles = alive
}
