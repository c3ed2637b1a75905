// Package flappy implements a side-scrolling flyer game with an optional
// limited-ammo missile mechanic. The player flaps through a stream of pipes;
// missiles earned by scoring can be fired to blast the pipes.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Variant selects which mechanics are layered over the base game.
type Variant int

const (
	VariantExtended Variant = iota // Missiles, difficulty scaling, flap trail
	VariantClassic                 // Plain pipes at constant speed and gap
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig resolves the configuration a new game of the given variant would use.
func LoadConfig(v Variant) (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(configPath)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	if difficultyPreset != "" {
		config.ApplyFlappyPreset(&cfg, difficultyPreset)
	}
	if v == VariantClassic {
		config.ClassicVariant(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return config.FlappyConfig{}, fmt.Errorf("config: after preset %q: %w", difficultyPreset, err)
	}
	return cfg, nil
}

// Game is the run state machine. It is the only authority on whether the
// simulation may advance. Not safe for concurrent use: exactly one caller
// drives it, one tick at a time.
type Game struct {
	variant    Variant
	runtime    core.RuntimeConfig
	cfg        config.FlappyConfig
	pinned     bool // cfg was supplied by the caller, skip loading
	difficulty *config.DifficultyController

	phase  Phase
	paused bool
	run    *Run
	runs   int // Runs started since Reset; seeds the next run
}

// New creates a new game instance with the missile mechanic.
func New() *Game {
	return &Game{variant: VariantExtended}
}

// NewClassic creates a new game instance without the extended mechanics.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

// NewWithConfig creates a game that uses cfg instead of loading one.
func NewWithConfig(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg, pinned: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return "flappy_classic"
	}
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Flappy (Classic)"
	}
	return "Flappy Missile"
}

// Config returns the active configuration.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Reset loads configuration and returns to NotStarted with an idle run on
// display. The first Start after Reset uses runtime.Seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.pinned {
		cfg, err := LoadConfig(g.variant)
		if err != nil {
			cfg = config.DefaultFlappyConfig()
			if g.variant == VariantClassic {
				config.ClassicVariant(&cfg)
			}
		}
		g.cfg = cfg
	}

	g.difficulty = config.NewDifficultyController(g.cfg.Difficulty)
	g.phase = PhaseNotStarted
	g.paused = false
	g.runs = 0
	g.run = newRun(runtime.Seed, &g.cfg, g.difficulty)
}

// Start discards the current run and begins a fresh one.
func (g *Game) Start() {
	if g.difficulty == nil {
		g.Reset(g.runtime)
	}
	g.run = newRun(g.runtime.Seed+int64(g.runs), &g.cfg, g.difficulty)
	g.runs++
	g.phase = PhaseRunning
	g.paused = false
}

// Phase returns the current state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// active reports whether the simulation may advance or accept gameplay input.
func (g *Game) active() bool {
	return g.phase == PhaseRunning && !g.paused
}

// Advance runs up to ticks fixed simulation steps and returns how many ran.
// It is a no-op unless a run is active, and stops at the collision that ends it.
func (g *Game) Advance(ticks int) int {
	n := 0
	for ; n < ticks && g.active(); n++ {
		if g.run.step() {
			g.phase = PhaseGameOver
			n++
			break
		}
	}
	return n
}

// ApplyImpulse flaps the flyer. Ignored unless a run is active.
func (g *Game) ApplyImpulse() {
	if !g.active() {
		return
	}
	g.run.impulse()
}

// CanFire reports whether FireProjectile would launch a missile.
func (g *Game) CanFire() bool {
	return g.active() && g.run.canFire()
}

// FireProjectile launches a missile if one is available.
// Returns false, and changes nothing, when the preconditions do not hold.
func (g *Game) FireProjectile() bool {
	if !g.CanFire() {
		return false
	}
	g.run.fire()
	return true
}

// Tap is the pointer action: fire when a missile is ready, otherwise flap.
// Outside a run it starts one.
func (g *Game) Tap() {
	switch {
	case g.phase != PhaseRunning:
		g.Start()
	case g.FireProjectile():
	default:
		g.ApplyImpulse()
	}
}

// TogglePause pauses or resumes an active run.
func (g *Game) TogglePause() {
	if g.phase == PhaseRunning {
		g.paused = !g.paused
	}
}

// Step routes one frame of input and advances the simulation by one tick.
// While no run is active, Jump (or Restart) starts a run instead of flapping.
// A tick that starts a run does not advance it.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}

	if g.phase != PhaseRunning {
		if in.Has(core.ActionJump) || in.Has(core.ActionRestart) || in.Has(core.ActionTap) {
			g.Start()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.Start()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionJump) {
		g.ApplyImpulse()
	}
	if in.Has(core.ActionFire) {
		g.FireProjectile()
	}
	if in.Has(core.ActionTap) {
		g.Tap()
	}

	n := g.Advance(1)
	return core.StepResult{State: g.State(), Ticks: n}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.run != nil {
		score = g.run.score
	}
	return core.GameState{
		Score:    score,
		GameOver: g.phase == PhaseGameOver,
		Running:  g.phase == PhaseRunning,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("flappy", "Pipes, gravity and missiles earned every third point", func() registry.Game {
		return New()
	})
	registry.Register("flappy_classic", "Pipes and gravity, constant speed", func() registry.Game {
		return NewClassic()
	})
}
