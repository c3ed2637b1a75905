// Package config provides YAML-based game configuration loading and the
// score-driven difficulty controller.
package config

// FlappyConfig contains all tunables for the flappy simulation.
// Distances are world units (the default world is 400x600), times are ticks.
type FlappyConfig struct {
	World      FlappyWorld      `yaml:"world"`
	Physics    FlappyPhysics    `yaml:"physics"`
	Player     FlappyPlayer     `yaml:"player"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Missiles   FlappyMissiles   `yaml:"missiles"`
	Effects    FlappyEffects    `yaml:"effects"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyWorld defines the playfield dimensions.
type FlappyWorld struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// FlappyPhysics defines flyer physics.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = up
}

// FlappyPlayer defines the flyer's fixed column and hitbox.
type FlappyPlayer struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyObstacles defines pipe geometry and spawn cadence.
type FlappyObstacles struct {
	Width          float64 `yaml:"width"`
	SpawnMargin    float64 `yaml:"spawn_margin"`     // Added to the current gap to get spawn spacing
	MinTopHeight   int     `yaml:"min_top_height"`   // Smallest top pillar
	TopHeightRange int     `yaml:"top_height_range"` // Top pillar is min + [0, range)
}

// FlappyMissiles defines the limited-ammo projectile mechanic.
type FlappyMissiles struct {
	Enabled         bool    `yaml:"enabled"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	ExplosionStep   float64 `yaml:"explosion_step"`
	ExplosionMax    float64 `yaml:"explosion_max"`
	Cooldown        int     `yaml:"cooldown"`
	AwardEvery      int     `yaml:"award_every"` // One missile per this many points
	StartingAmmo    int     `yaml:"starting_ammo"`
	TopHitMargin    float64 `yaml:"top_hit_margin"`
	BottomHitMargin float64 `yaml:"bottom_hit_margin"`
}

// FlappyEffects defines cosmetic timers and the flap trail.
type FlappyEffects struct {
	HitDecayTicks int         `yaml:"hit_decay_ticks"`
	WingFlapTicks int         `yaml:"wing_flap_ticks"`
	Trail         TrailConfig `yaml:"trail"`
}

// TrailConfig defines the particles emitted on every flap.
type TrailConfig struct {
	Enabled    bool    `yaml:"enabled"`
	PerFlap    int     `yaml:"per_flap"`
	MinSize    float64 `yaml:"min_size"`
	SizeRange  float64 `yaml:"size_range"`
	MinSpeed   float64 `yaml:"min_speed"`
	SpeedRange float64 `yaml:"speed_range"`
	MinLife    float64 `yaml:"min_life"`
	LifeRange  float64 `yaml:"life_range"`
}

// DifficultyConfig defines the score-driven speed and gap progression.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`
	StepEvery     int     `yaml:"step_every"` // Re-evaluate when score is a multiple of this
	BaseSpeed     float64 `yaml:"base_speed"`
	SpeedCap      float64 `yaml:"speed_cap"`
	SpeedPerPoint float64 `yaml:"speed_per_point"`
	BaseGap       float64 `yaml:"base_gap"`
	GapFloor      float64 `yaml:"gap_floor"`
	GapPerPoint   float64 `yaml:"gap_per_point"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// MaxY returns the lowest allowed top edge for a flyer of the configured height.
func (c FlappyConfig) MaxY() float64 {
	return c.World.Height - c.World.GroundHeight - c.Player.Height
}
