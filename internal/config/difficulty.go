package config

// Params are the obstacle parameters the difficulty controller produces.
type Params struct {
	Speed float64 // Leftward obstacle movement per tick
	Gap   float64 // Vertical gap given to newly spawned obstacles
}

// DifficultyController maps cumulative score to obstacle speed and gap.
// Speed never decreases and gap never grows over a run; both stay within
// [BaseSpeed, SpeedCap] and [GapFloor, BaseGap].
type DifficultyController struct {
	cfg DifficultyConfig
}

// NewDifficultyController creates a controller for the given settings.
func NewDifficultyController(cfg DifficultyConfig) *DifficultyController {
	return &DifficultyController{cfg: cfg}
}

// IsEnabled returns whether scaling is active.
func (d *DifficultyController) IsEnabled() bool {
	return d.cfg.Enabled
}

// Base returns the run-start parameters.
func (d *DifficultyController) Base() Params {
	return Params{Speed: d.cfg.BaseSpeed, Gap: d.cfg.BaseGap}
}

// Apply re-evaluates the parameters for the given score. The values only move
// when score is a positive multiple of StepEvery; otherwise cur is returned.
// It is idempotent and cheap enough to call every tick.
func (d *DifficultyController) Apply(score int, cur Params) Params {
	if !d.cfg.Enabled || score <= 0 || d.cfg.StepEvery <= 0 || score%d.cfg.StepEvery != 0 {
		return cur
	}
	return d.At(score)
}

// At returns the parameters for a score on the progression curve.
func (d *DifficultyController) At(score int) Params {
	s := float64(score)
	return Params{
		Speed: min(d.cfg.SpeedCap, d.cfg.BaseSpeed+s*d.cfg.SpeedPerPoint),
		Gap:   max(d.cfg.GapFloor, d.cfg.BaseGap-s*d.cfg.GapPerPoint),
	}
}
