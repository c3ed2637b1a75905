package config

import "fmt"

// ValidationError contains details about an invalid configuration.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration describes a playable world.
func (c FlappyConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_WORLD",
			Message: fmt.Sprintf("world must have positive size, got %gx%g", c.World.Width, c.World.Height),
		}
	}
	if c.World.GroundHeight < 0 || c.MaxY() <= 0 {
		return ValidationError{
			Code:    "INVALID_GROUND",
			Message: fmt.Sprintf("ground height %g leaves no room for a flyer of height %g", c.World.GroundHeight, c.Player.Height),
		}
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return ValidationError{Code: "INVALID_PLAYER", Message: "player hitbox must be positive"}
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.MinTopHeight < 0 || c.Obstacles.TopHeightRange < 1 {
		return ValidationError{Code: "INVALID_OBSTACLES", Message: "obstacle width and top height range must be positive"}
	}
	if err := c.Difficulty.validate(); err != nil {
		return err
	}
	if c.Missiles.Enabled {
		m := c.Missiles
		if m.Speed <= 0 || m.ExplosionStep <= 0 || m.AwardEvery < 1 || m.Cooldown < 0 || m.StartingAmmo < 0 {
			return ValidationError{Code: "INVALID_MISSILES", Message: "missile speed, explosion step and award interval must be positive"}
		}
	}
	if c.Effects.HitDecayTicks < 0 || c.Effects.WingFlapTicks < 1 {
		return ValidationError{Code: "INVALID_EFFECTS", Message: "wing flap interval must be at least one tick"}
	}
	return nil
}

func (d DifficultyConfig) validate() error {
	if d.BaseSpeed <= 0 || d.BaseGap <= 0 {
		return ValidationError{Code: "INVALID_DIFFICULTY", Message: "base speed and base gap must be positive"}
	}
	if d.SpeedCap < d.BaseSpeed {
		return ValidationError{
			Code:    "INVALID_DIFFICULTY",
			Message: fmt.Sprintf("speed cap %g is below base speed %g", d.SpeedCap, d.BaseSpeed),
		}
	}
	if d.GapFloor > d.BaseGap || d.GapFloor <= 0 {
		return ValidationError{
			Code:    "INVALID_DIFFICULTY",
			Message: fmt.Sprintf("gap floor %g must be in (0, %g]", d.GapFloor, d.BaseGap),
		}
	}
	if d.StepEvery < 1 || d.SpeedPerPoint < 0 || d.GapPerPoint < 0 {
		return ValidationError{Code: "INVALID_DIFFICULTY", Message: "step interval must be positive and per-point rates non-negative"}
	}
	return nil
}
