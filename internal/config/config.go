// Package config provides YAML-based configuration loading and speed presets
// for the snake game.
package config

import "time"

// SnakeConfig contains all tunable parameters of the snake game.
type SnakeConfig struct {
	Grid     SnakeGrid     `yaml:"grid"`
	Timing   SnakeTiming   `yaml:"timing"`
	Food     SnakeFood     `yaml:"food"`
	Feedback SnakeFeedback `yaml:"feedback"`
	Input    SnakeInput    `yaml:"input"`
}

// SnakeGrid defines the playfield dimensions in cells.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeTiming defines movement rates and the boost window.
type SnakeTiming struct {
	BaseRate         float64       `yaml:"base_rate"`         // Grid steps per second at 1x
	SpeedMultipliers []float64     `yaml:"speed_multipliers"` // One entry per speed tier
	StartTier        int           `yaml:"start_tier"`        // Index into SpeedMultipliers
	BoostFactor      float64       `yaml:"boost_factor"`      // Rate multiplier while boosting
	BoostWindow      time.Duration `yaml:"boost_window"`      // Boost clears itself after this long
}

// SnakeFood defines food scoring and the bonus food lifecycle.
type SnakeFood struct {
	StandardPoints    int           `yaml:"standard_points"`
	BonusPoints       int           `yaml:"bonus_points"`
	BonusBand         int           `yaml:"bonus_band"`     // Score interval between bonus spawns
	BonusDuration     time.Duration `yaml:"bonus_duration"` // Lifetime of an uneaten bonus food
	PlacementAttempts int           `yaml:"placement_attempts"`
}

// SnakeFeedback defines the encouragement messages.
type SnakeFeedback struct {
	Band     int           `yaml:"band"`     // Score gained between two messages
	Duration time.Duration `yaml:"duration"` // How long a message stays visible
	Phrases  []string      `yaml:"phrases"`
}

// SnakeInput defines how the terminal adapter detects a held key.
type SnakeInput struct {
	RepeatWindow time.Duration `yaml:"repeat_window"` // Max gap between presses of a held key
	ReleaseAfter time.Duration `yaml:"release_after"` // Silence after which a held key counts as released
}

// TierCount returns the number of configured speed tiers.
func (t SnakeTiming) TierCount() int {
	return len(t.SpeedMultipliers)
}

// MaxTier returns the highest valid speed tier index.
func (t SnakeTiming) MaxTier() int {
	return len(t.SpeedMultipliers) - 1
}
