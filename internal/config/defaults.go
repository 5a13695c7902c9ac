package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
// It mirrors defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Width:  30,
			Height: 30,
		},
		Timing: SnakeTiming{
			BaseRate:         10,
			SpeedMultipliers: []float64{0.5, 0.75, 1, 1.5, 2},
			StartTier:        2,
			BoostFactor:      2,
			BoostWindow:      500 * time.Millisecond,
		},
		Food: SnakeFood{
			StandardPoints:    10,
			BonusPoints:       30,
			BonusBand:         100,
			BonusDuration:     5 * time.Second,
			PlacementAttempts: 64,
		},
		Feedback: SnakeFeedback{
			Band:     100,
			Duration: time.Second,
			Phrases: []string{
				"Awesome! Keep it up!",
				"Nicely done!",
				"Amazing!",
				"You're a snake master!",
				"Keep going!",
				"Flawless!",
				"Impressive!",
			},
		},
		Input: SnakeInput{
			RepeatWindow: 550 * time.Millisecond,
			ReleaseAfter: 150 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
