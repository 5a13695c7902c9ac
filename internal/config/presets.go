package config

import "fmt"

// SpeedPreset represents a named starting speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// StartTierForPreset returns the starting speed tier for a preset.
func StartTierForPreset(preset SpeedPreset) int {
	switch preset {
	case SpeedSlow:
		return 1
	case SpeedFast:
		return 3
	default:
		return 2
	}
}

// ParseSpeedPreset validates a preset name. An empty name means "keep the config's tier".
func ParseSpeedPreset(name string) (SpeedPreset, error) {
	switch p := SpeedPreset(name); p {
	case "", SpeedSlow, SpeedNormal, SpeedFast:
		return p, nil
	default:
		return "", fmt.Errorf("unknown speed preset %q (want slow, normal or fast)", name)
	}
}

// ApplySnakePreset modifies the config based on a speed preset.
func ApplySnakePreset(cfg *SnakeConfig, preset SpeedPreset) {
	if preset == "" {
		return
	}
	tier := StartTierForPreset(preset)
	if tier > cfg.Timing.MaxTier() {
		tier = cfg.Timing.MaxTier()
	}
	cfg.Timing.StartTier = tier
}
