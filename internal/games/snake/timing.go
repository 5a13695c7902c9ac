package snake

import (
	"strconv"
	"time"

	"github.com/vovakirdan/greedy-snake/internal/config"
	"github.com/vovakirdan/greedy-snake/internal/core"
)

// Timing decides when the actor is due to move.
// It holds no state of its own: callers pass in the timestamps they track.
type Timing struct {
	cfg config.SnakeTiming
}

// NewTiming creates a timing policy from the configured rates.
func NewTiming(cfg config.SnakeTiming) Timing {
	return Timing{cfg: cfg}
}

// Multiplier returns the rate multiplier of a speed tier, clamped to the table.
func (t Timing) Multiplier(tier int) float64 {
	if len(t.cfg.SpeedMultipliers) == 0 {
		return 1
	}
	tier = clampTier(tier, t.cfg.MaxTier())
	return t.cfg.SpeedMultipliers[tier]
}

// StepInterval returns the time between two grid steps.
func (t Timing) StepInterval(tier int, boosting bool) time.Duration {
	rate := t.cfg.BaseRate * t.Multiplier(tier)
	if boosting {
		rate *= t.cfg.BoostFactor
	}
	if rate <= 0 {
		return time.Duration(1<<63 - 1)
	}
	return time.Duration(float64(time.Second) / rate)
}

// ShouldStep reports whether a step is due. On true the caller must set
// lastStep to now.
func (t Timing) ShouldStep(now, lastStep time.Time, tier int, boosting bool) bool {
	return now.Sub(lastStep) >= t.StepInterval(tier, boosting)
}

// BoostExpired reports whether an active boost has outlived its window.
func (t Timing) BoostExpired(now, boostStart time.Time, boosting bool) bool {
	return boosting && now.Sub(boostStart) > t.cfg.BoostWindow
}

// SpeedLabel formats the tier multiplier for display, e.g. "1.5x" or "1.5x → 3x"
// while boosting.
func (t Timing) SpeedLabel(tier int, boosting bool) string {
	m := t.Multiplier(tier)
	label := formatMultiplier(m)
	if boosting {
		label += " → " + formatMultiplier(m*t.cfg.BoostFactor)
	}
	return label
}

func formatMultiplier(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64) + "x"
}

func clampTier(tier, maxTier int) int {
	return core.Clamp(tier, 0, maxTier)
}
