package config

import "fmt"

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < 3 || c.Grid.Height < 3 {
		return ValidationError{
			Code:    "INVALID_GRID",
			Message: fmt.Sprintf("grid must be at least 3x3, got %dx%d", c.Grid.Width, c.Grid.Height),
		}
	}

	if err := c.Timing.validate(); err != nil {
		return err
	}

	if c.Food.StandardPoints <= 0 || c.Food.BonusPoints <= 0 {
		return ValidationError{
			Code:    "INVALID_POINTS",
			Message: "food points must be positive",
		}
	}
	if c.Food.BonusBand <= 0 || c.Food.BonusDuration <= 0 {
		return ValidationError{
			Code:    "INVALID_BONUS",
			Message: "bonus band and duration must be positive",
		}
	}
	if c.Food.PlacementAttempts < 0 {
		return ValidationError{
			Code:    "INVALID_PLACEMENT",
			Message: fmt.Sprintf("placement attempts cannot be negative, got %d", c.Food.PlacementAttempts),
		}
	}

	if c.Feedback.Band <= 0 || c.Feedback.Duration <= 0 {
		return ValidationError{
			Code:    "INVALID_FEEDBACK",
			Message: "feedback band and duration must be positive",
		}
	}
	if len(c.Feedback.Phrases) == 0 {
		return ValidationError{
			Code:    "NO_PHRASES",
			Message: "feedback needs at least one phrase",
		}
	}

	return nil
}

// validate checks the speed table and boost parameters.
func (t SnakeTiming) validate() error {
	if t.BaseRate <= 0 {
		return ValidationError{
			Code:    "INVALID_RATE",
			Message: fmt.Sprintf("base rate must be positive, got %g", t.BaseRate),
		}
	}
	if len(t.SpeedMultipliers) == 0 {
		return ValidationError{
			Code:    "NO_TIERS",
			Message: "at least one speed multiplier is required",
		}
	}
	for i, m := range t.SpeedMultipliers {
		if m <= 0 {
			return ValidationError{
				Code:    "INVALID_TIER",
				Message: fmt.Sprintf("speed multiplier %d must be positive, got %g", i, m),
			}
		}
	}
	if t.StartTier < 0 || t.StartTier > t.MaxTier() {
		return ValidationError{
			Code:    "INVALID_START_TIER",
			Message: fmt.Sprintf("start tier %d outside [0, %d]", t.StartTier, t.MaxTier()),
		}
	}
	if t.BoostFactor < 1 || t.BoostWindow <= 0 {
		return ValidationError{
			Code:    "INVALID_BOOST",
			Message: "boost factor must be >= 1 and boost window positive",
		}
	}
	return nil
}
