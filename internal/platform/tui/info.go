package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/greedy-snake/internal/config"
)

// RulesLines returns the game rules for the configured values.
func RulesLines(cfg config.SnakeConfig) []string {
	tiers := make([]string, len(cfg.Timing.SpeedMultipliers))
	for i, m := range cfg.Timing.SpeedMultipliers {
		tiers[i] = fmt.Sprintf("%gx", m)
	}
	return []string{
		"1. Hitting a wall or your own body ends the game. Long snakes are easier at low speed.",
		fmt.Sprintf("2. Each red apple makes the snake longer and is worth %d points.", cfg.Food.StandardPoints),
		fmt.Sprintf("3. There are %d speeds: %s.", len(tiers), strings.Join(tiers, ", ")),
		"4. Press Q to speed up and E to slow down. Hold a direction key for a short boost.",
		fmt.Sprintf("5. Every %d points a golden apple appears.", cfg.Food.BonusBand),
		fmt.Sprintf("6. The golden apple vanishes after %s and is worth %d points.", cfg.Food.BonusDuration, cfg.Food.BonusPoints),
		fmt.Sprintf("7. Every %d points earns you some encouragement (^o^)!", cfg.Feedback.Band),
	}
}

// ControlLines returns the key bindings as help text.
func ControlLines() []string {
	return []string{
		"Arrows / WASD   change direction",
		"Q / +           increase speed",
		"E / -           decrease speed",
		"P / Space       pause or resume",
		"R               restart",
		"Esc             back to menu",
		"Hold direction  temporary boost",
		"Ctrl+C          quit",
	}
}

// RulesText returns the rules and controls as plain text.
func RulesText(cfg config.SnakeConfig) string {
	var b strings.Builder
	b.WriteString("RULES\n\n")
	for _, l := range RulesLines(cfg) {
		b.WriteString(l)
		b.WriteString("\n")
	}
	b.WriteString("\nCONTROLS\n\n")
	for _, l := range ControlLines() {
		b.WriteString("  ")
		b.WriteString(l)
		b.WriteString("\n")
	}
	return b.String()
}
