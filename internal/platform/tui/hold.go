package tui

import (
	"time"

	"github.com/vovakirdan/greedy-snake/internal/config"
	"github.com/vovakirdan/greedy-snake/internal/core"
)

// HoldDetector turns terminal key repeat into boost start/stop actions.
// Terminals report no key releases, so a direction key that repeats within
// the repeat window counts as held, and a held key that goes quiet for the
// release delay counts as released.
type HoldDetector struct {
	repeatWindow time.Duration
	releaseAfter time.Duration

	lastKey   core.Action
	lastPress time.Time
	holding   bool
}

// NewHoldDetector creates a detector from the input config.
func NewHoldDetector(cfg config.SnakeInput) *HoldDetector {
	return &HoldDetector{
		repeatWindow: cfg.RepeatWindow,
		releaseAfter: cfg.ReleaseAfter,
	}
}

// Press records a direction key press. It returns ActionBoostStart for every
// repeat of a held key, ActionBoostStop when a different key interrupts a
// hold and ActionNone otherwise.
func (h *HoldDetector) Press(a core.Action, now time.Time) core.Action {
	if !isDirection(a) {
		return core.ActionNone
	}

	repeat := a == h.lastKey && !h.lastPress.IsZero() && now.Sub(h.lastPress) <= h.repeatWindow
	wasHolding := h.holding
	h.lastKey = a
	h.lastPress = now

	if repeat {
		h.holding = true
		return core.ActionBoostStart
	}
	h.holding = false
	if wasHolding {
		return core.ActionBoostStop
	}
	return core.ActionNone
}

// Poll returns ActionBoostStop once a held key has been quiet for the
// release delay.
func (h *HoldDetector) Poll(now time.Time) core.Action {
	if h.holding && now.Sub(h.lastPress) > h.releaseAfter {
		h.holding = false
		return core.ActionBoostStop
	}
	return core.ActionNone
}

// Holding reports whether a key is currently considered held.
func (h *HoldDetector) Holding() bool {
	return h.holding
}

// Reset forgets any pressed key.
func (h *HoldDetector) Reset() {
	h.lastKey = core.ActionNone
	h.lastPress = time.Time{}
	h.holding = false
}
