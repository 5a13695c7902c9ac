package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/greedy-snake/internal/config"
	"github.com/vovakirdan/greedy-snake/internal/core"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestDetector() *HoldDetector {
	return NewHoldDetector(config.SnakeInput{
		RepeatWindow: 550 * time.Millisecond,
		ReleaseAfter: 150 * time.Millisecond,
	})
}

func TestHoldDetectorSinglePress(t *testing.T) {
	h := newTestDetector()
	if got := h.Press(core.ActionUp, t0); got != core.ActionNone {
		t.Errorf("first press = %v, expected None", got)
	}
	if got := h.Poll(t0.Add(time.Second)); got != core.ActionNone {
		t.Errorf("poll after a tap = %v, expected None", got)
	}
}

func TestHoldDetectorRepeatStartsBoost(t *testing.T) {
	h := newTestDetector()
	h.Press(core.ActionRight, t0)

	// Terminal auto-repeat: first repeat after ~500ms, then every ~30ms
	now := t0.Add(500 * time.Millisecond)
	if got := h.Press(core.ActionRight, now); got != core.ActionBoostStart {
		t.Fatalf("first repeat = %v, expected BoostStart", got)
	}
	for i := 0; i < 5; i++ {
		now = now.Add(30 * time.Millisecond)
		if got := h.Press(core.ActionRight, now); got != core.ActionBoostStart {
			t.Errorf("repeat = %v, expected BoostStart", got)
		}
		if got := h.Poll(now.Add(10 * time.Millisecond)); got != core.ActionNone {
			t.Errorf("poll during hold = %v, expected None", got)
		}
	}

	if got := h.Poll(now.Add(200 * time.Millisecond)); got != core.ActionBoostStop {
		t.Errorf("poll after release = %v, expected BoostStop", got)
	}
	if h.Holding() {
		t.Error("Holding() = true after release")
	}
	if got := h.Poll(now.Add(time.Second)); got != core.ActionNone {
		t.Errorf("second poll = %v, expected None", got)
	}
}

func TestHoldDetectorOtherKeyStopsBoost(t *testing.T) {
	h := newTestDetector()
	h.Press(core.ActionUp, t0)
	h.Press(core.ActionUp, t0.Add(500*time.Millisecond))

	if got := h.Press(core.ActionLeft, t0.Add(530*time.Millisecond)); got != core.ActionBoostStop {
		t.Errorf("other key during hold = %v, expected BoostStop", got)
	}
}

func TestHoldDetectorSlowPresses(t *testing.T) {
	h := newTestDetector()
	h.Press(core.ActionDown, t0)
	if got := h.Press(core.ActionDown, t0.Add(800*time.Millisecond)); got != core.ActionNone {
		t.Errorf("slow second press = %v, expected None", got)
	}
}

func TestHoldDetectorIgnoresNonDirections(t *testing.T) {
	h := newTestDetector()
	h.Press(core.ActionPause, t0)
	if got := h.Press(core.ActionPause, t0.Add(10*time.Millisecond)); got != core.ActionNone {
		t.Errorf("repeated pause = %v, expected None", got)
	}
}
