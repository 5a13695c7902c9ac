package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/greedy-snake/internal/config"
	"github.com/vovakirdan/greedy-snake/internal/core"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time {
	return t0.Add(d)
}

// newRunning returns a started session with default config.
func newRunning(t *testing.T, seed int64) *Session {
	t.Helper()
	s := New(config.DefaultSnakeConfig(), core.RuntimeConfig{Seed: seed})
	if !s.Start(t0) {
		t.Fatal("Start() returned false on a new session")
	}
	return s
}

func containsPoint(body []Point, p Point) bool {
	for _, b := range body {
		if b == p {
			return true
		}
	}
	return false
}
