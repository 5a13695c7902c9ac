package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/greedy-snake/internal/config"
)

// Food is one food slot. An absent slot has Present set to false.
type Food struct {
	Pos       Point
	Present   bool
	Bonus     bool
	SpawnedAt time.Time // Only meaningful for bonus food
}

// Spawner owns the standard and bonus food tracks.
type Spawner struct {
	w, h int
	cfg  config.SnakeFood
	rng  *rand.Rand

	standard           Food
	bonus              Food
	nextBonusThreshold int
}

// NewSpawner creates a spawner for a w×h grid. Both tracks start empty.
func NewSpawner(w, h int, cfg config.SnakeFood, rng *rand.Rand) *Spawner {
	return &Spawner{
		w:                  w,
		h:                  h,
		cfg:                cfg,
		rng:                rng,
		nextBonusThreshold: cfg.BonusBand,
	}
}

// PlaceStandard puts the standard food on a free cell, avoiding the body and
// the active bonus. Returns false if the grid is full.
func (s *Spawner) PlaceStandard(body []Point) bool {
	blocked := occupancy(body)
	if s.bonus.Present {
		blocked[s.bonus.Pos] = true
	}
	pos, ok := s.freeCell(blocked)
	s.standard = Food{Pos: pos, Present: ok}
	return ok
}

// MaybeActivateBonus spawns a bonus food once the score reaches the next
// threshold. The standard food is suppressed while the bonus is out.
func (s *Spawner) MaybeActivateBonus(score int, body []Point, now time.Time) bool {
	if s.bonus.Present || score < s.nextBonusThreshold {
		return false
	}
	pos, ok := s.freeCell(occupancy(body))
	if !ok {
		return false
	}
	s.bonus = Food{Pos: pos, Present: true, Bonus: true, SpawnedAt: now}
	s.standard.Present = false
	s.nextBonusThreshold += s.cfg.BonusBand
	return true
}

// TickBonusExpiry removes an uneaten bonus food once its lifetime has passed
// and brings the standard food back.
func (s *Spawner) TickBonusExpiry(body []Point, now time.Time) bool {
	if !s.bonus.Present || now.Sub(s.bonus.SpawnedAt) < s.cfg.BonusDuration {
		return false
	}
	s.bonus = Food{}
	s.PlaceStandard(body)
	return true
}

// StandardAt reports whether the standard food sits on p.
func (s *Spawner) StandardAt(p Point) bool {
	return s.standard.Present && s.standard.Pos == p
}

// BonusAt reports whether the bonus food sits on p.
func (s *Spawner) BonusAt(p Point) bool {
	return s.bonus.Present && s.bonus.Pos == p
}

// ConsumeStandard respawns the standard food after it was eaten.
func (s *Spawner) ConsumeStandard(body []Point) {
	s.PlaceStandard(body)
}

// ConsumeBonus clears the eaten bonus food and resumes the standard track.
func (s *Spawner) ConsumeBonus(body []Point) {
	s.bonus = Food{}
	s.PlaceStandard(body)
}

// BonusRemaining returns how long the bonus food has left at now.
func (s *Spawner) BonusRemaining(now time.Time) time.Duration {
	if !s.bonus.Present {
		return 0
	}
	left := s.cfg.BonusDuration - now.Sub(s.bonus.SpawnedAt)
	if left < 0 {
		return 0
	}
	return left
}

// Standard returns the standard food slot.
func (s *Spawner) Standard() Food { return s.standard }

// Bonus returns the bonus food slot.
func (s *Spawner) Bonus() Food { return s.bonus }

// NextBonusThreshold returns the score at which the next bonus appears.
func (s *Spawner) NextBonusThreshold() int { return s.nextBonusThreshold }

// freeCell picks a uniformly random cell that is not blocked. It tries random
// cells first and falls back to scanning the grid, so it always terminates.
func (s *Spawner) freeCell(blocked map[Point]bool) (Point, bool) {
	for i := 0; i < s.cfg.PlacementAttempts; i++ {
		p := Point{X: s.rng.Intn(s.w), Y: s.rng.Intn(s.h)}
		if !blocked[p] {
			return p, true
		}
	}

	var free []Point
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			p := Point{X: x, Y: y}
			if !blocked[p] {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, false
	}
	return free[s.rng.Intn(len(free))], true
}

func occupancy(body []Point) map[Point]bool {
	m := make(map[Point]bool, len(body)+1)
	for _, p := range body {
		m[p] = true
	}
	return m
}
