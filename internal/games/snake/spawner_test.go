package snake

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/greedy-snake/internal/config"
)

func newTestSpawner(w, h int, seed int64) *Spawner {
	return NewSpawner(w, h, config.DefaultSnakeConfig().Food, rand.New(rand.NewSource(seed)))
}

func TestPlaceStandardAvoidsBodyAndBonus(t *testing.T) {
	// 3x3 grid: body takes 7 cells, bonus one more, leaving (2,2)
	body := []Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 0, Y: 1},
		{X: 0, Y: 2},
	}
	for seed := int64(0); seed < 20; seed++ {
		s := newTestSpawner(3, 3, seed)
		s.bonus = Food{Pos: Point{X: 1, Y: 2}, Present: true, Bonus: true}
		if !s.PlaceStandard(body) {
			t.Fatalf("seed %d: PlaceStandard() = false with one free cell", seed)
		}
		if s.Standard().Pos != (Point{X: 2, Y: 2}) {
			t.Errorf("seed %d: standard at %v, expected (2,2)", seed, s.Standard().Pos)
		}
	}
}

func TestPlaceStandardFullGrid(t *testing.T) {
	s := newTestSpawner(2, 2, 1)
	body := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	if s.PlaceStandard(body) {
		t.Error("PlaceStandard() = true on a full grid")
	}
	if s.Standard().Present {
		t.Error("standard food present on a full grid")
	}
}

func TestPlaceStandardNeverOnBody(t *testing.T) {
	s := newTestSpawner(10, 10, 99)
	body := make([]Point, 0, 60)
	for y := 0; y < 6; y++ {
		for x := 0; x < 10; x++ {
			body = append(body, Point{X: x, Y: y})
		}
	}
	for i := 0; i < 200; i++ {
		s.PlaceStandard(body)
		if containsPoint(body, s.Standard().Pos) {
			t.Fatalf("standard food placed on body at %v", s.Standard().Pos)
		}
	}
}

func TestBonusActivation(t *testing.T) {
	s := newTestSpawner(10, 10, 5)
	body := []Point{{X: 5, Y: 5}}
	s.PlaceStandard(body)

	if s.MaybeActivateBonus(90, body, t0) {
		t.Fatal("bonus activated below the threshold")
	}
	if !s.MaybeActivateBonus(100, body, t0) {
		t.Fatal("bonus not activated at the threshold")
	}
	if !s.Bonus().Present || s.Bonus().Pos == body[0] {
		t.Errorf("bonus = %+v, expected present and off the body", s.Bonus())
	}
	if s.Standard().Present {
		t.Error("standard food present while bonus is active")
	}
	if s.NextBonusThreshold() != 200 {
		t.Errorf("next threshold = %d, expected 200", s.NextBonusThreshold())
	}
	if s.MaybeActivateBonus(250, body, t0) {
		t.Error("second bonus activated while one is active")
	}
}

func TestBonusExpiry(t *testing.T) {
	s := newTestSpawner(10, 10, 5)
	body := []Point{{X: 5, Y: 5}}
	s.MaybeActivateBonus(100, body, t0)

	if s.TickBonusExpiry(body, at(4999*time.Millisecond)) {
		t.Fatal("bonus expired before 5s")
	}
	if got := s.BonusRemaining(at(4 * time.Second)); got != time.Second {
		t.Errorf("BonusRemaining = %v, expected 1s", got)
	}
	if !s.TickBonusExpiry(body, at(5*time.Second)) {
		t.Fatal("bonus did not expire at 5s")
	}
	if s.Bonus().Present {
		t.Error("bonus still present after expiry")
	}
	if !s.Standard().Present || containsPoint(body, s.Standard().Pos) {
		t.Errorf("standard = %+v, expected present and off the body", s.Standard())
	}
}

func TestConsumeBonusRestoresStandard(t *testing.T) {
	s := newTestSpawner(10, 10, 8)
	body := []Point{{X: 5, Y: 5}}
	s.MaybeActivateBonus(100, body, t0)
	s.ConsumeBonus(body)
	if s.Bonus().Present {
		t.Error("bonus present after consumption")
	}
	if !s.Standard().Present {
		t.Error("standard track not resumed after bonus consumption")
	}
}
