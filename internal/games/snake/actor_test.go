package snake

import (
	"testing"
	"time"
)

func TestChangeHeadingMovesHead(t *testing.T) {
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}
	for _, from := range dirs {
		for _, to := range dirs {
			if to == from.Opposite() {
				continue
			}
			a := NewActor(Point{X: 5, Y: 5}, from, 2, 4)
			a.ChangeHeading(to)
			if out := a.Step(10, 10); out != StepAlive {
				t.Fatalf("%v->%v: Step() = %v, expected alive", from, to, out)
			}
			want := Point{X: 5, Y: 5}.Add(to.Delta())
			if a.Head() != want {
				t.Errorf("%v->%v: head = %v, expected %v", from, to, a.Head(), want)
			}
		}
	}
}

func TestReversalRejected(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		a := NewActor(Point{X: 5, Y: 5}, d, 2, 4)
		if a.ChangeHeading(d.Opposite()) {
			t.Errorf("ChangeHeading(%v) accepted while heading %v", d.Opposite(), d)
		}
		if a.Heading() != d {
			t.Errorf("heading = %v, expected %v", a.Heading(), d)
		}
	}
}

func TestBoundaryCollisionLeavesBody(t *testing.T) {
	tests := []struct {
		name    string
		start   Point
		heading Direction
	}{
		{"left edge", Point{X: 0, Y: 3}, DirLeft},
		{"right edge", Point{X: 9, Y: 3}, DirRight},
		{"top edge", Point{X: 3, Y: 0}, DirUp},
		{"bottom edge", Point{X: 3, Y: 9}, DirDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewActor(tt.start, tt.heading, 2, 4)
			before := a.Body()
			if out := a.Step(10, 10); out != StepCollided {
				t.Fatalf("Step() = %v, expected collided", out)
			}
			after := a.Body()
			if len(after) != len(before) || after[0] != before[0] {
				t.Errorf("body changed on collision: %v -> %v", before, after)
			}
		})
	}
}

func TestGrowthByLaggingRemoval(t *testing.T) {
	a := NewActor(Point{X: 2, Y: 5}, DirRight, 2, 4)
	wantLens := []int{2, 3, 3, 3}
	for i, want := range wantLens {
		a.Step(20, 20)
		if got := len(a.Body()); got != want {
			t.Errorf("after step %d: len = %d, expected %d", i+1, got, want)
		}
	}

	a.Grow(10)
	a.Step(20, 20)
	if got := len(a.Body()); got != 4 {
		t.Errorf("after growing: len = %d, expected 4", got)
	}
	if a.Score() != 10 || a.TargetLength() != 4 {
		t.Errorf("score/target = %d/%d, expected 10/4", a.Score(), a.TargetLength())
	}
}

func TestStepIntoVacatedTail(t *testing.T) {
	// Head at (1,0) moving left onto the tail at (0,0)
	a := &Actor{
		body:         []Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}},
		heading:      DirLeft,
		targetLength: 4,
		maxTier:      4,
	}
	if out := a.Step(5, 5); out != StepAlive {
		t.Fatalf("Step() = %v, expected alive when the tail moves away", out)
	}
	if a.Head() != (Point{X: 0, Y: 0}) {
		t.Errorf("head = %v, expected (0,0)", a.Head())
	}

	// Same shape, but the body is still growing so the tail stays
	b := &Actor{
		body:         []Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}},
		heading:      DirLeft,
		targetLength: 5,
		maxTier:      4,
	}
	if out := b.Step(5, 5); out != StepCollided {
		t.Errorf("Step() = %v, expected collided with a tail that stays", out)
	}
}

func TestSelfCollision(t *testing.T) {
	a := &Actor{
		body:         []Point{{X: 2, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}},
		heading:      DirDown,
		targetLength: 5,
		maxTier:      4,
	}
	before := a.Body()
	if out := a.Step(5, 5); out != StepCollided {
		t.Fatalf("Step() = %v, expected collided", out)
	}
	for i, p := range a.Body() {
		if p != before[i] {
			t.Fatalf("body changed on collision: %v -> %v", before, a.Body())
		}
	}
}

func TestAdjustSpeedClamps(t *testing.T) {
	a := NewActor(Point{}, DirRight, 2, 4)
	a.AdjustSpeed(1)
	a.AdjustSpeed(1)
	if a.AdjustSpeed(1) {
		t.Error("AdjustSpeed(+1) at max tier reported a change")
	}
	if a.SpeedTier() != 4 {
		t.Errorf("tier = %d, expected 4", a.SpeedTier())
	}
	for i := 0; i < 10; i++ {
		a.AdjustSpeed(-1)
	}
	if a.SpeedTier() != 0 {
		t.Errorf("tier = %d, expected 0", a.SpeedTier())
	}
}

func TestBoostRefresh(t *testing.T) {
	a := NewActor(Point{}, DirRight, 2, 4)
	a.StartBoost(t0)
	a.StartBoost(at(300 * time.Millisecond))
	if !a.Boosting() || a.boostStart != at(300*time.Millisecond) {
		t.Errorf("boost start = %v, expected refreshed start", a.boostStart)
	}
	a.StopBoost()
	if a.Boosting() {
		t.Error("Boosting() = true after StopBoost")
	}
}

func TestCloneIsDeep(t *testing.T) {
	a := NewActor(Point{X: 1, Y: 1}, DirRight, 2, 4)
	c := a.clone()
	a.Step(10, 10)
	if len(c.body) != 1 || c.body[0] != (Point{X: 1, Y: 1}) {
		t.Errorf("clone body changed: %v", c.body)
	}
}
