package snake

import "time"

// initialLength is the length a fresh actor grows to before it starts
// vacating its tail.
const initialLength = 3

// StepOutcome is the result of moving the actor one cell.
type StepOutcome int

const (
	StepAlive StepOutcome = iota
	StepCollided
)

func (o StepOutcome) String() string {
	if o == StepCollided {
		return "collided"
	}
	return "alive"
}

// Actor is the player-controlled snake.
type Actor struct {
	body              []Point // Head at index 0
	heading           Direction
	score             int
	targetLength      int
	speedTier         int
	maxTier           int
	boosting          bool
	boostStart        time.Time
	lastFeedbackScore int
}

// NewActor creates a one-cell actor at start. The body reaches its initial
// length through the first few steps.
func NewActor(start Point, heading Direction, speedTier, maxTier int) *Actor {
	return &Actor{
		body:         []Point{start},
		heading:      heading,
		targetLength: initialLength,
		speedTier:    clampTier(speedTier, maxTier),
		maxTier:      maxTier,
	}
}

// Step moves the head one cell along the heading on a w×h grid.
// On collision the body is left untouched.
func (a *Actor) Step(w, h int) StepOutcome {
	next := a.body[0].Add(a.heading.Delta())

	// Boundary first
	if !next.inBounds(w, h) {
		return StepCollided
	}

	// The tail cell does not count when it is vacated by this step
	occupied := a.body
	if len(a.body) >= a.targetLength {
		occupied = a.body[:len(a.body)-1]
	}
	for _, p := range occupied {
		if p == next {
			return StepCollided
		}
	}

	a.body = append(a.body, Point{})
	copy(a.body[1:], a.body)
	a.body[0] = next

	// Growth lags: the tail is only dropped once the target length is exceeded
	if len(a.body) > a.targetLength {
		a.body = a.body[:len(a.body)-1]
	}
	return StepAlive
}

// ChangeHeading sets the heading for the next step. A reversal is rejected.
func (a *Actor) ChangeHeading(d Direction) bool {
	if d == a.heading.Opposite() {
		return false
	}
	a.heading = d
	return true
}

// Grow extends the target length by one and adds points to the score.
func (a *Actor) Grow(points int) {
	a.targetLength++
	a.score += points
}

// AdjustSpeed moves the speed tier by delta, clamped to the table.
// Returns false when the tier did not change.
func (a *Actor) AdjustSpeed(delta int) bool {
	tier := clampTier(a.speedTier+delta, a.maxTier)
	if tier == a.speedTier {
		return false
	}
	a.speedTier = tier
	return true
}

// StartBoost begins a boost window, or refreshes the one in progress.
func (a *Actor) StartBoost(now time.Time) {
	a.boosting = true
	a.boostStart = now
}

// StopBoost ends the boost.
func (a *Actor) StopBoost() {
	a.boosting = false
}

// SpeedLabel returns the display label of the current speed.
func (a *Actor) SpeedLabel(t Timing) string {
	return t.SpeedLabel(a.speedTier, a.boosting)
}

// Head returns the head cell.
func (a *Actor) Head() Point {
	return a.body[0]
}

// Body returns a copy of the body, head first.
func (a *Actor) Body() []Point {
	out := make([]Point, len(a.body))
	copy(out, a.body)
	return out
}

// Heading returns the current heading.
func (a *Actor) Heading() Direction { return a.heading }

// Score returns the current score.
func (a *Actor) Score() int { return a.score }

// TargetLength returns the length the body is growing towards.
func (a *Actor) TargetLength() int { return a.targetLength }

// SpeedTier returns the current speed tier.
func (a *Actor) SpeedTier() int { return a.speedTier }

// Boosting reports whether a boost is active.
func (a *Actor) Boosting() bool { return a.boosting }

// clone returns a deep copy of the actor.
func (a *Actor) clone() Actor {
	c := *a
	c.body = a.Body()
	return c
}
