package snake

import "time"

// SessionSnapshot is a saved, resumable session. Timestamps are kept as
// elapsed durations so the snapshot can be restored at any later time.
type SessionSnapshot struct {
	actor              Actor
	standard           Food
	bonus              Food
	nextBonusThreshold int
	feedback           Feedback
	paused             bool
	activeTime         time.Duration
	topTier            int

	sinceStep  time.Duration
	sinceBoost time.Duration
	sinceBonus time.Duration
}

// Score returns the saved score.
func (snap SessionSnapshot) Score() int { return snap.actor.score }

// Paused reports whether the saved session was paused.
func (snap SessionSnapshot) Paused() bool { return snap.paused }

// capture deep-copies the running game. While paused, elapsed times are
// measured up to the moment of pausing.
func (s *Session) capture(now time.Time) SessionSnapshot {
	ref := now
	if s.state == StatePaused {
		ref = s.pausedAt
	}
	snap := SessionSnapshot{
		actor:              s.actor.clone(),
		standard:           s.spawner.standard,
		bonus:              s.spawner.bonus,
		nextBonusThreshold: s.spawner.nextBonusThreshold,
		feedback:           s.feedback,
		paused:             s.state == StatePaused,
		activeTime:         s.activeTime,
		topTier:            s.topTier,
		sinceStep:          ref.Sub(s.lastStep),
		sinceBoost:         ref.Sub(s.actor.boostStart),
	}
	if s.spawner.bonus.Present {
		snap.sinceBonus = ref.Sub(s.spawner.bonus.SpawnedAt)
	}
	return snap
}

// restore installs snap as the current game with its clocks rebased onto now.
func (s *Session) restore(snap SessionSnapshot, now time.Time) {
	actor := snap.actor.clone()
	actor.boostStart = now.Add(-snap.sinceBoost)
	s.actor = &actor

	w, h := s.cfg.Grid.Width, s.cfg.Grid.Height
	s.spawner = NewSpawner(w, h, s.cfg.Food, s.rng)
	s.spawner.standard = snap.standard
	s.spawner.bonus = snap.bonus
	if snap.bonus.Present {
		s.spawner.bonus.SpawnedAt = now.Add(-snap.sinceBonus)
	}
	s.spawner.nextBonusThreshold = snap.nextBonusThreshold

	s.feedback = snap.feedback
	s.activeTime = snap.activeTime
	s.topTier = snap.topTier
	s.lastStep = now.Add(-snap.sinceStep)
	s.lastUpdate = now

	s.state = StateRunning
	if snap.paused {
		s.state = StatePaused
		s.pausedAt = now
	}
}

// Snapshot is a read-only view of the session for rendering.
type Snapshot struct {
	State        State
	Width        int
	Height       int
	Body         []Point // Head first
	Heading      Direction
	Score        int
	SpeedTier    int
	SpeedLabel   string
	Boosting     bool
	TargetLength int

	Food           Food
	Bonus          Food
	BonusRemaining time.Duration

	Message        string
	MessageVisible bool

	HasSaved bool
	Tick     uint64
}

// Snapshot returns a copy of everything the presentation layer may show.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:    s.state,
		Width:    s.cfg.Grid.Width,
		Height:   s.cfg.Grid.Height,
		HasSaved: s.saved != nil,
		Tick:     s.tick,
	}
	if s.actor == nil {
		return snap
	}

	now := s.lastUpdate
	if s.state == StatePaused {
		now = s.pausedAt
	}

	snap.Body = s.actor.Body()
	snap.Heading = s.actor.heading
	snap.Score = s.actor.score
	snap.SpeedTier = s.actor.speedTier
	snap.SpeedLabel = s.actor.SpeedLabel(s.timing)
	snap.Boosting = s.actor.boosting
	snap.TargetLength = s.actor.targetLength
	snap.Food = s.spawner.standard
	snap.Bonus = s.spawner.bonus
	snap.BonusRemaining = s.spawner.BonusRemaining(now)
	snap.Message = s.feedback.Message
	snap.MessageVisible = s.feedback.Visible()
	return snap
}
