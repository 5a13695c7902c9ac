// Package snake implements the greedy snake game-state engine: movement,
// collisions, food lifecycle, speed tiers with hold-to-boost, encouragement
// messages and the session lifecycle. It is driven entirely by explicit
// timestamps so that a run is reproducible from its seed and inputs.
package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/greedy-snake/internal/config"
	"github.com/vovakirdan/greedy-snake/internal/core"
)

// State is the session lifecycle state.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StatePaused
	StateOver
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

// RunSummary describes a run for the run ledger.
type RunSummary struct {
	Score    int
	Length   int
	TopTier  int
	Duration time.Duration // Time spent running, pauses excluded
}

// Session owns one game: the actor, both food tracks and the feedback
// message. It is not safe for concurrent use; the frame loop owns it.
type Session struct {
	cfg    config.SnakeConfig
	timing Timing
	rng    *rand.Rand
	logger *log.Logger

	state    State
	actor    *Actor
	spawner  *Spawner
	feedback Feedback

	lastStep   time.Time
	lastUpdate time.Time
	pausedAt   time.Time
	activeTime time.Duration
	topTier    int
	tick       uint64

	saved *SessionSnapshot
}

// New creates a session waiting in the menu.
func New(cfg config.SnakeConfig, rt core.RuntimeConfig) *Session {
	return &Session{
		cfg:    cfg,
		timing: NewTiming(cfg.Timing),
		rng:    rand.New(rand.NewSource(rt.Seed)),
		logger: log.New(io.Discard),
		state:  StateNotStarted,
	}
}

// SetLogger replaces the session logger.
func (s *Session) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.SnakeConfig {
	return s.cfg
}

// Timing returns the session's timing policy.
func (s *Session) Timing() Timing {
	return s.timing
}

// HasSaved reports whether a session is waiting to be resumed.
func (s *Session) HasSaved() bool {
	return s.saved != nil
}

// fresh replaces the whole game with a new run starting at now.
func (s *Session) fresh(now time.Time) {
	w, h := s.cfg.Grid.Width, s.cfg.Grid.Height
	start := Point{X: w / 2, Y: h / 2}
	heading := Direction(s.rng.Intn(directionCount))

	s.actor = NewActor(start, heading, s.cfg.Timing.StartTier, s.cfg.Timing.MaxTier())
	s.spawner = NewSpawner(w, h, s.cfg.Food, s.rng)
	s.spawner.PlaceStandard(s.actor.body)
	s.feedback = Feedback{}
	s.lastStep = now
	s.lastUpdate = now
	s.activeTime = 0
	s.topTier = s.actor.speedTier

	s.logger.Debug("new run", "head", start, "heading", heading, "tier", s.actor.speedTier)
}

// Start leaves the menu. A saved session is resumed, keeping its pause
// flag; otherwise a fresh run begins.
func (s *Session) Start(now time.Time) bool {
	if s.state != StateNotStarted {
		return false
	}
	if s.saved != nil {
		s.restore(*s.saved, now)
		s.saved = nil
		s.logger.Info("session resumed", "score", s.actor.score, "state", s.state)
		return true
	}
	s.fresh(now)
	s.state = StateRunning
	s.logger.Info("session started")
	return true
}

// TogglePause switches between Running and Paused. On resume every timer is
// shifted forward by the paused wall time.
func (s *Session) TogglePause(now time.Time) bool {
	switch s.state {
	case StateRunning:
		s.pausedAt = now
		s.state = StatePaused
		s.logger.Debug("paused")
		return true
	case StatePaused:
		s.rebase(now.Sub(s.pausedAt))
		s.lastUpdate = now
		s.state = StateRunning
		s.logger.Debug("resumed")
		return true
	default:
		return false
	}
}

// rebase shifts all stored timestamps forward by d.
func (s *Session) rebase(d time.Duration) {
	s.lastStep = s.lastStep.Add(d)
	s.actor.boostStart = s.actor.boostStart.Add(d)
	if s.spawner.bonus.Present {
		s.spawner.bonus.SpawnedAt = s.spawner.bonus.SpawnedAt.Add(d)
	}
}

// Reset throws the current run away and starts a fresh one.
func (s *Session) Reset(now time.Time) bool {
	switch s.state {
	case StateRunning, StatePaused, StateOver:
		s.fresh(now)
		s.state = StateRunning
		s.logger.Info("session reset")
		return true
	default:
		return false
	}
}

// ReturnToMenu goes back to NotStarted. A live run is saved so Start can
// resume it; a finished run drops any saved session.
func (s *Session) ReturnToMenu(now time.Time) bool {
	switch s.state {
	case StateRunning, StatePaused:
		snap := s.capture(now)
		s.saved = &snap
	case StateOver:
		s.saved = nil
	default:
		return false
	}
	s.state = StateNotStarted
	s.logger.Info("returned to menu", "saved", s.saved != nil)
	return true
}

// ChangeHeading turns the actor. Ignored unless Running.
func (s *Session) ChangeHeading(d Direction) bool {
	if s.state != StateRunning {
		return false
	}
	return s.actor.ChangeHeading(d)
}

// IncreaseSpeed raises the speed tier. Allowed while Running or Paused.
func (s *Session) IncreaseSpeed() bool {
	return s.adjustSpeed(1)
}

// DecreaseSpeed lowers the speed tier. Allowed while Running or Paused.
func (s *Session) DecreaseSpeed() bool {
	return s.adjustSpeed(-1)
}

func (s *Session) adjustSpeed(delta int) bool {
	if s.state != StateRunning && s.state != StatePaused {
		return false
	}
	if !s.actor.AdjustSpeed(delta) {
		return false
	}
	if s.actor.speedTier > s.topTier {
		s.topTier = s.actor.speedTier
	}
	s.logger.Debug("speed changed", "tier", s.actor.speedTier, "label", s.actor.SpeedLabel(s.timing))
	return true
}

// StartBoost begins or refreshes a boost. Ignored unless Running.
func (s *Session) StartBoost(now time.Time) bool {
	if s.state != StateRunning {
		return false
	}
	if !s.actor.boosting {
		s.logger.Debug("boost started")
	}
	s.actor.StartBoost(now)
	return true
}

// StopBoost ends a boost early.
func (s *Session) StopBoost() bool {
	if s.actor == nil || !s.actor.boosting {
		return false
	}
	s.actor.StopBoost()
	s.logger.Debug("boost stopped")
	return true
}

// Step applies the frame's actions in order, then runs one Update.
func (s *Session) Step(in core.InputFrame, now time.Time) core.StepResult {
	s.Apply(in, now)
	moved := s.Update(now)
	return core.StepResult{State: s.gameState(), Moved: moved}
}

// Apply applies the frame's actions in order without advancing the run.
func (s *Session) Apply(in core.InputFrame, now time.Time) core.StepResult {
	for _, a := range in.Actions {
		s.apply(a, now)
	}
	return core.StepResult{State: s.gameState()}
}

// apply dispatches a single semantic action.
func (s *Session) apply(a core.Action, now time.Time) {
	switch a {
	case core.ActionUp:
		s.ChangeHeading(DirUp)
	case core.ActionDown:
		s.ChangeHeading(DirDown)
	case core.ActionLeft:
		s.ChangeHeading(DirLeft)
	case core.ActionRight:
		s.ChangeHeading(DirRight)
	case core.ActionSpeedUp:
		s.IncreaseSpeed()
	case core.ActionSpeedDown:
		s.DecreaseSpeed()
	case core.ActionPause:
		s.TogglePause(now)
	case core.ActionRestart:
		s.Reset(now)
	case core.ActionBoostStart:
		s.StartBoost(now)
	case core.ActionBoostStop:
		s.StopBoost()
	case core.ActionStart:
		s.Start(now)
	case core.ActionBack:
		s.ReturnToMenu(now)
	}
}

// Update advances the simulation to now. It returns true when the actor
// moved. Nothing happens unless the session is Running.
func (s *Session) Update(now time.Time) bool {
	s.tick++
	if s.state != StateRunning {
		return false
	}

	dt := now.Sub(s.lastUpdate)
	if dt < 0 {
		dt = 0
	}
	s.lastUpdate = now
	s.activeTime += dt
	a := s.actor

	if s.timing.BoostExpired(now, a.boostStart, a.boosting) {
		a.StopBoost()
		s.logger.Debug("boost expired")
	}

	if s.spawner.MaybeActivateBonus(a.score, a.body, now) {
		s.logger.Debug("bonus food spawned", "pos", s.spawner.bonus.Pos, "next", s.spawner.nextBonusThreshold)
	}
	if s.spawner.TickBonusExpiry(a.body, now) {
		s.logger.Debug("bonus food expired")
	}

	s.feedback.Tick(dt)

	moved := false
	if s.timing.ShouldStep(now, s.lastStep, a.speedTier, a.boosting) {
		s.lastStep = now
		if a.Step(s.cfg.Grid.Width, s.cfg.Grid.Height) == StepCollided {
			s.state = StateOver
			a.StopBoost()
			s.logger.Info("game over", "score", a.score, "length", len(a.body))
			return false
		}
		moved = true

		head := a.Head()
		if s.spawner.StandardAt(head) {
			a.Grow(s.cfg.Food.StandardPoints)
			s.checkFeedback()
			s.spawner.ConsumeStandard(a.body)
			s.logger.Debug("food eaten", "score", a.score)
		}
		if s.spawner.BonusAt(head) {
			a.Grow(s.cfg.Food.BonusPoints)
			s.checkFeedback()
			s.spawner.ConsumeBonus(a.body)
			s.logger.Debug("bonus food eaten", "score", a.score)
		}
	}

	s.checkFeedback()
	return moved
}

// checkFeedback shows an encouragement message when the score has crossed a
// band since the last one.
func (s *Session) checkFeedback() {
	a := s.actor
	if !CheckThreshold(a.score, a.lastFeedbackScore, s.cfg.Feedback.Band) {
		return
	}
	a.lastFeedbackScore = a.score
	phrases := s.cfg.Feedback.Phrases
	if len(phrases) == 0 {
		return
	}
	msg := phrases[s.rng.Intn(len(phrases))]
	s.feedback.Show(msg, s.cfg.Feedback.Duration)
	s.logger.Debug("encouragement", "score", a.score, "message", msg)
}

// Summary describes the current run. Zero before the first Start.
func (s *Session) Summary() RunSummary {
	if s.actor == nil {
		return RunSummary{}
	}
	return RunSummary{
		Score:    s.actor.score,
		Length:   len(s.actor.body),
		TopTier:  s.topTier,
		Duration: s.activeTime,
	}
}

func (s *Session) gameState() core.GameState {
	gs := core.GameState{
		GameOver: s.state == StateOver,
		Paused:   s.state == StatePaused,
		InMenu:   s.state == StateNotStarted,
	}
	if s.actor != nil {
		gs.Score = s.actor.score
	}
	return gs
}
