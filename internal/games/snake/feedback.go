package snake

import "time"

// CheckThreshold reports whether the score has gained at least one band since
// the last message. When it fires the caller records score as the new mark,
// so a jump across several bands yields one message.
func CheckThreshold(score, lastFired, band int) bool {
	return score >= lastFired+band
}

// Feedback is a timed encouragement message.
type Feedback struct {
	Message   string
	Remaining time.Duration
}

// Show displays msg for d.
func (f *Feedback) Show(msg string, d time.Duration) {
	f.Message = msg
	f.Remaining = d
}

// Tick counts the display timer down by dt, stopping at zero.
func (f *Feedback) Tick(dt time.Duration) {
	f.Remaining -= dt
	if f.Remaining < 0 {
		f.Remaining = 0
	}
}

// Visible reports whether the message is still on screen.
func (f Feedback) Visible() bool {
	return f.Remaining > 0
}
