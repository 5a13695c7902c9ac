package core

// RuntimeConfig contains configuration passed to the engine and platform at
// initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driving the simulation (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the coarse status of a session.
// Returned to the platform after every frame.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the run is paused
	InMenu   bool // Whether the session is waiting in the menu
}

// StepResult is returned by Session.Step after each frame.
type StepResult struct {
	State GameState
	Moved bool // Whether the actor advanced a grid step this frame
}
