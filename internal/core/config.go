package core

// RuntimeConfig contains configuration passed to scenes at initialization.
// Scenes use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic runs
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

// SceneState is the summary a scene reports to the platform after each step.
type SceneState struct {
	Tick     uint64 // Completed simulation ticks
	Active   int    // Entities currently simulated
	Paused   bool
	Seed     int64 // Seed the current run was started with
	Inspect  bool  // Whether the inspector overlay is requested
	HelpOpen bool  // Whether the key help is expanded
}

// StepResult is returned by Scene.Step() after each platform tick.
type StepResult struct {
	State    SceneState
	Advanced bool // False when paused and no single step was requested
}
