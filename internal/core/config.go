package core

// The logical display size of the handheld, post-rotation.
// Origin is top-left.
const (
	ScreenW = 128
	ScreenH = 160
)

// RuntimeConfig contains configuration passed to scenes at initialization.
// Scenes use this for screen geometry and deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Display width in pixels
	ScreenH  int   // Display height in pixels
	PollRate int   // Outer loop polls per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig matching the handheld's display.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  ScreenW,
		ScreenH:  ScreenH,
		PollRate: 120,
		Seed:     0, // 0 means use current time in platform layer
	}
}
