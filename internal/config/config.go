// Package config provides YAML-based tunables for the console and its
// scenes: timing cadences, physics constants and playfield geometry.
package config

// Config bundles the tunables for the whole console.
type Config struct {
	Console ConsoleConfig `yaml:"console"`
	Snake   SnakeConfig   `yaml:"snake"`
	Flappy  FlappyConfig  `yaml:"flappy"`
	Fish    FishConfig    `yaml:"fish"`
}

// ConsoleConfig defines parameters of the outer cooperative loop.
type ConsoleConfig struct {
	// MenuPauseMS is the fixed transition pause after a menu selection,
	// in milliseconds. It debounces a rapid repeated select.
	MenuPauseMS int `yaml:"menu_pause_ms"`

	// HudHeight is the height in pixels of the status band reserved at
	// the top of every game scene, excluded from gameplay bounds.
	HudHeight int `yaml:"hud_height"`
}

// SnakeConfig defines parameters for the snake scene.
type SnakeConfig struct {
	CellSize int `yaml:"cell_size"` // Grid cell edge in pixels
	TickMS   int `yaml:"tick_ms"`   // Movement tick interval
	StartLen int `yaml:"start_len"` // Initial body length
}

// FlappyConfig defines physics and obstacle parameters for the flappy scene.
type FlappyConfig struct {
	FrameMS      int     `yaml:"frame_ms"`       // Frame interval
	Gravity      float64 `yaml:"gravity"`        // Added to vertical velocity per frame
	FlapImpulse  float64 `yaml:"flap_impulse"`   // Velocity set on a flap (negative = up)
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity
	PipeSpeed    int     `yaml:"pipe_speed"`     // Leftward pixels per frame
	PipeWidth    int     `yaml:"pipe_width"`     // Pipe column width
	PipeGap      int     `yaml:"pipe_gap"`       // Vertical gap height
	BirdX        int     `yaml:"bird_x"`         // Fixed horizontal bird position
	BirdRadius   int     `yaml:"bird_radius"`    // Bird hitbox radius
}

// FishConfig defines parameters for the fish scene.
type FishConfig struct {
	FrameMS     int     `yaml:"frame_ms"`     // Frame interval
	Step        float64 `yaml:"step"`         // Pixels moved per active direction flag
	FishRadius  int     `yaml:"fish_radius"`  // Fish body radius
	FoodRadius  int     `yaml:"food_radius"`  // Food marker radius
	BubbleCount int     `yaml:"bubble_count"` // Ambient bubbles
	BubbleRise  int     `yaml:"bubble_rise"`  // Upward pixels per frame
}
