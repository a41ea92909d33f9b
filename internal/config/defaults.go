package config

import (
	_ "embed"
)

//go:embed defaults/pocket.yaml
var defaultYAML []byte

// Default returns the built-in configuration, tuned for the 128x160
// display. Used as the last fallback when no YAML source is available.
func Default() Config {
	return Config{
		Console: ConsoleConfig{
			MenuPauseMS: 400,
			HudHeight:   16,
		},
		Snake: SnakeConfig{
			CellSize: 8,
			TickMS:   140,
			StartLen: 3,
		},
		Flappy: FlappyConfig{
			FrameMS:      16,
			Gravity:      0.12,
			FlapImpulse:  -2.4,
			MaxFallSpeed: 3.0,
			PipeSpeed:    2,
			PipeWidth:    12,
			PipeGap:      48,
			BirdX:        24,
			BirdRadius:   4,
		},
		Fish: FishConfig{
			FrameMS:     16,
			Step:        2.0,
			FishRadius:  5,
			FoodRadius:  3,
			BubbleCount: 6,
			BubbleRise:  1,
		},
	}
}
