package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	// No custom path and (most likely) no user/local config in test env:
	// the embedded YAML must produce a usable config.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Snake.CellSize <= 0 {
		t.Errorf("Snake.CellSize = %d, expected positive", cfg.Snake.CellSize)
	}
	if cfg.Snake.TickMS <= 0 {
		t.Errorf("Snake.TickMS = %d, expected positive", cfg.Snake.TickMS)
	}
	if cfg.Flappy.Gravity <= 0 {
		t.Errorf("Flappy.Gravity = %f, expected positive", cfg.Flappy.Gravity)
	}
	if cfg.Flappy.FlapImpulse >= 0 {
		t.Errorf("Flappy.FlapImpulse = %f, expected negative (up)", cfg.Flappy.FlapImpulse)
	}
	if cfg.Fish.BubbleCount <= 0 {
		t.Errorf("Fish.BubbleCount = %d, expected positive", cfg.Fish.BubbleCount)
	}
	if cfg.Console.HudHeight <= 0 {
		t.Errorf("Console.HudHeight = %d, expected positive", cfg.Console.HudHeight)
	}
}

func TestLoadEmbeddedMatchesHardcoded(t *testing.T) {
	embedded, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if embedded != Default() {
		t.Errorf("embedded defaults diverge from hardcoded Default():\n%+v\nvs\n%+v", embedded, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	custom := []byte("snake:\n  cell_size: 4\n  tick_ms: 99\n  start_len: 5\n")
	if err := os.WriteFile(path, custom, 0o600); err != nil {
		t.Fatalf("cannot write custom config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(custom) failed: %v", err)
	}

	if cfg.Snake.CellSize != 4 || cfg.Snake.TickMS != 99 || cfg.Snake.StartLen != 5 {
		t.Errorf("custom snake config not applied: %+v", cfg.Snake)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing explicit path should fail")
	}

	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("snake: [not a map"), 0o600); err != nil {
		t.Fatalf("cannot write bad config: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load of unparseable YAML should fail")
	}
}
