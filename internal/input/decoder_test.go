package input

import (
	"strings"
	"testing"
)

func TestDecoderLatchesCommands(t *testing.T) {
	tests := []struct {
		name string
		feed string
		want State
	}{
		{"up", "U", State{Up: true}},
		{"down", "D", State{Down: true}},
		{"left", "L", State{Left: true}},
		{"right", "R", State{Right: true}},
		{"select", "S", State{Select: true}},
		{"back", "B", State{Back: true}},
		{"next alias maps to down", "N", State{Down: true}},
		{"prev alias maps to up", "P", State{Up: true}},
		{"case insensitive", "u", State{Up: true}},
		{"unknown bytes ignored", "XYZ!7\n", State{}},
		{"or-combined in one poll", "RD", State{Right: true, Down: true}},
		{"duplicates are idempotent", "SSSS", State{Select: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDecoder()
			d.FeedString(tc.feed)
			if got := *d.Poll(); got != tc.want {
				t.Errorf("Poll() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestDecoderFlagsPersistAcrossPolls(t *testing.T) {
	d := NewDecoder()
	d.FeedString("S")
	d.Poll()

	// No new bytes: the latched flag must survive further polls.
	for i := 0; i < 5; i++ {
		if !d.Poll().Select {
			t.Fatal("latched Select flag lost before Clear")
		}
	}

	d.Clear()
	if d.Poll().Any() {
		t.Error("Clear should reset all flags")
	}
}

func TestDecoderAccumulatesAcrossPolls(t *testing.T) {
	d := NewDecoder()
	d.FeedString("U")
	d.Poll()
	d.FeedString("L")

	got := *d.Poll()
	if !got.Up || !got.Left {
		t.Errorf("flags should OR-merge across polls without Clear, got %+v", got)
	}
}

func TestDecoderPollNeverBlocks(t *testing.T) {
	d := NewDecoder()
	// Empty buffer: must return immediately.
	if d.Poll().Any() {
		t.Error("empty poll should report no flags")
	}
}

func TestDecoderDropsWhenBufferFull(t *testing.T) {
	d := NewDecoder()
	// Way past the buffer capacity; Feed must not block or panic.
	d.FeedString(strings.Repeat("U", 1000))
	if !d.Poll().Up {
		t.Error("buffered bytes should still latch")
	}
}

func TestDecoderPump(t *testing.T) {
	d := NewDecoder()
	if err := d.Pump(strings.NewReader("uRx")); err != nil {
		t.Fatalf("Pump() failed: %v", err)
	}

	got := *d.Poll()
	want := State{Up: true, Right: true}
	if got != want {
		t.Errorf("Poll() after Pump = %+v, expected %+v", got, want)
	}
}
