package scene

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/input"
)

// Console is the single-threaded cooperative scheduler. Each Step is one
// iteration of the control loop: drain the decoder, check the universal
// back command, dispatch to the active scene. The platform layer drives
// Step at the poll rate; there is no concurrency and no locking here.
type Console struct {
	dec    *input.Decoder
	scenes map[string]Scene
	active Scene
	home   string

	// Transition pause after a committed menu selection. Input keeps
	// draining while it runs; updates are suspended.
	pause       time.Duration
	pausedUntil time.Time
}

// NewConsole creates an empty console around the given decoder.
func NewConsole(dec *input.Decoder, menuPause time.Duration) *Console {
	return &Console{
		dec:    dec,
		scenes: make(map[string]Scene),
		pause:  menuPause,
	}
}

// Add registers a scene under its ID.
func (c *Console) Add(s Scene) {
	c.scenes[s.ID()] = s
}

// Boot enters the home scene (the menu). Home is also where the back
// command unwinds to from any other scene.
func (c *Console) Boot(home string, now time.Time) error {
	s, ok := c.scenes[home]
	if !ok {
		return fmt.Errorf("scene: unknown home scene %q", home)
	}
	c.home = home
	c.active = s
	c.active.Enter(now)
	return nil
}

// Launch switches straight into the given scene after Boot, keeping
// the home scene as the back target.
func (c *Console) Launch(id string, now time.Time) error {
	if _, ok := c.scenes[id]; !ok {
		return fmt.Errorf("scene: unknown scene %q", id)
	}
	c.switchTo(id, now)
	return nil
}

// Active returns the currently active scene, nil before Boot.
func (c *Console) Active() Scene {
	return c.active
}

// Step runs one iteration of the cooperative loop.
func (c *Console) Step(now time.Time) {
	in := c.dec.Poll()
	if c.active == nil {
		return
	}

	// Transition pause: keep latching input, mutate nothing.
	if now.Before(c.pausedUntil) {
		return
	}

	// Back unwinds to the menu with immediate effect, checked before the
	// scene update so it works mid-play and on game-over overlays alike.
	if in.Back && c.active.ID() != c.home {
		c.dec.Clear()
		c.switchTo(c.home, now)
		return
	}

	tr := c.active.Update(now, in)
	if tr.To == "" || tr.To == c.active.ID() {
		return
	}

	// A committed selection: debounce with the fixed transition pause.
	c.dec.Clear()
	c.pausedUntil = now.Add(c.pause)
	c.switchTo(tr.To, now)
}

// switchTo swaps scenes with an explicit exit/enter pair. Requests for
// unknown scenes are ignored; the menu only offers registered ones.
func (c *Console) switchTo(id string, now time.Time) {
	next, ok := c.scenes[id]
	if !ok {
		return
	}
	c.active.Exit()
	c.active = next
	c.active.Enter(now)
}
