package scene

import (
	"testing"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/input"
)

// stubScene records lifecycle calls and returns a scripted transition.
type stubScene struct {
	id      string
	enters  int
	exits   int
	updates int
	next    Transition // returned from every Update
	lastIn  input.State
}

func (s *stubScene) ID() string        { return s.id }
func (s *stubScene) Title() string     { return s.id }
func (s *stubScene) Enter(time.Time)   { s.enters++ }
func (s *stubScene) Exit()             { s.exits++ }
func (s *stubScene) Status() Status    { return Status{} }
func (s *stubScene) Update(_ time.Time, in *input.State) Transition {
	s.updates++
	s.lastIn = *in
	return s.next
}

func newTestConsole(pause time.Duration) (*Console, *input.Decoder, *stubScene, *stubScene) {
	dec := input.NewDecoder()
	c := NewConsole(dec, pause)
	menu := &stubScene{id: "menu"}
	game := &stubScene{id: "snake"}
	c.Add(menu)
	c.Add(game)
	return c, dec, menu, game
}

func TestBootEntersHome(t *testing.T) {
	c, _, menu, _ := newTestConsole(0)
	now := time.Now()

	if err := c.Boot("menu", now); err != nil {
		t.Fatalf("Boot() failed: %v", err)
	}
	if menu.enters != 1 {
		t.Errorf("home scene entered %d times, expected 1", menu.enters)
	}
	if c.Active() != menu {
		t.Error("active scene should be the home scene after Boot")
	}
}

func TestBootUnknownHome(t *testing.T) {
	c, _, _, _ := newTestConsole(0)
	if err := c.Boot("nope", time.Now()); err == nil {
		t.Error("Boot with unknown home scene should fail")
	}
}

func TestMenuSelectionTransitions(t *testing.T) {
	c, _, menu, game := newTestConsole(0)
	now := time.Now()
	c.Boot("menu", now)

	menu.next = Transition{To: "snake"}
	c.Step(now)

	if menu.exits != 1 {
		t.Errorf("menu exited %d times, expected 1", menu.exits)
	}
	if game.enters != 1 {
		t.Errorf("game entered %d times, expected 1", game.enters)
	}
	if c.Active() != game {
		t.Error("active scene should be the game after the transition")
	}
}

func TestBackUnwindsToMenu(t *testing.T) {
	c, dec, menu, game := newTestConsole(0)
	now := time.Now()
	c.Boot("menu", now)
	menu.next = Transition{To: "snake"}
	c.Step(now)
	menu.next = Stay

	// Back from the game: immediate unwind, game's Update not called.
	dec.FeedString("B")
	c.Step(now.Add(time.Millisecond))

	if c.Active() != menu {
		t.Error("back should unwind to the menu")
	}
	if game.exits != 1 {
		t.Errorf("game exited %d times, expected 1", game.exits)
	}
	if game.updates != 0 {
		t.Errorf("game updated %d times after back, expected 0", game.updates)
	}
	if menu.enters != 2 {
		t.Errorf("menu entered %d times, expected 2 (boot + unwind)", menu.enters)
	}
}

func TestBackInMenuIsNotATransition(t *testing.T) {
	c, dec, menu, _ := newTestConsole(0)
	now := time.Now()
	c.Boot("menu", now)

	dec.FeedString("B")
	c.Step(now)

	if menu.enters != 1 {
		t.Error("back inside the menu must not re-enter it")
	}
	// The flag is left for the menu itself, which ignores it.
	if !menu.lastIn.Back {
		t.Error("menu update should still observe the latched back flag")
	}
}

func TestTransitionPauseSuspendsUpdates(t *testing.T) {
	pause := 400 * time.Millisecond
	c, _, menu, game := newTestConsole(pause)
	now := time.Now()
	c.Boot("menu", now)

	menu.next = Transition{To: "snake"}
	c.Step(now)
	menu.next = Stay

	// During the pause the game receives no updates.
	c.Step(now.Add(100 * time.Millisecond))
	c.Step(now.Add(399 * time.Millisecond))
	if game.updates != 0 {
		t.Errorf("game updated %d times during the pause, expected 0", game.updates)
	}

	// After the pause the loop resumes normally.
	c.Step(now.Add(pause))
	if game.updates != 1 {
		t.Errorf("game updated %d times after the pause, expected 1", game.updates)
	}
}

func TestInputDrainedDuringPause(t *testing.T) {
	pause := 400 * time.Millisecond
	c, dec, menu, game := newTestConsole(pause)
	now := time.Now()
	c.Boot("menu", now)
	menu.next = Transition{To: "snake"}
	c.Step(now)
	menu.next = Stay

	// Commands arriving during the pause stay latched for the new scene.
	dec.FeedString("U")
	c.Step(now.Add(100 * time.Millisecond))

	c.Step(now.Add(pause))
	if !game.lastIn.Up {
		t.Error("command latched during the pause should reach the next update")
	}
}

func TestSelectFlagClearedAcrossTransition(t *testing.T) {
	c, dec, menu, game := newTestConsole(0)
	now := time.Now()
	c.Boot("menu", now)

	dec.FeedString("S")
	menu.next = Transition{To: "snake"}
	c.Step(now)
	menu.next = Stay

	c.Step(now.Add(time.Millisecond))
	if game.lastIn.Select {
		t.Error("the select that committed the transition must not leak into the game")
	}
}

func TestUnknownTransitionIgnored(t *testing.T) {
	c, _, menu, _ := newTestConsole(0)
	now := time.Now()
	c.Boot("menu", now)

	menu.next = Transition{To: "tetris"}
	c.Step(now)

	if c.Active() != menu {
		t.Error("transition to an unregistered scene should be ignored")
	}
	if menu.exits != 0 {
		t.Error("menu should not exit on an ignored transition")
	}
}
