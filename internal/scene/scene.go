// Package scene defines the console's top-level mode contract and the
// cooperative state machine that multiplexes one active scene onto the
// shared display.
package scene

import (
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/input"
)

// Status reports a scene's externally visible state. The platform uses
// it to record finished-game scores; the core never persists anything.
type Status struct {
	Score int  // Current score
	Over  bool // Whether the scene sits on its game-over overlay
}

// Transition is returned by Update to request a scene switch.
// The zero value means "stay".
type Transition struct {
	To string // Target scene ID
}

// Stay is the no-transition result.
var Stay = Transition{}

// Scene is one of the console's interactive modes. Scenes own their
// state exclusively and draw incrementally to the shared surface they
// were constructed with; the console serializes all access.
//
// Enter performs the full reset for the mode: state re-initialization,
// a full clear of the display and the scene's static header text. Exit
// runs on the way out; the pair is invoked exactly once per transition.
//
// Update is called once per loop iteration. Scenes with a fixed cadence
// gate internally on now and treat off-cadence calls as no-ops, leaving
// the latched input untouched; when a gated tick actually runs, the
// scene consumes the input and clears it.
type Scene interface {
	ID() string
	Title() string
	Enter(now time.Time)
	Update(now time.Time, in *input.State) Transition
	Exit()
	Status() Status
}
