// Package menu implements the console's launcher scene: a three-item
// list navigated with up/down and committed with select.
package menu

import (
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/display"
	"github.com/vovakirdan/pocket-arcade/internal/input"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/scene"
)

// Layout of the selection list.
const (
	listTop = 72 // Top edge of the item list
	rowH    = 22 // Height of one item row
	rowPad  = 4  // Gap between highlight box and text
)

// Launch order on the menu. Only registered scenes are offered.
var launchOrder = []string{"snake", "flappy", "fish"}

// item is one selectable menu entry.
type item struct {
	id    string
	label string
}

// Scene is the menu state: a selection index over the fixed items.
type Scene struct {
	surf  display.Surface
	items []item
	index int
}

// New creates the menu scene over the given environment.
func New(env registry.Env) *Scene {
	items := make([]item, 0, len(launchOrder))
	for _, id := range launchOrder {
		if registry.Exists(id) {
			items = append(items, item{id: id, label: registry.Title(id)})
		}
	}
	return &Scene{
		surf:  env.Surface,
		items: items,
	}
}

func init() {
	registry.Register("menu", "Menu", func(env registry.Env) scene.Scene {
		return New(env)
	})
}

// ID returns the scene identifier.
func (s *Scene) ID() string { return "menu" }

// Title returns the display name.
func (s *Scene) Title() string { return "Menu" }

// Enter resets the selection and redraws the whole menu screen.
func (s *Scene) Enter(now time.Time) {
	s.index = 0

	s.surf.Clear(core.ColorBlack)
	display.DrawTextCentered(s.surf, 18, "POCKET", core.ColorYellow, 2)
	display.DrawTextCentered(s.surf, 36, "ARCADE", core.ColorYellow, 2)
	s.drawList()

	_, h := s.surf.Size()
	display.DrawTextCentered(s.surf, h-12, "U/D PICK  S START", core.ColorGray, 1)
}

// Exit is a no-op; the next scene clears the screen on entry.
func (s *Scene) Exit() {}

// Update handles navigation. The menu has no tick cadence: it redraws
// the list region only when the selection actually changes.
func (s *Scene) Update(_ time.Time, in *input.State) scene.Transition {
	if len(s.items) == 0 || !in.Any() {
		return scene.Stay
	}
	defer in.Clear()

	if in.Select {
		return scene.Transition{To: s.items[s.index].id}
	}

	n := len(s.items)
	switch {
	case in.Up:
		s.index = (s.index + n - 1) % n
	case in.Down:
		s.index = (s.index + 1) % n
	default:
		return scene.Stay
	}
	s.drawList()
	return scene.Stay
}

// Status reports no score; the menu never ends.
func (s *Scene) Status() scene.Status { return scene.Status{} }

// drawList repaints only the selection list region, highlighting the
// current item.
func (s *Scene) drawList() {
	w, _ := s.surf.Size()
	s.surf.FillRect(0, listTop, w, rowH*len(s.items), core.ColorBlack)

	for i, it := range s.items {
		y := listTop + i*rowH
		if i == s.index {
			s.surf.FillRect(8, y, w-16, rowH-rowPad, core.ColorYellow)
			display.DrawTextCentered(s.surf, y+rowPad+1, it.label, core.ColorBlack, 1)
			continue
		}
		display.DrawTextCentered(s.surf, y+rowPad+1, it.label, core.ColorWhite, 1)
	}
}

// Index returns the current selection index.
func (s *Scene) Index() int { return s.index }
