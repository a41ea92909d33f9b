// Package snake implements the grid-based snake scene: toroidal
// wraparound, self-collision death and incremental cell redraw.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/display"
	"github.com/vovakirdan/pocket-arcade/internal/input"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/scene"
)

// Scene colors.
const (
	colorBG   = core.ColorBlack
	colorBody = core.ColorGreen
	colorFood = core.ColorRed
	colorText = core.ColorGray
)

// cell is a grid coordinate.
type cell struct {
	X, Y int
}

// Game implements the snake scene.
type Game struct {
	surf display.Surface
	cfg  config.SnakeConfig
	rng  *rand.Rand

	gridW, gridH int

	// Snake state. Body is head-first with a fixed capacity of
	// gridW*gridH cells; growth past that is capped.
	body   []cell
	dx, dy int
	food   cell
	alive  bool
	score  int

	lastTick time.Time
}

// New creates the snake scene over the given environment.
func New(env registry.Env) *Game {
	return &Game{
		surf:  env.Surface,
		cfg:   env.Tunables.Snake,
		rng:   rand.New(rand.NewSource(env.Seed)),
		gridW: env.Runtime.ScreenW / env.Tunables.Snake.CellSize,
		gridH: env.Runtime.ScreenH / env.Tunables.Snake.CellSize,
	}
}

func init() {
	registry.Register("snake", "Snake", func(env registry.Env) scene.Scene {
		return New(env)
	})
}

// ID returns the scene identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Enter resets the whole scene: state, screen, header text. Also used
// for the in-place retry from the game-over overlay.
func (g *Game) Enter(now time.Time) {
	g.score = 0
	g.alive = true
	g.lastTick = now

	startLen := core.Clamp(g.cfg.StartLen, 1, g.gridW)
	g.body = make([]cell, startLen, g.gridW*g.gridH)
	for i := range g.body {
		g.body[i] = cell{X: g.gridW/2 - i, Y: g.gridH / 2}
	}
	g.dx, g.dy = 1, 0

	g.surf.Clear(colorBG)
	display.DrawTextCentered(g.surf, 4, "SNAKE", colorText, 1)
	for _, c := range g.body {
		g.drawCell(c, colorBody)
	}
	g.spawnFood()
	g.drawCell(g.food, colorFood)
}

// Exit is a no-op; the menu clears the screen on entry.
func (g *Game) Exit() {}

// Update runs one loop iteration. Movement happens only when the tick
// interval has elapsed; iterations in between leave the latched input
// untouched so no command is lost.
func (g *Game) Update(now time.Time, in *input.State) scene.Transition {
	if !g.alive {
		if in.Select {
			in.Clear()
			g.Enter(now)
		}
		return scene.Stay
	}

	if now.Sub(g.lastTick) < time.Duration(g.cfg.TickMS)*time.Millisecond {
		return scene.Stay
	}
	g.lastTick = now

	g.step(in)
	in.Clear()

	if !g.alive {
		g.drawGameOver()
	}
	return scene.Stay
}

// step advances the snake one cell and processes direction input for
// the next tick.
func (g *Game) step(in *input.State) {
	// Erase the tail cell before the shift frees it.
	g.drawCell(g.body[len(g.body)-1], colorBG)

	// Shift every segment one position toward the head.
	for i := len(g.body) - 1; i > 0; i-- {
		g.body[i] = g.body[i-1]
	}

	// Advance the head with toroidal wraparound: no wall death.
	head := g.body[0]
	head.X = (head.X + g.dx + g.gridW) % g.gridW
	head.Y = (head.Y + g.dy + g.gridH) % g.gridH
	g.body[0] = head

	// Self-collision ends the game but rendering continues one more
	// frame: death is detected, not prevented.
	for i := 1; i < len(g.body); i++ {
		if g.body[i] == head {
			g.alive = false
			break
		}
	}

	g.drawCell(head, colorBody)

	if g.alive && head == g.food {
		g.eat()
	}

	// Direction changes are accepted only on the axis orthogonal to
	// current travel and take effect on the next tick.
	switch {
	case in.Up && g.dy == 0:
		g.dx, g.dy = 0, -1
	case in.Down && g.dy == 0:
		g.dx, g.dy = 0, 1
	case in.Left && g.dx == 0:
		g.dx, g.dy = -1, 0
	case in.Right && g.dx == 0:
		g.dx, g.dy = 1, 0
	}
}

// eat grows the snake and respawns the food. The new tail duplicates
// the current last segment and is not drawn this tick; its visual
// appearance catches up on the next tick's shift.
func (g *Game) eat() {
	g.score++
	if len(g.body) < cap(g.body) {
		g.body = append(g.body, g.body[len(g.body)-1])
	}
	// A body filling the whole grid leaves no cell to sample.
	if len(g.body) < cap(g.body) {
		g.spawnFood()
		g.drawCell(g.food, colorFood)
	}
}

// spawnFood picks a uniformly random grid cell, rejection-sampling away
// cells occupied by the body.
func (g *Game) spawnFood() {
	for {
		c := cell{X: g.rng.Intn(g.gridW), Y: g.rng.Intn(g.gridH)}
		if !g.occupied(c) {
			g.food = c
			return
		}
	}
}

// occupied reports whether any body segment sits on c.
func (g *Game) occupied(c cell) bool {
	for _, seg := range g.body {
		if seg == c {
			return true
		}
	}
	return false
}

// drawCell paints one grid cell.
func (g *Game) drawCell(c cell, color core.Color) {
	cs := g.cfg.CellSize
	g.surf.FillRect(c.X*cs, c.Y*cs, cs, cs, color)
}

// drawGameOver paints the terminal overlay. Select retries in place;
// back returns to the menu.
func (g *Game) drawGameOver() {
	w, h := g.surf.Size()
	g.surf.FillRect(8, h/2-22, w-16, 44, core.ColorDarkGray)
	display.DrawTextCentered(g.surf, h/2-16, "GAME OVER", core.ColorWhite, 1)
	display.DrawTextCentered(g.surf, h/2-4, fmt.Sprintf("SCORE %d", g.score), core.ColorYellow, 1)
	display.DrawTextCentered(g.surf, h/2+10, "S RETRY  B MENU", colorText, 1)
}

// Status reports the score and whether the game sits on its overlay.
func (g *Game) Status() scene.Status {
	return scene.Status{Score: g.score, Over: !g.alive}
}
