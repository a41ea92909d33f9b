// Package flappy implements the flappy scene: continuous vertical
// physics against a conveyor of three recycled pipe pairs.
package flappy

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
	colorBG   = core.ColorDeepBlue
	colorHUD  = core.ColorNavy
	colorPipe = core.ColorGreen
	colorBird = core.ColorYellow
	colorBeak = core.ColorOrange
)

// pipeCount is the size of the recycled obstacle set.
const pipeCount = 3

// pipe is one obstacle pair: a column with a vertical gap.
type pipe struct {
	x    int // Left edge
	gapY int // Top of the gap
}

// Game implements the flappy scene.
type Game struct {
	surf display.Surface
	cfg  config.FlappyConfig
	rng  *rand.Rand

	w, h int
	hudH int

	y, vy float64
	prevY int // Bird position at the last draw, for erasing

	pipes [pipeCount]pipe
	prevX [pipeCount]int

	score     int
	prevScore int
	alive     bool

	lastFrame time.Time
}

// New creates the flappy scene over the given environment.
func New(env registry.Env) *Game {
	return &Game{
		surf: env.Surface,
		cfg:  env.Tunables.Flappy,
		rng:  rand.New(rand.NewSource(env.Seed)),
		w:    env.Runtime.ScreenW,
		h:    env.Runtime.ScreenH,
		hudH: env.Tunables.Console.HudHeight,
	}
}

func init() {
	registry.Register("flappy", "Flappy", func(env registry.Env) scene.Scene {
		return New(env)
	})
}

// ID returns the scene identifier.
func (g *Game) ID() string { return "flappy" }

// Title returns the display name.
func (g *Game) Title() string { return "Flappy" }

// Enter resets the scene and draws the static frame: background, HUD
// band, initial pipe conveyor and bird.
func (g *Game) Enter(now time.Time) {
	g.score = 0
	g.prevScore = -1 // Force the first HUD draw
	g.alive = true
	g.lastFrame = now
	g.y = float64(g.hudH + (g.h-g.hudH)/2)
	g.vy = 0
	g.prevY = int(g.y)

	spacing := (g.w + g.cfg.PipeWidth) / pipeCount
	for i := range g.pipes {
		g.pipes[i] = pipe{
			x:    g.w + i*spacing,
			gapY: g.randGapY(),
		}
		g.prevX[i] = g.pipes[i].x
	}

	g.surf.Clear(colorBG)
	g.drawHUD()
	for _, p := range g.pipes {
		g.drawPipe(p, colorPipe)
	}
	g.drawBird(int(g.y), colorBird)
}

// Exit is a no-op; the menu clears the screen on entry.
func (g *Game) Exit() {}

// Update runs one loop iteration at the fixed frame cadence.
func (g *Game) Update(now time.Time, in *input.State) scene.Transition {
	if !g.alive {
		if in.Select {
			in.Clear()
			g.Enter(now)
		}
		return scene.Stay
	}

	if now.Sub(g.lastFrame) < time.Duration(g.cfg.FrameMS)*time.Millisecond {
		return scene.Stay
	}
	g.lastFrame = now

	g.frame(in)
	in.Clear()

	if !g.alive {
		g.drawGameOver()
	}
	return scene.Stay
}

// frame advances physics and the conveyor by one step.
func (g *Game) frame(in *input.State) {
	// Erase the bird and every pipe at their previous positions.
	g.eraseBird(g.prevY)
	for _, px := range g.prevX {
		g.surf.FillRect(px, g.hudH, g.cfg.PipeWidth, g.h-g.hudH, colorBG)
	}

	// Gravity, then the single-tap flap impulse, then integrate.
	g.vy += g.cfg.Gravity
	if g.vy > g.cfg.MaxFallSpeed {
		g.vy = g.cfg.MaxFallSpeed
	}
	if in.Select {
		g.vy = g.cfg.FlapImpulse
	}
	g.y += g.vy

	// Advance the conveyor; a pipe fully past the left edge recycles to
	// past the right edge and counts as passed.
	for i := range g.pipes {
		g.pipes[i].x -= g.cfg.PipeSpeed
		if g.pipes[i].x+g.cfg.PipeWidth < 0 {
			g.pipes[i].x = g.w + g.rng.Intn(g.cfg.PipeWidth*2)
			g.pipes[i].gapY = g.randGapY()
			g.score++
		}
	}

	g.checkCollisions()

	// Redraw: pipes, bird, then the score overlay when it changed.
	for i, p := range g.pipes {
		g.drawPipe(p, colorPipe)
		g.prevX[i] = p.x
	}
	g.drawBird(int(g.y), colorBird)
	g.prevY = int(g.y)

	if g.score != g.prevScore {
		g.drawHUD()
	}
}

// checkCollisions ends the game when the bird leaves the vertical play
// band or overlaps a pipe outside its gap.
func (g *Game) checkCollisions() {
	r := g.cfg.BirdRadius
	top := int(g.y) - r
	bottom := int(g.y) + r

	if top < g.hudH || bottom >= g.h {
		g.alive = false
		return
	}

	bird := core.NewRect(g.cfg.BirdX-r, top, 2*r, 2*r)
	for _, p := range g.pipes {
		column := core.NewRect(p.x, g.hudH, g.cfg.PipeWidth, g.h-g.hudH)
		if !bird.Intersects(column) {
			continue
		}
		if top < p.gapY || bottom > p.gapY+g.cfg.PipeGap {
			g.alive = false
			return
		}
	}
}

// randGapY picks a gap top leaving margin inside the play band.
func (g *Game) randGapY() int {
	min := g.hudH + 4
	max := g.h - g.cfg.PipeGap - 4
	return min + g.rng.Intn(max-min)
}

// drawPipe paints both halves of an obstacle pair.
func (g *Game) drawPipe(p pipe, c core.Color) {
	g.surf.FillRect(p.x, g.hudH, g.cfg.PipeWidth, p.gapY-g.hudH, c)
	bottomY := p.gapY + g.cfg.PipeGap
	g.surf.FillRect(p.x, bottomY, g.cfg.PipeWidth, g.h-bottomY, c)
}

// drawBird paints the bird: a round body with a beak triangle.
func (g *Game) drawBird(y int, c core.Color) {
	r := g.cfg.BirdRadius
	g.surf.FillCircle(g.cfg.BirdX, y, r, c)
	if c != colorBG {
		g.surf.FillTriangle(g.cfg.BirdX+r, y-2, g.cfg.BirdX+r+3, y, g.cfg.BirdX+r, y+2, colorBeak)
	}
}

// eraseBird overdraws the bird's previous bounding box, beak included.
func (g *Game) eraseBird(y int) {
	r := g.cfg.BirdRadius
	g.surf.FillRect(g.cfg.BirdX-r-1, y-r-1, 2*r+6, 2*r+3, colorBG)
}

// drawHUD repaints the status band with the current score.
func (g *Game) drawHUD() {
	g.surf.FillRect(0, 0, g.w, g.hudH, colorHUD)
	g.surf.DrawText(4, 4, "FLAPPY", core.ColorWhite, 1)
	g.surf.DrawText(g.w-52, 4, fmt.Sprintf("SCORE %d", g.score), core.ColorYellow, 1)
	g.prevScore = g.score
}

// drawGameOver paints the terminal overlay. Select retries in place;
// back returns to the menu.
func (g *Game) drawGameOver() {
	g.surf.FillRect(8, g.h/2-22, g.w-16, 44, core.ColorDarkGray)
	display.DrawTextCentered(g.surf, g.h/2-16, "GAME OVER", core.ColorWhite, 1)
	display.DrawTextCentered(g.surf, g.h/2-4, fmt.Sprintf("SCORE %d", g.score), core.ColorYellow, 1)
	display.DrawTextCentered(g.surf, g.h/2+10, "S RETRY  B MENU", core.ColorGray, 1)
}

// Status reports the score and whether the game sits on its overlay.
func (g *Game) Status() scene.Status {
	return scene.Status{Score: g.score, Over: !g.alive}
}
