// Package fish implements the aquarium chase scene: free 2D movement
// toward a food marker among decorative rising bubbles. There is no
// death condition; back is the only way out.
package fish

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

const (
	colorBG     = core.ColorDeepBlue
	colorHUD    = core.ColorNavy
	colorFish   = core.ColorOrange
	colorTail   = core.ColorYellow
	colorFood   = core.ColorGreen
	colorBubble = core.ColorSky
	colorText   = core.ColorWhite
)

const maxBubbles = 16

type point struct {
	X, Y int
}

type Game struct {
	surf display.Surface
	cfg  config.FishConfig
	rng  *rand.Rand

	w, h int
	hudH int

	x, y         float64
	prevX, prevY int

	food     point
	prevFood point

	bubbles []point
	prevBub []point

	score     int
	prevScore int

	lastFrame time.Time
}

func init() {
	registry.Register("fish", "Fish", func(env registry.Env) scene.Scene {
		return New(env)
	})
}

func New(env registry.Env) *Game {
	w, h := env.Surface.Size()
	n := env.Tunables.Fish.BubbleCount
	if n > maxBubbles {
		n = maxBubbles
	}
	return &Game{
		surf:    env.Surface,
		cfg:     env.Tunables.Fish,
		rng:     rand.New(rand.NewSource(env.Seed)),
		w:       w,
		h:       h,
		hudH:    env.Tunables.Console.HudHeight,
		bubbles: make([]point, n),
		prevBub: make([]point, n),
	}
}

func (g *Game) ID() string    { return "fish" }
func (g *Game) Title() string { return "Fish" }

func (g *Game) Enter(now time.Time) {
	g.x = float64(g.w / 2)
	g.y = float64(g.hudH + (g.h-g.hudH)/2)
	g.prevX, g.prevY = int(g.x), int(g.y)
	g.score = 0
	g.prevScore = -1
	g.lastFrame = now

	g.spawnFood()
	g.prevFood = g.food
	for i := range g.bubbles {
		g.bubbles[i] = point{
			X: g.rng.Intn(g.w),
			Y: g.hudH + g.rng.Intn(g.h-g.hudH),
		}
		g.prevBub[i] = g.bubbles[i]
	}

	g.surf.Clear(colorBG)
	g.drawHUD()
	g.drawBubbles()
	g.drawFood()
	g.drawFish()
}

func (g *Game) Update(now time.Time, in *input.State) scene.Transition {
	if now.Sub(g.lastFrame) < time.Duration(g.cfg.FrameMS)*time.Millisecond {
		return scene.Stay
	}
	g.lastFrame = now
	g.frame(in)
	in.Clear()
	return scene.Stay
}

func (g *Game) frame(in *input.State) {
	g.eraseFish()
	g.eraseFood()
	g.eraseBubbles()

	// Latched flags combine: right+down in one poll moves diagonally.
	if in.Up {
		g.y -= g.cfg.Step
	}
	if in.Down {
		g.y += g.cfg.Step
	}
	if in.Left {
		g.x -= g.cfg.Step
	}
	if in.Right {
		g.x += g.cfg.Step
	}
	g.x = core.ClampF(g.x, float64(g.cfg.FishRadius), float64(g.w-g.cfg.FishRadius))
	g.y = core.ClampF(g.y, float64(g.hudH+g.cfg.FishRadius), float64(g.h-g.cfg.FishRadius))

	for i := range g.bubbles {
		g.bubbles[i].Y -= g.cfg.BubbleRise
		if g.bubbles[i].Y < g.hudH {
			g.bubbles[i] = point{X: g.rng.Intn(g.w), Y: g.h - 1}
		}
	}

	if g.caught() {
		g.score++
		g.spawnFood()
	}

	g.drawHUD()
	g.drawBubbles()
	g.drawFood()
	g.drawFish()
}

// caught compares squared center distance against the summed radii.
func (g *Game) caught() bool {
	dx := g.x - float64(g.food.X)
	dy := g.y - float64(g.food.Y)
	reach := float64(g.cfg.FishRadius + g.cfg.FoodRadius)
	return dx*dx+dy*dy <= reach*reach
}

func (g *Game) spawnFood() {
	r := g.cfg.FoodRadius
	g.food = point{
		X: r + g.rng.Intn(g.w-2*r),
		Y: g.hudH + r + g.rng.Intn(g.h-g.hudH-2*r),
	}
}

func (g *Game) drawHUD() {
	if g.score == g.prevScore {
		return
	}
	g.prevScore = g.score
	g.surf.FillRect(0, 0, g.w, g.hudH, colorHUD)
	g.surf.DrawText(4, 4, "FISH", colorText, 1)
	g.surf.DrawText(g.w-52, 4, fmt.Sprintf("SCORE %d", g.score), core.ColorYellow, 1)
}

func (g *Game) drawFish() {
	x, y := int(g.x), int(g.y)
	r := g.cfg.FishRadius
	g.surf.FillCircle(x, y, r, colorFish)
	g.surf.FillTriangle(x-r, y, x-r-4, y-3, x-r-4, y+3, colorTail)
	g.prevX, g.prevY = x, y
}

func (g *Game) eraseFish() {
	r := g.cfg.FishRadius
	g.surf.FillRect(g.prevX-r-4, g.prevY-r, 2*r+5, 2*r+1, colorBG)
}

func (g *Game) drawFood() {
	g.surf.FillCircle(g.food.X, g.food.Y, g.cfg.FoodRadius, colorFood)
	g.prevFood = g.food
}

func (g *Game) eraseFood() {
	r := g.cfg.FoodRadius
	g.surf.FillRect(g.prevFood.X-r, g.prevFood.Y-r, 2*r+1, 2*r+1, colorBG)
}

func (g *Game) drawBubbles() {
	for i, b := range g.bubbles {
		if b.Y >= g.hudH {
			g.surf.FillCircle(b.X, b.Y, 1, colorBubble)
		}
		g.prevBub[i] = b
	}
}

func (g *Game) eraseBubbles() {
	for _, b := range g.prevBub {
		g.surf.FillRect(b.X-1, b.Y-1, 3, 3, colorBG)
	}
}

func (g *Game) Status() scene.Status {
	return scene.Status{Score: g.score}
}

func (g *Game) Exit() {}
