package main

import (
	"flag"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"

	"github.com/CJendantix/snake/game"
	"github.com/CJendantix/snake/game/types"
	"github.com/CJendantix/snake/ui"
)

const (
	screenWidth  = 800
	screenHeight = 450
	targetFPS    = 60
)

func main() {
	gridWidth := flag.Int("grid-width", 25, "Grid width in cells")
	gridHeight := flag.Int("grid-height", 25, "Grid height in cells")
	interval := flag.Duration("interval", 100*time.Millisecond, "Time between snake moves")
	flag.Parse()

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))

	rl.InitWindow(screenWidth, screenHeight, "Snake")
	defer rl.CloseWindow()
	rl.SetWindowState(rl.FlagWindowResizable)
	rl.SetTargetFPS(targetFPS)

	g := game.NewGame(*gridWidth, *gridHeight, rng)
	g.Interval = float32(interval.Seconds())

	log.Printf("session %s started: %dx%d grid, %s per move", g.Stats.UUID, *gridWidth, *gridHeight, *interval)

	renderer := ui.NewRenderer()

	for !rl.WindowShouldClose() {
		handleInput(g)
		g.Advance(rl.GetFrameTime())
		renderer.Draw(g)
	}

	log.Printf("session %s over: %s", g.Stats.UUID, g.Stats.Summary())
}

// handleInput maps key-press edges to queued direction changes. Edges,
// not key-down level state: holding a key enqueues only once.
func handleInput(g *game.Game) {
	if rl.IsKeyPressed(rl.KeyA) || rl.IsKeyPressed(rl.KeyLeft) {
		g.Enqueue(types.Left)
	}
	if rl.IsKeyPressed(rl.KeyD) || rl.IsKeyPressed(rl.KeyRight) {
		g.Enqueue(types.Right)
	}
	if rl.IsKeyPressed(rl.KeyW) || rl.IsKeyPressed(rl.KeyUp) {
		g.Enqueue(types.Up)
	}
	if rl.IsKeyPressed(rl.KeyS) || rl.IsKeyPressed(rl.KeyDown) {
		g.Enqueue(types.Down)
	}
}
