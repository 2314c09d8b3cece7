package game

import (
	"golang.org/x/exp/rand"

	"github.com/CJendantix/snake/game/entity"
	"github.com/CJendantix/snake/game/manager"
	"github.com/CJendantix/snake/game/types"
)

const (
	// MoveInterval is the default simulation cadence in seconds. Input
	// is sampled every frame; the snake advances once per interval.
	MoveInterval float32 = 0.1

	initialLength = 3
)

// Game owns the whole simulation state for one session: the snake
// body, the food cell, the committed heading, the buffered direction
// changes and the move timer. It has a single owner (the frontend
// loop) and is never touched concurrently.
type Game struct {
	Grid      types.Grid
	Snake     *entity.Snake
	Food      types.Point
	Direction types.Direction
	Score     int
	Stats     *SessionStats

	// Interval overrides MoveInterval when the frontend wants a
	// different speed.
	Interval float32

	input     *manager.InputManager
	food      *manager.FoodManager
	collision *manager.CollisionManager

	moveTimer     float32
	lastCollision manager.CollisionType
}

func NewGame(width, height int, rng *rand.Rand) *Game {
	g := &Game{
		Grid:      types.Grid{Width: width, Height: height},
		Direction: types.None,
		Interval:  MoveInterval,
		Stats:     NewSessionStats(),
		input:     manager.NewInputManager(),
		food:      manager.NewFoodManager(rng),
		collision: manager.NewCollisionManager(types.Grid{Width: width, Height: height}),
	}
	g.Reset()
	return g
}

// Enqueue buffers a direction-change request from the frontend.
// Requests that would reverse the snake onto itself are dropped by the
// input manager; this is policy, not an error.
func (g *Game) Enqueue(dir types.Direction) {
	g.input.Enqueue(g.Direction, dir)
}

// Tick advances the simulation one step and reports game over. On game
// over the body is left untouched so the caller decides when to Reset.
func (g *Game) Tick() bool {
	if dir, ok := g.input.Next(); ok {
		g.Direction = dir
	}

	newHead := g.Snake.Head().Add(g.Direction.Offset())

	// The tail cell is vacated on a normal move, so the head may
	// follow into it. Food never overlaps the body, so excluding the
	// tail is safe on the growing move too.
	neck := g.Snake.Body[:g.Snake.Len()-1]
	if c := g.collision.Check(newHead, neck); c != manager.NoCollision {
		g.lastCollision = c
		return true
	}

	g.Snake.PushHead(newHead)

	if newHead == g.Food {
		g.Score++
		g.Food = g.food.Place(g.Snake.Body, g.Grid)
	} else {
		g.Snake.PopTail()
	}

	return false
}

// Advance accumulates frame time and fires a simulation tick once the
// move interval has elapsed. Leftover fractional time is discarded
// rather than banked. A collision rolls the score into the session
// stats and resets the game immediately. It reports whether a tick
// fired.
func (g *Game) Advance(dt float32) bool {
	g.moveTimer += dt
	if g.moveTimer < g.Interval {
		return false
	}
	g.moveTimer = 0

	if g.Tick() {
		g.Stats.RecordGame(g.Score, g.lastCollision)
		g.Reset()
	}
	return true
}

// Reset reinitializes the session in place, preserving the grid
// dimensions. The snake respawns at the grid center, three cells long,
// laid out behind the head so it keeps pointing along the committed
// heading. The pending input and the move timer are cleared and the
// food is placed against the fresh body.
func (g *Game) Reset() {
	if g.Direction == types.None {
		g.Direction = types.Right
	}

	center := types.Point{X: g.Grid.Width / 2, Y: g.Grid.Height / 2}
	back := g.Direction.Opposite().Offset()

	body := make([]types.Point, initialLength)
	for i := range body {
		body[i] = types.Point{X: center.X + back.X*i, Y: center.Y + back.Y*i}
	}
	g.Snake = entity.NewSnake(body)

	g.input.Clear()
	g.moveTimer = 0
	g.Score = 0
	g.lastCollision = manager.NoCollision
	g.Food = g.food.Place(g.Snake.Body, g.Grid)
}
