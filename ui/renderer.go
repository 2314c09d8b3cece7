package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/CJendantix/snake/game"
	"github.com/CJendantix/snake/game/types"
)

// BorderThickness is the playfield frame width in pixels.
const BorderThickness = 2

var (
	snakeHeadColor = rl.Color{R: 71, G: 130, B: 255, A: 255}
	borderBg       = rl.Color{R: 160, G: 255, B: 112, A: 255}
)

// Renderer draws the game into the raylib window. The window is
// resizable, so every frame recomputes the cell size and the centering
// offset from the live screen dimensions.
type Renderer struct {
	screenWidth  int
	screenHeight int
	cellSize     int
	offsetX      int
	offsetY      int
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions re-reads the window size. The cell layout itself is
// recomputed in Draw, which knows the grid.
func (r *Renderer) UpdateDimensions() {
	r.screenWidth = rl.GetScreenWidth()
	r.screenHeight = rl.GetScreenHeight()
}

func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions()

	r.cellSize = CellSize(g.Grid.Width, g.Grid.Height, r.screenWidth, r.screenHeight, BorderThickness)
	if r.cellSize < 1 {
		r.cellSize = 1
	}
	r.offsetX, r.offsetY = Offset(g.Grid.Width, g.Grid.Height, r.cellSize, r.screenWidth, r.screenHeight)

	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	fieldW := r.cellSize * g.Grid.Width
	fieldH := r.cellSize * g.Grid.Height

	// Playfield background and frame.
	rl.DrawRectangle(
		int32(r.offsetX-BorderThickness), int32(r.offsetY-BorderThickness),
		int32(fieldW+BorderThickness*2), int32(fieldH+BorderThickness*2),
		borderBg)
	rl.DrawRectangleLinesEx(rl.Rectangle{
		X:      float32(r.offsetX - BorderThickness),
		Y:      float32(r.offsetY - BorderThickness),
		Width:  float32(fieldW + BorderThickness*2),
		Height: float32(fieldH + BorderThickness*2),
	}, BorderThickness, rl.Black)

	r.drawCell(g.Food, rl.Red)

	// The body fades from the head color toward black along the tail.
	length := g.Snake.Len()
	for i, p := range g.Snake.Body {
		factor := (length - i) * 255 / length
		r.drawCell(p, rl.Color{
			R: uint8(int(snakeHeadColor.R) * factor / 255),
			G: uint8(int(snakeHeadColor.G) * factor / 255),
			B: uint8(int(snakeHeadColor.B) * factor / 255),
			A: 255,
		})
	}

	r.drawHUD(g)
	rl.EndDrawing()
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	rl.DrawRectangle(
		int32(r.offsetX+p.X*r.cellSize),
		int32(r.offsetY+p.Y*r.cellSize),
		int32(r.cellSize), int32(r.cellSize), color)
}

func (r *Renderer) drawHUD(g *game.Game) {
	fontSize := int32(r.screenHeight / 40)
	if fontSize < 10 {
		fontSize = 10
	}

	stats := g.Stats
	duration := stats.Elapsed()
	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60
	seconds := int(duration.Seconds()) % 60

	scoreText := fmt.Sprintf("Score: %d  High: %d  Games: %d", g.Score, stats.SessionHigh, stats.GamesPlayed)
	timeText := fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)

	rl.DrawText(scoreText, 10, 10, fontSize, rl.DarkGray)
	rl.DrawText(timeText, 10, 10+fontSize+5, fontSize, rl.DarkGray)
}
