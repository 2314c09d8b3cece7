// Command snake-term runs the same simulation core as the raylib
// frontend, drawn with ANSI escapes in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/eiannone/keyboard"
	"golang.org/x/exp/rand"

	"github.com/CJendantix/snake/game"
	"github.com/CJendantix/snake/game/types"
)

const framesPerSecond = 30

func main() {
	gridWidth := flag.Int("grid-width", 25, "Grid width in cells")
	gridHeight := flag.Int("grid-height", 25, "Grid height in cells")
	interval := flag.Duration("interval", 100*time.Millisecond, "Time between snake moves")
	flag.Parse()

	keys, err := keyboard.GetKeys(16)
	if err != nil {
		log.Fatalf("open keyboard: %v", err)
	}
	defer keyboard.Close()

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	g := game.NewGame(*gridWidth, *gridHeight, rng)
	g.Interval = float32(interval.Seconds())

	ticker := time.NewTicker(time.Second / framesPerSecond)
	defer ticker.Stop()

	fmt.Print("\x1b[2J\x1b[?25l") // clear screen, hide cursor
	defer fmt.Print("\x1b[?25h\n")

	last := time.Now()
	for {
		select {
		case ev := <-keys:
			if ev.Err != nil {
				log.Fatalf("keyboard: %v", ev.Err)
			}
			if quit := handleKey(g, ev); quit {
				log.Printf("session %s over: %s", g.Stats.UUID, g.Stats.Summary())
				return
			}
		case now := <-ticker.C:
			g.Advance(float32(now.Sub(last).Seconds()))
			last = now
			draw(g)
		}
	}
}

// handleKey maps one key event to a queued direction change. It
// reports whether the player asked to quit.
func handleKey(g *game.Game, ev keyboard.KeyEvent) bool {
	switch ev.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return true
	case keyboard.KeyArrowUp:
		g.Enqueue(types.Up)
	case keyboard.KeyArrowDown:
		g.Enqueue(types.Down)
	case keyboard.KeyArrowLeft:
		g.Enqueue(types.Left)
	case keyboard.KeyArrowRight:
		g.Enqueue(types.Right)
	}
	switch ev.Rune {
	case 'q':
		return true
	case 'w':
		g.Enqueue(types.Up)
	case 's':
		g.Enqueue(types.Down)
	case 'a':
		g.Enqueue(types.Left)
	case 'd':
		g.Enqueue(types.Right)
	}
	return false
}

func draw(g *game.Game) {
	occupied := make(map[types.Point]bool, g.Snake.Len())
	for _, p := range g.Snake.Body {
		occupied[p] = true
	}

	var b strings.Builder
	b.WriteString("\x1b[H")
	fmt.Fprintf(&b, "Score: %d  High: %d  Games: %d\x1b[K\r\n",
		g.Score, g.Stats.SessionHigh, g.Stats.GamesPlayed)

	border := "+" + strings.Repeat("-", g.Grid.Width*2) + "+\r\n"
	b.WriteString(border)
	for y := 0; y < g.Grid.Height; y++ {
		b.WriteString("|")
		for x := 0; x < g.Grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			switch {
			case p == g.Snake.Head():
				b.WriteString("@@")
			case occupied[p]:
				b.WriteString("##")
			case p == g.Food:
				b.WriteString("()")
			default:
				b.WriteString("  ")
			}
		}
		b.WriteString("|\r\n")
	}
	b.WriteString(border)

	fmt.Print(b.String())
}
