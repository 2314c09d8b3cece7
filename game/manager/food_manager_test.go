package manager

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/CJendantix/snake/game/types"
)

func newTestFoodManager(seed uint64) *FoodManager {
	return NewFoodManager(rand.New(rand.NewSource(seed)))
}

func TestPlaceAvoidsOccupied(t *testing.T) {
	fm := newTestFoodManager(1)
	grid := types.Grid{Width: 3, Height: 3}

	// Everything occupied except (1,1).
	occupied := make([]types.Point, 0, 8)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 1 && y == 1 {
				continue
			}
			occupied = append(occupied, types.Point{X: x, Y: y})
		}
	}

	for i := 0; i < 10; i++ {
		if got := fm.Place(occupied, grid); got != (types.Point{X: 1, Y: 1}) {
			t.Fatalf("Place() = %v, want (1,1)", got)
		}
	}
}

func TestPlaceStaysInBoundsAndOffSnake(t *testing.T) {
	fm := newTestFoodManager(42)
	grid := types.Grid{Width: 5, Height: 5}
	body := []types.Point{{X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}}

	for i := 0; i < 100; i++ {
		food := fm.Place(body, grid)
		if !grid.Contains(food) {
			t.Fatalf("Place() = %v, out of bounds", food)
		}
		for _, p := range body {
			if food == p {
				t.Fatalf("Place() = %v, on the snake", food)
			}
		}
	}
}

func TestPlaceFullGridSentinel(t *testing.T) {
	fm := newTestFoodManager(7)
	grid := types.Grid{Width: 2, Height: 2}
	occupied := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}

	if got := fm.Place(occupied, grid); got != (types.Point{}) {
		t.Errorf("Place() on full grid = %v, want (0,0) sentinel", got)
	}
}

func TestPlaceDeterministicForSeed(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	body := []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}

	a := newTestFoodManager(12345)
	b := newTestFoodManager(12345)
	for i := 0; i < 50; i++ {
		pa, pb := a.Place(body, grid), b.Place(body, grid)
		if pa != pb {
			t.Fatalf("placement diverged at call %d: %v vs %v", i, pa, pb)
		}
	}
}
