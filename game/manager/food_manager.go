package manager

import (
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"

	"github.com/CJendantix/snake/game/types"
)

// FoodManager picks food positions on cells not occupied by the snake.
// The generator is injected once per process so tests can seed it.
type FoodManager struct {
	rng *rand.Rand
}

func NewFoodManager(rng *rand.Rand) *FoodManager {
	return &FoodManager{rng: rng}
}

// Place returns a free cell chosen uniformly at random. When the snake
// fills the whole grid there is no legal cell left and Place falls back
// to (0,0) instead of failing.
func (fm *FoodManager) Place(occupied []types.Point, grid types.Grid) types.Point {
	free := make([]types.Point, 0, grid.Cells()-len(occupied))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !slices.Contains(occupied, p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}
	}
	return free[fm.rng.Intn(len(free))]
}
