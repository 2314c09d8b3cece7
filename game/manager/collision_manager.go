package manager

import (
	"golang.org/x/exp/slices"

	"github.com/CJendantix/snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// CollisionManager checks prospective head positions against the grid
// bounds and the snake body.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check classifies a prospective head position. Walls are checked
// before the body. The caller passes only the body cells that will
// still be occupied after the move, so a head following into the
// just-vacated tail cell is not a collision.
func (cm *CollisionManager) Check(pos types.Point, body []types.Point) CollisionType {
	if !cm.grid.Contains(pos) {
		return WallCollision
	}
	if slices.Contains(body, pos) {
		return SelfCollision
	}
	return NoCollision
}
