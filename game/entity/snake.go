package entity

import (
	"golang.org/x/exp/slices"

	"github.com/CJendantix/snake/game/types"
)

// Snake is the ordered body of the player snake. The head is the first
// element, the tail the last. The body never holds duplicate cells; the
// collision check enforces that before every move.
type Snake struct {
	Body []types.Point
}

func NewSnake(body []types.Point) *Snake {
	return &Snake{Body: body}
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Tail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// PushHead grows the snake by one cell at the front.
func (s *Snake) PushHead(p types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = p
}

// PopTail removes the tail cell.
func (s *Snake) PopTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Contains reports whether p is one of the body cells.
func (s *Snake) Contains(p types.Point) bool {
	return slices.Contains(s.Body, p)
}
