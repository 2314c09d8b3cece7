package types

// Direction represents a cardinal direction. The zero value None marks
// a heading that was never set; the simulation defaults it to Right.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Offset converts a Direction into a displacement vector.
func (d Direction) Offset() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// IsOpposite reports whether a and b form a 180-degree reversal.
func IsOpposite(a, b Direction) bool {
	return a != None && a == b.Opposite()
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}
