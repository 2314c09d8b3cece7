package types

import "testing"

var cardinals = []Direction{Up, Down, Left, Right}

func TestOffset(t *testing.T) {
	want := map[Direction]Point{
		Up:    {X: 0, Y: -1},
		Down:  {X: 0, Y: 1},
		Left:  {X: -1, Y: 0},
		Right: {X: 1, Y: 0},
		None:  {},
	}
	for dir, offset := range want {
		if got := dir.Offset(); got != offset {
			t.Errorf("%v.Offset() = %v, want %v", dir, got, offset)
		}
	}
}

func TestOppositeProperties(t *testing.T) {
	for _, d := range cardinals {
		if !IsOpposite(d, d.Opposite()) {
			t.Errorf("IsOpposite(%v, %v) = false, want true", d, d.Opposite())
		}
		if IsOpposite(d, d) {
			t.Errorf("IsOpposite(%v, %v) = true, want false", d, d)
		}
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("%v.Opposite().Opposite() = %v, want %v", d, got, d)
		}
	}
}

func TestOppositePairs(t *testing.T) {
	if Up.Opposite() != Down || Left.Opposite() != Right {
		t.Errorf("unexpected opposite pairs: up->%v left->%v", Up.Opposite(), Left.Opposite())
	}
}

func TestNoneIsNeverOpposite(t *testing.T) {
	for _, d := range cardinals {
		if IsOpposite(None, d) || IsOpposite(d, None) {
			t.Errorf("None must not be opposite to %v", d)
		}
	}
}
