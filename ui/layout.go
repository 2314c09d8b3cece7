package ui

// CellSize returns the edge, in pixels, of the uniform square cell
// that fits a gridW x gridH playfield inside the viewport after
// reserving border pixels on every side. Integer floor division; a
// viewport smaller than the grid yields zero or a negative value, and
// the caller clamps before drawing.
func CellSize(gridW, gridH, viewportW, viewportH, border int) int {
	cellW := (viewportW - border*2) / gridW
	cellH := (viewportH - border*2) / gridH
	if cellW < cellH {
		return cellW
	}
	return cellH
}

// Offset returns the pixel origin that centers the playfield rectangle
// (cellSize*gridW by cellSize*gridH) inside the viewport.
func Offset(gridW, gridH, cellSize, viewportW, viewportH int) (int, int) {
	return (viewportW - cellSize*gridW) / 2, (viewportH - cellSize*gridH) / 2
}
