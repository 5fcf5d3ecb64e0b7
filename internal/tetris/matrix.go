// Package tetris implements the falling-block simulation: pieces, the board,
// collision, merging, rotation, line sweeps and scoring.
//
// The package has no platform dependencies. A Session owns all mutable state
// and is driven by explicit calls (Move, Drop, Rotate, Advance), so any
// frontend can run it on its own loop.
package tetris

import "strings"

// Cell is a single grid value: 0 is empty, 1-7 is the color index of the
// piece kind that occupies it.
type Cell uint8

// Empty is the value of an unoccupied cell.
const Empty Cell = 0

// Matrix is a rectangular grid of cells stored row-major: m[y][x].
type Matrix [][]Cell

// Point is a board-relative position (column X, row Y).
type Point struct {
	X, Y int
}

// NewMatrix allocates a zeroed matrix with the given width and height.
func NewMatrix(width, height int) Matrix {
	m := make(Matrix, height)
	for y := range m {
		m[y] = make([]Cell, width)
	}
	return m
}

// Width returns the number of columns.
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the number of rows.
func (m Matrix) Height() int {
	return len(m)
}

// At returns the cell at (x, y) and whether the coordinate is inside the matrix.
func (m Matrix) At(x, y int) (Cell, bool) {
	if y < 0 || y >= len(m) || x < 0 || x >= len(m[y]) {
		return Empty, false
	}
	return m[y][x], true
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	c := make(Matrix, len(m))
	for y, row := range m {
		c[y] = append([]Cell(nil), row...)
	}
	return c
}

// Equal reports whether both matrices have the same shape and cells.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for y := range m {
		if len(m[y]) != len(other[y]) {
			return false
		}
		for x := range m[y] {
			if m[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Fill sets every cell to v.
func (m Matrix) Fill(v Cell) {
	for y := range m {
		for x := range m[y] {
			m[y][x] = v
		}
	}
}

// Occupied returns the local coordinates of every nonzero cell, row by row.
func (m Matrix) Occupied() []Point {
	var pts []Point
	for y, row := range m {
		for x, v := range row {
			if v != Empty {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// String renders the matrix with '.' for empty cells and digits otherwise.
func (m Matrix) String() string {
	var sb strings.Builder
	for y, row := range m {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			if v == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(v))
			}
		}
	}
	return sb.String()
}
