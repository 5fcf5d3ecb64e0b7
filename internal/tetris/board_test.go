package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *Board, y int, v Cell) {
	for x := range b.cells[y] {
		b.cells[y][x] = v
	}
}

func TestSpawnNeverCollidesWithEmptyBoard(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	for _, kind := range Kinds {
		piece := NewPiece(kind)
		pos := Point{X: BoardWidth/2 - piece.Width()/2, Y: 0}
		assert.False(t, b.Collide(piece, pos), "kind %s collides at spawn", kind)
	}
}

func TestCollideBounds(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	o := NewPiece(KindO)

	tests := []struct {
		name     string
		pos      Point
		expected bool
	}{
		{"inside", Point{X: 4, Y: 5}, false},
		{"left edge", Point{X: 0, Y: 5}, false},
		{"right edge", Point{X: 8, Y: 5}, false},
		{"past left wall", Point{X: -1, Y: 5}, true},
		{"past right wall", Point{X: 9, Y: 5}, true},
		{"on floor", Point{X: 4, Y: 18}, false},
		{"below floor", Point{X: 4, Y: 19}, true},
		{"above top", Point{X: 4, Y: -1}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, b.Collide(o, tc.pos))
		})
	}
}

func TestCollideIgnoresEmptyPieceCells(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	// I piece occupies only local column 1, so column 0 may hang off the left edge.
	i := NewPiece(KindI)
	assert.False(t, b.Collide(i, Point{X: -1, Y: 0}))
	assert.True(t, b.Collide(i, Point{X: -2, Y: 0}))
}

func TestCollideOccupiedCell(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	b.cells[10][5] = 3
	o := NewPiece(KindO)

	assert.True(t, b.Collide(o, Point{X: 4, Y: 9}))
	assert.True(t, b.Collide(o, Point{X: 5, Y: 10}))
	assert.False(t, b.Collide(o, Point{X: 6, Y: 9}))
	assert.False(t, b.Collide(o, Point{X: 4, Y: 11}))
}

func TestMergeWritesOnlyFootprint(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	b.cells[19][0] = 7
	before := b.cells.Clone()

	piece := NewPiece(KindS)
	pos := Point{X: 3, Y: 10}
	b.Merge(piece, pos)

	footprint := make(map[Point]bool)
	for _, p := range piece.Occupied() {
		abs := Point{X: p.X + pos.X, Y: p.Y + pos.Y}
		footprint[abs] = true
		assert.Equal(t, piece[p.Y][p.X], b.cells[abs.Y][abs.X])
	}

	for y := range b.cells {
		for x := range b.cells[y] {
			if footprint[Point{X: x, Y: y}] {
				continue
			}
			assert.Equal(t, before[y][x], b.cells[y][x], "cell (%d,%d) changed", x, y)
		}
	}
}

func TestSweepSingleRow(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	fillRow(b, 19, 1)
	b.cells[18][0] = 3
	b.cells[17][9] = 4

	removed := b.Sweep()

	require.Equal(t, 1, removed)
	assert.Equal(t, Cell(3), b.cells[19][0], "row above should shift down")
	assert.Equal(t, Cell(4), b.cells[18][9])
	for x := range b.cells[0] {
		assert.Equal(t, Empty, b.cells[0][x], "top row should be empty")
	}
	assert.Equal(t, BoardHeight, b.Height())
}

func TestSweepAdjacentRows(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	fillRow(b, 18, 2)
	fillRow(b, 19, 1)
	b.cells[17][4] = 5

	require.Equal(t, 2, b.Sweep())
	assert.Equal(t, Cell(5), b.cells[19][4])
	assert.Equal(t, Empty, b.cells[18][4])
}

func TestSweepSeparatedRows(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	fillRow(b, 17, 1)
	b.cells[18][2] = 6
	fillRow(b, 19, 1)

	require.Equal(t, 2, b.Sweep())
	assert.Equal(t, Cell(6), b.cells[19][2])
	for y := 0; y < 19; y++ {
		for x := range b.cells[y] {
			assert.Equal(t, Empty, b.cells[y][x], "cell (%d,%d) should be empty", x, y)
		}
	}
}

func TestSweepNoFullRows(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	fillRow(b, 19, 1)
	b.cells[19][3] = Empty
	before := b.cells.Clone()

	assert.Equal(t, 0, b.Sweep())
	assert.True(t, before.Equal(b.cells))
}
