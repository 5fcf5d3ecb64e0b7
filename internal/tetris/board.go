package tetris

// Default board dimensions.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Board is the arena of locked cells.
type Board struct {
	cells Matrix
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	return &Board{cells: NewMatrix(width, height)}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.cells.Width() }

// Height returns the number of rows.
func (b *Board) Height() int { return b.cells.Height() }

// Cells exposes the underlying matrix. Callers must not resize it.
func (b *Board) Cells() Matrix { return b.cells }

// Clear empties every cell.
func (b *Board) Clear() {
	b.cells.Fill(Empty)
}

// Collide reports whether piece placed at pos overlaps an occupied cell or
// any cell outside the board, including above the top row and below the floor.
func (b *Board) Collide(piece Matrix, pos Point) bool {
	for y, row := range piece {
		for x, v := range row {
			if v == Empty {
				continue
			}
			cell, ok := b.cells.At(x+pos.X, y+pos.Y)
			if !ok || cell != Empty {
				return true
			}
		}
	}
	return false
}

// Merge writes every occupied cell of piece into the board at pos.
// Cells that fall outside the board are skipped.
func (b *Board) Merge(piece Matrix, pos Point) {
	for _, p := range piece.Occupied() {
		x, y := p.X+pos.X, p.Y+pos.Y
		if _, ok := b.cells.At(x, y); ok {
			b.cells[y][x] = piece[p.Y][p.X]
		}
	}
}

// Sweep removes every full row, shifting the rows above it down and
// inserting an empty row at the top. Rows are scanned bottom to top and the
// same index is checked again after a removal, so stacked full rows are all
// removed in one call. Returns the number of rows removed.
func (b *Board) Sweep() int {
	removed := 0
	for y := b.Height() - 1; y >= 0; {
		if !rowFull(b.cells[y]) {
			y--
			continue
		}

		row := b.cells[y]
		copy(b.cells[1:y+1], b.cells[:y])
		for x := range row {
			row[x] = Empty
		}
		b.cells[0] = row
		removed++
	}
	return removed
}

func rowFull(row []Cell) bool {
	for _, v := range row {
		if v == Empty {
			return false
		}
	}
	return true
}
