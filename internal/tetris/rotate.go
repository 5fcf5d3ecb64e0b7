package tetris

// Rotation directions.
const (
	Clockwise        = 1
	CounterClockwise = -1
)

// Rotate turns a square matrix a quarter turn in place: transpose, then
// reverse each row for clockwise (dir > 0) or reverse the row order for
// counter-clockwise (dir < 0). dir == 0 is a no-op.
func Rotate(m Matrix, dir int) {
	if dir == 0 {
		return
	}
	for y := range m {
		for x := 0; x < y; x++ {
			m[x][y], m[y][x] = m[y][x], m[x][y]
		}
	}
	if dir > 0 {
		for _, row := range m {
			reverseRow(row)
		}
		return
	}
	for i, j := 0, len(m)-1; i < j; i, j = i+1, j-1 {
		m[i], m[j] = m[j], m[i]
	}
}

func reverseRow(row []Cell) {
	for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
		row[i], row[j] = row[j], row[i]
	}
}

// kick shifts x one column at a time against the rotation direction until
// the piece fits, trying at most maxKicks shifts. Returns the resolved x and
// whether a fit was found.
func kick(b *Board, piece Matrix, pos Point, dir, maxKicks int) (int, bool) {
	step := 1
	if dir > 0 {
		step = -1
	}
	x := pos.X
	for i := 0; b.Collide(piece, Point{X: x, Y: pos.Y}); i++ {
		if i >= maxKicks {
			return pos.X, false
		}
		x += step
	}
	return x, true
}
