package tetris

import "math/rand"

// Kind identifies one of the seven tetromino shapes.
type Kind byte

const (
	KindI Kind = 'I'
	KindO Kind = 'O'
	KindT Kind = 'T'
	KindS Kind = 'S'
	KindZ Kind = 'Z'
	KindJ Kind = 'J'
	KindL Kind = 'L'
)

// Kinds lists every piece kind in the order used for random selection.
var Kinds = []Kind{KindI, KindL, KindJ, KindO, KindT, KindS, KindZ}

// String returns the single-letter label.
func (k Kind) String() string {
	return string(rune(k))
}

// Color returns the cell value a piece of this kind writes into the board.
func (k Kind) Color() Cell {
	switch k {
	case KindT:
		return 1
	case KindO:
		return 2
	case KindL:
		return 3
	case KindJ:
		return 4
	case KindI:
		return 5
	case KindS:
		return 6
	case KindZ:
		return 7
	default:
		return Empty
	}
}

// NewPiece returns a freshly allocated matrix for the given kind.
// Unknown kinds yield a nil matrix.
func NewPiece(kind Kind) Matrix {
	c := kind.Color()
	switch kind {
	case KindT:
		return Matrix{
			{0, c, 0},
			{c, c, c},
			{0, 0, 0},
		}
	case KindO:
		return Matrix{
			{c, c},
			{c, c},
		}
	case KindL:
		return Matrix{
			{0, c, 0},
			{0, c, 0},
			{0, c, c},
		}
	case KindJ:
		return Matrix{
			{0, c, 0},
			{0, c, 0},
			{c, c, 0},
		}
	case KindI:
		return Matrix{
			{0, c, 0, 0},
			{0, c, 0, 0},
			{0, c, 0, 0},
			{0, c, 0, 0},
		}
	case KindS:
		return Matrix{
			{0, c, c},
			{c, c, 0},
			{0, 0, 0},
		}
	case KindZ:
		return Matrix{
			{c, c, 0},
			{0, c, c},
			{0, 0, 0},
		}
	}
	return nil
}

// RandomKind picks a kind uniformly at random.
func RandomKind(rng *rand.Rand) Kind {
	return Kinds[rng.Intn(len(Kinds))]
}
