package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateClockwiseT(t *testing.T) {
	m := NewPiece(KindT)
	Rotate(m, Clockwise)

	expected := Matrix{
		{0, 1, 0},
		{0, 1, 1},
		{0, 1, 0},
	}
	assert.True(t, expected.Equal(m), "got\n%s", m)
}

func TestRotateCounterClockwiseT(t *testing.T) {
	m := NewPiece(KindT)
	Rotate(m, CounterClockwise)

	expected := Matrix{
		{0, 1, 0},
		{1, 1, 0},
		{0, 1, 0},
	}
	assert.True(t, expected.Equal(m), "got\n%s", m)
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, kind := range Kinds {
		for _, dir := range []int{Clockwise, CounterClockwise} {
			m := NewPiece(kind)
			original := m.Clone()
			for range 4 {
				Rotate(m, dir)
			}
			assert.True(t, original.Equal(m), "kind %s dir %d", kind, dir)
		}
	}
}

func TestRotateInverse(t *testing.T) {
	for _, kind := range Kinds {
		m := NewPiece(kind)
		original := m.Clone()
		Rotate(m, Clockwise)
		Rotate(m, CounterClockwise)
		assert.True(t, original.Equal(m), "kind %s", kind)
	}
}

func TestRotateZeroDirection(t *testing.T) {
	m := NewPiece(KindL)
	original := m.Clone()
	Rotate(m, 0)
	assert.True(t, original.Equal(m))
}

func TestKickResolvesAgainstRightWall(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	piece := NewPiece(KindI)
	pos := Point{X: 8, Y: 5}
	require.False(t, b.Collide(piece, pos))

	Rotate(piece, Clockwise)
	x, ok := kick(b, piece, pos, Clockwise, 4)

	require.True(t, ok)
	assert.Equal(t, 6, x)
}

func TestKickGivesUpAfterLimit(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	piece := NewPiece(KindI)
	pos := Point{X: 8, Y: 5}

	Rotate(piece, Clockwise)
	x, ok := kick(b, piece, pos, Clockwise, 1)

	assert.False(t, ok)
	assert.Equal(t, pos.X, x)
}

func TestKickWithoutCollisionKeepsPosition(t *testing.T) {
	b := NewBoard(BoardWidth, BoardHeight)
	piece := NewPiece(KindT)
	x, ok := kick(b, piece, Point{X: 3, Y: 3}, Clockwise, 0)
	assert.True(t, ok)
	assert.Equal(t, 3, x)
}
