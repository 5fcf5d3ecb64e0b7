package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMatrix(t *testing.T) {
	m := NewMatrix(3, 2)
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 2, m.Height())
	assert.Empty(t, m.Occupied())
	assert.Equal(t, 0, Matrix(nil).Width())
}

func TestMatrixAt(t *testing.T) {
	m := Matrix{{0, 4}, {2, 0}}

	v, ok := m.At(1, 0)
	assert.True(t, ok)
	assert.Equal(t, Cell(4), v)

	_, ok = m.At(2, 0)
	assert.False(t, ok)
	_, ok = m.At(0, -1)
	assert.False(t, ok)
}

func TestMatrixCloneIsDeep(t *testing.T) {
	m := Matrix{{1, 0}, {0, 1}}
	c := m.Clone()
	c[0][0] = 7

	assert.Equal(t, Cell(1), m[0][0])
	assert.False(t, m.Equal(c))
}

func TestMatrixString(t *testing.T) {
	assert.Equal(t, ".1.\n111\n...", NewPiece(KindT).String())
}
