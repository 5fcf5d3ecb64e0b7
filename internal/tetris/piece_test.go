package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPieceLayouts(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			m := NewPiece(kind)
			require.NotNil(t, m)
			require.Equal(t, m.Height(), m.Width(), "piece must be square")

			occupied := m.Occupied()
			assert.Len(t, occupied, 4)
			for _, p := range occupied {
				assert.Equal(t, kind.Color(), m[p.Y][p.X])
			}
		})
	}
}

func TestNewPieceColors(t *testing.T) {
	expected := map[Kind]Cell{
		KindT: 1, KindO: 2, KindL: 3, KindJ: 4, KindI: 5, KindS: 6, KindZ: 7,
	}
	for kind, color := range expected {
		assert.Equal(t, color, kind.Color(), "kind %s", kind)
	}
	assert.Equal(t, Empty, Kind('X').Color())
	assert.Nil(t, NewPiece(Kind('X')))
}

func TestNewPieceIsFreshAllocation(t *testing.T) {
	a := NewPiece(KindT)
	a[0][0] = 9

	b := NewPiece(KindT)
	assert.Equal(t, Empty, b[0][0], "mutating one piece must not leak into the next")
}

func TestRandomKindCoversAllKinds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[Kind]int)
	for range 700 {
		seen[RandomKind(rng)]++
	}
	assert.Len(t, seen, len(Kinds))
	for _, kind := range Kinds {
		assert.Greater(t, seen[kind], 50, "kind %s drawn too rarely", kind)
	}
}
