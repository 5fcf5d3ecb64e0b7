package tetris

import "time"

// Snapshot captures the complete session state for determinism testing and replay.
type Snapshot struct {
	Board        Matrix
	Piece        Matrix
	Kind         Kind
	Pos          Point
	NextKind     Kind
	Score        int
	Level        int
	Lines        int
	Pieces       int // pieces spawned since the last start
	DropInterval time.Duration
	Elapsed      time.Duration
	Over         bool
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Board:        s.board.Cells().Clone(),
		Piece:        s.player.Piece.Clone(),
		Kind:         s.player.Kind,
		Pos:          s.player.Pos,
		NextKind:     s.player.NextKind,
		Score:        s.player.Score,
		Level:        s.player.Level,
		Lines:        s.player.Lines,
		Pieces:       s.pieces,
		DropInterval: s.dropInterval,
		Elapsed:      s.elapsed,
		Over:         s.over,
	}
}

// Equal reports whether two snapshots describe the same state.
func (a Snapshot) Equal(b Snapshot) bool {
	return a.Board.Equal(b.Board) &&
		a.Piece.Equal(b.Piece) &&
		a.Kind == b.Kind &&
		a.Pos == b.Pos &&
		a.NextKind == b.NextKind &&
		a.Score == b.Score &&
		a.Level == b.Level &&
		a.Lines == b.Lines &&
		a.Pieces == b.Pieces &&
		a.DropInterval == b.DropInterval &&
		a.Elapsed == b.Elapsed &&
		a.Over == b.Over
}
