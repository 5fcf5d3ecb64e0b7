package tetris

// Initial counter values for a new or reset game.
const (
	StartLevel = 1
)

// Player holds the active piece and the counters shown in the HUD.
type Player struct {
	Piece    Matrix
	Kind     Kind
	Pos      Point
	Next     Matrix
	NextKind Kind
	Score    int
	Level    int
	Lines    int
}

// resetCounters restores score, level and lines to their initial values.
func (p *Player) resetCounters(level int) {
	p.Score = 0
	p.Level = level
	p.Lines = 0
}

// clone returns a deep copy safe to hand to callers.
func (p Player) clone() Player {
	c := p
	c.Piece = p.Piece.Clone()
	c.Next = p.Next.Clone()
	return c
}
