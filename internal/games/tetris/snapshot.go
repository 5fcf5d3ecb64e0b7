package tetris

import engine "github.com/vovakirdan/tui-tetris/internal/tetris"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Mode    string
	State   GameStateType
	Session engine.Snapshot
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.session != nil && g.session.Over():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	var session engine.Snapshot
	if g.session != nil {
		session = g.session.Snapshot()
	}

	return Snapshot{
		Tick:    g.tick,
		Mode:    string(g.mode),
		State:   state,
		Session: session,
	}
}

// Equal reports whether two snapshots describe the same state.
func (a Snapshot) Equal(b Snapshot) bool {
	return a.Tick == b.Tick &&
		a.Mode == b.Mode &&
		a.State == b.State &&
		a.Session.Equal(b.Session)
}
