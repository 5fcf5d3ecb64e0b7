package tetris

// EventType identifies what happened inside a session.
type EventType int

const (
	// EventLocked fires when the active piece is merged into the board.
	EventLocked EventType = iota
	// EventLinesCleared fires when a sweep removes one or more rows.
	EventLinesCleared
	// EventLevelUp fires each time the level counter increases.
	EventLevelUp
	// EventGameOver fires when a freshly spawned piece collides.
	EventGameOver
	// EventReset fires when the board and counters return to initial values.
	EventReset
)

// String returns a short name used in logs.
func (t EventType) String() string {
	switch t {
	case EventLocked:
		return "locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is a notification emitted by Session. Score, Level and Lines hold
// the counters after the event was applied.
type Event struct {
	Type   EventType
	Rows   int // rows removed by this sweep (EventLinesCleared)
	Points int // points awarded by this sweep (EventLinesCleared)
	Score  int
	Level  int
	Lines  int
}
