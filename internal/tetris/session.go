package tetris

import (
	"math"
	"math/rand"
	"time"
)

// PointsPerLine is the base award for a cleared row. Each further row in the
// same sweep is worth twice the previous one.
const PointsPerLine = 10

// GameOverPolicy decides what a session does when a spawn collides.
type GameOverPolicy int

const (
	// GameOverStop ends the session; actions are ignored until Restart.
	GameOverStop GameOverPolicy = iota
	// GameOverReset wipes the board and counters and keeps playing.
	GameOverReset
)

// String returns the config name of the policy.
func (p GameOverPolicy) String() string {
	if p == GameOverReset {
		return "reset"
	}
	return "stop"
}

// Options tunes timing and behavior of a session. Scoring and the piece set
// are fixed.
type Options struct {
	Width           int
	Height          int
	DropInterval    time.Duration // automatic drop interval at level 1
	MinDropInterval time.Duration // floor for the shrinking interval
	SpeedUp         float64       // interval multiplier applied on level up
	LinesPerLevel   int
	MaxKicks        int // wall-kick shifts tried before a rotation is rejected
	StartLevel      int
	OnGameOver      GameOverPolicy
}

// DefaultOptions returns the classic rules: 10x20 board, 1s drop interval,
// 10% faster every 10 lines.
func DefaultOptions() Options {
	return Options{
		Width:           BoardWidth,
		Height:          BoardHeight,
		DropInterval:    time.Second,
		MinDropInterval: 100 * time.Millisecond,
		SpeedUp:         0.9,
		LinesPerLevel:   10,
		MaxKicks:        4,
		StartLevel:      StartLevel,
		OnGameOver:      GameOverStop,
	}
}

// normalized replaces out-of-range values with defaults.
func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.Width < 4 {
		o.Width = def.Width
	}
	if o.Height < 4 {
		o.Height = def.Height
	}
	if o.DropInterval <= 0 {
		o.DropInterval = def.DropInterval
	}
	if o.MinDropInterval <= 0 {
		o.MinDropInterval = def.MinDropInterval
	}
	if o.MinDropInterval > o.DropInterval {
		o.MinDropInterval = o.DropInterval
	}
	if o.SpeedUp <= 0 || o.SpeedUp > 1 {
		o.SpeedUp = def.SpeedUp
	}
	if o.LinesPerLevel <= 0 {
		o.LinesPerLevel = def.LinesPerLevel
	}
	if o.MaxKicks < 0 {
		o.MaxKicks = 0
	}
	if o.StartLevel < 1 {
		o.StartLevel = StartLevel
	}
	return o
}

// IntervalForLevel returns the automatic drop interval at the given level,
// clamped to the configured minimum.
func (o Options) IntervalForLevel(level int) time.Duration {
	o = o.normalized()
	d := time.Duration(float64(o.DropInterval) * math.Pow(o.SpeedUp, float64(level-1)))
	return max(d, o.MinDropInterval)
}

// Session is one game: the board, the player and the drop timer.
// It is not safe for concurrent use; drive it from a single loop.
type Session struct {
	opts   Options
	rng    *rand.Rand
	board  *Board
	player Player

	dropInterval time.Duration
	dropCounter  time.Duration
	elapsed      time.Duration
	pieces       int
	over         bool
	events       []Event
}

// NewSession creates a session with a spawned piece ready to fall.
func NewSession(opts Options, seed int64) *Session {
	opts = opts.normalized()
	s := &Session{
		opts:  opts,
		rng:   rand.New(rand.NewSource(seed)),
		board: NewBoard(opts.Width, opts.Height),
	}
	s.start()
	return s
}

// start resets board, counters and timer, then spawns the first piece.
func (s *Session) start() {
	s.board.Clear()
	s.resetCounters()
	s.dropCounter = 0
	s.elapsed = 0
	s.pieces = 0
	s.over = false
	s.player.Next = nil
	s.respawn()
}

func (s *Session) resetCounters() {
	s.player.resetCounters(s.opts.StartLevel)
	s.dropInterval = s.opts.IntervalForLevel(s.opts.StartLevel)
}

// Restart begins a new game on the same session.
func (s *Session) Restart() {
	s.start()
	s.emit(EventReset)
}

// Move shifts the active piece horizontally by dx columns.
// The move is reverted if it collides. Returns whether the piece moved.
func (s *Session) Move(dx int) bool {
	if s.over || dx == 0 {
		return false
	}
	s.player.Pos.X += dx
	if s.board.Collide(s.player.Piece, s.player.Pos) {
		s.player.Pos.X -= dx
		return false
	}
	return true
}

// Drop moves the active piece down one row and resets the drop timer.
// If the piece cannot move it is merged into the board, full rows are swept
// and the next piece is spawned. Returns whether the piece locked.
func (s *Session) Drop() bool {
	if s.over {
		return false
	}
	s.dropCounter = 0
	s.player.Pos.Y++
	if !s.board.Collide(s.player.Piece, s.player.Pos) {
		return false
	}
	s.player.Pos.Y--
	s.lock()
	return true
}

// Rotate turns the active piece a quarter turn (dir > 0 clockwise) and
// applies the wall kick. A rotation that still collides after MaxKicks
// shifts is rejected and leaves the piece unchanged.
func (s *Session) Rotate(dir int) bool {
	if s.over || dir == 0 {
		return false
	}
	Rotate(s.player.Piece, dir)
	x, ok := kick(s.board, s.player.Piece, s.player.Pos, dir, s.opts.MaxKicks)
	if !ok {
		Rotate(s.player.Piece, -dir)
		return false
	}
	s.player.Pos.X = x
	return true
}

// Advance feeds elapsed wall time into the drop timer. When the accumulated
// time exceeds the drop interval the piece drops one row.
func (s *Session) Advance(dt time.Duration) {
	if s.over || dt <= 0 {
		return
	}
	s.elapsed += dt
	s.dropCounter += dt
	if s.dropCounter > s.dropInterval {
		s.Drop()
	}
}

func (s *Session) lock() {
	s.board.Merge(s.player.Piece, s.player.Pos)
	s.emit(EventLocked)
	s.sweep()
	s.respawn()
}

// sweep clears full rows and applies scoring, line and level counters.
func (s *Session) sweep() {
	rows := s.board.Sweep()
	if rows == 0 {
		return
	}

	points := 0
	multiplier := 1
	for range rows {
		points += PointsPerLine * multiplier
		s.player.Lines++
		if s.player.Lines%s.opts.LinesPerLevel == 0 {
			s.levelUp()
		}
		multiplier *= 2
	}
	s.player.Score += points

	s.events = append(s.events, Event{
		Type:   EventLinesCleared,
		Rows:   rows,
		Points: points,
		Score:  s.player.Score,
		Level:  s.player.Level,
		Lines:  s.player.Lines,
	})
}

func (s *Session) levelUp() {
	s.player.Level++
	next := time.Duration(float64(s.dropInterval) * s.opts.SpeedUp)
	s.dropInterval = max(next, s.opts.MinDropInterval)
	s.emit(EventLevelUp)
}

// respawn promotes the next piece, generates a new one and places it
// centered on the top row.
func (s *Session) respawn() {
	if s.player.Next == nil {
		s.player.NextKind = RandomKind(s.rng)
		s.player.Next = NewPiece(s.player.NextKind)
	}
	s.player.Piece, s.player.Kind = s.player.Next, s.player.NextKind
	s.player.NextKind = RandomKind(s.rng)
	s.player.Next = NewPiece(s.player.NextKind)
	s.player.Pos = Point{
		X: s.board.Width()/2 - s.player.Piece.Width()/2,
		Y: 0,
	}
	s.pieces++

	if s.board.Collide(s.player.Piece, s.player.Pos) {
		s.gameOver()
	}
}

func (s *Session) gameOver() {
	s.emit(EventGameOver)
	if s.opts.OnGameOver != GameOverReset {
		s.over = true
		return
	}
	s.board.Clear()
	s.resetCounters()
	s.dropCounter = 0
	s.emit(EventReset)
}

func (s *Session) emit(t EventType) {
	s.events = append(s.events, Event{
		Type:  t,
		Score: s.player.Score,
		Level: s.player.Level,
		Lines: s.player.Lines,
	})
}

// Events returns and clears the events emitted since the last call.
func (s *Session) Events() []Event {
	ev := s.events
	s.events = nil
	return ev
}

// Over reports whether the session reached game over under GameOverStop.
func (s *Session) Over() bool { return s.over }

// Board returns the locked cells. The matrix must not be modified.
func (s *Session) Board() Matrix { return s.board.Cells() }

// Player returns a copy of the player state.
func (s *Session) Player() Player { return s.player.clone() }

// DropInterval returns the current automatic drop interval.
func (s *Session) DropInterval() time.Duration { return s.dropInterval }

// Options returns the normalized options the session runs with.
func (s *Session) Options() Options { return s.opts }
