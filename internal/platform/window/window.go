// Package window runs the game in a desktop window with Ebiten. The main
// surface shows the board and the falling piece, the side surface the
// next piece. Timing follows the real frame delta.
package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-tetris/internal/core"
	gametetris "github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

const (
	margin       = 20
	previewUnits = 5
	textLine     = 16
)

var (
	background = color.RGBA{0, 0, 0, 255}
	frameColor = color.RGBA{60, 60, 60, 255}

	// palette holds the block colors indexed by cell value.
	palette = [...]color.RGBA{
		{0, 0, 0, 255},
		{0xFF, 0x0D, 0x72, 255},
		{0x0D, 0xC2, 0xFF, 255},
		{0x0D, 0xFF, 0x72, 255},
		{0xF5, 0x38, 0xFF, 255},
		{0xFF, 0x8E, 0x0D, 255},
		{0xFF, 0xE1, 0x38, 255},
		{0x38, 0x77, 0xFF, 255},
	}
)

// keyActions maps window keys to game actions.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyArrowUp, core.ActionRotateCW},
	{ebiten.KeyZ, core.ActionRotateCCW},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
}

// Window adapts a game to ebiten.Game.
type Window struct {
	game   *gametetris.Game
	logger *log.Logger
	frame  core.InputFrame
	last   time.Time

	cellSize    int
	previewSize int
	boardW      int
	boardH      int
}

// New creates a window for a game that has already been reset.
func New(game *gametetris.Game, logger *log.Logger) *Window {
	display := game.Config().Display
	board := game.Session().Board()
	return &Window{
		game:        game,
		logger:      logger,
		frame:       core.NewInputFrame(),
		cellSize:    display.CellSize,
		previewSize: display.PreviewCellSize,
		boardW:      board.Width(),
		boardH:      board.Height(),
	}
}

// Size returns the window size in pixels.
func (w *Window) Size() (int, int) {
	width := w.boardW*w.cellSize + margin + previewUnits*w.previewSize + margin
	height := w.boardH * w.cellSize
	return width, height
}

// Update reads just-pressed keys and advances the game by the time since
// the previous frame.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	now := time.Now()
	var dt time.Duration
	if !w.last.IsZero() {
		dt = now.Sub(w.last)
	}
	w.last = now

	w.frame.Clear()
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			w.frame.Set(ka.action)
		}
	}

	w.game.StepFor(w.frame, dt)
	w.logEvents()
	return nil
}

func (w *Window) logEvents() {
	if w.logger == nil {
		w.game.Events()
		return
	}
	for _, ev := range w.game.Events() {
		w.logger.Debug(ev.Type.String(), "score", ev.Score, "level", ev.Level, "lines", ev.Lines)
	}
}

// Draw clears both surfaces and redraws board, piece, preview and stats.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	session := w.game.Session()
	board := session.Board()
	cs := float32(w.cellSize)

	drawMatrix(screen, board, tetris.Point{}, 0, 0, cs)
	if !session.Over() {
		p := session.Player()
		drawMatrix(screen, p.Piece, p.Pos, 0, 0, cs)
	}

	// Preview surface
	px := float32(w.boardW*w.cellSize + margin)
	ps := float32(w.previewSize)
	vector.StrokeRect(screen, px, 0, previewUnits*ps, previewUnits*ps, 1, frameColor, false)
	drawMatrix(screen, session.Player().Next, tetris.Point{X: 1, Y: 1}, px, 0, ps)

	state := w.game.State()
	tx := int(px)
	ty := previewUnits*w.previewSize + margin
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", state.Score), tx, ty)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level: %d", state.Level), tx, ty+textLine)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lines: %d", state.Lines), tx, ty+2*textLine)

	switch {
	case state.GameOver:
		ebitenutil.DebugPrintAt(screen, "GAME OVER - R to restart", tx, ty+4*textLine)
	case state.Paused:
		ebitenutil.DebugPrintAt(screen, "PAUSED", tx, ty+4*textLine)
	}
}

// Layout keeps a fixed logical size and lets Ebiten scale it.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.Size()
}

// drawMatrix fills one square per nonzero cell of m placed at pos.
func drawMatrix(dst *ebiten.Image, m tetris.Matrix, pos tetris.Point, ox, oy, size float32) {
	for y, row := range m {
		for x, c := range row {
			if c == tetris.Empty || int(c) >= len(palette) {
				continue
			}
			vector.DrawFilledRect(dst,
				ox+float32(x+pos.X)*size,
				oy+float32(y+pos.Y)*size,
				size, size, palette[c], false)
		}
	}
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(game *gametetris.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	w := New(game, logger)
	width, height := w.Size()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(game.Title())
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if logger != nil {
		logger.Info("window started", "game", game.ID(), "seed", cfg.Seed, "width", width, "height", height)
	}

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
