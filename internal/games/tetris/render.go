package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	engine "github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Every board cell is drawn two columns wide so blocks look square.
const (
	cellCols     = 2
	previewUnits = 5 // preview surface is 5x5 units, piece offset by one
	panelGap     = 2
	hudHeight    = 1
)

// blockRune fills both columns of an occupied cell.
const blockRune = '█'

// palette maps cell values to screen colors.
var palette = [...]core.Color{
	engine.Empty: core.ColorDefault,
	1:            core.ColorBrightRed,
	2:            core.ColorBrightCyan,
	3:            core.ColorBrightGreen,
	4:            core.ColorPurple,
	5:            core.ColorOrange,
	6:            core.ColorBrightYellow,
	7:            core.ColorBrightBlue,
}

// CellColor returns the screen color for a cell value.
func CellColor(c engine.Cell) core.Color {
	if int(c) < len(palette) {
		return palette[c]
	}
	return core.ColorWhite
}

// layout holds the screen positions of the board and side panel.
type layout struct {
	board   core.Rect // outer box of the board
	preview core.Rect // outer box of the next-piece preview
	statsX  int
	statsY  int
}

// computeLayout centers board and panel on a screen of the given size.
// ok is false when the screen cannot hold them.
func computeLayout(w, h, boardW, boardH int) (layout, bool) {
	boardBox := core.NewRect(0, 0, boardW*cellCols+2, boardH+2)
	previewBox := core.NewRect(0, 0, previewUnits*cellCols+2, previewUnits+2)

	totalW := boardBox.W + panelGap + previewBox.W
	totalH := boardBox.H + hudHeight
	if w < totalW || h < totalH {
		return layout{}, false
	}

	x := (w - totalW) / 2
	y := hudHeight + (h-totalH)/2

	boardBox.X, boardBox.Y = x, y
	previewBox.X, previewBox.Y = boardBox.Right()+panelGap, y

	return layout{
		board:   boardBox,
		preview: previewBox,
		statsX:  previewBox.X + 1,
		statsY:  previewBox.Bottom() + 1,
	}, true
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	state := g.State()
	g.renderHUD(dst, state)

	board := g.session.Board()
	l, ok := computeLayout(dst.Width(), dst.Height(), board.Width(), board.Height())
	if !ok {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst, l.board)
	g.renderPreview(dst, l.preview)
	g.renderStats(dst, l, state)

	switch {
	case state.GameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case state.Paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen, state core.GameState) {
	hud := fmt.Sprintf(" %s  Score: %d  Level: %d  Lines: %d", g.Title(), state.Score, state.Level, state.Lines)
	dst.DrawText(0, 0, hud)
}

// renderBoard draws locked cells and the active piece inside box.
func (g *Game) renderBoard(dst *core.Screen, box core.Rect) {
	dst.DrawBoxColored(box, core.ColorGray)
	inner := box.Inset(1)
	originX, originY := inner.X, inner.Y

	board := g.session.Board()
	for y := range board.Height() {
		for x := range board.Width() {
			drawCell(dst, originX, originY, x, y, board[y][x])
		}
	}

	if g.session.Over() {
		return
	}
	p := g.session.Player()
	drawMatrix(dst, originX, originY, p.Piece, p.Pos)
}

// renderPreview draws the next piece offset by one unit.
func (g *Game) renderPreview(dst *core.Screen, box core.Rect) {
	dst.DrawBoxColored(box, core.ColorGray)
	dst.DrawTextColored(box.X+2, box.Y, " Next ", core.ColorGray)
	p := g.session.Player()
	inner := box.Inset(1)
	drawMatrix(dst, inner.X, inner.Y, p.Next, engine.Point{X: 1, Y: 1})
}

// renderStats draws score, level and lines under the preview.
func (g *Game) renderStats(dst *core.Screen, l layout, state core.GameState) {
	rows := []struct {
		label string
		value int
	}{
		{"Score", state.Score},
		{"Level", state.Level},
		{"Lines", state.Lines},
	}
	y := l.statsY
	for _, r := range rows {
		dst.DrawTextColored(l.statsX, y, r.label, core.ColorGray)
		dst.DrawText(l.statsX, y+1, fmt.Sprintf("%d", r.value))
		y += 3
	}
}

// drawMatrix draws the nonzero cells of m at pos relative to the origin.
func drawMatrix(dst *core.Screen, originX, originY int, m engine.Matrix, pos engine.Point) {
	for _, p := range m.Occupied() {
		drawCell(dst, originX, originY, p.X+pos.X, p.Y+pos.Y, m[p.Y][p.X])
	}
}

// drawCell draws one board unit as two screen columns.
func drawCell(dst *core.Screen, originX, originY, x, y int, c engine.Cell) {
	sx := originX + x*cellCols
	sy := originY + y
	if c == engine.Empty {
		dst.SetColored(sx, sy, ' ', core.ColorDefault)
		dst.SetColored(sx+1, sy, ' ', core.ColorDefault)
		return
	}
	color := CellColor(c)
	for i := range cellCols {
		dst.SetColored(sx+i, sy, blockRune, color)
	}
}

// renderOverlay draws a message box centered on the screen.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect(0, 0, maxLen+4, 5).CenterIn(dst.Bounds())

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
