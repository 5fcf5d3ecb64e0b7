package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// helpHeight is the number of rows reserved for the key help footer.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// eventSource is implemented by games that report session events.
type eventSource interface {
	Events() []tetris.Event
}

// timedGame is implemented by games that advance by elapsed time.
type timedGame interface {
	StepFor(input core.InputFrame, dt time.Duration) core.StepResult
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		logger:     logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey applies the mapped action right away. Games without
// StepFor get it on the next tick instead.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("game quit", "game", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit
	}

	tg, ok := m.game.(timedGame)
	if !ok || len(m.inputFrame.Sequence()) == 0 {
		return m, nil
	}
	m.gameState = tg.StepFor(m.inputFrame, 0).State
	m.logEvents()
	m.inputFrame.Clear()
	return m, nil
}

// handleResize processes window resize events. The game lays itself out
// on every render, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by the time elapsed since the previous tick.
// The first tick only starts the clock.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() && now.After(m.lastTick) {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	var result core.StepResult
	if tg, ok := m.game.(timedGame); ok {
		result = tg.StepFor(m.inputFrame, dt)
	} else {
		result = m.game.Step(m.inputFrame)
	}
	m.gameState = result.State
	m.logEvents()

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// logEvents forwards session events to the logger.
func (m Model) logEvents() {
	src, ok := m.game.(eventSource)
	if !ok {
		return
	}
	for _, ev := range src.Events() {
		switch ev.Type {
		case tetris.EventGameOver:
			m.logger.Info("game over", "score", ev.Score, "level", ev.Level, "lines", ev.Lines)
		case tetris.EventLinesCleared:
			m.logger.Debug(ev.Type.String(), "rows", ev.Rows, "points", ev.Points, "score", ev.Score)
		default:
			m.logger.Debug(ev.Type.String(), "score", ev.Score, "level", ev.Level, "lines", ev.Lines)
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
