package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/greedy-snake/internal/core"
	"github.com/vovakirdan/greedy-snake/internal/games/snake"
	"github.com/vovakirdan/greedy-snake/internal/storage"
)

// screenID identifies the visible screen.
type screenID int

const (
	screenMenu screenID = iota
	screenControls
	screenRules
	screenRuns
	screenGame
)

func (s screenID) String() string {
	switch s {
	case screenMenu:
		return "menu"
	case screenControls:
		return "controls"
	case screenRules:
		return "rules"
	case screenRuns:
		return "runs"
	case screenGame:
		return "game"
	default:
		return "unknown"
	}
}

// Model is the Bubble Tea model for the whole program. One session lives
// for the program's lifetime so a game left for the menu can be resumed.
type Model struct {
	session *snake.Session
	store   *storage.Store
	logger  *log.Logger
	keys    KeyMap
	help    help.Model
	hold    *HoldDetector
	board   *core.Screen
	menu    MenuModel
	runs    RunsModel
	clock   func() time.Time

	pending  core.InputFrame
	current  screenID
	width    int
	height   int
	tickRate int
	best     int
	recorded bool // Whether the current game over has been recorded
	quitting bool
}

// NewModel creates the program model around a session.
func NewModel(session *snake.Session, store *storage.Store, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		session:  session,
		store:    store,
		logger:   log.New(io.Discard),
		keys:     DefaultKeyMap(),
		help:     h,
		hold:     NewHoldDetector(session.Config().Input),
		board:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		runs:     NewRunsModel(store, cfg.ScreenW, cfg.ScreenH),
		clock:    time.Now,
		pending:  core.NewInputFrame(),
		current:  screenMenu,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		tickRate: cfg.TickRate,
	}
}

// WithLogger returns a copy of the model that logs to l.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
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

// handleKey routes keyboard input to the visible screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.current {
	case screenMenu:
		var item MenuItem
		var chosen bool
		m.menu, item, chosen = m.menu.Move(MapKeyToMenuAction(msg))
		if !chosen {
			return m, nil
		}
		return m.choose(item)

	case screenControls, screenRules:
		switch MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack, MenuActionSelect:
			m.show(screenMenu)
		}
		return m, nil

	case screenRuns:
		var cmd tea.Cmd
		m.runs, cmd = m.runs.Update(msg)
		if m.runs.IsQuitting() {
			m.quitting = true
		}
		if m.runs.IsGoingBack() {
			m.show(screenMenu)
		}
		return m, cmd
	}

	// In game
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}
	m.pending.Set(action)
	if boost := m.hold.Press(action, m.clock()); boost != core.ActionNone {
		m.pending.Set(boost)
	}
	return m, nil
}

// choose acts on a selected menu item.
func (m Model) choose(item MenuItem) (tea.Model, tea.Cmd) {
	switch item {
	case MenuPlay:
		m.pending.Clear()
		m.pending.Set(core.ActionStart)
		m.hold.Reset()
		m.show(screenGame)
	case MenuControls:
		m.show(screenControls)
	case MenuRules:
		m.show(screenRules)
	case MenuRuns:
		m.runs.Reload()
		m.show(screenRuns)
	case MenuQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// show switches the visible screen.
func (m *Model) show(s screenID) {
	if m.current != s {
		m.logger.Debug("screen", "from", m.current, "to", s)
	}
	m.current = s
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.board.Resize(msg.Width, max(msg.Height-1, 1)) // Last row holds the help line
	m.help.Width = msg.Width
	m.runs, _ = m.runs.Update(msg)
	return m, nil
}

// handleTick runs one frame: drain input, step the session once.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.current != screenGame {
		return m, tickCmd(m.tickRate)
	}

	if release := m.hold.Poll(now); release != core.ActionNone {
		m.pending.Set(release)
	}

	var result core.StepResult
	if m.boardFits() {
		result = m.session.Step(m.pending, now)
	} else {
		// Commands still apply but the run does not advance unseen
		result = m.session.Apply(m.pending, now)
		m.holdIfTooSmall(now)
	}
	m.pending.Clear()

	// Record the run on game over (once)
	if result.State.GameOver {
		if !m.recorded {
			m.recordRun()
			m.recorded = true
		}
	} else {
		m.recorded = false
	}

	if result.State.InMenu {
		m.hold.Reset()
		m.show(screenMenu)
	}

	return m, tickCmd(m.tickRate)
}

// boardFits reports whether the board can be drawn at the current size.
func (m Model) boardFits() bool {
	cfg := m.session.Config().Grid
	needW, needH := BoardSize(cfg.Width, cfg.Height)
	return m.board.Width() >= needW && m.board.Height() >= needH
}

// holdIfTooSmall pauses a running session while the board cannot be drawn.
// The player resumes with the pause key once the window is large enough.
func (m Model) holdIfTooSmall(now time.Time) {
	if m.boardFits() || m.session.State() != snake.StateRunning {
		return
	}
	m.session.TogglePause(now)
	m.logger.Debug("paused, terminal too small", "width", m.width, "height", m.height)
}

// recordRun stores the finished run and refreshes the best score.
func (m *Model) recordRun() {
	summary := m.session.Summary()
	m.best = max(m.best, summary.Score)
	if m.store == nil || summary.Score <= 0 {
		return
	}

	_, err := m.store.RecordRun(storage.Run{
		Score:    summary.Score,
		Length:   summary.Length,
		TopTier:  summary.TopTier,
		Duration: summary.Duration,
	})
	if err != nil {
		m.logger.Error("cannot record run", "error", err)
		return
	}
	if best, err := m.store.BestScore(); err == nil {
		m.best = best
	}
	m.logger.Info("run recorded", "score", summary.Score, "length", summary.Length)
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenMenu:
		return m.menu.View(m.width, m.session.HasSaved(), m.best)
	case screenControls:
		return m.infoView("CONTROLS", ControlLines())
	case screenRules:
		return m.infoView("RULES", RulesLines(m.session.Config()))
	case screenRuns:
		return m.runs.View()
	}

	DrawBoard(m.board, m.session.Snapshot(), m.best)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.board) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// infoView renders a titled page of text lines.
func (m Model) infoView(title string, lines []string) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	for _, l := range lines {
		b.WriteString("  ")
		b.WriteString(textStyle.Render(l))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Esc/Enter: Back  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Run starts the Bubble Tea program with the given model.
func Run(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
