package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/games/t2048"
	"github.com/vovakirdan/term2048/internal/logging"
	"github.com/vovakirdan/term2048/internal/storage"
)

const msgMoveNotPossible = "Move not possible"

// Model is the Bubble Tea model for a 2048 session.
type Model struct {
	game      *t2048.Game
	recorder  storage.Recorder
	logger    *log.Logger
	sessionID string
	keys      KeyMap
	help      help.Model
	theme     Theme
	best      int
	width     int
	height    int
	notice    string
	noticeSeq int
	recorded  bool // Whether the current game has been saved
	quitting  bool
}

// NewModel creates a model around game. recorder may be nil; best is the
// stored high score for this board size.
func NewModel(ctx context.Context, game *t2048.Game, recorder storage.Recorder, best int) Model {
	return Model{
		game:      game,
		recorder:  recorder,
		logger:    logging.FromContext(ctx),
		sessionID: storage.NewSessionID(),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     DefaultTheme(),
		best:      max(best, game.Score()),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "session", m.sessionID, "size", m.game.Options().Size, "target", m.game.Options().Target)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.record()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.record()
		m.game.Reset()
		m.sessionID = storage.NewSessionID()
		m.recorded = false
		m.notice = ""
		m.logger.Info("game restarted", "session", m.sessionID)
		return m, nil
	}

	dir, ok := m.keys.Direction(msg)
	if !ok || m.game.Finished() {
		return m, nil
	}

	out := m.game.Move(dir)
	if !out.Changed {
		m.logger.Debug("move rejected", "dir", dir)
		m.noticeSeq++
		m.notice = msgMoveNotPossible
		return m, clearNoticeCmd(m.noticeSeq)
	}

	m.notice = ""
	m.best = max(m.best, m.game.Score())
	m.logger.Debug("move", "dir", dir, "gained", out.Gained, "score", m.game.Score())

	if m.game.Finished() {
		m.record()
	}
	return m, nil
}

// record saves the current game once, if it has any committed moves.
func (m *Model) record() {
	if m.recorded {
		return
	}
	snap := m.game.Snapshot()
	if snap.Moves == 0 {
		return
	}
	m.recorded = true

	result := storage.ResultOf(m.sessionID, snap)
	m.logger.Info("game finished", "session", m.sessionID, "outcome", result.Outcome, "score", result.Score, "max_tile", result.MaxTile)

	if m.recorder == nil {
		return
	}
	if _, err := m.recorder.SaveResult(result); err != nil {
		m.logger.Warn("could not save result", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("2 0 4 8"))
	b.WriteString("\n\n")
	b.WriteString(renderHUD(m.game.Score(), m.best, m.theme))
	b.WriteString("\n\n")
	b.WriteString(RenderBoard(m.game.Board(), m.theme))
	b.WriteString("\n\n")
	b.WriteString(renderStatus(m.game.Status(), m.game.Score(), m.notice, m.theme))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return centerBlock(b.String(), m.width, m.height)
}

// Game returns the session the model drives.
func (m Model) Game() *t2048.Game {
	return m.game
}

// Best returns the best score seen so far.
func (m Model) Best() int {
	return m.best
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(ctx context.Context, game *t2048.Game, recorder storage.Recorder, best int) error {
	model := NewModel(ctx, game, recorder, best)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
