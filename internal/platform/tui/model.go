package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blocks/internal/audio"
	"github.com/vovakirdan/blocks/internal/core"
	"github.com/vovakirdan/blocks/internal/games/breakout"
	"github.com/vovakirdan/blocks/internal/storage"
)

// SoundPlayer receives the cues produced by a frame.
type SoundPlayer interface {
	Play(s breakout.Sound)
}

// Options configures a session.
type Options struct {
	Levels     *breakout.Generator
	StartLevel int
	Store      *storage.Store // optional
	Sounds     SoundPlayer    // optional, silent when nil
	Logger     *log.Logger    // optional
	Player     string         // name recorded with the score
	Runtime    core.RuntimeConfig
}

// Model is the Bubble Tea model of one blocks session.
type Model struct {
	stack    *Stack
	keys     *KeyMapper
	help     help.Model
	screen   *core.Screen
	store    *storage.Store
	sounds   SoundPlayer
	logger   *log.Logger
	player   string
	config   core.RuntimeConfig
	quitting bool
}

// NewModel creates a session showing the start screen.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	sounds := opts.Sounds
	if sounds == nil {
		sounds = audio.Nop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		stack:  NewStack(Session{Levels: opts.Levels, StartLevel: opts.StartLevel}),
		keys:   NewKeyMapper(DefaultRepeatWindow),
		help:   h,
		screen: core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:  opts.Store,
		sounds: sounds,
		logger: logger,
		player: opts.Player,
		config: cfg,
	}
}

// playHeight leaves the last terminal row for the help line.
func playHeight(h int) int {
	return max(h-1, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
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
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev := m.keys.Map(msg, time.Now())

	switch ev.Action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	}

	t := m.stack.HandleKey(ev)
	if t.Kind != TransitionNone {
		m.logger.Debug("screen changed", "screen", m.stack.Top().Kind, "depth", m.stack.Len())
	}
	return m, nil
}

// handleResize processes window resize events. Game state is kept; only
// the drawing surface changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the active screen by one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	t, sounds := m.stack.Tick()
	for _, s := range sounds {
		m.sounds.Play(s)
	}

	if t.Kind != TransitionNone {
		top := m.stack.Top()
		m.logger.Debug("screen changed", "screen", top.Kind, "depth", m.stack.Len())
		switch top.Kind {
		case ScreenEnd:
			m.recordResult(&top.Result)
		case ScreenPlay:
			m.logger.Info("level started", "level", top.Play.Index(), "score", top.Play.Score())
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// recordResult saves a finished game and fills in the best score.
func (m *Model) recordResult(r *EndResult) {
	m.logger.Info("game over", "player", m.player, "score", r.Score, "level", r.Level)
	if m.store == nil {
		return
	}

	best, err := m.store.HighScore()
	if err != nil {
		m.logger.Warn("cannot read high score", "err", err)
	}

	score := int(r.Score) //#nosec G115 -- score is bounded by the blocks destroyed
	if score > 0 {
		if _, err := m.store.SaveScore(m.player, score, r.Level); err != nil {
			m.logger.Warn("cannot save score", "err", err)
		}
	}

	r.HighScore = max(best, score)
	r.NewBest = score > best
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	drawStack(m.stack, m.screen, m.config.TickRate)

	dir := filepath.Join(os.Getenv("HOME"), ".blocks", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("blocks_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawStack(m.stack, m.screen, m.config.TickRate)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Run starts a local session in the alternate screen.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())

	_, err := p.Run()
	return err
}
