package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blocks/internal/games/breakout"
)

// LevelChoice is one entry of the level picker.
type LevelChoice struct {
	Index int
	Name  string
	Speed float64
}

type levelSelectKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func (k levelSelectKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

func (k levelSelectKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// LevelSelectModel lets the player pick the level a game starts at.
type LevelSelectModel struct {
	choices  []LevelChoice
	cursor   int
	selected int
	keys     levelSelectKeys
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewLevelSelectModel lists the levels of the first cycles of levels.
func NewLevelSelectModel(levels *breakout.Generator, cycles, width, height int) LevelSelectModel {
	cfg := levels.Config()
	n := cfg.Levels.Count * max(cycles, 1)

	choices := make([]LevelChoice, n)
	for i := range n {
		lvl := levels.Level(i)
		choices[i] = LevelChoice{Index: i, Name: lvl.Name, Speed: lvl.BallSpeed}
	}

	return LevelSelectModel{
		choices:  choices,
		selected: -1,
		keys: levelSelectKeys{
			Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "up")),
			Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "down")),
			Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
			Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		},
		help:   help.New(),
		width:  width,
		height: height,
	}
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.selected = m.choices[m.cursor].Index
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the level list.
func (m LevelSelectModel) View() string {
	if m.quitting || m.selected >= 0 {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160"))
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(title.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	for i, c := range m.visible() {
		line := fmt.Sprintf("%3d. %-12s speed %4.1f", c.Index+1, c.Name, c.Speed)
		if c.Index == m.choices[m.cursor].Index {
			line = active.Render("> " + line)
		} else {
			line = dim.Render("  " + line)
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(centerText(line, m.width))
	}

	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

// visible returns the window of choices that fits the screen around the cursor.
func (m LevelSelectModel) visible() []LevelChoice {
	rows := m.height - 7
	if rows <= 0 || rows >= len(m.choices) {
		return m.choices
	}
	start := min(max(m.cursor-rows/2, 0), len(m.choices)-rows)
	return m.choices[start : start+rows]
}

// Selected returns the picked level index.
func (m LevelSelectModel) Selected() (int, bool) {
	return m.selected, m.selected >= 0
}

// RunLevelSelect shows the level picker. ok is false if the player quit.
func RunLevelSelect(levels *breakout.Generator, width, height int) (index int, ok bool, err error) {
	p := tea.NewProgram(NewLevelSelectModel(levels, 3, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, isModel := final.(LevelSelectModel)
	if !isModel {
		return 0, false, nil
	}
	index, ok = m.Selected()
	return index, ok, nil
}
