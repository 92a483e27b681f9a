package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blocks/internal/config"
	"github.com/vovakirdan/blocks/internal/games/breakout"
)

func newLevelSelect(t *testing.T, height int) LevelSelectModel {
	t.Helper()
	gen, err := breakout.NewGenerator(config.DefaultBlocksConfig())
	require.NoError(t, err)
	return NewLevelSelectModel(gen, 3, 80, height)
}

func TestLevelSelectChoices(t *testing.T) {
	m := newLevelSelect(t, 40)

	require.Len(t, m.choices, 9)
	assert.Equal(t, LevelChoice{Index: 0, Name: "Pyramid", Speed: 5}, m.choices[0])
	assert.Equal(t, LevelChoice{Index: 5, Name: "Wall", Speed: 5}, m.choices[5])
	assert.Equal(t, LevelChoice{Index: 7, Name: "Diamond", Speed: 10}, m.choices[7])
}

func TestLevelSelectPick(t *testing.T) {
	var model tea.Model = newLevelSelect(t, 40)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(runeKey('j'))
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	index, ok := model.(LevelSelectModel).Selected()
	assert.True(t, ok)
	assert.Equal(t, 2, index)
	assert.Equal(t, "", model.View())
}

func TestLevelSelectCursorStopsAtEnd(t *testing.T) {
	var model tea.Model = newLevelSelect(t, 40)
	for range 20 {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	index, ok := model.(LevelSelectModel).Selected()
	assert.True(t, ok)
	assert.Equal(t, 8, index)
}

func TestLevelSelectQuit(t *testing.T) {
	var model tea.Model = newLevelSelect(t, 40)
	model, _ = model.Update(runeKey('q'))

	_, ok := model.(LevelSelectModel).Selected()
	assert.False(t, ok)
}

func TestLevelSelectScrollsSmallScreen(t *testing.T) {
	m := newLevelSelect(t, 10)
	m.cursor = 8

	vis := m.visible()
	require.Len(t, vis, 3)
	assert.Equal(t, 8, vis[len(vis)-1].Index)
	assert.Contains(t, m.View(), "Diamond")
}
