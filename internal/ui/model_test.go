package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightbar/internal/config"
	"lightbar/internal/eventbus"
)

func newTestModel(t *testing.T, entries []string) (*Model, eventbus.EventBus) {
	t.Helper()
	bus := eventbus.New()
	t.Cleanup(bus.Close)
	m, err := NewModel(bus, config.Default(), entries)
	require.NoError(t, err)
	return m, bus
}

func press(m *Model, msg tea.KeyMsg) (*Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(*Model), cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelNavigation(t *testing.T) {
	m, _ := newTestModel(t, []string{"alpha", "beta", "gamma"})

	m, cmd := press(m, runeKey('j'))
	assert.Nil(t, cmd)
	entry, err := m.sel.Selected()
	require.NoError(t, err)
	assert.Equal(t, "beta", entry)
}

func TestModelChoose(t *testing.T) {
	m, bus := newTestModel(t, []string{"alpha", "beta"})

	var chosen *eventbus.EntryChosenEvent
	bus.Subscribe(eventbus.EventEntryChosen, func(e eventbus.WidgetEvent) {
		if ev, ok := e.(eventbus.EntryChosenEvent); ok {
			chosen = &ev
		}
	})

	m, _ = press(m, runeKey('j'))
	_, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd, "enter should quit the program")

	bus.Close()
	require.NotNil(t, chosen)
	assert.Equal(t, "beta", chosen.Entry)
	assert.Equal(t, 1, chosen.Index)
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, []string{"alpha"})
	_, cmd := press(m, runeKey('q'))
	assert.NotNil(t, cmd, "exit key should quit")
}

func TestModelFilter(t *testing.T) {
	m, _ := newTestModel(t, []string{"apple", "banana", "cherry"})

	m, _ = press(m, runeKey('/'))
	require.Equal(t, modeFilter, m.mode)

	m, _ = press(m, runeKey('a'))
	m, _ = press(m, runeKey('n'))
	assert.Equal(t, []string{"banana"}, m.current, "list narrows as the query grows")

	// enter keeps the narrowed list and returns to browsing
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, []string{"banana"}, m.current)

	entry, err := m.sel.Selected()
	require.NoError(t, err)
	assert.Equal(t, "banana", entry)
}

func TestModelFilterCancelRestores(t *testing.T) {
	m, _ := newTestModel(t, []string{"apple", "banana"})

	m, _ = press(m, runeKey('/'))
	m, _ = press(m, runeKey('z'))
	assert.Empty(t, m.current)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, []string{"apple", "banana"}, m.current)
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, []string{"alpha", "beta"})
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})

	view := m.View()
	assert.Contains(t, view, "lightbar")
	assert.Contains(t, view, "alpha")
	assert.Contains(t, view, "2/2")
}
