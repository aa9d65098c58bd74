// Package ui composes the selector and editor widgets into the demo picker
// application: a bubbletea model that narrows a line list with a filter,
// pages entries through ov and reports activity on the event bus.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"lightbar/internal/config"
	"lightbar/internal/eventbus"
	"lightbar/internal/term"
	"lightbar/internal/ui/editor"
	"lightbar/internal/ui/selector"
	"lightbar/internal/ui/views"
)

type mode int

const (
	modeBrowse mode = iota
	modeFilter
)

const filterMaxWidth = 64

// Model represents the picker UI state
type Model struct {
	bus    eventbus.EventBus
	cfg    *config.Config
	keys   selector.KeyMap
	sel    *selector.Selector
	render *views.Renderer
	help   help.Model

	entries []string // full, unfiltered content
	current []string // content currently installed in the selector
	mode    mode

	filter       *editor.Editor
	filterEchoes []editor.Echo

	width    int
	showHelp bool
	status   string

	pager *PagerOps
}

// NewModel creates the picker model over a list of entries
func NewModel(bus eventbus.EventBus, cfg *config.Config, entries []string) (*Model, error) {
	keys := cfg.Keys.KeyMap()
	sel, err := selector.New(cfg.UI.Height, keys)
	if err != nil {
		return nil, err
	}
	sel.Replace(entries)

	styles := views.NewStyles(views.Theme{
		Highlight: cfg.Theme.Highlight,
		Lowlight:  cfg.Theme.Lowlight,
		Normal:    cfg.Theme.Normal,
		Fill:      cfg.Theme.Fill,
		Pad:       cfg.Theme.Pad,
	})

	return &Model{
		bus:     bus,
		cfg:     cfg,
		keys:    keys,
		sel:     sel,
		render:  views.NewRenderer(styles),
		help:    help.New(),
		entries: entries,
		current: entries,
		width:   80,
	}, nil
}

// SetProgram hands the model the running program so the pager can release
// and restore the terminal.
func (m *Model) SetProgram(p *tea.Program) {
	m.pager = NewPagerOps(p)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("pager: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeFilter {
			return m.updateFilter(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.bus.Publish(eventbus.QuitEvent{})
		return m, tea.Quit

	case "enter":
		entry, err := m.sel.Selected()
		if err != nil {
			m.status = "nothing to choose"
			return m, nil
		}
		m.bus.Publish(eventbus.EntryChosenEvent{Index: m.sel.Index(), Entry: entry})
		return m, tea.Quit

	case "/":
		ed, err := editor.New(editor.Options{
			MaxWidth: filterMaxWidth,
			Silent:   m.cfg.UI.Silent,
		})
		if err != nil {
			m.status = fmt.Sprintf("filter: %v", err)
			return m, nil
		}
		m.mode = modeFilter
		m.filter = ed
		m.filterEchoes = ed.InitialEcho()
		return m, nil

	case "v":
		entry, err := m.sel.Selected()
		if err != nil || m.pager == nil {
			return m, nil
		}
		return m, func() tea.Msg {
			return pagerMsg{err: m.pager.ShowText(entry)}
		}

	case "?":
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil
	}

	m.sel.ProcessKey(msg)
	if m.sel.Quit() {
		m.bus.Publish(eventbus.QuitEvent{})
		return m, tea.Quit
	}
	if m.sel.Moved() {
		m.bus.Publish(eventbus.SelectionMovedEvent{
			OldIndex: m.sel.LastIndex(),
			NewIndex: m.sel.Index(),
		})
	}
	return m, nil
}

// updateFilter drives the line editor one keystroke at a time and narrows
// the content list as the query changes.
func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	outcome, echoes := m.filter.Feed(term.KeyEvent{Key: msg})
	m.filterEchoes = append(m.filterEchoes, echoes...)

	switch outcome {
	case editor.OutcomeCancelled:
		m.mode = modeBrowse
		m.filter = nil
		m.replaceContent(m.entries)
		return m, nil
	case editor.OutcomeSubmitted:
		m.mode = modeBrowse
		m.filter = nil
		return m, nil
	}

	m.replaceContent(filterEntries(m.entries, m.filter.Value()))
	return m, nil
}

func (m *Model) replaceContent(entries []string) {
	m.current = entries
	m.sel.Replace(entries)
	m.bus.Publish(eventbus.ContentReplacedEvent{Count: len(entries)})
	if m.sel.Moved() {
		m.bus.Publish(eventbus.SelectionMovedEvent{
			OldIndex: m.sel.LastIndex(),
			NewIndex: m.sel.Index(),
		})
	}
}

// filterEntries keeps the entries containing the query, case-insensitively
func filterEntries(entries []string, query string) []string {
	if query == "" {
		return entries
	}
	q := strings.ToLower(query)
	var out []string
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e), q) {
			out = append(out, e)
		}
	}
	return out
}

func (m *Model) View() string {
	styles := m.render.Styles()
	var b strings.Builder

	b.WriteString(styles.Title.Render("lightbar"))
	b.WriteString("\n")

	b.WriteString(m.render.Window(m.sel.FullRender(), m.current, m.width))
	b.WriteString("\n")

	if m.mode == modeFilter {
		b.WriteString(styles.Filter.Render("/" + m.render.EchoLine(m.filterEchoes)))
		b.WriteString("\n")
	}

	pos := "-/-"
	if m.sel.Len() > 0 {
		pos = fmt.Sprintf("%d/%d", m.sel.Index()+1, m.sel.Len())
	}
	status := pos
	if m.status != "" {
		status += "  " + m.status
	}
	b.WriteString(styles.Status.Render(status))
	b.WriteString("\n")

	b.WriteString(m.help.View(m.keys))
	return b.String()
}
