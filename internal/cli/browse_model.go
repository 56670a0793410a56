package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/lessonlog/internal/cli/formatter"
	"github.com/alexanderramin/lessonlog/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// browseKeyMap lists the week browser bindings.
type browseKeyMap struct {
	Prev      key.Binding
	Next      key.Binding
	Apply     key.Binding
	Clear     key.Binding
	Equipment key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var _ help.KeyMap = browseKeyMap{}

func newBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev week")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next week")),
		Apply:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "apply timetable")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear week")),
		Equipment: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "lessons/equipment")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.Apply, k.Clear, k.Equipment},
		{k.Help, k.Quit},
	}
}

// weekLoadedMsg carries the result of a week service call.
type weekLoadedMsg struct {
	view    *service.WeekView
	content string
	note    string
	err     error
}

// browseModel pages through the active teacher's weeks.
type browseModel struct {
	ctx   context.Context
	weeks service.WeekService

	keys      browseKeyMap
	help      help.Model
	vp        viewport.Model
	ready     bool
	equipment bool

	view    *service.WeekView
	content string
	note    string
	err     error
}

func newBrowseModel(ctx context.Context, weeks service.WeekService) browseModel {
	return browseModel{
		ctx:   ctx,
		weeks: weeks,
		keys:  newBrowseKeyMap(),
		help:  help.New(),
		vp:    viewport.New(0, 0),
	}
}

func (m browseModel) load(note string, call func(context.Context) (*service.WeekView, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		view, err := call(ctx)
		return weekLoadedMsg{view: view, note: note, err: err}
	}
}

func (m browseModel) shift(delta int) tea.Cmd {
	return m.load("", func(ctx context.Context) (*service.WeekView, error) {
		return m.weeks.Shift(ctx, delta)
	})
}

func (m browseModel) Init() tea.Cmd {
	return m.load("", m.weeks.Open)
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-4, 1)
		m.ready = true
		m.refresh()
		return m, nil

	case weekLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.view = msg.view
			m.note = msg.note
			if msg.view.Populated && m.note == "" {
				m.note = "generated from the timetable"
			}
			m.vp.GotoTop()
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			return m, m.shift(-1)
		case key.Matches(msg, m.keys.Next):
			return m, m.shift(1)
		case key.Matches(msg, m.keys.Apply):
			return m, m.load("timetable applied", m.weeks.ApplyTemplate)
		case key.Matches(msg, m.keys.Clear):
			return m, m.load("week cleared", m.weeks.Clear)
		case key.Matches(msg, m.keys.Equipment):
			m.equipment = !m.equipment
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// refresh re-renders the current week into the viewport.
func (m *browseModel) refresh() {
	m.content = ""
	if m.view != nil {
		h := weekHeader(m.view)
		if m.equipment {
			m.content = formatter.FormatEquipment(h, m.view.Equipment)
		} else {
			m.content = formatter.FormatWeek(h, m.view.Rows)
		}
	}
	m.vp.SetContent(m.content)
}

func (m browseModel) View() string {
	var b strings.Builder
	switch {
	case m.view == nil && m.err == nil:
		b.WriteString(formatter.Dim("Loading…"))
	case m.ready:
		b.WriteString(m.vp.View())
	default:
		b.WriteString(m.content)
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
	case m.note != "":
		b.WriteString(formatter.StyleGreen.Render(m.note))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
