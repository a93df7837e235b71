package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/puravida/internal/cli/formatter"
	"github.com/alexanderramin/puravida/internal/domain"
)

// resultAction is what the guest chose to do from the result view.
type resultAction int

const (
	actionQuit resultAction = iota
	actionReset
	actionRevise
)

const (
	footerHeight  = 2
	maxProseWidth = 100
)

type resultKeyMap struct {
	Reset  key.Binding
	Revise key.Binding
	Quit   key.Binding
}

func defaultResultKeys() resultKeyMap {
	return resultKeyMap{
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "start over")),
		Revise: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "request changes")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// resultModel is a read-only, scrollable rendering of one itinerary. It
// quits with the chosen action and never mutates the itinerary.
type resultModel struct {
	itinerary *domain.Itinerary
	notes     []string
	keys      resultKeyMap
	viewport  viewport.Model
	ready     bool
	action    resultAction
}

func newResultModel(it *domain.Itinerary, notes []string) resultModel {
	return resultModel{itinerary: it, notes: notes, keys: defaultResultKeys()}
}

func (m resultModel) Init() tea.Cmd { return nil }

func (m resultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-footerHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.viewport.SetContent(formatter.FormatItinerary(m.itinerary, m.notes, min(msg.Width-2, maxProseWidth)))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.action = actionQuit
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.action = actionReset
			return m, tea.Quit
		case key.Matches(msg, m.keys.Revise):
			m.action = actionRevise
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m resultModel) View() string {
	if !m.ready {
		return "\n  " + formatter.Dim("Loading itinerary...")
	}
	return m.viewport.View() + "\n" + m.footer()
}

func (m resultModel) footer() string {
	help := ""
	for i, b := range []key.Binding{m.keys.Reset, m.keys.Revise, m.keys.Quit} {
		if i > 0 {
			help += formatter.Dim(" · ")
		}
		h := b.Help()
		help += formatter.StyleOrchid.Render(h.Key) + " " + formatter.Dim(h.Desc)
	}
	scroll := formatter.Dim(fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100))
	return "\n" + help + "  " + scroll
}

// runResultView shows the itinerary full-screen until the guest picks an
// action.
func runResultView(in io.Reader, out io.Writer, it *domain.Itinerary, notes []string) (resultAction, error) {
	p := tea.NewProgram(newResultModel(it, notes),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		return actionQuit, fmt.Errorf("showing itinerary: %w", err)
	}
	return final.(resultModel).action, nil
}
