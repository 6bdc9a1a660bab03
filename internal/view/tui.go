package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ImSingee/gitstat/internal/status"
)

type UIOptions struct {
	Title string
	// Load resolves the records to show, called again on every refresh
	Load func() ([]*status.Record, error)
	// Changes triggers a refresh on every receive (optional)
	Changes <-chan struct{}
	// Decorate renders the status column, Colored(Letters) if nil
	Decorate Decorator
}

func RunUI(options *UIOptions) error {
	p := tea.NewProgram(newModel(options), tea.WithAltScreen())

	_, err := p.Run()
	return err
}

type loadedMsg struct {
	records []*status.Record
	err     error
}

type changedMsg struct{}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

type model struct {
	options *UIOptions

	records []*status.Record
	err     error

	cursor int
	offset int
	height int

	// at most one load runs at a time, a refresh asked meanwhile is queued
	loading bool
	pending bool
}

func newModel(options *UIOptions) model {
	if options.Decorate == nil {
		options.Decorate = Colored(Letters)
	}

	return model{
		options: options,
		height:  20,
		loading: true, // Init starts the first load
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.waitChange())
}

func (m model) load() tea.Cmd {
	load := m.options.Load
	return func() tea.Msg {
		records, err := load()
		return loadedMsg{records: records, err: err}
	}
}

func (m model) waitChange() tea.Cmd {
	changes := m.options.Changes
	if changes == nil {
		return nil
	}

	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return changedMsg{}
	}
}

func (m model) refresh() (model, tea.Cmd) {
	if m.loading {
		m.pending = true
		return m, nil
	}

	m.loading = true
	return m, m.load()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "home", "g":
			m.move(-len(m.records))
		case "end", "G":
			m.move(len(m.records))
		case "r":
			return m.refresh()
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 3 // title, blank line and help
		if m.height < 1 {
			m.height = 1
		}
		m.move(0)
	case changedMsg:
		m, cmd := m.refresh()
		return m, tea.Batch(cmd, m.waitChange())
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.records = status.OrderForDisplay(msg.records)
			m.move(0)
		}
		if m.pending {
			m.pending = false
			return m.refresh()
		}
	}

	return m, nil
}

func (m *model) move(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.records) {
		m.cursor = len(m.records) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.options.Title))
	if m.loading {
		b.WriteString(" (refreshing)")
	}
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errStyle.Render("Error: "+m.err.Error()) + "\n")
	case len(m.records) == 0 && !m.loading:
		b.WriteString("Nothing to show\n")
	}

	end := m.offset + m.height
	if end > len(m.records) {
		end = len(m.records)
	}
	for i := m.offset; i < end; i++ {
		line := FormatRecord(m.records[i], m.options.Decorate)
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString(helpStyle.Render(fmt.Sprintf("%d files • j/k move • r refresh • q quit", len(m.records))))

	return b.String()
}

// FormatRecord renders one line of an ordered tree: status, indentation by depth, base name
func FormatRecord(r *status.Record, decorate Decorator) string {
	name := strings.TrimSuffix(r.Name, "/")
	depth := strings.Count(name, "/")
	base := name[strings.LastIndexByte(name, '/')+1:]
	if r.IsDir() {
		base += "/"
	}

	return decorate(r.Status) + " " + strings.Repeat("  ", depth) + base
}
