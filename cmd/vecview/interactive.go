package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/rawvec/vector"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5A56E0")).
			Padding(0, 1).
			MarginRight(1)

	rawStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Padding(0, 1).
			MarginRight(1)

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const historySize = 8

type entry struct {
	line string
	out  string
	err  error
}

type interactiveModel struct {
	vec     *vector.Vector[int]
	input   textinput.Model
	history []entry
}

func newInteractiveModel(v *vector.Vector[int]) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "push 5"
	ti.Prompt = "> "
	ti.Width = 48
	ti.Focus()

	return &interactiveModel{vec: v, input: ti}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			if line == "q" || line == "quit" {
				return m, tea.Quit
			}
			out, err := applyOp(m.vec, line)
			m.history = append(m.history, entry{line: line, out: out, err: err})
			if len(m.history) > historySize {
				m.history = m.history[len(m.history)-historySize:]
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("rawvec explorer"))
	b.WriteString("\n\n")

	b.WriteString(m.renderCells())
	b.WriteString("\n")
	b.WriteString(statStyle.Render(fmt.Sprintf("len=%d cap=%d", m.vec.Len(), m.vec.Cap())))
	b.WriteString("\n\n")

	for _, e := range m.history {
		b.WriteString(helpStyle.Render(e.line))
		b.WriteString("  ")
		if e.err != nil {
			b.WriteString(errorStyle.Render(e.err.Error()))
		} else {
			b.WriteString(okStyle.Render(e.out))
		}
		b.WriteString("\n")
	}
	if len(m.history) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("push N • insert I N • erase I • pop • reserve N • shrink • clear • esc quit"))
	b.WriteString("\n")

	return b.String()
}

// renderCells draws one box per slot: live elements first, then the
// spare capacity as dimmed placeholders.
func (m *interactiveModel) renderCells() string {
	if m.vec.Cap() == 0 {
		return rawStyle.Render("(null storage)")
	}

	cells := make([]string, 0, m.vec.Cap())
	for _, e := range m.vec.All() {
		cells = append(cells, cellStyle.Render(fmt.Sprintf("%d", e)))
	}
	for i := m.vec.Len(); i < m.vec.Cap(); i++ {
		cells = append(cells, rawStyle.Render("·"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func runInteractive(v *vector.Vector[int]) error {
	p := tea.NewProgram(newInteractiveModel(v), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
