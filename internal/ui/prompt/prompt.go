// Package prompt provides a sequence of single-line text prompts.
// Input is trimmed before use; empty identifiers are rejected inline so
// core operations never see empty input.
package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vclass/internal/ui/styles"
)

// Field describes one prompted value.
type Field struct {
	Key         string // key under which the value is reported in DoneMsg
	Label       string // label shown above the input
	Placeholder string
}

// DoneMsg is sent when every field has a non-empty value.
type DoneMsg struct {
	Values map[string]string
}

// CancelMsg is sent when the prompt flow is cancelled.
type CancelMsg struct{}

// Model holds the prompt flow state.
type Model struct {
	title  string
	fields []Field
	index  int
	input  textinput.Model
	values map[string]string
	errMsg string
	width  int
}

// New creates a prompt flow over the given fields. Fields must be non-empty.
func New(title string, fields []Field) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Width = 30
	if len(fields) > 0 {
		ti.Placeholder = fields[0].Placeholder
	}
	ti.Focus()

	return Model{
		title:  title,
		fields: fields,
		input:  ti,
		values: make(map[string]string),
		width:  39,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Current returns the field currently being prompted.
func (m Model) Current() Field {
	if m.index >= 0 && m.index < len(m.fields) {
		return m.fields[m.index]
	}
	return Field{}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return CancelMsg{} }

		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				m.errMsg = m.Current().Label + " cannot be empty."
				return m, nil
			}

			m.values[m.Current().Key] = value
			m.errMsg = ""
			m.index++

			if m.index >= len(m.fields) {
				values := m.values
				return m, func() tea.Msg { return DoneMsg{Values: values} }
			}

			m.input.SetValue("")
			m.input.Placeholder = m.Current().Placeholder
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt box.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)

	dividerStyle := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor)
	divider := dividerStyle.Render(strings.Repeat("─", m.width))

	var body strings.Builder
	body.WriteString(titleStyle.Render(m.title))
	if len(m.fields) > 1 {
		body.WriteString(styles.MutedStyle.Render(fmt.Sprintf(" (%d/%d)", m.index+1, len(m.fields))))
	}
	body.WriteString("\n" + divider + "\n")
	body.WriteString(" " + m.Current().Label + "\n")
	body.WriteString(" " + m.input.View())
	if m.errMsg != "" {
		body.WriteString("\n " + styles.ErrorStyle.Render(m.errMsg))
	}
	body.WriteString("\n" + styles.MutedStyle.Render(" enter confirm · esc cancel"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(m.width)

	return boxStyle.Render(body.String())
}
