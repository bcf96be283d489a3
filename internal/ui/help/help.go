// Package help provides the help modal listing keys and menu actions.
package help

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vclass/internal/ui/markdown"
	"vclass/internal/ui/overlay"
	"vclass/internal/ui/styles"
)

const helpText = `# Virtual Classroom Manager

Manage classrooms, students, and assignments from the menu.
All data lives in memory and is discarded on exit.

## Keys

- ` + "`j` / `k` / arrows" + ` — move between actions
- ` + "`1`..`8`, `0`" + ` — run an action directly
- ` + "`enter`" + ` — run the highlighted action
- ` + "`esc`" + ` — cancel a prompt
- ` + "`?`" + ` — toggle this help
- ` + "`0` or `ctrl+c`" + ` — exit

## Actions

1. Add Classroom
2. List Classrooms
3. Remove Classroom (drops its students and assignments)
4. Add Student to Classroom
5. List Students in Classroom
6. Schedule Assignment for Classroom
7. Submit Assignment
8. List Assignments in Classroom
`

const contentWidth = 52

// CloseMsg is sent when the modal is dismissed.
type CloseMsg struct{}

// Model holds the help modal state.
type Model struct {
	content        string
	viewportWidth  int
	viewportHeight int
}

// New creates the help modal, rendering its markdown once.
// Falls back to the raw text if the renderer cannot be built.
func New(mdStyle string) Model {
	content := helpText
	if r, err := markdown.New(contentWidth, mdStyle); err == nil {
		if rendered, err := r.Render(helpText); err == nil {
			content = rendered
		}
	}
	return Model{content: content}
}

// NewPlain creates the help modal with the raw text, skipping markdown
// rendering entirely.
func NewPlain() Model {
	return Model{content: helpText}
}

// SetSize sets the viewport dimensions for overlay rendering.
func (m Model) SetSize(width, height int) Model {
	m.viewportWidth = width
	m.viewportHeight = height
	return m
}

// Update handles messages. Esc, "?", and "q" close the modal.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "?", "q":
			return m, func() tea.Msg { return CloseMsg{} }
		}
	}
	return m, nil
}

// View renders the help box.
func (m Model) View() string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Padding(0, 1).
		Width(contentWidth + 2)

	footer := styles.MutedStyle.Render("esc close")
	return boxStyle.Render(strings.TrimRight(m.content, "\n") + "\n\n" + footer)
}

// Overlay renders the help modal centered on a background view.
func (m Model) Overlay(background string) string {
	box := m.View()
	if background == "" {
		return lipgloss.Place(
			m.viewportWidth, m.viewportHeight,
			lipgloss.Center, lipgloss.Center,
			box,
		)
	}
	return overlay.Place(overlay.Config{
		Width:    m.viewportWidth,
		Height:   m.viewportHeight,
		Position: overlay.Center,
	}, box, background)
}
