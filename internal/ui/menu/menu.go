// Package menu provides the action menu for the classroom manager.
// Each entry maps 1:1 to one registry or classroom operation, mirroring
// the classic numbered console menu.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vclass/internal/ui/styles"
)

// Action identifies one menu entry.
type Action int

const (
	ActionAddClassroom Action = iota
	ActionListClassrooms
	ActionRemoveClassroom
	ActionAddStudent
	ActionListStudents
	ActionScheduleAssignment
	ActionSubmitAssignment
	ActionListAssignments
	ActionExit
)

// actionLabels maps actions to their display labels.
var actionLabels = map[Action]string{
	ActionAddClassroom:       "Add Classroom",
	ActionListClassrooms:     "List Classrooms",
	ActionRemoveClassroom:    "Remove Classroom",
	ActionAddStudent:         "Add Student to Classroom",
	ActionListStudents:       "List Students in Classroom",
	ActionScheduleAssignment: "Schedule Assignment for Classroom",
	ActionSubmitAssignment:   "Submit Assignment",
	ActionListAssignments:    "List Assignments in Classroom",
	ActionExit:               "Exit",
}

// Label returns the display label for the action.
func (a Action) Label() string {
	return actionLabels[a]
}

// Hotkey returns the digit that triggers the action directly.
// Exit keeps the conventional "0".
func (a Action) Hotkey() string {
	if a == ActionExit {
		return "0"
	}
	return string(rune('1' + a))
}

// actionForHotkey maps a pressed digit back to its action.
func actionForHotkey(key string) (Action, bool) {
	for a := ActionAddClassroom; a <= ActionExit; a++ {
		if a.Hotkey() == key {
			return a, true
		}
	}
	return 0, false
}

// SelectMsg is sent when an action is chosen.
type SelectMsg struct {
	Action Action
}

// Model holds the menu state.
type Model struct {
	selected    Action
	showHotkeys bool
	width       int
}

// New creates a new menu with the first action selected.
func New() Model {
	return Model{
		selected:    ActionAddClassroom,
		showHotkeys: true,
		width:       39,
	}
}

// SetShowHotkeys toggles the "1)".."0)" prefixes.
func (m Model) SetShowHotkeys(show bool) Model {
	m.showHotkeys = show
	return m
}

// Selected returns the currently highlighted action.
func (m Model) Selected() Action {
	return m.selected
}

// Update handles messages. Digits dispatch their action immediately;
// any other unrecognized key is ignored and nothing is attempted.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "j", "down", "ctrl+n":
			if m.selected < ActionExit {
				m.selected++
			}
		case "k", "up", "ctrl+p":
			if m.selected > ActionAddClassroom {
				m.selected--
			}
		case "enter":
			selected := m.selected
			return m, func() tea.Msg {
				return SelectMsg{Action: selected}
			}
		default:
			if action, ok := actionForHotkey(key); ok {
				m.selected = action
				return m, func() tea.Msg {
					return SelectMsg{Action: action}
				}
			}
		}
	}
	return m, nil
}

// View renders the menu box.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)

	var options strings.Builder
	for a := ActionAddClassroom; a <= ActionExit; a++ {
		label := a.Label()
		if m.showHotkeys {
			label = a.Hotkey() + ") " + label
		}

		var line string
		if a == m.selected {
			line = styles.SelectionIndicatorStyle.Render(">") + lipgloss.NewStyle().Bold(true).Render(label)
		} else {
			line = " " + label
		}
		options.WriteString(line)
		if a < ActionExit {
			options.WriteString("\n")
		}
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(m.width)

	dividerStyle := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor)
	divider := dividerStyle.Render(strings.Repeat("─", m.width))

	content := titleStyle.Render("Virtual Classroom Manager") + "\n" +
		divider + "\n" +
		options.String()

	return boxStyle.Render(content)
}
