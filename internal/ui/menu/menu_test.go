package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenu_New(t *testing.T) {
	m := New()
	assert.Equal(t, ActionAddClassroom, m.Selected(), "expected first action selected by default")
}

func TestAction_Hotkeys(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionAddClassroom, "1"},
		{ActionListClassrooms, "2"},
		{ActionRemoveClassroom, "3"},
		{ActionAddStudent, "4"},
		{ActionListStudents, "5"},
		{ActionScheduleAssignment, "6"},
		{ActionSubmitAssignment, "7"},
		{ActionListAssignments, "8"},
		{ActionExit, "0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.action.Hotkey(), "hotkey for %s", tt.action.Label())
	}
}

func TestMenu_Update_Navigation(t *testing.T) {
	m := New()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, ActionListClassrooms, m.Selected(), "expected next action after 'j'")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, ActionRemoveClassroom, m.Selected(), "expected next action after down arrow")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, ActionListClassrooms, m.Selected(), "expected previous action after 'k'")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, ActionAddClassroom, m.Selected(), "expected previous action after up arrow")

	// Top boundary
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, ActionAddClassroom, m.Selected(), "expected selection to stay at top boundary")
}

func TestMenu_Update_BottomBoundary(t *testing.T) {
	m := New()
	for i := 0; i < 20; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	}
	assert.Equal(t, ActionExit, m.Selected(), "expected selection to stop at Exit")
}

func TestMenu_Update_Enter_EmitsSelectMsg(t *testing.T) {
	m := New()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd, "expected command from Enter")

	msg := cmd()
	selectMsg, ok := msg.(SelectMsg)
	require.True(t, ok, "expected SelectMsg")
	assert.Equal(t, ActionListClassrooms, selectMsg.Action)
}

func TestMenu_Update_Hotkeys_DispatchDirectly(t *testing.T) {
	tests := []struct {
		key  rune
		want Action
	}{
		{'1', ActionAddClassroom},
		{'4', ActionAddStudent},
		{'7', ActionSubmitAssignment},
		{'0', ActionExit},
	}

	for _, tt := range tests {
		m := New()
		m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{tt.key}})
		require.NotNil(t, cmd, "expected command from hotkey %q", tt.key)

		msg := cmd()
		selectMsg, ok := msg.(SelectMsg)
		require.True(t, ok, "expected SelectMsg from hotkey %q", tt.key)
		assert.Equal(t, tt.want, selectMsg.Action)
		assert.Equal(t, tt.want, m.Selected(), "expected selection to follow hotkey")
	}
}

func TestMenu_Update_UnknownKeyIsIgnored(t *testing.T) {
	m := New()
	before := m.Selected()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Nil(t, cmd, "expected no command for unknown key")
	assert.Equal(t, before, m.Selected(), "expected selection unchanged for unknown key")

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'9'}})
	assert.Nil(t, cmd, "expected no command for unmapped digit")
	assert.Equal(t, before, m.Selected())
}

func TestMenu_View(t *testing.T) {
	m := New()
	view := m.View()

	assert.Contains(t, view, "Virtual Classroom Manager", "expected title")
	assert.Contains(t, view, "1) Add Classroom", "expected hotkey prefix")
	assert.Contains(t, view, "0) Exit", "expected exit entry")
	assert.Contains(t, view, ">", "expected selection indicator")
}

func TestMenu_View_WithoutHotkeys(t *testing.T) {
	m := New().SetShowHotkeys(false)
	view := m.View()

	assert.Contains(t, view, "Add Classroom")
	assert.NotContains(t, view, "1) Add Classroom", "expected no hotkey prefix")
}

func TestMenu_View_Stability(t *testing.T) {
	m := New()
	assert.Equal(t, m.View(), m.View(), "expected stable output from same model")
}
