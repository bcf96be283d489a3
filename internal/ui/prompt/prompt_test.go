package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(m Model, text string) Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func pressEnter(m Model) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestPrompt_SingleField_Done(t *testing.T) {
	m := New("Add Classroom", []Field{{Key: "name", Label: "Classroom name", Placeholder: "Math101"}})

	m = typeText(m, "Math101")
	_, cmd := pressEnter(m)
	require.NotNil(t, cmd, "expected command after final field")

	msg := cmd()
	done, ok := msg.(DoneMsg)
	require.True(t, ok, "expected DoneMsg")
	assert.Equal(t, map[string]string{"name": "Math101"}, done.Values)
}

func TestPrompt_TrimsWhitespace(t *testing.T) {
	m := New("Add Classroom", []Field{{Key: "name", Label: "Classroom name"}})

	m = typeText(m, "  Math101  ")
	_, cmd := pressEnter(m)
	require.NotNil(t, cmd)

	done := cmd().(DoneMsg)
	assert.Equal(t, "Math101", done.Values["name"], "expected trimmed value")
}

func TestPrompt_EmptyInputRejectedInline(t *testing.T) {
	m := New("Add Classroom", []Field{{Key: "name", Label: "Classroom name"}})

	m, cmd := pressEnter(m)
	assert.Nil(t, cmd, "expected no DoneMsg for empty input")
	assert.Contains(t, m.View(), "Classroom name cannot be empty.", "expected inline error")

	// Whitespace-only is empty too
	m = typeText(m, "   ")
	m, cmd = pressEnter(m)
	assert.Nil(t, cmd, "expected whitespace-only input rejected")

	// A real value clears the error and completes
	m = typeText(m, "Math101")
	m, cmd = pressEnter(m)
	require.NotNil(t, cmd)
	assert.NotContains(t, m.View(), "cannot be empty", "expected error cleared")
}

func TestPrompt_MultiField_Advances(t *testing.T) {
	fields := []Field{
		{Key: "id", Label: "Student ID"},
		{Key: "name", Label: "Student name"},
	}
	m := New("Add Student", fields)
	assert.Equal(t, "Student ID", m.Current().Label)

	m = typeText(m, "S1")
	m, cmd := pressEnter(m)
	assert.Nil(t, cmd, "expected no DoneMsg before last field")
	assert.Equal(t, "Student name", m.Current().Label, "expected advance to second field")

	m = typeText(m, "Ann")
	_, cmd = pressEnter(m)
	require.NotNil(t, cmd)

	done := cmd().(DoneMsg)
	assert.Equal(t, map[string]string{"id": "S1", "name": "Ann"}, done.Values)
}

func TestPrompt_Esc_EmitsCancelMsg(t *testing.T) {
	m := New("Add Classroom", []Field{{Key: "name", Label: "Classroom name"}})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd, "expected command from Esc")

	_, ok := cmd().(CancelMsg)
	assert.True(t, ok, "expected CancelMsg from Esc")
}

func TestPrompt_View(t *testing.T) {
	fields := []Field{
		{Key: "id", Label: "Student ID", Placeholder: "S1"},
		{Key: "name", Label: "Student name"},
	}
	m := New("Add Student", fields)
	view := m.View()

	assert.Contains(t, view, "Add Student", "expected title")
	assert.Contains(t, view, "(1/2)", "expected progress indicator")
	assert.Contains(t, view, "Student ID", "expected current field label")
	assert.Contains(t, view, "esc cancel", "expected hint line")
}
