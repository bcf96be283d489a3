package help

import (
	"regexp"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stripANSI removes ANSI escape codes from a string for easier testing.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func TestHelp_View_ListsActions(t *testing.T) {
	m := New("dark").SetSize(80, 40)
	view := stripANSI(m.View())

	assert.Contains(t, view, "Virtual Classroom Manager", "expected title")
	assert.Contains(t, view, "Add Classroom", "expected action listing")
	assert.Contains(t, view, "esc close", "expected footer hint")
}

func TestHelp_Update_CloseKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune{'?'}},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		m := New("dark")
		_, cmd := m.Update(key)
		require.NotNil(t, cmd, "expected command from %s", key.String())

		_, ok := cmd().(CloseMsg)
		assert.True(t, ok, "expected CloseMsg from %s", key.String())
	}
}

func TestHelp_Update_OtherKeysIgnored(t *testing.T) {
	m := New("dark")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Nil(t, cmd, "expected other keys ignored")
}

func TestHelp_Overlay_WithoutBackground(t *testing.T) {
	m := New("dark").SetSize(100, 50)
	out := m.Overlay("")
	assert.Contains(t, stripANSI(out), "Add Classroom")
}
