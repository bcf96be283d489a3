package toaster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToaster_ShowAndHide(t *testing.T) {
	m := New()
	assert.False(t, m.Visible(), "expected new toaster hidden")
	assert.Empty(t, m.View(), "expected no output while hidden")

	m = m.Show("Classroom removed.", StyleSuccess)
	assert.True(t, m.Visible())
	assert.Equal(t, "Classroom removed.", m.Message())

	m = m.Hide()
	assert.False(t, m.Visible())
	assert.Empty(t, m.Message())
}

func TestToaster_View_Styles(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		emoji string
	}{
		{"success", StyleSuccess, "✅"},
		{"error", StyleError, "❌"},
		{"info", StyleInfo, "ℹ️"},
		{"warn", StyleWarn, "⚠️"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New().Show("message", tt.style)
			view := m.View()
			assert.Contains(t, view, tt.emoji, "expected style emoji in view")
			assert.Contains(t, view, "message", "expected message in view")
		})
	}
}

func TestToaster_Overlay_HiddenReturnsBackground(t *testing.T) {
	m := New()
	bg := "background"
	assert.Equal(t, bg, m.Overlay(bg, 80, 24), "expected background unchanged while hidden")
}

func TestToaster_Overlay_VisibleEmbedsToast(t *testing.T) {
	m := New().Show("hello", StyleInfo)
	out := m.Overlay("", 40, 10)
	assert.Contains(t, out, "hello", "expected toast content in overlay output")
}

func TestScheduleDismiss(t *testing.T) {
	cmd := ScheduleDismiss(time.Millisecond)
	require.NotNil(t, cmd)

	msg := cmd()
	_, ok := msg.(DismissMsg)
	assert.True(t, ok, "expected DismissMsg after tick")
}
