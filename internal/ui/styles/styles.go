// Package styles contains Lip Gloss style definitions.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"vclass/internal/config"
)

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#CCCCCC"} // Main/primary text
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Hints, help text, footers

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Success states
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Warnings
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors

	// Highlight color for titles and the focused menu entry
	HighlightColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

	// Selection indicator color (used for ">" prefix in lists)
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}

	// Overlay boxes (menu, prompts, help)
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}

	// Toast borders per toast style
	ToastBorderSuccessColor = StatusSuccessColor
	ToastBorderErrorColor   = StatusErrorColor
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#74B9FF"}
	ToastBorderWarnColor    = StatusWarningColor

	// Selection indicator style (used for ">" prefix in lists)
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	// Common text styles
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(OverlayTitleColor)
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
)

// ApplyTheme overrides the built-in colors with any non-empty values from
// the theme config, then rebuilds the derived styles.
func ApplyTheme(theme config.ThemeConfig) {
	if theme.Highlight != "" {
		HighlightColor = solid(theme.Highlight)
		OverlayTitleColor = solid(theme.Highlight)
	}
	if theme.Subtle != "" {
		TextMutedColor = solid(theme.Subtle)
		OverlayBorderColor = solid(theme.Subtle)
	}
	if theme.Error != "" {
		StatusErrorColor = solid(theme.Error)
		ToastBorderErrorColor = solid(theme.Error)
	}
	if theme.Success != "" {
		StatusSuccessColor = solid(theme.Success)
		ToastBorderSuccessColor = solid(theme.Success)
	}

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(OverlayTitleColor)
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
}

func solid(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
}
