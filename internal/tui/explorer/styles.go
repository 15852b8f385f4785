// ============================================================================
// halang - Scripting Language Front End
// ============================================================================
//
// Package:     explorer
// Description: Styles for the AST explorer TUI
// Author:      Mike Stoffels with Claude
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package explorer

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette - shared with the halang CLI
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	// Background colors
	ColorBgPanel = lipgloss.Color("#1E293B") // Slate 800

	// Text colors
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Logo/Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	FileStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// Tree styles
var (
	NodeKindStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	NodeLabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	NodeDetailStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	GutterStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Diagnostic styles
var (
	DiagErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	DiagWarnStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	DiagPositionStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)
)

// Panel/Box styles
var (
	MainPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	TabBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StatusWatchStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Tab styles
var (
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true).
			Underline(true)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)
)

// Title panel style
var (
	TitlePanelStyle = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 2).
		MarginBottom(1)
)

// Logo
const Logo = "halang explorer"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderTab renders a view tab
func RenderTab(key string, view View, active bool) string {
	label := key + ":" + view.String()
	if active {
		return TabActiveStyle.Render(label)
	}
	return TabInactiveStyle.Render(label)
}
