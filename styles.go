package main

import "github.com/charmbracelet/lipgloss"

// Styles are initialized after theme is loaded
// All styles dynamically use CurrentTheme for colors

// GetBaseStyle returns the base text style with theme foreground color
func GetBaseStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Foreground))
}

// GetTitleStyle returns the title style with theme blue color
func GetTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(CurrentTheme.Blue))
}

// GetLabelStyle returns the label style with theme gray color
func GetLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Gray))
}

// GetMenuKeyStyle returns the style for menu option numbers
func GetMenuKeyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(CurrentTheme.Yellow))
}

// GetBannerStyle returns the style rendered ASCII art is shown in
func GetBannerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Green)).
		Bold(true)
}

// GetSubtleStyle returns the subtle style with theme subtle color
func GetSubtleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Subtle))
}

// GetStatusBarStyle returns the status bar style
func GetStatusBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Gray)).
		Background(lipgloss.Color(CurrentTheme.Subtle))
}

// GetErrorStyle returns the error style with theme red color
func GetErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Red)).
		Bold(true)
}

// GetSuccessStyle returns the style for save confirmations
func GetSuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Green))
}

// Global styles, set from the current theme
var (
	baseStyle      = GetBaseStyle()
	titleStyle     = GetTitleStyle()
	labelStyle     = GetLabelStyle()
	menuKeyStyle   = GetMenuKeyStyle()
	bannerStyle    = GetBannerStyle()
	subtleStyle    = GetSubtleStyle()
	statusBarStyle = GetStatusBarStyle()
	errorStyle     = GetErrorStyle()
	successStyle   = GetSuccessStyle()
)

// InitStyles must be called after InitTheme() to set up global styles
func InitStyles() {
	baseStyle = GetBaseStyle()
	titleStyle = GetTitleStyle()
	labelStyle = GetLabelStyle()
	menuKeyStyle = GetMenuKeyStyle()
	bannerStyle = GetBannerStyle()
	subtleStyle = GetSubtleStyle()
	statusBarStyle = GetStatusBarStyle()
	errorStyle = GetErrorStyle()
	successStyle = GetSuccessStyle()
}
