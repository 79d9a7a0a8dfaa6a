package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rhaddad/propman/internal/theme"
)

// Layout manages the terminal layout dimensions: a one-line header, the
// content area, and a one-line status bar.
type Layout struct {
	Width  int
	Height int
}

// NewLayout creates a Layout with the given terminal dimensions.
func NewLayout(width, height int) Layout {
	return Layout{Width: width, Height: height}
}

// ContentHeight returns the height available for the main content area.
func (l Layout) ContentHeight() int {
	return l.Height - 2
}

// RenderHeader renders the top header bar with the application title on
// the left and the unread badge on the right.
func (l Layout) RenderHeader(title string, badge string) string {
	left := theme.HeaderStyle.Render(title)

	var right string
	if badge != "" {
		right = theme.UnreadBadgeStyle.Render(badge)
	}

	return joinWithFiller(l.Width, left, right, theme.HeaderStyle)
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	return joinWithFiller(l.Width, theme.StatusBarStyle.Render(hints), "", theme.StatusBarStyle)
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, content area, and status bar.
func (l Layout) RenderWithFrame(header, content, statusBar string) string {
	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// joinWithFiller lays out left and right segments on one line, padding
// the gap with the bar's background color.
func joinWithFiller(width int, left, right string, barStyle lipgloss.Style) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	filler := barStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(barStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, filler, right)
}
