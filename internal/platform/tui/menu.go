package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// MenuItem is an entry of the main menu.
type MenuItem int

const (
	MenuPlay MenuItem = iota
	MenuControls
	MenuRules
	MenuRuns
	MenuQuit
)

var menuItems = []MenuItem{MenuPlay, MenuControls, MenuRules, MenuRuns, MenuQuit}

// label returns the menu text. Play reads "Resume" when a saved session waits.
func (i MenuItem) label(hasSaved bool) string {
	switch i {
	case MenuPlay:
		if hasSaved {
			return "Resume"
		}
		return "Start Game"
	case MenuControls:
		return "Controls"
	case MenuRules:
		return "Rules"
	case MenuRuns:
		return "Runs"
	case MenuQuit:
		return "Quit"
	default:
		return ""
	}
}

// MenuModel is the main menu state.
type MenuModel struct {
	cursor int
}

// Move handles a navigation action. It returns the chosen item and true on
// select.
func (m MenuModel) Move(action MenuAction) (MenuModel, MenuItem, bool) {
	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		return m, menuItems[m.cursor], true
	case MenuActionQuit:
		return m, MenuQuit, true
	}
	return m, MenuPlay, false
}

// Cursor returns the highlighted item.
func (m MenuModel) Cursor() MenuItem {
	return menuItems[m.cursor]
}

// View renders the menu.
func (m MenuModel) View(width int, hasSaved bool, best int) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("G R E E D Y   S N A K E"), width))
	b.WriteString("\n\n")

	if best > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best this session: %d", best), width))
		b.WriteString("\n\n")
	}

	for i, item := range menuItems {
		line := "  " + item.label(hasSaved)
		if i == m.cursor {
			line = activeStyle.Render("> " + item.label(hasSaved))
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"), width))
	b.WriteString("\n")

	return b.String()
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	visible := lipgloss.Width(text)
	if visible >= width {
		return text
	}
	padding := (width - visible) / 2
	return strings.Repeat(" ", padding) + text
}
