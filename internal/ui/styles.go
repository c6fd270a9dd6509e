package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Grape palette for the terminal client.
var (
	cPrimary = lipgloss.Color("135") // grape
	cAccent  = lipgloss.Color("213") // pink
	cGood    = lipgloss.Color("42")
	cWarn    = lipgloss.Color("214")
	cBad     = lipgloss.Color("196")
	cMuted   = lipgloss.Color("244")
	cGold    = lipgloss.Color("220")
	cCell    = lipgloss.Color("238")
	cTarget  = lipgloss.Color("141")
	cFound   = lipgloss.Color("92")
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	AlertPanel  = lipgloss.NewStyle().BorderStyle(lipgloss.DoubleBorder()).BorderForeground(cBad).Padding(0, 2)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)

	cellIdle   = lipgloss.NewStyle().Foreground(cCell)
	cellTarget = lipgloss.NewStyle().Foreground(cTarget)
	cellFound  = lipgloss.NewStyle().Foreground(cFound)
	cellCursor = lipgloss.NewStyle().Foreground(cGold)
)

func Heading(title string) string {
	return Title.Render("🍇 " + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func keyHints(pairs ...string) string {
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, Key.Render(pairs[i])+" "+Muted.Render(pairs[i+1]))
	}
	return strings.Join(parts, Muted.Render("  ·  "))
}

func checkbox(on bool) string {
	if on {
		return Good.Render("[x]")
	}
	return "[ ]"
}

func cursorMark(on bool) string {
	if on {
		return Gold.Render("> ")
	}
	return "  "
}
