package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/podo-rush/internal/app"
)

type menuItem struct {
	label  string
	blurb  string
	screen app.Screen
}

var menuItems = []menuItem{
	{label: "Grape Finding", blurb: "reaction training", screen: app.ScreenGrape},
	{label: "Ticketing", blurb: "practice a real ticket rush", screen: app.ScreenTicketing},
	{label: "Calendar", blurb: "plan concerts and ticket openings", screen: app.ScreenCalendar},
	{label: "Grape Rankings", blurb: "fastest grape finders", screen: app.ScreenGrapeRanking},
	{label: "Ticketing Rankings", blurb: "fastest checkouts", screen: app.ScreenTicketRanking},
	{label: "Quit"},
}

func (m model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.menuIdx = wrapIndex(m.menuIdx-1, len(menuItems))
	case "down", "j", "tab":
		m.menuIdx = wrapIndex(m.menuIdx+1, len(menuItems))
	case "1", "2", "3":
		m.menuIdx = int(msg.Runes[0] - '1')
		m.navigate(menuItems[m.menuIdx].screen)
	case "enter", " ":
		item := menuItems[m.menuIdx]
		if item.screen == "" {
			return m, tea.Quit
		}
		m.navigate(item.screen)
	}
	return m, nil
}

func (m model) viewMain() string {
	var b strings.Builder
	b.WriteString(Heading("PODO RUSH") + "\n")
	b.WriteString(Muted.Render("ticketing practice game") + "\n\n")
	for i, it := range menuItems {
		line := it.label
		if i == m.menuIdx {
			line = SelectedRow.Render(" " + line + " ")
		} else {
			line = H2.Render(line)
		}
		b.WriteString(cursorMark(i == m.menuIdx) + line)
		if it.blurb != "" {
			b.WriteString("  " + Muted.Render(it.blurb))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n" + keyHints("↑/↓", "move", "enter", "open", "1-3", "jump", ":", "command", "q", "quit"))
	return b.String()
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
