package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/podo-rush/internal/app"
	"github.com/appengine-ltd/podo-rush/internal/game"
)

// Grid placement inside viewGrape during the cell search, for mouse hits.
const (
	grapeGridTop   = 4
	grapeGridLeft  = 2
	grapeCellWidth = 2
)

func grapeCellAt(x, y int) (int, bool) {
	row := y - grapeGridTop
	if x < grapeGridLeft || row < 0 || row >= game.GrapeGridSize {
		return 0, false
	}
	col := (x - grapeGridLeft) / grapeCellWidth
	if col >= game.GrapeGridSize {
		return 0, false
	}
	return row*game.GrapeGridSize + col, true
}

func (m model) updateGrape(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := m.session.Grape()
	if g == nil {
		return m, nil
	}
	if msg.Type == tea.KeyEsc {
		m.navigate(app.ScreenMain)
		return m, nil
	}

	switch g.State() {
	case game.GrapeEntry:
		if msg.Type == tea.KeyEnter {
			m.fail(g.Start(m.ctx, m.grapeName.String()))
			return m, nil
		}
		m.grapeName.capture(msg)
	case game.GrapeAreaSelection:
		switch s := msg.String(); s {
		case "left", "h", "up", "k":
			m.grapeArea = wrapIndex(m.grapeArea-1, game.GrapeAreaCount)
		case "right", "l", "down", "j", "tab":
			m.grapeArea = wrapIndex(m.grapeArea+1, game.GrapeAreaCount)
		case "enter", " ":
			m.fail(g.SelectArea(m.grapeArea))
		default:
			if len(s) == 1 && s[0] >= 'a' && s[0] < 'a'+game.GrapeAreaCount {
				m.grapeArea = int(s[0] - 'a')
				m.fail(g.SelectArea(m.grapeArea))
			}
		}
	case game.GrapeCellSearch:
		n := game.GrapeGridSize
		row, col := m.grapeCursor/n, m.grapeCursor%n
		switch msg.String() {
		case "up", "k":
			row = wrapIndex(row-1, n)
		case "down", "j":
			row = wrapIndex(row+1, n)
		case "left", "h":
			col = wrapIndex(col-1, n)
		case "right", "l":
			col = wrapIndex(col+1, n)
		case "enter", " ":
			return m.clickGrape(m.grapeCursor)
		}
		m.grapeCursor = row*n + col
	}
	return m, nil
}

func (m model) clickGrape(idx int) (tea.Model, tea.Cmd) {
	if _, err := m.session.ClickGrapeCell(m.ctx, idx); err != nil {
		m.fail(err)
	}
	m.enterIfMoved()
	return m, nil
}

// enterIfMoved resets cursors once a finished game has routed elsewhere.
func (m *model) enterIfMoved() {
	if sc := m.session.Screen(); sc != app.ScreenGrape && sc != app.ScreenTicketing {
		m.enter()
	}
}

func (m model) viewGrape() string {
	g := m.session.Grape()
	if g == nil {
		return ""
	}
	var b strings.Builder
	switch g.State() {
	case game.GrapeEntry:
		b.WriteString(header("Grape Finding", "esc home") + "\n\n")
		body := H2.Render("Start") + "\n\n" +
			LabelValue("Nickname", m.grapeName.view(true, "enter a nickname")) + "\n\n" +
			Muted.Render("1. Pressing enter starts the timer.") + "\n" +
			Muted.Render("2. Pick an area, then click the 2 grapes as fast as you can.")
		b.WriteString(Panel.Render(body) + "\n\n")
		b.WriteString(keyHints("type", "nickname", "enter", "start", "esc", "home"))
	case game.GrapeAreaSelection:
		b.WriteString(header("Grape Finding", "time "+timerText(g.Live())) + "\n\n")
		b.WriteString(H2.Render("Choose a seating area") + "\n\n")
		for i := range game.GrapeAreaCount {
			label := fmt.Sprintf(" Area %s ", game.AreaLabel(i))
			if i == m.grapeArea {
				label = SelectedRow.Render(label)
			} else {
				label = Panel.Render(label)
			}
			b.WriteString(label)
			if i%3 == 2 {
				b.WriteString("\n")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n" + keyHints("a-f", "pick", "←/→", "move", "enter", "choose"))
	case game.GrapeCellSearch, game.GrapeComplete:
		// Line layout must match grapeGridTop.
		b.WriteString(header("Grape Finding", "esc home") + "\n\n")
		b.WriteString(fmt.Sprintf("%s   %s   %s\n\n",
			H2.Render("Click the 2 purple cells"),
			LabelValue("Time", timerText(g.Live())),
			LabelValue("Found", fmt.Sprintf("%d/%d", g.FoundCount(), game.GrapeTargetCount)),
		))
		pad := strings.Repeat(" ", grapeGridLeft)
		for r := range game.GrapeGridSize {
			b.WriteString(pad)
			for c := range game.GrapeGridSize {
				idx := r*game.GrapeGridSize + c
				b.WriteString(m.grapeCell(g, idx))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n" + keyHints("arrows", "move", "enter", "click", "mouse", "click"))
	}
	return b.String()
}

func (m model) grapeCell(g *game.GrapeGame, idx int) string {
	switch {
	case idx == m.grapeCursor:
		if g.IsTarget(idx) && !g.IsFound(idx) {
			return cellCursor.Render("◆ ")
		}
		return cellCursor.Render("□ ")
	case g.IsFound(idx):
		return cellFound.Render("● ")
	case g.IsTarget(idx):
		return cellTarget.Render("● ")
	default:
		return cellIdle.Render("■ ")
	}
}
