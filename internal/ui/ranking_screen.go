package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/podo-rush/internal/app"
	"github.com/appengine-ltd/podo-rush/internal/ranking"
)

func (m model) updateRanking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "h", "q":
		m.navigate(app.ScreenMain)
	case "right", "l", "n", "pgdown":
		m.session.NextPage(m.ctx)
	case "left", "p", "pgup":
		m.session.PrevPage(m.ctx)
	case "home", "g":
		m.session.SetPage(m.ctx, 1)
	case "r", "enter":
		m.session.Retry()
		m.enter()
	}
	return m, nil
}

func (m model) viewRanking() string {
	g, _ := m.session.Screen().RankingGame()
	v := m.session.RankingView(m.ctx)

	var b strings.Builder
	b.WriteString(header(g.Title+" Rankings", fmt.Sprintf("page %d/%d", v.Page.Number, v.Page.TotalPages)) + "\n\n")
	if len(v.Rows) == 0 {
		b.WriteString(Muted.Render("No records yet. Be the first!") + "\n\n")
	} else {
		b.WriteString(Muted.Render(fmt.Sprintf("%-5s %-24s %10s", "Rank", "Name", "Time")) + "\n")
		for _, r := range v.Rows {
			b.WriteString(rankingRow(r) + "\n")
		}
		b.WriteString("\n")
	}
	if v.LastName != "" {
		b.WriteString(LabelValue("Last played as", v.LastName) + "\n\n")
	}
	b.WriteString(keyHints("←/→", "page", "r", "retry", "esc", "home"))
	return b.String()
}

func rankingRow(r ranking.Row) string {
	line := fmt.Sprintf("%-5d %-24s %9ss", r.Rank, truncate(r.Entry.Name, 24), ranking.FormatTime(r.Entry))
	switch {
	case r.Highlighted:
		return SelectedRow.Render(line)
	case r.Rank <= 3:
		return Gold.Render(line)
	default:
		return line
	}
}

func truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n-1]) + "…"
}
