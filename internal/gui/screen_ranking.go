package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/podo-rush/internal/app"
	"github.com/appengine-ltd/podo-rush/internal/ranking"
	uitheme "github.com/appengine-ltd/podo-rush/internal/ui/theme"
)

type rankingLayout struct {
	Panel   rl.Rectangle
	Rows    []rl.Rectangle
	Buttons []rl.Rectangle // prev, next, retry, home
}

func computeRankingLayout(layout screenLayout, pageSize int) rankingLayout {
	body := layout.Body
	panel := rl.NewRectangle(body.X+body.Width/2-360, body.Y, 720, body.Height-uitheme.ButtonHeight-spaceL)
	rows := stackRects(panel.X+spaceM, panel.Y+64, panel.Width-spaceM*2, uitheme.RowHeight, 6, pageSize)
	buttons := rowRects(panel.X, panel.Y+panel.Height+spaceM, panel.Width, uitheme.ButtonHeight, spaceM, 4)
	return rankingLayout{Panel: panel, Rows: rows, Buttons: buttons}
}

func (ui *gameUI) updateRanking() {
	switch {
	case anyKeyPressed(rl.KeyEscape, rl.KeyH):
		ui.navigate(app.ScreenMain)
		return
	case anyKeyPressed(rl.KeyRight, rl.KeyN, rl.KeyPageDown):
		ui.session.NextPage(ui.ctx)
	case anyKeyPressed(rl.KeyLeft, rl.KeyP, rl.KeyPageUp):
		ui.session.PrevPage(ui.ctx)
	case anyKeyPressed(rl.KeyR, rl.KeyEnter):
		ui.session.Retry()
		ui.enter()
		return
	}

	p, ok := mouseClicked()
	if !ok {
		return
	}
	v := ui.session.RankingView(ui.ctx)
	l := computeRankingLayout(computeScreenLayout(ui.width, ui.height), len(v.Rows))
	idx, hit := hitIndex(l.Buttons, p)
	if !hit {
		return
	}
	switch idx {
	case 0:
		ui.session.PrevPage(ui.ctx)
	case 1:
		ui.session.NextPage(ui.ctx)
	case 2:
		ui.session.Retry()
		ui.enter()
	case 3:
		ui.navigate(app.ScreenMain)
	}
}

func (ui *gameUI) drawRanking(layout screenLayout) {
	g, _ := ui.session.Screen().RankingGame()
	v := ui.session.RankingView(ui.ctx)
	ui.drawScreenHeader(layout, g.Title+" Rankings", fmt.Sprintf("Page %d / %d", v.Page.Number, v.Page.TotalPages))

	l := computeRankingLayout(layout, len(v.Rows))
	DrawPanel(l.Panel, "Fastest times", false)
	if len(v.Rows) == 0 {
		drawTextCentered("No records yet. Be the first!", l.Panel, 120, typeScale.Body, AppTheme.TextMuted)
	}
	for i, row := range v.Rows {
		state := listStateNormal
		if row.Highlighted {
			state = listStateHighlighted
		}
		DrawListItem(l.Rows[i], state, fmt.Sprintf("%2d.  %s", row.Rank, row.Entry.Name), ranking.FormatTime(row.Entry)+"s")
	}

	prev := buttonStateNormal
	if !v.Page.HasPrev() {
		prev = buttonStateDisabled
	}
	next := buttonStateNormal
	if !v.Page.HasNext() {
		next = buttonStateDisabled
	}
	DrawButton(l.Buttons[0], prev, "Prev")
	DrawButton(l.Buttons[1], next, "Next")
	DrawButton(l.Buttons[2], buttonStateSelected, "Play again")
	DrawButton(l.Buttons[3], buttonStateNormal, "Home")
	ui.drawFooter(layout, "Left/Right page  ·  R retry  ·  Esc home")
}
