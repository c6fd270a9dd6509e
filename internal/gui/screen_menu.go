package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/podo-rush/internal/app"
	uitheme "github.com/appengine-ltd/podo-rush/internal/ui/theme"
)

type menuItem struct {
	Label  string
	Screen app.Screen
}

var menuItems = []menuItem{
	{Label: "Grape Finding", Screen: app.ScreenGrape},
	{Label: "Ticketing", Screen: app.ScreenTicketing},
	{Label: "Calendar", Screen: app.ScreenCalendar},
	{Label: "Grape Rankings", Screen: app.ScreenGrapeRanking},
	{Label: "Ticketing Rankings", Screen: app.ScreenTicketRanking},
	{Label: "Quit"},
}

func menuRects(layout screenLayout) (rl.Rectangle, []rl.Rectangle) {
	panel := rl.NewRectangle(layout.Body.X+layout.Body.Width/2-240, layout.Body.Y+90, 480, float32(110+len(menuItems)*64))
	buttons := stackRects(panel.X+40, panel.Y+90, panel.Width-80, uitheme.ButtonHeight, 12, len(menuItems))
	return panel, buttons
}

func (ui *gameUI) updateMenu() {
	if anyKeyPressed(rl.KeyDown, rl.KeyTab) {
		ui.menuCursor = wrapIndex(ui.menuCursor+1, len(menuItems))
	}
	if rl.IsKeyPressed(rl.KeyUp) {
		ui.menuCursor = wrapIndex(ui.menuCursor-1, len(menuItems))
	}
	if idx, ok := digitPressed(3); ok {
		ui.menuCursor = idx
		ui.activateMenu()
		return
	}
	if p, ok := mouseClicked(); ok {
		_, buttons := menuRects(computeScreenLayout(ui.width, ui.height))
		if idx, hit := hitIndex(buttons, p); hit {
			ui.menuCursor = idx
			ui.activateMenu()
			return
		}
	}
	if anyKeyPressed(rl.KeyEnter, rl.KeySpace) {
		ui.activateMenu()
	}
	if rl.IsKeyPressed(rl.KeyQ) {
		ui.quit = true
	}
}

func (ui *gameUI) activateMenu() {
	item := menuItems[ui.menuCursor]
	if item.Screen == "" {
		ui.quit = true
		return
	}
	ui.navigate(item.Screen)
}

func (ui *gameUI) drawMenu(layout screenLayout) {
	uitheme.DrawTitle("PODO RUSH", layout.Header, 8)
	drawTextCentered("ticketing practice game  ·  v"+ui.cfg.Version, layout.Header, 52, typeScale.Small, AppTheme.TextMuted)

	panel, buttons := menuRects(layout)
	DrawPanel(panel, "Main Menu", true)
	for i, item := range menuItems {
		DrawButton(buttons[i], buttonState(i == ui.menuCursor), item.Label)
	}
	ui.drawFooter(layout, "Up/Down move  ·  Enter open  ·  1-3 jump  ·  Q quit")
}
