package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/podo-rush/internal/app"
	"github.com/appengine-ltd/podo-rush/internal/game"
	uitheme "github.com/appengine-ltd/podo-rush/internal/ui/theme"
)

type grapeLayout struct {
	Panel rl.Rectangle
	Input rl.Rectangle
	Start rl.Rectangle
	Areas []rl.Rectangle
	Grid  squareGridGeometry
}

func computeGrapeLayout(layout screenLayout) grapeLayout {
	body := layout.Body
	panel := rl.NewRectangle(body.X+body.Width/2-300, body.Y+40, 600, 300)
	input := rl.NewRectangle(panel.X+spaceL, panel.Y+90, panel.Width-spaceL*2, 52)
	start := rl.NewRectangle(panel.X+spaceL, input.Y+72, panel.Width-spaceL*2, uitheme.ButtonHeight)

	areaW := float32(180)
	areaH := float32(110)
	areaX := body.X + body.Width/2 - (areaW*3+spaceM*2)/2
	top := rowRects(areaX, body.Y+80, areaW*3+spaceM*2, areaH, spaceM, 3)
	bottom := rowRects(areaX, body.Y+80+areaH+spaceM, areaW*3+spaceM*2, areaH, spaceM, 3)

	gridArea := rl.NewRectangle(body.X, body.Y+48, body.Width, body.Height-56)
	grid, _ := computeSquareGridGeometry(gridArea, game.GrapeGridSize, game.GrapeGridSize)
	return grapeLayout{Panel: panel, Input: input, Start: start, Areas: append(top, bottom...), Grid: grid}
}

func (ui *gameUI) updateGrape() {
	g := ui.session.Grape()
	if g == nil {
		return
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.navigate(app.ScreenMain)
		return
	}
	l := computeGrapeLayout(computeScreenLayout(ui.width, ui.height))
	p, clicked := mouseClicked()

	switch g.State() {
	case game.GrapeEntry:
		captureTextInput(&ui.grapeName, maxNameRunes)
		if rl.IsKeyPressed(rl.KeyEnter) || (clicked && rl.CheckCollisionPointRec(p, l.Start)) {
			ui.fail(g.Start(ui.ctx, ui.grapeName))
		}
	case game.GrapeAreaSelection:
		if anyKeyPressed(rl.KeyRight, rl.KeyTab) {
			ui.grapeArea = wrapIndex(ui.grapeArea+1, game.GrapeAreaCount)
		}
		if rl.IsKeyPressed(rl.KeyLeft) {
			ui.grapeArea = wrapIndex(ui.grapeArea-1, game.GrapeAreaCount)
		}
		if anyKeyPressed(rl.KeyDown, rl.KeyUp) {
			ui.grapeArea = wrapIndex(ui.grapeArea+3, game.GrapeAreaCount)
		}
		for i := range game.GrapeAreaCount {
			if rl.IsKeyPressed(rl.KeyA + int32(i)) {
				ui.grapeArea = i
				ui.fail(g.SelectArea(i))
				return
			}
		}
		if clicked {
			if idx, ok := hitIndex(l.Areas, p); ok {
				ui.grapeArea = idx
				ui.fail(g.SelectArea(idx))
				return
			}
		}
		if anyKeyPressed(rl.KeyEnter, rl.KeySpace) {
			ui.fail(g.SelectArea(ui.grapeArea))
		}
	case game.GrapeCellSearch:
		if !clicked {
			return
		}
		if idx, ok := l.Grid.CellAt(p); ok {
			if _, err := ui.session.ClickGrapeCell(ui.ctx, idx); err != nil {
				ui.fail(err)
			}
			ui.enterIfMoved()
		}
	}
}

func (ui *gameUI) drawGrape(layout screenLayout) {
	g := ui.session.Grape()
	if g == nil {
		return
	}
	l := computeGrapeLayout(layout)

	switch g.State() {
	case game.GrapeEntry:
		ui.drawScreenHeader(layout, "Grape Finding", "")
		DrawPanel(l.Panel, "Start", true)
		DrawInputField(l.Input, ui.grapeName, "Enter a nickname", true)
		DrawButton(l.Start, buttonStateSelected, "Start")
		DrawHintText("1. Pressing Start begins the timer.", int32(l.Panel.X+spaceL), int32(l.Start.Y+uitheme.ButtonHeight+spaceM))
		DrawHintText("2. Pick an area, then click the 2 purple cells as fast as you can.", int32(l.Panel.X+spaceL), int32(l.Start.Y+uitheme.ButtonHeight+spaceM+22))
		ui.drawFooter(layout, "Type a nickname  ·  Enter start  ·  Esc home")
	case game.GrapeAreaSelection:
		ui.drawScreenHeader(layout, "Choose a seating area", "Time "+game.FormatSeconds(g.Live())+"s")
		for i, r := range l.Areas {
			DrawButton(r, buttonState(i == ui.grapeArea), "Area "+game.AreaLabel(i))
		}
		ui.drawFooter(layout, "A-F pick  ·  Arrows move  ·  Enter choose  ·  Esc home")
	case game.GrapeCellSearch, game.GrapeComplete:
		right := fmt.Sprintf("Time %ss   Found %d/%d", game.FormatSeconds(g.Live()), g.FoundCount(), game.GrapeTargetCount)
		ui.drawScreenHeader(layout, "Area "+game.AreaLabel(g.Area())+" · Click the 2 purple cells", right)
		hover, hovering := l.Grid.CellAt(rl.GetMousePosition())
		for idx := range game.GrapeCellCount {
			fill := uitheme.CellIdle
			switch {
			case g.IsFound(idx):
				fill = uitheme.CellFound
			case g.IsTarget(idx):
				fill = uitheme.CellTarget
			}
			uitheme.DrawCell(l.Grid.CellRect(idx), fill, hovering && idx == hover)
		}
		ui.drawFooter(layout, "Click cells  ·  Esc home")
	}
}
