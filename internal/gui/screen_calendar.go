package gui

import (
	"fmt"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/podo-rush/internal/app"
	"github.com/appengine-ltd/podo-rush/internal/game"
	uitheme "github.com/appengine-ltd/podo-rush/internal/ui/theme"
)

var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type calField int

const (
	calFieldType calField = iota
	calFieldName
	calFieldPlace
	calFieldTime
	calFieldCount
)

func (f calField) isText() bool { return f != calFieldType }

type calendarUI struct {
	planner  *game.Planner
	formOpen bool
	field    calField

	eventType game.EventType
	name      string
	place     string
	at        string
}

func newCalendarUI(p *game.Planner) calendarUI {
	return calendarUI{planner: p, eventType: game.EventConcert}
}

func (c *calendarUI) openForm() {
	c.formOpen = true
	c.field = calFieldName
	c.eventType = game.EventConcert
	c.name, c.place, c.at = "", "", ""
}

func (c *calendarUI) form() game.EventForm {
	f := game.EventForm{Date: c.planner.Selected(), Type: c.eventType, Name: c.name, Time: c.at}
	if c.eventType == game.EventConcert {
		f.Location = c.place
	} else {
		f.Venue = c.place
	}
	return f
}

func (c *calendarUI) toggleType() {
	if c.eventType == game.EventConcert {
		c.eventType = game.EventTicketing
	} else {
		c.eventType = game.EventConcert
	}
}

// selectOffset moves the selected date by days, following it across months.
func (c *calendarUI) selectOffset(days int) {
	y, mo := c.planner.Month()
	base := time.Date(y, mo, 1, 0, 0, 0, 0, time.UTC)
	if sel, err := time.Parse(game.DateLayout, c.planner.Selected()); err == nil {
		base = sel
	}
	next := base.AddDate(0, 0, days)
	for next.Before(time.Date(y, mo, 1, 0, 0, 0, 0, time.UTC)) {
		c.planner.PrevMonth()
		y, mo = c.planner.Month()
	}
	for !next.Before(time.Date(y, mo+1, 1, 0, 0, 0, 0, time.UTC)) {
		c.planner.NextMonth()
		y, mo = c.planner.Month()
	}
	c.planner.Select(next.Format(game.DateLayout))
}

type checkRow struct {
	EventID string
	Index   int
	Rect    rl.Rectangle
}

type calendarLayout struct {
	PrevMonth rl.Rectangle
	NextMonth rl.Rectangle
	Weekdays  []rl.Rectangle
	Days      []rl.Rectangle
	Side      rl.Rectangle

	// Form widgets.
	Type   rl.Rectangle
	Fields []rl.Rectangle
	Save   rl.Rectangle
	Cancel rl.Rectangle

	// Day view widgets.
	Add    rl.Rectangle
	Export rl.Rectangle
}

func computeCalendarLayout(layout screenLayout) calendarLayout {
	body := layout.Body
	gridW := body.Width * 0.58
	l := calendarLayout{
		PrevMonth: rl.NewRectangle(body.X, body.Y, 56, 44),
		NextMonth: rl.NewRectangle(body.X+gridW-56, body.Y, 56, 44),
		Side:      rl.NewRectangle(body.X+gridW+spaceL, body.Y, body.Width-gridW-spaceL, body.Height),
	}
	l.Weekdays = rowRects(body.X, body.Y+56, gridW, 28, 4, 7)
	weekTop := body.Y + 56 + 32
	rowH := (body.Height - (weekTop - body.Y)) / 6
	for w := range 6 {
		l.Days = append(l.Days, rowRects(body.X, weekTop+float32(w)*rowH, gridW, rowH-4, 4, 7)...)
	}

	inner := l.Side.Width - spaceM*2
	l.Type = rl.NewRectangle(l.Side.X+spaceM, l.Side.Y+72, inner, uitheme.ButtonHeight)
	l.Fields = stackRects(l.Side.X+spaceM, l.Type.Y+uitheme.ButtonHeight+spaceL+18, inner, 48, 34, 3)
	buttons := rowRects(l.Side.X+spaceM, l.Side.Y+l.Side.Height-uitheme.ButtonHeight-spaceM, inner, uitheme.ButtonHeight, spaceS, 2)
	l.Save, l.Cancel = buttons[0], buttons[1]
	l.Add, l.Export = buttons[0], buttons[1]
	return l
}

func (ui *gameUI) checkRows(l calendarLayout) []checkRow {
	var rows []checkRow
	y := l.Side.Y + 72
	for _, ev := range ui.cal.planner.EventsOn(ui.cal.planner.Selected()) {
		y += float32(textLineHeight(typeScale.Body)) + 4
		for i := range ev.Checklist {
			rows = append(rows, checkRow{EventID: ev.ID, Index: i, Rect: rl.NewRectangle(l.Side.X+spaceM, y, l.Side.Width-spaceM*2, 30)})
			y += 32
		}
		y += spaceS
	}
	return rows
}

func (ui *gameUI) updateCalendar() {
	c := &ui.cal
	l := computeCalendarLayout(computeScreenLayout(ui.width, ui.height))
	p, clicked := mouseClicked()

	if c.formOpen {
		ui.updateCalendarForm(l, p, clicked)
		return
	}

	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		ui.navigate(app.ScreenMain)
		return
	case rl.IsKeyPressed(rl.KeyLeftBracket):
		c.planner.PrevMonth()
	case rl.IsKeyPressed(rl.KeyRightBracket):
		c.planner.NextMonth()
	case rl.IsKeyPressed(rl.KeyLeft):
		c.selectOffset(-1)
	case rl.IsKeyPressed(rl.KeyRight):
		c.selectOffset(1)
	case rl.IsKeyPressed(rl.KeyUp):
		c.selectOffset(-7)
	case rl.IsKeyPressed(rl.KeyDown):
		c.selectOffset(7)
	case rl.IsKeyPressed(rl.KeyI):
		ui.exportCalendar()
	case rl.IsKeyPressed(rl.KeyEnter) && c.planner.Selected() != "":
		c.openForm()
	}
	if !clicked {
		return
	}

	switch {
	case rl.CheckCollisionPointRec(p, l.PrevMonth):
		c.planner.PrevMonth()
	case rl.CheckCollisionPointRec(p, l.NextMonth):
		c.planner.NextMonth()
	case rl.CheckCollisionPointRec(p, l.Export):
		ui.exportCalendar()
	case rl.CheckCollisionPointRec(p, l.Add):
		if c.planner.Selected() == "" {
			ui.fail(game.ErrDateRequired)
			return
		}
		c.openForm()
	}
	if idx, ok := hitIndex(l.Days, p); ok {
		c.planner.Select(c.planner.Grid()[idx].YMD())
		return
	}
	for _, row := range ui.checkRows(l) {
		if rl.CheckCollisionPointRec(p, row.Rect) {
			ui.fail(c.planner.ToggleChecklist(row.EventID, row.Index))
			return
		}
	}
}

func (ui *gameUI) updateCalendarForm(l calendarLayout, p rl.Vector2, clicked bool) {
	c := &ui.cal
	switch c.field {
	case calFieldName:
		captureTextInput(&c.name, 40)
	case calFieldPlace:
		captureTextInput(&c.place, 40)
	case calFieldTime:
		captureTextInput(&c.at, 5)
	default:
		if anyKeyPressed(rl.KeyLeft, rl.KeyRight, rl.KeySpace) {
			c.toggleType()
		}
	}

	save := rl.IsKeyPressed(rl.KeyEnter)
	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		c.formOpen = false
		return
	case ShiftKeyPressed(rl.KeyTab):
		c.field = calField(wrapIndex(int(c.field)-1, int(calFieldCount)))
	case rl.IsKeyPressed(rl.KeyTab):
		c.field = calField(wrapIndex(int(c.field)+1, int(calFieldCount)))
	}
	if clicked {
		switch {
		case rl.CheckCollisionPointRec(p, l.Type):
			c.field = calFieldType
			c.toggleType()
		case rl.CheckCollisionPointRec(p, l.Save):
			save = true
		case rl.CheckCollisionPointRec(p, l.Cancel):
			c.formOpen = false
			return
		default:
			if idx, ok := hitIndex(l.Fields, p); ok {
				c.field = calField(idx + 1)
			}
		}
	}
	if !save {
		return
	}
	ev, err := c.planner.AddEvent(c.form())
	if err != nil {
		ui.fail(err)
		return
	}
	c.formOpen = false
	ui.status = fmt.Sprintf("Added %s on %s.", ev.Name, ev.Date)
}

func (ui *gameUI) exportCalendar() {
	events := ui.cal.planner.Events()
	if len(events) == 0 {
		ui.status = "Nothing to export yet."
		return
	}
	path, err := game.SaveICS(ui.cfg.ExportDir, events, ui.session.Clock().Now())
	if err != nil {
		ui.cfg.Logger.Warn("calendar export failed", "error", err)
		ui.status = "Export failed: " + err.Error()
		return
	}
	ui.status = fmt.Sprintf("Exported %d events to %s", len(events), path)
}

func (ui *gameUI) drawCalendar(layout screenLayout) {
	c := ui.cal
	y, mo := c.planner.Month()
	ui.drawScreenHeader(layout, "Calendar", "")
	l := computeCalendarLayout(layout)

	DrawButton(l.PrevMonth, buttonStateNormal, "◀")
	DrawButton(l.NextMonth, buttonStateNormal, "▶")
	monthRect := rl.NewRectangle(l.PrevMonth.X, l.PrevMonth.Y, l.NextMonth.X+l.NextMonth.Width-l.PrevMonth.X, l.PrevMonth.Height)
	drawTextCentered(fmt.Sprintf("%s %d", mo, y), monthRect, 10, typeScale.Header, AppTheme.TextPrimary)
	for i, r := range l.Weekdays {
		drawTextCentered(weekdays[i], r, 4, typeScale.Small, AppTheme.TextMuted)
	}

	for i, d := range c.planner.Grid() {
		r := l.Days[i]
		variant := uitheme.PanelStandard
		if !d.InMonth {
			variant = uitheme.PanelMuted
		}
		if d.YMD() == c.planner.Selected() {
			variant = uitheme.PanelLifted
		}
		uitheme.DrawPanel(r, variant)
		clr := AppTheme.TextPrimary
		if !d.InMonth {
			clr = AppTheme.TextMuted
		}
		drawText(fmt.Sprintf("%d", d.Date.Day()), int32(r.X)+8, int32(r.Y)+6, typeScale.Small, clr)
		if c.planner.HasEvent(d.YMD()) {
			rl.DrawCircle(int32(r.X+r.Width/2), int32(r.Y+r.Height-12), 5, AppTheme.Accent)
		}
		if d.YMD() == c.planner.Selected() {
			rl.DrawRectangleLinesEx(r, 2, AppTheme.Gold)
		}
	}

	if c.formOpen {
		ui.drawCalendarForm(l)
		ui.drawFooter(layout, "Tab next field  ·  Left/Right type  ·  Enter save  ·  Esc cancel")
		return
	}
	ui.drawDayEvents(l)
	ui.drawFooter(layout, "Click or arrows pick day  ·  [ ] month  ·  Enter add  ·  I export .ics  ·  Esc home")
}

func (ui *gameUI) drawDayEvents(l calendarLayout) {
	c := ui.cal
	selected := c.planner.Selected()
	title := "Events"
	if selected != "" {
		title = selected
	}
	DrawPanel(l.Side, title, false)
	if selected == "" {
		drawText("Select a date to see its events.", int32(l.Side.X+spaceM), int32(l.Side.Y+80), typeScale.Body, AppTheme.TextMuted)
	} else if len(c.planner.EventsOn(selected)) == 0 {
		drawText("No events.", int32(l.Side.X+spaceM), int32(l.Side.Y+80), typeScale.Body, AppTheme.TextMuted)
	}

	rows := ui.checkRows(l)
	next := 0
	y := l.Side.Y + 72
	for _, ev := range c.planner.EventsOn(selected) {
		label := fmt.Sprintf("[%s] %s", ev.Type.Label(), ev.Name)
		if ev.Time != "" {
			label += "  " + ev.Time
		}
		if place := strings.TrimSpace(ev.Location + ev.Venue); place != "" {
			label += "  @ " + place
		}
		drawText(label, int32(l.Side.X+spaceM), int32(y), typeScale.Body, AppTheme.Accent)
		y += float32(textLineHeight(typeScale.Body)) + 4
		for _, item := range ev.Checklist {
			r := rows[next].Rect
			next++
			clr := AppTheme.TextPrimary
			if item.Done {
				clr = AppTheme.Success
			}
			drawText(checkMark(item.Done)+" "+item.Label, int32(r.X)+8, int32(r.Y)+4, typeScale.Small, clr)
			y += 32
		}
		y += spaceS
	}

	DrawButton(l.Add, buttonStateSelected, "Add event")
	DrawButton(l.Export, buttonStateNormal, "Export .ics")
}

func (ui *gameUI) drawCalendarForm(l calendarLayout) {
	c := ui.cal
	DrawPanel(l.Side, "New event on "+c.planner.Selected(), true)
	DrawButton(l.Type, buttonState(c.field == calFieldType), "Type: "+c.eventType.Label())

	placeLabel := "Location"
	if c.eventType == game.EventTicketing {
		placeLabel = "Venue"
	}
	labels := []string{"Name", placeLabel, "Time (HH:MM)"}
	values := []string{c.name, c.place, c.at}
	placeholders := []string{"Event name", "Optional", "Optional"}
	for i, r := range l.Fields {
		DrawHintText(labels[i], int32(r.X), int32(r.Y)-22)
		DrawInputField(r, values[i], placeholders[i], c.field == calField(i+1))
	}
	DrawButton(l.Save, buttonStateSelected, "Save")
	DrawButton(l.Cancel, buttonStateNormal, "Cancel")
}
