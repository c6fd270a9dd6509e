package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/podo-rush/internal/app"
	"github.com/appengine-ltd/podo-rush/internal/game"
)

type calFocus int

const (
	calFocusGrid calFocus = iota
	calFocusForm
	calFocusEvents
)

type calField int

const (
	calFieldType calField = iota
	calFieldName
	calFieldPlace
	calFieldTime
	calFieldSubmit
	calFieldCount
)

func (f calField) isText() bool {
	return f == calFieldName || f == calFieldPlace || f == calFieldTime
}

type calendarState struct {
	planner *game.Planner
	cursor  time.Time
	focus   calFocus
	field   calField

	eventType game.EventType
	name      textInput
	place     textInput
	at        textInput

	// item indexes the flattened checklists of the selected day.
	item int
}

func newCalendarState(p *game.Planner) calendarState {
	y, mo := p.Month()
	return calendarState{
		planner:   p,
		cursor:    time.Date(y, mo, 1, 0, 0, 0, 0, time.UTC),
		eventType: game.EventConcert,
		name:      newTextInput(40),
		place:     newTextInput(40),
		at:        newTextInput(5),
	}
}

func (c *calendarState) moveCursor(days int) {
	c.cursor = c.cursor.AddDate(0, 0, days)
	y, mo := c.planner.Month()
	current := time.Date(y, mo, 1, 0, 0, 0, 0, time.UTC)
	for c.cursor.Before(current) {
		c.planner.PrevMonth()
		current = current.AddDate(0, -1, 0)
	}
	for !c.cursor.Before(current.AddDate(0, 1, 0)) {
		c.planner.NextMonth()
		current = current.AddDate(0, 1, 0)
	}
}

func (c *calendarState) shiftMonth(delta int) {
	if delta > 0 {
		c.planner.NextMonth()
	} else {
		c.planner.PrevMonth()
	}
	y, mo := c.planner.Month()
	c.cursor = time.Date(y, mo, 1, 0, 0, 0, 0, time.UTC)
}

func (c *calendarState) resetForm() {
	c.field = calFieldType
	c.eventType = game.EventConcert
	c.name.Reset()
	c.place.Reset()
	c.at.Reset()
}

func (c *calendarState) form() game.EventForm {
	f := game.EventForm{
		Date: c.planner.Selected(),
		Type: c.eventType,
		Name: c.name.String(),
		Time: strings.TrimSpace(c.at.String()),
	}
	if c.eventType == game.EventConcert {
		f.Location = c.place.String()
	} else {
		f.Venue = c.place.String()
	}
	return f
}

type checkRef struct {
	eventID string
	idx     int
}

func (c *calendarState) checkRefs() []checkRef {
	var refs []checkRef
	for _, ev := range c.planner.EventsOn(c.planner.Selected()) {
		for i := range ev.Checklist {
			refs = append(refs, checkRef{eventID: ev.ID, idx: i})
		}
	}
	return refs
}

func (m model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := &m.cal
	switch c.focus {
	case calFocusForm:
		return m.updateCalendarForm(msg)
	case calFocusEvents:
		refs := c.checkRefs()
		switch msg.String() {
		case "esc", "e":
			c.focus = calFocusGrid
		case "up", "k":
			c.item = wrapIndex(c.item-1, max(1, len(refs)))
		case "down", "j", "tab":
			c.item = wrapIndex(c.item+1, max(1, len(refs)))
		case " ", "enter", "x":
			if c.item < len(refs) {
				m.fail(c.planner.ToggleChecklist(refs[c.item].eventID, refs[c.item].idx))
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "esc", "q":
		m.navigate(app.ScreenMain)
	case "left", "h":
		c.moveCursor(-1)
	case "right", "l":
		c.moveCursor(1)
	case "up", "k":
		c.moveCursor(-7)
	case "down", "j":
		c.moveCursor(7)
	case "[", "pgup":
		c.shiftMonth(-1)
	case "]", "pgdown":
		c.shiftMonth(1)
	case " ":
		c.planner.Select(c.cursor.Format(game.DateLayout))
		c.item = 0
	case "enter", "a":
		c.planner.Select(c.cursor.Format(game.DateLayout))
		c.resetForm()
		c.focus = calFocusForm
	case "e":
		c.planner.Select(c.cursor.Format(game.DateLayout))
		c.item = 0
		if len(c.checkRefs()) == 0 {
			m.status = "No events on " + c.planner.Selected() + "."
			return m, nil
		}
		c.focus = calFocusEvents
	case "i":
		m.exportCalendar()
	}
	return m, nil
}

func (m model) updateCalendarForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := &m.cal
	switch msg.Type {
	case tea.KeyEsc:
		c.focus = calFocusGrid
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		c.field = calField(wrapIndex(int(c.field)+1, int(calFieldCount)))
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		c.field = calField(wrapIndex(int(c.field)-1, int(calFieldCount)))
		return m, nil
	case tea.KeyEnter:
		if c.field != calFieldSubmit && c.field != calFieldType {
			c.field++
			return m, nil
		}
		if c.field == calFieldType {
			c.field = calFieldName
			return m, nil
		}
		ev, err := c.planner.AddEvent(c.form())
		if err != nil {
			m.fail(err)
			return m, nil
		}
		m.status = fmt.Sprintf("Added %s on %s.", ev.Name, ev.Date)
		c.focus = calFocusGrid
		c.resetForm()
		return m, nil
	}

	switch c.field {
	case calFieldType:
		switch msg.String() {
		case "left", "right", " ", "h", "l":
			if c.eventType == game.EventConcert {
				c.eventType = game.EventTicketing
			} else {
				c.eventType = game.EventConcert
			}
		case "c":
			c.eventType = game.EventConcert
		case "t":
			c.eventType = game.EventTicketing
		}
	case calFieldName:
		c.name.capture(msg)
	case calFieldPlace:
		c.place.capture(msg)
	case calFieldTime:
		c.at.capture(msg)
	}
	return m, nil
}

func (m *model) exportCalendar() {
	events := m.cal.planner.Events()
	if len(events) == 0 {
		m.status = "Nothing to export yet."
		return
	}
	path, err := game.SaveICS(m.cfg.ExportDir, events, m.session.Clock().Now())
	if err != nil {
		m.status = "Export failed: " + err.Error()
		if m.cfg.Logger != nil {
			m.cfg.Logger.Warn("calendar export failed", "error", err)
		}
		return
	}
	m.status = fmt.Sprintf("Exported %d events to %s", len(events), path)
}

func (m model) viewCalendar() string {
	c := m.cal
	y, mo := c.planner.Month()

	var b strings.Builder
	b.WriteString(header("Calendar", fmt.Sprintf("%s %d", mo, y)) + "\n\n")
	b.WriteString(Muted.Render(" Mo  Tu  We  Th  Fr  Sa  Su") + "\n")
	grid := c.planner.Grid()
	for w := 0; w < len(grid)/7; w++ {
		for _, d := range grid[w*7 : w*7+7] {
			b.WriteString(calendarCell(c, d))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch c.focus {
	case calFocusForm:
		b.WriteString(m.viewCalendarForm())
	default:
		b.WriteString(m.viewDayEvents())
		b.WriteString("\n")
		if c.focus == calFocusEvents {
			b.WriteString(keyHints("↑/↓", "item", "space", "check", "esc", "back"))
		} else {
			b.WriteString(keyHints("arrows", "day", "[ ]", "month", "enter", "add", "e", "checklist", "i", "export .ics", "esc", "home"))
		}
	}
	return b.String()
}

func calendarCell(c calendarState, d game.Day) string {
	mark := " "
	if c.planner.HasEvent(d.YMD()) {
		mark = "•"
	}
	text := fmt.Sprintf(" %2d%s", d.Date.Day(), mark)
	switch {
	case d.Date.Equal(c.cursor):
		return SelectedRow.Render(text)
	case d.YMD() == c.planner.Selected():
		return Gold.Render(text)
	case !d.InMonth:
		return Muted.Render(text)
	case mark != " ":
		return Key.Render(text)
	default:
		return text
	}
}

func (m model) viewDayEvents() string {
	c := m.cal
	selected := c.planner.Selected()
	if selected == "" {
		return Muted.Render("Select a date to see its events.") + "\n"
	}
	events := c.planner.EventsOn(selected)
	if len(events) == 0 {
		return H2.Render(selected) + "\n" + Muted.Render("No events.") + "\n"
	}

	var b strings.Builder
	b.WriteString(H2.Render(selected) + "\n")
	n := 0
	for _, ev := range events {
		line := fmt.Sprintf("[%s] %s", ev.Type.Label(), ev.Name)
		if ev.Time != "" {
			line += "  " + ev.Time
		}
		if place := firstNonEmpty(ev.Location, ev.Venue); place != "" {
			line += "  @ " + place
		}
		b.WriteString(Key.Render(line) + "\n")
		for _, item := range ev.Checklist {
			focused := c.focus == calFocusEvents && n == c.item
			b.WriteString("  " + cursorMark(focused) + checkbox(item.Done) + " " + item.Label + "\n")
			n++
		}
	}
	return b.String()
}

func (m model) viewCalendarForm() string {
	c := m.cal
	placeLabel := "Location"
	if c.eventType == game.EventTicketing {
		placeLabel = "Venue"
	}
	typeValue := fmt.Sprintf("◀ %s ▶", c.eventType.Label())
	rows := []string{
		LabelValue("Type", typeValue),
		LabelValue("Name", c.name.view(c.field == calFieldName, "event name")),
		LabelValue(placeLabel, c.place.view(c.field == calFieldPlace, "optional")),
		LabelValue("Time", c.at.view(c.field == calFieldTime, "HH:MM, optional")),
		Good.Render("[ Save ]"),
	}
	var b strings.Builder
	b.WriteString(H2.Render("New event on "+c.planner.Selected()) + "\n")
	for i, r := range rows {
		b.WriteString(cursorMark(calField(i) == c.field) + r + "\n")
	}
	body := b.String()
	return Panel.Render(strings.TrimSuffix(body, "\n")) + "\n\n" +
		keyHints("tab", "next field", "←/→", "type", "enter", "save", "esc", "cancel")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
