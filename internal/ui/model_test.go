package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/podo-rush/internal/app"
	"github.com/appengine-ltd/podo-rush/internal/game"
	"github.com/appengine-ltd/podo-rush/internal/ranking"
	"github.com/appengine-ltd/podo-rush/internal/store"
)

func newTestModel(t *testing.T) (model, *game.ManualClock) {
	t.Helper()
	kv := store.NewMemory()
	clock := game.NewManualClock(time.Date(2025, 8, 14, 20, 0, 0, 0, time.UTC))
	s := app.NewSession(app.Deps{
		Grape:    ranking.NewRepository(kv, ranking.Grape, nil),
		Ticket:   ranking.NewRepository(kv, ranking.Ticket, nil),
		Clock:    clock,
		PageSize: ranking.DefaultPageSize,
		Seed:     7,
	})
	return newModel(context.Background(), AppConfig{ExportDir: t.TempDir()}, s), clock
}

func send(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		nm, ok := next.(model)
		if !ok {
			t.Fatalf("unexpected model type %T", next)
		}
		m = nm
	}
	return m
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func typeText(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		if r == ' ' {
			msgs = append(msgs, key(tea.KeySpace))
			continue
		}
		msgs = append(msgs, runes(string(r)))
	}
	return msgs
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func grapeClick(idx int) tea.MouseMsg {
	row, col := idx/game.GrapeGridSize, idx%game.GrapeGridSize
	return click(grapeGridLeft+col*grapeCellWidth, grapeGridTop+row)
}

func seatClick(idx int) tea.MouseMsg {
	row, col := idx/game.SeatColumns, idx%game.SeatColumns
	return click(seatGridLeft+col*seatCellWidth+1, seatGridTop+row)
}

func TestMenuNavigation(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, key(tea.KeyDown), key(tea.KeyEnter))
	if m.session.Screen() != app.ScreenTicketing {
		t.Fatalf("expected ticketing, got %s", m.session.Screen())
	}
	m = send(t, m, key(tea.KeyEsc))
	if m.session.Screen() != app.ScreenMain {
		t.Fatalf("expected main after esc, got %s", m.session.Screen())
	}
	m = send(t, m, runes("3"))
	if m.session.Screen() != app.ScreenCalendar {
		t.Fatalf("expected calendar, got %s", m.session.Screen())
	}
}

func TestGrapeFlowReachesRankings(t *testing.T) {
	m, clock := newTestModel(t)
	m.navigate(app.ScreenGrape)
	m = send(t, m, typeText("winter")...)
	m = send(t, m, key(tea.KeyEnter))
	if m.session.Grape().State() != game.GrapeAreaSelection {
		t.Fatalf("expected area selection, got %v (alert %q)", m.session.Grape().State(), m.alert)
	}
	m = send(t, m, runes("c"))
	g := m.session.Grape()
	if g.State() != game.GrapeCellSearch {
		t.Fatalf("expected cell search, got %v", g.State())
	}
	clock.Advance(2500 * time.Millisecond)
	for _, idx := range g.Targets() {
		m = send(t, m, grapeClick(idx))
	}
	if m.session.Screen() != app.ScreenGrapeRanking {
		t.Fatalf("expected grape ranking, got %s", m.session.Screen())
	}
	view := m.View()
	if !strings.Contains(view, "winter") || !strings.Contains(view, "2.50") {
		t.Fatalf("ranking view missing entry:\n%s", view)
	}

	m = send(t, m, runes("r"))
	if m.session.Screen() != app.ScreenGrape || m.session.Grape().State() != game.GrapeEntry {
		t.Fatalf("expected a fresh grape run after retry")
	}
	if m.grapeName.String() != "" {
		t.Fatalf("expected nickname input reset, got %q", m.grapeName.String())
	}
}

func TestEmptyNicknameRaisesAlert(t *testing.T) {
	m, _ := newTestModel(t)
	m.navigate(app.ScreenGrape)
	m = send(t, m, key(tea.KeySpace), key(tea.KeyEnter))
	if m.alert != game.ErrNicknameRequired.Message {
		t.Fatalf("expected nickname alert, got %q", m.alert)
	}
	if m.session.Grape().State() != game.GrapeEntry {
		t.Fatalf("expected the flow to stay on entry")
	}
	if !strings.Contains(m.View(), game.ErrNicknameRequired.Message) {
		t.Fatalf("expected alert in view")
	}
	m = send(t, m, runes("x"))
	if m.alert != "" {
		t.Fatalf("expected any key to dismiss the alert")
	}
	if m.grapeName.String() != " " {
		t.Fatalf("expected the dismissing key to be swallowed, got %q", m.grapeName.String())
	}
}

func TestAlertDismissedByAnyKey(t *testing.T) {
	for _, k := range []tea.KeyMsg{key(tea.KeyEnter), key(tea.KeyTab), key(tea.KeyDown), runes("q")} {
		m, _ := newTestModel(t)
		m.alert = "Please select a date."
		m = send(t, m, k)
		if m.alert != "" {
			t.Fatalf("expected %q to dismiss the alert", k.String())
		}
		if m.session.Screen() != app.ScreenMain {
			t.Fatalf("dismissing key %q leaked to the screen", k.String())
		}
	}
}

func TestCommandBar(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, runes(":"))
	if !m.commandOpen {
		t.Fatalf("expected command bar open")
	}
	m = send(t, m, typeText("cal")...)
	m = send(t, m, key(tea.KeyEnter))
	if m.commandOpen || m.session.Screen() != app.ScreenCalendar {
		t.Fatalf("expected calendar via command bar, got %s", m.session.Screen())
	}

	m = send(t, m, runes(":"))
	m = send(t, m, typeText("rankings ticket")...)
	m = send(t, m, key(tea.KeyEnter))
	if m.session.Screen() != app.ScreenTicketRanking {
		t.Fatalf("expected ticket rankings, got %s", m.session.Screen())
	}

	m = send(t, m, runes(":"))
	m = send(t, m, typeText("rankings")...)
	m = send(t, m, key(tea.KeyEnter))
	if m.session.Screen() != app.ScreenTicketRanking {
		t.Fatalf("expected bare rankings to stay on ticket rankings, got %s", m.session.Screen())
	}
}

func TestColonIsTextWhileTyping(t *testing.T) {
	m, _ := newTestModel(t)
	m.navigate(app.ScreenGrape)
	m = send(t, m, runes("a"), runes(":"), runes("b"))
	if m.commandOpen {
		t.Fatalf("expected colon to be typed into the nickname")
	}
	if m.grapeName.String() != "a:b" {
		t.Fatalf("expected a:b, got %q", m.grapeName.String())
	}
}

func TestTicketingFlowByKeys(t *testing.T) {
	m, clock := newTestModel(t)
	m.navigate(app.ScreenTicketing)
	m = send(t, m, typeText("giselle")...)
	m = send(t, m, key(tea.KeyEnter))
	f := m.session.Ticketing()
	if f.Step() != game.StepSchedule {
		t.Fatalf("expected schedule, got %v (alert %q)", f.Step(), m.alert)
	}

	m = send(t, m, key(tea.KeyEnter))
	if m.alert != game.ErrDateRequired.Message {
		t.Fatalf("expected date alert, got %q", m.alert)
	}
	m = send(t, m, key(tea.KeyEnter), key(tea.KeyRight))
	if f.Date() != game.ConcertDates[1].Value || f.ShowTime() != game.DefaultShowTime {
		t.Fatalf("unexpected schedule %s %s", f.Date(), f.ShowTime())
	}
	m = send(t, m, key(tea.KeyEnter))
	if f.Step() != game.StepSeats {
		t.Fatalf("expected seats, got %v", f.Step())
	}

	m = send(t, m, key(tea.KeyEnter))
	if m.alert != game.ErrSeatsRequired.Message {
		t.Fatalf("expected seats alert, got %q", m.alert)
	}
	m = send(t, m, key(tea.KeyEnter))
	seat := -1
	for i := range game.SeatCount {
		if f.SeatAvailable(i) {
			seat = i
			break
		}
	}
	if seat < 0 {
		t.Fatalf("expected an open seat")
	}
	m = send(t, m, seatClick(seat))
	if !f.SeatSelected(seat) {
		t.Fatalf("expected seat %d selected by mouse", seat)
	}
	m = send(t, m, key(tea.KeyEnter))
	if f.Step() != game.StepPrice {
		t.Fatalf("expected price, got %v", f.Step())
	}

	m = send(t, m, runes("2"), key(tea.KeyEnter))
	if m.alert != game.ErrQuantityMismatch.Message {
		t.Fatalf("expected mismatch alert, got %q", m.alert)
	}
	m = send(t, m, key(tea.KeyEnter), key(tea.KeyLeft), key(tea.KeyEnter))
	if f.Step() != game.StepPayment {
		t.Fatalf("expected payment, got %v (alert %q)", f.Step(), m.alert)
	}

	m = send(t, m,
		key(tea.KeyRight),                   // delivery: shipping
		key(tea.KeyDown), key(tea.KeyRight), // payment: card
	)
	m.paymentField = paySubmit
	m = send(t, m, key(tea.KeyEnter))
	if m.alert != game.ErrBankRequired.Message {
		t.Fatalf("expected bank alert, got %q", m.alert)
	}
	m = send(t, m, key(tea.KeyEnter))
	m.paymentField = payBank
	m = send(t, m,
		key(tea.KeyRight),                   // bank
		key(tea.KeyDown), key(tea.KeySpace), // terms
		key(tea.KeyDown), key(tea.KeySpace), // privacy
	)
	if f.Bank() != game.Banks[0] || !f.AgreedTerms() || !f.AgreedPrivacy() {
		t.Fatalf("unexpected payment state bank=%q terms=%v privacy=%v", f.Bank(), f.AgreedTerms(), f.AgreedPrivacy())
	}
	if f.Total() != 158500 {
		t.Fatalf("expected total 158500, got %d", f.Total())
	}

	clock.Advance(9 * time.Second)
	m = send(t, m, key(tea.KeyDown), key(tea.KeyEnter))
	if m.session.Screen() != app.ScreenTicketRanking {
		t.Fatalf("expected ticket rankings, got %s (alert %q)", m.session.Screen(), m.alert)
	}
	if !strings.Contains(m.View(), "giselle") {
		t.Fatalf("expected the new entry in the ranking view")
	}
}

func TestCalendarAddAndCheck(t *testing.T) {
	m, _ := newTestModel(t)
	m.navigate(app.ScreenCalendar)
	m = send(t, m, key(tea.KeyRight), key(tea.KeyEnter))
	if m.cal.focus != calFocusForm || m.cal.planner.Selected() != "2025-08-02" {
		t.Fatalf("expected form for 2025-08-02, got focus=%v date=%s", m.cal.focus, m.cal.planner.Selected())
	}

	// Saving without a name keeps the form open.
	m.cal.field = calFieldSubmit
	m = send(t, m, key(tea.KeyEnter))
	if m.alert != game.ErrEventNameRequired.Message || m.cal.focus != calFocusForm {
		t.Fatalf("expected name alert, got %q", m.alert)
	}
	m = send(t, m, key(tea.KeyEnter))

	m.cal.field = calFieldType
	m = send(t, m, key(tea.KeyRight), key(tea.KeyEnter))
	m = send(t, m, typeText("SYNK open")...)
	m = send(t, m, key(tea.KeyEnter))
	m = send(t, m, typeText("Yes24")...)
	m = send(t, m, key(tea.KeyEnter))
	m = send(t, m, typeText("20:00")...)
	m = send(t, m, key(tea.KeyEnter), key(tea.KeyEnter))
	if m.cal.focus != calFocusGrid {
		t.Fatalf("expected grid after save, alert %q", m.alert)
	}

	events := m.cal.planner.EventsOn("2025-08-02")
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.Type != game.EventTicketing || ev.Name != "SYNK open" || ev.Venue != "Yes24" || ev.Time != "20:00" {
		t.Fatalf("unexpected event %+v", ev)
	}

	m = send(t, m, runes("e"), key(tea.KeyDown), key(tea.KeySpace))
	got, _ := m.cal.planner.Event(ev.ID)
	if got.Checklist[0].Done || !got.Checklist[1].Done {
		t.Fatalf("expected only the second item checked, got %+v", got.Checklist)
	}

	m = send(t, m, key(tea.KeyEsc), runes("i"))
	data, err := os.ReadFile(filepath.Join(m.cfg.ExportDir, game.ICSFileName))
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), "SUMMARY:[Ticketing] SYNK open") {
		t.Fatalf("unexpected ics:\n%s", data)
	}
}

func TestCalendarCursorCrossesMonths(t *testing.T) {
	m, _ := newTestModel(t)
	m.navigate(app.ScreenCalendar)
	m = send(t, m, key(tea.KeyLeft))
	if y, mo := m.cal.planner.Month(); y != 2025 || mo != time.July {
		t.Fatalf("expected July 2025, got %d %s", y, mo)
	}
	m = send(t, m, runes("]"), runes("]"))
	if y, mo := m.cal.planner.Month(); y != 2025 || mo != time.September {
		t.Fatalf("expected September 2025, got %d %s", y, mo)
	}
	if m.cal.cursor.Day() != 1 {
		t.Fatalf("expected cursor on the 1st, got %v", m.cal.cursor)
	}
}

func TestHitTesting(t *testing.T) {
	if idx, ok := grapeCellAt(grapeGridLeft, grapeGridTop); !ok || idx != 0 {
		t.Fatalf("expected first grape cell, got %d %v", idx, ok)
	}
	if idx, ok := grapeCellAt(grapeGridLeft+3, grapeGridTop+2); !ok || idx != 2*game.GrapeGridSize+1 {
		t.Fatalf("unexpected grape cell %d", idx)
	}
	if _, ok := grapeCellAt(grapeGridLeft+game.GrapeGridSize*grapeCellWidth, grapeGridTop); ok {
		t.Fatalf("expected miss right of the grid")
	}
	if _, ok := grapeCellAt(0, grapeGridTop); ok {
		t.Fatalf("expected miss left of the grid")
	}
	if idx, ok := seatAt(seatGridLeft+11*seatCellWidth, seatGridTop+7); !ok || idx != game.SeatCount-1 {
		t.Fatalf("expected last seat, got %d %v", idx, ok)
	}
	if _, ok := seatAt(seatGridLeft, seatGridTop+game.SeatRows); ok {
		t.Fatalf("expected miss below the seat map")
	}
}

func TestDateIndex(t *testing.T) {
	if dateIndex("2025-08-31") != 1 || dateIndex("2025-08-30") != 0 || dateIndex("nope") != 0 {
		t.Fatalf("unexpected date indexes")
	}
}
