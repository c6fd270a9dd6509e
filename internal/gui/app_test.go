package gui

import (
	"context"
	"testing"
	"time"

	"github.com/appengine-ltd/podo-rush/internal/app"
	"github.com/appengine-ltd/podo-rush/internal/game"
	"github.com/appengine-ltd/podo-rush/internal/parser"
	"github.com/appengine-ltd/podo-rush/internal/ranking"
	"github.com/appengine-ltd/podo-rush/internal/store"
)

func newTestUI(t *testing.T) *gameUI {
	t.Helper()
	kv := store.NewMemory()
	s := app.NewSession(app.Deps{
		Grape:    ranking.NewRepository(kv, ranking.Grape, nil),
		Ticket:   ranking.NewRepository(kv, ranking.Ticket, nil),
		Clock:    game.NewManualClock(time.Date(2025, 8, 14, 20, 0, 0, 0, time.UTC)),
		PageSize: ranking.DefaultPageSize,
		Seed:     11,
	})
	return newGameUI(context.Background(), AppConfig{ExportDir: t.TempDir()}, s)
}

func submit(t *testing.T, ui *gameUI, line string) {
	t.Helper()
	if !ui.queue.Submit(line) {
		t.Fatalf("command %q was not queued", line)
	}
	ui.processCommands()
}

func TestCommandsNavigate(t *testing.T) {
	ui := newTestUI(t)
	submit(t, ui, "grape")
	if ui.session.Screen() != app.ScreenGrape || ui.session.Grape() == nil {
		t.Fatalf("expected grape screen, got %s", ui.session.Screen())
	}
	submit(t, ui, "rankings ticket")
	if ui.session.Screen() != app.ScreenTicketRanking {
		t.Fatalf("expected ticket rankings, got %s", ui.session.Screen())
	}
	submit(t, ui, "rankings")
	if ui.session.Screen() != app.ScreenTicketRanking {
		t.Fatalf("expected bare rankings to keep the ticket list, got %s", ui.session.Screen())
	}
	submit(t, ui, "retry")
	if ui.session.Screen() != app.ScreenTicketing {
		t.Fatalf("expected retry to open ticketing, got %s", ui.session.Screen())
	}
	submit(t, ui, "home")
	if ui.session.Screen() != app.ScreenMain {
		t.Fatalf("expected main, got %s", ui.session.Screen())
	}
	submit(t, ui, "quit")
	if !ui.quit {
		t.Fatalf("expected quit flag")
	}
}

func TestCommandsDriveTicketing(t *testing.T) {
	ui := newTestUI(t)
	submit(t, ui, "ticketing")
	f := ui.session.Ticketing()
	if err := f.SubmitName(context.Background(), "ningning"); err != nil {
		t.Fatalf("submit name: %v", err)
	}
	submit(t, ui, "date 31")
	if f.Date() != "2025-08-31" || ui.dateIdx != 1 {
		t.Fatalf("expected second date selected, got %q idx %d", f.Date(), ui.dateIdx)
	}
	submit(t, ui, "bank kb")
	if ui.alert != "" || ui.status == "" || f.Bank() != "" {
		t.Fatalf("expected a wrong-step status for bank outside payment, alert %q status %q", ui.alert, ui.status)
	}
}

func TestHelpRaisesAlert(t *testing.T) {
	ui := newTestUI(t)
	submit(t, ui, "help")
	if ui.alert == "" {
		t.Fatalf("expected help text in the alert")
	}
}

func TestFailRoutesErrors(t *testing.T) {
	ui := newTestUI(t)
	ui.fail(game.ErrNicknameTaken)
	if ui.alert != game.ErrNicknameTaken.Message {
		t.Fatalf("expected validation alert, got %q", ui.alert)
	}
	ui.alert = ""
	ui.fail(game.ErrWrongStep)
	if ui.alert != "" || ui.status == "" {
		t.Fatalf("expected wrong-step to use the status line")
	}
}

func TestApplyIntentClarify(t *testing.T) {
	ui := newTestUI(t)
	ui.applyIntent(parser.Intent{Clarify: &parser.ClarifyQuestion{
		Prompt:  "Did you mean",
		Options: []parser.Intent{{Verb: "grape"}, {Verb: "page"}},
	}})
	if ui.status != "Did you mean grape or page" {
		t.Fatalf("unexpected clarify status %q", ui.status)
	}
	if ui.session.Screen() != app.ScreenMain {
		t.Fatalf("clarify must not navigate")
	}
}

func TestCommandQueue(t *testing.T) {
	q := newCommandQueue(nil, 2)
	if q.Submit("   ") {
		t.Fatalf("expected blank line to be dropped")
	}
	if !q.Submit("grape") || !q.Submit("cal") {
		t.Fatalf("expected two commands queued")
	}
	if q.Submit("home") {
		t.Fatalf("expected a full queue to drop the command")
	}
	cmd, ok := q.Next()
	if !ok || cmd.Raw != "grape" || cmd.Intent.Verb != "grape" {
		t.Fatalf("unexpected first command %+v", cmd)
	}
	cmd, _ = q.Next()
	if cmd.Intent.Verb != "calendar" {
		t.Fatalf("expected cal to resolve to calendar, got %q", cmd.Intent.Verb)
	}
	if _, ok := q.Next(); ok || q.Len() != 0 {
		t.Fatalf("expected an empty queue")
	}
	var nilQueue *commandQueue
	if nilQueue.Submit("grape") {
		t.Fatalf("nil queue must drop")
	}
}

func TestCalendarSelectOffsetFollowsMonths(t *testing.T) {
	ui := newTestUI(t)
	c := &ui.cal
	c.planner.Select("2025-08-31")
	c.selectOffset(1)
	if c.planner.Selected() != "2025-09-01" {
		t.Fatalf("expected 2025-09-01, got %s", c.planner.Selected())
	}
	if _, mo := c.planner.Month(); mo != time.September {
		t.Fatalf("expected the grid to follow into September, got %s", mo)
	}
	c.selectOffset(-7)
	if c.planner.Selected() != "2025-08-25" {
		t.Fatalf("expected 2025-08-25, got %s", c.planner.Selected())
	}
	if _, mo := c.planner.Month(); mo != time.August {
		t.Fatalf("expected August, got %s", mo)
	}
}

func TestCalendarFormBuildsEvent(t *testing.T) {
	ui := newTestUI(t)
	c := &ui.cal
	c.planner.Select("2025-08-30")
	c.openForm()
	c.toggleType()
	c.name, c.place, c.at = "SYNK open", "Yes24", "20:00"
	ev, err := c.planner.AddEvent(c.form())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if ev.Type != game.EventTicketing || ev.Venue != "Yes24" || ev.Location != "" {
		t.Fatalf("unexpected event %+v", ev)
	}
	if !c.planner.HasEvent("2025-08-30") {
		t.Fatalf("expected the day to be marked")
	}
}

func TestTextHelpers(t *testing.T) {
	s := appendRune("", '포', 3)
	s = appendRune(s, '도', 3)
	s = appendRune(s, '\n', 3)
	if s != "포도" {
		t.Fatalf("unexpected text %q", s)
	}
	s = appendRune(s, 'x', 3)
	s = appendRune(s, 'y', 3)
	if s != "포도x" {
		t.Fatalf("expected rune limit to hold, got %q", s)
	}
	if got := dropLastRune(dropLastRune(s)); got != "포" {
		t.Fatalf("expected rune-aware backspace, got %q", got)
	}
	if dropLastRune("") != "" {
		t.Fatalf("expected empty string to stay empty")
	}
	if wrapIndex(-1, 6) != 5 || wrapIndex(6, 6) != 0 || wrapIndex(3, 0) != 0 {
		t.Fatalf("unexpected wrapIndex results")
	}
	if clampInt(5, 0, 2) != 2 || clampInt(-1, 0, 2) != 0 {
		t.Fatalf("unexpected clampInt results")
	}
	if dateIndex("2025-08-31") != 1 {
		t.Fatalf("unexpected date index")
	}
}
