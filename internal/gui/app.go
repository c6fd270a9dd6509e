// Package gui is the raylib desktop client.
package gui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/podo-rush/internal/app"
	"github.com/appengine-ltd/podo-rush/internal/game"
	"github.com/appengine-ltd/podo-rush/internal/parser"
)

type AppConfig struct {
	Version string
	// ExportDir receives calendar .ics exports.
	ExportDir string
	Logger    *slog.Logger
}

type App struct {
	cfg     AppConfig
	session *app.Session
}

func NewApp(cfg AppConfig, session *app.Session) *App {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &App{cfg: cfg, session: session}
}

type gameUI struct {
	ctx     context.Context
	cfg     AppConfig
	session *app.Session
	queue   *commandQueue

	width  int32
	height int32
	quit   bool

	// alert blocks input until dismissed.
	alert  string
	status string

	commandOpen bool
	command     string

	menuCursor int

	grapeName string
	grapeArea int

	ticketName   string
	dateIdx      int
	seatCursor   int
	quantity     int
	paymentField int

	cal calendarUI
}

func (a *App) Run(ctx context.Context) error {
	ui := newGameUI(ctx, a.cfg, a.session)
	return ui.Run()
}

func newGameUI(ctx context.Context, cfg AppConfig, session *app.Session) *gameUI {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	return &gameUI{
		ctx:     ctx,
		cfg:     cfg,
		session: session,
		queue:   newCommandQueue(parser.New(), 8),
		width:   1280,
		height:  800,
		cal:     newCalendarUI(session.Planner()),
	}
}

func (ui *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(ui.width, ui.height, "PODO RUSH")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	initTypography()
	defer shutdownTypography()
	ui.cfg.Logger.Info("desktop client started", "version", ui.cfg.Version)

	for !ui.quit && !rl.WindowShouldClose() {
		if ui.ctx.Err() != nil {
			break
		}
		ui.width = int32(rl.GetScreenWidth())
		ui.height = int32(rl.GetScreenHeight())

		ui.update()

		rl.BeginDrawing()
		rl.ClearBackground(AppTheme.Background)
		ui.draw()
		rl.EndDrawing()
	}

	rl.CloseWindow()
	ui.cfg.Logger.Info("desktop client stopped")
	return nil
}

func (ui *gameUI) update() {
	if ui.alert != "" {
		if alertDismissed() {
			ui.alert = ""
		}
		return
	}
	if ui.commandOpen {
		ui.updateCommandBar()
		return
	}
	if HotkeysEnabled(ui) && rl.IsKeyPressed(rl.KeySlash) {
		ui.commandOpen = true
		ui.command = ""
		return
	}

	switch ui.session.Screen() {
	case app.ScreenMain:
		ui.updateMenu()
	case app.ScreenGrape:
		ui.updateGrape()
	case app.ScreenTicketing:
		ui.updateTicketing()
	case app.ScreenGrapeRanking, app.ScreenTicketRanking:
		ui.updateRanking()
	case app.ScreenCalendar:
		ui.updateCalendar()
	}
}

func (ui *gameUI) draw() {
	layout := computeScreenLayout(ui.width, ui.height)
	switch ui.session.Screen() {
	case app.ScreenMain:
		ui.drawMenu(layout)
	case app.ScreenGrape:
		ui.drawGrape(layout)
	case app.ScreenTicketing:
		ui.drawTicketing(layout)
	case app.ScreenGrapeRanking, app.ScreenTicketRanking:
		ui.drawRanking(layout)
	case app.ScreenCalendar:
		ui.drawCalendar(layout)
	}

	if ui.status != "" {
		drawText(ui.status, int32(layout.Footer.X), int32(layout.Footer.Y)-28, typeScale.Small, AppTheme.Gold)
	}
	if ui.commandOpen {
		DrawInputField(layout.Command, "/"+ui.command, "", true)
	}
	if ui.alert != "" {
		ui.drawAlert()
	}
}

func (ui *gameUI) drawAlert() {
	rl.DrawRectangle(0, 0, ui.width, ui.height, rl.Fade(rl.Black, 0.55))
	lines := strings.Split(ui.alert, "\n")
	h := float32(len(lines))*float32(textLineHeight(typeScale.Body)) + 110
	rect := rl.NewRectangle(float32(ui.width)/2-280, float32(ui.height)/2-h/2, 560, h)
	drawDialogPanel(rect)
	for i, line := range lines {
		drawTextCentered(line, rect, 32+int32(i)*textLineHeight(typeScale.Body), typeScale.Body, AppTheme.TextPrimary)
	}
	drawTextCentered("Enter or click to close", rect, int32(h)-44, typeScale.Small, AppTheme.TextMuted)
}

func (ui *gameUI) drawScreenHeader(layout screenLayout, title, right string) {
	DrawHeader(title, int32(layout.Header.X), int32(layout.Header.Y+8))
	if right != "" {
		w := measureText(right, typeScale.Body)
		drawText(right, int32(layout.Header.X+layout.Header.Width)-w, int32(layout.Header.Y+12), typeScale.Body, AppTheme.TextSecondary)
	}
}

func (ui *gameUI) drawFooter(layout screenLayout, hint string) {
	DrawHintText(hint+"   ·   / command", int32(layout.Footer.X), int32(layout.Footer.Y+6))
}

// fail turns validation errors into the blocking alert and anything else
// into the status line.
func (ui *gameUI) fail(err error) {
	if err == nil {
		return
	}
	if ve, ok := game.IsValidation(err); ok {
		ui.alert = ve.Message
		return
	}
	if errors.Is(err, game.ErrWrongStep) {
		ui.status = "That is not available right now."
		return
	}
	ui.status = err.Error()
}

func (ui *gameUI) navigate(to app.Screen) {
	ui.session.Navigate(to)
	ui.enter()
}

// enter resets per-screen input after any screen change.
func (ui *gameUI) enter() {
	ui.status = ""
	switch ui.session.Screen() {
	case app.ScreenGrape:
		ui.grapeName = ""
		ui.grapeArea = 0
	case app.ScreenTicketing:
		ui.ticketName = ""
		ui.dateIdx = 0
		ui.seatCursor = 0
		ui.quantity = 0
		ui.paymentField = 0
	case app.ScreenCalendar:
		ui.cal.formOpen = false
	}
}

// enterIfMoved resets input once a finished game has routed elsewhere.
func (ui *gameUI) enterIfMoved() {
	if sc := ui.session.Screen(); sc != app.ScreenGrape && sc != app.ScreenTicketing {
		ui.enter()
	}
}

func (ui *gameUI) updateCommandBar() {
	captureTextInput(&ui.command, 48)
	switch {
	case rl.IsKeyPressed(rl.KeyEscape):
		ui.commandOpen = false
	case rl.IsKeyPressed(rl.KeyEnter):
		ui.commandOpen = false
		if !ui.queue.Submit(ui.command) {
			return
		}
		ui.processCommands()
	}
}

func (ui *gameUI) processCommands() {
	for {
		cmd, ok := ui.queue.Next()
		if !ok {
			return
		}
		ui.applyIntent(cmd.Intent)
	}
}

func (ui *gameUI) applyIntent(intent parser.Intent) {
	if intent.Clarify != nil {
		verbs := make([]string, len(intent.Clarify.Options))
		for i, o := range intent.Clarify.Options {
			verbs[i] = o.Verb
		}
		ui.status = strings.TrimSpace(intent.Clarify.Prompt + " " + strings.Join(verbs, " or "))
		return
	}
	arg := ""
	if len(intent.Args) > 0 {
		arg = intent.Args[0]
	}
	switch intent.Verb {
	case "help":
		lines := make([]string, 0, len(ui.queue.parser.Commands()))
		for _, c := range ui.queue.parser.Commands() {
			lines = append(lines, fmt.Sprintf("%s: %s", c.Canonical, c.Summary))
		}
		ui.alert = strings.Join(lines, "\n")
	case "home":
		ui.navigate(app.ScreenMain)
	case "grape":
		ui.navigate(app.ScreenGrape)
	case "ticketing":
		ui.navigate(app.ScreenTicketing)
	case "calendar":
		ui.navigate(app.ScreenCalendar)
	case "rankings":
		ui.navigate(ui.session.Screen().RankingScreen(arg))
	case "retry":
		ui.session.Retry()
		ui.enter()
	case "next":
		ui.session.NextPage(ui.ctx)
	case "prev":
		ui.session.PrevPage(ui.ctx)
	case "page":
		n, _ := strconv.Atoi(arg)
		ui.session.SetPage(ui.ctx, n)
	case "bank":
		if f := ui.session.Ticketing(); f != nil {
			ui.fail(f.SetBank(arg))
		}
	case "date":
		if f := ui.session.Ticketing(); f != nil {
			if err := f.SelectDate(arg); err != nil {
				ui.fail(err)
			} else {
				ui.dateIdx = dateIndex(arg)
			}
		}
	case "quit":
		ui.quit = true
	default:
		ui.status = fmt.Sprintf("Unknown command %q. Try help.", intent.Raw)
	}
}

func dateIndex(value string) int {
	for i, d := range game.ConcertDates {
		if d.Value == value {
			return i
		}
	}
	return 0
}
