package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/podo-rush/internal/app"
	"github.com/appengine-ltd/podo-rush/internal/game"
	"github.com/appengine-ltd/podo-rush/internal/parser"
)

const tickInterval = 50 * time.Millisecond

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	ctx     context.Context
	cfg     AppConfig
	session *app.Session
	parser  *parser.Parser

	width  int
	height int

	// alert blocks input until dismissed.
	alert string
	// status is a one-line, non-blocking note.
	status string

	commandOpen bool
	command     textInput

	menuIdx int

	grapeName   textInput
	grapeArea   int
	grapeCursor int

	ticketName   textInput
	dateIdx      int
	seatCursor   int
	quantity     int
	paymentField int

	cal calendarState
}

func newModel(ctx context.Context, cfg AppConfig, session *app.Session) model {
	return model{
		ctx:        ctx,
		cfg:        cfg,
		session:    session,
		parser:     parser.New(),
		command:    newTextInput(48),
		grapeName:  newTextInput(maxInputRunes),
		ticketName: newTextInput(maxInputRunes),
		cal:        newCalendarState(session.Planner()),
	}
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		return m, tickCmd()
	case tea.MouseMsg:
		if m.alert != "" || m.commandOpen {
			return m, nil
		}
		return m.updateMouse(msg)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.alert != "" {
			m.alert = ""
			return m, nil
		}
		if m.commandOpen {
			return m.updateCommand(msg)
		}
		if msg.String() == ":" && !m.typing() {
			m.commandOpen = true
			m.command.Reset()
			return m, nil
		}
		return m.updateScreen(msg)
	}
	return m, nil
}

func (m model) updateScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.session.Screen() {
	case app.ScreenMain:
		return m.updateMain(msg)
	case app.ScreenGrape:
		return m.updateGrape(msg)
	case app.ScreenTicketing:
		return m.updateTicketing(msg)
	case app.ScreenGrapeRanking, app.ScreenTicketRanking:
		return m.updateRanking(msg)
	case app.ScreenCalendar:
		return m.updateCalendar(msg)
	}
	return m, nil
}

func (m model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	switch m.session.Screen() {
	case app.ScreenGrape:
		if idx, ok := grapeCellAt(msg.X, msg.Y); ok {
			m.grapeCursor = idx
			return m.clickGrape(idx)
		}
	case app.ScreenTicketing:
		if idx, ok := seatAt(msg.X, msg.Y); ok && m.session.Ticketing().Step() == game.StepSeats {
			m.seatCursor = idx
			m.session.Ticketing().ToggleSeat(idx)
		}
	}
	return m, nil
}

// typing reports whether the focused widget takes free text, so ":" and
// letter shortcuts go to it instead.
func (m model) typing() bool {
	switch m.session.Screen() {
	case app.ScreenGrape:
		return m.session.Grape() != nil && m.session.Grape().State() == game.GrapeEntry
	case app.ScreenTicketing:
		return m.session.Ticketing() != nil && m.session.Ticketing().Step() == game.StepName
	case app.ScreenCalendar:
		return m.cal.focus == calFocusForm && m.cal.field.isText()
	}
	return false
}

// fail turns validation errors into the blocking alert and anything else
// into a status line.
func (m *model) fail(err error) {
	if err == nil {
		return
	}
	if ve, ok := game.IsValidation(err); ok {
		m.alert = ve.Message
		return
	}
	if errors.Is(err, game.ErrWrongStep) {
		m.status = "That is not available right now."
		return
	}
	m.status = err.Error()
}

func (m *model) navigate(to app.Screen) {
	m.session.Navigate(to)
	m.enter()
}

// enter resets the per-screen cursors after any screen change.
func (m *model) enter() {
	m.status = ""
	switch m.session.Screen() {
	case app.ScreenGrape:
		m.grapeName.Reset()
		m.grapeArea = 0
		m.grapeCursor = 0
	case app.ScreenTicketing:
		m.ticketName.Reset()
		m.dateIdx = 0
		m.seatCursor = 0
		m.quantity = 0
		m.paymentField = 0
	case app.ScreenCalendar:
		m.cal.focus = calFocusGrid
	}
}

func (m model) updateCommand(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.commandOpen = false
		return m, nil
	case tea.KeyEnter:
		m.commandOpen = false
		return m.runCommand(m.command.String())
	}
	m.command.capture(msg)
	return m, nil
}

func (m model) runCommand(line string) (tea.Model, tea.Cmd) {
	intent := m.parser.Parse(line)
	if intent.Clarify != nil {
		prompt := intent.Clarify.Prompt
		if len(intent.Clarify.Options) > 0 {
			verbs := make([]string, len(intent.Clarify.Options))
			for i, o := range intent.Clarify.Options {
				verbs[i] = o.Verb
			}
			prompt += " " + strings.Join(verbs, " or ") + "?"
		}
		m.status = prompt
		return m, nil
	}

	ctx := m.ctx
	arg := ""
	if len(intent.Args) > 0 {
		arg = intent.Args[0]
	}
	switch intent.Verb {
	case "help":
		lines := make([]string, 0, len(m.parser.Commands()))
		for _, c := range m.parser.Commands() {
			lines = append(lines, fmt.Sprintf("%-10s %s", c.Canonical, c.Summary))
		}
		m.alert = strings.Join(lines, "\n")
	case "home":
		m.navigate(app.ScreenMain)
	case "grape":
		m.navigate(app.ScreenGrape)
	case "ticketing":
		m.navigate(app.ScreenTicketing)
	case "calendar":
		m.navigate(app.ScreenCalendar)
	case "rankings":
		m.navigate(m.session.Screen().RankingScreen(arg))
	case "retry":
		m.session.Retry()
		m.enter()
	case "next":
		m.session.NextPage(ctx)
	case "prev":
		m.session.PrevPage(ctx)
	case "page":
		n, _ := strconv.Atoi(arg)
		m.session.SetPage(ctx, n)
	case "bank":
		if f := m.session.Ticketing(); f != nil {
			m.fail(f.SetBank(arg))
		} else {
			m.status = "Banks are picked on the payment step."
		}
	case "date":
		if f := m.session.Ticketing(); f != nil {
			if err := f.SelectDate(arg); err != nil {
				m.fail(err)
			} else {
				m.dateIdx = dateIndex(arg)
			}
		} else {
			m.status = "Dates are picked on the schedule step."
		}
	case "quit":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	var body string
	switch m.session.Screen() {
	case app.ScreenMain:
		body = m.viewMain()
	case app.ScreenGrape:
		body = m.viewGrape()
	case app.ScreenTicketing:
		body = m.viewTicketing()
	case app.ScreenGrapeRanking, app.ScreenTicketRanking:
		body = m.viewRanking()
	case app.ScreenCalendar:
		body = m.viewCalendar()
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	if m.alert != "" {
		b.WriteString("\n")
		b.WriteString(AlertPanel.Render(m.alert + "\n\n" + Muted.Render("enter to close")))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n" + Warn.Render(m.status) + "\n")
	}
	if m.commandOpen {
		b.WriteString("\n" + Key.Render(":") + m.command.String() + "▏\n")
	}
	return b.String()
}

func header(title, right string) string {
	left := Heading(title)
	if right == "" {
		return left
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", Muted.Render(right))
}

func timerText(d time.Duration) string {
	return game.FormatSeconds(d) + "s"
}
