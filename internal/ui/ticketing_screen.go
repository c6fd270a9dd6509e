package ui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appengine-ltd/podo-rush/internal/app"
	"github.com/appengine-ltd/podo-rush/internal/game"
)

// Seat map placement inside viewTicketing, for mouse hits.
const (
	seatGridTop   = 6
	seatGridLeft  = 4
	seatCellWidth = 2
)

func seatAt(x, y int) (int, bool) {
	row := y - seatGridTop
	if x < seatGridLeft || row < 0 || row >= game.SeatRows {
		return 0, false
	}
	col := (x - seatGridLeft) / seatCellWidth
	if col >= game.SeatColumns {
		return 0, false
	}
	return row*game.SeatColumns + col, true
}

func dateIndex(value string) int {
	for i, d := range game.ConcertDates {
		if d.Value == value {
			return i
		}
	}
	return 0
}

const (
	payDelivery = iota
	payMethod
	payBank
	payTerms
	payPrivacy
	paySubmit
	payFieldCount
)

var deliveries = []game.Delivery{game.DeliveryShipping, game.DeliveryOnsite}

func (m model) updateTicketing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.session.Ticketing()
	if f == nil {
		return m, nil
	}
	if msg.Type == tea.KeyEsc {
		m.navigate(app.ScreenMain)
		return m, nil
	}

	switch f.Step() {
	case game.StepName:
		if msg.Type == tea.KeyEnter {
			m.fail(f.SubmitName(m.ctx, m.ticketName.String()))
			return m, nil
		}
		m.ticketName.capture(msg)
	case game.StepSchedule:
		switch msg.String() {
		case "left", "h", "up", "k":
			m.dateIdx = wrapIndex(m.dateIdx-1, len(game.ConcertDates))
			m.fail(f.SelectDate(game.ConcertDates[m.dateIdx].Value))
		case "right", "l", "down", "j", "tab":
			m.dateIdx = wrapIndex(m.dateIdx+1, len(game.ConcertDates))
			m.fail(f.SelectDate(game.ConcertDates[m.dateIdx].Value))
		case "1", "2":
			m.dateIdx = int(msg.Runes[0] - '1')
			m.fail(f.SelectDate(game.ConcertDates[m.dateIdx].Value))
		case " ":
			m.fail(f.SelectDate(game.ConcertDates[m.dateIdx].Value))
		case "t":
			m.fail(f.SelectTime(game.ShowTimes[0].Value))
		case "enter":
			m.fail(f.ProceedToSeats())
		}
	case game.StepSeats:
		row, col := m.seatCursor/game.SeatColumns, m.seatCursor%game.SeatColumns
		switch msg.String() {
		case "up", "k":
			row = wrapIndex(row-1, game.SeatRows)
		case "down", "j":
			row = wrapIndex(row+1, game.SeatRows)
		case "left", "h":
			col = wrapIndex(col-1, game.SeatColumns)
		case "right", "l":
			col = wrapIndex(col+1, game.SeatColumns)
		case " ":
			f.ToggleSeat(m.seatCursor)
			return m, nil
		case "enter":
			m.fail(f.ConfirmSeats())
			return m, nil
		}
		m.seatCursor = row*game.SeatColumns + col
	case game.StepPrice:
		switch s := msg.String(); s {
		case "up", "k", "right", "l", "+":
			m.quantity = clampInt(m.quantity+1, 0, game.MaxSelectedSeats)
		case "down", "j", "left", "h", "-":
			m.quantity = clampInt(m.quantity-1, 0, game.MaxSelectedSeats)
		case "0", "1", "2":
			m.quantity = int(s[0] - '0')
		case "enter":
			m.fail(f.ProceedToPayment())
			return m, nil
		}
		m.fail(f.SetQuantity(m.quantity))
	case game.StepPayment:
		return m.updatePayment(f, msg)
	}
	return m, nil
}

func (m model) updatePayment(f *game.TicketingFlow, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := 0
	switch msg.String() {
	case "up", "k", "shift+tab":
		m.paymentField = wrapIndex(m.paymentField-1, payFieldCount)
		return m, nil
	case "down", "j", "tab":
		m.paymentField = wrapIndex(m.paymentField+1, payFieldCount)
		return m, nil
	case "left", "h":
		step = -1
	case "right", "l", " ":
		step = 1
	case "enter":
		if m.paymentField == paySubmit {
			m.fail(m.session.FinalizeTicket(m.ctx))
			m.enterIfMoved()
			return m, nil
		}
		step = 1
	default:
		return m, nil
	}

	switch m.paymentField {
	case payDelivery:
		i := wrapIndex(slices.Index(deliveries, f.Delivery())+step, len(deliveries))
		if f.Delivery() == game.DeliveryNone {
			i = 0
		}
		m.fail(f.SetDelivery(deliveries[i]))
	case payMethod:
		i := wrapIndex(slices.Index(game.PaymentMethods, f.Payment())+step, len(game.PaymentMethods))
		if f.Payment() == game.PaymentNone {
			i = 0
		}
		m.fail(f.SetPayment(game.PaymentMethods[i]))
	case payBank:
		if !f.Payment().NeedsBank() {
			m.status = "No bank needed for " + f.Payment().Label() + "."
			return m, nil
		}
		i := wrapIndex(slices.Index(game.Banks, f.Bank())+step, len(game.Banks))
		if f.Bank() == "" {
			i = 0
		}
		m.fail(f.SetBank(game.Banks[i]))
	case payTerms:
		m.fail(f.SetAgreeTerms(!f.AgreedTerms()))
	case payPrivacy:
		m.fail(f.SetAgreePrivacy(!f.AgreedPrivacy()))
	}
	return m, nil
}

var stepTitles = []string{"Nickname", "Schedule", "Seats", "Price", "Payment"}

func stepBar(current game.TicketStep) string {
	parts := make([]string, len(stepTitles))
	for i, t := range stepTitles {
		label := fmt.Sprintf("%d %s", i+1, t)
		switch {
		case game.TicketStep(i) == current:
			parts[i] = SelectedRow.Render(" " + label + " ")
		case game.TicketStep(i) < current:
			parts[i] = Good.Render(label)
		default:
			parts[i] = Muted.Render(label)
		}
	}
	return strings.Join(parts, Muted.Render(" › "))
}

func (m model) viewTicketing() string {
	f := m.session.Ticketing()
	if f == nil {
		return ""
	}
	right := "esc home"
	if f.TimerRunning() {
		right = "time " + timerText(f.Live()) + "   esc home"
	}

	// Line layout must match seatGridTop on the seat step.
	var b strings.Builder
	b.WriteString(header("Ticketing", right) + "\n\n")
	b.WriteString(stepBar(f.Step()) + "\n\n")

	switch f.Step() {
	case game.StepName:
		body := H2.Render(game.ConcertTitle) + "\n\n" +
			LabelValue("Nickname", m.ticketName.view(true, "enter a nickname")) + "\n\n" +
			Muted.Render("The timer starts as soon as your nickname is accepted.")
		b.WriteString(Panel.Render(body) + "\n\n")
		b.WriteString(keyHints("type", "nickname", "enter", "book"))
	case game.StepSchedule:
		b.WriteString(H2.Render(game.ConcertTitle) + "\n\n")
		for i, d := range game.ConcertDates {
			label := d.Label
			if d.Value == f.Date() {
				label = SelectedRow.Render(" " + label + " ")
			}
			b.WriteString(cursorMark(i == m.dateIdx) + label + "\n")
		}
		showTime := "-"
		if f.ShowTime() != "" {
			showTime = f.ShowTime()
		}
		b.WriteString("\n" + LabelValue("Time", showTime) + "\n\n")
		b.WriteString(keyHints("←/→", "date", "t", "time", "enter", "pick seats"))
	case game.StepSeats:
		b.WriteString(strings.Repeat(" ", seatGridLeft) + Muted.Render(centre("STAGE", game.SeatColumns*seatCellWidth)) + "\n\n")
		for r := range game.SeatRows {
			b.WriteString(fmt.Sprintf("R%-2d ", r+1)[:seatGridLeft])
			for c := range game.SeatColumns {
				b.WriteString(m.seatCell(f, r*game.SeatColumns+c))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n" + LabelValue("Selected", game.SeatLabels(f.SelectedSeats())) +
			Muted.Render(fmt.Sprintf("  (max %d)", game.MaxSelectedSeats)) + "\n")
		b.WriteString(LabelValue("Cursor", game.SeatLabel(m.seatCursor)) + "\n\n")
		b.WriteString(keyHints("arrows", "move", "space", "toggle", "enter", "confirm"))
	case game.StepPrice:
		b.WriteString(LabelValue("Seats", game.SeatLabels(f.SelectedSeats())) + "\n")
		b.WriteString(LabelValue("Price", game.FormatWon(game.TicketPrice)+" KRW per ticket") + "\n\n")
		b.WriteString(LabelValue("Quantity", Gold.Render(fmt.Sprintf("◀ %d ▶", f.Quantity()))) + "\n\n")
		b.WriteString(keyHints("←/→", "quantity", "0-2", "set", "enter", "pay"))
	case game.StepPayment:
		b.WriteString(m.viewPayment(f))
	}
	return b.String()
}

func (m model) viewPayment(f *game.TicketingFlow) string {
	bank := f.Bank()
	switch {
	case !f.Payment().NeedsBank():
		bank = Muted.Render("not needed")
	case bank == "":
		bank = "-"
	}
	rows := []string{
		LabelValue("Delivery", f.Delivery().Label()),
		LabelValue("Payment", f.Payment().Label()),
		LabelValue("Bank", bank),
		checkbox(f.AgreedTerms()) + " I agree to the terms of service (required)",
		checkbox(f.AgreedPrivacy()) + " I agree to the privacy policy (required)",
		Good.Render(fmt.Sprintf("[ Pay %s KRW ]", game.FormatWon(f.Total()))),
	}

	var b strings.Builder
	for i, r := range rows {
		b.WriteString(cursorMark(i == m.paymentField) + r + "\n")
	}
	summary := strings.Join([]string{
		LabelValue("Concert", game.ConcertTitle),
		LabelValue("Date", f.Date()+" "+f.ShowTime()),
		LabelValue("Seats", game.SeatLabels(f.SelectedSeats())),
		LabelValue("Tickets", fmt.Sprintf("%d x %s", f.Quantity(), game.FormatWon(game.TicketPrice))),
		LabelValue("Booking fee", game.FormatWon(game.BookingFee)),
		LabelValue("Total", Gold.Render(game.FormatWon(f.Total())+" KRW")),
	}, "\n")
	b.WriteString("\n" + Panel.Render(summary) + "\n\n")
	b.WriteString(keyHints("↑/↓", "field", "←/→", "change", "space", "toggle", "enter", "pay"))
	return b.String()
}

func (m model) seatCell(f *game.TicketingFlow, idx int) string {
	switch {
	case idx == m.seatCursor:
		if f.SeatSelected(idx) {
			return cellCursor.Render("◆ ")
		}
		return cellCursor.Render("□ ")
	case f.SeatSelected(idx):
		return cellFound.Render("● ")
	case f.SeatAvailable(idx):
		return cellTarget.Render("■ ")
	default:
		return cellIdle.Render("· ")
	}
}

func centre(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s
}
