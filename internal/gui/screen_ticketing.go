package gui

import (
	"fmt"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/podo-rush/internal/app"
	"github.com/appengine-ltd/podo-rush/internal/game"
	uitheme "github.com/appengine-ltd/podo-rush/internal/ui/theme"
)

var stepTitles = []string{"Nickname", "Schedule", "Seats", "Price", "Payment"}

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

type ticketLayout struct {
	Steps    []rl.Rectangle
	Panel    rl.Rectangle
	Input    rl.Rectangle
	Next     rl.Rectangle
	Dates    []rl.Rectangle
	Seats    squareGridGeometry
	Stage    rl.Rectangle
	Minus    rl.Rectangle
	Plus     rl.Rectangle
	Payment  []rl.Rectangle
	Summary  rl.Rectangle
	Quantity rl.Rectangle
}

func computeTicketLayout(layout screenLayout) ticketLayout {
	body := layout.Body
	l := ticketLayout{
		Steps: rowRects(body.X, body.Y, body.Width, 40, spaceS, len(stepTitles)),
	}
	top := body.Y + 40 + spaceL
	l.Panel = rl.NewRectangle(body.X+body.Width/2-320, top, 640, 300)
	l.Input = rl.NewRectangle(l.Panel.X+spaceL, l.Panel.Y+100, l.Panel.Width-spaceL*2, 52)
	l.Next = rl.NewRectangle(body.X+body.Width-220, body.Y+body.Height-uitheme.ButtonHeight, 220, uitheme.ButtonHeight)
	l.Dates = stackRects(l.Panel.X+spaceL, l.Panel.Y+90, l.Panel.Width-spaceL*2, uitheme.ButtonHeight, spaceS, len(game.ConcertDates))

	l.Stage = rl.NewRectangle(body.X+body.Width/2-200, top, 400, 36)
	seatArea := rl.NewRectangle(body.X, top+56, body.Width, body.Height-(top+56-body.Y)-uitheme.ButtonHeight-spaceL)
	l.Seats, _ = computeSquareGridGeometry(seatArea, game.SeatColumns, game.SeatRows)

	l.Quantity = rl.NewRectangle(l.Panel.X+l.Panel.Width/2-60, l.Panel.Y+150, 120, 56)
	l.Minus = rl.NewRectangle(l.Quantity.X-72, l.Quantity.Y, 56, 56)
	l.Plus = rl.NewRectangle(l.Quantity.X+l.Quantity.Width+16, l.Quantity.Y, 56, 56)

	l.Payment = stackRects(body.X, top, body.Width/2-spaceM, uitheme.RowHeight+6, spaceS, payFieldCount)
	l.Summary = rl.NewRectangle(body.X+body.Width/2+spaceM, top, body.Width/2-spaceM, 280)
	return l
}

func (ui *gameUI) updateTicketing() {
	f := ui.session.Ticketing()
	if f == nil {
		return
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		ui.navigate(app.ScreenMain)
		return
	}
	l := computeTicketLayout(computeScreenLayout(ui.width, ui.height))
	p, clicked := mouseClicked()
	next := rl.IsKeyPressed(rl.KeyEnter) || (clicked && rl.CheckCollisionPointRec(p, l.Next))

	switch f.Step() {
	case game.StepName:
		captureTextInput(&ui.ticketName, maxNameRunes)
		if next {
			ui.fail(f.SubmitName(ui.ctx, ui.ticketName))
		}
	case game.StepSchedule:
		pick := -1
		if anyKeyPressed(rl.KeyDown, rl.KeyRight, rl.KeyTab) {
			pick = wrapIndex(ui.dateIdx+1, len(game.ConcertDates))
		}
		if anyKeyPressed(rl.KeyUp, rl.KeyLeft) {
			pick = wrapIndex(ui.dateIdx-1, len(game.ConcertDates))
		}
		if idx, ok := digitPressed(len(game.ConcertDates)); ok {
			pick = idx
		}
		if clicked {
			if idx, ok := hitIndex(l.Dates, p); ok {
				pick = idx
			}
		}
		if pick >= 0 {
			ui.dateIdx = pick
			ui.fail(f.SelectDate(game.ConcertDates[pick].Value))
		}
		if next {
			ui.fail(f.ProceedToSeats())
		}
	case game.StepSeats:
		if clicked {
			if idx, ok := l.Seats.CellAt(p); ok {
				ui.seatCursor = idx
				f.ToggleSeat(idx)
			}
		}
		ui.moveSeatCursor()
		if rl.IsKeyPressed(rl.KeySpace) {
			f.ToggleSeat(ui.seatCursor)
		}
		if next {
			ui.fail(f.ConfirmSeats())
		}
	case game.StepPrice:
		q := ui.quantity
		if anyKeyPressed(rl.KeyRight, rl.KeyUp) || (clicked && rl.CheckCollisionPointRec(p, l.Plus)) {
			q++
		}
		if anyKeyPressed(rl.KeyLeft, rl.KeyDown) || (clicked && rl.CheckCollisionPointRec(p, l.Minus)) {
			q--
		}
		if rl.IsKeyPressed(rl.KeyZero) {
			q = 0
		}
		if idx, ok := digitPressed(game.MaxSelectedSeats); ok {
			q = idx + 1
		}
		if q != ui.quantity {
			ui.quantity = clampInt(q, 0, game.MaxSelectedSeats)
			ui.fail(f.SetQuantity(ui.quantity))
		}
		if next {
			ui.fail(f.ProceedToPayment())
		}
	case game.StepPayment:
		ui.updatePayment(f, l, p, clicked)
	}
}

func (ui *gameUI) moveSeatCursor() {
	row, col := ui.seatCursor/game.SeatColumns, ui.seatCursor%game.SeatColumns
	switch {
	case rl.IsKeyPressed(rl.KeyUp):
		row = wrapIndex(row-1, game.SeatRows)
	case rl.IsKeyPressed(rl.KeyDown):
		row = wrapIndex(row+1, game.SeatRows)
	case rl.IsKeyPressed(rl.KeyLeft):
		col = wrapIndex(col-1, game.SeatColumns)
	case rl.IsKeyPressed(rl.KeyRight):
		col = wrapIndex(col+1, game.SeatColumns)
	}
	ui.seatCursor = row*game.SeatColumns + col
}

func (ui *gameUI) updatePayment(f *game.TicketingFlow, l ticketLayout, p rl.Vector2, clicked bool) {
	step := 0
	switch {
	case ShiftKeyPressed(rl.KeyTab) || rl.IsKeyPressed(rl.KeyUp):
		ui.paymentField = wrapIndex(ui.paymentField-1, payFieldCount)
	case rl.IsKeyPressed(rl.KeyTab) || rl.IsKeyPressed(rl.KeyDown):
		ui.paymentField = wrapIndex(ui.paymentField+1, payFieldCount)
	case rl.IsKeyPressed(rl.KeyLeft):
		step = -1
	case anyKeyPressed(rl.KeyRight, rl.KeySpace, rl.KeyEnter):
		step = 1
	}
	if clicked {
		if idx, ok := hitIndex(l.Payment, p); ok {
			ui.paymentField = idx
			step = 1
		}
	}
	if step == 0 {
		return
	}
	ui.applyPaymentStep(f, step)
}

// applyPaymentStep cycles or toggles the focused payment field, or pays when
// the pay button is focused.
func (ui *gameUI) applyPaymentStep(f *game.TicketingFlow, step int) {
	switch ui.paymentField {
	case payDelivery:
		i := wrapIndex(slices.Index(deliveries, f.Delivery())+step, len(deliveries))
		if f.Delivery() == game.DeliveryNone {
			i = 0
		}
		ui.fail(f.SetDelivery(deliveries[i]))
	case payMethod:
		i := wrapIndex(slices.Index(game.PaymentMethods, f.Payment())+step, len(game.PaymentMethods))
		if f.Payment() == game.PaymentNone {
			i = 0
		}
		ui.fail(f.SetPayment(game.PaymentMethods[i]))
	case payBank:
		if !f.Payment().NeedsBank() {
			return
		}
		i := wrapIndex(slices.Index(game.Banks, f.Bank())+step, len(game.Banks))
		if f.Bank() == "" {
			i = 0
		}
		ui.fail(f.SetBank(game.Banks[i]))
	case payTerms:
		ui.fail(f.SetAgreeTerms(!f.AgreedTerms()))
	case payPrivacy:
		ui.fail(f.SetAgreePrivacy(!f.AgreedPrivacy()))
	case paySubmit:
		ui.fail(ui.session.FinalizeTicket(ui.ctx))
		ui.enterIfMoved()
	}
}

func (ui *gameUI) drawTicketing(layout screenLayout) {
	f := ui.session.Ticketing()
	if f == nil {
		return
	}
	right := ""
	if f.TimerRunning() {
		right = "Time " + game.FormatSeconds(f.Live()) + "s"
	}
	ui.drawScreenHeader(layout, "Ticketing · "+game.ConcertTitle, right)
	l := computeTicketLayout(layout)
	for i, r := range l.Steps {
		state := buttonStateNormal
		switch {
		case game.TicketStep(i) == f.Step():
			state = buttonStateSelected
		case game.TicketStep(i) > f.Step():
			state = buttonStateDisabled
		}
		DrawButton(r, state, fmt.Sprintf("%d %s", i+1, stepTitles[i]))
	}

	switch f.Step() {
	case game.StepName:
		DrawPanel(l.Panel, "Booking for", true)
		DrawInputField(l.Input, ui.ticketName, "Enter a nickname", true)
		DrawHintText("The timer starts as soon as your nickname is accepted.", int32(l.Input.X), int32(l.Input.Y+72))
		DrawButton(l.Next, buttonStateSelected, "Book")
		ui.drawFooter(layout, "Type a nickname  ·  Enter book  ·  Esc home")
	case game.StepSchedule:
		DrawPanel(l.Panel, "Pick a date", true)
		for i, d := range game.ConcertDates {
			DrawButton(l.Dates[i], buttonState(d.Value == f.Date()), d.Label)
		}
		if f.ShowTime() != "" {
			DrawLabelValue("Time", f.ShowTime(), int32(l.Panel.X+spaceL), int32(l.Panel.Y+l.Panel.Height-44), AppTheme.Gold)
		}
		DrawButton(l.Next, buttonStateSelected, "Pick seats")
		ui.drawFooter(layout, "1-2 or arrows pick date  ·  Enter next  ·  Esc home")
	case game.StepSeats:
		uitheme.DrawPanel(l.Stage, uitheme.PanelMuted)
		drawTextCentered("STAGE", l.Stage, 8, typeScale.Body, AppTheme.TextSecondary)
		for idx := range game.SeatCount {
			fill := uitheme.SeatSold
			switch {
			case f.SeatSelected(idx):
				fill = uitheme.SeatPicked
			case f.SeatAvailable(idx):
				fill = uitheme.SeatOpen
			}
			uitheme.DrawCell(l.Seats.CellRect(idx), fill, idx == ui.seatCursor)
		}
		DrawLabelValue("Selected", game.SeatLabels(f.SelectedSeats()), int32(layout.Body.X), int32(l.Next.Y+14), AppTheme.Gold)
		DrawButton(l.Next, buttonStateSelected, "Confirm seats")
		ui.drawFooter(layout, fmt.Sprintf("Click or Space toggles (max %d)  ·  Enter confirm  ·  Esc home", game.MaxSelectedSeats))
	case game.StepPrice:
		DrawPanel(l.Panel, "Ticket quantity", true)
		DrawLabelValue("Seats", game.SeatLabels(f.SelectedSeats()), int32(l.Panel.X+spaceL), int32(l.Panel.Y+70), AppTheme.TextPrimary)
		DrawLabelValue("Price", game.FormatWon(game.TicketPrice)+" KRW", int32(l.Panel.X+spaceL), int32(l.Panel.Y+100), AppTheme.TextPrimary)
		DrawButton(l.Minus, buttonStateNormal, "-")
		uitheme.DrawPanel(l.Quantity, uitheme.PanelLifted)
		drawTextCentered(fmt.Sprintf("%d", f.Quantity()), l.Quantity, 14, typeScale.Header, AppTheme.Gold)
		DrawButton(l.Plus, buttonStateNormal, "+")
		DrawButton(l.Next, buttonStateSelected, "Payment")
		ui.drawFooter(layout, "Left/Right or 0-2 quantity  ·  Enter next  ·  Esc home")
	case game.StepPayment:
		ui.drawPayment(f, l, layout)
	}
}

func (ui *gameUI) drawPayment(f *game.TicketingFlow, l ticketLayout, layout screenLayout) {
	bank := f.Bank()
	switch {
	case !f.Payment().NeedsBank():
		bank = "not needed"
	case bank == "":
		bank = "-"
	}
	rows := [][2]string{
		{"Delivery", f.Delivery().Label()},
		{"Payment", f.Payment().Label()},
		{"Bank", bank},
		{checkMark(f.AgreedTerms()) + " Terms of service (required)", ""},
		{checkMark(f.AgreedPrivacy()) + " Privacy policy (required)", ""},
	}
	for i, r := range rows {
		state := listStateNormal
		if i == ui.paymentField {
			state = listStateSelected
		}
		DrawListItem(l.Payment[i], state, r[0], r[1])
	}
	DrawButton(l.Payment[paySubmit], buttonState(ui.paymentField == paySubmit), "Pay "+game.FormatWon(f.Total())+" KRW")

	DrawPanel(l.Summary, "Order", false)
	x := int32(l.Summary.X + spaceM)
	y := int32(l.Summary.Y + 64)
	line := textLineHeight(typeScale.Body)
	DrawLabelValue("Date", f.Date()+" "+f.ShowTime(), x, y, AppTheme.TextPrimary)
	DrawLabelValue("Seats", game.SeatLabels(f.SelectedSeats()), x, y+line, AppTheme.TextPrimary)
	DrawLabelValue("Tickets", fmt.Sprintf("%d x %s", f.Quantity(), game.FormatWon(game.TicketPrice)), x, y+line*2, AppTheme.TextPrimary)
	DrawLabelValue("Booking fee", game.FormatWon(game.BookingFee), x, y+line*3, AppTheme.TextPrimary)
	DrawLabelValue("Total", game.FormatWon(f.Total())+" KRW", x, y+line*4, AppTheme.Gold)
	ui.drawFooter(layout, "Up/Down field  ·  Left/Right change  ·  Space toggle  ·  Enter on Pay")
}

func checkMark(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
