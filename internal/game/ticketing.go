package game

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var wonPrinter = message.NewPrinter(language.English)

const (
	SeatColumns = 12
	SeatRows    = 8
	SeatCount   = SeatColumns * SeatRows

	// SeatAvailability is the independent probability that a seat is open.
	SeatAvailability = 0.7
	MaxSelectedSeats = 2

	TicketPrice = 154000
	BookingFee  = 2000
	ShippingFee = 2500

	ConcertTitle    = "2025 aespa LIVE TOUR - SYNK : aeXIS LINE -"
	DefaultShowTime = "18:00"
)

type ScheduleOption struct {
	Value string
	Label string
}

var (
	ConcertDates = []ScheduleOption{
		{Value: "2025-08-30", Label: "2025-08-30 (Sat)"},
		{Value: "2025-08-31", Label: "2025-08-31 (Sun)"},
	}
	ShowTimes = []ScheduleOption{
		{Value: DefaultShowTime, Label: "18:00"},
	}
	Banks = []string{"신한", "KB국민", "우리", "하나", "카카오"}
)

type TicketStep int

const (
	StepName TicketStep = iota
	StepSchedule
	StepSeats
	StepPrice
	StepPayment
	StepDone
)

func (s TicketStep) String() string {
	switch s {
	case StepName:
		return "name"
	case StepSchedule:
		return "schedule"
	case StepSeats:
		return "seats"
	case StepPrice:
		return "price"
	case StepPayment:
		return "payment"
	case StepDone:
		return "done"
	default:
		return fmt.Sprintf("ticket-step(%d)", int(s))
	}
}

type Delivery string

const (
	DeliveryNone     Delivery = ""
	DeliveryShipping Delivery = "shipping"
	DeliveryOnsite   Delivery = "onsite"
)

func (d Delivery) Label() string {
	switch d {
	case DeliveryShipping:
		return "Shipping (2,500 KRW)"
	case DeliveryOnsite:
		return "On-site pickup"
	default:
		return "-"
	}
}

type PaymentMethod string

const (
	PaymentNone     PaymentMethod = ""
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentKakao    PaymentMethod = "kakao"
)

var PaymentMethods = []PaymentMethod{PaymentCard, PaymentTransfer, PaymentKakao}

func (p PaymentMethod) Label() string {
	switch p {
	case PaymentCard:
		return "Credit card"
	case PaymentTransfer:
		return "Bank transfer"
	case PaymentKakao:
		return "KakaoPay"
	default:
		return "-"
	}
}

// NeedsBank reports whether the method requires a bank selection.
func (p PaymentMethod) NeedsBank() bool {
	return p == PaymentCard || p == PaymentTransfer
}

type TicketingOptions struct {
	Board  Leaderboard
	Clock  Clock
	Seed   int64
	Logger *slog.Logger
}

// TicketingFlow is the six-step simulated ticket purchase. The timer runs from
// name submission to payment.
type TicketingFlow struct {
	id    string
	board Leaderboard
	clock Clock
	seed  int64
	log   *slog.Logger

	step     TicketStep
	name     string
	date     string
	showTime string

	seatMap  []bool
	selected []int
	quantity int

	delivery     Delivery
	payment      PaymentMethod
	bank         string
	agreeTerms   bool
	agreePrivacy bool

	timer *Stopwatch
}

func NewTicketingFlow(opts TicketingOptions) *TicketingFlow {
	if opts.Clock == nil {
		opts.Clock = SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = discardLogger()
	}
	id := uuid.NewString()
	return &TicketingFlow{
		id:    id,
		board: opts.Board,
		clock: opts.Clock,
		seed:  opts.Seed,
		log:   opts.Logger.With("game", "ticketing", "session_id", id),
		step:  StepName,
		timer: NewStopwatch(opts.Clock),
	}
}

func (f *TicketingFlow) ID() string             { return f.id }
func (f *TicketingFlow) Step() TicketStep       { return f.step }
func (f *TicketingFlow) Name() string           { return f.name }
func (f *TicketingFlow) Date() string           { return f.date }
func (f *TicketingFlow) ShowTime() string       { return f.showTime }
func (f *TicketingFlow) SeatMap() []bool        { return slices.Clone(f.seatMap) }
func (f *TicketingFlow) SelectedSeats() []int   { return slices.Clone(f.selected) }
func (f *TicketingFlow) Quantity() int          { return f.quantity }
func (f *TicketingFlow) Delivery() Delivery     { return f.delivery }
func (f *TicketingFlow) Payment() PaymentMethod { return f.payment }
func (f *TicketingFlow) Bank() string           { return f.bank }
func (f *TicketingFlow) AgreedTerms() bool      { return f.agreeTerms }
func (f *TicketingFlow) AgreedPrivacy() bool    { return f.agreePrivacy }
func (f *TicketingFlow) Live() time.Duration    { return f.timer.Live() }
func (f *TicketingFlow) Elapsed() time.Duration { return f.timer.Elapsed() }
func (f *TicketingFlow) TimerRunning() bool     { return f.timer.Running() }

func (f *TicketingFlow) SubmitName(ctx context.Context, name string) error {
	if f.step != StepName {
		return ErrWrongStep
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNicknameRequired
	}
	if f.board != nil && f.board.IsTaken(ctx, trimmed) {
		return ErrNicknameTaken
	}
	f.name = trimmed
	f.step = StepSchedule
	f.timer.Start()
	f.log.Info("ticketing started", "name", trimmed)
	return nil
}

// SelectDate picks a concert date and auto-selects the default show time.
func (f *TicketingFlow) SelectDate(date string) error {
	if f.step != StepSchedule {
		return ErrWrongStep
	}
	if !containsOption(ConcertDates, date) {
		return ErrDateRequired
	}
	f.date = date
	f.showTime = DefaultShowTime
	return nil
}

func (f *TicketingFlow) SelectTime(value string) error {
	if f.step != StepSchedule {
		return ErrWrongStep
	}
	if !containsOption(ShowTimes, value) {
		return ErrTimeInvalid
	}
	f.showTime = value
	return nil
}

func (f *TicketingFlow) ProceedToSeats() error {
	if f.step != StepSchedule {
		return ErrWrongStep
	}
	if f.date == "" {
		return ErrDateRequired
	}
	f.seatMap = GenerateSeatMap(NewRNG(seedFrom(f.seed, f.clock)), SeatCount)
	f.selected = nil
	f.step = StepSeats
	return nil
}

// GenerateSeatMap marks each seat open with probability SeatAvailability.
func GenerateSeatMap(rng *RNG, n int) []bool {
	seats := make([]bool, n)
	for i := range seats {
		seats[i] = rng.Float64() > 1-SeatAvailability
	}
	return seats
}

func (f *TicketingFlow) SeatAvailable(idx int) bool {
	return idx >= 0 && idx < len(f.seatMap) && f.seatMap[idx]
}

func (f *TicketingFlow) SeatSelected(idx int) bool {
	return slices.Contains(f.selected, idx)
}

// ToggleSeat selects or releases a seat and reports whether anything changed.
// Sold-out seats and a third selection are ignored.
func (f *TicketingFlow) ToggleSeat(idx int) bool {
	if f.step != StepSeats || !f.SeatAvailable(idx) {
		return false
	}
	if i := slices.Index(f.selected, idx); i >= 0 {
		f.selected = slices.Delete(f.selected, i, i+1)
		return true
	}
	if len(f.selected) >= MaxSelectedSeats {
		return false
	}
	f.selected = append(f.selected, idx)
	return true
}

func (f *TicketingFlow) ConfirmSeats() error {
	if f.step != StepSeats {
		return ErrWrongStep
	}
	if len(f.selected) == 0 {
		return ErrSeatsRequired
	}
	f.step = StepPrice
	return nil
}

func (f *TicketingFlow) SetQuantity(q int) error {
	if f.step != StepPrice {
		return ErrWrongStep
	}
	if q < 0 || q > MaxSelectedSeats {
		return ErrQuantityInvalid
	}
	f.quantity = q
	return nil
}

func (f *TicketingFlow) ProceedToPayment() error {
	if f.step != StepPrice {
		return ErrWrongStep
	}
	if f.quantity != len(f.selected) {
		return ErrQuantityMismatch
	}
	f.step = StepPayment
	return nil
}

func (f *TicketingFlow) SetDelivery(d Delivery) error {
	if f.step != StepPayment {
		return ErrWrongStep
	}
	if d != DeliveryShipping && d != DeliveryOnsite {
		return ErrDeliveryRequired
	}
	f.delivery = d
	return nil
}

// SetPayment switches the payment method and clears any bank selection.
func (f *TicketingFlow) SetPayment(p PaymentMethod) error {
	if f.step != StepPayment {
		return ErrWrongStep
	}
	if !slices.Contains(PaymentMethods, p) {
		return ErrPaymentRequired
	}
	f.payment = p
	f.bank = ""
	return nil
}

func (f *TicketingFlow) SetBank(bank string) error {
	if f.step != StepPayment {
		return ErrWrongStep
	}
	if !f.payment.NeedsBank() {
		return ErrPaymentRequired
	}
	if bank != "" && !slices.Contains(Banks, bank) {
		return ErrBankRequired
	}
	f.bank = bank
	return nil
}

func (f *TicketingFlow) SetAgreeTerms(v bool) error {
	if f.step != StepPayment {
		return ErrWrongStep
	}
	f.agreeTerms = v
	return nil
}

func (f *TicketingFlow) SetAgreePrivacy(v bool) error {
	if f.step != StepPayment {
		return ErrWrongStep
	}
	f.agreePrivacy = v
	return nil
}

// Total is the amount shown on the payment step, in KRW.
func (f *TicketingFlow) Total() int {
	return TicketTotal(f.quantity, f.delivery)
}

func TicketTotal(quantity int, d Delivery) int {
	total := TicketPrice*quantity + BookingFee
	if d == DeliveryShipping {
		total += ShippingFee
	}
	return total
}

// Finalize validates the payment details, stops the timer and records the
// result in the ticketing ranking list.
func (f *TicketingFlow) Finalize(ctx context.Context) error {
	if f.step != StepPayment {
		return ErrWrongStep
	}
	switch {
	case f.delivery == DeliveryNone:
		return ErrDeliveryRequired
	case f.payment == PaymentNone:
		return ErrPaymentRequired
	case f.payment.NeedsBank() && f.bank == "":
		return ErrBankRequired
	case !f.agreeTerms || !f.agreePrivacy:
		return ErrConsentRequired
	}

	elapsed := f.timer.Stop()
	f.step = StepDone
	if f.board != nil {
		if err := f.board.Record(ctx, f.name, elapsed); err != nil {
			f.log.Warn("ranking not saved", "error", err)
		}
		if err := f.board.SetLastName(ctx, f.name); err != nil {
			f.log.Debug("last name not saved", "error", err)
		}
	}
	f.log.Info("ticketing complete",
		"name", f.name,
		"seats", len(f.selected),
		"total", f.Total(),
		"elapsed", FormatSeconds(elapsed),
	)
	return nil
}

// SeatLabel names a seat index by row and number: 13 -> "Row 2 Seat 2".
func SeatLabel(idx int) string {
	return fmt.Sprintf("Row %d Seat %d", idx/SeatColumns+1, idx%SeatColumns+1)
}

func SeatLabels(seats []int) string {
	if len(seats) == 0 {
		return "-"
	}
	labels := make([]string, 0, len(seats))
	for _, s := range seats {
		labels = append(labels, SeatLabel(s))
	}
	return strings.Join(labels, ", ")
}

// FormatWon renders an amount with thousands separators: 312500 -> "312,500".
func FormatWon(amount int) string {
	return wonPrinter.Sprintf("%d", amount)
}

func containsOption(opts []ScheduleOption, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}
