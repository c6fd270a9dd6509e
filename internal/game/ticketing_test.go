package game

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestFlow(board *fakeBoard, clock *ManualClock) *TicketingFlow {
	return NewTicketingFlow(TicketingOptions{Board: board, Clock: clock, Seed: 77})
}

func availableSeats(t *testing.T, f *TicketingFlow, n int) []int {
	t.Helper()
	var out []int
	for i, open := range f.SeatMap() {
		if open {
			out = append(out, i)
			if len(out) == n {
				return out
			}
		}
	}
	t.Fatalf("expected at least %d open seats", n)
	return nil
}

func soldOutSeat(f *TicketingFlow) int {
	for i, open := range f.SeatMap() {
		if !open {
			return i
		}
	}
	return -1
}

func flowAtSeats(t *testing.T, board *fakeBoard, clock *ManualClock) *TicketingFlow {
	t.Helper()
	f := newTestFlow(board, clock)
	if err := f.SubmitName(context.Background(), "erin"); err != nil {
		t.Fatalf("submit name: %v", err)
	}
	if err := f.SelectDate("2025-08-30"); err != nil {
		t.Fatalf("select date: %v", err)
	}
	if err := f.ProceedToSeats(); err != nil {
		t.Fatalf("proceed to seats: %v", err)
	}
	return f
}

func TestTicketingNameValidation(t *testing.T) {
	f := newTestFlow(&fakeBoard{taken: []string{"alice"}}, testClock())
	ctx := context.Background()
	if err := f.SubmitName(ctx, ""); !errors.Is(err, ErrNicknameRequired) {
		t.Fatalf("expected ErrNicknameRequired, got %v", err)
	}
	if err := f.SubmitName(ctx, " ALICE"); !errors.Is(err, ErrNicknameTaken) {
		t.Fatalf("expected ErrNicknameTaken, got %v", err)
	}
	if f.Step() != StepName || f.TimerRunning() {
		t.Fatalf("expected flow not to advance on invalid name")
	}
	if err := f.SubmitName(ctx, " frank "); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if f.Step() != StepSchedule || !f.TimerRunning() || f.Name() != "frank" {
		t.Fatalf("expected schedule step with timer running, got %v", f.Step())
	}
}

func TestTicketingDateRequiredAndAutoTime(t *testing.T) {
	f := newTestFlow(&fakeBoard{}, testClock())
	_ = f.SubmitName(context.Background(), "gina")
	if err := f.ProceedToSeats(); !errors.Is(err, ErrDateRequired) {
		t.Fatalf("expected ErrDateRequired, got %v", err)
	}
	if err := f.SelectDate("2025-09-01"); !errors.Is(err, ErrDateRequired) {
		t.Fatalf("expected unknown date to be rejected, got %v", err)
	}
	if err := f.SelectDate("2025-08-31"); err != nil {
		t.Fatalf("select date: %v", err)
	}
	if f.ShowTime() != DefaultShowTime {
		t.Fatalf("expected show time auto-selected, got %q", f.ShowTime())
	}
	if err := f.SelectTime("20:00"); !errors.Is(err, ErrTimeInvalid) {
		t.Fatalf("expected ErrTimeInvalid, got %v", err)
	}
}

func TestSeatMapHasFixedSizeAndIsSeeded(t *testing.T) {
	a := GenerateSeatMap(NewRNG(123), SeatCount)
	b := GenerateSeatMap(NewRNG(123), SeatCount)
	if len(a) != SeatCount {
		t.Fatalf("expected %d seats, got %d", SeatCount, len(a))
	}
	open := 0
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected identical seat maps for identical seeds at %d", i)
		}
		if a[i] {
			open++
		}
	}
	if open == 0 || open == SeatCount {
		t.Fatalf("expected a mix of open and sold seats, got %d open", open)
	}
}

func TestSeatAvailabilityRateNearSeventyPercent(t *testing.T) {
	rng := NewRNG(2025)
	seats := GenerateSeatMap(rng, 20000)
	open := 0
	for _, s := range seats {
		if s {
			open++
		}
	}
	rate := float64(open) / float64(len(seats))
	if rate < 0.67 || rate > 0.73 {
		t.Fatalf("expected availability near 0.7, got %.3f", rate)
	}
}

func TestToggleSeatCapsAtTwo(t *testing.T) {
	f := flowAtSeats(t, &fakeBoard{}, testClock())
	seats := availableSeats(t, f, 3)

	if !f.ToggleSeat(seats[0]) || !f.ToggleSeat(seats[1]) {
		t.Fatalf("expected first two seats to be selectable")
	}
	if f.ToggleSeat(seats[2]) {
		t.Fatalf("expected third seat to be a no-op")
	}
	if got := f.SelectedSeats(); len(got) != 2 || got[0] != seats[0] || got[1] != seats[1] {
		t.Fatalf("unexpected selection %v", got)
	}
	if !f.ToggleSeat(seats[0]) {
		t.Fatalf("expected deselect to succeed")
	}
	if !f.ToggleSeat(seats[2]) {
		t.Fatalf("expected third seat selectable after releasing one")
	}
	if sold := soldOutSeat(f); sold >= 0 && f.ToggleSeat(sold) {
		t.Fatalf("expected sold-out seat to be ignored")
	}
}

func TestConfirmSeatsRequiresSelection(t *testing.T) {
	f := flowAtSeats(t, &fakeBoard{}, testClock())
	if err := f.ConfirmSeats(); !errors.Is(err, ErrSeatsRequired) {
		t.Fatalf("expected ErrSeatsRequired, got %v", err)
	}
}

func TestQuantityMustMatchSeats(t *testing.T) {
	f := flowAtSeats(t, &fakeBoard{}, testClock())
	seats := availableSeats(t, f, 2)
	f.ToggleSeat(seats[0])
	f.ToggleSeat(seats[1])
	if err := f.ConfirmSeats(); err != nil {
		t.Fatalf("confirm seats: %v", err)
	}
	if err := f.SetQuantity(3); !errors.Is(err, ErrQuantityInvalid) {
		t.Fatalf("expected ErrQuantityInvalid, got %v", err)
	}
	_ = f.SetQuantity(1)
	if err := f.ProceedToPayment(); !errors.Is(err, ErrQuantityMismatch) {
		t.Fatalf("expected ErrQuantityMismatch, got %v", err)
	}
	_ = f.SetQuantity(2)
	if err := f.ProceedToPayment(); err != nil {
		t.Fatalf("proceed to payment: %v", err)
	}
}

func TestTicketTotal(t *testing.T) {
	tests := []struct {
		q    int
		d    Delivery
		want int
	}{
		{q: 2, d: DeliveryShipping, want: 312500},
		{q: 2, d: DeliveryOnsite, want: 310000},
		{q: 1, d: DeliveryNone, want: 156000},
		{q: 0, d: DeliveryShipping, want: 4500},
	}
	for _, tc := range tests {
		if got := TicketTotal(tc.q, tc.d); got != tc.want {
			t.Fatalf("TicketTotal(%d,%q)=%d want=%d", tc.q, tc.d, got, tc.want)
		}
	}
}

func TestFinalizeValidatesInOrderAndRecords(t *testing.T) {
	board := &fakeBoard{}
	clock := testClock()
	f := flowAtSeats(t, board, clock)
	ctx := context.Background()
	seats := availableSeats(t, f, 2)
	f.ToggleSeat(seats[0])
	f.ToggleSeat(seats[1])
	_ = f.ConfirmSeats()
	_ = f.SetQuantity(2)
	_ = f.ProceedToPayment()

	if err := f.Finalize(ctx); !errors.Is(err, ErrDeliveryRequired) {
		t.Fatalf("expected ErrDeliveryRequired, got %v", err)
	}
	_ = f.SetDelivery(DeliveryShipping)
	if err := f.Finalize(ctx); !errors.Is(err, ErrPaymentRequired) {
		t.Fatalf("expected ErrPaymentRequired, got %v", err)
	}
	_ = f.SetPayment(PaymentCard)
	if err := f.Finalize(ctx); !errors.Is(err, ErrBankRequired) {
		t.Fatalf("expected ErrBankRequired, got %v", err)
	}
	if err := f.SetBank("Nowhere Bank"); !errors.Is(err, ErrBankRequired) {
		t.Fatalf("expected unknown bank rejected, got %v", err)
	}
	_ = f.SetBank("신한")
	_ = f.SetAgreeTerms(true)
	if err := f.Finalize(ctx); !errors.Is(err, ErrConsentRequired) {
		t.Fatalf("expected ErrConsentRequired, got %v", err)
	}
	_ = f.SetAgreePrivacy(true)
	if f.Total() != 312500 {
		t.Fatalf("expected total 312500, got %d", f.Total())
	}

	clock.Advance(5 * time.Second)
	if err := f.Finalize(ctx); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if f.Step() != StepDone || f.TimerRunning() {
		t.Fatalf("expected done with timer stopped")
	}
	if len(board.records) != 1 || board.records[0].Name != "erin" || board.records[0].Elapsed != 5*time.Second {
		t.Fatalf("unexpected records %+v", board.records)
	}
	if board.lastName != "erin" {
		t.Fatalf("expected last ticket name erin, got %q", board.lastName)
	}
}

func TestSetPaymentClearsBankAndKakaoNeedsNoBank(t *testing.T) {
	f := flowAtSeats(t, &fakeBoard{}, testClock())
	seat := availableSeats(t, f, 1)[0]
	f.ToggleSeat(seat)
	_ = f.ConfirmSeats()
	_ = f.SetQuantity(1)
	_ = f.ProceedToPayment()

	_ = f.SetPayment(PaymentTransfer)
	_ = f.SetBank("하나")
	_ = f.SetPayment(PaymentKakao)
	if f.Bank() != "" {
		t.Fatalf("expected bank cleared on payment change")
	}
	if err := f.SetBank("하나"); !errors.Is(err, ErrPaymentRequired) {
		t.Fatalf("expected bank selection rejected for kakao, got %v", err)
	}
	_ = f.SetDelivery(DeliveryOnsite)
	_ = f.SetAgreeTerms(true)
	_ = f.SetAgreePrivacy(true)
	if err := f.Finalize(context.Background()); err != nil {
		t.Fatalf("expected kakao checkout without bank, got %v", err)
	}
}

func TestStepGuards(t *testing.T) {
	f := newTestFlow(&fakeBoard{}, testClock())
	if err := f.SelectDate("2025-08-30"); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("expected ErrWrongStep, got %v", err)
	}
	if f.ToggleSeat(0) {
		t.Fatalf("expected toggle outside seat step to be ignored")
	}
	if err := f.Finalize(context.Background()); !errors.Is(err, ErrWrongStep) {
		t.Fatalf("expected ErrWrongStep, got %v", err)
	}
}

func TestSeatLabelsAndWon(t *testing.T) {
	if got := SeatLabel(13); got != "Row 2 Seat 2" {
		t.Fatalf("unexpected seat label %q", got)
	}
	if got := SeatLabels(nil); got != "-" {
		t.Fatalf("expected - for no seats, got %q", got)
	}
	if got := FormatWon(312500); got != "312,500" {
		t.Fatalf("unexpected won format %q", got)
	}
	if got := FormatWon(2000); got != "2,000" {
		t.Fatalf("unexpected won format %q", got)
	}
	if got := FormatWon(500); got != "500" {
		t.Fatalf("unexpected won format %q", got)
	}
	if got := FormatWon(1234567); got != "1,234,567" {
		t.Fatalf("unexpected won format %q", got)
	}
	if got := FormatWon(-1500); got != "-1,500" {
		t.Fatalf("unexpected won format %q", got)
	}
}
