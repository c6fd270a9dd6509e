package game

import "errors"

// ValidationError is a user input failure. Clients show Message as a blocking
// alert and the flow does not advance.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrNicknameRequired  = &ValidationError{Field: "nickname", Message: "Please enter a nickname."}
	ErrNicknameTaken     = &ValidationError{Field: "nickname", Message: "That nickname is already taken. Please choose another one."}
	ErrAreaInvalid       = &ValidationError{Field: "area", Message: "Please choose one of the seating areas."}
	ErrDateRequired      = &ValidationError{Field: "date", Message: "Please select a date."}
	ErrTimeInvalid       = &ValidationError{Field: "time", Message: "That time is not offered."}
	ErrSeatsRequired     = &ValidationError{Field: "seats", Message: "Please select at least one seat."}
	ErrQuantityInvalid   = &ValidationError{Field: "quantity", Message: "You can buy up to 2 tickets."}
	ErrQuantityMismatch  = &ValidationError{Field: "quantity", Message: "The ticket quantity does not match the selected seats!"}
	ErrDeliveryRequired  = &ValidationError{Field: "delivery", Message: "Please choose a delivery method."}
	ErrPaymentRequired   = &ValidationError{Field: "payment", Message: "Please choose a payment method."}
	ErrBankRequired      = &ValidationError{Field: "bank", Message: "Please select a bank."}
	ErrConsentRequired   = &ValidationError{Field: "consent", Message: "Please agree to the required terms."}
	ErrEventNameRequired = &ValidationError{Field: "name", Message: "Please enter the concert name."}
	ErrEventTypeInvalid  = &ValidationError{Field: "type", Message: "Event type must be concert or ticketing."}
	ErrEventTimeInvalid  = &ValidationError{Field: "time", Message: "Please enter the time as HH:MM."}
	ErrEventNotFound     = &ValidationError{Field: "event", Message: "That event no longer exists."}
	ErrChecklistIndex    = &ValidationError{Field: "checklist", Message: "No such checklist item."}
)

// ErrWrongStep is returned when an action is attempted outside the step that
// accepts it. It is a programming error in the client, not a user alert.
var ErrWrongStep = errors.New("action not available in the current step")

// IsValidation reports whether err is a user input failure and returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
