package submission

import (
	"errors"
)

// Messages shown to customers. Failures stay generic on purpose.
const (
	MsgPlaced    = "Order placed! See you soon."
	MsgFailed    = "Could not submit order. Please try again."
	MsgInFlight  = "Your order is already being placed."
	MsgEmptyCart = "Your cart is empty"
)

var ErrSubmissionInFlight = errors.New("submission already in progress")

// ValidationError blocks a submission before anything is sent
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UserMessage maps a Submit error onto what the customer should see
func UserMessage(err error) string {
	var ve *ValidationError
	switch {
	case err == nil:
		return MsgPlaced
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, ErrSubmissionInFlight):
		return MsgInFlight
	default:
		return MsgFailed
	}
}
