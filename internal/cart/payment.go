package cart

import (
	"errors"

	"github.com/mkotelnikov/restaurant-pos/internal/billing"
)

// ErrInsufficientAmount rejects a payment form whose entered amount
// does not cover the bill.
var ErrInsufficientAmount = errors.New("amount received is less than the order total")

// ValidatePayment checks the amount entered in the payment form
// against the bill total. No payment request may be sent unless it
// returns nil.
func ValidatePayment(amountReceived, total float64) error {
	if amountReceived < total {
		return ErrInsufficientAmount
	}
	return nil
}

// Change returns the change to display when the amount received
// exceeds the bill total, zero otherwise. This is the form's preview;
// the server decides the change actually returned.
func Change(amountReceived, total float64) float64 {
	if amountReceived > total {
		return billing.Round2(amountReceived - total)
	}
	return 0
}
