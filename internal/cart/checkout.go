package cart

import (
	"errors"
	"strings"
)

// Checkout validation errors, one per distinct user-facing message.
var (
	ErrEmptyCart     = errors.New("order must contain at least one item")
	ErrTableRequired = errors.New("table number is required for dine-in orders")
	ErrNameRequired  = errors.New("customer name is required")
	ErrPhoneRequired = errors.New("customer phone is required")
)

// Checkout carries the fields collected alongside the cart before an
// order is submitted.
type Checkout struct {
	OrderType    string
	TableNumber  int
	CustomerName string
	Phone        string
	Instructions string
}

const (
	OrderTypeDineIn   = "dine-in"
	OrderTypeTakeaway = "takeaway"
)

// Validate checks the cart and checkout fields in the order the form
// surfaces them, stopping at the first failure. No request may be sent
// unless it returns nil.
func Validate(c *Cart, co Checkout) error {
	if c.Empty() {
		return ErrEmptyCart
	}
	if co.OrderType == OrderTypeDineIn && co.TableNumber <= 0 {
		return ErrTableRequired
	}
	if strings.TrimSpace(co.CustomerName) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(co.Phone) == "" {
		return ErrPhoneRequired
	}
	return nil
}
